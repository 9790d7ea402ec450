package search

import (
	"iqaama_backend/internal/model"
)

// tabTypes restricts which property types belong on the rent/shared/
// commercial sections. Buy and daily sections show the whole catalog with a
// transformed price.
var tabTypes = map[model.ListingTab][]model.PropertyType{
	model.TabRent:       {model.PropertyTypeApartment, model.PropertyTypeVilla, model.PropertyTypeStudio},
	model.TabShared:     {model.PropertyTypeBedspace, model.PropertyTypePartition},
	model.TabCommercial: {model.PropertyTypeCommercial},
}

// Search runs the whole pipeline: filter the catalog, resolve a reference
// point, rank by distance, and attach the mode price. It is a pure function
// of its inputs; a failed geocoder lookup just means unranked results.
func Search(catalog []model.Property, c model.Criteria, geocoder Geocoder) []model.Result {
	filtered := Filter(catalog, c)

	results := make([]model.Result, 0, len(filtered))
	for _, p := range filtered {
		results = append(results, withDisplayPrice(p, c.Tab))
	}

	if ref, ok := ResolveReference(c, geocoder); ok {
		results = Rank(results, &ref)
	}
	return results
}

// ListForTab returns the catalog subset for a listing section with the
// section's price treatment applied, preserving catalog order.
func ListForTab(catalog []model.Property, tab model.ListingTab) []model.Result {
	allowed := tabTypes[tab]

	results := make([]model.Result, 0, len(catalog))
	for _, p := range catalog {
		if len(allowed) > 0 && !containsType(allowed, p.Type) {
			continue
		}
		results = append(results, withDisplayPrice(p, tab))
	}
	return results
}

func withDisplayPrice(p model.Property, tab model.ListingTab) model.Result {
	amount, period := DisplayPrice(p, tab)
	return model.Result{
		Property: p,
		Price:    FormatAmount(p.Currency, amount),
		Period:   period,
	}
}

func containsType(types []model.PropertyType, t model.PropertyType) bool {
	for _, known := range types {
		if known == t {
			return true
		}
	}
	return false
}
