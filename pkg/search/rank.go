package search

import (
	"sort"

	"iqaama_backend/internal/model"
	"iqaama_backend/pkg/geo"
)

// Geocoder resolves free-text queries to concrete coordinates. Lookups may
// legitimately fail; the pipeline then falls back to a coarse region center,
// and with no reference point at all returns unranked results.
type Geocoder interface {
	Locate(query string) (model.Coordinates, bool)
}

// ResolveReference finds the point distances are measured from: explicit
// coordinates from the places lookup when the query names a concrete place,
// otherwise the fallback center for a detected region token.
func ResolveReference(c model.Criteria, geocoder Geocoder) (model.Coordinates, bool) {
	if c.Location == "" {
		return model.Coordinates{}, false
	}
	if geocoder != nil {
		if coords, ok := geocoder.Locate(c.Location); ok {
			return coords, true
		}
	}
	return geo.CenterForQuery(c.Location)
}

// Rank annotates every result with its distance from the reference point and
// sorts ascending. The sort is stable, so equal distances keep catalog order.
// A nil reference leaves the results untouched.
func Rank(results []model.Result, ref *model.Coordinates) []model.Result {
	if ref == nil {
		return results
	}
	for i := range results {
		d := geo.Distance(*ref, results[i].Coordinates)
		results[i].Distance = &d
	}
	sort.SliceStable(results, func(i, j int) bool {
		return *results[i].Distance < *results[j].Distance
	})
	return results
}
