package search

import (
	"log/slog"
	"strconv"
	"strings"

	"iqaama_backend/internal/model"
	"iqaama_backend/pkg/geo"
)

// Filter reduces the catalog to the records matching every active criteria
// field. Predicates are conjunctive; a criteria with nothing constrained
// returns the catalog unchanged, in its original order.
func Filter(catalog []model.Property, c model.Criteria) []model.Property {
	matched := make([]model.Property, 0, len(catalog))
	for _, p := range catalog {
		if matches(p, c) {
			matched = append(matched, p)
		}
	}
	return matched
}

func matches(p model.Property, c model.Criteria) bool {
	if !matchLocation(p, c.Location) {
		return false
	}
	if c.PropertyType != "" && p.Type != c.PropertyType {
		return false
	}
	if c.Emirate != "" && !strings.EqualFold(p.Emirate, c.Emirate) {
		return false
	}
	if c.Country != "" && !strings.EqualFold(p.Country, c.Country) {
		return false
	}
	if !matchBedrooms(p.Beds, c.Bedrooms) {
		return false
	}
	if !matchPrice(p, c) {
		return false
	}
	if !matchNearby(p.NearbyPlaces, placeClassMetro, c.NearMetro) {
		return false
	}
	if !matchNearby(p.NearbyPlaces, placeClassMall, c.NearMall) {
		return false
	}
	if !matchNearby(p.NearbyPlaces, placeClassBeach, c.NearBeach) {
		return false
	}
	return true
}

// matchLocation is deliberately permissive: the query may be a fragment of
// the property's area name or the other way around ("marina" matches "Dubai
// Marina", "Dubai Marina Walk" matches "Dubai Marina"), and a region token
// like "muscat" matches everything tagged with the implied country.
func matchLocation(p model.Property, query string) bool {
	if query == "" {
		return true
	}
	loc := strings.ToLower(p.Location)
	if strings.Contains(loc, query) || strings.Contains(query, loc) {
		return true
	}
	if country := geo.CountryForQuery(query); country != "" {
		return strings.EqualFold(p.Country, country)
	}
	return false
}

// matchBedrooms compares normalized representations, so a numeric constraint
// never matches the "Studio"/"Shared" sentinels.
func matchBedrooms(beds, want string) bool {
	if want == "" {
		return true
	}
	have := strings.ToLower(strings.TrimSpace(beds))
	if atLeast, found := strings.CutSuffix(want, "+"); found {
		min, err := strconv.Atoi(atLeast)
		if err != nil {
			return true
		}
		n, err := strconv.Atoi(have)
		if err != nil {
			return false
		}
		return n >= min
	}
	return have == want
}

// matchPrice checks the canonical monthly amount against an inclusive
// [min, max] range; max 0 is unbounded above. A record without a usable
// price fails open: it is excluded from a constrained range rather than
// silently matched.
func matchPrice(p model.Property, c model.Criteria) bool {
	if !c.HasPrice {
		return true
	}
	if p.MonthlyPrice <= 0 {
		slog.Warn("property has no usable price, excluded from price filter",
			"property_id", p.ID, "slug", p.Slug)
		return false
	}
	if p.MonthlyPrice < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && p.MonthlyPrice > c.MaxPrice {
		return false
	}
	return true
}

type placeClass int

const (
	placeClassMetro placeClass = iota
	placeClassMall
	placeClassBeach
)

func (pc placeClass) matchesLabel(label string) bool {
	switch pc {
	case placeClassMetro:
		return strings.Contains(label, "metro")
	case placeClassMall:
		return strings.Contains(label, "mall") ||
			strings.Contains(label, "centre") || strings.Contains(label, "center")
	case placeClassBeach:
		return strings.Contains(label, "beach")
	}
	return false
}

// matchNearby applies a proximity band against the property's nearby-place
// annotations ("Metro Station - 500m"). A property that does not list a
// place of the class at all passes; one that lists it farther than the band
// does not.
func matchNearby(places []string, class placeClass, maxMeters int) bool {
	if maxMeters <= 0 {
		return true
	}
	listed := false
	for _, entry := range places {
		label := strings.ToLower(entry)
		if !class.matchesLabel(label) {
			continue
		}
		listed = true
		if m, ok := nearbyMeters(label); ok && m <= maxMeters {
			return true
		}
	}
	return !listed
}

// nearbyMeters parses the trailing distance out of an annotation like
// "Marina Mall - 300m" or "Arabian Center - 1.5km".
func nearbyMeters(label string) (int, bool) {
	_, dist, found := strings.Cut(label, " - ")
	if !found {
		return 0, false
	}
	dist = strings.TrimSpace(dist)
	if km, found := strings.CutSuffix(dist, "km"); found {
		v, err := strconv.ParseFloat(strings.TrimSpace(km), 64)
		if err != nil {
			return 0, false
		}
		return int(v * 1000), true
	}
	v, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(dist, "m")))
	if err != nil {
		return 0, false
	}
	return v, true
}
