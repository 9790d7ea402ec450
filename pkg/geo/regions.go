package geo

import (
	"strings"

	"iqaama_backend/internal/model"
)

// countryAliases maps free-text region tokens to the country they imply.
// A query like "muscat" should match properties tagged country "oman" even
// though it is not a substring of any property's location field.
var countryAliases = map[string]string{
	"dubai":     "uae",
	"abu dhabi": "uae",
	"sharjah":   "uae",
	"ajman":     "uae",
	"uae":       "uae",
	"emirates":  "uae",
	"muscat":    "oman",
	"oman":      "oman",
	"doha":      "qatar",
	"qatar":     "qatar",
	"riyadh":    "saudi",
	"jeddah":    "saudi",
	"saudi":     "saudi",
	"manama":    "bahrain",
	"bahrain":   "bahrain",
}

// regionCenters are coarse fallback reference points, used for ranking when
// the places lookup cannot resolve the query to concrete coordinates.
var regionCenters = map[string]model.Coordinates{
	"dubai":     {Lat: 25.2048, Lng: 55.2708},
	"abu dhabi": {Lat: 24.4539, Lng: 54.3773},
	"sharjah":   {Lat: 25.3463, Lng: 55.4209},
	"ajman":     {Lat: 25.4052, Lng: 55.5136},
	"uae":       {Lat: 25.2048, Lng: 55.2708},
	"oman":      {Lat: 23.5880, Lng: 58.3829},
	"muscat":    {Lat: 23.5880, Lng: 58.3829},
	"qatar":     {Lat: 25.2854, Lng: 51.5310},
	"doha":      {Lat: 25.2854, Lng: 51.5310},
	"saudi":     {Lat: 24.7136, Lng: 46.6753},
	"riyadh":    {Lat: 24.7136, Lng: 46.6753},
	"jeddah":    {Lat: 21.4858, Lng: 39.1925},
	"bahrain":   {Lat: 26.2285, Lng: 50.5860},
	"manama":    {Lat: 26.2285, Lng: 50.5860},
}

// CountryForQuery reports the country implied by a free-text location query,
// or "" when no known region token is present. The whole query is checked
// first so multi-word aliases like "abu dhabi" win over their single tokens.
func CountryForQuery(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}
	if country, ok := countryAliases[q]; ok {
		return country
	}
	// Earliest token in the query wins, so scanning is deterministic.
	best, bestPos := "", len(q)
	for alias, country := range countryAliases {
		if pos := strings.Index(q, alias); pos >= 0 && pos < bestPos {
			best, bestPos = country, pos
		}
	}
	return best
}

// CenterForQuery resolves a coarse reference point for a region token.
func CenterForQuery(query string) (model.Coordinates, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return model.Coordinates{}, false
	}
	if center, ok := regionCenters[q]; ok {
		return center, true
	}
	var best model.Coordinates
	found, bestPos := false, len(q)
	for token, center := range regionCenters {
		if pos := strings.Index(q, token); pos >= 0 && pos < bestPos {
			best, bestPos, found = center, pos, true
		}
	}
	return best, found
}
