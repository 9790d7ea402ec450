package places

import (
	"strings"

	"iqaama_backend/internal/model"
)

// Place is one geocoding candidate: a named location with concrete
// coordinates, shaped like the places API the front end talked to.
type Place struct {
	PlaceID          string            `json:"place_id"`
	Name             string            `json:"name"`
	FormattedAddress string            `json:"formatted_address"`
	Coordinates      model.Coordinates `json:"coordinates"`
}

// Directory is a static stand-in for the external places service. It answers
// the same contract (free-text query in, zero or more candidates out) from a
// fixed table, so the search core never depends on a live geocoder.
type Directory struct {
	places []Place
}

// NewDirectory returns the built-in GCC place table.
func NewDirectory() *Directory {
	return &Directory{places: gccPlaces}
}

// Search returns every place whose name or formatted address contains the
// query, case-insensitively. An empty query returns nothing.
func (d *Directory) Search(query string) []Place {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var found []Place
	for _, p := range d.places {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.FormattedAddress), q) {
			found = append(found, p)
		}
	}
	return found
}

// Locate resolves a query to the coordinates of its best candidate. It
// satisfies the search pipeline's Geocoder contract; a miss simply reports
// false and ranking falls back to region centers.
func (d *Directory) Locate(query string) (model.Coordinates, bool) {
	found := d.Search(query)
	if len(found) == 0 {
		return model.Coordinates{}, false
	}
	return found[0].Coordinates, true
}

var gccPlaces = []Place{
	{PlaceID: "1", Name: "Dubai Marina", FormattedAddress: "Dubai Marina, Dubai, UAE", Coordinates: model.Coordinates{Lat: 25.0772, Lng: 55.1392}},
	{PlaceID: "2", Name: "Downtown Dubai", FormattedAddress: "Downtown Dubai, Dubai, UAE", Coordinates: model.Coordinates{Lat: 25.1972, Lng: 55.2744}},
	{PlaceID: "3", Name: "Jumeirah Lake Towers", FormattedAddress: "JLT, Dubai, UAE", Coordinates: model.Coordinates{Lat: 25.0693, Lng: 55.1392}},
	{PlaceID: "4", Name: "Business Bay", FormattedAddress: "Business Bay, Dubai, UAE", Coordinates: model.Coordinates{Lat: 25.1916, Lng: 55.2650}},
	{PlaceID: "5", Name: "Deira", FormattedAddress: "Deira, Dubai, UAE", Coordinates: model.Coordinates{Lat: 25.2731, Lng: 55.3414}},
	{PlaceID: "6", Name: "Abu Dhabi Marina", FormattedAddress: "Marina, Abu Dhabi, UAE", Coordinates: model.Coordinates{Lat: 24.4539, Lng: 54.3773}},
	{PlaceID: "7", Name: "Sharjah City Centre", FormattedAddress: "Sharjah, UAE", Coordinates: model.Coordinates{Lat: 25.3373, Lng: 55.4209}},
	{PlaceID: "8", Name: "Al Ain", FormattedAddress: "Al Ain, Abu Dhabi, UAE", Coordinates: model.Coordinates{Lat: 24.2070, Lng: 55.7456}},
	{PlaceID: "9", Name: "Al Mouj", FormattedAddress: "Al Mouj, Muscat, Oman", Coordinates: model.Coordinates{Lat: 23.6288, Lng: 58.2571}},
	{PlaceID: "10", Name: "West Bay", FormattedAddress: "West Bay, Doha, Qatar", Coordinates: model.Coordinates{Lat: 25.3548, Lng: 51.5244}},
}
