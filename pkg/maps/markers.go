package maps

import (
	"iqaama_backend/internal/model"
	"iqaama_backend/pkg/geo"
)

// Marker is what the mapping-display collaborator needs to render one pin.
// Cell groups markers of the same neighborhood so the client can cluster
// them without re-deriving geometry.
type Marker struct {
	PropertyID  uint              `json:"property_id"`
	Coordinates model.Coordinates `json:"coordinates"`
	Label       string            `json:"label"`
	Price       string            `json:"price"`
	Cell        string            `json:"cell"`
}

// Build converts search results into map markers, preserving result order so
// the closest pin comes first.
func Build(results []model.Result) []Marker {
	markers := make([]Marker, 0, len(results))
	for _, r := range results {
		markers = append(markers, Marker{
			PropertyID:  r.ID,
			Coordinates: r.Coordinates,
			Label:       r.Location,
			Price:       r.Price,
			Cell:        geo.Cell(r.Coordinates),
		})
	}
	return markers
}
