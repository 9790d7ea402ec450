package geo

import (
	"github.com/mmcloughlin/geohash"

	"iqaama_backend/internal/model"
)

// cellPrecision of 6 gives cells of roughly 1.2km x 0.6km, enough to group
// markers that belong to the same neighborhood.
const cellPrecision = 6

// Cell returns the geohash cell a coordinate falls into, used to cluster
// nearby map markers.
func Cell(c model.Coordinates) string {
	return geohash.EncodeWithPrecision(c.Lat, c.Lng, cellPrecision)
}
