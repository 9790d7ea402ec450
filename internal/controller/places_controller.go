package controller

import (
	"github.com/gofiber/fiber/v2"

	"iqaama_backend/pkg/places"
)

var placeDirectory *places.Directory

func InitPlacesController(dir *places.Directory) {
	placeDirectory = dir
}

// SearchPlaces returns location candidates for a free-text query. No
// matches is an empty list, mirroring the external places contract.
func SearchPlaces(c *fiber.Ctx) error {
	found := placeDirectory.Search(c.Query("q"))
	if found == nil {
		found = []places.Place{}
	}
	return c.JSON(fiber.Map{
		"places": found,
		"count":  len(found),
	})
}
