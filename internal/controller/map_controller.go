package controller

import (
	"github.com/gofiber/fiber/v2"

	"iqaama_backend/pkg/catalog"
	"iqaama_backend/pkg/maps"
	"iqaama_backend/pkg/search"
)

// GetMapMarkers runs the same pipeline as the search endpoint but returns
// only what the mapping collaborator needs to render pins.
func GetMapMarkers(c *fiber.Ctx) error {
	var input search.Input
	if err := c.QueryParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid search parameters",
		})
	}

	criteria := search.Normalize(input)
	results := search.Search(catalog.All(), criteria, geocoder)

	return c.JSON(fiber.Map{
		"markers": maps.Build(results),
		"count":   len(results),
	})
}

// ResolveMarker maps a clicked marker back to its full property record.
func ResolveMarker(c *fiber.Ctx) error {
	property, ok := propertyByIDParam(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	return c.JSON(property)
}
