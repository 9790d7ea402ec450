package controller

import (
	"github.com/gofiber/fiber/v2"

	"iqaama_backend/internal/model"
	"iqaama_backend/pkg/catalog"
)

// GetEmirates returns the emirate filter options present in the catalog.
func GetEmirates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"emirates": catalog.Emirates()})
}

// GetCountries returns the country filter options present in the catalog.
func GetCountries(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"countries": catalog.Countries()})
}

// GetPropertyTypes returns the closed property-type set.
func GetPropertyTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"types": model.KnownPropertyTypes})
}
