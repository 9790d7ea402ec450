package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"iqaama_backend/internal/model"
	"iqaama_backend/pkg/catalog"
	"iqaama_backend/pkg/contact"
	"iqaama_backend/pkg/search"
	"iqaama_backend/pkg/stats"
)

var propertyViews *stats.Views

func InitPropertyController(views *stats.Views) {
	propertyViews = views
}

// ListProperties returns the catalog for a listing section with its price
// treatment applied (rent/buy/shared/daily/commercial).
func ListProperties(c *fiber.Ctx) error {
	criteria := search.Normalize(search.Input{Tab: c.Query("tab")})
	results := search.ListForTab(catalog.All(), criteria.Tab)

	return c.JSON(fiber.Map{
		"tab":        criteria.Tab,
		"properties": results,
		"count":      len(results),
	})
}

// GetPropertyBySlug returns one listing by its slug.
func GetPropertyBySlug(c *fiber.Ctx) error {
	property, ok := catalog.BySlug(c.Params("property_slug"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	return c.JSON(property)
}

// RecordPropertyView counts a view, de-duplicated per IP within the
// cooldown window.
func RecordPropertyView(c *fiber.Ctx) error {
	property, ok := propertyByIDParam(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}

	counted := propertyViews.Record(property.ID, c.IP())
	return c.JSON(fiber.Map{
		"counted": counted,
		"views":   propertyViews.Count(property.ID),
	})
}

// GetContactOptions returns the landlord's call and WhatsApp handoff URIs.
func GetContactOptions(c *fiber.Ctx) error {
	property, ok := propertyByIDParam(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	return c.JSON(contact.OptionsFor(property))
}

func propertyByIDParam(c *fiber.Ctx) (model.Property, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return model.Property{}, false
	}
	return catalog.ByID(uint(id))
}
