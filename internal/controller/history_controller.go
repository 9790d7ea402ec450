package controller

import (
	"github.com/gofiber/fiber/v2"

	"iqaama_backend/pkg/history"
	"iqaama_backend/pkg/places"
)

var hist *history.History

func InitHistoryController(h *history.History) {
	hist = h
}

// GetRecentSearches returns the remembered searches, newest first. An empty
// or absent cache is an empty list.
func GetRecentSearches(c *fiber.Ctx) error {
	entries := hist.RecentSearches(c.Context())
	if entries == nil {
		entries = []history.RecentSearch{}
	}
	return c.JSON(fiber.Map{"searches": entries})
}

// GetRecentLocations returns the remembered place selections, newest first.
func GetRecentLocations(c *fiber.Ctx) error {
	entries := hist.RecentPlaces(c.Context())
	if entries == nil {
		entries = []history.RecentPlace{}
	}
	return c.JSON(fiber.Map{"locations": entries})
}

// SaveRecentLocation remembers a place the user selected from the places
// dropdown (or their device location).
func SaveRecentLocation(c *fiber.Ctx) error {
	place := new(places.Place)
	if err := c.BodyParser(place); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}
	if place.PlaceID == "" || place.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "place_id and name are required",
		})
	}

	hist.RememberPlace(c.Context(), *place)
	return c.Status(fiber.StatusCreated).JSON(place)
}

// ClearHistory drops both recent lists.
func ClearHistory(c *fiber.Ctx) error {
	hist.Clear(c.Context())
	return c.SendStatus(fiber.StatusNoContent)
}
