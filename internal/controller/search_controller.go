package controller

import (
	"github.com/gofiber/fiber/v2"

	"iqaama_backend/pkg/catalog"
	"iqaama_backend/pkg/search"
	"iqaama_backend/pkg/stats"
)

// CriteriaLocalKey is where the search handler parks the normalized
// criteria so the history middleware can record it after the response.
const CriteriaLocalKey = "search_criteria"

var (
	geocoder    search.Geocoder
	searchTerms *stats.Terms
)

func InitSearchController(g search.Geocoder, terms *stats.Terms) {
	geocoder = g
	searchTerms = terms
}

// SearchProperties runs the filter/rank pipeline over the catalog. Zero
// matches is a normal outcome, flagged for the client, never an error.
func SearchProperties(c *fiber.Ctx) error {
	var input search.Input
	if err := c.QueryParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid search parameters",
		})
	}

	criteria := search.Normalize(input)
	results := search.Search(catalog.All(), criteria, geocoder)

	if searchTerms != nil {
		searchTerms.Record(criteria.Location)
	}
	c.Locals(CriteriaLocalKey, criteria)

	return c.JSON(fiber.Map{
		"criteria":   criteria,
		"results":    results,
		"count":      len(results),
		"no_results": len(results) == 0,
	})
}
