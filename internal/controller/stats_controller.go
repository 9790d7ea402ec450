package controller

import (
	"github.com/gofiber/fiber/v2"

	"iqaama_backend/internal/model"
	"iqaama_backend/pkg/catalog"
	"iqaama_backend/pkg/cron"
	"iqaama_backend/pkg/history"
	"iqaama_backend/pkg/stats"
)

// DashboardStats summarizes the catalog and its traffic.
type DashboardStats struct {
	TotalListings     int                `json:"total_listings"`
	VerifiedListings  int                `json:"verified_listings"`
	TotalViews        int64              `json:"total_views"`
	TopProperties     []TopProperty      `json:"top_properties"`
	PropertyTypeStats []PropertyTypeStat `json:"property_type_stats"`
	PopularSearches   []stats.TermCount  `json:"popular_searches"`
}

type TopProperty struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Views    int64  `json:"views"`
	Location string `json:"location"`
	Type     string `json:"type"`
}

type PropertyTypeStat struct {
	Type  model.PropertyType `json:"type"`
	Count int                `json:"count"`
}

var statsStore history.Store

func InitStatsController(store history.Store) {
	statsStore = store
}

// GetDashboardStats aggregates listing counts, view totals, the most viewed
// listings and the latest popular-search snapshot.
func GetDashboardStats(c *fiber.Ctx) error {
	var s DashboardStats

	byType := make(map[model.PropertyType]int)
	for _, p := range catalog.All() {
		s.TotalListings++
		if p.Verified {
			s.VerifiedListings++
		}
		byType[p.Type]++
	}
	for _, t := range model.KnownPropertyTypes {
		if byType[t] == 0 {
			continue
		}
		s.PropertyTypeStats = append(s.PropertyTypeStats, PropertyTypeStat{Type: t, Count: byType[t]})
	}

	s.TotalViews = propertyViews.Total()
	for _, id := range propertyViews.Top(5) {
		property, ok := catalog.ByID(id)
		if !ok {
			continue
		}
		s.TopProperties = append(s.TopProperties, TopProperty{
			ID:       property.ID,
			Title:    property.Title,
			Views:    propertyViews.Count(property.ID),
			Location: property.Location,
			Type:     string(property.Type),
		})
	}

	s.PopularSearches = cron.PopularSearches(statsStore)

	return c.JSON(s)
}
