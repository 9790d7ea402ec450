package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/lmittmann/tint"

	"iqaama_backend/internal/controller"
	"iqaama_backend/internal/middleware"
	"iqaama_backend/pkg/catalog"
	"iqaama_backend/pkg/config"
	"iqaama_backend/pkg/cron"
	"iqaama_backend/pkg/history"
	"iqaama_backend/pkg/places"
	"iqaama_backend/pkg/stats"
)

func setupRoutes(app *fiber.App, hist *history.History) {
	api := app.Group("/api")

	// Search
	api.Get("/search", middleware.RecordSearchHistory(hist), controller.SearchProperties)

	// Listings
	properties := api.Group("/properties")
	properties.Get("/", controller.ListProperties)
	properties.Get("/:property_slug", controller.GetPropertyBySlug)
	properties.Post("/:id/view", controller.RecordPropertyView)
	properties.Get("/:id/contact", controller.GetContactOptions)

	// Places lookup
	api.Get("/places/search", controller.SearchPlaces)

	// Filter option dictionaries
	api.Get("/locations/emirates", controller.GetEmirates)
	api.Get("/locations/countries", controller.GetCountries)
	api.Get("/locations/types", controller.GetPropertyTypes)

	// Recent-search cache
	recents := api.Group("/history")
	recents.Get("/searches", controller.GetRecentSearches)
	recents.Get("/locations", controller.GetRecentLocations)
	recents.Post("/locations", controller.SaveRecentLocation)
	recents.Delete("/", controller.ClearHistory)

	// Map view
	api.Get("/map/markers", controller.GetMapMarkers)
	api.Get("/map/markers/:id", controller.ResolveMarker)

	// Dashboard
	api.Get("/dashboard/stats", controller.GetDashboardStats)
}

func main() {
	cfg := config.Load()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: "2006-01-02 15:04:05",
	})))

	if err := catalog.Init(); err != nil {
		log.Fatal("Could not load property catalog:", err)
	}
	slog.Info("catalog loaded", "properties", catalog.Count())

	var store history.Store = history.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		rs := history.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rs.Ping(ctx); err != nil {
			slog.Warn("redis unreachable, recent searches kept in memory", "err", err)
		} else {
			store = rs
			slog.Info("recent searches persisted to redis", "addr", cfg.Redis.Addr)
		}
		cancel()
	}

	hist := history.New(store)
	views := stats.NewViews()
	terms := stats.NewTerms()
	directory := places.NewDirectory()

	controller.InitSearchController(directory, terms)
	controller.InitPropertyController(views)
	controller.InitPlacesController(directory)
	controller.InitHistoryController(hist)
	controller.InitStatsController(store)

	cron.InitSearchStatsCron(store, views, terms)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(requestid.New())

	setupRoutes(app, hist)

	slog.Info("server starting", "port", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
