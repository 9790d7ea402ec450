package cron

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"iqaama_backend/pkg/catalog"
	"iqaama_backend/pkg/history"
	"iqaama_backend/pkg/stats"
)

const popularSearchesKey = "stats:popular_searches"

// InitSearchStatsCron snapshots the most used search terms into the
// key-value store every hour and logs daily catalog totals.
func InitSearchStatsCron(store history.Store, views *stats.Views, terms *stats.Terms) {
	c := cron.New()

	// Every hour on the hour
	_, err := c.AddFunc("0 * * * *", func() {
		snapshotPopularSearches(store, terms)
	})

	// Every day at 20:00
	_, err = c.AddFunc("0 20 * * *", func() {
		slog.Info("daily catalog stats",
			"properties", catalog.Count(),
			"total_views", views.Total())
	})

	if err != nil {
		slog.Error("could not initialize search stats cron", "err", err)
		return
	}

	c.Start()
}

func snapshotPopularSearches(store history.Store, terms *stats.Terms) {
	top := terms.Top(10)
	if len(top) == 0 {
		return
	}
	if err := store.Set(context.Background(), popularSearchesKey, top); err != nil {
		slog.Warn("could not snapshot popular searches", "err", err)
	}
}

// PopularSearches reads the last snapshot; absent cache means an empty list.
func PopularSearches(store history.Store) []stats.TermCount {
	var top []stats.TermCount
	ok, err := store.Get(context.Background(), popularSearchesKey, &top)
	if err != nil || !ok {
		return nil
	}
	return top
}
