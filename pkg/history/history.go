package history

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"iqaama_backend/internal/model"
	"iqaama_backend/pkg/places"
)

const (
	keyRecentPlaces   = "recent:places"
	keyRecentSearches = "recent:searches"

	maxRecentPlaces   = 5
	maxRecentSearches = 10
)

// RecentSearch is one remembered search, newest first in the stored list.
type RecentSearch struct {
	ID       string         `json:"id"`
	Criteria model.Criteria `json:"criteria"`
	SavedAt  time.Time      `json:"saved_at"`
}

// RecentPlace is one remembered location selection.
type RecentPlace struct {
	Place   places.Place `json:"place"`
	SavedAt time.Time    `json:"saved_at"`
}

// History keeps bounded most-recent-first lists of searches and selected
// places on top of a Store. A nil or failing store degrades to empty
// history; it never fails a search.
type History struct {
	store Store
}

func New(store Store) *History {
	return &History{store: store}
}

// RememberSearch prepends the criteria to the recent-search list,
// de-duplicated by criteria identity and capped at 10 entries.
func (h *History) RememberSearch(ctx context.Context, c model.Criteria) {
	if h == nil || h.store == nil {
		return
	}
	entries := h.RecentSearches(ctx)

	kept := make([]RecentSearch, 0, len(entries)+1)
	kept = append(kept, RecentSearch{ID: uuid.NewString(), Criteria: c, SavedAt: time.Now()})
	for _, e := range entries {
		if e.Criteria == c {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > maxRecentSearches {
		kept = kept[:maxRecentSearches]
	}

	if err := h.store.Set(ctx, keyRecentSearches, kept); err != nil {
		slog.Warn("could not persist recent searches", "err", err)
	}
}

// RememberPlace prepends a selected place, de-duplicated by place ID and
// capped at 5 entries.
func (h *History) RememberPlace(ctx context.Context, p places.Place) {
	if h == nil || h.store == nil {
		return
	}
	entries := h.RecentPlaces(ctx)

	kept := make([]RecentPlace, 0, len(entries)+1)
	kept = append(kept, RecentPlace{Place: p, SavedAt: time.Now()})
	for _, e := range entries {
		if e.Place.PlaceID == p.PlaceID {
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) > maxRecentPlaces {
		kept = kept[:maxRecentPlaces]
	}

	if err := h.store.Set(ctx, keyRecentPlaces, kept); err != nil {
		slog.Warn("could not persist recent places", "err", err)
	}
}

// RecentSearches returns the stored list, newest first. Missing or broken
// cache data is reported as an empty list.
func (h *History) RecentSearches(ctx context.Context) []RecentSearch {
	if h == nil || h.store == nil {
		return nil
	}
	var entries []RecentSearch
	ok, err := h.store.Get(ctx, keyRecentSearches, &entries)
	if err != nil {
		slog.Warn("could not read recent searches", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	return entries
}

// RecentPlaces returns the stored list, newest first.
func (h *History) RecentPlaces(ctx context.Context) []RecentPlace {
	if h == nil || h.store == nil {
		return nil
	}
	var entries []RecentPlace
	ok, err := h.store.Get(ctx, keyRecentPlaces, &entries)
	if err != nil {
		slog.Warn("could not read recent places", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	return entries
}

// Clear drops both lists.
func (h *History) Clear(ctx context.Context) {
	if h == nil || h.store == nil {
		return
	}
	if err := h.store.Delete(ctx, keyRecentSearches); err != nil {
		slog.Warn("could not clear recent searches", "err", err)
	}
	if err := h.store.Delete(ctx, keyRecentPlaces); err != nil {
		slog.Warn("could not clear recent places", "err", err)
	}
}
