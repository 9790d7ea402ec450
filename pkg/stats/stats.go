package stats

import (
	"sort"
	"sync"
	"time"
)

// ViewCooldown is how long the same IP must wait before it counts as a new
// view of the same property.
const ViewCooldown = 24 * time.Hour

// Views counts property views in memory, de-duplicated per (property, IP)
// within the cooldown window.
type Views struct {
	mu       sync.Mutex
	counts   map[uint]int64
	lastSeen map[viewKey]time.Time
}

type viewKey struct {
	propertyID uint
	ip         string
}

func NewViews() *Views {
	return &Views{
		counts:   make(map[uint]int64),
		lastSeen: make(map[viewKey]time.Time),
	}
}

// Record registers a view and reports whether it was counted.
func (v *Views) Record(propertyID uint, ip string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	key := viewKey{propertyID: propertyID, ip: ip}
	now := time.Now()
	if last, ok := v.lastSeen[key]; ok && now.Sub(last) < ViewCooldown {
		return false
	}
	v.lastSeen[key] = now
	v.counts[propertyID]++
	return true
}

// Count returns the views recorded for one property.
func (v *Views) Count(propertyID uint) int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.counts[propertyID]
}

// Total returns the views recorded across the catalog.
func (v *Views) Total() int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	var total int64
	for _, n := range v.counts {
		total += n
	}
	return total
}

// Top returns the most viewed property IDs, highest first.
func (v *Views) Top(limit int) []uint {
	v.mu.Lock()
	defer v.mu.Unlock()

	ids := make([]uint, 0, len(v.counts))
	for id := range v.counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if v.counts[ids[i]] != v.counts[ids[j]] {
			return v.counts[ids[i]] > v.counts[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids
}

// Terms counts how often search terms were used, for the popular-search
// snapshot.
type Terms struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewTerms() *Terms {
	return &Terms{counts: make(map[string]int64)}
}

func (t *Terms) Record(term string) {
	if term == "" {
		return
	}
	t.mu.Lock()
	t.counts[term]++
	t.mu.Unlock()
}

// TermCount is one popular-search entry.
type TermCount struct {
	Term  string `json:"term"`
	Count int64  `json:"count"`
}

// Top returns the most used terms, highest first, ties alphabetical.
func (t *Terms) Top(limit int) []TermCount {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := make([]TermCount, 0, len(t.counts))
	for term, n := range t.counts {
		entries = append(entries, TermCount{Term: term, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Term < entries[j].Term
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
