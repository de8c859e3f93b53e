// Package cache holds time-boxed news retrieval results keyed by query.
// Entries are never deleted on expiry: a stale entry stays around as a
// degraded answer for when the live provider is unreachable.
package cache

import (
	"context"
	"fmt"
	"time"

	"warta/internal/model"
)

// DefaultFreshness is how long an entry is preferred over a live fetch.
const DefaultFreshness = 10 * time.Minute

// Entry is one cached retrieval result.
type Entry struct {
	Articles  []model.Article `json:"articles"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// Fresh reports whether the entry is still inside the freshness window.
func (e Entry) Fresh(window time.Duration, now time.Time) bool {
	return now.Sub(e.FetchedAt) < window
}

// Store is a key/value store for retrieval results. Implementations must
// make Get and Set atomic per key; last-writer-wins is acceptable when two
// requests refresh the same key at once.
type Store interface {
	Get(ctx context.Context, key string) (Entry, bool, error)
	Set(ctx context.Context, key string, entry Entry) error
}

// Key serializes query parameters into a canonical cache key. The field
// order is fixed, so two parameter structs with the same values always
// map to the same key regardless of how they were built.
func Key(p model.SearchParams) string {
	return fmt.Sprintf("category=%s&from=%s&page=%d&pageSize=%d&q=%s&sortBy=%s&to=%s",
		p.Category, p.From, p.Page, p.PageSize, p.Query, p.SortBy, p.To)
}
