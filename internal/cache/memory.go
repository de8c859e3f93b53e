package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize bounds the number of distinct query keys kept in memory.
const DefaultSize = 256

// Memory is an in-process Store backed by a bounded LRU. Eviction only
// happens under capacity pressure, so stale entries survive long enough
// to serve as fallback data.
type Memory struct {
	entries *lru.Cache[string, Entry]
}

// NewMemory creates an in-memory store holding at most size entries.
// A non-positive size falls back to DefaultSize.
func NewMemory(size int) *Memory {
	if size <= 0 {
		size = DefaultSize
	}
	// lru.New only errors on size <= 0, which is excluded above.
	entries, _ := lru.New[string, Entry](size)
	return &Memory{entries: entries}
}

func (m *Memory) Get(_ context.Context, key string) (Entry, bool, error) {
	entry, ok := m.entries.Get(key)
	return entry, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, entry Entry) error {
	m.entries.Add(key, entry)
	return nil
}
