package model

import (
	"strings"
	"time"
)

// Category is a closed set of news categories. Anything that cannot be
// classified falls back to CategoryGeneral.
type Category string

const (
	CategoryPolitics Category = "politics"
	CategoryEconomy  Category = "economy"
	CategorySocial   Category = "social"
	CategoryGeneral  Category = "general"
)

// AllCategories returns the valid categories in canonical order.
func AllCategories() []Category {
	return []Category{CategoryPolitics, CategoryEconomy, CategorySocial, CategoryGeneral}
}

// ParseCategory maps a string to a Category. The second return value is
// false when the input is not one of the known categories.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryPolitics:
		return CategoryPolitics, true
	case CategoryEconomy:
		return CategoryEconomy, true
	case CategorySocial:
		return CategorySocial, true
	case CategoryGeneral:
		return CategoryGeneral, true
	}
	return "", false
}

// Source identifies the outlet an article came from.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article is the canonical normalized news item.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content,omitempty"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"urlToImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      Source    `json:"source"`
	Category    Category  `json:"category"`
	Author      string    `json:"author,omitempty"`
	Summary     string    `json:"summary,omitempty"`
}

// SearchParams describes a news retrieval query. Its canonical serialization
// doubles as the cache key, so field semantics must stay stable.
type SearchParams struct {
	Query    string   `json:"query,omitempty"`
	Category Category `json:"category,omitempty"`
	SortBy   string   `json:"sortBy,omitempty"`
	PageSize int      `json:"pageSize,omitempty"`
	Page     int      `json:"page,omitempty"`
	// From and To bound the publication date range, in the provider's
	// date format.
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}
