package news

import (
	"time"

	"warta/internal/model"
)

// FallbackArticles is the static article set served when neither live data
// nor any cache entry is available. When a category is given, the set is
// filtered to it.
func FallbackArticles(category model.Category) []model.Article {
	now := time.Now()

	base := []model.Article{
		{
			ID:          "mock-1",
			Title:       "Malaysia Announces New Economic Recovery Plan",
			Description: "The Malaysian government unveils a comprehensive economic recovery plan to boost post-pandemic growth.",
			URL:         "https://example.com/article-1",
			ImageURL:    "https://placehold.co/600x400?text=Malaysia+Economic+Recovery+Plan",
			PublishedAt: now,
			Source:      model.Source{ID: "mock-source", Name: "Malaysia Today"},
			Category:    model.CategoryEconomy,
			Author:      "Economic Reporter",
		},
		{
			ID:          "mock-2",
			Title:       "Parliament Debates New Healthcare Reform Bill",
			Description: "Heated discussions in Parliament as lawmakers examine proposed healthcare system improvements.",
			URL:         "https://example.com/article-2",
			ImageURL:    "https://placehold.co/600x400?text=Malaysian+Parliament+Healthcare+Debate",
			PublishedAt: now.Add(-1 * time.Hour),
			Source:      model.Source{ID: "mock-source-2", Name: "The Malaysian"},
			Category:    model.CategoryPolitics,
			Author:      "Political Correspondent",
		},
		{
			ID:          "mock-3",
			Title:       "Community Initiative Addresses Urban Housing Crisis",
			Description: "Local communities in Kuala Lumpur launch innovative programs to tackle affordable housing shortage.",
			URL:         "https://example.com/article-3",
			ImageURL:    "https://placehold.co/600x400?text=Kuala+Lumpur+Housing+Initiative",
			PublishedAt: now.Add(-2 * time.Hour),
			Source:      model.Source{ID: "mock-source-3", Name: "Community News"},
			Category:    model.CategorySocial,
			Author:      "Social Reporter",
		},
		{
			ID:          "mock-4",
			Title:       "Tech Sector Shows Strong Growth in Q4",
			Description: "Malaysian technology companies report record profits as digital transformation accelerates.",
			URL:         "https://example.com/article-4",
			ImageURL:    "https://placehold.co/600x400?text=Malaysian+Tech+Sector+Growth",
			PublishedAt: now.Add(-3 * time.Hour),
			Source:      model.Source{ID: "mock-source-4", Name: "Tech Malaysia"},
			Category:    model.CategoryEconomy,
			Author:      "Tech Analyst",
		},
	}

	if category == "" {
		return base
	}

	filtered := make([]model.Article, 0, len(base))
	for _, article := range base {
		if article.Category == category {
			filtered = append(filtered, article)
		}
	}
	return filtered
}
