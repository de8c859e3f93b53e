package newsapi

import (
	"hash/fnv"
	"strconv"
	"time"

	"warta/internal/classify"
	"warta/internal/model"
)

const idLength = 10

// ArticleID derives a stable identifier from a source URL. The same URL
// always yields the same id, across runs and processes.
func ArticleID(rawURL string) string {
	h := fnv.New32a()
	h.Write([]byte(rawURL))
	id := strconv.FormatUint(uint64(h.Sum32()), 36)
	if len(id) > idLength {
		id = id[:idLength]
	}
	return id
}

// Normalize converts a raw provider record into a canonical Article.
// Missing source fields get sentinel defaults; the category is inferred
// from title and description.
func Normalize(raw rawArticle) model.Article {
	sourceID := raw.Source.ID
	if sourceID == "" {
		sourceID = "unknown"
	}
	sourceName := raw.Source.Name
	if sourceName == "" {
		sourceName = "Unknown Source"
	}

	publishedAt, err := time.Parse(time.RFC3339, raw.PublishedAt)
	if err != nil {
		publishedAt = time.Time{}
	}

	return model.Article{
		ID:          ArticleID(raw.URL),
		Title:       raw.Title,
		Description: raw.Description,
		Content:     raw.Content,
		URL:         raw.URL,
		ImageURL:    raw.URLToImage,
		PublishedAt: publishedAt,
		Source:      model.Source{ID: sourceID, Name: sourceName},
		Category:    classify.Classify(raw.Title, raw.Description),
		Author:      raw.Author,
	}
}
