package archive

import (
	"context"
	"time"

	"warta/internal/classify"
	"warta/internal/model"
	"warta/internal/newsapi"

	"github.com/go-shiori/go-readability"
	"go.uber.org/zap"
)

const scrapeTimeout = 30 * time.Second

// Scraper downloads and extracts a web page. Behind an interface so tests
// can skip the network.
type Scraper interface {
	Scrape(url string, timeout time.Duration) (*readability.Article, error)
}

// DefaultScraper is the real implementation that uses the internet.
type DefaultScraper struct{}

func (s *DefaultScraper) Scrape(url string, timeout time.Duration) (*readability.Article, error) {
	art, err := readability.FromURL(url, timeout)
	return &art, err
}

// Archiver turns an arbitrary URL into an Article fit for summarization,
// consulting the content cache first.
type Archiver struct {
	store   *Store
	scraper Scraper
	logger  *zap.Logger
}

func NewArchiver(store *Store, logger *zap.Logger) *Archiver {
	return &Archiver{
		store:   store,
		scraper: &DefaultScraper{},
		logger:  logger,
	}
}

// Fetch returns an article for the URL. Cached content is reused; a fresh
// scrape is cached for next time. A failed scrape degrades to a placeholder
// article carrying only the URL, so summarization still has something to
// work with.
func (a *Archiver) Fetch(ctx context.Context, rawURL string) model.Article {
	id := newsapi.ArticleID(rawURL)

	if cached, ok, err := a.store.get(id); err == nil && ok {
		return a.build(id, rawURL, cached)
	} else if err != nil {
		a.logger.Warn("content cache read failed", zap.Error(err))
	}

	parsed, err := a.scraper.Scrape(rawURL, scrapeTimeout)
	if err != nil {
		a.logger.Warn("scraping failed, using placeholder article",
			zap.String("url", rawURL), zap.Error(err))
		return placeholder(id, rawURL)
	}

	e := extract{Title: parsed.Title, Excerpt: parsed.Excerpt, Content: parsed.TextContent}
	if err := a.store.set(id, e); err != nil {
		a.logger.Warn("content cache write failed", zap.Error(err))
	}

	return a.build(id, rawURL, e)
}

func (a *Archiver) build(id, rawURL string, e extract) model.Article {
	return model.Article{
		ID:          id,
		Title:       e.Title,
		Description: e.Excerpt,
		Content:     e.Content,
		URL:         rawURL,
		PublishedAt: time.Now(),
		Source:      model.Source{ID: "external", Name: "External Source"},
		Category:    classify.Classify(e.Title, e.Excerpt),
	}
}

func placeholder(id, rawURL string) model.Article {
	return model.Article{
		ID:          id,
		Title:       "Article to Summarize",
		Description: "Article content from provided URL",
		URL:         rawURL,
		PublishedAt: time.Now(),
		Source:      model.Source{ID: "external", Name: "External Source"},
		Category:    model.CategoryGeneral,
	}
}
