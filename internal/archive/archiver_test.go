package archive

import (
	"context"
	"fmt"
	"testing"
	"time"

	"warta/internal/model"
	"warta/internal/newsapi"

	"github.com/go-shiori/go-readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockScraper struct {
	calls      int
	title      string
	content    string
	shouldFail bool
}

func (m *mockScraper) Scrape(url string, timeout time.Duration) (*readability.Article, error) {
	m.calls++
	if m.shouldFail {
		return nil, fmt.Errorf("simulated 404 error")
	}
	return &readability.Article{
		Title:       m.title,
		TextContent: m.content,
		Excerpt:     "A short excerpt about the government",
	}, nil
}

func newTestArchiver(t *testing.T, scraper Scraper) *Archiver {
	t.Helper()
	store, err := OpenStore("")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	a := NewArchiver(store, zap.NewNop())
	a.scraper = scraper
	return a
}

func TestFetch_ScrapesAndCaches(t *testing.T) {
	scraper := &mockScraper{title: "Parliament Update", content: "Long article body"}
	a := newTestArchiver(t, scraper)

	url := "https://example.com/parliament"
	article := a.Fetch(context.Background(), url)

	assert.Equal(t, newsapi.ArticleID(url), article.ID)
	assert.Equal(t, "Parliament Update", article.Title)
	assert.Equal(t, "Long article body", article.Content)
	assert.Equal(t, model.CategoryPolitics, article.Category)

	// Second fetch must come from the content cache.
	again := a.Fetch(context.Background(), url)
	assert.Equal(t, 1, scraper.calls)
	assert.Equal(t, article.Title, again.Title)
	assert.Equal(t, article.Content, again.Content)
}

func TestFetch_ScrapeFailureYieldsPlaceholder(t *testing.T) {
	a := newTestArchiver(t, &mockScraper{shouldFail: true})

	article := a.Fetch(context.Background(), "https://bad.example.com/x")

	assert.Equal(t, "Article to Summarize", article.Title)
	assert.Equal(t, "external", article.Source.ID)
	assert.Equal(t, model.CategoryGeneral, article.Category)
	assert.NotEmpty(t, article.ID)
}

func TestStore_CompressedRoundTrip(t *testing.T) {
	store, err := OpenStore("")
	require.NoError(t, err)
	defer store.Close()

	in := extract{Title: "T", Excerpt: "E", Content: "body text"}
	require.NoError(t, store.set("id1", in))

	out, ok, err := store.get("id1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)

	_, ok, err = store.get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
