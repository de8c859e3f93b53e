// Package news composes the provider client, the retrieval cache and the
// static fallback set into the news read operations.
package news

import (
	"context"
	"time"

	"warta/internal/cache"
	"warta/internal/model"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	searchPageSize   = 15
	categoryPageSize = 20
	defaultLatest    = 10
)

// Provider fetches live headlines. Satisfied by *newsapi.Client.
type Provider interface {
	TopHeadlines(ctx context.Context, params model.SearchParams) ([]model.Article, error)
}

// Service implements search, by-category and latest retrieval. All three
// funnel through the cache: fresh cache -> live fetch -> stale cache ->
// static fallback set. Provider failures never reach the caller; the
// worst case is a degraded but present article list.
type Service struct {
	provider  Provider
	store     cache.Store
	freshness time.Duration
	logger    *zap.Logger
	now       func() time.Time

	// Collapses concurrent identical fetches so one cache miss does not
	// turn into N provider calls.
	group singleflight.Group
}

// Option configures a Service.
type Option func(*Service)

// WithFreshness overrides the cache freshness window.
func WithFreshness(d time.Duration) Option {
	return func(s *Service) { s.freshness = d }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(provider Provider, store cache.Store, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		provider:  provider,
		store:     store,
		freshness: cache.DefaultFreshness,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search returns articles matching a free-text query, optionally narrowed
// to a category. Results are sorted by relevancy.
func (s *Service) Search(ctx context.Context, query string, category model.Category) []model.Article {
	return s.fetch(ctx, model.SearchParams{
		Query:    query,
		Category: category,
		SortBy:   "relevancy",
		PageSize: searchPageSize,
	})
}

// ByCategory returns the newest articles for one category.
func (s *Service) ByCategory(ctx context.Context, category model.Category) []model.Article {
	return s.fetch(ctx, model.SearchParams{
		Category: category,
		SortBy:   "publishedAt",
		PageSize: categoryPageSize,
	})
}

// Latest returns at most limit of the newest articles. The provider page
// size is a hint, not a hard cap, so the result is truncated client-side.
func (s *Service) Latest(ctx context.Context, limit int) []model.Article {
	if limit <= 0 {
		limit = defaultLatest
	}
	articles := s.fetch(ctx, model.SearchParams{
		SortBy:   "publishedAt",
		PageSize: limit,
	})
	if len(articles) > limit {
		articles = articles[:limit]
	}
	return articles
}

func (s *Service) fetch(ctx context.Context, params model.SearchParams) []model.Article {
	key := cache.Key(params)

	if entry, ok, err := s.store.Get(ctx, key); err == nil && ok && entry.Fresh(s.freshness, s.now()) {
		return entry.Articles
	} else if err != nil {
		s.logger.Warn("cache read failed", zap.Error(err))
	}

	result, err, _ := s.group.Do(key, func() (any, error) {
		articles, err := s.provider.TopHeadlines(ctx, params)
		if err != nil {
			return nil, err
		}
		if err := s.store.Set(ctx, key, cache.Entry{Articles: articles, FetchedAt: s.now()}); err != nil {
			s.logger.Warn("cache write failed", zap.Error(err))
		}
		return articles, nil
	})
	if err == nil {
		return result.([]model.Article)
	}

	s.logger.Warn("news provider unavailable, degrading",
		zap.Error(err),
		zap.String("key", key))

	// Stale data beats no data.
	if entry, ok, gerr := s.store.Get(ctx, key); gerr == nil && ok {
		return entry.Articles
	}

	return FallbackArticles(params.Category)
}
