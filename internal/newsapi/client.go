// Package newsapi talks to the external news provider and normalizes its
// records into the canonical article shape.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"warta/internal/model"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL  = "https://newsapi.org/v2"
	defaultCountry  = "my"
	defaultPageSize = 20
	defaultTimeout  = 10 * time.Second
)

// Config for the news provider client.
type Config struct {
	BaseURL string
	APIKey  string
	Country string
	Timeout time.Duration
}

// Client fetches headlines from the provider. Outbound calls are bounded
// by the configured timeout and rate-limited so a burst of cache misses
// cannot hammer the provider.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Country == "" {
		cfg.Country = defaultCountry
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(2), 4),
		logger:  logger,
	}
}

// providerResponse is the strict schema for the provider payload. A body
// that fails to decode into it is the malformed-body failure case.
type providerResponse struct {
	Status       string       `json:"status"`
	TotalResults int          `json:"totalResults"`
	Articles     []rawArticle `json:"articles"`
}

type rawArticle struct {
	Source      rawSource `json:"source"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage"`
	PublishedAt string    `json:"publishedAt"`
	Content     string    `json:"content"`
}

type rawSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TopHeadlines queries the provider and returns normalized articles.
// Any network error, non-2xx status or malformed body is returned as an
// error; the caller decides how to degrade.
func (c *Client) TopHeadlines(ctx context.Context, params model.SearchParams) ([]model.Article, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	endpoint := c.cfg.BaseURL + "/top-headlines?" + c.buildQuery(params).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news provider request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("news provider returned status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading provider response: %w", err)
	}

	var payload providerResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("malformed provider response: %w", err)
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("news provider status %q", payload.Status)
	}

	articles := make([]model.Article, 0, len(payload.Articles))
	for _, raw := range payload.Articles {
		articles = append(articles, Normalize(raw))
	}

	c.logger.Debug("fetched headlines",
		zap.Int("count", len(articles)),
		zap.String("query", params.Query),
		zap.String("category", string(params.Category)))

	return articles, nil
}

// buildQuery maps retrieval parameters onto the provider's query string.
// Category values expand into provider keyword queries; a user query is
// appended to, not replacing, the category keywords.
func (c *Client) buildQuery(params model.SearchParams) url.Values {
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	page := params.Page
	if page <= 0 {
		page = 1
	}
	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "publishedAt"
	}

	q := url.Values{}
	q.Set("country", c.cfg.Country)
	q.Set("apiKey", c.cfg.APIKey)
	q.Set("pageSize", strconv.Itoa(pageSize))
	q.Set("page", strconv.Itoa(page))
	q.Set("sortBy", sortBy)

	switch params.Category {
	case model.CategoryPolitics:
		q.Set("category", "general")
		q.Set("q", "Malaysia politics government parliament")
	case model.CategoryEconomy:
		q.Set("category", "business")
		q.Set("q", "Malaysia economy business finance")
	case model.CategorySocial:
		q.Set("category", "general")
		q.Set("q", "Malaysia social society community")
	}

	if params.Query != "" {
		if existing := q.Get("q"); existing != "" {
			q.Set("q", existing+" "+params.Query)
		} else {
			q.Set("q", "Malaysia "+params.Query)
		}
	}

	if params.From != "" {
		q.Set("from", params.From)
	}
	if params.To != "" {
		q.Set("to", params.To)
	}

	return q
}
