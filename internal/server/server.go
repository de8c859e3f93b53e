// Package server exposes the chat and news operations over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"warta/internal/model"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewsService is the read side of the news layer.
type NewsService interface {
	Search(ctx context.Context, query string, category model.Category) []model.Article
	ByCategory(ctx context.Context, category model.Category) []model.Article
	Latest(ctx context.Context, limit int) []model.Article
}

// ChatService relays a conversation and returns the reply plus any
// context articles that were injected.
type ChatService interface {
	Converse(ctx context.Context, history []model.ChatMessage, includeNews bool, newsQuery string) (string, []model.Article, error)
}

// Summarizer produces a structured summary for one article.
type Summarizer interface {
	Summarize(ctx context.Context, article model.Article, maxLength int) (model.SummaryResult, error)
}

// ArticleFetcher resolves a raw URL into an article fit for summarization.
type ArticleFetcher interface {
	Fetch(ctx context.Context, rawURL string) model.Article
}

type Server struct {
	news       NewsService
	chat       ChatService
	summarizer Summarizer
	archiver   ArticleFetcher
	logger     *zap.Logger
	router     *mux.Router
	server     *http.Server
}

func NewServer(news NewsService, chat ChatService, summarizer Summarizer, archiver ArticleFetcher, logger *zap.Logger) *Server {
	s := &Server{
		news:       news,
		chat:       chat,
		summarizer: summarizer,
		archiver:   archiver,
		logger:     logger,
		router:     mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.recoverMiddleware, s.loggingMiddleware)

	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/api/chat", s.handleChat).Methods(http.MethodPost)
	s.router.HandleFunc("/api/news", s.handleNews).Methods(http.MethodGet)
	s.router.HandleFunc("/api/news/search", s.handleSearch).Methods(http.MethodGet)
	s.router.HandleFunc("/api/news/summarize", s.handleSummarize).Methods(http.MethodPost)
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start launches the HTTP server. The write timeout leaves room for a
// slow LLM round trip.
func (s *Server) Start(port string) error {
	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	s.logger.Info("HTTP server listening", zap.String("addr", port))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
