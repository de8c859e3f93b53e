package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"warta/internal/model"

	"go.uber.org/zap"
)

// summarizeLookupWindow is how many recent articles are scanned when a
// summarize request refers to an article by id.
const summarizeLookupWindow = 50

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Malaysia News Chatbot API",
		"endpoints": map[string]string{
			"chat":      "POST /api/chat",
			"news":      "GET /api/news",
			"search":    "GET /api/news/search",
			"summarize": "POST /api/news/summarize",
		},
	})
}

type chatRequest struct {
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	IncludeNews bool   `json:"includeNews"`
	NewsQuery   string `json:"newsQuery"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Messages == nil {
		writeError(w, http.StatusBadRequest, "messages array is required")
		return
	}

	history := make([]model.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, model.ChatMessage{Role: model.Role(m.Role), Content: m.Content})
	}

	reply, contextArticles, err := s.chat.Converse(r.Context(), history, req.IncludeNews, req.NewsQuery)
	if err != nil {
		s.logger.Error("chat failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "Failed to get AI response. Please try again.")
		return
	}

	resp := map[string]any{
		"response":  reply,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if len(contextArticles) > 0 {
		resp["contextArticles"] = contextArticles
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category, _ := model.ParseCategory(q.Get("category"))
	query := q.Get("query")

	limit := 20
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	ctx := r.Context()
	var articles []model.Article
	switch {
	case query != "":
		articles = s.news.Search(ctx, query, category)
	case category != "" && category != model.CategoryGeneral:
		articles = s.news.ByCategory(ctx, category)
	default:
		articles = s.news.Latest(ctx, limit)
	}

	total := len(articles)
	if len(articles) > limit {
		articles = articles[:limit]
	}

	categoryLabel := "all"
	if category != "" {
		categoryLabel = string(category)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"articles":  articles,
		"total":     total,
		"category":  categoryLabel,
		"query":     query,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	if query == "" {
		query = q.Get("query")
	}
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter is required")
		return
	}

	category, _ := model.ParseCategory(q.Get("category"))
	limit := 15
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	articles := s.news.Search(r.Context(), query, category)
	total := len(articles)
	if len(articles) > limit {
		articles = articles[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"articles":  articles,
		"total":     total,
		"query":     query,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

type summarizeRequest struct {
	ArticleID  string `json:"articleId"`
	ArticleURL string `json:"articleUrl"`
	MaxLength  int    `json:"maxLength"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ArticleID == "" && req.ArticleURL == "" {
		writeError(w, http.StatusBadRequest, "either articleUrl or articleId is required")
		return
	}
	if req.MaxLength <= 0 {
		req.MaxLength = 200
	}

	ctx := r.Context()
	var article model.Article
	if req.ArticleID != "" {
		found := false
		for _, a := range s.news.Latest(ctx, summarizeLookupWindow) {
			if a.ID == req.ArticleID {
				article = a
				found = true
				break
			}
		}
		if !found {
			writeError(w, http.StatusNotFound, "article not found")
			return
		}
	} else {
		article = s.archiver.Fetch(ctx, req.ArticleURL)
	}

	summary, err := s.summarizer.Summarize(ctx, article, req.MaxLength)
	if err != nil {
		s.logger.Error("summarization failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "Failed to summarize article. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"summary": summary,
		"article": map[string]string{
			"id":     article.ID,
			"title":  article.Title,
			"url":    article.URL,
			"source": article.Source.Name,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
