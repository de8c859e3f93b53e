package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"warta/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticle() model.Article {
	return model.Article{
		ID:          "abc123",
		Title:       "Parliament passes budget",
		Description: "The annual budget cleared its final reading",
		URL:         "https://example.com/budget",
		Source:      model.Source{ID: "the-star", Name: "The Star"},
		Category:    model.CategoryPolitics,
	}
}

func completionWith(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := `{"choices":[{"message":{"role":"assistant","content":` + jsonString(content) + `}}]}`
		w.Write([]byte(payload))
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func jsonString(s string) string {
	b := new(strings.Builder)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func TestSummarize_ParsesStructuredReply(t *testing.T) {
	client := newTestClient(t, completionWith(
		`{"summary":"Budget approved.","keyPoints":["passed final reading","opposition abstained"],"sentiment":"positive","category":"politics"}`))

	result, err := client.Summarize(context.Background(), sampleArticle(), 200)

	require.NoError(t, err)
	assert.Equal(t, "Budget approved.", result.Summary)
	assert.Equal(t, []string{"passed final reading", "opposition abstained"}, result.KeyPoints)
	assert.Equal(t, model.SentimentPositive, result.Sentiment)
	assert.Equal(t, model.CategoryPolitics, result.Category)
}

func TestSummarize_MissingFieldsTakeDefaults(t *testing.T) {
	client := newTestClient(t, completionWith(`{"keyPoints":null}`))

	result, err := client.Summarize(context.Background(), sampleArticle(), 200)

	require.NoError(t, err)
	assert.Equal(t, defaultSummaryText, result.Summary)
	assert.Equal(t, []string{}, result.KeyPoints)
	assert.Equal(t, model.SentimentNeutral, result.Sentiment)
	assert.Equal(t, model.CategoryGeneral, result.Category)
}

func TestSummarize_ParseFailureDegradesToTruncatedText(t *testing.T) {
	longReply := strings.Repeat("The article covers the budget. ", 20)
	client := newTestClient(t, completionWith(longReply))

	result, err := client.Summarize(context.Background(), sampleArticle(), 50)

	require.NoError(t, err, "malformed provider output must never raise")
	assert.Equal(t, string([]rune(longReply)[:50])+"...", result.Summary)
	assert.Equal(t, []string{}, result.KeyPoints)
	assert.Equal(t, model.SentimentNeutral, result.Sentiment)
	assert.Equal(t, model.CategoryGeneral, result.Category)
}

func TestSummarize_ShortNonJSONReplyKeptVerbatim(t *testing.T) {
	client := newTestClient(t, completionWith("A short plain answer."))

	result, err := client.Summarize(context.Background(), sampleArticle(), 200)

	require.NoError(t, err)
	assert.Equal(t, "A short plain answer.", result.Summary)
}

func TestSummarize_ContentExcerptIsCapped(t *testing.T) {
	var promptLen int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req completionRequest
		require.NoError(t, decodeJSON(r, &req))
		promptLen = len(req.Messages[1].Content)
		w.Write([]byte(`{"choices":[{"message":{"content":"{}"}}]}`))
	})

	article := sampleArticle()
	article.Content = strings.Repeat("x", 50000)

	_, err := client.Summarize(context.Background(), article, 200)
	require.NoError(t, err)
	assert.Less(t, promptLen, 4000, "oversized content must not blow up the prompt")
}

func TestSummarize_ProviderFailurePropagates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Summarize(context.Background(), sampleArticle(), 200)
	assert.ErrorIs(t, err, ErrUnavailable)
}
