package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"warta/internal/model"
)

const (
	// contentExcerptCap bounds the article content embedded in the
	// summarization prompt, which bounds the payload size.
	contentExcerptCap = 2000

	summaryTemperature = 0.3
	summaryMaxTokens   = 500

	defaultSummaryText = "Summary not available"
)

const summarizerSystemPrompt = "You are a professional news summarizer specializing in Malaysian news. Always respond with valid JSON."

const summaryPromptFormat = `Please provide a concise summary of this Malaysian news article:

Title: %s
Description: %s
Source: %s
Published: %s
%s
Please provide:
1. A summary in %d words or less
2. 3-5 key points
3. The overall sentiment (positive, negative, or neutral)
4. The main category this falls under (politics, economy, social, or general)

Format your response as JSON with the following structure:
{
  "summary": "...",
  "keyPoints": ["...", "...", "..."],
  "sentiment": "positive|negative|neutral",
  "category": "politics|economy|social|general"
}`

// Summarize asks the provider for a structured summary of one article.
// Malformed provider output is a recoverable condition: the raw text is
// truncated into the summary field and the rest take defaults. Only a
// provider failure (ErrUnavailable) is returned as an error.
func (c *Client) Summarize(ctx context.Context, article model.Article, maxLength int) (model.SummaryResult, error) {
	if maxLength <= 0 {
		maxLength = 200
	}

	contentLine := ""
	if article.Content != "" {
		excerpt := article.Content
		if len(excerpt) > contentExcerptCap {
			excerpt = excerpt[:contentExcerptCap]
		}
		contentLine = "Content: " + excerpt + "\n"
	}

	prompt := fmt.Sprintf(summaryPromptFormat,
		article.Title,
		article.Description,
		article.Source.Name,
		article.PublishedAt.Format("2006-01-02 15:04"),
		contentLine,
		maxLength)

	reply, err := c.Complete(ctx, []Message{
		{Role: "system", Content: summarizerSystemPrompt},
		{Role: "user", Content: prompt},
	}, summaryTemperature, summaryMaxTokens)
	if err != nil {
		return model.SummaryResult{}, err
	}

	return parseSummary(reply, maxLength), nil
}

type rawSummary struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
	Sentiment string   `json:"sentiment"`
	Category  string   `json:"category"`
}

func parseSummary(reply string, maxLength int) model.SummaryResult {
	var parsed rawSummary
	if err := json.Unmarshal([]byte(reply), &parsed); err != nil {
		return model.SummaryResult{
			Summary:   truncate(reply, maxLength),
			KeyPoints: []string{},
			Sentiment: model.SentimentNeutral,
			Category:  model.CategoryGeneral,
		}
	}

	result := model.SummaryResult{
		Summary:   parsed.Summary,
		KeyPoints: parsed.KeyPoints,
		Sentiment: model.SentimentNeutral,
		Category:  model.CategoryGeneral,
	}
	if result.Summary == "" {
		result.Summary = defaultSummaryText
	}
	if result.KeyPoints == nil {
		result.KeyPoints = []string{}
	}
	if sentiment, ok := model.ParseSentiment(parsed.Sentiment); ok {
		result.Sentiment = sentiment
	}
	if category, ok := model.ParseCategory(parsed.Category); ok {
		result.Category = category
	}
	return result
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
