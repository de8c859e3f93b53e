package ai

import (
	"context"
	"fmt"
	"strings"

	"warta/internal/model"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	categorizeConcurrency = 4
	categorizeTemperature = 0.1
	categorizeMaxTokens   = 10
)

const categorizerSystemPrompt = "You are a news categorization expert for Malaysian news. Respond with only the category name."

const categorizePromptFormat = `Categorize this Malaysian news article into one of these categories: politics, economy, social, general

Title: %s
Description: %s

Respond with only one word: politics, economy, social, or general`

// Categorize asks the provider to re-classify articles still tagged
// general. Calls run with bounded concurrency; an article whose call
// fails, or whose reply is not a known category, keeps its original
// category. The returned slice is a copy.
func (c *Client) Categorize(ctx context.Context, articles []model.Article) []model.Article {
	out := make([]model.Article, len(articles))
	copy(out, articles)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(categorizeConcurrency)

	for i := range out {
		if out[i].Category != model.CategoryGeneral {
			continue
		}
		i := i
		g.Go(func() error {
			prompt := fmt.Sprintf(categorizePromptFormat, out[i].Title, out[i].Description)
			reply, err := c.Complete(ctx, []Message{
				{Role: "system", Content: categorizerSystemPrompt},
				{Role: "user", Content: prompt},
			}, categorizeTemperature, categorizeMaxTokens)
			if err != nil {
				c.logger.Debug("categorization skipped", zap.String("id", out[i].ID), zap.Error(err))
				return nil
			}
			if category, ok := model.ParseCategory(strings.TrimSpace(reply)); ok {
				out[i].Category = category
			}
			return nil
		})
	}

	// Workers never return errors; partial failure leaves articles as-is.
	g.Wait()
	return out
}
