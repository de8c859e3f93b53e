package chat

import (
	"context"
	"fmt"
	"strings"

	"warta/internal/ai"
	"warta/internal/model"

	"go.uber.org/zap"
)

const (
	// maxContextArticles bounds how many search results are injected
	// into the conversation as context.
	maxContextArticles = 5

	chatTemperature = 0.7
	chatMaxTokens   = 1000
)

const systemPrompt = `You are a knowledgeable Malaysian news assistant and chatbot. Your role is to:

1. Provide helpful information about current events in Malaysia
2. Summarize Malaysian news articles clearly and concisely
3. Answer questions about Malaysian politics, economy, and social issues
4. Engage in natural conversation about Malaysian current affairs
5. Always provide accurate, unbiased, and well-informed responses

Guidelines:
- Focus on Malaysian context and perspectives
- Provide balanced viewpoints on political and social issues
- Use clear, accessible language for all users
- When summarizing articles, highlight key points and implications
- If you don't have current information, clearly state this limitation
- Encourage users to verify important information from official sources

You should be conversational, helpful, and informative while maintaining journalistic objectivity.`

// Completer is the slice of the AI client the orchestrator needs.
type Completer interface {
	Complete(ctx context.Context, messages []ai.Message, temperature float64, maxTokens int) (string, error)
}

// Searcher is the slice of the news service the orchestrator needs.
type Searcher interface {
	Search(ctx context.Context, query string, category model.Category) []model.Article
}

// Orchestrator relays a conversation to the LLM provider, optionally
// prefixed with news context fetched for the user's query.
type Orchestrator struct {
	ai     Completer
	news   Searcher
	logger *zap.Logger
}

func NewOrchestrator(completer Completer, news Searcher, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{ai: completer, news: news, logger: logger}
}

// Converse sends the history to the provider and returns the assistant
// reply. When includeNews is set and a query is given, up to
// maxContextArticles search results are injected as a context message;
// a news failure degrades to a context-free chat, never a failed one.
func (o *Orchestrator) Converse(ctx context.Context, history []model.ChatMessage, includeNews bool, newsQuery string) (string, []model.Article, error) {
	var contextArticles []model.Article
	if includeNews && newsQuery != "" {
		contextArticles = o.news.Search(ctx, newsQuery, "")
		if len(contextArticles) > maxContextArticles {
			contextArticles = contextArticles[:maxContextArticles]
		}
	}

	reply, err := o.ai.Complete(ctx, BuildMessages(history, contextArticles), chatTemperature, chatMaxTokens)
	if err != nil {
		return "", nil, err
	}
	return reply, contextArticles, nil
}

// BuildMessages constructs the outbound payload: one persona system
// message, one optional news-context system message, then the history in
// original order mapped to role and content only.
func BuildMessages(history []model.ChatMessage, articles []model.Article) []ai.Message {
	messages := make([]ai.Message, 0, len(history)+2)
	messages = append(messages, ai.Message{Role: "system", Content: systemPrompt})

	if len(articles) > 0 {
		messages = append(messages, ai.Message{
			Role:    "system",
			Content: "Here are some relevant Malaysian news articles for context:\n\n" + formatArticles(articles),
		})
	}

	for _, msg := range history {
		messages = append(messages, ai.Message{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return messages
}

func formatArticles(articles []model.Article) string {
	blocks := make([]string, 0, len(articles))
	for _, a := range articles {
		blocks = append(blocks, fmt.Sprintf(
			"Title: %s\nDescription: %s\nSource: %s\nPublished: %s\nURL: %s",
			a.Title, a.Description, a.Source.Name, a.PublishedAt.Format("2006-01-02 15:04"), a.URL))
	}
	return strings.Join(blocks, "\n\n")
}
