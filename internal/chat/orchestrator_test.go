package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"warta/internal/ai"
	"warta/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCompleter struct {
	got   []ai.Message
	reply string
	err   error
}

func (s *stubCompleter) Complete(_ context.Context, messages []ai.Message, _ float64, _ int) (string, error) {
	s.got = messages
	return s.reply, s.err
}

type stubSearcher struct {
	articles []model.Article
}

func (s *stubSearcher) Search(_ context.Context, _ string, _ model.Category) []model.Article {
	return s.articles
}

func history(n int) []model.ChatMessage {
	msgs := make([]model.ChatMessage, 0, n)
	for i := 0; i < n; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		msgs = append(msgs, model.NewChatMessage(role, "message"))
	}
	return msgs
}

func TestBuildMessages_Order(t *testing.T) {
	prior := history(2)
	prior = append(prior, model.NewChatMessage(model.RoleUser, "what happened today?"))
	articles := []model.Article{{Title: "Budget passed", Source: model.Source{Name: "The Star"}, PublishedAt: time.Now()}}

	messages := BuildMessages(prior, articles)

	// 1 persona + 1 context + 2 history + 1 new user message.
	require.Len(t, messages, 5)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "system", messages[1].Role)
	assert.Contains(t, messages[1].Content, "Budget passed")
	assert.Contains(t, messages[1].Content, "The Star")
	assert.Equal(t, "user", messages[2].Role)
	assert.Equal(t, "assistant", messages[3].Role)
	assert.Equal(t, "user", messages[4].Role)
	assert.Equal(t, "what happened today?", messages[4].Content)
}

func TestBuildMessages_NoContextMessageWithoutArticles(t *testing.T) {
	messages := BuildMessages(history(2), nil)

	require.Len(t, messages, 3)
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "user", messages[1].Role)
}

func TestConverse_InjectsAtMostFiveArticles(t *testing.T) {
	many := make([]model.Article, 8)
	for i := range many {
		many[i] = model.Article{ID: string(rune('a' + i)), Title: "article"}
	}
	completer := &stubCompleter{reply: "here is the news"}
	o := NewOrchestrator(completer, &stubSearcher{articles: many}, zap.NewNop())

	reply, contextArticles, err := o.Converse(context.Background(), history(1), true, "election")

	require.NoError(t, err)
	assert.Equal(t, "here is the news", reply)
	assert.Len(t, contextArticles, 5)
}

func TestConverse_SkipsNewsWithoutQuery(t *testing.T) {
	completer := &stubCompleter{reply: "ok"}
	o := NewOrchestrator(completer, &stubSearcher{articles: []model.Article{{ID: "x"}}}, zap.NewNop())

	_, contextArticles, err := o.Converse(context.Background(), history(1), true, "")

	require.NoError(t, err)
	assert.Empty(t, contextArticles)
	require.Len(t, completer.got, 2, "persona + one history message, no context block")
}

func TestConverse_ProviderFailurePropagates(t *testing.T) {
	completer := &stubCompleter{err: errors.New("boom")}
	o := NewOrchestrator(completer, &stubSearcher{}, zap.NewNop())

	_, _, err := o.Converse(context.Background(), history(1), false, "")
	assert.Error(t, err)
}

func TestConversation_BoundedEviction(t *testing.T) {
	c := NewConversation()
	for i := 0; i < MaxMessages+10; i++ {
		c.Append(model.NewChatMessage(model.RoleUser, "m"))
	}

	assert.Equal(t, MaxMessages, c.Len())

	first := c.Messages()[0]
	c.Append(model.NewChatMessage(model.RoleUser, "new"))
	assert.NotEqual(t, first.ID, c.Messages()[0].ID, "oldest message evicted")
}
