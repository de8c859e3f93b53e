// Package chat assembles conversations and relays them to the LLM client,
// pulling in news context when asked for.
package chat

import (
	"sync"

	"warta/internal/model"
)

// MaxMessages bounds a conversation log. Once exceeded, the oldest
// messages are evicted.
const MaxMessages = 50

// Conversation is an ordered, size-bounded, session-scoped message log.
// It is safe for concurrent use and is never persisted.
type Conversation struct {
	mu       sync.Mutex
	messages []model.ChatMessage
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// Append adds a message to the log, evicting the oldest entries beyond
// MaxMessages.
func (c *Conversation) Append(msg model.ChatMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = append(c.messages, msg)
	if len(c.messages) > MaxMessages {
		c.messages = c.messages[len(c.messages)-MaxMessages:]
	}
}

// Messages returns a copy of the log in order.
func (c *Conversation) Messages() []model.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len reports the current number of messages.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}
