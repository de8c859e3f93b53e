package model

import (
	"time"

	"github.com/google/uuid"
)

// Role of a chat participant.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// MessageType tags what a chat message carries.
type MessageType string

const (
	MessageText    MessageType = "text"
	MessageNews    MessageType = "news"
	MessageSummary MessageType = "summary"
)

// ChatMessage is one entry in a conversation. Messages are never mutated
// after creation.
type ChatMessage struct {
	ID        string      `json:"id"`
	Role      Role        `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Articles  []Article   `json:"newsArticles,omitempty"`
	Type      MessageType `json:"type,omitempty"`
}

// NewChatMessage builds a text message with a fresh id and timestamp.
func NewChatMessage(role Role, content string) ChatMessage {
	return ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
		Type:      MessageText,
	}
}

// Sentiment of an article summary.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// ParseSentiment maps a string to a Sentiment, false when unknown.
func ParseSentiment(s string) (Sentiment, bool) {
	switch Sentiment(s) {
	case SentimentPositive:
		return SentimentPositive, true
	case SentimentNegative:
		return SentimentNegative, true
	case SentimentNeutral:
		return SentimentNeutral, true
	}
	return "", false
}

// SummaryResult is the structured outcome of summarizing one article.
type SummaryResult struct {
	Summary   string    `json:"summary"`
	KeyPoints []string  `json:"keyPoints"`
	Sentiment Sentiment `json:"sentiment"`
	Category  Category  `json:"category"`
}
