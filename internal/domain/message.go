package domain

import (
	"context"
	"time"
)

type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	SenderID       int64     `json:"senderId"`
	Content        string    `json:"content"`
	// Sentiment and Emoji are assigned once at creation and never re-derived.
	Sentiment Label     `json:"sentiment"`
	Emoji     string    `json:"emoji"`
	SentAt    time.Time `json:"sentAt"`
}

type MessageRepository interface {
	// Create persists a message and returns it with its assigned ID.
	Create(ctx context.Context, msg *Message) (*Message, error)
	// ListByConversation returns messages ordered by sent time ascending.
	ListByConversation(ctx context.Context, conversationID int64) ([]Message, error)
}
