package domain

import (
	"context"
	"fmt"
	"time"
)

type Conversation struct {
	ID        int64     `json:"id"`
	IsGroup   bool      `json:"isGroup"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ConversationMember struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	UserID         int64     `json:"userId"`
	JoinedAt       time.Time `json:"joinedAt"`
}

// ConversationSummary is one entry in a user's conversation list. The last*
// fields are nil when the conversation holds no messages yet.
type ConversationSummary struct {
	ConversationID int64      `json:"conversationId"`
	OtherUser      *UserRef   `json:"otherUser"`
	LastMessage    *string    `json:"lastMessage"`
	LastSentAt     *time.Time `json:"lastSentAt"`
	LastSenderID   *int64     `json:"lastSenderId"`
}

// UserRef is the counterpart identity carried in a conversation summary.
type UserRef struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

// PairKey derives the unordered-pair key identifying the unique two-party
// conversation between two users. The smaller ID always comes first, so
// PairKey(a, b) == PairKey(b, a).
func PairKey(a, b int64) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d:%d", a, b)
}

type ConversationRepository interface {
	// GetByPairKey returns the two-party conversation for the given pair key,
	// or ErrConversationNotFound.
	GetByPairKey(ctx context.Context, pairKey string) (*Conversation, error)
	// CreateWithMembers atomically creates a conversation and its two
	// membership rows. When another writer created the same pair concurrently,
	// the existing conversation is returned instead.
	CreateWithMembers(ctx context.Context, pairKey string, userA, userB int64) (*Conversation, error)
	// ListMembers returns the membership rows of a conversation.
	ListMembers(ctx context.Context, conversationID int64) ([]ConversationMember, error)
	// ListSummaries returns the user's conversations ordered by most recent
	// message descending; conversations without messages sort last.
	ListSummaries(ctx context.Context, userID int64) ([]ConversationSummary, error)
}
