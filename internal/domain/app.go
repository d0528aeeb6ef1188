package domain

import "context"

// AppService is the application layer contract consumed by the HTTP server.
type AppService interface {
	RegisterUser(ctx context.Context, nickname string) (*User, error)
	Login(ctx context.Context, nickname string) (*User, error)
	ListUsers(ctx context.Context) ([]User, error)

	SendMessage(ctx context.Context, senderID, receiverID int64, content string) (*Message, error)

	ListUserConversations(ctx context.Context, userID int64) ([]ConversationSummary, error)
	ListConversationMessages(ctx context.Context, conversationID int64) ([]Message, error)
	ListMessagesBetween(ctx context.Context, userA, userB int64) ([]Message, error)
}
