package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/moodchat/internal/domain"
	"github.com/pscheid92/moodchat/internal/metrics"
	"golang.org/x/sync/singleflight"
)

// Service is the application layer — the only component that references multiple
// domain components. It orchestrates all use cases.
type Service struct {
	users         domain.UserRepository
	conversations domain.ConversationRepository
	messages      domain.MessageRepository
	classifier    domain.Classifier
	resolveGroup  singleflight.Group
	clock         clockwork.Clock
}

// NewService creates the application layer service.
func NewService(users domain.UserRepository, conversations domain.ConversationRepository, messages domain.MessageRepository, classifier domain.Classifier, clock clockwork.Clock) *Service {
	return &Service{
		users:         users,
		conversations: conversations,
		messages:      messages,
		classifier:    classifier,
		clock:         clock,
	}
}

// RegisterUser creates a new user with the given nickname.
func (s *Service) RegisterUser(ctx context.Context, nickname string) (*domain.User, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, domain.ErrEmptyNickname
	}

	user, err := s.users.Create(ctx, nickname)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID, "nickname", user.Nickname)
	return user, nil
}

// Login resolves a nickname to an existing user. An empty nickname is treated
// like any other unknown nickname.
func (s *Service) Login(ctx context.Context, nickname string) (*domain.User, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.users.GetByNickname(ctx, nickname)
}

// ListUsers returns all registered users.
func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// SendMessage delivers a message from sender to receiver: it resolves (or
// creates) their two-party conversation, labels the content with a sentiment,
// and persists the message. Classification happens before the write, so a
// stored message always carries its final label.
func (s *Service) SendMessage(ctx context.Context, senderID, receiverID int64, content string) (*domain.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrEmptyContent
	}
	if senderID == receiverID {
		return nil, domain.ErrSameUser
	}

	if _, err := s.users.GetByID(ctx, senderID); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	conv, err := s.resolveConversation(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}

	label := s.classifier.Classify(ctx, content)

	msg, err := s.messages.Create(ctx, &domain.Message{
		ConversationID: conv.ID,
		SenderID:       senderID,
		Content:        content,
		Sentiment:      label,
		Emoji:          label.Emoji(),
		SentAt:         s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	metrics.MessagesSentTotal.WithLabelValues(string(label)).Inc()
	slog.InfoContext(ctx, "message sent",
		"message_id", msg.ID,
		"conversation_id", msg.ConversationID,
		"sender_id", senderID,
		"sentiment", string(label))
	return msg, nil
}

// ListUserConversations returns the user's conversation summaries ordered by
// most recent activity. Unknown users simply have no conversations, so the
// result is an empty list rather than an error.
func (s *Service) ListUserConversations(ctx context.Context, userID int64) ([]domain.ConversationSummary, error) {
	return s.conversations.ListSummaries(ctx, userID)
}

// ListConversationMessages returns the full message history of a conversation
// in chronological order.
func (s *Service) ListConversationMessages(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	return s.messages.ListByConversation(ctx, conversationID)
}

// ListMessagesBetween returns the history of the two users' conversation.
// An empty slice is returned when they never exchanged a message, so callers
// can render a fresh chat without special-casing.
func (s *Service) ListMessagesBetween(ctx context.Context, userA, userB int64) ([]domain.Message, error) {
	if userA == userB {
		return nil, domain.ErrSameUser
	}

	conv, err := s.conversations.GetByPairKey(ctx, domain.PairKey(userA, userB))
	if errors.Is(err, domain.ErrConversationNotFound) {
		return []domain.Message{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.messages.ListByConversation(ctx, conv.ID)
}
