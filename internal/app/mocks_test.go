package app

import (
	"context"
	"fmt"

	"github.com/pscheid92/moodchat/internal/domain"
)

// --- Mock implementations ---

type mockUserRepo struct {
	createFn        func(ctx context.Context, nickname string) (*domain.User, error)
	getByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	getByNicknameFn func(ctx context.Context, nickname string) (*domain.User, error)
	listFn          func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, nickname string) (*domain.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, nickname)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockUserRepo) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	if m.getByNicknameFn != nil {
		return m.getByNicknameFn(ctx, nickname)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}

type mockConversationRepo struct {
	getByPairKeyFn      func(ctx context.Context, pairKey string) (*domain.Conversation, error)
	createWithMembersFn func(ctx context.Context, pairKey string, userA, userB int64) (*domain.Conversation, error)
	listMembersFn       func(ctx context.Context, conversationID int64) ([]domain.ConversationMember, error)
	listSummariesFn     func(ctx context.Context, userID int64) ([]domain.ConversationSummary, error)
}

func (m *mockConversationRepo) GetByPairKey(ctx context.Context, pairKey string) (*domain.Conversation, error) {
	if m.getByPairKeyFn != nil {
		return m.getByPairKeyFn(ctx, pairKey)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockConversationRepo) CreateWithMembers(ctx context.Context, pairKey string, userA, userB int64) (*domain.Conversation, error) {
	if m.createWithMembersFn != nil {
		return m.createWithMembersFn(ctx, pairKey, userA, userB)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockConversationRepo) ListMembers(ctx context.Context, conversationID int64) ([]domain.ConversationMember, error) {
	if m.listMembersFn != nil {
		return m.listMembersFn(ctx, conversationID)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockConversationRepo) ListSummaries(ctx context.Context, userID int64) ([]domain.ConversationSummary, error) {
	if m.listSummariesFn != nil {
		return m.listSummariesFn(ctx, userID)
	}
	return nil, fmt.Errorf("not implemented")
}

type mockMessageRepo struct {
	createFn             func(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	listByConversationFn func(ctx context.Context, conversationID int64) ([]domain.Message, error)
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	if m.createFn != nil {
		return m.createFn(ctx, msg)
	}
	return nil, fmt.Errorf("not implemented")
}

func (m *mockMessageRepo) ListByConversation(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	if m.listByConversationFn != nil {
		return m.listByConversationFn(ctx, conversationID)
	}
	return nil, fmt.Errorf("not implemented")
}

// stubClassifier returns a fixed label and records the texts it saw.
type stubClassifier struct {
	label domain.Label
	texts []string
}

func (c *stubClassifier) Classify(_ context.Context, text string) domain.Label {
	c.texts = append(c.texts, text)
	return c.label
}
