package app

import (
	"context"
	"errors"

	"github.com/pscheid92/moodchat/internal/domain"
)

// resolveConversation finds or creates the two-party conversation between the
// given users. Concurrent resolutions of the same pair collapse into a single
// lookup via singleflight; the database's pair-key constraint closes the
// remaining race between separate processes.
func (s *Service) resolveConversation(ctx context.Context, userA, userB int64) (*domain.Conversation, error) {
	pairKey := domain.PairKey(userA, userB)

	v, err, _ := s.resolveGroup.Do(pairKey, func() (any, error) {
		conv, err := s.conversations.GetByPairKey(ctx, pairKey)
		if errors.Is(err, domain.ErrConversationNotFound) {
			return s.conversations.CreateWithMembers(ctx, pairKey, userA, userB)
		}
		if err != nil {
			return nil, err
		}
		return conv, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Conversation), nil
}
