package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pscheid92/moodchat/internal/domain"
	"github.com/pscheid92/moodchat/internal/metrics"
)

const conversationColumns = `id, is_group, name, created_at`

// ConversationRepo implements domain.ConversationRepository backed by PostgreSQL.
type ConversationRepo struct {
	pool *pgxpool.Pool
}

func NewConversationRepo(pool *pgxpool.Pool) *ConversationRepo {
	return &ConversationRepo{pool: pool}
}

func scanConversation(row pgx.Row) (*domain.Conversation, error) {
	var conv domain.Conversation
	if err := row.Scan(&conv.ID, &conv.IsGroup, &conv.Name, &conv.CreatedAt); err != nil {
		return nil, err
	}
	return &conv, nil
}

func (r *ConversationRepo) GetByPairKey(ctx context.Context, pairKey string) (*domain.Conversation, error) {
	conv, err := scanConversation(r.pool.QueryRow(ctx,
		`SELECT `+conversationColumns+` FROM conversations WHERE pair_key = $1`, pairKey))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation by pair key: %w", err)
	}
	return conv, nil
}

// CreateWithMembers creates the conversation and both membership rows in one
// transaction. The pair_key unique constraint decides races between writers:
// the loser's insert returns no row and the winner's conversation is returned
// without touching the membership rows it already created.
func (r *ConversationRepo) CreateWithMembers(ctx context.Context, pairKey string, userA, userB int64) (*domain.Conversation, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	conv, err := scanConversation(tx.QueryRow(ctx, `
		INSERT INTO conversations (is_group, pair_key)
		VALUES (FALSE, $1)
		ON CONFLICT (pair_key) DO NOTHING
		RETURNING `+conversationColumns,
		pairKey))
	if errors.Is(err, pgx.ErrNoRows) {
		// Lost the race: another writer created this pair first.
		return r.GetByPairKey(ctx, pairKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO conversation_members (conversation_id, user_id)
		VALUES ($1, $2), ($1, $3)`,
		conv.ID, userA, userB)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation members: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.ConversationsCreatedTotal.Inc()
	return conv, nil
}

func (r *ConversationRepo) ListMembers(ctx context.Context, conversationID int64) ([]domain.ConversationMember, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, conversation_id, user_id, joined_at
		FROM conversation_members
		WHERE conversation_id = $1
		ORDER BY id ASC`,
		conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation members: %w", err)
	}
	defer rows.Close()

	members := make([]domain.ConversationMember, 0, 2)
	for rows.Next() {
		var m domain.ConversationMember
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.UserID, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan conversation member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversation members: %w", err)
	}
	return members, nil
}

func (r *ConversationRepo) ListSummaries(ctx context.Context, userID int64) ([]domain.ConversationSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id,
		       ou.id, ou.nickname,
		       lm.content, lm.sent_at, lm.sender_id
		FROM conversations c
		JOIN conversation_members me ON me.conversation_id = c.id AND me.user_id = $1
		JOIN conversation_members om ON om.conversation_id = c.id AND om.user_id <> $1
		JOIN users ou ON ou.id = om.user_id
		LEFT JOIN LATERAL (
			SELECT m.content, m.sent_at, m.sender_id
			FROM messages m
			WHERE m.conversation_id = c.id
			ORDER BY m.sent_at DESC, m.id DESC
			LIMIT 1
		) lm ON TRUE
		ORDER BY lm.sent_at DESC NULLS LAST, c.id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation summaries: %w", err)
	}
	defer rows.Close()

	summaries := make([]domain.ConversationSummary, 0)
	for rows.Next() {
		var s domain.ConversationSummary
		var other domain.UserRef
		if err := rows.Scan(&s.ConversationID, &other.ID, &other.Nickname,
			&s.LastMessage, &s.LastSentAt, &s.LastSenderID); err != nil {
			return nil, fmt.Errorf("failed to scan conversation summary: %w", err)
		}
		s.OtherUser = &other
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate conversation summaries: %w", err)
	}
	return summaries, nil
}
