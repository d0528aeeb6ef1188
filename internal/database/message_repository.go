package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pscheid92/moodchat/internal/domain"
)

const messageColumns = `id, conversation_id, sender_id, content, sentiment, emoji, sent_at`

// MessageRepo implements domain.MessageRepository backed by PostgreSQL.
type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

func (r *MessageRepo) Create(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	var created domain.Message
	err := r.pool.QueryRow(ctx, `
		INSERT INTO messages (conversation_id, sender_id, content, sentiment, emoji, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+messageColumns,
		msg.ConversationID, msg.SenderID, msg.Content, string(msg.Sentiment), msg.Emoji, msg.SentAt,
	).Scan(
		&created.ID, &created.ConversationID, &created.SenderID,
		&created.Content, &created.Sentiment, &created.Emoji, &created.SentAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return &created, nil
}

func (r *MessageRepo) ListByConversation(ctx context.Context, conversationID int64) ([]domain.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE conversation_id = $1
		ORDER BY sent_at ASC, id ASC`,
		conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID,
			&m.Content, &m.Sentiment, &m.Emoji, &m.SentAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate messages: %w", err)
	}
	return messages, nil
}
