package domain

import (
	"context"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"createdAt"`
}

type UserRepository interface {
	// Create inserts a new user. Returns ErrNicknameTaken when the nickname
	// is already in use.
	Create(ctx context.Context, nickname string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByNickname(ctx context.Context, nickname string) (*User, error)
	// List returns all users ordered by ID ascending.
	List(ctx context.Context) ([]User, error)
}
