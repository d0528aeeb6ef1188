package database

import (
	"context"
	"testing"
	"time"

	"github.com/pscheid92/moodchat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_Insert(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool)
	ctx := context.Background()

	user, err := repo.Create(ctx, "alice")

	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "alice", user.Nickname)
	assert.WithinDuration(t, time.Now().UTC(), user.CreatedAt, 5*time.Second)
}

func TestCreateUser_DuplicateNickname(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool)
	ctx := context.Background()

	_, err := repo.Create(ctx, "alice")
	require.NoError(t, err)

	user, err := repo.Create(ctx, "alice")
	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNicknameTaken)
	assert.Nil(t, user)
}

func TestGetUserByID_Success(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice")
	require.NoError(t, err)

	user, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "alice", user.Nickname)
	assert.WithinDuration(t, created.CreatedAt, user.CreatedAt, time.Second)
}

func TestGetUserByID_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool)
	ctx := context.Background()

	user, err := repo.GetByID(ctx, 424242)

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestGetUserByNickname_Success(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice")
	require.NoError(t, err)

	user, err := repo.GetByNickname(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "alice", user.Nickname)
}

func TestGetUserByNickname_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool)
	ctx := context.Background()

	user, err := repo.GetByNickname(ctx, "nobody")

	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestListUsers_Empty(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool)
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users)
}

func TestListUsers_OrderedByID(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewUserRepo(pool)
	ctx := context.Background()

	for _, nickname := range []string{"charlie", "alice", "bob"} {
		_, err := repo.Create(ctx, nickname)
		require.NoError(t, err)
	}

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	// Registration order, not alphabetical
	assert.Equal(t, "charlie", users[0].Nickname)
	assert.Equal(t, "alice", users[1].Nickname)
	assert.Equal(t, "bob", users[2].Nickname)
	assert.Less(t, users[0].ID, users[1].ID)
	assert.Less(t, users[1].ID, users[2].ID)
}
