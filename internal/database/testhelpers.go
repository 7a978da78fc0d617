package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/perchsocial/perch/internal/domain"
	"github.com/stretchr/testify/require"
)

// CreateTestUser creates a user (and their score record) for testing.
func CreateTestUser(t *testing.T, pool *pgxpool.Pool, username string) *domain.User {
	t.Helper()

	ctx := context.Background()
	user, err := NewUserRepo(pool).Create(ctx, username, "test-password")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, user.ID)

	_, err = NewScoreRepo(pool).Create(ctx, user.ID)
	require.NoError(t, err)

	return user
}

// CreateTestPost creates a post (and its score record) for testing.
func CreateTestPost(t *testing.T, pool *pgxpool.Pool, author uuid.UUID, content string) *domain.Post {
	t.Helper()

	ctx := context.Background()
	post, err := NewPostRepo(pool).Create(ctx, author, content)
	require.NoError(t, err)

	_, err = NewScoreRepo(pool).Create(ctx, post.ID)
	require.NoError(t, err)

	return post
}

// CreateTestComment creates a comment (and its score record) for testing.
func CreateTestComment(t *testing.T, pool *pgxpool.Pool, author, parent uuid.UUID, content string) *domain.Comment {
	t.Helper()

	ctx := context.Background()
	comment, err := NewCommentRepo(pool).Create(ctx, author, content, parent)
	require.NoError(t, err)

	_, err = NewScoreRepo(pool).Create(ctx, comment.ID)
	require.NoError(t, err)

	return comment
}
