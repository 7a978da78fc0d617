package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/perchsocial/perch/internal/domain"
)

const pgCheckViolation = "23514"

// FollowRepo implements domain.FollowRepository backed by PostgreSQL.
type FollowRepo struct {
	pool *pgxpool.Pool
}

func NewFollowRepo(pool *pgxpool.Pool) *FollowRepo {
	return &FollowRepo{pool: pool}
}

func (r *FollowRepo) Follow(ctx context.Context, follower, followee uuid.UUID) error {
	if follower == followee {
		return domain.ErrSelfFollow
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2)`, follower, followee)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyFollowing
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
		return domain.ErrSelfFollow
	}
	if err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}
	return nil
}

func (r *FollowRepo) Unfollow(ctx context.Context, follower, followee uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2`, follower, followee)
	if err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFollowNotFound
	}
	return nil
}

func scanFollows(rows pgx.Rows) ([]domain.Follow, error) {
	defer rows.Close()

	var follows []domain.Follow
	for rows.Next() {
		var f domain.Follow
		if err := rows.Scan(&f.Follower, &f.Followee, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan follow: %w", err)
		}
		follows = append(follows, f)
	}
	return follows, rows.Err()
}

func (r *FollowRepo) ListFollowers(ctx context.Context, followee uuid.UUID) ([]domain.Follow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT follower_id, followee_id, created_at FROM follows
		WHERE followee_id = $1 ORDER BY created_at DESC`, followee)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}
	return scanFollows(rows)
}

func (r *FollowRepo) ListFollowing(ctx context.Context, follower uuid.UUID) ([]domain.Follow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT follower_id, followee_id, created_at FROM follows
		WHERE follower_id = $1 ORDER BY created_at DESC`, follower)
	if err != nil {
		return nil, fmt.Errorf("failed to list following: %w", err)
	}
	return scanFollows(rows)
}
