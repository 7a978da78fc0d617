package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/perchsocial/perch/internal/domain"
)

const postColumns = `id, author_id, content, created_at, updated_at`

// PostRepo implements domain.PostRepository backed by PostgreSQL.
type PostRepo struct {
	pool *pgxpool.Pool
}

func NewPostRepo(pool *pgxpool.Pool) *PostRepo {
	return &PostRepo{pool: pool}
}

func scanPosts(rows pgx.Rows) ([]domain.Post, error) {
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Author, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostRepo) Create(ctx context.Context, author uuid.UUID, content string) (*domain.Post, error) {
	var p domain.Post
	err := r.pool.QueryRow(ctx, `
		INSERT INTO posts (author_id, content)
		VALUES ($1, $2)
		RETURNING `+postColumns,
		author, content).Scan(&p.ID, &p.Author, &p.Content, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &p, nil
}

func (r *PostRepo) GetByID(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	var p domain.Post
	err := r.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, postID).
		Scan(&p.ID, &p.Author, &p.Content, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &p, nil
}

func (r *PostRepo) List(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+postColumns+` FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return scanPosts(rows)
}

func (r *PostRepo) ListByAuthor(ctx context.Context, author uuid.UUID) ([]domain.Post, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+postColumns+` FROM posts WHERE author_id = $1 ORDER BY created_at DESC`, author)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	return scanPosts(rows)
}

func (r *PostRepo) Delete(ctx context.Context, postID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
