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

const commentColumns = `id, author_id, parent_id, content, created_at`

// CommentRepo implements domain.CommentRepository backed by PostgreSQL.
type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

func scanComments(rows pgx.Rows) ([]domain.Comment, error) {
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.Author, &c.Parent, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepo) Create(ctx context.Context, author uuid.UUID, content string, parent uuid.UUID) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (author_id, parent_id, content)
		VALUES ($1, $2, $3)
		RETURNING `+commentColumns,
		author, parent, content).Scan(&c.ID, &c.Author, &c.Parent, &c.Content, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &c, nil
}

func (r *CommentRepo) GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, commentID).
		Scan(&c.ID, &c.Author, &c.Parent, &c.Content, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return &c, nil
}

func (r *CommentRepo) List(ctx context.Context) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return scanComments(rows)
}

func (r *CommentRepo) ListByAuthor(ctx context.Context, author uuid.UUID) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE author_id = $1 ORDER BY created_at DESC`, author)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by author: %w", err)
	}
	return scanComments(rows)
}

func (r *CommentRepo) ListByParent(ctx context.Context, parent uuid.UUID) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE parent_id = $1 ORDER BY created_at DESC`, parent)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by parent: %w", err)
	}
	return scanComments(rows)
}

func (r *CommentRepo) Delete(ctx context.Context, commentID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
