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

const reactionColumns = `id, author_id, item_id, reaction_type, created_at, updated_at`

// ReactionRepo implements domain.ReactionRepository backed by PostgreSQL.
// The (author, item) pair is unique: an author has at most one reaction per
// item, enforced by the schema.
type ReactionRepo struct {
	pool *pgxpool.Pool
}

func NewReactionRepo(pool *pgxpool.Pool) *ReactionRepo {
	return &ReactionRepo{pool: pool}
}

func scanReaction(row pgx.Row) (*domain.Reaction, error) {
	var re domain.Reaction
	err := row.Scan(&re.ID, &re.Author, &re.Item, &re.Type, &re.CreatedAt, &re.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &re, nil
}

func scanReactions(rows pgx.Rows) ([]domain.Reaction, error) {
	defer rows.Close()

	var reactions []domain.Reaction
	for rows.Next() {
		var re domain.Reaction
		if err := rows.Scan(&re.ID, &re.Author, &re.Item, &re.Type, &re.CreatedAt, &re.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reaction: %w", err)
		}
		reactions = append(reactions, re)
	}
	return reactions, rows.Err()
}

func (r *ReactionRepo) Create(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) (*domain.Reaction, error) {
	reaction, err := scanReaction(r.pool.QueryRow(ctx, `
		INSERT INTO reactions (author_id, item_id, reaction_type)
		VALUES ($1, $2, $3)
		RETURNING `+reactionColumns,
		author, item, reactionType))
	if isUniqueViolation(err) {
		return nil, domain.ErrAlreadyReacted
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create reaction: %w", err)
	}
	return reaction, nil
}

func (r *ReactionRepo) UpdateType(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE reactions SET reaction_type = $1, updated_at = NOW()
		WHERE author_id = $2 AND item_id = $3`,
		reactionType, author, item)
	if err != nil {
		return fmt.Errorf("failed to update reaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReactionNotFound
	}
	return nil
}

func (r *ReactionRepo) Delete(ctx context.Context, author, item uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM reactions WHERE author_id = $1 AND item_id = $2`, author, item)
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReactionNotFound
	}
	return nil
}

func (r *ReactionRepo) GetByAuthorAndItem(ctx context.Context, author, item uuid.UUID) (*domain.Reaction, error) {
	reaction, err := scanReaction(r.pool.QueryRow(ctx,
		`SELECT `+reactionColumns+` FROM reactions WHERE author_id = $1 AND item_id = $2`,
		author, item))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrReactionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reaction: %w", err)
	}
	return reaction, nil
}

func (r *ReactionRepo) ListByItem(ctx context.Context, reactionType domain.ReactionType, item uuid.UUID) ([]domain.Reaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reactionColumns+` FROM reactions WHERE item_id = $1 AND reaction_type = $2`,
		item, reactionType)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions by item: %w", err)
	}
	return scanReactions(rows)
}

func (r *ReactionRepo) ListByAuthor(ctx context.Context, author uuid.UUID) ([]domain.Reaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reactionColumns+` FROM reactions WHERE author_id = $1`, author)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions by author: %w", err)
	}
	return scanReactions(rows)
}
