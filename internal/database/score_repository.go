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

const (
	// DefaultScore is the neutral score assigned when a record is created
	// and when no signal is available.
	DefaultScore = 50

	MinScore = 0
	MaxScore = 100
)

const scoreColumns = `item_id, score, created_at, updated_at`

// ScoreRepo implements domain.ScoreStore backed by PostgreSQL.
//
// Update re-validates the 0..100 range in Go and the schema enforces it
// again with a CHECK constraint. Callers clamp before writing, so a
// violation here indicates a bug upstream.
type ScoreRepo struct {
	pool *pgxpool.Pool
}

func NewScoreRepo(pool *pgxpool.Pool) *ScoreRepo {
	return &ScoreRepo{pool: pool}
}

func scanScore(row pgx.Row) (*domain.ScoreRecord, error) {
	var rec domain.ScoreRecord
	err := row.Scan(&rec.Item, &rec.Score, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ScoreRepo) Create(ctx context.Context, item uuid.UUID) (*domain.ScoreRecord, error) {
	rec, err := scanScore(r.pool.QueryRow(ctx, `
		INSERT INTO scores (item_id, score)
		VALUES ($1, $2)
		RETURNING `+scoreColumns,
		item, DefaultScore))
	if isUniqueViolation(err) {
		return nil, domain.ErrScoreExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create score record: %w", err)
	}
	return rec, nil
}

func (r *ScoreRepo) GetByItem(ctx context.Context, item uuid.UUID) (*domain.ScoreRecord, error) {
	rec, err := scanScore(r.pool.QueryRow(ctx,
		`SELECT `+scoreColumns+` FROM scores WHERE item_id = $1`, item))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrScoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get score record: %w", err)
	}
	return rec, nil
}

func (r *ScoreRepo) Update(ctx context.Context, item uuid.UUID, score int) error {
	if score < MinScore || score > MaxScore {
		return domain.ErrScoreInvalid
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE scores SET score = $1, updated_at = NOW()
		WHERE item_id = $2`,
		score, item)
	if err != nil {
		return fmt.Errorf("failed to update score record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrScoreNotFound
	}
	return nil
}

func (r *ScoreRepo) List(ctx context.Context) ([]domain.ScoreRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+scoreColumns+` FROM scores ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list score records: %w", err)
	}
	defer rows.Close()

	var records []domain.ScoreRecord
	for rows.Next() {
		var rec domain.ScoreRecord
		if err := rows.Scan(&rec.Item, &rec.Score, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan score record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
