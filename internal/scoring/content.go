package scoring

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/metrics"
)

// UpdateContentScore recomputes and persists the score of one content item.
//
// Author resolution is the only fatal step: with no author there is nothing
// to exclude or attribute, so the error propagates instead of falling back
// to a neutral default. The two sub-scores are averaged with equal weight,
// and the single scale-round-clamp to the 0..100 integer happens here, at
// the persistence boundary. The item must already have a score record (one
// is created alongside the item itself); updating a nonexistent record
// fails with the store's not-found error.
func (p *Pipeline) UpdateContentScore(ctx context.Context, item uuid.UUID) error {
	start := time.Now()
	defer func() {
		metrics.ScoreUpdateDuration.WithLabelValues("content").Observe(time.Since(start).Seconds())
	}()

	author, err := p.ResolveAuthor(ctx, item)
	if err != nil {
		return fmt.Errorf("failed to resolve author of %s: %w", item, err)
	}

	reactionScore := p.ReactionScore(ctx, item, author)
	commentScore := p.CommentScore(ctx, item, author)

	weighted := clampFloat((reactionScore+commentScore)/2, 0, 1)
	score := clampInt(int(math.Round(100*weighted)), 0, 100)

	if err := p.scores.Update(ctx, item, score); err != nil {
		return fmt.Errorf("failed to persist score for %s: %w", item, err)
	}
	return nil
}
