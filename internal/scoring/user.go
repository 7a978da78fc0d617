package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/domain"
	"github.com/perchsocial/perch/internal/metrics"
)

// UpdateUserScore recomputes and persists user's reputation: the rounded
// mean of the persisted scores of everything they authored, or the neutral
// default when none of their items has been scored yet.
//
// Unlike the signal calculators this aggregator has no degraded mode: if
// either authored-items fetch fails it returns without writing, so a
// partial view never overwrites the previous reputation. Items without a
// score record are skipped, not counted as neutral.
func (p *Pipeline) UpdateUserScore(ctx context.Context, user uuid.UUID) error {
	start := time.Now()
	defer func() {
		metrics.ScoreUpdateDuration.WithLabelValues("user").Observe(time.Since(start).Seconds())
	}()

	posts, err := p.posts.ListByAuthor(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to list posts of %s: %w", user, err)
	}
	comments, err := p.comments.ListByAuthor(ctx, user)
	if err != nil {
		return fmt.Errorf("failed to list comments of %s: %w", user, err)
	}

	items := make([]uuid.UUID, 0, len(posts)+len(comments))
	for _, post := range posts {
		items = append(items, post.ID)
	}
	for _, comment := range comments {
		items = append(items, comment.ID)
	}

	sum, scored := 0, 0
	for _, item := range items {
		score, err := p.cache.GetScore(ctx, item)
		if errors.Is(err, domain.ErrScoreNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read score of %s: %w", item, err)
		}
		sum += score
		scored++
	}

	score := NeutralScore
	if scored > 0 {
		score = clampInt(int(math.Round(float64(sum)/float64(scored))), 0, 100)
	}

	if err := p.scores.Update(ctx, user, score); err != nil {
		return fmt.Errorf("failed to persist user score for %s: %w", user, err)
	}
	return nil
}
