package scoring

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/domain"
	"github.com/perchsocial/perch/internal/metrics"
)

// ReactionScore derives the [0,1] approval score of item from its likes and
// dislikes, excluding those authored by exclude. The two fetches are
// independent reads and run concurrently.
//
// An item with no qualifying reactions scores the neutral default, and so
// does an item whose reactions cannot be fetched: a missing signal degrades
// the score, it never fails the run.
func (p *Pipeline) ReactionScore(ctx context.Context, item, exclude uuid.UUID) float64 {
	type fetchResult struct {
		reactions []domain.Reaction
		err       error
	}

	dislikeCh := make(chan fetchResult, 1)
	go func() {
		reactions, err := p.reactions.ListByItem(ctx, domain.ReactionDislike, item)
		dislikeCh <- fetchResult{reactions, err}
	}()

	likes, likesErr := p.reactions.ListByItem(ctx, domain.ReactionLike, item)
	dislikeRes := <-dislikeCh

	if likesErr != nil || dislikeRes.err != nil {
		metrics.DegradedSignalsTotal.WithLabelValues("reactions").Inc()
		slog.Warn("Reaction fetch failed, using neutral score",
			"item", item,
			"likes_error", likesErr,
			"dislikes_error", dislikeRes.err,
		)
		return NeutralSubScore
	}

	l := len(ExcludeAuthor(likes, exclude))
	d := len(ExcludeAuthor(dislikeRes.reactions, exclude))

	total := l + d
	if total == 0 {
		return NeutralSubScore
	}
	return float64(l) / float64(total)
}
