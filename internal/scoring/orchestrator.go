package scoring

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/correlation"
	"github.com/perchsocial/perch/internal/domain"
	"github.com/perchsocial/perch/internal/metrics"
)

// Rescore runs the full cascade for one triggering item:
//
//  1. resolve the item's author; abort silently if the item is gone
//  2. recompute and persist the item's content score
//  3. refresh the score cache so step 4 observes the just-written value
//  4. recompute and persist the author's reputation
//  5. refresh the cache again so callers observe the final state
//
// Failures never surface to an end user; the only observable effect of a
// failed run is a score left unchanged. Concurrent triggers for the same
// item collapse into a single run.
func (p *Pipeline) Rescore(ctx context.Context, item uuid.UUID) {
	p.group.Do(item.String(), func() (any, error) {
		p.rescore(ctx, item)
		return nil, nil
	})
}

func (p *Pipeline) rescore(ctx context.Context, item uuid.UUID) {
	ctx = correlation.WithID(ctx, correlation.NewID())
	logger := slog.With("item", item)

	author, err := p.ResolveAuthor(ctx, item)
	if err != nil {
		// The item may have been deleted between trigger and run.
		if errors.Is(err, domain.ErrItemNotFound) {
			logger.DebugContext(ctx, "Skipping rescore, item no longer resolvable")
		} else {
			logger.ErrorContext(ctx, "Failed to resolve rescore target", "error", err)
		}
		metrics.RescoreRunsTotal.WithLabelValues("aborted").Inc()
		return
	}

	if err := p.UpdateContentScore(ctx, item); err != nil {
		logger.ErrorContext(ctx, "Failed to update content score", "error", err)
		metrics.RescoreRunsTotal.WithLabelValues("aborted").Inc()
		return
	}

	if err := p.cache.Refresh(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to refresh score cache after content write", "error", err)
		metrics.RescoreRunsTotal.WithLabelValues("aborted").Inc()
		return
	}

	if err := p.UpdateUserScore(ctx, author); err != nil {
		logger.ErrorContext(ctx, "Failed to update user score", "author", author, "error", err)
		metrics.RescoreRunsTotal.WithLabelValues("aborted").Inc()
		return
	}

	if err := p.cache.Refresh(ctx); err != nil {
		logger.ErrorContext(ctx, "Failed to refresh score cache after user write", "error", err)
		metrics.RescoreRunsTotal.WithLabelValues("aborted").Inc()
		return
	}

	metrics.RescoreRunsTotal.WithLabelValues("completed").Inc()
	logger.InfoContext(ctx, "Rescore completed", "author", author)
}
