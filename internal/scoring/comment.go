package scoring

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/metrics"
)

// CommentScore derives the [0,1] sentiment score of item from the comments
// beneath it, excluding those authored by exclude. Each qualifying comment
// contributes its normalized sentiment to an arithmetic mean; a comment
// whose analysis fails contributes the neutral default instead of aborting
// the run, and a failed fetch degrades the whole signal to neutral.
func (p *Pipeline) CommentScore(ctx context.Context, item, exclude uuid.UUID) float64 {
	comments, err := p.comments.ListByParent(ctx, item)
	if err != nil {
		metrics.DegradedSignalsTotal.WithLabelValues("comments").Inc()
		slog.Warn("Comment fetch failed, using neutral score", "item", item, "error", err)
		return NeutralSubScore
	}

	qualifying := ExcludeAuthor(comments, exclude)
	if len(qualifying) == 0 {
		return NeutralSubScore
	}

	var sum float64
	for _, c := range qualifying {
		raw, err := p.analyzer.Analyze(ctx, c.Content)
		if err != nil {
			metrics.DegradedSignalsTotal.WithLabelValues("sentiment").Inc()
			slog.Warn("Sentiment analysis failed, using neutral score",
				"item", item,
				"comment", c.ID,
				"error", err,
			)
			sum += NeutralSubScore
			continue
		}
		sum += NormalizeSentiment(raw)
	}

	return sum / float64(len(qualifying))
}
