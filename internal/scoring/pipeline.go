package scoring

import (
	"github.com/perchsocial/perch/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Pipeline wires the scoring calculators, the two-stage cascade, and the
// rescore orchestrator over their collaborators. All dependencies are
// injected at construction; the pipeline holds no state beyond the
// singleflight group that collapses concurrent rescores of the same item.
type Pipeline struct {
	posts     domain.PostRepository
	comments  domain.CommentRepository
	reactions domain.ReactionRepository
	analyzer  domain.SentimentAnalyzer
	scores    domain.ScoreStore
	cache     domain.ScoreReader

	group singleflight.Group
}

var _ domain.Rescorer = (*Pipeline)(nil)

func NewPipeline(
	posts domain.PostRepository,
	comments domain.CommentRepository,
	reactions domain.ReactionRepository,
	analyzer domain.SentimentAnalyzer,
	scores domain.ScoreStore,
	cache domain.ScoreReader,
) *Pipeline {
	return &Pipeline{
		posts:     posts,
		comments:  comments,
		reactions: reactions,
		analyzer:  analyzer,
		scores:    scores,
		cache:     cache,
	}
}
