package scoring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/domain"
)

// ResolveAuthor determines who authored item by probing the post source
// first and the comment source second. Returns domain.ErrItemNotFound when
// neither knows the identifier.
func (p *Pipeline) ResolveAuthor(ctx context.Context, item uuid.UUID) (uuid.UUID, error) {
	post, err := p.posts.GetByID(ctx, item)
	if err == nil {
		return post.Author, nil
	}
	if !errors.Is(err, domain.ErrPostNotFound) {
		return uuid.Nil, fmt.Errorf("failed to resolve item as post: %w", err)
	}

	comment, err := p.comments.GetByID(ctx, item)
	if err == nil {
		return comment.Author, nil
	}
	if !errors.Is(err, domain.ErrCommentNotFound) {
		return uuid.Nil, fmt.Errorf("failed to resolve item as comment: %w", err)
	}

	return uuid.Nil, domain.ErrItemNotFound
}
