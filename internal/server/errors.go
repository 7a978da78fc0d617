package server

import (
	"errors"

	"github.com/perchsocial/perch/internal/app"
	"github.com/perchsocial/perch/internal/apperrors"
	"github.com/perchsocial/perch/internal/domain"
)

// mapDomainError translates domain sentinels and validation failures into
// structured errors; anything unrecognized surfaces as an internal error.
func mapDomainError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *app.ValidationError
	if errors.As(err, &vErr) {
		return apperrors.ValidationError(vErr.Error())
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrCommentNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrScoreNotFound),
		errors.Is(err, domain.ErrReactionNotFound),
		errors.Is(err, domain.ErrFollowNotFound):
		return apperrors.NotFoundError(err.Error())

	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrAlreadyReacted),
		errors.Is(err, domain.ErrAlreadyFollowing),
		errors.Is(err, domain.ErrScoreExists):
		return apperrors.ConflictError(err.Error())

	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.UnauthorizedError(err.Error())

	case errors.Is(err, domain.ErrNotAuthor):
		return apperrors.ForbiddenError(err.Error())

	case errors.Is(err, domain.ErrInvalidReaction),
		errors.Is(err, domain.ErrSelfFollow),
		errors.Is(err, domain.ErrScoreInvalid):
		return apperrors.ValidationError(err.Error())

	case errors.Is(err, domain.ErrRateLimited):
		return apperrors.RateLimitedError(err.Error())

	default:
		return apperrors.InternalError("internal server error", err)
	}
}
