package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")

	// ErrItemNotFound means an opaque item ID matched neither a post nor a
	// comment.
	ErrItemNotFound = errors.New("item not found")

	ErrScoreNotFound = errors.New("score record not found")
	ErrScoreExists   = errors.New("score record already exists")
	ErrScoreInvalid  = errors.New("score must be an integer between 0 and 100")

	ErrReactionNotFound = errors.New("reaction not found")
	ErrAlreadyReacted   = errors.New("author already reacted to this item")
	ErrInvalidReaction  = errors.New("reaction type must be like or dislike")

	ErrAlreadyFollowing = errors.New("already following this user")
	ErrFollowNotFound   = errors.New("follow relationship not found")
	ErrSelfFollow       = errors.New("users cannot follow themselves")

	// ErrNotAuthor means a user tried to delete content they do not own.
	ErrNotAuthor = errors.New("only the author may modify this item")

	ErrRateLimited = errors.New("too many reactions, slow down")
)
