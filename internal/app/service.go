package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/domain"
)

// Service is the application layer — the only component that references
// multiple domain components. It orchestrates all use cases.
type Service struct {
	users     domain.UserRepository
	posts     domain.PostRepository
	comments  domain.CommentRepository
	reactions domain.ReactionRepository
	follows   domain.FollowRepository
	scores    domain.ScoreStore
	publisher domain.RescorePublisher
	limiter   *reactionLimiter
}

var _ domain.AppService = (*Service)(nil)

// NewService creates the application layer service. reactionsPerMinute
// bounds how fast a single user may create or change reactions.
func NewService(
	users domain.UserRepository,
	posts domain.PostRepository,
	comments domain.CommentRepository,
	reactions domain.ReactionRepository,
	follows domain.FollowRepository,
	scores domain.ScoreStore,
	publisher domain.RescorePublisher,
	reactionsPerMinute int,
) *Service {
	return &Service{
		users:     users,
		posts:     posts,
		comments:  comments,
		reactions: reactions,
		follows:   follows,
		scores:    scores,
		publisher: publisher,
		limiter:   newReactionLimiter(reactionsPerMinute),
	}
}

// --- Users ---

// Register creates a user together with their reputation score record. The
// record starts at the neutral default and is only ever mutated by the
// scoring pipeline.
func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if _, err := s.scores.Create(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to create score record for user %s: %w", user.ID, err)
	}
	return user, nil
}

func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return s.users.Authenticate(ctx, username, password)
}

func (s *Service) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

// --- Posts ---

func (s *Service) CreatePost(ctx context.Context, author uuid.UUID, content string) (*domain.Post, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}

	post, err := s.posts.Create(ctx, author, content)
	if err != nil {
		return nil, err
	}

	if _, err := s.scores.Create(ctx, post.ID); err != nil {
		return nil, fmt.Errorf("failed to create score record for post %s: %w", post.ID, err)
	}
	return post, nil
}

// ListPosts returns all posts, or only those of the named author.
func (s *Service) ListPosts(ctx context.Context, author string) ([]domain.Post, error) {
	if author == "" {
		return s.posts.List(ctx)
	}

	user, err := s.users.GetByUsername(ctx, author)
	if err != nil {
		return nil, err
	}
	return s.posts.ListByAuthor(ctx, user.ID)
}

func (s *Service) DeletePost(ctx context.Context, requester, postID uuid.UUID) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.Author != requester {
		return domain.ErrNotAuthor
	}
	return s.posts.Delete(ctx, postID)
}

// --- Comments ---

// CreateComment validates that the parent is a known post or comment, then
// creates the comment with its score record and triggers a rescore of the
// parent, since its discussion signal just changed.
func (s *Service) CreateComment(ctx context.Context, author uuid.UUID, content string, parent uuid.UUID) (*domain.Comment, error) {
	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := s.resolveItem(ctx, parent); err != nil {
		return nil, err
	}

	comment, err := s.comments.Create(ctx, author, content, parent)
	if err != nil {
		return nil, err
	}

	if _, err := s.scores.Create(ctx, comment.ID); err != nil {
		return nil, fmt.Errorf("failed to create score record for comment %s: %w", comment.ID, err)
	}

	s.triggerRescore(ctx, parent)
	return comment, nil
}

func (s *Service) ListComments(ctx context.Context, author string) ([]domain.Comment, error) {
	if author == "" {
		return s.comments.List(ctx)
	}

	user, err := s.users.GetByUsername(ctx, author)
	if err != nil {
		return nil, err
	}
	return s.comments.ListByAuthor(ctx, user.ID)
}

func (s *Service) ListCommentsByParent(ctx context.Context, parent uuid.UUID) ([]domain.Comment, error) {
	return s.comments.ListByParent(ctx, parent)
}

func (s *Service) DeleteComment(ctx context.Context, requester, commentID uuid.UUID) error {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.Author != requester {
		return domain.ErrNotAuthor
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return err
	}

	s.triggerRescore(ctx, comment.Parent)
	return nil
}

// --- Reactions ---

// React records a like or dislike on an item and triggers a rescore. At
// most one reaction exists per (author, item); a second attempt fails with
// ErrAlreadyReacted rather than flipping the existing one.
func (s *Service) React(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) (*domain.Reaction, error) {
	if !reactionType.Valid() {
		return nil, domain.ErrInvalidReaction
	}
	if err := s.resolveItem(ctx, item); err != nil {
		return nil, err
	}
	if !s.limiter.allow(author) {
		return nil, domain.ErrRateLimited
	}

	reaction, err := s.reactions.Create(ctx, author, reactionType, item)
	if err != nil {
		return nil, err
	}

	s.triggerRescore(ctx, item)
	return reaction, nil
}

func (s *Service) UpdateReaction(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) error {
	if !reactionType.Valid() {
		return domain.ErrInvalidReaction
	}
	if !s.limiter.allow(author) {
		return domain.ErrRateLimited
	}

	if err := s.reactions.UpdateType(ctx, author, reactionType, item); err != nil {
		return err
	}

	s.triggerRescore(ctx, item)
	return nil
}

func (s *Service) DeleteReaction(ctx context.Context, author, item uuid.UUID) error {
	if err := s.reactions.Delete(ctx, author, item); err != nil {
		return err
	}

	s.triggerRescore(ctx, item)
	return nil
}

func (s *Service) ListReactionsByItem(ctx context.Context, reactionType domain.ReactionType, item uuid.UUID) ([]domain.Reaction, error) {
	if !reactionType.Valid() {
		return nil, domain.ErrInvalidReaction
	}
	return s.reactions.ListByItem(ctx, reactionType, item)
}

// --- Follows ---

func (s *Service) Follow(ctx context.Context, follower uuid.UUID, followeeUsername string) error {
	followee, err := s.users.GetByUsername(ctx, followeeUsername)
	if err != nil {
		return err
	}
	if followee.ID == follower {
		return domain.ErrSelfFollow
	}
	return s.follows.Follow(ctx, follower, followee.ID)
}

func (s *Service) Unfollow(ctx context.Context, follower uuid.UUID, followeeUsername string) error {
	followee, err := s.users.GetByUsername(ctx, followeeUsername)
	if err != nil {
		return err
	}
	return s.follows.Unfollow(ctx, follower, followee.ID)
}

func (s *Service) ListFollowers(ctx context.Context, username string) ([]domain.Follow, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.follows.ListFollowers(ctx, user.ID)
}

func (s *Service) ListFollowing(ctx context.Context, username string) ([]domain.Follow, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.follows.ListFollowing(ctx, user.ID)
}

// --- Scores ---

func (s *Service) GetScore(ctx context.Context, item uuid.UUID) (*domain.ScoreRecord, error) {
	return s.scores.GetByItem(ctx, item)
}

func (s *Service) ListScores(ctx context.Context) ([]domain.ScoreRecord, error) {
	return s.scores.List(ctx)
}

// --- Helpers ---

// resolveItem verifies that item names a known post or comment.
func (s *Service) resolveItem(ctx context.Context, item uuid.UUID) error {
	_, err := s.posts.GetByID(ctx, item)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrPostNotFound) {
		return err
	}

	_, err = s.comments.GetByID(ctx, item)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrCommentNotFound) {
		return err
	}
	return domain.ErrItemNotFound
}

// triggerRescore is fire-and-forget: the user's write already succeeded, so
// a lost trigger only delays recomputation until the item's next signal.
func (s *Service) triggerRescore(ctx context.Context, item uuid.UUID) {
	if err := s.publisher.PublishRescore(ctx, item); err != nil {
		slog.WarnContext(ctx, "Failed to publish rescore trigger", "item", item, "error", err)
	}
}
