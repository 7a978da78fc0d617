package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/domain"
	goredis "github.com/redis/go-redis/v9"
)

// mockAppService implements domain.AppService with per-method overrides.
// Methods without an override fail loudly so tests only stub what they use.
type mockAppService struct {
	RegisterFunc             func(ctx context.Context, username, password string) (*domain.User, error)
	LoginFunc                func(ctx context.Context, username, password string) (*domain.User, error)
	GetUserByIDFunc          func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetUserByUsernameFunc    func(ctx context.Context, username string) (*domain.User, error)
	CreatePostFunc           func(ctx context.Context, author uuid.UUID, content string) (*domain.Post, error)
	ListPostsFunc            func(ctx context.Context, author string) ([]domain.Post, error)
	DeletePostFunc           func(ctx context.Context, requester, postID uuid.UUID) error
	CreateCommentFunc        func(ctx context.Context, author uuid.UUID, content string, parent uuid.UUID) (*domain.Comment, error)
	ListCommentsFunc         func(ctx context.Context, author string) ([]domain.Comment, error)
	ListCommentsByParentFunc func(ctx context.Context, parent uuid.UUID) ([]domain.Comment, error)
	DeleteCommentFunc        func(ctx context.Context, requester, commentID uuid.UUID) error
	ReactFunc                func(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) (*domain.Reaction, error)
	UpdateReactionFunc       func(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) error
	DeleteReactionFunc       func(ctx context.Context, author, item uuid.UUID) error
	ListReactionsByItemFunc  func(ctx context.Context, reactionType domain.ReactionType, item uuid.UUID) ([]domain.Reaction, error)
	FollowFunc               func(ctx context.Context, follower uuid.UUID, followeeUsername string) error
	UnfollowFunc             func(ctx context.Context, follower uuid.UUID, followeeUsername string) error
	ListFollowersFunc        func(ctx context.Context, username string) ([]domain.Follow, error)
	ListFollowingFunc        func(ctx context.Context, username string) ([]domain.Follow, error)
	GetScoreFunc             func(ctx context.Context, item uuid.UUID) (*domain.ScoreRecord, error)
	ListScoresFunc           func(ctx context.Context) ([]domain.ScoreRecord, error)
}

var _ domain.AppService = (*mockAppService)(nil)

func (m *mockAppService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return m.RegisterFunc(ctx, username, password)
}

func (m *mockAppService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	return m.LoginFunc(ctx, username, password)
}

func (m *mockAppService) GetUserByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.GetUserByIDFunc(ctx, userID)
}

func (m *mockAppService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetUserByUsernameFunc(ctx, username)
}

func (m *mockAppService) CreatePost(ctx context.Context, author uuid.UUID, content string) (*domain.Post, error) {
	return m.CreatePostFunc(ctx, author, content)
}

func (m *mockAppService) ListPosts(ctx context.Context, author string) ([]domain.Post, error) {
	return m.ListPostsFunc(ctx, author)
}

func (m *mockAppService) DeletePost(ctx context.Context, requester, postID uuid.UUID) error {
	return m.DeletePostFunc(ctx, requester, postID)
}

func (m *mockAppService) CreateComment(ctx context.Context, author uuid.UUID, content string, parent uuid.UUID) (*domain.Comment, error) {
	return m.CreateCommentFunc(ctx, author, content, parent)
}

func (m *mockAppService) ListComments(ctx context.Context, author string) ([]domain.Comment, error) {
	return m.ListCommentsFunc(ctx, author)
}

func (m *mockAppService) ListCommentsByParent(ctx context.Context, parent uuid.UUID) ([]domain.Comment, error) {
	return m.ListCommentsByParentFunc(ctx, parent)
}

func (m *mockAppService) DeleteComment(ctx context.Context, requester, commentID uuid.UUID) error {
	return m.DeleteCommentFunc(ctx, requester, commentID)
}

func (m *mockAppService) React(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) (*domain.Reaction, error) {
	return m.ReactFunc(ctx, author, reactionType, item)
}

func (m *mockAppService) UpdateReaction(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) error {
	return m.UpdateReactionFunc(ctx, author, reactionType, item)
}

func (m *mockAppService) DeleteReaction(ctx context.Context, author, item uuid.UUID) error {
	return m.DeleteReactionFunc(ctx, author, item)
}

func (m *mockAppService) ListReactionsByItem(ctx context.Context, reactionType domain.ReactionType, item uuid.UUID) ([]domain.Reaction, error) {
	return m.ListReactionsByItemFunc(ctx, reactionType, item)
}

func (m *mockAppService) Follow(ctx context.Context, follower uuid.UUID, followeeUsername string) error {
	return m.FollowFunc(ctx, follower, followeeUsername)
}

func (m *mockAppService) Unfollow(ctx context.Context, follower uuid.UUID, followeeUsername string) error {
	return m.UnfollowFunc(ctx, follower, followeeUsername)
}

func (m *mockAppService) ListFollowers(ctx context.Context, username string) ([]domain.Follow, error) {
	return m.ListFollowersFunc(ctx, username)
}

func (m *mockAppService) ListFollowing(ctx context.Context, username string) ([]domain.Follow, error) {
	return m.ListFollowingFunc(ctx, username)
}

func (m *mockAppService) GetScore(ctx context.Context, item uuid.UUID) (*domain.ScoreRecord, error) {
	return m.GetScoreFunc(ctx, item)
}

func (m *mockAppService) ListScores(ctx context.Context) ([]domain.ScoreRecord, error) {
	return m.ListScoresFunc(ctx)
}

type stubPostgres struct{ err error }

func (s stubPostgres) Ping(context.Context) error { return s.err }

type stubRedis struct{ err error }

func (s stubRedis) Ping(ctx context.Context) *goredis.StatusCmd {
	cmd := goredis.NewStatusCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
	} else {
		cmd.SetVal("PONG")
	}
	return cmd
}
