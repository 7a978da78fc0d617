package app

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/domain"
)

type mockUserRepo struct {
	CreateFunc        func(ctx context.Context, username, password string) (*domain.User, error)
	GetByIDFunc       func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	AuthenticateFunc  func(ctx context.Context, username, password string) (*domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, username, password string) (*domain.User, error) {
	return m.CreateFunc(ctx, username, password)
}

func (m *mockUserRepo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.GetByIDFunc(ctx, userID)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}

func (m *mockUserRepo) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	return m.AuthenticateFunc(ctx, username, password)
}

type mockPostRepo struct {
	CreateFunc       func(ctx context.Context, author uuid.UUID, content string) (*domain.Post, error)
	GetByIDFunc      func(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
	ListFunc         func(ctx context.Context) ([]domain.Post, error)
	ListByAuthorFunc func(ctx context.Context, author uuid.UUID) ([]domain.Post, error)
	DeleteFunc       func(ctx context.Context, postID uuid.UUID) error
}

func (m *mockPostRepo) Create(ctx context.Context, author uuid.UUID, content string) (*domain.Post, error) {
	return m.CreateFunc(ctx, author, content)
}

func (m *mockPostRepo) GetByID(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFunc == nil {
		return nil, domain.ErrPostNotFound
	}
	return m.GetByIDFunc(ctx, postID)
}

func (m *mockPostRepo) List(ctx context.Context) ([]domain.Post, error) {
	return m.ListFunc(ctx)
}

func (m *mockPostRepo) ListByAuthor(ctx context.Context, author uuid.UUID) ([]domain.Post, error) {
	return m.ListByAuthorFunc(ctx, author)
}

func (m *mockPostRepo) Delete(ctx context.Context, postID uuid.UUID) error {
	return m.DeleteFunc(ctx, postID)
}

type mockCommentRepo struct {
	CreateFunc       func(ctx context.Context, author uuid.UUID, content string, parent uuid.UUID) (*domain.Comment, error)
	GetByIDFunc      func(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	ListFunc         func(ctx context.Context) ([]domain.Comment, error)
	ListByAuthorFunc func(ctx context.Context, author uuid.UUID) ([]domain.Comment, error)
	ListByParentFunc func(ctx context.Context, parent uuid.UUID) ([]domain.Comment, error)
	DeleteFunc       func(ctx context.Context, commentID uuid.UUID) error
}

func (m *mockCommentRepo) Create(ctx context.Context, author uuid.UUID, content string, parent uuid.UUID) (*domain.Comment, error) {
	return m.CreateFunc(ctx, author, content, parent)
}

func (m *mockCommentRepo) GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	if m.GetByIDFunc == nil {
		return nil, domain.ErrCommentNotFound
	}
	return m.GetByIDFunc(ctx, commentID)
}

func (m *mockCommentRepo) List(ctx context.Context) ([]domain.Comment, error) {
	return m.ListFunc(ctx)
}

func (m *mockCommentRepo) ListByAuthor(ctx context.Context, author uuid.UUID) ([]domain.Comment, error) {
	return m.ListByAuthorFunc(ctx, author)
}

func (m *mockCommentRepo) ListByParent(ctx context.Context, parent uuid.UUID) ([]domain.Comment, error) {
	return m.ListByParentFunc(ctx, parent)
}

func (m *mockCommentRepo) Delete(ctx context.Context, commentID uuid.UUID) error {
	return m.DeleteFunc(ctx, commentID)
}

type mockReactionRepo struct {
	CreateFunc             func(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) (*domain.Reaction, error)
	UpdateTypeFunc         func(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) error
	DeleteFunc             func(ctx context.Context, author, item uuid.UUID) error
	GetByAuthorAndItemFunc func(ctx context.Context, author, item uuid.UUID) (*domain.Reaction, error)
	ListByItemFunc         func(ctx context.Context, reactionType domain.ReactionType, item uuid.UUID) ([]domain.Reaction, error)
	ListByAuthorFunc       func(ctx context.Context, author uuid.UUID) ([]domain.Reaction, error)
}

func (m *mockReactionRepo) Create(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) (*domain.Reaction, error) {
	return m.CreateFunc(ctx, author, reactionType, item)
}

func (m *mockReactionRepo) UpdateType(ctx context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) error {
	return m.UpdateTypeFunc(ctx, author, reactionType, item)
}

func (m *mockReactionRepo) Delete(ctx context.Context, author, item uuid.UUID) error {
	return m.DeleteFunc(ctx, author, item)
}

func (m *mockReactionRepo) GetByAuthorAndItem(ctx context.Context, author, item uuid.UUID) (*domain.Reaction, error) {
	return m.GetByAuthorAndItemFunc(ctx, author, item)
}

func (m *mockReactionRepo) ListByItem(ctx context.Context, reactionType domain.ReactionType, item uuid.UUID) ([]domain.Reaction, error) {
	return m.ListByItemFunc(ctx, reactionType, item)
}

func (m *mockReactionRepo) ListByAuthor(ctx context.Context, author uuid.UUID) ([]domain.Reaction, error) {
	return m.ListByAuthorFunc(ctx, author)
}

type mockFollowRepo struct {
	FollowFunc        func(ctx context.Context, follower, followee uuid.UUID) error
	UnfollowFunc      func(ctx context.Context, follower, followee uuid.UUID) error
	ListFollowersFunc func(ctx context.Context, followee uuid.UUID) ([]domain.Follow, error)
	ListFollowingFunc func(ctx context.Context, follower uuid.UUID) ([]domain.Follow, error)
}

func (m *mockFollowRepo) Follow(ctx context.Context, follower, followee uuid.UUID) error {
	return m.FollowFunc(ctx, follower, followee)
}

func (m *mockFollowRepo) Unfollow(ctx context.Context, follower, followee uuid.UUID) error {
	return m.UnfollowFunc(ctx, follower, followee)
}

func (m *mockFollowRepo) ListFollowers(ctx context.Context, followee uuid.UUID) ([]domain.Follow, error) {
	return m.ListFollowersFunc(ctx, followee)
}

func (m *mockFollowRepo) ListFollowing(ctx context.Context, follower uuid.UUID) ([]domain.Follow, error) {
	return m.ListFollowingFunc(ctx, follower)
}

type mockScoreStore struct {
	CreateFunc    func(ctx context.Context, item uuid.UUID) (*domain.ScoreRecord, error)
	GetByItemFunc func(ctx context.Context, item uuid.UUID) (*domain.ScoreRecord, error)
	UpdateFunc    func(ctx context.Context, item uuid.UUID, score int) error
	ListFunc      func(ctx context.Context) ([]domain.ScoreRecord, error)
}

func (m *mockScoreStore) Create(ctx context.Context, item uuid.UUID) (*domain.ScoreRecord, error) {
	if m.CreateFunc == nil {
		return &domain.ScoreRecord{Item: item, Score: 50}, nil
	}
	return m.CreateFunc(ctx, item)
}

func (m *mockScoreStore) GetByItem(ctx context.Context, item uuid.UUID) (*domain.ScoreRecord, error) {
	return m.GetByItemFunc(ctx, item)
}

func (m *mockScoreStore) Update(ctx context.Context, item uuid.UUID, score int) error {
	return m.UpdateFunc(ctx, item, score)
}

func (m *mockScoreStore) List(ctx context.Context) ([]domain.ScoreRecord, error) {
	return m.ListFunc(ctx)
}

// recordingPublisher captures published rescore triggers.
type recordingPublisher struct {
	mu    sync.Mutex
	items []uuid.UUID
	err   error
}

func (p *recordingPublisher) PublishRescore(_ context.Context, item uuid.UUID) error {
	if p.err != nil {
		return p.err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, item)
	return nil
}

func (p *recordingPublisher) published() []uuid.UUID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]uuid.UUID(nil), p.items...)
}
