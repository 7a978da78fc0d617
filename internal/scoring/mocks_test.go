package scoring

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/domain"
)

type mockPostRepo struct {
	GetByIDFunc      func(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
	ListByAuthorFunc func(ctx context.Context, author uuid.UUID) ([]domain.Post, error)
}

func (m *mockPostRepo) Create(context.Context, uuid.UUID, string) (*domain.Post, error) {
	panic("not implemented")
}
func (m *mockPostRepo) List(context.Context) ([]domain.Post, error) { panic("not implemented") }
func (m *mockPostRepo) Delete(context.Context, uuid.UUID) error     { panic("not implemented") }

func (m *mockPostRepo) GetByID(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	if m.GetByIDFunc == nil {
		return nil, domain.ErrPostNotFound
	}
	return m.GetByIDFunc(ctx, postID)
}

func (m *mockPostRepo) ListByAuthor(ctx context.Context, author uuid.UUID) ([]domain.Post, error) {
	if m.ListByAuthorFunc == nil {
		return nil, nil
	}
	return m.ListByAuthorFunc(ctx, author)
}

type mockCommentRepo struct {
	GetByIDFunc      func(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error)
	ListByAuthorFunc func(ctx context.Context, author uuid.UUID) ([]domain.Comment, error)
	ListByParentFunc func(ctx context.Context, parent uuid.UUID) ([]domain.Comment, error)
}

func (m *mockCommentRepo) Create(context.Context, uuid.UUID, string, uuid.UUID) (*domain.Comment, error) {
	panic("not implemented")
}
func (m *mockCommentRepo) List(context.Context) ([]domain.Comment, error) { panic("not implemented") }
func (m *mockCommentRepo) Delete(context.Context, uuid.UUID) error        { panic("not implemented") }

func (m *mockCommentRepo) GetByID(ctx context.Context, commentID uuid.UUID) (*domain.Comment, error) {
	if m.GetByIDFunc == nil {
		return nil, domain.ErrCommentNotFound
	}
	return m.GetByIDFunc(ctx, commentID)
}

func (m *mockCommentRepo) ListByAuthor(ctx context.Context, author uuid.UUID) ([]domain.Comment, error) {
	if m.ListByAuthorFunc == nil {
		return nil, nil
	}
	return m.ListByAuthorFunc(ctx, author)
}

func (m *mockCommentRepo) ListByParent(ctx context.Context, parent uuid.UUID) ([]domain.Comment, error) {
	if m.ListByParentFunc == nil {
		return nil, nil
	}
	return m.ListByParentFunc(ctx, parent)
}

type mockReactionRepo struct {
	ListByItemFunc func(ctx context.Context, reactionType domain.ReactionType, item uuid.UUID) ([]domain.Reaction, error)
}

func (m *mockReactionRepo) Create(context.Context, uuid.UUID, domain.ReactionType, uuid.UUID) (*domain.Reaction, error) {
	panic("not implemented")
}
func (m *mockReactionRepo) UpdateType(context.Context, uuid.UUID, domain.ReactionType, uuid.UUID) error {
	panic("not implemented")
}
func (m *mockReactionRepo) Delete(context.Context, uuid.UUID, uuid.UUID) error {
	panic("not implemented")
}
func (m *mockReactionRepo) GetByAuthorAndItem(context.Context, uuid.UUID, uuid.UUID) (*domain.Reaction, error) {
	panic("not implemented")
}
func (m *mockReactionRepo) ListByAuthor(context.Context, uuid.UUID) ([]domain.Reaction, error) {
	panic("not implemented")
}

func (m *mockReactionRepo) ListByItem(ctx context.Context, reactionType domain.ReactionType, item uuid.UUID) ([]domain.Reaction, error) {
	if m.ListByItemFunc == nil {
		return nil, nil
	}
	return m.ListByItemFunc(ctx, reactionType, item)
}

type mockAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, text string) (float64, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, text string) (float64, error) {
	if m.AnalyzeFunc == nil {
		return 0, nil
	}
	return m.AnalyzeFunc(ctx, text)
}

// fakeScoreStore is an in-memory ScoreStore with the same semantics as the
// Postgres-backed one. It doubles as a ScoreReader whose Refresh is a no-op,
// which is exact for a store without caching in front of it.
type fakeScoreStore struct {
	mu     sync.Mutex
	scores map[uuid.UUID]int

	updateErr error
	listErr   error
}

func newFakeScoreStore() *fakeScoreStore {
	return &fakeScoreStore{scores: make(map[uuid.UUID]int)}
}

func (s *fakeScoreStore) Create(_ context.Context, item uuid.UUID) (*domain.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scores[item]; ok {
		return nil, domain.ErrScoreExists
	}
	s.scores[item] = NeutralScore
	return &domain.ScoreRecord{Item: item, Score: NeutralScore}, nil
}

func (s *fakeScoreStore) GetByItem(_ context.Context, item uuid.UUID) (*domain.ScoreRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	score, ok := s.scores[item]
	if !ok {
		return nil, domain.ErrScoreNotFound
	}
	return &domain.ScoreRecord{Item: item, Score: score}, nil
}

func (s *fakeScoreStore) Update(_ context.Context, item uuid.UUID, score int) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scores[item]; !ok {
		return domain.ErrScoreNotFound
	}
	if score < 0 || score > 100 {
		return domain.ErrScoreInvalid
	}
	s.scores[item] = score
	return nil
}

func (s *fakeScoreStore) List(context.Context) ([]domain.ScoreRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]domain.ScoreRecord, 0, len(s.scores))
	for item, score := range s.scores {
		records = append(records, domain.ScoreRecord{Item: item, Score: score})
	}
	return records, nil
}

func (s *fakeScoreStore) Refresh(context.Context) error { return s.listErr }

func (s *fakeScoreStore) GetScore(_ context.Context, item uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	score, ok := s.scores[item]
	if !ok {
		return 0, domain.ErrScoreNotFound
	}
	return score, nil
}
