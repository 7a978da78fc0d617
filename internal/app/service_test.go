package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceFixture struct {
	users     *mockUserRepo
	posts     *mockPostRepo
	comments  *mockCommentRepo
	reactions *mockReactionRepo
	follows   *mockFollowRepo
	scores    *mockScoreStore
	publisher *recordingPublisher
}

func newServiceFixture() *serviceFixture {
	return &serviceFixture{
		users:     &mockUserRepo{},
		posts:     &mockPostRepo{},
		comments:  &mockCommentRepo{},
		reactions: &mockReactionRepo{},
		follows:   &mockFollowRepo{},
		scores:    &mockScoreStore{},
		publisher: &recordingPublisher{},
	}
}

func (f *serviceFixture) service() *Service {
	return NewService(f.users, f.posts, f.comments, f.reactions, f.follows, f.scores, f.publisher, 30)
}

func TestRegister_CreatesUserAndScoreRecord(t *testing.T) {
	f := newServiceFixture()
	userID := uuid.New()

	f.users.CreateFunc = func(_ context.Context, username, password string) (*domain.User, error) {
		return &domain.User{ID: userID, Username: username}, nil
	}

	var scoredItem uuid.UUID
	f.scores.CreateFunc = func(_ context.Context, item uuid.UUID) (*domain.ScoreRecord, error) {
		scoredItem = item
		return &domain.ScoreRecord{Item: item, Score: 50}, nil
	}

	user, err := f.service().Register(context.Background(), "alice_1", "correcthorse")
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, userID, scoredItem, "the user's reputation record must be keyed by their own ID")
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	f := newServiceFixture()
	svc := f.service()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "correcthorse"},
		{"invalid characters", "alice!", "correcthorse"},
		{"short password", "alice", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, tt.password)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreatePost_CreatesScoreRecord(t *testing.T) {
	f := newServiceFixture()
	postID := uuid.New()

	f.posts.CreateFunc = func(_ context.Context, author uuid.UUID, content string) (*domain.Post, error) {
		return &domain.Post{ID: postID, Author: author, Content: content}, nil
	}

	var scoredItem uuid.UUID
	f.scores.CreateFunc = func(_ context.Context, item uuid.UUID) (*domain.ScoreRecord, error) {
		scoredItem = item
		return &domain.ScoreRecord{Item: item, Score: 50}, nil
	}

	post, err := f.service().CreatePost(context.Background(), uuid.New(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, postID, post.ID)
	assert.Equal(t, postID, scoredItem)
}

func TestCreateComment_ValidatesParentAndTriggersRescore(t *testing.T) {
	f := newServiceFixture()
	parentID := uuid.New()

	f.posts.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Post, error) {
		if id == parentID {
			return &domain.Post{ID: parentID}, nil
		}
		return nil, domain.ErrPostNotFound
	}
	f.comments.CreateFunc = func(_ context.Context, author uuid.UUID, content string, parent uuid.UUID) (*domain.Comment, error) {
		return &domain.Comment{ID: uuid.New(), Author: author, Content: content, Parent: parent}, nil
	}

	_, err := f.service().CreateComment(context.Background(), uuid.New(), "nice post", parentID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{parentID}, f.publisher.published(), "parent must be rescored after a new comment")
}

func TestCreateComment_CommentParent(t *testing.T) {
	f := newServiceFixture()
	parentID := uuid.New()

	// Parent resolves as a comment, not a post.
	f.comments.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
		if id == parentID {
			return &domain.Comment{ID: parentID}, nil
		}
		return nil, domain.ErrCommentNotFound
	}
	f.comments.CreateFunc = func(_ context.Context, author uuid.UUID, content string, parent uuid.UUID) (*domain.Comment, error) {
		return &domain.Comment{ID: uuid.New(), Author: author, Parent: parent}, nil
	}

	_, err := f.service().CreateComment(context.Background(), uuid.New(), "reply", parentID)
	require.NoError(t, err)
}

func TestCreateComment_UnknownParent(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service().CreateComment(context.Background(), uuid.New(), "orphan", uuid.New())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, f.publisher.published())
}

func TestDeleteComment_TriggersParentRescore(t *testing.T) {
	f := newServiceFixture()
	author := uuid.New()
	parentID := uuid.New()
	commentID := uuid.New()

	f.comments.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Comment, error) {
		return &domain.Comment{ID: commentID, Author: author, Parent: parentID}, nil
	}
	f.comments.DeleteFunc = func(context.Context, uuid.UUID) error { return nil }

	require.NoError(t, f.service().DeleteComment(context.Background(), author, commentID))
	assert.Equal(t, []uuid.UUID{parentID}, f.publisher.published())
}

func TestDeletePost_OnlyAuthorMayDelete(t *testing.T) {
	f := newServiceFixture()
	author := uuid.New()
	postID := uuid.New()

	f.posts.GetByIDFunc = func(context.Context, uuid.UUID) (*domain.Post, error) {
		return &domain.Post{ID: postID, Author: author}, nil
	}
	deleted := false
	f.posts.DeleteFunc = func(context.Context, uuid.UUID) error {
		deleted = true
		return nil
	}

	err := f.service().DeletePost(context.Background(), uuid.New(), postID)
	assert.ErrorIs(t, err, domain.ErrNotAuthor)
	assert.False(t, deleted)

	require.NoError(t, f.service().DeletePost(context.Background(), author, postID))
	assert.True(t, deleted)
}

func TestReact_RecordsReactionAndTriggersRescore(t *testing.T) {
	f := newServiceFixture()
	itemID := uuid.New()

	f.posts.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Post, error) {
		return &domain.Post{ID: id}, nil
	}
	f.reactions.CreateFunc = func(_ context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) (*domain.Reaction, error) {
		return &domain.Reaction{ID: uuid.New(), Author: author, Item: item, Type: reactionType}, nil
	}

	reaction, err := f.service().React(context.Background(), uuid.New(), domain.ReactionLike, itemID)
	require.NoError(t, err)
	assert.Equal(t, domain.ReactionLike, reaction.Type)
	assert.Equal(t, []uuid.UUID{itemID}, f.publisher.published())
}

func TestReact_RejectsInvalidType(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service().React(context.Background(), uuid.New(), "love", uuid.New())
	assert.ErrorIs(t, err, domain.ErrInvalidReaction)
}

func TestReact_UnknownItem(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service().React(context.Background(), uuid.New(), domain.ReactionLike, uuid.New())
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestReact_RateLimitsPerUser(t *testing.T) {
	f := newServiceFixture()
	f.posts.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Post, error) {
		return &domain.Post{ID: id}, nil
	}
	f.reactions.CreateFunc = func(_ context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) (*domain.Reaction, error) {
		return &domain.Reaction{ID: uuid.New()}, nil
	}

	svc := NewService(f.users, f.posts, f.comments, f.reactions, f.follows, f.scores, f.publisher, 3)
	spammer := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := svc.React(context.Background(), spammer, domain.ReactionLike, uuid.New())
		require.NoError(t, err)
	}

	_, err := svc.React(context.Background(), spammer, domain.ReactionLike, uuid.New())
	assert.ErrorIs(t, err, domain.ErrRateLimited)

	// Another user is unaffected.
	_, err = svc.React(context.Background(), uuid.New(), domain.ReactionLike, uuid.New())
	assert.NoError(t, err)
}

func TestUpdateReaction_TriggersRescore(t *testing.T) {
	f := newServiceFixture()
	itemID := uuid.New()

	f.reactions.UpdateTypeFunc = func(context.Context, uuid.UUID, domain.ReactionType, uuid.UUID) error {
		return nil
	}

	require.NoError(t, f.service().UpdateReaction(context.Background(), uuid.New(), domain.ReactionDislike, itemID))
	assert.Equal(t, []uuid.UUID{itemID}, f.publisher.published())
}

func TestDeleteReaction_TriggersRescore(t *testing.T) {
	f := newServiceFixture()
	itemID := uuid.New()

	f.reactions.DeleteFunc = func(context.Context, uuid.UUID, uuid.UUID) error { return nil }

	require.NoError(t, f.service().DeleteReaction(context.Background(), uuid.New(), itemID))
	assert.Equal(t, []uuid.UUID{itemID}, f.publisher.published())
}

func TestReact_PublishFailureDoesNotFailRequest(t *testing.T) {
	f := newServiceFixture()
	f.publisher.err = assert.AnError

	f.posts.GetByIDFunc = func(_ context.Context, id uuid.UUID) (*domain.Post, error) {
		return &domain.Post{ID: id}, nil
	}
	f.reactions.CreateFunc = func(_ context.Context, author uuid.UUID, reactionType domain.ReactionType, item uuid.UUID) (*domain.Reaction, error) {
		return &domain.Reaction{ID: uuid.New()}, nil
	}

	_, err := f.service().React(context.Background(), uuid.New(), domain.ReactionLike, uuid.New())
	assert.NoError(t, err, "a lost trigger must not fail the user's write")
}

func TestFollow_ResolvesUsernameAndRejectsSelf(t *testing.T) {
	f := newServiceFixture()
	follower := uuid.New()
	followee := &domain.User{ID: uuid.New(), Username: "bob"}

	f.users.GetByUsernameFunc = func(_ context.Context, username string) (*domain.User, error) {
		if username == "bob" {
			return followee, nil
		}
		return nil, domain.ErrUserNotFound
	}

	var followed uuid.UUID
	f.follows.FollowFunc = func(_ context.Context, _, fee uuid.UUID) error {
		followed = fee
		return nil
	}

	require.NoError(t, f.service().Follow(context.Background(), follower, "bob"))
	assert.Equal(t, followee.ID, followed)

	err := f.service().Follow(context.Background(), followee.ID, "bob")
	assert.ErrorIs(t, err, domain.ErrSelfFollow)

	err = f.service().Follow(context.Background(), follower, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListPosts_FiltersByAuthor(t *testing.T) {
	f := newServiceFixture()
	author := &domain.User{ID: uuid.New(), Username: "alice"}

	f.users.GetByUsernameFunc = func(context.Context, string) (*domain.User, error) {
		return author, nil
	}
	f.posts.ListByAuthorFunc = func(_ context.Context, id uuid.UUID) ([]domain.Post, error) {
		assert.Equal(t, author.ID, id)
		return []domain.Post{{ID: uuid.New(), Author: id}}, nil
	}
	f.posts.ListFunc = func(context.Context) ([]domain.Post, error) {
		return []domain.Post{{}, {}}, nil
	}

	byAuthor, err := f.service().ListPosts(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, byAuthor, 1)

	all, err := f.service().ListPosts(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
