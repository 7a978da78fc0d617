package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// --- Model types ---

// User is an account holder. A user's reputation is itself a scorable item:
// the ScoreRecord keyed by the user's own ID holds their reputation score.
type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Post struct {
	ID        uuid.UUID `json:"id"`
	Author    uuid.UUID `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment hangs off a parent item, which is either a post or another comment.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	Author    uuid.UUID `json:"author"`
	Parent    uuid.UUID `json:"parent"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ReactionType is the polarity of a reaction.
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

// Valid reports whether t is a known reaction type.
func (t ReactionType) Valid() bool {
	return t == ReactionLike || t == ReactionDislike
}

// Reaction records one author's like or dislike of one item. At most one
// reaction exists per (author, item) pair.
type Reaction struct {
	ID        uuid.UUID    `json:"id"`
	Author    uuid.UUID    `json:"author"`
	Item      uuid.UUID    `json:"item"`
	Type      ReactionType `json:"type"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type Follow struct {
	Follower  uuid.UUID `json:"follower"`
	Followee  uuid.UUID `json:"followee"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoreRecord is the persisted reputation score of a scorable item (a post,
// a comment, or a user). Score is always an integer in [0,100]; 50 is the
// neutral default assigned at item creation.
type ScoreRecord struct {
	Item      uuid.UUID `json:"item"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthorID implements scoring's authored-entry contract.
func (c Comment) AuthorID() uuid.UUID { return c.Author }

// AuthorID implements scoring's authored-entry contract.
func (r Reaction) AuthorID() uuid.UUID { return r.Author }

// --- Repository interfaces ---

// UserRepository abstracts user persistence.
type UserRepository interface {
	Create(ctx context.Context, username, password string) (*User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Authenticate(ctx context.Context, username, password string) (*User, error)
}

// PostRepository abstracts post persistence.
type PostRepository interface {
	Create(ctx context.Context, author uuid.UUID, content string) (*Post, error)
	GetByID(ctx context.Context, postID uuid.UUID) (*Post, error)
	List(ctx context.Context) ([]Post, error)
	ListByAuthor(ctx context.Context, author uuid.UUID) ([]Post, error)
	Delete(ctx context.Context, postID uuid.UUID) error
}

// CommentRepository abstracts comment persistence.
type CommentRepository interface {
	Create(ctx context.Context, author uuid.UUID, content string, parent uuid.UUID) (*Comment, error)
	GetByID(ctx context.Context, commentID uuid.UUID) (*Comment, error)
	List(ctx context.Context) ([]Comment, error)
	ListByAuthor(ctx context.Context, author uuid.UUID) ([]Comment, error)
	ListByParent(ctx context.Context, parent uuid.UUID) ([]Comment, error)
	Delete(ctx context.Context, commentID uuid.UUID) error
}

// ReactionRepository abstracts reaction persistence.
type ReactionRepository interface {
	Create(ctx context.Context, author uuid.UUID, reactionType ReactionType, item uuid.UUID) (*Reaction, error)
	UpdateType(ctx context.Context, author uuid.UUID, reactionType ReactionType, item uuid.UUID) error
	Delete(ctx context.Context, author, item uuid.UUID) error
	GetByAuthorAndItem(ctx context.Context, author, item uuid.UUID) (*Reaction, error)
	ListByItem(ctx context.Context, reactionType ReactionType, item uuid.UUID) ([]Reaction, error)
	ListByAuthor(ctx context.Context, author uuid.UUID) ([]Reaction, error)
}

// FollowRepository abstracts the follow graph.
type FollowRepository interface {
	Follow(ctx context.Context, follower, followee uuid.UUID) error
	Unfollow(ctx context.Context, follower, followee uuid.UUID) error
	ListFollowers(ctx context.Context, followee uuid.UUID) ([]Follow, error)
	ListFollowing(ctx context.Context, follower uuid.UUID) ([]Follow, error)
}

// --- Score store ---

// ScoreStore persists ScoreRecords. Update re-validates the 0..100 integer
// invariant as a hard boundary even though callers clamp before writing.
type ScoreStore interface {
	// Create inserts a record with the neutral default score of 50.
	// Returns ErrScoreExists if the item already has a record.
	Create(ctx context.Context, item uuid.UUID) (*ScoreRecord, error)
	// GetByItem returns ErrScoreNotFound if no record exists.
	GetByItem(ctx context.Context, item uuid.UUID) (*ScoreRecord, error)
	// Update returns ErrScoreNotFound if no record exists and
	// ErrScoreInvalid if score is outside [0,100].
	Update(ctx context.Context, item uuid.UUID, score int) error
	// List returns all records, newest first.
	List(ctx context.Context) ([]ScoreRecord, error)
}

// ScoreReader serves score lookups from a local snapshot of the store.
// Refresh reloads the snapshot; the scoring pipeline calls it after each
// write so dependent reads observe the just-written value.
type ScoreReader interface {
	Refresh(ctx context.Context) error
	GetScore(ctx context.Context, item uuid.UUID) (int, error)
}

// --- Collaborators ---

// SentimentAnalyzer scores free text. The returned raw polarity is bounded
// by a symmetric range around zero; the bundled lexicon analyzer stays
// within [-5,5] (AFINN valences). Callers normalize the value themselves.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (float64, error)
}

// RescorePublisher announces that an item's signals changed and its score
// should be recomputed. Publishing is fire-and-forget from the caller's
// perspective; the rescore listener picks the message up asynchronously.
type RescorePublisher interface {
	PublishRescore(ctx context.Context, item uuid.UUID) error
}

// Rescorer runs the full two-stage scoring cascade for one item.
type Rescorer interface {
	Rescore(ctx context.Context, item uuid.UUID)
}

// --- Application layer contract ---

// AppService is the application layer contract. HTTP handlers route all
// operations through here.
type AppService interface {
	Register(ctx context.Context, username, password string) (*User, error)
	Login(ctx context.Context, username, password string) (*User, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	CreatePost(ctx context.Context, author uuid.UUID, content string) (*Post, error)
	ListPosts(ctx context.Context, author string) ([]Post, error)
	DeletePost(ctx context.Context, requester, postID uuid.UUID) error

	CreateComment(ctx context.Context, author uuid.UUID, content string, parent uuid.UUID) (*Comment, error)
	ListComments(ctx context.Context, author string) ([]Comment, error)
	ListCommentsByParent(ctx context.Context, parent uuid.UUID) ([]Comment, error)
	DeleteComment(ctx context.Context, requester, commentID uuid.UUID) error

	React(ctx context.Context, author uuid.UUID, reactionType ReactionType, item uuid.UUID) (*Reaction, error)
	UpdateReaction(ctx context.Context, author uuid.UUID, reactionType ReactionType, item uuid.UUID) error
	DeleteReaction(ctx context.Context, author, item uuid.UUID) error
	ListReactionsByItem(ctx context.Context, reactionType ReactionType, item uuid.UUID) ([]Reaction, error)

	Follow(ctx context.Context, follower uuid.UUID, followeeUsername string) error
	Unfollow(ctx context.Context, follower uuid.UUID, followeeUsername string) error
	ListFollowers(ctx context.Context, username string) ([]Follow, error)
	ListFollowing(ctx context.Context, username string) ([]Follow, error)

	GetScore(ctx context.Context, item uuid.UUID) (*ScoreRecord, error)
	ListScores(ctx context.Context) ([]ScoreRecord, error)
}
