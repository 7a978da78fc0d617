package scoring

import "github.com/google/uuid"

// Authored is any fetched entry attributable to an author.
type Authored interface {
	AuthorID() uuid.UUID
}

// ExcludeAuthor returns entries without those authored by author. Applied to
// every fetched signal collection so an item's own author never influences
// its score.
func ExcludeAuthor[T Authored](entries []T, author uuid.UUID) []T {
	filtered := make([]T, 0, len(entries))
	for _, e := range entries {
		if e.AuthorID() != author {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
