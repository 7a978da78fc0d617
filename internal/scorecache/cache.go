package scorecache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/perchsocial/perch/internal/domain"
	"github.com/perchsocial/perch/internal/metrics"
)

// Cache is a read-through snapshot of the score store.
//
// GetScore serves from the snapshot and reloads it lazily once the TTL has
// passed. Refresh reloads unconditionally; callers that just wrote a score
// use it as a barrier so their next read cannot return a stale value.
type Cache struct {
	store domain.ScoreStore
	ttl   time.Duration
	clock clockwork.Clock

	mu        sync.RWMutex
	scores    map[uuid.UUID]int
	loadedAt  time.Time
	populated bool
}

var _ domain.ScoreReader = (*Cache)(nil)

// New creates a cache over store. The snapshot is loaded on first use.
func New(store domain.ScoreStore, ttl time.Duration, clock clockwork.Clock) *Cache {
	return &Cache{
		store:  store,
		ttl:    ttl,
		clock:  clock,
		scores: make(map[uuid.UUID]int),
	}
}

// Refresh replaces the snapshot with the store's current contents.
func (c *Cache) Refresh(ctx context.Context) error {
	records, err := c.store.List(ctx)
	if err != nil {
		metrics.ScoreCacheRefreshesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to refresh score cache: %w", err)
	}

	scores := make(map[uuid.UUID]int, len(records))
	for _, r := range records {
		scores[r.Item] = r.Score
	}

	c.mu.Lock()
	c.scores = scores
	c.loadedAt = c.clock.Now()
	c.populated = true
	c.mu.Unlock()

	metrics.ScoreCacheRefreshesTotal.WithLabelValues("success").Inc()
	return nil
}

// GetScore returns the cached score for item, reloading the snapshot first
// if it has expired. Returns domain.ErrScoreNotFound for unknown items.
func (c *Cache) GetScore(ctx context.Context, item uuid.UUID) (int, error) {
	c.mu.RLock()
	fresh := c.populated && !c.clock.Now().After(c.loadedAt.Add(c.ttl))
	score, ok := c.scores[item]
	c.mu.RUnlock()

	if fresh {
		if !ok {
			return 0, domain.ErrScoreNotFound
		}
		return score, nil
	}

	if err := c.Refresh(ctx); err != nil {
		return 0, err
	}

	c.mu.RLock()
	score, ok = c.scores[item]
	c.mu.RUnlock()

	if !ok {
		return 0, domain.ErrScoreNotFound
	}
	return score, nil
}

// Size returns the number of items in the snapshot.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.scores)
}
