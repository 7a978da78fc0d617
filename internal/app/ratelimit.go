package app

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/perchsocial/perch/internal/metrics"
	"golang.org/x/time/rate"
)

// reactionLimiter enforces a per-user token bucket over reaction writes.
// Limiters are created lazily per user and kept for the process lifetime;
// the per-entry footprint is small enough that eviction is not worth it.
type reactionLimiter struct {
	mu        sync.Mutex
	limiters  map[uuid.UUID]*rate.Limiter
	perMinute int
}

func newReactionLimiter(perMinute int) *reactionLimiter {
	return &reactionLimiter{
		limiters:  make(map[uuid.UUID]*rate.Limiter),
		perMinute: perMinute,
	}
}

func (l *reactionLimiter) allow(user uuid.UUID) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[user]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute)
		l.limiters[user] = limiter
	}
	l.mu.Unlock()

	if !limiter.Allow() {
		metrics.ReactionsThrottledTotal.Inc()
		return false
	}
	return true
}
