package memory

import (
	"context"
	"sync"
	"time"

	"tracker/internal/domain/repository"
)

type processedEventRepository struct {
	mu        sync.Mutex
	seen      map[string]time.Time
	retention time.Duration
	now       func() time.Time
}

// NewProcessedEventRepository creates a dedup set that remembers event ids
// for the given retention window. The window bounds memory growth: it only
// needs to outlast the sender's maximum retry window, after which a replayed
// id is indistinguishable from a new event anyway.
func NewProcessedEventRepository(retention time.Duration) repository.ProcessedEventRepository {
	return &processedEventRepository{
		seen:      make(map[string]time.Time),
		retention: retention,
		now:       time.Now,
	}
}

// MarkProcessed is a single atomic insert-if-absent: the check and the
// insert happen under one lock, so two concurrent deliveries of the same
// event id can never both be reported as new.
func (r *processedEventRepository) MarkProcessed(_ context.Context, eventID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictExpired(now)

	if _, ok := r.seen[eventID]; ok {
		return false, nil
	}

	r.seen[eventID] = now

	return true, nil
}

// evictExpired drops entries older than the retention window. Caller holds
// the lock.
func (r *processedEventRepository) evictExpired(now time.Time) {
	if r.retention <= 0 {
		return
	}

	cutoff := now.Add(-r.retention)
	for id, seenAt := range r.seen {
		if seenAt.Before(cutoff) {
			delete(r.seen, id)
		}
	}
}
