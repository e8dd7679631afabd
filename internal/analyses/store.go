package analyses

import (
	"context"
	"sync"
	"time"
)

// MemoryStore holds completed analyses until they expire. There is no durable
// persistence on purpose: results belong to the request that produced them and
// only outlive it long enough to serve the export downloads.
type MemoryStore struct {
	mu   sync.RWMutex
	byID map[string]Analysis
	ttl  time.Duration
	now  func() time.Time
}

// NewMemoryStore constructs a store with the given TTL. Pass nil for the real clock.
func NewMemoryStore(ttl time.Duration, now func() time.Time) *MemoryStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		byID: make(map[string]Analysis),
		ttl:  ttl,
		now:  now,
	}
}

// TTL returns the configured lifetime for stored analyses.
func (s *MemoryStore) TTL() time.Duration {
	return s.ttl
}

// Put stores an analysis and stamps its expiry. Expired entries are swept
// opportunistically on each write.
func (s *MemoryStore) Put(ctx context.Context, analysis Analysis) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	now := s.now().UTC()
	analysis.ExpiresAt = now.Add(s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, a := range s.byID {
		if !a.ExpiresAt.After(now) {
			delete(s.byID, id)
		}
	}
	s.byID[analysis.ID] = analysis
	return analysis, nil
}

// Get returns a stored analysis, or ErrNotFound if unknown or expired.
func (s *MemoryStore) Get(ctx context.Context, id string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	s.mu.RLock()
	analysis, ok := s.byID[id]
	s.mu.RUnlock()
	if !ok || !analysis.ExpiresAt.After(s.now().UTC()) {
		return Analysis{}, ErrNotFound
	}
	return analysis, nil
}

// Len reports the number of live entries, counting expired-but-unswept ones out.
func (s *MemoryStore) Len() int {
	now := s.now().UTC()
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, a := range s.byID {
		if a.ExpiresAt.After(now) {
			n++
		}
	}
	return n
}
