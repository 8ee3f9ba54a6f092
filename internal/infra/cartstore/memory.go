package cartstore

import (
	"sync"
	"time"

	domcart "example.com/dropship-manager/internal/domain/cart"
)

// MemoryStore owns the in-memory carts of live shopping sessions. Carts do
// not survive a restart and are dropped after an idle TTL; both are
// intentional, the cart has no persistence requirement.
//
// All cart access goes through Do, which holds the store lock for the whole
// callback. That gives every cart a single writer at a time without the
// Cart type itself needing synchronization.
type MemoryStore struct {
	mu      sync.Mutex
	carts   map[string]*entry
	idleTTL time.Duration
	now     func() time.Time
}

type entry struct {
	cart     *domcart.Cart
	lastSeen time.Time
}

func NewMemoryStore(idleTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		carts:   make(map[string]*entry),
		idleTTL: idleTTL,
		now:     time.Now,
	}
}

// Do runs fn against the cart of sessionID, creating an empty cart on first
// use. The session's idle clock is reset on every call.
func (s *MemoryStore) Do(sessionID string, fn func(c *domcart.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.carts[sessionID]
	if !ok {
		e = &entry{cart: domcart.New(sessionID)}
		s.carts[sessionID] = e
	}
	e.lastSeen = s.now()
	return fn(e.cart)
}

// Drop discards the session's cart, if any.
func (s *MemoryStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Len reports the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// Sweep drops sessions idle longer than the TTL and returns how many were
// removed. Run it from a ticker goroutine.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idleTTL <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.idleTTL)
	removed := 0
	for id, e := range s.carts {
		if e.lastSeen.Before(cutoff) {
			delete(s.carts, id)
			removed++
		}
	}
	return removed
}
