package subscriber

import (
	"sync"
	"sync/atomic"
)

// Store holds every subscriber created during the lifetime of the
// process. Nothing is persisted: a restart begins with an empty
// registry and ids starting over at 1.
//
// Id allocation is atomic, so concurrent creates always get distinct,
// strictly increasing ids. Appends additionally take the write lock;
// reads take the read lock and return a copy. Under concurrent
// creates the slice order may not match id order - only sequential
// creation order is guaranteed.
type Store struct {
	nextID int64

	mu   sync.RWMutex
	subs []Subscriber
}

// NewStore returns an empty registry.
func NewStore() *Store {
	return &Store{}
}

// Create appends a subscriber for email under the next id. The email
// is stored as-is: no format validation, no uniqueness check, no
// normalization. Empty and duplicate emails each get their own record.
func (s *Store) Create(email string) {
	id := atomic.AddInt64(&s.nextID, 1)

	s.mu.Lock()
	s.subs = append(s.subs, Subscriber{ID: id, Email: email})
	s.mu.Unlock()
}

// All returns every subscriber in creation order. The returned slice
// is a copy and is never nil, so it serializes as a JSON array.
func (s *Store) All() []Subscriber {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Subscriber, len(s.subs))
	copy(out, s.subs)
	return out
}
