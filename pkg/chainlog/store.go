package chainlog

import "sync"

// Store tracks the last written chain token per log path, and serializes
// in-process writers to the same path. It is deliberately in-process only:
// nothing coordinates concurrent processes appending to the same file, so a
// deployment that needs that must serialize writers externally.
type Store struct {
	mu    sync.Mutex
	last  map[string]string
	locks map[string]*sync.Mutex
}

// NewStore builds an empty chain-state store.
func NewStore() *Store {
	return &Store{
		last:  make(map[string]string),
		locks: make(map[string]*sync.Mutex),
	}
}

// Last returns the most recently written token for path, or "" when this
// store has not seen a write to it.
func (s *Store) Last(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last[path]
}

func (s *Store) set(path, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[path] = token
}

// pathLock returns the mutex guarding writes to path.
func (s *Store) pathLock(path string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[path] = lock
	}
	return lock
}
