package selection

import (
	"sync"

	"github.com/google/uuid"
)

// DefaultMaxSessions bounds how many sessions a server keeps.
const DefaultMaxSessions = 1000

type session struct {
	store *Store
	used  uint64
}

// Sessions maps session ids to their stores for the HTTP server. When full,
// Create evicts the least recently used session.
type Sessions struct {
	mu     sync.Mutex
	max    int
	clock  uint64
	stores map[uuid.UUID]*session
}

// NewSessions keeps at most max sessions; max <= 0 uses DefaultMaxSessions.
func NewSessions(max int) *Sessions {
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &Sessions{max: max, stores: make(map[uuid.UUID]*session)}
}

// Create adds a session. evicted is uuid.Nil unless an old session had to go.
func (s *Sessions) Create() (id uuid.UUID, store *Store, evicted uuid.UUID) {
	id = uuid.New()
	store = NewStore()
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.stores) >= s.max {
		evicted = s.oldest()
		delete(s.stores, evicted)
	}
	s.clock++
	s.stores[id] = &session{store: store, used: s.clock}
	return id, store, evicted
}

func (s *Sessions) oldest() uuid.UUID {
	var (
		res  uuid.UUID
		used uint64
	)
	for id, sess := range s.stores {
		if res == uuid.Nil || sess.used < used {
			res, used = id, sess.used
		}
	}
	return res
}

// Get also marks the session as used.
func (s *Sessions) Get(id uuid.UUID) (*Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.stores[id]
	if !ok {
		return nil, false
	}
	s.clock++
	sess.used = s.clock
	return sess.store, true
}

func (s *Sessions) Delete(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.stores[id]
	delete(s.stores, id)
	return ok
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stores)
}
