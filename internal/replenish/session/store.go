package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"replenish-service/internal/replenish/model"
	"replenish-service/internal/replenish/service"
)

var ErrNotFound = errors.New("session not found")

// Session holds everything one user assembles for one petition: the
// shipment config, the catalog index (read-only once built) and the two
// carts kept apart so the review step can show imported and manual lines
// separately. The final cart is always Merge(ImportCart, ManualCart).
//
// A session has a single writer: the one user driving it issues requests
// sequentially, so the store's lock covers only the registry itself and
// session fields are mutated without further locking.
type Session struct {
	ID         string            `json:"id"`
	Shipment   model.Shipment    `json:"shipment"`
	ImportCart service.Cart      `json:"importCart"`
	ManualCart service.Cart      `json:"manualCart"`
	Incidences []model.Incidence `json:"incidences"`

	Index    *service.Index `json:"-"`
	LastSeen time.Time      `json:"-"`
}

// Snapshot is the JSON-serializable slice of session state a client may
// save and restore across reloads. The index is not part of it: it is
// derived from the catalog and rebuilt on upload.
type Snapshot struct {
	Shipment   model.Shipment    `json:"shipment"`
	ImportCart service.Cart      `json:"importCart"`
	ManualCart service.Cart      `json:"manualCart"`
	Incidences []model.Incidence `json:"incidences"`
}

// Store is an in-memory session registry. Sessions are isolated per user;
// only the read-only catalog index may be shared, which the optional
// preloaded default index covers.
type Store struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	ttl        time.Duration
	defaultIdx *service.Index
}

func NewStore(ttl time.Duration) *Store {
	return &Store{sessions: make(map[string]*Session), ttl: ttl}
}

// SetDefaultIndex installs a catalog index shared by sessions that never
// upload their own catalog (CATALOG_PATH preload).
func (s *Store) SetDefaultIndex(idx *service.Index) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.defaultIdx = idx
}

func (s *Store) Create(sh model.Shipment) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()

	sess := &Session{
		ID:         uuid.NewString(),
		Shipment:   sh,
		ImportCart: service.NewCart(),
		ManualCart: service.NewCart(),
		Incidences: []model.Incidence{},
		Index:      s.defaultIdx,
		LastSeen:   time.Now(),
	}
	s.sessions[sess.ID] = sess
	return sess
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.ttl > 0 && time.Since(sess.LastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	sess.LastSeen = time.Now()
	return sess, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// sweepLocked drops expired sessions. Called on create so the map does
// not grow unbounded without a background goroutine.
func (s *Store) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
		}
	}
}
