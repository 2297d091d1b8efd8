// Package session keeps the navigation state of every live client in
// process memory. Entries expire after an idle period.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"verifind.org/internal/ids"
	"verifind.org/internal/nav"
)

// ErrNotFound is returned for unknown or expired sessions.
var ErrNotFound = errors.New("session: not found")

// Snapshot is a point-in-time copy of one session.
type Snapshot struct {
	ID        string    `json:"id"`
	State     nav.State `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type entry struct {
	mu      sync.Mutex
	ctrl    *nav.Controller
	created time.Time
	updated time.Time
}

func (e *entry) snapshot(id string) Snapshot {
	return Snapshot{ID: id, State: e.ctrl.State(), CreatedAt: e.created, UpdatedAt: e.updated}
}

// Registry maps session ids to controllers. Mutations of one session are
// serialised by that session's lock; different sessions proceed in parallel.
type Registry struct {
	items *cache.Cache
	now   func() time.Time
}

// NewRegistry returns a registry whose sessions expire after idle without
// activity. Expired entries are swept every cleanup interval.
func NewRegistry(idle, cleanup time.Duration) *Registry {
	return &Registry{
		items: cache.New(idle, cleanup),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// OnEvicted registers fn to run whenever a session expires or is deleted.
func (r *Registry) OnEvicted(fn func(id string)) {
	r.items.OnEvicted(func(id string, _ interface{}) { fn(id) })
}

// Create registers a fresh session in the initial state.
func (r *Registry) Create() Snapshot {
	now := r.now()
	id := ids.NewAt(now)
	e := &entry{ctrl: nav.NewController(), created: now, updated: now}
	r.items.SetDefault(id, e)
	return e.snapshot(id)
}

// Get returns the current state of a session and extends its lifetime.
func (r *Registry) Get(id string) (Snapshot, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := r.touch(id, e); err != nil {
		return Snapshot{}, err
	}
	return e.snapshot(id), nil
}

// Update applies fn to the session's controller while holding its lock and
// returns the resulting state.
func (r *Registry) Update(id string, fn func(*nav.Controller)) (Snapshot, error) {
	e, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.ctrl)
	e.updated = r.now()
	if err := r.touch(id, e); err != nil {
		return Snapshot{}, err
	}
	return e.snapshot(id), nil
}

// Delete removes a session.
func (r *Registry) Delete(id string) error {
	if _, err := r.lookup(id); err != nil {
		return err
	}
	r.items.Delete(id)
	return nil
}

// Len reports the number of live sessions, including expired entries the
// janitor has not swept yet.
func (r *Registry) Len() int {
	return r.items.ItemCount()
}

// touch extends the lifetime of a session that is still registered. Replace
// fails for deleted or expired ids, so a session removed while it was
// being read or updated stays removed.
func (r *Registry) touch(id string, e *entry) error {
	if err := r.items.Replace(id, e, cache.DefaultExpiration); err != nil {
		return ErrNotFound
	}
	return nil
}

func (r *Registry) lookup(id string) (*entry, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	v, ok := r.items.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*entry), nil
}
