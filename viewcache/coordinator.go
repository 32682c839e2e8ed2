// Package viewcache makes read-view staleness an explicit, testable state.
// Every read path in this backend is a cached subscription over one or more
// entity kinds; mutations invalidate, subscribers pull fresh data with
// Refresh. The coordinator never pushes data: an unrefreshed subscription
// keeps serving its old snapshot.
package viewcache

import (
	"sync"

	"hotel-ops-backend/apperrors"
)

type EntityKind string

const (
	KindRoom      EntityKind = "room"
	KindBooking   EntityKind = "booking"
	KindFoodOrder EntityKind = "foodOrder"
	KindCase      EntityKind = "case"
)

// Dep names one entity dependency of a subscription. ID 0 means "every
// entity of this kind".
type Dep struct {
	Kind EntityKind
	ID   uint
}

// FetchFunc re-reads the view's backing query.
type FetchFunc func() (interface{}, error)

type Subscription struct {
	deps  []Dep
	fetch FetchFunc

	mu       sync.Mutex
	snapshot interface{}
	stale    bool
	gen      uint64
}

type Coordinator struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

func NewCoordinator() *Coordinator {
	return &Coordinator{subs: make(map[*Subscription]struct{})}
}

// Register creates a subscription over the given dependencies. It starts
// stale: the first Refresh populates the snapshot.
func (c *Coordinator) Register(fetch FetchFunc, deps ...Dep) *Subscription {
	sub := &Subscription{deps: deps, fetch: fetch, stale: true}
	c.mu.Lock()
	c.subs[sub] = struct{}{}
	c.mu.Unlock()
	return sub
}

// Unregister removes the subscription from invalidation fan-out.
func (c *Coordinator) Unregister(sub *Subscription) {
	c.mu.Lock()
	delete(c.subs, sub)
	c.mu.Unlock()
}

// Invalidate marks every subscription depending on (kind, id) stale. ID 0
// fans out to all subscriptions over the kind. Pull-based: no data moves
// until a subscriber refreshes.
func (c *Coordinator) Invalidate(kind EntityKind, id uint) {
	c.mu.Lock()
	subs := make([]*Subscription, 0, len(c.subs))
	for sub := range c.subs {
		subs = append(subs, sub)
	}
	c.mu.Unlock()

	for _, sub := range subs {
		if sub.dependsOn(kind, id) {
			sub.markStale()
		}
	}
}

func (s *Subscription) dependsOn(kind EntityKind, id uint) bool {
	for _, d := range s.deps {
		if d.Kind != kind {
			continue
		}
		if d.ID == 0 || id == 0 || d.ID == id {
			return true
		}
	}
	return false
}

func (s *Subscription) markStale() {
	s.mu.Lock()
	s.stale = true
	s.gen++
	s.mu.Unlock()
}

// Refresh re-runs the fetcher and replaces the cached snapshot. On failure
// the previous snapshot and the stale flag are kept, so callers can degrade
// to last-known data. The fetch runs unlocked; the generation counter keeps
// an invalidation that lands mid-fetch from being erased: the snapshot is
// replaced either way, but it stays stale and the next Serve refetches.
func (s *Subscription) Refresh() error {
	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	data, err := s.fetch()
	if err != nil {
		return apperrors.NewBackend("refresh subscription", err)
	}
	s.mu.Lock()
	s.snapshot = data
	if s.gen == gen {
		s.stale = false
	}
	s.mu.Unlock()
	return nil
}

// Snapshot returns the cached value and whether it is stale. A stale snapshot
// is still served; staleness is allowed until refresh, not after.
func (s *Subscription) Snapshot() (interface{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, s.stale
}

// Serve is the view re-entry path: refresh if stale, then return the current
// snapshot. When the refresh fails the last-known snapshot is returned along
// with the error so secondary views can degrade instead of blanking out.
func (s *Subscription) Serve() (interface{}, error) {
	_, stale := s.Snapshot()
	var err error
	if stale {
		err = s.Refresh()
	}
	snap, _ := s.Snapshot()
	return snap, err
}
