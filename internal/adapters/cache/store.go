// Package cache implements the process-wide query result store.
package cache

import (
	"sync"
	"time"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
)

var _ ports.CacheStore = (*Store)(nil)

// record is the mutable form of a domain.Entry.
type record struct {
	entry domain.Entry
	// staleGen is the generation current at the last invalidation. Responses to
	// requests up to and including it are applied but leave the entry stale.
	staleGen uint64
}

// Store implements ports.CacheStore. Entries are never evicted.
type Store struct {
	mu         sync.RWMutex
	records    map[domain.Descriptor]*record
	byKey      map[domain.Descriptor]map[uint64]ports.Listener
	byResource map[domain.Resource]map[uint64]ports.Listener
	nextID     uint64
	staleAfter time.Duration
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithStaleAfter treats success entries older than d as stale on read. Zero disables expiry.
func WithStaleAfter(d time.Duration) Option {
	return func(s *Store) {
		s.staleAfter = d
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		records:    make(map[domain.Descriptor]*record),
		byKey:      make(map[domain.Descriptor]map[uint64]ports.Listener),
		byResource: make(map[domain.Resource]map[uint64]ports.Listener),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a copy of the entry for d.
func (s *Store) Get(d domain.Descriptor) (domain.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[d]
	if !ok {
		return domain.Entry{}, false
	}

	entry := rec.entry
	if s.expired(entry) {
		entry.Stale = true
	}
	return entry, true
}

// Begin creates the entry if needed, marks it fetching and returns the new generation.
func (s *Store) Begin(d domain.Descriptor) uint64 {
	s.mu.Lock()
	rec := s.recordFor(d)
	rec.entry.Generation++
	rec.entry.Status = domain.StatusFetching
	ev, fns := s.event(d, domain.EventFetching, rec)
	gen := rec.entry.Generation
	s.mu.Unlock()

	notify(ev, fns)
	return gen
}

// Put applies a successful response for generation gen.
func (s *Store) Put(d domain.Descriptor, gen uint64, data any) bool {
	s.mu.Lock()
	rec, ok := s.records[d]
	if !ok || rec.entry.Generation != gen {
		s.mu.Unlock()
		return false
	}
	rec.entry.Data = data
	rec.entry.Status = domain.StatusSuccess
	rec.entry.UpdatedAt = s.now()
	rec.entry.Err = nil
	rec.entry.Stale = gen <= rec.staleGen
	ev, fns := s.event(d, domain.EventPut, rec)
	s.mu.Unlock()

	notify(ev, fns)
	return true
}

// Fail applies a failed response for generation gen. Previous data is kept.
func (s *Store) Fail(d domain.Descriptor, gen uint64, err error) bool {
	s.mu.Lock()
	rec, ok := s.records[d]
	if !ok || rec.entry.Generation != gen {
		s.mu.Unlock()
		return false
	}
	rec.entry.Status = domain.StatusError
	rec.entry.Err = err
	ev, fns := s.event(d, domain.EventFail, rec)
	s.mu.Unlock()

	notify(ev, fns)
	return true
}

// Invalidate marks every entry matching match as stale.
func (s *Store) Invalidate(match func(domain.Descriptor) bool) int {
	type pending struct {
		ev  domain.Event
		fns []ports.Listener
	}

	s.mu.Lock()
	var batch []pending
	for d, rec := range s.records {
		if !match(d) {
			continue
		}
		rec.entry.Stale = true
		rec.entry.Epoch++
		rec.staleGen = rec.entry.Generation
		ev, fns := s.event(d, domain.EventInvalidate, rec)
		batch = append(batch, pending{ev: ev, fns: fns})
	}
	s.mu.Unlock()

	for _, p := range batch {
		notify(p.ev, p.fns)
	}
	return len(batch)
}

// InvalidateResource marks every entry of resource r as stale.
func (s *Store) InvalidateResource(r domain.Resource) int {
	return s.Invalidate(func(d domain.Descriptor) bool {
		return d.Resource == r
	})
}

// Epoch returns how many times d has been invalidated.
func (s *Store) Epoch(d domain.Descriptor) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if rec, ok := s.records[d]; ok {
		return rec.entry.Epoch
	}
	return 0
}

// Len returns the number of entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Subscribe registers fn for events on d.
func (s *Store) Subscribe(d domain.Descriptor, fn ports.Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.register()
	if s.byKey[d] == nil {
		s.byKey[d] = make(map[uint64]ports.Listener)
	}
	s.byKey[d][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.byKey[d], id)
			if len(s.byKey[d]) == 0 {
				delete(s.byKey, d)
			}
		})
	}
}

// SubscribeResource registers fn for events on every descriptor of r.
func (s *Store) SubscribeResource(r domain.Resource, fn ports.Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.register()
	if s.byResource[r] == nil {
		s.byResource[r] = make(map[uint64]ports.Listener)
	}
	s.byResource[r][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.byResource[r], id)
			if len(s.byResource[r]) == 0 {
				delete(s.byResource, r)
			}
		})
	}
}

// register must be called with s.mu held.
func (s *Store) register() uint64 {
	s.nextID++
	return s.nextID
}

// recordFor must be called with s.mu held.
func (s *Store) recordFor(d domain.Descriptor) *record {
	rec, ok := s.records[d]
	if !ok {
		rec = &record{entry: domain.Entry{Status: domain.StatusIdle}}
		s.records[d] = rec
	}
	return rec
}

// event snapshots the entry and its listeners. It must be called with s.mu held.
func (s *Store) event(d domain.Descriptor, kind domain.EventKind, rec *record) (domain.Event, []ports.Listener) {
	ev := domain.Event{Descriptor: d, Kind: kind, Entry: rec.entry}

	fns := make([]ports.Listener, 0, len(s.byKey[d])+len(s.byResource[d.Resource]))
	for _, fn := range s.byKey[d] {
		fns = append(fns, fn)
	}
	for _, fn := range s.byResource[d.Resource] {
		fns = append(fns, fn)
	}
	return ev, fns
}

func (s *Store) expired(e domain.Entry) bool {
	if s.staleAfter <= 0 || e.Status != domain.StatusSuccess {
		return false
	}
	return s.now().Sub(e.UpdatedAt) > s.staleAfter
}

func notify(ev domain.Event, fns []ports.Listener) {
	for _, fn := range fns {
		fn(ev)
	}
}
