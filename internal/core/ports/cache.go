package ports

import "github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"

// Listener receives store events. It runs after the store lock is released
// and may call back into the store.
type Listener func(domain.Event)

// CacheStore maps query descriptors to cached result entries.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CacheStore interface {
	// Get returns a copy of the entry for d.
	Get(d domain.Descriptor) (domain.Entry, bool)
	// Begin marks d as fetching, keeping its data, and returns the generation of the new request.
	Begin(d domain.Descriptor) uint64
	// Put applies a successful response if gen is still the latest request for d.
	Put(d domain.Descriptor, gen uint64, data any) bool
	// Fail applies a failed response if gen is still the latest request for d. Data is kept.
	Fail(d domain.Descriptor, gen uint64, err error) bool
	// Invalidate marks every entry matching match as stale and returns how many matched.
	Invalidate(match func(domain.Descriptor) bool) int
	// InvalidateResource marks every entry of the resource family as stale.
	InvalidateResource(r domain.Resource) int
	// Epoch returns how many times d has been invalidated.
	Epoch(d domain.Descriptor) uint64
	// Subscribe registers fn for events on d and returns its unsubscribe func.
	Subscribe(d domain.Descriptor, fn Listener) func()
	// SubscribeResource registers fn for events on every descriptor of r.
	SubscribeResource(r domain.Resource, fn Listener) func()
}
