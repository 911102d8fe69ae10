package domain

import "time"

// FetchStatus is the fetch state of a cache entry.
type FetchStatus int

const (
	// StatusIdle means the entry exists but was never fetched.
	StatusIdle FetchStatus = iota
	// StatusFetching means a request for the entry is in flight.
	StatusFetching
	// StatusSuccess means the last applied response succeeded.
	StatusSuccess
	// StatusError means the last applied response failed. Data still holds the last good payload.
	StatusError
)

func (s FetchStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusFetching:
		return "fetching"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is the cached result of one descriptor.
type Entry struct {
	// Data is the last successfully fetched payload, nil before the first success.
	Data any
	// Status is the fetch state.
	Status FetchStatus
	// UpdatedAt is when Data was last replaced.
	UpdatedAt time.Time
	// Err is the error of the last failed fetch. It is cleared on success.
	Err error
	// Generation identifies the most recently issued request for the entry.
	Generation uint64
	// Epoch counts how many times the entry was invalidated.
	Epoch uint64
	// Stale marks the entry as no longer trustworthy; the next read refetches.
	Stale bool
}

// HasData reports whether the entry holds a payload.
func (e Entry) HasData() bool {
	return e.Data != nil
}

// Fresh reports whether the entry can be served without a gateway call.
func (e Entry) Fresh() bool {
	return e.Status == StatusSuccess && !e.Stale
}

// EventKind names the store operation that produced an Event.
type EventKind int

const (
	// EventFetching is emitted when a request for the entry starts.
	EventFetching EventKind = iota
	// EventPut is emitted when a successful response is applied.
	EventPut
	// EventFail is emitted when a failed response is applied.
	EventFail
	// EventInvalidate is emitted when the entry is marked stale.
	EventInvalidate
)

func (k EventKind) String() string {
	switch k {
	case EventFetching:
		return "fetching"
	case EventPut:
		return "put"
	case EventFail:
		return "fail"
	case EventInvalidate:
		return "invalidate"
	default:
		return "unknown"
	}
}

// Event notifies store subscribers of an entry change.
type Event struct {
	Descriptor Descriptor
	Kind       EventKind
	// Entry is a copy of the entry after the change.
	Entry Entry
}
