package query

import (
	"time"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
)

// Snapshot is what the presentation layer renders for the current descriptor.
type Snapshot[T any] struct {
	// Descriptor is the current descriptor, even when Data belongs to a previous one.
	Descriptor domain.Descriptor
	// Data is the page to show. It is nil only while IsLoading or after a failure with nothing cached.
	Data *domain.Page[T]
	// Status is the fetch status of the current descriptor.
	Status domain.FetchStatus
	// IsLoading is true when a fetch is pending and nothing at all can be shown.
	IsLoading bool
	// IsFetching is true while a fetch for the current descriptor is pending.
	IsFetching bool
	// IsPlaceholder is true when Data is the last good page of a previous descriptor.
	IsPlaceholder bool
	// Stale is true when the current entry was invalidated and not yet reloaded.
	Stale bool
	// UpdatedAt is when Data was fetched.
	UpdatedAt time.Time
	// Err is the last failure of the current descriptor.
	Err error
}

// HasData reports whether there is a page to show.
func (s Snapshot[T]) HasData() bool {
	return s.Data != nil
}
