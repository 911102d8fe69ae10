package domain

import "maps"

// ListState is the user-adjustable filter and pagination state of a list view.
// Methods return modified copies; a ListState is never changed in place.
type ListState struct {
	Page     int
	PageSize int
	// Filters maps a filter name to its value. A nil value means the filter is unset.
	Filters map[string]*string
}

// NewListState returns the first page with no filters.
func NewListState(pageSize int) ListState {
	return ListState{Page: 1, PageSize: pageSize}
}

// FilterValue returns a pointer to v, for use with WithFilter.
func FilterValue(v string) *string {
	return &v
}

// WithPage moves to page.
func (s ListState) WithPage(page int) ListState {
	out := s.clone()
	out.Page = page
	return out
}

// WithPageSize changes the page size and returns to the first page.
func (s ListState) WithPageSize(size int) ListState {
	out := s.clone()
	out.PageSize = size
	out.Page = 1
	return out
}

// WithFilter sets or clears (value == nil) one filter and returns to the first page.
func (s ListState) WithFilter(name string, value *string) ListState {
	out := s.clone()
	out.Filters = setFilter(out.Filters, name, value)
	out.Page = 1
	return out
}

// NextPage moves one page forward.
func (s ListState) NextPage() ListState {
	return s.WithPage(s.Page + 1)
}

// PrevPage moves one page back, stopping at the first page.
func (s ListState) PrevPage() ListState {
	if s.Page <= 1 {
		return s.WithPage(1)
	}
	return s.WithPage(s.Page - 1)
}

func (s ListState) clone() ListState {
	out := s
	if s.Filters != nil {
		out.Filters = make(map[string]*string, len(s.Filters))
		for name, value := range s.Filters {
			if value != nil {
				v := *value
				value = &v
			}
			out.Filters[name] = value
		}
	}
	return out
}

func setFilter(filters map[string]*string, name string, value *string) map[string]*string {
	out := maps.Clone(filters)
	if out == nil {
		out = make(map[string]*string)
	}
	if value == nil {
		delete(out, name)
		return out
	}
	v := *value
	out[name] = &v
	return out
}
