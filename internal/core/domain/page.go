package domain

import "go.trai.ch/zerr"

// Page is one server-paginated slice of a collection.
type Page[T any] struct {
	Items        []T `json:"items"`
	PageNumber   int `json:"pageNumber"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// NewPage builds a page and enforces its invariants. When pageSize is set,
// totalPages is always derived from totalRecords, so a missing or inconsistent
// server value never leaks through.
func NewPage[T any](items []T, pageNumber, pageSize, totalRecords, totalPages int) (*Page[T], error) {
	if pageSize > 0 && len(items) > pageSize {
		err := zerr.With(zerr.Wrap(ErrInvalidPage, "page holds more items than its size"), "items", len(items))
		return nil, zerr.With(err, "page_size", pageSize)
	}
	if pageSize > 0 {
		totalPages = TotalPagesFor(totalRecords, pageSize)
	}
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:        items,
		PageNumber:   pageNumber,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
	}, nil
}

// TotalPagesFor returns ceil(totalRecords / pageSize).
func TotalPagesFor(totalRecords, pageSize int) int {
	if pageSize <= 0 || totalRecords <= 0 {
		return 0
	}
	return (totalRecords + pageSize - 1) / pageSize
}

// HasNext reports whether a later page exists.
func (p *Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages
}

// HasPrev reports whether an earlier page exists.
func (p *Page[T]) HasPrev() bool {
	return p.PageNumber > 1
}
