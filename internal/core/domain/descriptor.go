package domain

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Kind distinguishes paginated lists from dropdown lookups.
type Kind string

const (
	// KindList identifies a filtered, paginated collection query.
	KindList Kind = "list"
	// KindLookup identifies a dropdown (id, label) query.
	KindLookup Kind = "lookup"
)

// Descriptor identifies one cacheable query. It is immutable and comparable
// with ==, so it can be used directly as a map key.
type Descriptor struct {
	Resource Resource
	Kind     Kind
	Lookup   string
	Page     int
	PageSize int

	// filters holds the url-encoded, key-sorted filter set.
	filters string
}

// Derive maps list state to its descriptor. Equal states always yield equal
// descriptors. A nil filter value is treated as absent; an empty string is a
// value and is kept.
func Derive(resource Resource, state ListState) (Descriptor, error) {
	if state.Page < 1 {
		return Descriptor{}, zerr.With(zerr.Wrap(ErrInvalidPage, "derive descriptor"), "page", state.Page)
	}
	if state.PageSize <= 0 {
		return Descriptor{}, zerr.With(zerr.Wrap(ErrInvalidPageSize, "derive descriptor"), "page_size", state.PageSize)
	}

	values := url.Values{}
	for name, value := range state.Filters {
		if value == nil {
			continue
		}
		if !resource.SupportsFilter(name) {
			err := zerr.With(zerr.Wrap(ErrUnknownFilter, "derive descriptor"), "filter", name)
			return Descriptor{}, zerr.With(err, "resource", resource.String())
		}
		values.Set(name, *value)
	}

	return Descriptor{
		Resource: resource,
		Kind:     KindList,
		Page:     state.Page,
		PageSize: state.PageSize,
		filters:  values.Encode(),
	}, nil
}

// LookupDescriptor identifies the dropdown list name of resource.
func LookupDescriptor(resource Resource, name string) (Descriptor, error) {
	if !resource.SupportsLookup(name) {
		err := zerr.With(zerr.Wrap(ErrUnknownLookup, "lookup descriptor"), "lookup", name)
		return Descriptor{}, zerr.With(err, "resource", resource.String())
	}
	return Descriptor{Resource: resource, Kind: KindLookup, Lookup: name}, nil
}

// Key returns the canonical serialization, e.g.
// "products/list?page=2&pageSize=10&search=abc&status=active".
func (d Descriptor) Key() string {
	if d.Kind == KindLookup {
		return fmt.Sprintf("%s/%s/%s", d.Resource, d.Kind, d.Lookup)
	}
	key := fmt.Sprintf("%s/%s?page=%d&pageSize=%d", d.Resource, d.Kind, d.Page, d.PageSize)
	if d.filters != "" {
		key += "&" + d.filters
	}
	return key
}

// ID returns a short fingerprint of Key for logs and status lines.
func (d Descriptor) ID() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(d.Key()))
}

func (d Descriptor) String() string {
	return d.Key()
}

// IsZero reports whether d is the zero descriptor.
func (d Descriptor) IsZero() bool {
	return d == Descriptor{}
}

// Filters returns the decoded filter set. The map is a fresh copy.
func (d Descriptor) Filters() map[string]string {
	out := make(map[string]string)
	values, err := url.ParseQuery(d.filters)
	if err != nil {
		return out
	}
	for name := range values {
		out[name] = values.Get(name)
	}
	return out
}

// Filter returns the value of one filter and whether it is present.
func (d Descriptor) Filter(name string) (string, bool) {
	values, err := url.ParseQuery(d.filters)
	if err != nil {
		return "", false
	}
	if _, ok := values[name]; !ok {
		return "", false
	}
	return values.Get(name), true
}

// State rebuilds the list state a list descriptor was derived from.
func (d Descriptor) State() ListState {
	state := ListState{Page: d.Page, PageSize: d.PageSize}
	for name, value := range d.Filters() {
		state.Filters = setFilter(state.Filters, name, &value)
	}
	return state
}

// QueryValues renders the descriptor as API query parameters.
func (d Descriptor) QueryValues() url.Values {
	values, err := url.ParseQuery(d.filters)
	if err != nil {
		values = url.Values{}
	}
	values.Set("pageNumber", strconv.Itoa(d.Page))
	values.Set("pageSize", strconv.Itoa(d.PageSize))
	return values
}
