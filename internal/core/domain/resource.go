package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Resource names a family of server-side records. Invalidation works per family.
type Resource string

const (
	// ResourceProducts is the product catalogue.
	ResourceProducts Resource = "products"
	// ResourceUsers is the user directory.
	ResourceUsers Resource = "users"
)

var resourceFilters = map[Resource][]string{
	ResourceProducts: {"search", "status"},
	ResourceUsers:    {"companyID", "roleID", "search", "status", "tenantID"},
}

var resourceLookups = map[Resource][]string{
	ResourceProducts: {"categories", "products", "unit-types"},
	ResourceUsers:    {"companies", "permissions", "roles", "tenants"},
}

// Resources returns every known resource in a stable order.
func Resources() []Resource {
	return []Resource{ResourceProducts, ResourceUsers}
}

// ParseResource resolves a user-supplied resource name.
func ParseResource(name string) (Resource, error) {
	r := Resource(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := resourceFilters[r]; !ok {
		return "", zerr.With(zerr.Wrap(ErrUnknownResource, "parse resource"), "resource", name)
	}
	return r, nil
}

func (r Resource) String() string {
	return string(r)
}

// Filters lists the filter names the resource's list endpoint understands.
func (r Resource) Filters() []string {
	return slices.Clone(resourceFilters[r])
}

// Lookups lists the dropdown names the resource offers.
func (r Resource) Lookups() []string {
	return slices.Clone(resourceLookups[r])
}

// SupportsFilter reports whether name is a list filter of r.
func (r Resource) SupportsFilter(name string) bool {
	return slices.Contains(resourceFilters[r], name)
}

// SupportsLookup reports whether name is a dropdown of r.
func (r Resource) SupportsLookup(name string) bool {
	return slices.Contains(resourceLookups[r], name)
}
