package domain

// Origin names the operation a mutation request performs.
type Origin string

const (
	OriginCreate Origin = "create"
	OriginUpdate Origin = "update"
	OriginDelete Origin = "delete"
	OriginStatus Origin = "status"
)

// MutationRequest describes one write against a resource. An empty ID means create.
type MutationRequest[F any] struct {
	ID     string
	Fields F
	// Active is the target state of a status toggle.
	Active bool
	Origin Origin
}

// NeedsID reports whether the origin targets an existing record.
func (o Origin) NeedsID() bool {
	return o == OriginUpdate || o == OriginDelete || o == OriginStatus
}

// NeedsFields reports whether the origin sends a field set.
func (o Origin) NeedsFields() bool {
	return o == OriginCreate || o == OriginUpdate
}
