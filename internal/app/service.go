package app

import (
	"context"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/engine/mutation"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/engine/query"
)

// Records is the one-shot surface of a resource used by the CLI.
type Records[T, F any] interface {
	List(ctx context.Context, state domain.ListState) (*domain.Page[T], error)
	Lookup(ctx context.Context, name string) ([]domain.LookupItem, error)
	Create(ctx context.Context, fields F) (*T, error)
	Update(ctx context.Context, id string, fields F) (*T, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, active bool) error
}

// Service pairs the query and mutation controllers of one resource.
type Service[T, F any] struct {
	query    *query.Controller[T]
	mutation *mutation.Controller[T, F]
}

// NewService creates a service over q and m, which must serve the same resource.
func NewService[T, F any](q *query.Controller[T], m *mutation.Controller[T, F]) *Service[T, F] {
	return &Service[T, F]{query: q, mutation: m}
}

// List reads one page through the cache.
func (s *Service[T, F]) List(ctx context.Context, state domain.ListState) (*domain.Page[T], error) {
	d, err := domain.Derive(s.query.Resource(), state)
	if err != nil {
		return nil, err
	}
	return s.query.Query(ctx, d)
}

// Lookup reads one dropdown through the cache.
func (s *Service[T, F]) Lookup(ctx context.Context, name string) ([]domain.LookupItem, error) {
	return s.query.Lookups().Get(ctx, name)
}

// Create stores a new record.
func (s *Service[T, F]) Create(ctx context.Context, fields F) (*T, error) {
	return s.mutation.Create(ctx, fields)
}

// Update replaces the editable fields of record id.
func (s *Service[T, F]) Update(ctx context.Context, id string, fields F) (*T, error) {
	return s.mutation.Update(ctx, id, fields)
}

// Delete removes record id.
func (s *Service[T, F]) Delete(ctx context.Context, id string) error {
	return s.mutation.Delete(ctx, id)
}

// SetStatus activates or deactivates record id.
func (s *Service[T, F]) SetStatus(ctx context.Context, id string, active bool) error {
	return s.mutation.SetStatus(ctx, id, active)
}

// Close stops the query controller.
func (s *Service[T, F]) Close() {
	s.query.Close()
}
