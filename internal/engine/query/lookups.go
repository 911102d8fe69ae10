package query

import (
	"context"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// lookupSource is the dropdown side of a resource gateway.
type lookupSource interface {
	Resource() domain.Resource
	Lookup(ctx context.Context, name string) ([]domain.LookupItem, error)
}

// Lookups reads the dropdown lists of one resource through the cache.
// Lookup entries belong to the resource family and are invalidated with it.
type Lookups struct {
	loader *loader
	source lookupSource
}

// Get returns the named dropdown, from cache when fresh.
func (l *Lookups) Get(ctx context.Context, name string) ([]domain.LookupItem, error) {
	return l.get(ctx, name, false)
}

// Refetch reloads the named dropdown.
func (l *Lookups) Refetch(ctx context.Context, name string) ([]domain.LookupItem, error) {
	return l.get(ctx, name, true)
}

func (l *Lookups) get(ctx context.Context, name string, force bool) ([]domain.LookupItem, error) {
	d, err := domain.LookupDescriptor(l.source.Resource(), name)
	if err != nil {
		return nil, err
	}

	data, err := l.loader.read(ctx, d, force, func(ctx context.Context) (any, error) {
		return l.source.Lookup(ctx, name)
	})
	if err != nil {
		return nil, err
	}
	items, _ := data.([]domain.LookupItem)
	return items, nil
}

// Prefetch loads the named dropdowns concurrently, or all of the resource's when names is empty.
// It returns the first failure; the other loads still complete into the cache.
func (l *Lookups) Prefetch(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		names = l.source.Resource().Lookups()
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		g.Go(func() error {
			_, err := l.Get(ctx, name)
			return err
		})
	}
	return g.Wait()
}
