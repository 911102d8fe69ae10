// Package mutation implements confirmed writes: validate, call the gateway
// once, then invalidate the affected resource families.
package mutation

import (
	"context"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/metrics"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/telemetry"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"go.trai.ch/zerr"
)

// Controller performs writes against one resource. The cache is only touched
// after the server confirmed the write, and then only by invalidation.
type Controller[T, F any] struct {
	gateway ports.ResourceGateway[T, F]
	store   ports.CacheStore
	opts    options
}

// New creates a controller writing through gateway and invalidating store.
func New[T, F any](store ports.CacheStore, gateway ports.ResourceGateway[T, F], opts ...Option) *Controller[T, F] {
	o := options{
		metrics: metrics.Noop{},
		tracer:  telemetry.NewNoOpTracer(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[T, F]{gateway: gateway, store: store, opts: o}
}

// Resource returns the resource the controller writes.
func (c *Controller[T, F]) Resource() domain.Resource {
	return c.gateway.Resource()
}

// Create stores a new record.
func (c *Controller[T, F]) Create(ctx context.Context, fields F) (*T, error) {
	return c.Execute(ctx, domain.MutationRequest[F]{Fields: fields, Origin: domain.OriginCreate})
}

// Update replaces the editable fields of record id.
func (c *Controller[T, F]) Update(ctx context.Context, id string, fields F) (*T, error) {
	return c.Execute(ctx, domain.MutationRequest[F]{ID: id, Fields: fields, Origin: domain.OriginUpdate})
}

// Delete removes record id.
func (c *Controller[T, F]) Delete(ctx context.Context, id string) error {
	_, err := c.Execute(ctx, domain.MutationRequest[F]{ID: id, Origin: domain.OriginDelete})
	return err
}

// SetStatus activates or deactivates record id.
func (c *Controller[T, F]) SetStatus(ctx context.Context, id string, active bool) error {
	_, err := c.Execute(ctx, domain.MutationRequest[F]{ID: id, Active: active, Origin: domain.OriginStatus})
	return err
}

// Execute runs one mutation request. An empty origin means create when ID is
// empty and update otherwise. Delete and status changes return a nil record.
func (c *Controller[T, F]) Execute(ctx context.Context, req domain.MutationRequest[F]) (*T, error) {
	if req.Origin == "" {
		req.Origin = domain.OriginUpdate
		if req.ID == "" {
			req.Origin = domain.OriginCreate
		}
	}

	switch req.Origin {
	case domain.OriginCreate, domain.OriginUpdate, domain.OriginDelete, domain.OriginStatus:
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownOrigin, "execute mutation"), "origin", string(req.Origin))
	}

	if err := check(req); err != nil {
		return nil, err
	}

	resource := c.gateway.Resource()
	ctx, span := c.opts.tracer.Start(ctx, "mutation."+string(req.Origin),
		ports.WithAttribute("resource", resource.String()),
		ports.WithAttribute("record.id", req.ID),
	)
	defer span.End()

	record, err := c.write(ctx, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("invalidated", c.invalidate(resource))
	return record, nil
}

// write performs the single gateway call of req.
func (c *Controller[T, F]) write(ctx context.Context, req domain.MutationRequest[F]) (*T, error) {
	switch req.Origin {
	case domain.OriginCreate:
		return c.gateway.Create(ctx, req.Fields)
	case domain.OriginUpdate:
		return c.gateway.Update(ctx, req.ID, req.Fields)
	case domain.OriginDelete:
		return nil, c.gateway.Delete(ctx, req.ID)
	default:
		return nil, c.gateway.SetStatus(ctx, req.ID, req.Active)
	}
}

// invalidate marks the written family and any extra families stale and
// returns the number of entries marked.
func (c *Controller[T, F]) invalidate(resource domain.Resource) int {
	total := 0
	seen := make(map[domain.Resource]bool, 1+len(c.opts.invalidates))
	for _, r := range append([]domain.Resource{resource}, c.opts.invalidates...) {
		if seen[r] {
			continue
		}
		seen[r] = true

		n := c.store.InvalidateResource(r)
		c.opts.metrics.Invalidated(r, n)
		if c.opts.logger != nil {
			c.opts.logger.Debug("invalidated", "resource", r.String(), "entries", n)
		}
		total += n
	}
	return total
}
