package query

import (
	"context"
	"strconv"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// loader reads descriptors through the store, sharing one in-flight fetch per
// descriptor and invalidation epoch.
type loader struct {
	store ports.CacheStore
	opts  options
	group singleflight.Group
	// base is canceled on Close and stops every flight.
	base context.Context
}

// fetchFunc performs the gateway call for one descriptor.
type fetchFunc func(ctx context.Context) (any, error)

// flightKey folds the invalidation epoch into the descriptor key, so a read
// issued after an invalidation never joins a flight started before it.
func (l *loader) flightKey(d domain.Descriptor) string {
	return d.Key() + "#" + strconv.FormatUint(l.store.Epoch(d), 10)
}

// read returns fresh cached data, or joins or starts the flight for d.
// force skips the cache and starts a new flight, superseding any running one.
func (l *loader) read(ctx context.Context, d domain.Descriptor, force bool, fetch fetchFunc) (any, error) {
	if !force {
		if entry, ok := l.store.Get(d); ok && entry.Fresh() {
			l.opts.metrics.CacheRead(d.Resource, ports.CacheHit)
			return entry.Data, nil
		}
	}

	key := l.flightKey(d)
	if force {
		l.group.Forget(key)
	}

	// The flight outlives the caller that started it; only Close stops it.
	flightCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan(key, func() (any, error) {
		// A flight that finished between the cache check and DoChan may already have filled the entry.
		if !force {
			if entry, ok := l.store.Get(d); ok && entry.Fresh() {
				return entry.Data, nil
			}
		}
		return l.fetch(flightCtx, d, fetch)
	})

	select {
	case res := <-ch:
		result := ports.CacheMiss
		if res.Shared {
			result = ports.CacheShared
		}
		l.opts.metrics.CacheRead(d.Resource, result)
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// fetch runs one generation-guarded request for d.
func (l *loader) fetch(ctx context.Context, d domain.Descriptor, fetch fetchFunc) (any, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(l.base, cancel)
	defer stop()

	gen := l.store.Begin(d)
	ctx, span := l.opts.tracer.Start(ctx, "query.fetch",
		ports.WithAttribute("descriptor", d.Key()),
		ports.WithAttribute("descriptor.id", d.ID()),
		ports.WithAttribute("generation", gen),
	)
	defer span.End()

	data, err := fetch(ctx)
	if err != nil {
		span.RecordError(err)
		if !l.store.Fail(d, gen, err) {
			l.discarded(d, gen)
		}
		return nil, err
	}

	if !l.store.Put(d, gen, data) {
		span.SetAttribute("discarded", true)
		l.discarded(d, gen)
	}
	return data, nil
}

func (l *loader) discarded(d domain.Descriptor, gen uint64) {
	l.opts.metrics.ResponseDiscarded(d.Resource)
	if l.opts.logger != nil {
		l.opts.logger.Debug("late response discarded", "descriptor", d.Key(), "generation", gen)
	}
}
