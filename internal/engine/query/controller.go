// Package query implements the query controller: descriptor-keyed reads with
// de-duplication, generation guards and stale-while-revalidate snapshots.
package query

import (
	"context"
	"sync"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"go.trai.ch/zerr"
)

// Source is the read side of a resource gateway.
type Source[T any] interface {
	Resource() domain.Resource
	List(ctx context.Context, d domain.Descriptor) (*domain.Page[T], error)
	Lookup(ctx context.Context, name string) ([]domain.LookupItem, error)
}

// Controller serves list queries of one resource.
type Controller[T any] struct {
	source Source[T]
	loader *loader
	opts   options

	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup

	mu        sync.Mutex
	closed    bool
	current   domain.Descriptor
	lastGood  domain.Descriptor
	pending   map[domain.Descriptor]int
	listeners map[uint64]func(Snapshot[T])
	nextID    uint64
}

// New creates a controller reading source through store. It subscribes to
// store events of the source's resource until Close.
func New[T any](store ports.CacheStore, source Source[T], opts ...Option) *Controller[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	base, cancel := context.WithCancel(context.Background())
	c := &Controller[T]{
		source:    source,
		loader:    &loader{store: store, opts: o, base: base},
		opts:      o,
		cancel:    cancel,
		pending:   make(map[domain.Descriptor]int),
		listeners: make(map[uint64]func(Snapshot[T])),
	}
	c.unsubscribe = store.SubscribeResource(source.Resource(), c.onEvent)
	return c
}

// Resource returns the resource the controller serves.
func (c *Controller[T]) Resource() domain.Resource {
	return c.source.Resource()
}

// SetState makes the descriptor derived from state current and loads it in the background.
func (c *Controller[T]) SetState(ctx context.Context, state domain.ListState) (domain.Descriptor, error) {
	d, err := domain.Derive(c.source.Resource(), state)
	if err != nil {
		return domain.Descriptor{}, err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return domain.Descriptor{}, domain.ErrControllerClosed
	}
	if d != c.current && c.hasData(c.current) {
		c.lastGood = c.current
	}
	c.current = d
	c.mu.Unlock()

	c.background(ctx, d, false)
	c.publish()
	return d, nil
}

// Current returns the current descriptor.
func (c *Controller[T]) Current() domain.Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// State returns the list state of the current descriptor.
func (c *Controller[T]) State() domain.ListState {
	return c.Current().State()
}

// Query returns the page for d. A fresh cached page costs no gateway call;
// otherwise the caller joins or starts the single flight for d. Canceling ctx
// abandons the wait but not the flight.
func (c *Controller[T]) Query(ctx context.Context, d domain.Descriptor) (*domain.Page[T], error) {
	if d.Kind != domain.KindList || d.Resource != c.source.Resource() {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownResource, "query"), "descriptor", d.Key())
	}
	if c.isClosed() {
		return nil, domain.ErrControllerClosed
	}
	return c.read(ctx, d, false)
}

// Refetch starts a new fetch of the current descriptor and waits for it.
// A fetch already running for it is superseded.
func (c *Controller[T]) Refetch(ctx context.Context) (*domain.Page[T], error) {
	d := c.Current()
	if d.IsZero() {
		return nil, zerr.Wrap(domain.ErrInvalidPage, "refetch before SetState")
	}
	if c.isClosed() {
		return nil, domain.ErrControllerClosed
	}

	c.track(d, 1)
	defer c.track(d, -1)
	return c.read(ctx, d, true)
}

func (c *Controller[T]) read(ctx context.Context, d domain.Descriptor, force bool) (*domain.Page[T], error) {
	data, err := c.loader.read(ctx, d, force, func(ctx context.Context) (any, error) {
		return c.source.List(ctx, d)
	})
	if err != nil {
		return nil, err
	}
	page, _ := data.(*domain.Page[T])
	return page, nil
}

// background loads d on a goroutine owned by the controller.
func (c *Controller[T]) background(ctx context.Context, d domain.Descriptor, force bool) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.pending[d]++
	c.wg.Add(1)
	c.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	go func() {
		defer c.wg.Done()
		defer c.track(d, -1)

		if _, err := c.read(ctx, d, force); err != nil && c.opts.logger != nil {
			c.opts.logger.Debug("background load failed", "descriptor", d.Key(), "error", err)
		}
	}()
}

// track adjusts the pending-load count of d and republishes when it changes the snapshot.
func (c *Controller[T]) track(d domain.Descriptor, delta int) {
	c.mu.Lock()
	c.pending[d] += delta
	if c.pending[d] <= 0 {
		delete(c.pending, d)
	}
	isCurrent := d == c.current
	c.mu.Unlock()

	if isCurrent {
		c.publish()
	}
}

// Snapshot returns the current rendered state.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	current, lastGood, pending := c.current, c.lastGood, c.pending[c.current] > 0
	c.mu.Unlock()

	return c.snapshot(current, lastGood, pending)
}

func (c *Controller[T]) snapshot(current, lastGood domain.Descriptor, pending bool) Snapshot[T] {
	snap := Snapshot[T]{Descriptor: current, Status: domain.StatusIdle}
	if current.IsZero() {
		return snap
	}

	entry, ok := c.loader.store.Get(current)
	if ok {
		snap.Status = entry.Status
		snap.Err = entry.Err
		snap.Stale = entry.Stale
		snap.UpdatedAt = entry.UpdatedAt
		snap.Data, _ = entry.Data.(*domain.Page[T])
	}
	snap.IsFetching = pending || snap.Status == domain.StatusFetching

	if snap.Data == nil && !lastGood.IsZero() {
		if prev, ok := c.loader.store.Get(lastGood); ok {
			if page, isPage := prev.Data.(*domain.Page[T]); isPage && page != nil {
				snap.Data = page
				snap.UpdatedAt = prev.UpdatedAt
				snap.IsPlaceholder = true
			}
		}
	}

	snap.IsLoading = snap.Data == nil && (snap.IsFetching || snap.Status == domain.StatusIdle)
	return snap
}

// Subscribe registers fn to receive every new snapshot. It returns the unsubscribe func.
func (c *Controller[T]) Subscribe(fn func(Snapshot[T])) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

func (c *Controller[T]) publish() {
	c.mu.Lock()
	if len(c.listeners) == 0 {
		c.mu.Unlock()
		return
	}
	fns := make([]func(Snapshot[T]), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	current, lastGood, pending := c.current, c.lastGood, c.pending[c.current] > 0
	c.mu.Unlock()

	snap := c.snapshot(current, lastGood, pending)
	for _, fn := range fns {
		fn(snap)
	}
}

// onEvent republishes on changes to the shown descriptors and reloads the
// current one when it is invalidated.
func (c *Controller[T]) onEvent(ev domain.Event) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	isCurrent := ev.Descriptor == c.current
	shown := isCurrent || ev.Descriptor == c.lastGood
	if isCurrent && ev.Kind == domain.EventPut && ev.Entry.HasData() {
		c.lastGood = domain.Descriptor{}
	}
	c.mu.Unlock()

	if isCurrent && ev.Kind == domain.EventInvalidate && c.opts.refetchOnInvalidate {
		c.background(context.Background(), ev.Descriptor, false)
	}
	if shown {
		c.publish()
	}
}

// Lookups returns the dropdown reader of the controller's resource.
// It shares the controller's store, flights and lifetime.
func (c *Controller[T]) Lookups() *Lookups {
	return &Lookups{loader: c.loader, source: c.source}
}

// Close stops background loads and the store subscription. It waits for
// running loads to return.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.unsubscribe()
	c.cancel()
	c.wg.Wait()
}

func (c *Controller[T]) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// hasData must be called with c.mu held.
func (c *Controller[T]) hasData(d domain.Descriptor) bool {
	if d.IsZero() {
		return false
	}
	entry, ok := c.loader.store.Get(d)
	return ok && entry.HasData()
}
