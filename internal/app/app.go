// Package app implements the application layer for crmadmin.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/detector"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/metrics"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/tui"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/ports"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/output"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/style"
	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ProductService serves products.
type ProductService = Service[domain.Product, domain.ProductInput]

// UserService serves users.
type UserService = Service[domain.User, domain.UserInput]

// App represents the main application logic.
type App struct {
	settings   domain.Settings
	logger     ports.Logger
	store      ports.CacheStore
	recorder   *metrics.Recorder
	products   *ProductService
	users      *UserService
	teaOptions []tea.ProgramOption
}

// New creates a new App instance. recorder may be nil, which disables the metrics endpoint.
func New(
	settings domain.Settings,
	log ports.Logger,
	store ports.CacheStore,
	recorder *metrics.Recorder,
	products *ProductService,
	users *UserService,
) *App {
	return &App{
		settings: settings,
		logger:   log,
		store:    store,
		recorder: recorder,
		products: products,
		users:    users,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// Settings returns the resolved configuration.
func (a *App) Settings() domain.Settings {
	return a.settings
}

// Products returns the products service.
func (a *App) Products() Records[domain.Product, domain.ProductInput] {
	return a.products
}

// Users returns the users service.
func (a *App) Users() Records[domain.User, domain.UserInput] {
	return a.users
}

// Invalidate marks every cached entry of the named resource family stale.
// Query controllers showing one of them reload it.
func (a *App) Invalidate(resource string) (int, error) {
	r, err := domain.ParseResource(resource)
	if err != nil {
		return 0, err
	}
	n := a.store.InvalidateResource(r)
	a.metrics().Invalidated(r, n)
	a.logger.Debug("invalidated", "resource", r.String(), "entries", n)
	return n, nil
}

// BrowseOptions configures Browse.
type BrowseOptions struct {
	// PageSize overrides the configured page size when positive.
	PageSize int
	// Search is the initial search filter. Empty means no filter.
	Search string
	// MetricsAddr overrides the configured metrics listen address.
	MetricsAddr string
	// Output is auto, interactive or plain. Auto checks whether stdout is a terminal.
	Output string
	// Out receives the plain rendering. Nil selects os.Stdout.
	Out io.Writer
}

// Browse runs the interactive list browser for resource until the user quits.
// The dropdowns of the resource are prefetched in the background, and the
// metrics endpoint is served while the browser runs. In plain mode the first
// page is printed once instead.
func (a *App) Browse(ctx context.Context, resource string, opts BrowseOptions) error {
	r, err := domain.ParseResource(resource)
	if err != nil {
		return err
	}

	pageSize := a.settings.PageSize
	if opts.PageSize > 0 {
		pageSize = opts.PageSize
	}
	state := domain.NewListState(pageSize)
	if opts.Search != "" {
		state = state.WithFilter("search", domain.FilterValue(opts.Search))
	}

	if detector.Resolve(detector.Detect(os.Stdout), opts.Output) == detector.ModePlain {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		switch r {
		case domain.ResourceProducts:
			return printPage(ctx, a.products, tui.ProductTable, state, out)
		default:
			return printPage(ctx, a.users, tui.UserTable, state, out)
		}
	}

	addr := a.settings.MetricsAddr
	if opts.MetricsAddr != "" {
		addr = opts.MetricsAddr
	}

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if addr != "" && a.recorder != nil {
		g.Go(func() error {
			return a.recorder.Serve(ctx, addr)
		})
		a.logger.Info("serving metrics on " + addr + "/metrics")
	}

	g.Go(func() error {
		defer cancel()
		switch r {
		case domain.ResourceProducts:
			return browse(ctx, a, a.products, tui.ProductTable, state)
		case domain.ResourceUsers:
			return browse(ctx, a, a.users, tui.UserTable, state)
		default:
			return zerr.With(zerr.Wrap(domain.ErrUnknownResource, "browse"), "resource", r.String())
		}
	})

	return g.Wait()
}

func browse[T, F any](ctx context.Context, a *App, svc *Service[T, F], table tui.Table[T], state domain.ListState) error {
	go func() {
		if err := svc.query.Lookups().Prefetch(ctx); err != nil {
			a.logger.Debug("lookup prefetch failed", "resource", svc.query.Resource().String(), "error", err)
		}
	}()

	model := tui.NewModel(ctx, nil, svc.query, table, state)
	return tui.Run(ctx, model, a.teaOptions...)
}

func printPage[T, F any](ctx context.Context, svc *Service[T, F], table tui.Table[T], state domain.ListState, w io.Writer) error {
	page, err := svc.List(ctx, state)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, output.Table(style.Header, table.Columns, output.Rows(page.Items, table.Row))); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "page %d/%d · %d records\n", page.PageNumber, max(page.TotalPages, 1), page.TotalRecords)
	return err
}

// Close stops the query controllers.
func (a *App) Close() {
	a.products.Close()
	a.users.Close()
}

func (a *App) metrics() ports.Metrics {
	if a.recorder == nil {
		return metrics.Noop{}
	}
	return a.recorder
}
