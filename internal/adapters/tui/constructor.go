// Package tui provides the terminal list browser.
package tui

import (
	"context"
	"io"
	"os"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/engine/query"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/output"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Browser is the query side the model drives. *query.Controller implements it.
type Browser[T any] interface {
	Resource() domain.Resource
	SetState(ctx context.Context, state domain.ListState) (domain.Descriptor, error)
	Snapshot() query.Snapshot[T]
	Refetch(ctx context.Context) (*domain.Page[T], error)
	Subscribe(fn func(query.Snapshot[T])) func()
}

// Table describes how records of T are rendered.
type Table[T any] struct {
	Columns []string
	Row     func(T) []string
}

// ProductTable renders products.
var ProductTable = Table[domain.Product]{Columns: output.ProductColumns, Row: output.ProductRow}

// UserTable renders users.
var UserTable = Table[domain.User]{Columns: output.UserColumns, Row: output.UserRow}

// NewModel creates a browser model starting at state.
func NewModel[T any](ctx context.Context, w io.Writer, browser Browser[T], table Table[T], state domain.ListState) *Model[T] {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"
	if value, ok := state.Filters[searchFilter]; ok && value != nil {
		search.SetValue(*value)
	}

	return &Model[T]{
		ctx:     ctx,
		browser: browser,
		table:   table,
		state:   state,
		search:  search,
		snap:    browser.Snapshot(),
	}
}
