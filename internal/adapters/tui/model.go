package tui

import (
	"context"
	"strings"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/engine/query"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const searchFilter = "search"

// MsgChanged signals that the browser published a new snapshot.
// The model re-reads the snapshot, so out-of-order delivery is harmless.
type MsgChanged struct{}

// MsgApplied reports the outcome of a state change or refetch.
type MsgApplied struct {
	Err error
}

// Model is the list browser state.
type Model[T any] struct {
	ctx     context.Context
	browser Browser[T]
	table   Table[T]

	// state is the last requested list state.
	state     domain.ListState
	search    textinput.Model
	searching bool
	snap      query.Snapshot[T]
	// lastErr is the outcome of the last SetState or Refetch.
	lastErr error
	width   int
}

// Init applies the initial state.
func (m *Model[T]) Init() tea.Cmd {
	return m.apply(m.state)
}

// State returns the last requested list state.
func (m *Model[T]) State() domain.ListState {
	return m.state
}

// Searching reports whether the search input has focus.
func (m *Model[T]) Searching() bool {
	return m.searching
}

// Update handles incoming messages and updates the model state.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgChanged:
		m.snap = m.browser.Snapshot()

	case MsgApplied:
		m.lastErr = msg.Err
		m.snap = m.browser.Snapshot()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.search.Width = max(msg.Width-len(m.search.Prompt)-1, 0)

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "n", "right":
			if m.hasNext() {
				return m, m.apply(m.state.NextPage())
			}
		case "p", "left":
			if m.state.Page > 1 {
				return m, m.apply(m.state.PrevPage())
			}
		case "r":
			return m, m.refetch()
		case "/":
			m.searching = true
			return m, m.search.Focus()
		}
	}

	return m, nil
}

func (m *Model[T]) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		var value *string
		if v := strings.TrimSpace(m.search.Value()); v != "" {
			value = &v
		}
		return m, m.apply(m.state.WithFilter(searchFilter, value))
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		if v, ok := m.state.Filters[searchFilter]; ok && v != nil {
			m.search.SetValue(*v)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// hasNext reports whether a later page is known to exist.
func (m *Model[T]) hasNext() bool {
	if m.snap.Data == nil {
		return false
	}
	return m.state.Page < m.snap.Data.TotalPages
}

// apply records state and sets it on the browser off the event loop;
// the browser publishes synchronously and must not block Update.
func (m *Model[T]) apply(state domain.ListState) tea.Cmd {
	m.state = state
	ctx, browser := m.ctx, m.browser
	return func() tea.Msg {
		_, err := browser.SetState(ctx, state)
		return MsgApplied{Err: err}
	}
}

func (m *Model[T]) refetch() tea.Cmd {
	ctx, browser := m.ctx, m.browser
	return func() tea.Msg {
		_, err := browser.Refetch(ctx)
		return MsgApplied{Err: err}
	}
}
