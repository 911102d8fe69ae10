package tui_test

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/tui"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/engine/query"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBrowser records the states it is asked to show.
type fakeBrowser struct {
	mu        sync.Mutex
	snap      query.Snapshot[domain.Product]
	states    []domain.ListState
	refetches int
	err       error
	listeners []func(query.Snapshot[domain.Product])
}

func (f *fakeBrowser) Resource() domain.Resource { return domain.ResourceProducts }

func (f *fakeBrowser) SetState(_ context.Context, state domain.ListState) (domain.Descriptor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.states = append(f.states, state)
	if f.err != nil {
		return domain.Descriptor{}, f.err
	}
	return domain.Derive(domain.ResourceProducts, state)
}

func (f *fakeBrowser) Snapshot() query.Snapshot[domain.Product] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap
}

func (f *fakeBrowser) Refetch(context.Context) (*domain.Page[domain.Product], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refetches++
	return f.snap.Data, f.err
}

func (f *fakeBrowser) Subscribe(fn func(query.Snapshot[domain.Product])) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
	return func() {}
}

func (f *fakeBrowser) setSnapshot(s query.Snapshot[domain.Product]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = s
}

func (f *fakeBrowser) lastState(t *testing.T) domain.ListState {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.states)
	return f.states[len(f.states)-1]
}

func newModel(t *testing.T, f *fakeBrowser) *tui.Model[domain.Product] {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	return tui.NewModel[domain.Product](t.Context(), io.Discard, f, tui.ProductTable, domain.NewListState(10))
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m *tui.Model[domain.Product], cmd tea.Cmd) *tui.Model[domain.Product] {
	t.Helper()
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	return updated.(*tui.Model[domain.Product])
}

func press(m *tui.Model[domain.Product], key tea.KeyMsg) (*tui.Model[domain.Product], tea.Cmd) {
	updated, cmd := m.Update(key)
	return updated.(*tui.Model[domain.Product]), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loaded(t *testing.T, pageNumber, totalRecords int, names ...string) query.Snapshot[domain.Product] {
	t.Helper()
	items := make([]domain.Product, 0, len(names))
	for _, name := range names {
		items = append(items, domain.Product{ID: name, Name: name, IsActive: true})
	}
	page, err := domain.NewPage(items, pageNumber, 10, totalRecords, 0)
	require.NoError(t, err)
	d, err := domain.Derive(domain.ResourceProducts, domain.NewListState(10).WithPage(pageNumber))
	require.NoError(t, err)
	return query.Snapshot[domain.Product]{
		Descriptor: d,
		Data:       page,
		Status:     domain.StatusSuccess,
		UpdatedAt:  time.Date(2026, 3, 4, 10, 11, 12, 0, time.UTC),
	}
}

func TestModel_InitAppliesState(t *testing.T) {
	f := &fakeBrowser{}
	m := newModel(t, f)

	m = run(t, m, m.Init())
	assert.Equal(t, domain.NewListState(10), f.lastState(t))
	assert.Equal(t, 1, m.State().Page)
}

func TestModel_Paging(t *testing.T) {
	f := &fakeBrowser{}
	f.setSnapshot(loaded(t, 1, 25, "A"))
	m := newModel(t, f)

	m, cmd := press(m, runes("n"))
	m = run(t, m, cmd)
	assert.Equal(t, 2, f.lastState(t).Page)
	assert.Equal(t, 2, m.State().Page)

	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyRight})
	m = run(t, m, cmd)
	assert.Equal(t, 3, f.lastState(t).Page)

	// 25 records of 10 end at page 3.
	m, cmd = press(m, runes("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, 3, m.State().Page)

	m, cmd = press(m, runes("p"))
	m = run(t, m, cmd)
	assert.Equal(t, 2, f.lastState(t).Page)

	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyLeft})
	m = run(t, m, cmd)
	assert.Equal(t, 1, f.lastState(t).Page)

	_, cmd = press(m, runes("p"))
	assert.Nil(t, cmd)
}

func TestModel_NextWithoutDataIsIgnored(t *testing.T) {
	f := &fakeBrowser{}
	m := newModel(t, f)

	_, cmd := press(m, runes("n"))
	assert.Nil(t, cmd)
}

func TestModel_Search(t *testing.T) {
	f := &fakeBrowser{}
	f.setSnapshot(loaded(t, 2, 25, "A"))
	m := newModel(t, f)
	m, cmd := press(m, runes("n"))
	m = run(t, m, cmd)

	m, _ = press(m, runes("/"))
	require.True(t, m.Searching())

	// Keys go to the input while searching.
	m, _ = press(m, runes("q"))
	require.True(t, m.Searching())
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(m, runes("wid"))

	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Searching())
	m = run(t, m, cmd)

	state := f.lastState(t)
	assert.Equal(t, 1, state.Page)
	require.Contains(t, state.Filters, "search")
	assert.Equal(t, "wid", *state.Filters["search"])

	// An empty search clears the filter.
	m, _ = press(m, runes("/"))
	for range 3 {
		m, _ = press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m, cmd = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	run(t, m, cmd)
	assert.NotContains(t, f.lastState(t).Filters, "search")
}

func TestModel_SearchEscapeKeepsState(t *testing.T) {
	f := &fakeBrowser{}
	m := newModel(t, f)

	m, _ = press(m, runes("/"))
	m, _ = press(m, runes("abc"))
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.False(t, m.Searching())
	assert.Empty(t, m.State().Filters)
	f.mu.Lock()
	assert.Empty(t, f.states)
	f.mu.Unlock()
}

func TestModel_Refetch(t *testing.T) {
	f := &fakeBrowser{}
	m := newModel(t, f)

	m, cmd := press(m, runes("r"))
	run(t, m, cmd)

	f.mu.Lock()
	assert.Equal(t, 1, f.refetches)
	f.mu.Unlock()
}

func TestModel_Quit(t *testing.T) {
	tests := []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}}
	for _, key := range tests {
		t.Run(key.String(), func(t *testing.T) {
			m := newModel(t, &fakeBrowser{})
			_, cmd := press(m, key)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestModel_ChangedRereadsSnapshot(t *testing.T) {
	f := &fakeBrowser{}
	m := newModel(t, f)
	assert.Contains(t, m.View(), "No data.")

	f.setSnapshot(loaded(t, 1, 1, "Widget"))
	updated, _ := m.Update(tui.MsgChanged{})
	m = updated.(*tui.Model[domain.Product])

	assert.Contains(t, m.View(), "Widget")
}

func TestModel_AppliedErrorShown(t *testing.T) {
	f := &fakeBrowser{}
	f.setSnapshot(loaded(t, 1, 1, "Widget"))
	m := newModel(t, f)

	failure := &domain.GatewayError{Kind: domain.FailureApplication, Op: "products.list", StatusCode: 500, ServerMessage: "Server busy"}
	updated, _ := m.Update(tui.MsgApplied{Err: failure})
	m = updated.(*tui.Model[domain.Product])

	view := m.View()
	assert.Contains(t, view, "✗ Server busy")
	assert.Contains(t, view, "Widget", "data stays visible after a failure")

	updated, _ = m.Update(tui.MsgApplied{})
	m = updated.(*tui.Model[domain.Product])
	assert.NotContains(t, m.View(), "Server busy")
}

func TestModel_WindowSize(t *testing.T) {
	m := newModel(t, &fakeBrowser{})
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.NotNil(t, updated)
}
