package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/output"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/style"
)

const helpLine = "n/→ next  p/← prev  r refresh  / search  q quit"

// View renders the UI.
func (m *Model[T]) View() string {
	var b strings.Builder

	title := strings.ToUpper(m.browser.Resource().String())
	if m.err() != nil {
		b.WriteString(failureTitleStyle.Render(title))
	} else {
		b.WriteString(titleStyle.Render(title))
	}
	b.WriteString("\n\n")

	b.WriteString(m.body())
	b.WriteString("\n")
	b.WriteString(m.pageLine())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.search.View())
	} else {
		b.WriteString(style.Muted.Render(helpLine))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *Model[T]) body() string {
	snap := m.snap
	switch {
	case snap.Data == nil && snap.IsLoading:
		return "Loading...\n"
	case snap.Data == nil:
		return style.Muted.Render("No data.") + "\n"
	case len(snap.Data.Items) == 0:
		return style.Muted.Render("No records match.") + "\n"
	}

	table := output.Table(style.Header, m.table.Columns, output.Rows(snap.Data.Items, m.table.Row))
	if snap.IsPlaceholder {
		return placeholderStyle.Render(table)
	}
	return table
}

func (m *Model[T]) pageLine() string {
	page := m.snap.Data
	if page == nil {
		return fmt.Sprintf("page %d", m.state.Page)
	}
	line := fmt.Sprintf("page %d/%d · %d records", m.state.Page, max(page.TotalPages, 1), page.TotalRecords)
	if v, ok := m.state.Filters[searchFilter]; ok && v != nil {
		line += fmt.Sprintf(" · search %q", *v)
	}
	return line
}

// statusLine shows the descriptor fingerprint, the fetch state and the last error.
func (m *Model[T]) statusLine() string {
	snap := m.snap
	parts := make([]string, 0, 4)
	if !snap.Descriptor.IsZero() {
		parts = append(parts, style.Muted.Render(snap.Descriptor.ID()))
	}

	switch {
	case snap.IsLoading:
		parts = append(parts, fetchingStyle.Render(style.Dot+" loading"))
	case snap.IsFetching:
		parts = append(parts, fetchingStyle.Render(style.Dot+" fetching"))
	case snap.Stale:
		parts = append(parts, staleStyle.Render(style.Tilde+" stale"))
	case snap.Status == domain.StatusSuccess:
		parts = append(parts, style.Muted.Render(style.Check+" "+snap.UpdatedAt.Format("15:04:05")))
	}
	if snap.IsPlaceholder {
		parts = append(parts, placeholderStyle.Render("placeholder"))
	}
	if err := m.err(); err != nil {
		parts = append(parts, style.Failure.Render(style.Cross+" "+message(err)))
	}
	return strings.Join(parts, "  ")
}

// err returns the failure to show: the last action's, else the current entry's.
func (m *Model[T]) err() error {
	if m.lastErr != nil {
		return m.lastErr
	}
	return m.snap.Err
}

func message(err error) string {
	var gwErr *domain.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Message()
	}
	return err.Error()
}
