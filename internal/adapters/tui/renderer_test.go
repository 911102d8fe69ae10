package tui_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/adapters/tui"
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/core/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StopsWithContext(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	f := &fakeBrowser{}
	ctx, cancel := context.WithCancel(t.Context())

	m := tui.NewModel[domain.Product](ctx, io.Discard, f, tui.ProductTable, domain.NewListState(10))

	done := make(chan error, 1)
	go func() {
		done <- tui.Run(ctx, m, tea.WithInput(nil), tea.WithOutput(io.Discard))
	}()

	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return len(f.states) > 0 && len(f.listeners) == 1
	}, 2*time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
