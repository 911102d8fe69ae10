package tui

import (
	"context"
	"errors"

	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/engine/query"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the browser until the user quits or ctx is done.
// Snapshots published by the browser are forwarded to the program.
func Run[T any](ctx context.Context, model *Model[T], opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	program := tea.NewProgram(model, opts...)

	unsubscribe := model.browser.Subscribe(func(query.Snapshot[T]) {
		program.Send(MsgChanged{})
	})
	defer unsubscribe()

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
