package tui

import (
	"github.com/Avinya-Software/Avinya-AI-CRM-Web-sub001/internal/ui/style"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(style.Slate).
				Faint(true)

	fetchingStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	staleStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)
)
