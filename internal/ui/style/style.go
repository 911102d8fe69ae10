// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across crmadmin.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Shared text styles.
var (
	Header   = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Muted    = lipgloss.NewStyle().Foreground(Slate)
	Selected = lipgloss.NewStyle().Bold(true).Foreground(White).Background(Iris)
	Failure  = lipgloss.NewStyle().Foreground(Red)
)

// ActiveIcon returns the marker used for a record's active flag.
func ActiveIcon(active bool) string {
	if active {
		return Dot
	}
	return Circle
}

// ActiveColor returns the color used for a record's active flag.
func ActiveColor(active bool) lipgloss.Color {
	if active {
		return Green
	}
	return Slate
}
