// ABOUTME: Defines lipgloss style constants for the TUI layout panels, labels, and status colors.
// ABOUTME: Provides StyleForState to map selector lifecycle states to their display styles.
package tui

import (
	"github.com/2389-research/assetview/selector"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// State colors
	LoadingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	PopulatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	IdleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Placeholder entry shown after a failed load
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	// Metadata and preview labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(8)
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	NameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)
)

// StyleForState returns the lipgloss style for a selector state.
func StyleForState(s selector.State) lipgloss.Style {
	switch s {
	case selector.StateLoading:
		return LoadingStyle
	case selector.StatePopulated:
		return PopulatedStyle
	case selector.StateError:
		return ErrorStyle
	default:
		return IdleStyle
	}
}

// row renders a label-value pair using the standard label and value styles.
func row(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}
