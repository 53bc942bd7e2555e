// ABOUTME: Implements a single-line status bar for the bottom of the TUI showing load progress.
// ABOUTME: Displays the manifest location, selector state, asset count, and load duration.
package tui

import (
	"fmt"
	"time"

	"github.com/2389-research/assetview/selector"
	"github.com/charmbracelet/lipgloss"
)

// StatusBarModel displays viewer status in a single line.
type StatusBarModel struct {
	manifestURL string
	state       selector.State
	assets      int
	startTime   time.Time
	loadTime    time.Duration
	width       int
}

// NewStatusBarModel creates a StatusBarModel for the given manifest location.
func NewStatusBarModel(manifestURL string) *StatusBarModel {
	return &StatusBarModel{manifestURL: manifestURL}
}

// Start records the load start time.
func (m *StatusBarModel) Start() {
	m.startTime = time.Now()
	m.state = selector.StateLoading
}

// Finish records the load outcome and duration.
func (m *StatusBarModel) Finish(state selector.State, assets int) {
	m.state = state
	m.assets = assets
	if !m.startTime.IsZero() {
		m.loadTime = time.Since(m.startTime)
	}
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// View renders the status bar as a single styled line.
func (m *StatusBarModel) View() string {
	state := StyleForState(m.state).Render(m.state.String())

	content := fmt.Sprintf("Manifest: %s | %s", m.manifestURL, state)
	if m.state == selector.StatePopulated {
		content += fmt.Sprintf(" | %d assets | %s", m.assets, m.loadTime.Round(time.Millisecond))
	}
	content += " | q quit"

	style := StatusBarStyle.Width(m.width)

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, style.Render(content))
}
