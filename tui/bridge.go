// ABOUTME: Bridge connecting the manifest source to the Bubble Tea message loop.
// ABOUTME: Runs the blocking retrieval off the UI thread and reports back with a ManifestLoadedMsg.
package tui

import (
	"context"

	"github.com/2389-research/assetview/selector"
	tea "github.com/charmbracelet/bubbletea"
)

// LoadManifestCmd returns a tea.Cmd that performs one load from src. The
// context allows cancellation when the user quits the TUI.
func LoadManifestCmd(ctx context.Context, src selector.Source) tea.Cmd {
	return func() tea.Msg {
		assets, err := src.Load(ctx)
		return ManifestLoadedMsg{Assets: assets, Err: err}
	}
}
