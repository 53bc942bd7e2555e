// ABOUTME: Bubble Tea message types used in the TUI message loop.
// ABOUTME: Each type wraps a viewer event for the tea.Msg interface (which is interface{}).
package tui

import "github.com/2389-research/assetview/manifest"

// ManifestLoadedMsg carries the result of the single manifest load.
type ManifestLoadedMsg struct {
	Assets []manifest.Asset
	Err    error
}
