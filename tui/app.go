// ABOUTME: Top-level Bubble Tea AppModel that hosts the manifest selector in a terminal layout.
// ABOUTME: Implements tea.Model (Init, Update, View) and routes messages to the list, preview, metadata, and status panels.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/2389-research/assetview/selector"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config holds what the TUI needs beyond the manifest source.
type Config struct {
	ManifestURL string // shown in the status bar
	AssetDir    string // local directory for preview file details (optional)
}

// AppModel is the top-level Bubble Tea model. The panels and the selector are
// pointers, so copies of AppModel made by Bubble Tea share them.
type AppModel struct {
	list      *ListPanelModel
	preview   *PreviewPanelModel
	meta      *MetadataPanelModel
	statusBar *StatusBarModel

	sel    *selector.Selector
	source selector.Source
	ctx    context.Context

	width  int
	height int
}

// NewAppModel creates an AppModel whose selector loads from src once Init runs.
func NewAppModel(ctx context.Context, src selector.Source, cfg Config) AppModel {
	list := NewListPanelModel()
	preview := NewPreviewPanelModel(cfg.AssetDir)
	meta := NewMetadataPanelModel()

	return AppModel{
		list:      list,
		preview:   preview,
		meta:      meta,
		statusBar: NewStatusBarModel(cfg.ManifestURL),
		sel:       selector.New(list, preview, meta),
		source:    src,
		ctx:       ctx,
	}
}

// Selector exposes the hosted selector.
func (m AppModel) Selector() *selector.Selector {
	return m.sel
}

// Init implements tea.Model. It starts the one manifest load for this session.
func (m AppModel) Init() tea.Cmd {
	if !m.sel.Start() {
		return nil
	}
	m.statusBar.Start()
	return LoadManifestCmd(m.ctx, m.source)
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case ManifestLoadedMsg:
		return m.handleManifestLoaded(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// View implements tea.Model. Renders the list on the left and the preview
// over the metadata on the right, with the status bar below.
func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// Minimum terminal size guard to prevent layout overflow
	if m.width < 40 || m.height < 10 {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum: 40x10.", m.width, m.height)
	}

	right := lipgloss.JoinVertical(lipgloss.Left, m.preview.View(), m.meta.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), right)

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.statusBar.View())
	return b.String()
}

// handleWindowSize records the terminal dimensions and lays out the panels:
// the list takes 40% of the width, the preview 45% of the right column.
func (m AppModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	statusBarHeight := 1
	bodyHeight := m.height - statusBarHeight

	listWidth := max(m.width*40/100, 20)
	rightWidth := max(m.width-listWidth, 20)
	previewHeight := max(bodyHeight*45/100, 5)
	metaHeight := max(bodyHeight-previewHeight, 5)

	m.list.SetSize(listWidth, bodyHeight)
	m.preview.SetSize(rightWidth, previewHeight)
	m.meta.SetSize(rightWidth, metaHeight)
	m.statusBar.SetWidth(m.width)
	return m, nil
}

// handleManifestLoaded completes the load: populate on success, the
// terminal error display on failure.
func (m AppModel) handleManifestLoaded(msg ManifestLoadedMsg) (tea.Model, tea.Cmd) {
	_ = m.sel.Finish(msg.Assets, msg.Err)
	m.statusBar.Finish(m.sel.State(), m.sel.Len())
	return m, nil
}

// handleKeyMsg processes app-level shortcuts. Page keys scroll the metadata
// panel; everything else goes to the list.
func (m AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "pgup", "pgdown":
		return m, m.meta.Update(msg)
	}
	return m, m.list.Update(msg)
}
