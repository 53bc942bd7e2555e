// ABOUTME: Scrollable metadata panel using the bubbles viewport component.
// ABOUTME: Implements selector.MetadataView, rendering the name, id, and tags block or an error message.
package tui

import (
	"strings"

	"github.com/2389-research/assetview/manifest"
	"github.com/2389-research/assetview/selector"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Compile-time interface assertion: *MetadataPanelModel implements selector.MetadataView.
var _ selector.MetadataView = (*MetadataPanelModel)(nil)

// MetadataPanelModel displays details of the selected asset.
type MetadataPanelModel struct {
	md       *manifest.Metadata
	message  string
	viewport viewport.Model
	width    int
	height   int
}

// NewMetadataPanelModel creates an empty metadata panel.
func NewMetadataPanelModel() *MetadataPanelModel {
	return &MetadataPanelModel{viewport: viewport.New(40, 6)}
}

// Show implements selector.MetadataView.
func (m *MetadataPanelModel) Show(md manifest.Metadata) {
	m.md = &md
	m.message = ""
	m.syncViewport()
}

// Message implements selector.MetadataView.
func (m *MetadataPanelModel) Message(text string) {
	m.md = nil
	m.message = text
	m.syncViewport()
}

// SetSize sets the available dimensions and updates the viewport.
func (m *MetadataPanelModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	// Reserve space for the border (2 lines top/bottom) and title (1 line)
	m.viewport.Width = max(w-2, 1)
	m.viewport.Height = max(h-3, 1)
	m.syncViewport()
}

// Update scrolls the viewport.
func (m *MetadataPanelModel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// ScrollOffset returns the first visible content line.
func (m *MetadataPanelModel) ScrollOffset() int {
	return m.viewport.YOffset
}

// syncViewport rebuilds the viewport content and scrolls to the top.
func (m *MetadataPanelModel) syncViewport() {
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

// content renders the panel body without the title.
func (m *MetadataPanelModel) content() string {
	switch {
	case m.message != "":
		return ErrorStyle.Render(m.message)
	case m.md != nil:
		lines := []string{
			NameStyle.Render(m.md.Name),
			row("ID:", m.md.ID),
			row("Tags:", m.md.Tags),
		}
		return strings.Join(lines, "\n")
	default:
		return ""
	}
}

// View renders the metadata panel.
func (m *MetadataPanelModel) View() string {
	body := m.viewport.View()
	if m.md == nil && m.message == "" {
		body = ValueStyle.Render("No asset selected")
	}
	rendered := TitleStyle.Render("METADATA") + "\n" + body

	style := BorderStyle
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	if m.height > 0 {
		style = style.Height(m.height - 2)
	}
	return style.Render(rendered)
}
