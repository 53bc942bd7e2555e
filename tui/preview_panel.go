// ABOUTME: Preview panel showing the selected asset's source path, media type, and on-disk size.
// ABOUTME: Implements selector.Preview; files are looked up under an optional local asset directory.
package tui

import (
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/2389-research/assetview/selector"
)

// Compile-time interface assertion: *PreviewPanelModel implements selector.Preview.
var _ selector.Preview = (*PreviewPanelModel)(nil)

// PreviewPanelModel renders the current preview source.
type PreviewPanelModel struct {
	src      string
	assetDir string
	width    int
	height   int
}

// NewPreviewPanelModel creates a preview panel. assetDir may be empty.
func NewPreviewPanelModel(assetDir string) *PreviewPanelModel {
	return &PreviewPanelModel{assetDir: assetDir}
}

// SetSource implements selector.Preview.
func (m *PreviewPanelModel) SetSource(p string) {
	m.src = p
}

// Source returns the current preview source.
func (m *PreviewPanelModel) Source() string {
	return m.src
}

// SetSize sets the available dimensions.
func (m *PreviewPanelModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// mediaType guesses a media type from the source's extension.
func mediaType(src string) string {
	ext := strings.ToLower(path.Ext(src))
	switch ext {
	case "":
		return "unknown"
	case ".glb":
		return "model/gltf-binary"
	case ".gltf":
		return "model/gltf+json"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "unknown"
}

// localSize reports the size of the source file under the asset directory.
func (m *PreviewPanelModel) localSize() (int64, bool) {
	if m.assetDir == "" || m.src == "" || strings.Contains(m.src, "://") {
		return 0, false
	}
	p := filepath.Join(m.assetDir, filepath.FromSlash(strings.TrimPrefix(m.src, "/")))
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return 0, false
	}
	return info.Size(), true
}

// View renders the preview panel.
func (m *PreviewPanelModel) View() string {
	title := TitleStyle.Render("PREVIEW")

	var lines []string
	lines = append(lines, title)
	if m.src == "" {
		lines = append(lines, "", ValueStyle.Render("Nothing selected"))
	} else {
		lines = append(lines, row("Source:", m.src))
		lines = append(lines, row("Type:", mediaType(m.src)))
		if size, ok := m.localSize(); ok {
			lines = append(lines, row("Size:", fmt.Sprintf("%d bytes", size)))
		}
	}

	style := BorderStyle
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	if m.height > 0 {
		style = style.Height(m.height - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}
