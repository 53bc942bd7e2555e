// ABOUTME: Tests for the list, preview, and metadata panels backing the selector surfaces.
// ABOUTME: Verifies selection bookkeeping, placeholder handling, and rendered panel text.
package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/2389-research/assetview/manifest"
	"github.com/2389-research/assetview/selector"
	tea "github.com/charmbracelet/bubbletea"
)

func TestListPanelReplaceAndSelect(t *testing.T) {
	m := NewListPanelModel()
	if m.Selected() != -1 {
		t.Errorf("expected empty list to have no selection, got %d", m.Selected())
	}

	m.Replace([]selector.Option{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}, {Value: "c", Label: "C"}})
	m.Select(2)
	if m.Selected() != 2 {
		t.Errorf("expected index 2, got %d", m.Selected())
	}

	m.Select(9)
	if m.Selected() != 2 {
		t.Errorf("expected out-of-range select ignored, got %d", m.Selected())
	}
}

func TestListPanelSelectDoesNotFire(t *testing.T) {
	m := NewListPanelModel()
	fired := 0
	m.OnChange(func() { fired++ })
	m.Replace([]selector.Option{{Value: "a"}, {Value: "b"}})
	m.Select(1)

	if fired != 0 {
		t.Errorf("expected programmatic select not to fire, got %d", fired)
	}
}

func TestListPanelKeyFiresOncePerMove(t *testing.T) {
	m := NewListPanelModel()
	fired := 0
	m.OnChange(func() { fired++ })
	m.Replace([]selector.Option{{Value: "a"}, {Value: "b"}})

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if fired != 1 || m.Selected() != 1 {
		t.Errorf("expected one change to index 1, got fired=%d selected=%d", fired, m.Selected())
	}

	// Already at the last entry: no movement, no change.
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if fired != 1 {
		t.Errorf("expected no change at end of list, got fired=%d", fired)
	}
}

func TestListPanelPlaceholder(t *testing.T) {
	m := NewListPanelModel()
	m.Placeholder(selector.ErrorEntryLabel)

	if m.Len() != 1 || !m.IsPlaceholder() {
		t.Fatalf("expected one placeholder entry, got len=%d", m.Len())
	}
	if m.Selected() != -1 {
		t.Errorf("expected placeholder unselectable, got %d", m.Selected())
	}
	if !strings.Contains(m.View(), selector.ErrorEntryLabel) {
		t.Errorf("expected placeholder text in view:\n%s", m.View())
	}
}

func TestPreviewPanelView(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "img", "plan.png"), []byte("12345"), 0o644); err != nil {
		t.Fatal(err)
	}

	m := NewPreviewPanelModel(dir)
	if !strings.Contains(m.View(), "Nothing selected") {
		t.Errorf("expected empty preview text, got:\n%s", m.View())
	}

	m.SetSource("img/plan.png")
	view := m.View()
	for _, want := range []string{"img/plan.png", "image/png", "5 bytes"} {
		if !strings.Contains(view, want) {
			t.Errorf("preview missing %q:\n%s", want, view)
		}
	}
}

func TestMediaType(t *testing.T) {
	tests := map[string]string{
		"a.glb":      "model/gltf-binary",
		"a.gltf":     "model/gltf+json",
		"a.png":      "image/png",
		"noext":      "unknown",
		"a.zzzunkno": "unknown",
	}
	for src, want := range tests {
		if got := mediaType(src); got != want {
			t.Errorf("mediaType(%q) = %q, want %q", src, got, want)
		}
	}
}

func TestMetadataPanelShowAndMessage(t *testing.T) {
	m := NewMetadataPanelModel()
	if !strings.Contains(m.View(), "No asset selected") {
		t.Errorf("expected empty text, got:\n%s", m.View())
	}

	m.Show(manifest.Metadata{Name: "Rocket", ID: "r1", Tags: "3d, space"})
	view := m.View()
	for _, want := range []string{"Rocket", "r1", "3d, space"} {
		if !strings.Contains(view, want) {
			t.Errorf("metadata view missing %q:\n%s", want, view)
		}
	}

	m.Message("Failed to load manifest: 404")
	view = m.View()
	if !strings.Contains(view, "404") || strings.Contains(view, "Rocket") {
		t.Errorf("expected only the error message, got:\n%s", view)
	}
}

func TestStatusBarView(t *testing.T) {
	s := NewStatusBarModel("http://x/Nomimi/assets/manifest.json")
	s.SetWidth(120)
	s.Start()
	if !strings.Contains(s.View(), "loading") {
		t.Errorf("expected loading state, got %q", s.View())
	}
	s.Finish(selector.StatePopulated, 3)
	view := s.View()
	if !strings.Contains(view, "3 assets") || !strings.Contains(view, "populated") {
		t.Errorf("unexpected status bar: %q", view)
	}
}

func TestStyleForState(t *testing.T) {
	if StyleForState(selector.StateError).GetForeground() != ErrorStyle.GetForeground() {
		t.Error("expected error style for error state")
	}
	if StyleForState(selector.StateUnloaded).GetForeground() != IdleStyle.GetForeground() {
		t.Error("expected idle style for unloaded state")
	}
}
