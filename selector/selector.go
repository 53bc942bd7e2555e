// ABOUTME: Manifest-driven selector that wires a selectable list, a preview surface, and a metadata display.
// ABOUTME: Owns the load state machine and an in-memory index of asset snapshots keyed by list position.
package selector

import (
	"context"
	"log"

	"github.com/2389-research/assetview/manifest"
	"github.com/google/uuid"
)

// ErrorEntryLabel is the text of the single non-actionable entry shown after a
// failed load.
const ErrorEntryLabel = "Error loading manifest"

// Option is one entry of the selectable list.
type Option struct {
	Value string // asset path
	Label string
}

// List is the selectable-list surface.
type List interface {
	// Replace clears the list and rebuilds it from options.
	Replace(options []Option)
	// Placeholder replaces the list with a single entry that cannot be chosen.
	Placeholder(label string)
	// Select marks the entry at index as selected without firing change listeners.
	Select(index int)
	// Selected returns the selected index, or -1 when nothing is selected.
	Selected() int
	// OnChange registers the listener fired when the user changes the selection.
	OnChange(fn func())
}

// Preview is the surface rendering the selected asset.
type Preview interface {
	SetSource(path string)
}

// MetadataView is the surface showing details of the selected asset, or an
// error message.
type MetadataView interface {
	Show(md manifest.Metadata)
	Message(text string)
}

// Source provides the asset list. *manifest.Loader satisfies it.
type Source interface {
	Load(ctx context.Context) ([]manifest.Asset, error)
}

// Selector is the component that populates a list from a manifest and keeps
// the preview and metadata surfaces in step with the selection. A Selector
// belongs to a single page and is not safe for concurrent use.
type Selector struct {
	list    List
	preview Preview
	meta    MetadataView

	id     string
	state  State
	assets []manifest.Asset
	byPath map[string]int
	err    error
}

// New creates a Selector over the three surfaces and attaches its change
// listener to the list. The listener is attached here and nowhere else.
func New(list List, preview Preview, meta MetadataView) *Selector {
	s := &Selector{
		list:    list,
		preview: preview,
		meta:    meta,
		id:      uuid.NewString(),
		byPath:  make(map[string]int),
	}
	list.OnChange(s.Changed)
	return s
}

// ID identifies this selector instance in diagnostic log lines.
func (s *Selector) ID() string {
	return s.id
}

// State returns the current lifecycle state.
func (s *Selector) State() State {
	return s.state
}

// Err returns the load error once the selector is in StateError.
func (s *Selector) Err() error {
	return s.err
}

// Len returns the number of selectable assets.
func (s *Selector) Len() int {
	return len(s.assets)
}

// Load runs the whole page lifecycle: one retrieval from src followed by
// either population or the error display. It returns the load error, which
// has already been surfaced to the user.
func (s *Selector) Load(ctx context.Context, src Source) error {
	if !s.Start() {
		return nil
	}
	assets, err := src.Load(ctx)
	return s.Finish(assets, err)
}

// Start moves an unloaded selector into StateLoading. It returns false when a
// load has already begun, since only one load happens per page.
func (s *Selector) Start() bool {
	if s.state != StateUnloaded {
		return false
	}
	s.state = StateLoading
	return true
}

// Finish completes a load started with Start. Hosts that cannot block on the
// retrieval call Start, fetch asynchronously, and hand the result here.
func (s *Selector) Finish(assets []manifest.Asset, err error) error {
	if err != nil {
		s.Fail(err)
		return err
	}
	s.Populate(assets)
	log.Printf("selector load=%s assets=%d", s.id, len(assets))
	return nil
}

// Populate replaces the list with one entry per asset, in order. If there is
// at least one asset the first is selected and the change reaction runs once.
// Populate is ignored after a failed load.
func (s *Selector) Populate(assets []manifest.Asset) {
	if s.state == StateError {
		return
	}
	s.state = StatePopulated

	s.assets = make([]manifest.Asset, len(assets))
	s.byPath = make(map[string]int, len(assets))
	options := make([]Option, len(assets))
	for i, a := range assets {
		snap := a.Clone()
		s.assets[i] = snap
		if _, dup := s.byPath[snap.Path]; !dup {
			s.byPath[snap.Path] = i
		}
		options[i] = Option{Value: snap.Path, Label: manifest.Label(snap)}
	}
	s.list.Replace(options)

	if len(s.assets) > 0 {
		s.list.Select(0)
		s.Changed()
	}
}

// Changed is the change reaction. It reads the list's current selection and
// pushes that asset to the preview and metadata surfaces. With no selection
// it does nothing.
func (s *Selector) Changed() {
	a, ok := s.Current()
	if !ok {
		return
	}
	s.preview.SetSource(a.Path)
	s.meta.Show(manifest.Describe(a))
}

// Current returns the asset selected in the list, if any.
func (s *Selector) Current() (manifest.Asset, bool) {
	if s.state != StatePopulated {
		return manifest.Asset{}, false
	}
	i := s.list.Selected()
	if i < 0 || i >= len(s.assets) {
		return manifest.Asset{}, false
	}
	return s.assets[i].Clone(), true
}

// IndexOf returns the list position of the first asset with the given path.
func (s *Selector) IndexOf(path string) (int, bool) {
	i, ok := s.byPath[path]
	return i, ok
}

// Fail switches to the terminal error state: the list becomes a single
// placeholder entry and the metadata area shows err's message.
func (s *Selector) Fail(err error) {
	if err == nil || s.state == StateError {
		return
	}
	s.state = StateError
	s.err = err
	s.assets = nil
	s.byPath = make(map[string]int)

	s.list.Placeholder(ErrorEntryLabel)
	s.meta.Message(err.Error())
	log.Printf("selector load=%s error: %v", s.id, err)
}
