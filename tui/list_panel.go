// ABOUTME: Selectable asset list panel built on the bubbles list component.
// ABOUTME: Implements selector.List and fires the change listener when key input moves the cursor.
package tui

import (
	"github.com/2389-research/assetview/selector"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// Compile-time interface assertion: *ListPanelModel implements selector.List.
var _ selector.List = (*ListPanelModel)(nil)

// assetItem is one selectable entry.
type assetItem struct {
	opt selector.Option
}

func (i assetItem) Title() string       { return i.opt.Label }
func (i assetItem) Description() string { return i.opt.Value }
func (i assetItem) FilterValue() string { return i.opt.Label }

// placeholderItem is the non-actionable entry shown after a failed load.
type placeholderItem string

func (i placeholderItem) Title() string       { return PlaceholderStyle.Render(string(i)) }
func (i placeholderItem) Description() string { return "" }
func (i placeholderItem) FilterValue() string { return "" }

// ListPanelModel wraps a bubbles list.Model. It is held by pointer so the
// selector and the AppModel see the same list after Bubble Tea copies models.
type ListPanelModel struct {
	list        list.Model
	placeholder bool
	onChange    func()
}

// NewListPanelModel creates an empty list panel.
func NewListPanelModel() *ListPanelModel {
	l := list.New(nil, list.NewDefaultDelegate(), 40, 20)
	l.Title = "ASSETS"
	l.Styles.Title = TitleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return &ListPanelModel{list: l}
}

// Replace implements selector.List.
func (m *ListPanelModel) Replace(options []selector.Option) {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = assetItem{opt: o}
	}
	m.placeholder = false
	m.list.SetItems(items)
	m.list.ResetSelected()
}

// Placeholder implements selector.List.
func (m *ListPanelModel) Placeholder(label string) {
	m.placeholder = true
	m.list.SetItems([]list.Item{placeholderItem(label)})
	m.list.ResetSelected()
}

// Select implements selector.List. It never fires the change listener.
func (m *ListPanelModel) Select(index int) {
	if m.placeholder || index < 0 || index >= len(m.list.Items()) {
		return
	}
	m.list.Select(index)
}

// Selected implements selector.List.
func (m *ListPanelModel) Selected() int {
	if m.placeholder || len(m.list.Items()) == 0 {
		return -1
	}
	return m.list.Index()
}

// OnChange implements selector.List.
func (m *ListPanelModel) OnChange(fn func()) {
	m.onChange = fn
}

// Len returns the number of entries, including a placeholder.
func (m *ListPanelModel) Len() int {
	return len(m.list.Items())
}

// IsPlaceholder reports whether the list shows the failed-load entry.
func (m *ListPanelModel) IsPlaceholder() bool {
	return m.placeholder
}

// SetSize sets the available dimensions, reserving two cells for the border.
func (m *ListPanelModel) SetSize(w, h int) {
	m.list.SetSize(max(w-2, 1), max(h-2, 1))
}

// Update routes key input to the list. A cursor move is a user selection
// change and fires the listener once.
func (m *ListPanelModel) Update(msg tea.Msg) tea.Cmd {
	if m.placeholder {
		return nil
	}
	before := m.Selected()
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	if m.Selected() != before && m.onChange != nil {
		m.onChange()
	}
	return cmd
}

// View renders the list inside a bordered panel.
func (m *ListPanelModel) View() string {
	return BorderStyle.Render(m.list.View())
}
