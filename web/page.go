// ABOUTME: Per-request page surfaces that implement the selector's List, Preview, and MetadataView.
// ABOUTME: The recorded state is copied into ViewerData for template rendering.
package web

import (
	"html/template"

	"github.com/2389-research/assetview/manifest"
	"github.com/2389-research/assetview/selector"
)

var (
	_ selector.List         = (*pageList)(nil)
	_ selector.Preview      = (*pagePreview)(nil)
	_ selector.MetadataView = (*pageMeta)(nil)
)

// page groups the three surfaces of one rendered viewer page.
type page struct {
	list    *pageList
	preview *pagePreview
	meta    *pageMeta
}

func newPage() *page {
	return &page{
		list:    &pageList{selected: -1},
		preview: &pagePreview{},
		meta:    &pageMeta{},
	}
}

// fill copies the surface state into data.
func (p *page) fill(data *ViewerData) {
	data.Placeholder = p.list.placeholder
	data.Options = make([]OptionView, len(p.list.options))
	for i, o := range p.list.options {
		data.Options[i] = OptionView{
			Value:    o.Value,
			Label:    o.Label,
			Selected: i == p.list.selected,
		}
	}
	data.Source = p.preview.src
	data.Metadata = p.meta.html
	data.Message = p.meta.message
}

// pageList is the <select> surface.
type pageList struct {
	options     []selector.Option
	placeholder string
	selected    int
	onChange    func()
}

func (l *pageList) Replace(options []selector.Option) {
	l.options = options
	l.placeholder = ""
	l.selected = -1
}

func (l *pageList) Placeholder(label string) {
	l.options = nil
	l.placeholder = label
	l.selected = -1
}

func (l *pageList) Select(index int) {
	if index < -1 || index >= len(l.options) {
		return
	}
	l.selected = index
}

func (l *pageList) Selected() int { return l.selected }

func (l *pageList) OnChange(fn func()) { l.onChange = fn }

// choose applies a user pick by option value. Unknown values leave the
// selection untouched.
func (l *pageList) choose(value string) bool {
	for i, o := range l.options {
		if o.Value != value {
			continue
		}
		l.selected = i
		if l.onChange != nil {
			l.onChange()
		}
		return true
	}
	return false
}

// pagePreview is the preview frame surface.
type pagePreview struct {
	src string
}

func (p *pagePreview) SetSource(path string) { p.src = path }

// pageMeta is the metadata block surface.
type pageMeta struct {
	html    template.HTML
	message string
}

func (m *pageMeta) Show(md manifest.Metadata) {
	m.html = markdownToHTML(md.Markdown())
	m.message = ""
}

func (m *pageMeta) Message(text string) {
	m.html = ""
	m.message = text
}
