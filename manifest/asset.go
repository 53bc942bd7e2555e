// ABOUTME: Asset data model for the manifest document and the display strings derived from it.
// ABOUTME: Label builds the selectable-list text; Describe builds the metadata block shown for a selection.
package manifest

import (
	"strings"
)

// TagsPlaceholder is shown in the metadata block when an asset carries no tags.
const TagsPlaceholder = "—"

// Asset describes a single viewable item listed in a manifest.
// Path is required; Name, ID and Tags are optional.
type Asset struct {
	Path string   `json:"path" yaml:"path"`
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`
	ID   string   `json:"id,omitempty" yaml:"id,omitempty"`
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Manifest is the top-level document. A missing assets field decodes to an
// empty list.
type Manifest struct {
	Assets []Asset `json:"assets" yaml:"assets"`
}

// DisplayName returns the asset's name, falling back to its id.
func (a Asset) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}

// Clone returns a copy that shares no memory with a.
func (a Asset) Clone() Asset {
	if a.Tags != nil {
		a.Tags = append(make([]string, 0, len(a.Tags)), a.Tags...)
	}
	return a
}

// Label renders the selectable-list text for an asset: the display name, an
// em-dash separator, and the tags joined by commas. Absent segments are empty.
func Label(a Asset) string {
	return a.DisplayName() + " — " + strings.Join(a.Tags, ",")
}

// Metadata is the rendered content of the metadata display for one asset.
type Metadata struct {
	Name string
	ID   string
	Tags string
}

// Describe builds the metadata block for an asset. Name does not fall back to
// the id here; a nil tag list renders as TagsPlaceholder.
func Describe(a Asset) Metadata {
	tags := TagsPlaceholder
	if a.Tags != nil {
		tags = strings.Join(a.Tags, ", ")
	}
	return Metadata{
		Name: a.Name,
		ID:   a.ID,
		Tags: tags,
	}
}

// String renders the block as plain text, one field per line.
func (m Metadata) String() string {
	return m.Name + "\nID: " + m.ID + "\nTags: " + m.Tags
}

// Markdown renders the block as Markdown with the name in bold. Line breaks
// inside values become spaces and Markdown syntax is escaped, so asset text
// never turns into markup.
func (m Metadata) Markdown() string {
	var b strings.Builder
	if name := strings.TrimSpace(singleLine(m.Name)); name != "" {
		b.WriteString("**" + escapeMarkdown(name) + "**")
	}
	b.WriteString("  \nID: " + escapeMarkdown(singleLine(m.ID)))
	b.WriteString("  \nTags: " + escapeMarkdown(singleLine(m.Tags)))
	b.WriteString("\n")
	return b.String()
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func singleLine(s string) string {
	return lineBreaks.Replace(s)
}

// escapeMarkdown backslash-escapes the ASCII punctuation Markdown treats as
// syntax.
func escapeMarkdown(s string) string {
	const special = "\\`*_{}[]()#+-=.!|<>&~"
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 128 && strings.ContainsRune(special, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
