// ABOUTME: TemplateEngine loads embedded HTML templates and renders them with Go's html/template.
// ABOUTME: Metadata blocks are rendered from Markdown to HTML with goldmark before reaching a template.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

// OptionView is one <option> of the asset select.
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// ViewerData holds everything the viewer page renders.
type ViewerData struct {
	Title       string
	State       string // selector lifecycle state
	LoadID      string
	Options     []OptionView
	Placeholder string        // non-actionable entry shown instead of Options after a failed load
	Source      string        // preview frame src
	Metadata    template.HTML // rendered metadata block
	Message     string        // error text shown in the metadata area
}

// TemplateEngine loads and renders embedded HTML templates.
type TemplateEngine struct {
	templates map[string]*template.Template
}

// templateFuncs returns the FuncMap available to all templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"lower": strings.ToLower,
	}
}

// NewTemplateEngine parses all embedded templates and returns a ready-to-use engine.
// Each page template is parsed together with the layout so that the layout wraps every page.
func NewTemplateEngine() (*TemplateEngine, error) {
	funcs := templateFuncs()

	pages := []string{
		"viewer.html",
	}

	engine := &TemplateEngine{
		templates: make(map[string]*template.Template),
	}

	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		engine.templates[page] = t
	}

	return engine, nil
}

// Render executes the named template with the given data and writes the result
// to w. It sets the Content-Type header to text/html.
func (e *TemplateEngine) Render(w http.ResponseWriter, name string, data any) error {
	t, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// RenderTo executes the named template with the given data and writes the
// result to an arbitrary io.Writer (useful for testing without HTTP).
func (e *TemplateEngine) RenderTo(w io.Writer, name string, data any) error {
	t, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return t.ExecuteTemplate(w, "layout.html", data)
}

// markdownToHTML converts a markdown string to HTML using goldmark.
// Raw HTML in the input is omitted by goldmark's default renderer.
func markdownToHTML(input string) template.HTML {
	var buf bytes.Buffer
	md := goldmark.New()
	if err := md.Convert([]byte(input), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(input))
	}
	return template.HTML(buf.String())
}
