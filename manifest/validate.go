// ABOUTME: Offline manifest checker that reports assets missing a path or referencing absent files.
// ABOUTME: Used by the -validate CLI mode before publishing an assets directory.
package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Problem describes one invalid asset found by Validate.
type Problem struct {
	Index   int
	Path    string
	Message string
}

func (p Problem) String() string {
	if p.Path == "" {
		return fmt.Sprintf("asset %d: %s", p.Index, p.Message)
	}
	return fmt.Sprintf("asset %d: %s: %s", p.Index, p.Message, p.Path)
}

// Report is the result of validating a manifest file.
type Report struct {
	Manifest string
	Assets   int
	Problems []Problem
}

// OK reports whether the manifest had no problems.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// WriteTo prints the report in human-readable form.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, p := range r.Problems {
		c, err := fmt.Fprintln(w, p.String())
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	msg := "Manifest looks valid."
	if !r.OK() {
		msg = fmt.Sprintf("Manifest invalid: %d problem(s) in %d asset(s).", len(r.Problems), r.Assets)
	}
	c, err := fmt.Fprintln(w, msg)
	n += int64(c)
	return n, err
}

// Validate reads the manifest at manifestPath and checks every asset: the path
// field must be present and must name an existing file. Relative asset paths
// resolve against baseDir. The returned error covers unreadable or malformed
// manifests; per-asset findings go into the report.
func Validate(manifestPath, baseDir string) (*Report, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("manifest not found: %w", err)
	}

	m, err := Decode(data, DetectFormat("", manifestPath))
	if err != nil {
		return nil, err
	}

	report := &Report{Manifest: manifestPath, Assets: len(m.Assets)}
	for i, a := range m.Assets {
		if a.Path == "" {
			report.Problems = append(report.Problems, Problem{Index: i, Message: ErrMissingPath.Error()})
			continue
		}
		p := a.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		if _, err := os.Stat(p); err != nil {
			report.Problems = append(report.Problems, Problem{Index: i, Path: a.Path, Message: "referenced asset file missing"})
		}
	}
	return report, nil
}
