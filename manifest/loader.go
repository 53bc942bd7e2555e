// ABOUTME: Loader retrieves the manifest over HTTP and extracts its asset list.
// ABOUTME: Non-success statuses, transport failures, and malformed bodies map to the error taxonomy.
package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultRoot is the path prefix under which the assets directory is hosted.
const DefaultRoot = "/Nomimi"

// ManifestPath is the manifest location relative to the root.
const ManifestPath = "/assets/manifest.json"

// maxManifestBytes caps the size of a manifest body read into memory.
const maxManifestBytes = 8 << 20

// Location joins a base URL (scheme and host) and a root prefix into the full
// manifest URL, e.g. http://127.0.0.1:2389 + /Nomimi -> .../Nomimi/assets/manifest.json.
func Location(baseURL, root string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base url %q must include scheme and host", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/") + NormalizeRoot(root) + ManifestPath
	return u.String(), nil
}

// NormalizeRoot returns root with exactly one leading slash and no trailing
// slash. An empty or "/" root normalizes to "".
func NormalizeRoot(root string) string {
	root = strings.Trim(root, "/")
	if root == "" {
		return ""
	}
	return "/" + root
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient sets the HTTP client used for the manifest request.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// Loader fetches a manifest from a fixed URL.
type Loader struct {
	url    string
	client *http.Client
}

// NewLoader creates a Loader for the given manifest URL. Without options it
// uses http.DefaultClient and imposes no timeout of its own.
func NewLoader(manifestURL string, opts ...LoaderOption) *Loader {
	l := &Loader{
		url:    manifestURL,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// URL returns the manifest location this loader requests.
func (l *Loader) URL() string {
	return l.url
}

// Load performs a single GET against the manifest URL and returns its assets.
// It never retries. A missing assets field yields an empty list.
func (l *Loader) Load(ctx context.Context) ([]Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, &NetworkError{URL: l.url, Err: err}
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: l.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &RetrievalError{StatusCode: resp.StatusCode, URL: l.url}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxManifestBytes))
	if err != nil {
		return nil, &NetworkError{URL: l.url, Err: fmt.Errorf("read body: %w", err)}
	}

	format := DetectFormat(resp.Header.Get("Content-Type"), req.URL.Path)
	m, err := Decode(body, format)
	if err != nil {
		return nil, &ParseError{URL: l.url, Err: err}
	}
	if err := checkPresence(m.Assets); err != nil {
		return nil, &ParseError{URL: l.url, Err: err}
	}
	return m.Assets, nil
}
