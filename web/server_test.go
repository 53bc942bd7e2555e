// ABOUTME: Tests for the viewer HTTP server and chi router.
// ABOUTME: Covers health, page loads against a manifest endpoint, user selection, errors, and file serving.
package web

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testManifest = `{"assets":[
	{"path":"models/rocket.glb","name":"Rocket","id":"r1","tags":["3d","space"]},
	{"path":"models/factory.glb","id":"f1"},
	{"path":"img/plan.png","name":"Plan","tags":["2d"]}
]}`

// newManifestServer serves body with status at any path.
func newManifestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func newTestServer(t *testing.T, manifestURL string) *Server {
	t.Helper()
	srv, err := NewServer(ServerConfig{ManifestURL: manifestURL})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServerHealth(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1/unused")

	rec := get(t, srv, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status %q, got %q", "ok", body["status"])
	}
}

func TestServerDefaultManifestURL(t *testing.T) {
	srv, err := NewServer(ServerConfig{Addr: "127.0.0.1:9999"})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	want := "http://127.0.0.1:9999/Nomimi/assets/manifest.json"
	if srv.ManifestURL() != want {
		t.Errorf("ManifestURL() = %q, want %q", srv.ManifestURL(), want)
	}
}

func TestViewerAutoSelectsFirstAsset(t *testing.T) {
	ms := newManifestServer(t, http.StatusOK, testManifest)
	srv := newTestServer(t, ms.URL)

	rec := get(t, srv, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	body := rec.Body.String()

	if got := strings.Count(body, "<option value="); got != 3 {
		t.Errorf("expected 3 options, got %d\n%s", got, body)
	}
	if !strings.Contains(body, `<option value="models/rocket.glb" selected>Rocket — 3d,space</option>`) {
		t.Errorf("expected first option selected, got:\n%s", body)
	}
	if !strings.Contains(body, `src="models/rocket.glb"`) {
		t.Errorf("expected preview src for rocket, got:\n%s", body)
	}
	if !strings.Contains(body, "<strong>Rocket</strong>") {
		t.Errorf("expected bold name in metadata, got:\n%s", body)
	}
	if !strings.Contains(body, "Tags: 3d, space") {
		t.Errorf("expected tags in metadata, got:\n%s", body)
	}
	if !strings.Contains(body, `data-state="populated"`) {
		t.Errorf("expected populated state, got:\n%s", body)
	}
}

func TestViewerOptionOrderFollowsManifest(t *testing.T) {
	ms := newManifestServer(t, http.StatusOK, testManifest)
	body := get(t, newTestServer(t, ms.URL), "/").Body.String()

	rocket := strings.Index(body, `value="models/rocket.glb"`)
	factory := strings.Index(body, `value="models/factory.glb"`)
	plan := strings.Index(body, `value="img/plan.png"`)
	if !(rocket < factory && factory < plan) || rocket < 0 {
		t.Errorf("options out of manifest order: rocket=%d factory=%d plan=%d", rocket, factory, plan)
	}
	if !strings.Contains(body, ">f1 — </option>") {
		t.Errorf("expected id fallback label with empty tags, got:\n%s", body)
	}
}

func TestViewerSelectionReplacesPreviousData(t *testing.T) {
	ms := newManifestServer(t, http.StatusOK, testManifest)
	srv := newTestServer(t, ms.URL)

	body := get(t, srv, "/?asset=models/factory.glb").Body.String()

	if !strings.Contains(body, `<option value="models/factory.glb" selected>`) {
		t.Errorf("expected factory selected, got:\n%s", body)
	}
	if strings.Contains(body, `<option value="models/rocket.glb" selected>`) {
		t.Errorf("expected rocket no longer selected")
	}
	if !strings.Contains(body, `src="models/factory.glb"`) {
		t.Errorf("expected factory preview, got:\n%s", body)
	}
	if !strings.Contains(body, "ID: f1") || !strings.Contains(body, "Tags: —") {
		t.Errorf("expected factory metadata with placeholder tags, got:\n%s", body)
	}
	if strings.Contains(body, "Rocket</strong>") || strings.Contains(body, "3d, space") {
		t.Errorf("expected no residue from the first asset, got:\n%s", body)
	}
}

func TestViewerUnknownAssetKeepsFirst(t *testing.T) {
	ms := newManifestServer(t, http.StatusOK, testManifest)
	body := get(t, newTestServer(t, ms.URL), "/?asset=nope.glb").Body.String()

	if !strings.Contains(body, `<option value="models/rocket.glb" selected>`) {
		t.Errorf("expected first asset to stay selected, got:\n%s", body)
	}
}

func TestViewerEmptyManifest(t *testing.T) {
	for _, manifestBody := range []string{`{"assets":[]}`, `{}`} {
		t.Run(manifestBody, func(t *testing.T) {
			ms := newManifestServer(t, http.StatusOK, manifestBody)
			body := get(t, newTestServer(t, ms.URL), "/").Body.String()

			if strings.Contains(body, "<option") {
				t.Errorf("expected no options, got:\n%s", body)
			}
			if strings.Contains(body, " src=") {
				t.Errorf("expected preview without src, got:\n%s", body)
			}
			if strings.Contains(body, "ID:") {
				t.Errorf("expected no metadata, got:\n%s", body)
			}
		})
	}
}

func TestViewerNotFoundShowsErrorEntry(t *testing.T) {
	ms := newManifestServer(t, http.StatusNotFound, `not found`)
	rec := get(t, newTestServer(t, ms.URL), "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected page to render with status 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if got := strings.Count(body, "<option"); got != 1 {
		t.Errorf("expected exactly one option, got %d", got)
	}
	if !strings.Contains(body, "<option disabled>Error loading manifest</option>") {
		t.Errorf("expected disabled error entry, got:\n%s", body)
	}
	if !strings.Contains(body, `class="meta-error">Failed to load manifest: 404</p>`) {
		t.Errorf("expected 404 message in metadata area, got:\n%s", body)
	}
	if !strings.Contains(body, `data-state="error"`) {
		t.Errorf("expected error state, got:\n%s", body)
	}
}

func TestViewerErrorIgnoresAssetParam(t *testing.T) {
	ms := newManifestServer(t, http.StatusInternalServerError, ``)
	body := get(t, newTestServer(t, ms.URL), "/?asset=models/rocket.glb").Body.String()

	if strings.Contains(body, " src=") {
		t.Errorf("expected no preview after a failed load, got:\n%s", body)
	}
	if !strings.Contains(body, "500") {
		t.Errorf("expected status code in message, got:\n%s", body)
	}
}

func TestViewerEscapesAssetText(t *testing.T) {
	ms := newManifestServer(t, http.StatusOK, `{"assets":[{"path":"a.png","name":"<script>x</script>"}]}`)
	body := get(t, newTestServer(t, ms.URL), "/").Body.String()

	if strings.Contains(body, "<script>x</script>") {
		t.Errorf("expected asset name to be escaped, got:\n%s", body)
	}
}

func TestServerServesAssetsAndOwnManifest(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(testManifest), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	var handler http.Handler
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(ts.Close)

	srv, err := NewServer(ServerConfig{
		AssetDir:    dir,
		Root:        "/Nomimi",
		ManifestURL: ts.URL + "/Nomimi/assets/manifest.json",
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	handler = srv

	rec := get(t, srv, "/Nomimi/assets/manifest.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected manifest served with 200, got %d", rec.Code)
	}

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(buf.String(), "Rocket — 3d,space") {
		t.Errorf("expected page populated from self-served manifest, got:\n%s", buf.String())
	}
}

func TestServerStaticCSS(t *testing.T) {
	rec := get(t, newTestServer(t, "http://127.0.0.1:1/unused"), "/static/css/viewer.css")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for stylesheet, got %d", rec.Code)
	}
}

func TestServerImplementsHandler(t *testing.T) {
	var _ http.Handler = newTestServer(t, "http://127.0.0.1:1/unused")
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestRequestLogCarriesLoadID(t *testing.T) {
	ms := newManifestServer(t, http.StatusOK, testManifest)
	srv, err := NewServer(ServerConfig{ManifestURL: ms.URL, LogRequests: true})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	buf := captureLog(t)

	rec := get(t, srv, "/?asset=img/plan.png")

	id := rec.Header().Get(LoadIDHeader)
	if id == "" {
		t.Fatal("expected load ID header on viewer response")
	}
	out := buf.String()
	if !strings.Contains(out, "web request load="+id) {
		t.Errorf("expected request line with load=%s, got:\n%s", id, out)
	}
	if !strings.Contains(out, "selector load="+id) {
		t.Errorf("expected selector line with the same load ID, got:\n%s", out)
	}
	if !strings.Contains(out, `asset="img/plan.png"`) {
		t.Errorf("expected chosen asset in request line, got:\n%s", out)
	}
}

func TestRequestLogOffByDefault(t *testing.T) {
	srv := newTestServer(t, "http://127.0.0.1:1/unused")
	buf := captureLog(t)

	get(t, srv, "/health")

	if strings.Contains(buf.String(), "web request") {
		t.Errorf("expected no access log without LogRequests, got:\n%s", buf.String())
	}
}
