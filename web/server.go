// ABOUTME: assetview HTTP server hosting the manifest viewer page behind a chi router.
// ABOUTME: Each page request runs one manifest load through a selector and renders its surfaces as HTML.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/2389-research/assetview/manifest"
	"github.com/2389-research/assetview/selector"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the assetview HTTP server.
type Server struct {
	templates *TemplateEngine
	loader    *manifest.Loader
	router    chi.Router
	addr      string
	root      string
	assetDir  string
	logReqs   bool
}

// ServerConfig holds the configuration for the web server.
type ServerConfig struct {
	Addr        string       // listen address (default: "127.0.0.1:2389")
	Root        string       // path prefix for the assets directory (default: manifest.DefaultRoot)
	AssetDir    string       // directory served under <Root>/assets/; empty disables file serving
	ManifestURL string       // manifest location (default: this server's own <Root>/assets/manifest.json)
	HTTPClient  *http.Client // client for the manifest request (default: 30s timeout)
	LogRequests bool         // write one access log line per request
}

// NewServer creates a Server with the given configuration and sets up routing.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:2389"
	}
	if cfg.Root == "" {
		cfg.Root = manifest.DefaultRoot
	}
	root := manifest.NormalizeRoot(cfg.Root)

	if cfg.ManifestURL == "" {
		u, err := manifest.Location("http://"+cfg.Addr, root)
		if err != nil {
			return nil, fmt.Errorf("resolving manifest location: %w", err)
		}
		cfg.ManifestURL = u
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}

	tmpl, err := NewTemplateEngine()
	if err != nil {
		return nil, fmt.Errorf("initializing templates: %w", err)
	}

	s := &Server{
		templates: tmpl,
		loader:    manifest.NewLoader(cfg.ManifestURL, manifest.WithHTTPClient(cfg.HTTPClient)),
		addr:      cfg.Addr,
		root:      root,
		assetDir:  cfg.AssetDir,
		logReqs:   cfg.LogRequests,
	}
	s.router = s.buildRouter()
	return s, nil
}

// ManifestURL returns the location the viewer page loads its manifest from.
func (s *Server) ManifestURL() string {
	return s.loader.URL()
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server on the configured address with
// timeouts that bound slow clients. It returns nil once ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	if s.logReqs {
		r.Use(requestLogger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleViewer)
	r.Get("/health", s.handleHealth)

	staticFS, err := fs.Sub(StaticFS, "static")
	if err != nil {
		log.Printf("WARNING: failed to create static sub-FS: %v", err)
	} else {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	}

	if s.assetDir != "" {
		prefix := s.root + "/assets/"
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(s.assetDir))))
	}

	return r
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleViewer runs one page load: a fresh selector over per-request surfaces
// loads the manifest, then the ?asset= choice is applied as a user change.
func (s *Server) handleViewer(w http.ResponseWriter, r *http.Request) {
	p := newPage()
	sel := selector.New(p.list, p.preview, p.meta)
	w.Header().Set(LoadIDHeader, sel.ID())

	if err := sel.Load(r.Context(), s.loader); err == nil {
		if v := r.URL.Query().Get("asset"); v != "" {
			p.list.choose(v)
		}
	}

	data := ViewerData{
		Title:  "Asset Viewer",
		State:  sel.State().String(),
		LoadID: sel.ID(),
	}
	p.fill(&data)

	if err := s.templates.Render(w, "viewer.html", data); err != nil {
		log.Printf("error rendering viewer: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
