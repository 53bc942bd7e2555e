// ABOUTME: CLI entrypoint for assetview with server, TUI, validate, and export modes.
// ABOUTME: Wires the manifest loader, web server, Bubble Tea program, and signal handling.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/2389-research/assetview/manifest"
	"github.com/2389-research/assetview/selector"
	"github.com/2389-research/assetview/tui"
	"github.com/2389-research/assetview/web"

	tea "github.com/charmbracelet/bubbletea"
)

var version = "dev"

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitInvalid = 2
)

// config holds all CLI configuration parsed from flags and positional arguments.
type config struct {
	serverMode   bool
	port         int
	tuiMode      bool
	validateOnly bool
	exportOnly   bool
	manifestURL  string
	baseURL      string
	root         string
	assetDir     string
	verbose      bool
	showVersion  bool
	manifestFile string
}

func main() {
	loadDotEnvAuto()

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(exitOK)
		}
		os.Exit(exitInvalid)
	}

	if cfg.showVersion {
		fmt.Printf("assetview %s\n", version)
		os.Exit(exitOK)
	}

	os.Exit(run(cfg, os.Stdout, os.Stderr))
}

// defaultConfig returns the configuration before flags are applied, with
// ASSETVIEW_* environment variables taking precedence over built-in defaults.
func defaultConfig() config {
	cfg := config{
		port:     2389,
		root:     manifest.DefaultRoot,
		assetDir: ".",
		baseURL:  "http://127.0.0.1:2389",
	}
	if v := os.Getenv("ASSETVIEW_MANIFEST_URL"); v != "" {
		cfg.manifestURL = v
	}
	if v := os.Getenv("ASSETVIEW_BASE_URL"); v != "" {
		cfg.baseURL = v
	}
	if v, ok := os.LookupEnv("ASSETVIEW_ROOT"); ok {
		cfg.root = v
	}
	if v := os.Getenv("ASSETVIEW_ASSETS"); v != "" {
		cfg.assetDir = v
	}
	return cfg
}

// parseFlags parses command-line arguments into a config. It returns
// flag.ErrHelp for -help and any other parse error as-is.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("assetview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&cfg.serverMode, "server", false, "Start the viewer web server")
	fs.IntVar(&cfg.port, "port", cfg.port, "Server port (default: 2389)")
	fs.BoolVar(&cfg.tuiMode, "tui", false, "Browse the manifest in the terminal")
	fs.BoolVar(&cfg.validateOnly, "validate", false, "Validate a manifest file and the files it references")
	fs.BoolVar(&cfg.exportOnly, "export", false, "Print a manifest file as YAML")
	fs.StringVar(&cfg.manifestURL, "manifest-url", cfg.manifestURL, "Full manifest URL (overrides -base-url and -root)")
	fs.StringVar(&cfg.baseURL, "base-url", cfg.baseURL, "Scheme and host the manifest is served from")
	fs.StringVar(&cfg.root, "root", cfg.root, "Path prefix of the assets directory")
	fs.StringVar(&cfg.assetDir, "assets", cfg.assetDir, "Local assets directory")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Log each request (server) or write logs to assetview-debug.log (TUI)")
	fs.BoolVar(&cfg.showVersion, "version", false, "Print version and exit")

	fs.Usage = func() {
		printHelp(stderr, version)
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if fs.NArg() > 0 {
		cfg.manifestFile = fs.Arg(0)
	}

	return cfg, nil
}

// run dispatches to the appropriate mode based on the config.
func run(cfg config, stdout, stderr io.Writer) int {
	switch {
	case cfg.serverMode:
		return runServer(cfg, stderr)
	case cfg.validateOnly:
		return validateManifest(cfg, stdout, stderr)
	case cfg.exportOnly:
		return exportManifest(cfg, stdout, stderr)
	case cfg.tuiMode:
		return runTUI(cfg, stderr)
	}

	printHelp(stderr, version)
	return exitOK
}

// resolveManifestURL returns -manifest-url if set, otherwise the location
// derived from -base-url and -root.
func resolveManifestURL(cfg config) (string, error) {
	if cfg.manifestURL != "" {
		return cfg.manifestURL, nil
	}
	return manifest.Location(cfg.baseURL, cfg.root)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// serverConfig maps CLI flags onto the web server configuration.
func serverConfig(cfg config) web.ServerConfig {
	return web.ServerConfig{
		Addr:        fmt.Sprintf("127.0.0.1:%d", cfg.port),
		Root:        cfg.root,
		AssetDir:    cfg.assetDir,
		ManifestURL: cfg.manifestURL,
		LogRequests: cfg.verbose,
	}
}

// runServer starts the viewer web server and blocks until interrupted.
func runServer(cfg config, stderr io.Writer) int {
	sc := serverConfig(cfg)
	addr := sc.Addr

	srv, err := web.NewServer(sc)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	ctx, cancel := signalContext()
	defer cancel()

	fmt.Fprintf(stderr, "assetview listening on http://%s (manifest: %s)\n", addr, srv.ManifestURL())
	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	return exitOK
}

// runTUI loads the manifest into the terminal viewer. The exit code is 1 if
// the load failed.
func runTUI(cfg config, stderr io.Writer) int {
	manifestURL, err := resolveManifestURL(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitInvalid
	}

	// Log lines would corrupt the alt screen; keep them in a file when verbose.
	if cfg.verbose {
		f, err := tea.LogToFile("assetview-debug.log", "assetview")
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitFailure
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx, cancel := signalContext()
	defer cancel()

	loader := manifest.NewLoader(manifestURL)
	model := tui.NewAppModel(ctx, loader, tui.Config{
		ManifestURL: manifestURL,
		AssetDir:    cfg.assetDir,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	if app, ok := final.(tui.AppModel); ok && app.Selector().State() == selector.StateError {
		fmt.Fprintf(stderr, "error: %v\n", app.Selector().Err())
		return exitFailure
	}
	return exitOK
}

// validateManifest checks a manifest file and the files it references.
func validateManifest(cfg config, stdout, stderr io.Writer) int {
	if cfg.manifestFile == "" {
		fmt.Fprintln(stderr, "usage: assetview -validate [-assets dir] <manifest.json>")
		return exitInvalid
	}

	report, err := manifest.Validate(cfg.manifestFile, cfg.assetDir)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitInvalid
	}

	if _, err := report.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	if !report.OK() {
		return exitInvalid
	}
	return exitOK
}

// exportManifest prints a manifest file as YAML.
func exportManifest(cfg config, stdout, stderr io.Writer) int {
	if cfg.manifestFile == "" {
		fmt.Fprintln(stderr, "usage: assetview -export <manifest.json>")
		return exitInvalid
	}

	data, err := os.ReadFile(cfg.manifestFile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}

	m, err := manifest.Decode(data, manifest.DetectFormat("", cfg.manifestFile))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitInvalid
	}

	out, err := manifest.ExportYAML(m)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	if _, err := stdout.Write(out); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitFailure
	}
	return exitOK
}
