// ABOUTME: Help display for the assetview CLI with grouped flags, examples, and environment status.
// ABOUTME: Provides printHelp for usage output and envStatus for configuration variable detection.
package main

import (
	"fmt"
	"io"
	"os"
)

// printHelp writes a formatted help message to w, including usage patterns,
// grouped flags, examples, and environment status.
func printHelp(w io.Writer, ver string) {
	fmt.Fprintf(w, "assetview %s — manifest-driven asset viewer\n", ver)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  assetview -server [-port 2389] [-assets dir]   Serve the viewer page and the assets directory")
	fmt.Fprintln(w, "  assetview -tui [-manifest-url url]             Browse a manifest in the terminal")
	fmt.Fprintln(w, "  assetview -validate <manifest.json>            Check a manifest and the files it references")
	fmt.Fprintln(w, "  assetview -export <manifest.json>              Print a manifest as YAML")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Manifest Flags:")
	fmt.Fprintln(w, "  -manifest-url <url>   Full manifest URL (overrides -base-url and -root)")
	fmt.Fprintln(w, "  -base-url <url>       Scheme and host the manifest is served from (default: http://127.0.0.1:2389)")
	fmt.Fprintln(w, "  -root <path>          Path prefix of the assets directory (default: /Nomimi)")
	fmt.Fprintln(w, "  -assets <dir>         Local assets directory (default: .)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Server Flags:")
	fmt.Fprintln(w, "  -server               Start the viewer web server")
	fmt.Fprintln(w, "  -port <port>          Server port (default: 2389)")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -verbose              Log each request (server); write logs to assetview-debug.log (TUI)")
	fmt.Fprintln(w, "  -version              Print version and exit")
	fmt.Fprintln(w, "  -help                 Show this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  assetview -server -assets ./Nomimi/assets")
	fmt.Fprintln(w, "  assetview -tui -manifest-url https://example.com/Nomimi/assets/manifest.json")
	fmt.Fprintln(w, "  assetview -validate -assets . Nomimi/assets/manifest.json")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment:")
	for _, key := range []string{"ASSETVIEW_MANIFEST_URL", "ASSETVIEW_BASE_URL", "ASSETVIEW_ROOT", "ASSETVIEW_ASSETS"} {
		fmt.Fprintf(w, "  %-24s %s\n", key, envStatus(key))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Variables are also read from a .env file; flags take precedence.")
}

// envStatus returns "[set]" if the named environment variable is non-empty,
// or "[not set]" otherwise.
func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "[set]"
	}
	return "[not set]"
}
