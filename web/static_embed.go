// ABOUTME: Embeds web/static/ CSS for serving via the viewer HTTP server.
// ABOUTME: Uses an explicit subdirectory glob because //go:embed static/* does not recurse.
package web

import "embed"

//go:embed static/css/*.css
var StaticFS embed.FS
