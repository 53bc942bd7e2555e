// ABOUTME: Access log middleware for the viewer server, enabled with -verbose.
// ABOUTME: Each viewer line carries the selector load ID so it joins up with the selector's own log lines.
package web

import (
	"log"
	"net/http"
	"time"
)

// LoadIDHeader is the response header carrying the ID of the selector that
// rendered a viewer page.
const LoadIDHeader = "X-Assetview-Load"

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		load := rec.Header().Get(LoadIDHeader)
		if load == "" {
			load = "-"
		}
		log.Printf("web request load=%s method=%s path=%s asset=%q status=%d bytes=%d duration=%s",
			load,
			r.Method,
			r.URL.Path,
			r.URL.Query().Get("asset"),
			status,
			rec.bytes,
			time.Since(start).Round(time.Microsecond),
		)
	})
}
