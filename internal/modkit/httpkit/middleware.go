package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	phttp "pcaobdash/internal/platform/net/http"
	"pcaobdash/internal/platform/net/middleware"
)

// CommonStack is the chain every surface mounts before its routes
func CommonStack() []func(http.Handler) http.Handler { return CommonStackCORS() }

// CommonStackCORS is CommonStack allowing cross-origin calls from origins
func CommonStackCORS(origins ...string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.LogContext,
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: 500 * time.Millisecond}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// Sessions resolves the dashboard session, answering port errors with the JSON envelope
func Sessions(p SessionPort) func(http.Handler) http.Handler {
	return middleware.Session(p, phttp.JSON)
}
