// Package middleware adapts chi and go-chi/cors middleware to plain net/http signatures
package middleware

import (
	"net/http"
	"time"

	pstrings "pcaobdash/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// RequestID attaches or propagates X-Request-ID
func RequestID() func(http.Handler) http.Handler { return chimw.RequestID }

// RealIP sets RemoteAddr from X-Forwarded-For and X-Real-IP
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// NoCache marks every response uncacheable, views follow the session not the URL
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// Compress compresses text responses at level; PNG and xlsx bodies pass through
func Compress(level int) func(http.Handler) http.Handler {
	c := chimw.NewCompressor(level)
	return c.Handler
}

func RedirectSlashes() func(http.Handler) http.Handler { return chimw.RedirectSlashes }
func StripSlashes() func(http.Handler) http.Handler    { return chimw.StripSlashes }

// AllowContentType answers 415 to bodies of any other type
func AllowContentType(ct ...string) func(http.Handler) http.Handler {
	return chimw.AllowContentType(ct...)
}

// Throttle bounds concurrent requests, extra ones get 429
func Throttle(limit int) func(http.Handler) http.Handler { return chimw.Throttle(limit) }

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAge         int
}

// CORS fills unset lists with what the dashboard API needs
// no origins means no CORS headers at all, browsers then keep calls same-origin
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	if len(o.AllowedOrigins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders: pstrings.IfEmpty(o.ExposedHeaders, []string{"Content-Disposition", "X-Request-ID"}),
		MaxAge:         o.MaxAge,
	})
}
