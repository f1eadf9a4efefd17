package middleware

import (
	"net/http"

	"pcaobdash/internal/platform/logger"
	pnet "pcaobdash/internal/platform/net"
)

// SessionPort resolves the dashboard session a request belongs to
type SessionPort interface {
	// Resolve returns the session id for r, setting a cookie on w when a new one is minted
	Resolve(w http.ResponseWriter, r *http.Request) (string, error)
}

// Session puts the resolved session id on the request context. A nil port passes through
func Session(p SessionPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			sid, err := p.Resolve(w, r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			reqID := pnet.RequestID(r.Context())
			ctx := pnet.WithRequest(r.Context(), reqID, sid)
			ctx = logger.WithRequest(ctx, reqID, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
