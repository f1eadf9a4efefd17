package httpkit

import (
	"net/http"

	perrs "pcaobdash/internal/platform/errors"
	pnet "pcaobdash/internal/platform/net"
)

// Session returns the dashboard session id from the request context
func Session(r *http.Request) (string, error) {
	sid := pnet.SessionID(r.Context())
	if sid == "" {
		return "", perrs.InvalidArgf("missing dashboard session")
	}
	return sid, nil
}

// MustSession returns the dashboard session id or panics
// only use on routes mounted with Sessioned
func MustSession(r *http.Request) string {
	sid, err := Session(r)
	if err != nil {
		panic(err)
	}
	return sid
}

// Sessioned groups routes under the session middleware
func Sessioned(r Router, p SessionPort, fn func(Router)) {
	r.Group(func(gr Router) {
		gr.Use(Sessions(p))
		fn(gr)
	})
}
