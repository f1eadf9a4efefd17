// Package httpkit provides tiny HTTP helpers and adapters
package httpkit

import (
	"net/http"
	"strings"

	perrs "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/platform/net/middleware"

	"github.com/google/uuid"
)

// SessionPort is the middleware seam, re-exported so modules need not import middleware
type SessionPort = middleware.SessionPort

// MintFunc returns a fresh session id, it must produce uuids
type MintFunc func() string

// CookiePort implements SessionPort by reading a named cookie and minting one when absent
type CookiePort struct {
	name   string
	mint   MintFunc
	secure bool
}

// NewCookiePort builds a CookiePort. mint defaults to uuid.NewString
func NewCookiePort(name string, secure bool, mint MintFunc) *CookiePort {
	if mint == nil {
		mint = uuid.NewString
	}
	return &CookiePort{name: name, mint: mint, secure: secure}
}

// Resolve returns the id held in the cookie
// a missing or garbled cookie is replaced with a freshly minted id
func (p *CookiePort) Resolve(w http.ResponseWriter, r *http.Request) (string, error) {
	if p == nil || p.name == "" || p.mint == nil {
		return "", perrs.Internalf("session cookie not configured")
	}
	if c, err := r.Cookie(p.name); err == nil {
		if id, err := uuid.Parse(strings.TrimSpace(c.Value)); err == nil {
			return id.String(), nil
		}
	}

	id, err := uuid.Parse(p.mint())
	if err != nil {
		return "", perrs.Wrap(err, perrs.ErrorCodeUnknown, "mint session id")
	}
	sid := id.String()
	http.SetCookie(w, &http.Cookie{
		Name:     p.name,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sid, nil
}
