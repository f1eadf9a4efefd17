package modkit

import (
	"net/http"

	"pcaobdash/internal/modkit/httpkit"
	str "pcaobdash/internal/platform/strings"
)

// Built is the resolved option set a module keeps
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
}

// Build applies opts in order, later options win
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:   c.name,
		Prefix: c.prefix,
		Mw:     append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:  c.ports,
	}
}

// ModuleName returns Name, panicking when the module was built without one
func (b Built) ModuleName() string { return str.MustString(b.Name, "module name") }

// Mount opens Prefix on r, applies Mw and hands the subrouter to register
func (b Built) Mount(r httpkit.Router, register func(httpkit.Router)) {
	r.Route(str.MustPrefix(b.Prefix), func(rr httpkit.Router) {
		for _, mw := range b.Mw {
			rr.Use(mw)
		}
		register(rr)
	})
}
