// Package module wires the dashboard into the API using modkit
package module

import (
	modkit "pcaobdash/internal/modkit"
	"pcaobdash/internal/modkit/httpkit"
	"pcaobdash/internal/platform/net/middleware"
	dashhttp "pcaobdash/internal/services/api/dashboard/http"
	dashsvc "pcaobdash/internal/services/api/dashboard/service"
)

// Module implements the dashboard module
type Module struct {
	b   modkit.Built
	svc dashsvc.Service
}

// New constructs the dashboard module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("dashboard"),
		modkit.WithPrefix("/dashboard"),
		modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
	}, opts...)...)
	return &Module{b: b, svc: dashsvc.New(deps.Dataset, deps.Metrics)}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { dashhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.ModuleName() }
