// Package module wires exports into the API using modkit
package module

import (
	modkit "pcaobdash/internal/modkit"
	"pcaobdash/internal/modkit/httpkit"
	"pcaobdash/internal/platform/net/middleware"
	exporthttp "pcaobdash/internal/services/api/export/http"
	exportsvc "pcaobdash/internal/services/api/export/service"
)

// Module implements the export module
type Module struct {
	b   modkit.Built
	svc exportsvc.Service
}

// New constructs the export module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("export"),
		modkit.WithPrefix("/export"),
		modkit.WithMiddlewares(middleware.AllowContentType("application/json")),
	}, opts...)...)

	injected, _ := b.Ports.(Ports)
	if injected.Views == nil {
		panic("export module requires the dashboard Recomputer port")
	}
	return &Module{b: b, svc: exportsvc.New(injected.Views)}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { exporthttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.ModuleName() }
