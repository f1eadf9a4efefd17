// Package module wires charts into the API using modkit
package module

import (
	"pcaobdash/internal/adapters/render"
	modkit "pcaobdash/internal/modkit"
	"pcaobdash/internal/modkit/httpkit"
	"pcaobdash/internal/platform/net/middleware"
	chartshttp "pcaobdash/internal/services/api/charts/http"
	chartssvc "pcaobdash/internal/services/api/charts/service"
)

// DefaultRenderLimit caps concurrent chart requests when PCAOB_API_RENDER_LIMIT is unset
const DefaultRenderLimit = 4

// Module implements the charts module
type Module struct {
	b   modkit.Built
	svc chartssvc.Service
}

// New constructs the charts module
// rendering is CPU bound so the routes sit behind a concurrency throttle
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	limit := deps.Cfg.MayInt("API_RENDER_LIMIT", DefaultRenderLimit)
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("charts"),
		modkit.WithPrefix("/charts"),
		modkit.WithMiddlewares(middleware.Throttle(max(limit, 1))),
	}, opts...)...)

	injected, _ := b.Ports.(Ports)
	if injected.Views == nil {
		panic("charts module requires the dashboard Recomputer port")
	}

	return &Module{b: b, svc: chartssvc.New(chartssvc.Options{
		Views:    injected.Views,
		Renderer: render.New(injected.Width, injected.Height),
		Metrics:  deps.Metrics,
	})}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { chartshttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.ModuleName() }
