// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "pcaobdash/internal/modkit"
	"pcaobdash/internal/modkit/httpkit"

	metahttp "pcaobdash/internal/services/api/meta/http"
)

// ServiceName is reported by the health and service probes
const ServiceName = "pcaob-dashboard"

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	deps      modkit.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("meta"), modkit.WithPrefix("/meta")}, opts...)...)
	return &Module{b: b, deps: deps, startedAt: time.Now()}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   m.startedAt,
			PG:          m.deps.PG,
			CH:          m.deps.CH,
			Dataset:     m.deps.Dataset,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.b.ModuleName() }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
