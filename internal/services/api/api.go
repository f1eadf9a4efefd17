// Package api provides the HTTP API for the application
package api

import (
	"pcaobdash/internal/core/inspection"
	"pcaobdash/internal/platform/config"
	"pcaobdash/internal/platform/logger"
	"pcaobdash/internal/platform/metrics"
	phttp "pcaobdash/internal/platform/net/http"
	"pcaobdash/internal/platform/store"

	"pcaobdash/internal/modkit"
	"pcaobdash/internal/modkit/httpkit"
	"pcaobdash/internal/modkit/module"
	"pcaobdash/internal/modkit/swaggerkit"

	chartsmod "pcaobdash/internal/services/api/charts/module"
	dashmod "pcaobdash/internal/services/api/dashboard/module"
	exportmod "pcaobdash/internal/services/api/export/module"
	metamod "pcaobdash/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config  config.Conf
	Store   *store.Store
	Logger  *logger.Logger
	Dataset *inspection.Dataset
	Metrics *metrics.Metrics

	EnableSwagger  bool
	EnableProfiler bool
	CORSOrigins    []string

	// chart image size, zero means the renderer default
	ChartWidth  int
	ChartHeight int
}

// Mount mounts the API service onto the given router
// module ports are registered by module name so the web page can reuse the services
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Dataset: opt.Dataset,
		Metrics: opt.Metrics,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}
	if opt.Store != nil {
		if opt.Store.PG != nil {
			deps.PG = opt.Store.PG
		}
		if opt.Store.CH != nil {
			deps.CH = opt.Store.CH
		}
	}

	// the dashboard owns the recompute, charts and export consume its port
	dashboard := dashmod.New(deps)
	views := module.MustPortsOf[dashmod.Ports](dashboard).Recomputer

	mods := []module.Module{
		metamod.New(deps),
		dashboard,
		chartsmod.New(deps, modkit.WithPorts(chartsmod.Ports{
			Views:  views,
			Width:  opt.ChartWidth,
			Height: opt.ChartHeight,
		})),
		exportmod.New(deps, modkit.WithPorts(exportmod.Ports{Views: views})),
	}

	r.Handle("/metrics", opt.Metrics.Handler())

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStackCORS(opt.CORSOrigins...), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// ports are registered under the module name for the web page
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
			deps.Log.Debug().Str("module", m.Name()).Msg("module mounted")
		}
	})
}
