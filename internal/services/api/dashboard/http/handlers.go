// Package http provides http transport for the dashboard
package http

import (
	stdhttp "net/http"

	"pcaobdash/internal/modkit/httpkit"
	"pcaobdash/internal/services/api/dashboard/domain"
	svc "pcaobdash/internal/services/api/dashboard/service"
)

// Register mounts dashboard endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// criteria in, view out
	httpkit.PostJSON[domain.ViewInput](r, "/view", h.view)

	// sidebar state in, options and bounds out
	httpkit.PostJSON[domain.SelectionInput](r, "/options", h.options)

	// both in one round trip
	httpkit.PostJSON[domain.SelectionInput](r, "/resolve", h.resolve)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /dashboard/view Dashboard dashboardView
// @Summary Filter the dataset and aggregate what remains
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.ViewInput true "Criteria"
// @Success 200 {object} pipeline.View "ok"
// @Router /dashboard/view [post]
func (h *handlers) view(r *stdhttp.Request, in domain.ViewInput) (any, error) {
	return h.svc.View(r.Context(), in)
}

// swagger:route POST /dashboard/options Dashboard dashboardOptions
// @Summary Options, bounds and resolved criteria for a sidebar selection
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.SelectionInput true "Selection"
// @Success 200 {object} domain.OptionsOutput "ok"
// @Router /dashboard/options [post]
func (h *handlers) options(r *stdhttp.Request, in domain.SelectionInput) (any, error) {
	return h.svc.Options(r.Context(), in)
}

// swagger:route POST /dashboard/resolve Dashboard dashboardResolve
// @Summary Resolve a sidebar selection and compute its view
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param payload body domain.SelectionInput true "Selection"
// @Success 200 {object} domain.ResolveOutput "ok"
// @Router /dashboard/resolve [post]
func (h *handlers) resolve(r *stdhttp.Request, in domain.SelectionInput) (any, error) {
	return h.svc.Resolve(r.Context(), in)
}
