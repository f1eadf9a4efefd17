// Package http provides http transport for charts
package http

import (
	stdhttp "net/http"
	"strings"

	"pcaobdash/internal/core/pipeline"
	"pcaobdash/internal/modkit/httpkit"
	perr "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/services/api/charts/domain"
	svc "pcaobdash/internal/services/api/charts/service"
)

// Register mounts chart endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// every spec for the criteria
	httpkit.PostJSON[domain.SpecsInput](r, "/", h.specs)

	httpkit.Get(r, "/themes", h.themes)

	// one spec as json
	httpkit.PostJSON[domain.SpecsInput](r, "/{id}", h.spec)

	// {id}.png shares the node with the spec route, criteria ride in the query
	httpkit.Get(r, "/{id}", h.png)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /charts Charts chartsSpecs
// @Summary Every chart spec for the criteria, in page order
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.SpecsInput true "Criteria"
// @Success 200 {array} charts.Chart "ok"
// @Router /charts [post]
func (h *handlers) specs(r *stdhttp.Request, in domain.SpecsInput) (any, error) {
	return h.svc.Specs(r.Context(), in)
}

// swagger:route GET /charts/themes Charts chartsThemes
// @Summary Color themes charts can be drawn in
// @Tags Charts
// @Produce json
// @Success 200 {object} domain.ThemesOutput "ok"
// @Router /charts/themes [get]
func (h *handlers) themes(_ *stdhttp.Request) (any, error) {
	return h.svc.Themes(), nil
}

// swagger:route POST /charts/{id} Charts chartsSpec
// @Summary One chart spec
// @Tags Charts
// @Accept json
// @Produce json
// @Param id path string true "Chart id" example(sentiment-heatmap)
// @Param payload body domain.SpecsInput true "Criteria"
// @Success 200 {object} charts.Chart "ok"
// @Failure 404 {object} ErrorResponse "unknown chart"
// @Router /charts/{id} [post]
func (h *handlers) spec(r *stdhttp.Request, in domain.SpecsInput) (any, error) {
	return h.svc.Spec(r.Context(), httpkit.Param(r, "id"), in)
}

// swagger:route GET /charts/{id}.png Charts chartsPNG
// @Summary One chart as a PNG image
// @Tags Charts
// @Produce png
// @Param id path string true "Chart id" example(sentiment-box)
// @Param theme query string false "Color theme" example(viridis)
// @Success 200 {file} binary "image"
// @Failure 404 {object} ErrorResponse "unknown chart or no data"
// @Router /charts/{id}.png [get]
func (h *handlers) png(r *stdhttp.Request) (any, error) {
	id, ok := strings.CutSuffix(httpkit.Param(r, "id"), ".png")
	if !ok {
		return nil, perr.NotFoundf("chart images end in .png")
	}
	q := r.URL.Query()
	c, err := pipeline.ParseCriteria(q)
	if err != nil {
		return nil, err
	}
	b, err := h.svc.PNG(r.Context(), domain.PNGInput{ID: id, Theme: q.Get(pipeline.FieldTheme), Criteria: c})
	if err != nil {
		return nil, err
	}
	return httpkit.Blob("image/png", b), nil
}
