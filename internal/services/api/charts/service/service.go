// Package service contains chart workflows
package service

import (
	"context"

	"pcaobdash/internal/adapters/render"
	"pcaobdash/internal/core/charts"
	perr "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/platform/logger"
	"pcaobdash/internal/platform/metrics"
	dashdomain "pcaobdash/internal/services/api/dashboard/domain"
	"pcaobdash/internal/services/api/charts/domain"
)

// Service defines the charts service contract
type Service interface {
	domain.ServicePort
}

// Options configures the charts service
type Options struct {
	Views    dashdomain.Recomputer
	Renderer render.Renderer
	Metrics  *metrics.Metrics
	// Surface labels recomputes in metrics, defaults to charts
	Surface string
}

// Svc implements the charts service
type Svc struct {
	views    dashdomain.Recomputer
	renderer render.Renderer
	metrics  *metrics.Metrics
	surface  string
}

// New constructs a charts service
func New(opt Options) *Svc {
	if opt.Views == nil {
		panic("charts.Service requires a non nil Recomputer")
	}
	if opt.Surface == "" {
		opt.Surface = metrics.SurfaceCharts
	}
	return &Svc{
		views:    opt.Views,
		renderer: render.New(opt.Renderer.Width, opt.Renderer.Height),
		metrics:  opt.Metrics,
		surface:  opt.Surface,
	}
}

// Specs derives every chart for the criteria in page order
func (s *Svc) Specs(ctx context.Context, in domain.SpecsInput) ([]charts.Chart, error) {
	v, err := s.views.Recompute(ctx, s.surface, in)
	if err != nil {
		return nil, err
	}
	return charts.All(v), nil
}

// Spec derives one chart; unknown ids are NotFound
func (s *Svc) Spec(ctx context.Context, id string, in domain.SpecsInput) (charts.Chart, error) {
	cid, ok := charts.Lookup(id)
	if !ok {
		return charts.Chart{}, perr.NotFoundf("chart %q not found", id)
	}
	v, err := s.views.Recompute(ctx, s.surface, in)
	if err != nil {
		return charts.Chart{}, err
	}
	return charts.Build(cid, v)
}

// PNG renders one chart; a chart without data is NoData
func (s *Svc) PNG(ctx context.Context, in domain.PNGInput) ([]byte, error) {
	theme, err := render.ParseTheme(in.Theme)
	if err != nil {
		return nil, err
	}
	c, err := s.Spec(ctx, in.ID, in.Criteria)
	if err != nil {
		return nil, err
	}
	b, err := s.renderer.PNG(c, theme)
	switch {
	case err == nil:
		s.metrics.ObserveRender(string(c.ID), metrics.ResultOK)
	case perr.IsCode(err, perr.ErrorCodeNoData):
		s.metrics.ObserveRender(string(c.ID), metrics.ResultNoData)
	default:
		s.metrics.ObserveRender(string(c.ID), metrics.ResultError)
		logger.C(ctx).Error().Err(err).Str("chart", string(c.ID)).Str("theme", string(theme)).Msg("chart render failed")
	}
	return b, err
}

// Themes lists the color themes in menu order
func (s *Svc) Themes() domain.ThemesOutput {
	return domain.ThemesOutput{Themes: render.Themes(), Default: string(render.DefaultTheme)}
}
