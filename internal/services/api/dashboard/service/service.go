// Package service contains dashboard workflows
package service

import (
	"context"
	"time"

	"pcaobdash/internal/core/inspection"
	"pcaobdash/internal/core/pipeline"
	perr "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/platform/metrics"
	"pcaobdash/internal/services/api/dashboard/domain"
)

// Service defines the dashboard service contract
type Service interface {
	domain.ServicePort
	domain.Recomputer
}

// Svc implements the dashboard service over the shared dataset snapshot
type Svc struct {
	data    *inspection.Dataset
	metrics *metrics.Metrics
	now     func() time.Time
}

// New constructs a dashboard service; m may be nil
func New(data *inspection.Dataset, m *metrics.Metrics) *Svc {
	if data == nil {
		panic("dashboard.Service requires a non nil Dataset")
	}
	return &Svc{data: data, metrics: m, now: time.Now}
}

// View filters the dataset with ready-made criteria
func (s *Svc) View(ctx context.Context, in domain.ViewInput) (pipeline.View, error) {
	return s.Recompute(ctx, metrics.SurfaceAPI, in)
}

// Options resolves a selection without computing its view
func (s *Svc) Options(ctx context.Context, in domain.SelectionInput) (domain.OptionsOutput, error) {
	if err := ctx.Err(); err != nil {
		return domain.OptionsOutput{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "options canceled")
	}
	if err := pipeline.ValidateSelection(in); err != nil {
		return domain.OptionsOutput{}, err
	}
	c, opts := pipeline.Resolve(s.data.Records(), in)
	return domain.OptionsOutput{Criteria: c, Available: opts.Available, Bounds: opts.Bounds}, nil
}

// Resolve turns a selection into criteria and computes the matching view
func (s *Svc) Resolve(ctx context.Context, in domain.SelectionInput) (domain.ResolveOutput, error) {
	return s.ResolveFor(ctx, metrics.SurfaceAPI, in)
}

// ResolveFor is Resolve on behalf of another surface
func (s *Svc) ResolveFor(ctx context.Context, surface string, in domain.SelectionInput) (domain.ResolveOutput, error) {
	opts, err := s.Options(ctx, in)
	if err != nil {
		return domain.ResolveOutput{}, err
	}
	v, err := s.Recompute(ctx, surface, opts.Criteria)
	if err != nil {
		return domain.ResolveOutput{}, err
	}
	out := domain.ResolveOutput{OptionsOutput: opts, View: v}
	if v.Empty() && !in.IncludeSentinel {
		out.Hint = domain.EmptyHint
	}
	return out, nil
}

// Recompute runs one filter and aggregate pass and records it against surface
func (s *Svc) Recompute(ctx context.Context, surface string, c pipeline.Criteria) (pipeline.View, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.View{}, perr.Wrap(err, perr.ErrorCodeUnavailable, "recompute canceled")
	}
	start := s.now()
	v := pipeline.Apply(s.data.Records(), c)
	s.metrics.ObserveRecompute(surface, s.now().Sub(start))
	return v, nil
}
