package module

import (
	"context"

	"pcaobdash/internal/core/pipeline"
	"pcaobdash/internal/services/api/dashboard/domain"
	dashsvc "pcaobdash/internal/services/api/dashboard/service"
)

// Ports is the port set other modules pull from the dashboard
type Ports struct {
	Recomputer domain.Recomputer
}

// Ports returns the module ports
func (m *Module) Ports() any { return Ports{Recomputer: adaptRecomputer{svc: m.svc}} }

type adaptRecomputer struct{ svc dashsvc.Service }

// Recompute filters and aggregates on behalf of surface
func (a adaptRecomputer) Recompute(ctx context.Context, surface string, c pipeline.Criteria) (pipeline.View, error) {
	return a.svc.Recompute(ctx, surface, c)
}

// Options resolves a selection without a recompute
func (a adaptRecomputer) Options(ctx context.Context, sel pipeline.Selection) (domain.OptionsOutput, error) {
	return a.svc.Options(ctx, sel)
}

// ResolveFor resolves a selection on behalf of surface
func (a adaptRecomputer) ResolveFor(ctx context.Context, surface string, sel pipeline.Selection) (domain.ResolveOutput, error) {
	return a.svc.ResolveFor(ctx, surface, sel)
}
