package domain

import (
	"context"

	"pcaobdash/internal/core/pipeline"
)

// ServicePort is consumed by handlers
type ServicePort interface {
	View(ctx context.Context, in ViewInput) (pipeline.View, error)
	Options(ctx context.Context, in SelectionInput) (OptionsOutput, error)
	Resolve(ctx context.Context, in SelectionInput) (ResolveOutput, error)
}

// Recomputer runs one filter and aggregate pass on behalf of another surface
// it is the port the charts, export and web modules consume
type Recomputer interface {
	Recompute(ctx context.Context, surface string, c pipeline.Criteria) (pipeline.View, error)
	Options(ctx context.Context, sel pipeline.Selection) (OptionsOutput, error)
	ResolveFor(ctx context.Context, surface string, sel pipeline.Selection) (ResolveOutput, error)
}
