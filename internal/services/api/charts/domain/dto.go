// Package domain holds DTOs for chart http and service contracts
package domain

import (
	"context"

	"pcaobdash/internal/core/charts"
	"pcaobdash/internal/core/pipeline"
)

// SpecsInput is the criteria every chart is derived from
type SpecsInput = pipeline.Criteria

// PNGInput asks for one chart image
type PNGInput struct {
	ID       string            `json:"id" example:"sentiment-heatmap"`
	Theme    string            `json:"theme,omitempty" example:"viridis"`
	Criteria pipeline.Criteria `json:"criteria"`
}

// ThemesOutput lists the color themes a chart can be drawn in
type ThemesOutput struct {
	Themes  []string `json:"themes" example:"viridis,cividis"`
	Default string   `json:"default" example:"viridis"`
}

// ServicePort is consumed by handlers and the web page
type ServicePort interface {
	Specs(ctx context.Context, in SpecsInput) ([]charts.Chart, error)
	Spec(ctx context.Context, id string, in SpecsInput) (charts.Chart, error)
	PNG(ctx context.Context, in PNGInput) ([]byte, error)
	Themes() ThemesOutput
}
