// Package domain holds DTOs for dashboard http and service contracts
package domain

import "pcaobdash/internal/core/pipeline"

// ViewInput is the resolved filter bundle; every dimension and range is optional
type ViewInput = pipeline.Criteria

// SelectionInput is the sidebar state as the page holds it
type SelectionInput = pipeline.Selection

// OptionsOutput is what the sidebar should offer for a selection
type OptionsOutput struct {
	Criteria  pipeline.Criteria               `json:"criteria"`
	Available map[pipeline.Dimension][]string `json:"available"`
	Bounds    pipeline.Bounds                 `json:"bounds"`
}

// ResolveOutput carries the resolved selection and its view in one payload
type ResolveOutput struct {
	OptionsOutput
	View pipeline.View `json:"view"`
	// Hint is set when nothing matched while the sentinel bucket is hidden
	Hint string `json:"hint,omitempty" example:"Try clicking Show Non-Global Network Companies"`
}

// EmptyHint nudges the user toward the sentinel toggle when a view comes back empty
const EmptyHint = "Try clicking Show Non-Global Network Companies"
