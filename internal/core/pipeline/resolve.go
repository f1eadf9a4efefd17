package pipeline

import (
	"math"
	"slices"

	"pcaobdash/internal/core/inspection"
)

// Selection is the per-session UI state behind the sidebar
// It is kept apart from the option lists so a search never silently rewrites the user's choice
type Selection struct {
	// Search holds the free-text box per dimension
	Search map[Dimension]string `json:"search,omitempty"`
	// Chosen holds explicit picks; a missing dimension means untouched
	Chosen map[Dimension][]string `json:"chosen,omitempty"`
	// Ranges holds explicit slider positions; a missing measure means the full live domain
	Ranges          map[Measure]Range `json:"ranges,omitempty"`
	IncludeSentinel bool              `json:"include_sentinel"`
	Theme           string            `json:"theme,omitempty"`
}

// Bounds holds the live slider domain of every measure
type Bounds struct {
	// Empty is set when the scoped population has no records, leaving every domain undefined
	Empty  bool              `json:"empty"`
	Ranges map[Measure]Range `json:"ranges"`
}

// Options is what the sidebar offers for the current Selection
type Options struct {
	Available map[Dimension][]string `json:"available"`
	Bounds    Bounds                 `json:"bounds"`
}

// Available lists the options per dimension after text search
// Inspection type, year and country draw on every record; company and firm
// draw on the sentinel-scoped records so a hidden sentinel is never offered
func Available(records []inspection.Record, sel Selection) map[Dimension][]string {
	scoped := SentinelScope(records, sel.IncludeSentinel)
	out := make(map[Dimension][]string, len(dimensions))
	for _, d := range dimensions {
		pop := records
		if d.Scoped() {
			pop = scoped
		}
		out[d] = Narrow(Distinct(pop, d), SearchTerms(sel.Search[d]))
	}
	return out
}

// ComputeBounds derives slider domains from records
// clients [0, max]; audits reviewed and word count [min, max] as whole numbers;
// deficiency [min, max]; sentiment rounded outward to 2dp
func ComputeBounds(records []inspection.Record) Bounds {
	b := Bounds{Ranges: make(map[Measure]Range, len(measures))}
	if len(records) == 0 {
		b.Empty = true
		return b
	}
	for _, m := range measures {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, r := range records {
			v := m.Value(r)
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
		switch m {
		case MeasureClients:
			lo = 0
		case MeasureSentiment:
			lo = math.Floor(inspection.Round3(lo*100)) / 100
			hi = math.Ceil(inspection.Round3(hi*100)) / 100
		}
		b.Ranges[m] = Range{Min: lo, Max: hi}
	}
	return b
}

// Resolve turns UI state into Criteria and the options the sidebar should show
// Each selected set defaults to the available options; an explicit choice is
// intersected with them and falls back to them when nothing survives
// Ranges default to the live bounds and explicit ranges are clamped into them
func Resolve(records []inspection.Record, sel Selection) (Criteria, Options) {
	opts := Options{
		Available: Available(records, sel),
		Bounds:    ComputeBounds(SentinelScope(records, sel.IncludeSentinel)),
	}

	c := Criteria{IncludeSentinel: sel.IncludeSentinel}
	for _, d := range dimensions {
		avail := opts.Available[d]
		chosen, touched := sel.Chosen[d]
		picked := avail
		if touched {
			if in := intersect(avail, chosen); len(in) > 0 {
				picked = in
			}
		}
		c.SetSelected(d, append([]string(nil), picked...))
	}

	if opts.Bounds.Empty {
		return c, opts
	}
	for _, m := range measures {
		b := opts.Bounds.Ranges[m]
		r := b
		if user, ok := sel.Ranges[m]; ok {
			r = clamp(user, b)
		}
		c.SetRange(m, &r)
	}
	return c, opts
}

// intersect keeps the members of avail that are also in chosen, preserving avail order
func intersect(avail, chosen []string) []string {
	var out []string
	for _, a := range avail {
		if slices.Contains(chosen, a) {
			out = append(out, a)
		}
	}
	return out
}

// clamp pulls both ends of r into b
func clamp(r, b Range) Range {
	lo, hi := r.Min, r.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	lo = math.Min(math.Max(lo, b.Min), b.Max)
	hi = math.Min(math.Max(hi, b.Min), b.Max)
	return Range{Min: lo, Max: hi}
}
