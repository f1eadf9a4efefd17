package pipeline

import (
	"pcaobdash/internal/core/inspection"
)

// SentinelScope drops sentinel-company records unless include is set
func SentinelScope(records []inspection.Record, include bool) []inspection.Record {
	out := make([]inspection.Record, 0, len(records))
	for _, r := range records {
		if !include && r.IsSentinel() {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterCategory keeps records whose dimension value is in selected
// An empty selection keeps every record
func FilterCategory(records []inspection.Record, d Dimension, selected []string) []inspection.Record {
	out := make([]inspection.Record, 0, len(records))
	if len(selected) == 0 {
		return append(out, records...)
	}
	accept := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		accept[s] = struct{}{}
	}
	for _, r := range records {
		if _, ok := accept[d.Value(r)]; ok {
			out = append(out, r)
		}
	}
	return out
}

// FilterRange keeps records whose measure lies inside the inclusive range
func FilterRange(records []inspection.Record, m Measure, rng *Range) []inspection.Record {
	out := make([]inspection.Record, 0, len(records))
	for _, r := range records {
		if rng.Contains(m.Value(r)) {
			out = append(out, r)
		}
	}
	return out
}

// Filter runs every filter stage in order and returns the surviving records
// sentinel scope, then categorical stages, then numeric stages
func Filter(records []inspection.Record, c Criteria) []inspection.Record {
	rows := SentinelScope(records, c.IncludeSentinel)
	for _, d := range dimensions {
		rows = FilterCategory(rows, d, c.Selected(d))
	}
	for _, m := range measures {
		rows = FilterRange(rows, m, c.RangeOf(m))
	}
	return rows
}

// Apply filters records by c and aggregates the survivors
func Apply(records []inspection.Record, c Criteria) View {
	return summarize(Filter(records, c), len(records))
}
