package charts

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FiveNumber summarizes a group with its extremes and empirical quartiles
func FiveNumber(label string, vals []float64) Box {
	b := Box{Label: label, N: len(vals)}
	if len(vals) == 0 {
		return b
	}
	x := slices.Clone(vals)
	slices.Sort(x)
	b.Min = x[0]
	b.Max = x[len(x)-1]
	b.Q1 = stat.Quantile(0.25, stat.Empirical, x, nil)
	b.Median = stat.Quantile(0.5, stat.Empirical, x, nil)
	b.Q3 = stat.Quantile(0.75, stat.Empirical, x, nil)
	return b
}

// BinEdges returns bins+1 evenly spaced edges over [min, max] of vals
// A degenerate span collapses to one unit-wide bin centered on the value
func BinEdges(vals []float64, bins int) []float64 {
	if len(vals) == 0 || bins < 1 {
		return nil
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	if lo == hi {
		return []float64{lo - 0.5, hi + 0.5}
	}
	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)
	return edges
}

// binOf returns the bin holding v; the last bin is closed on the right
func binOf(v float64, edges []float64) int {
	n := len(edges) - 1
	if n <= 0 {
		return 0
	}
	width := (edges[n] - edges[0]) / float64(n)
	i := int((v - edges[0]) / width)
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
