package pipeline

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	perr "pcaobdash/internal/platform/errors"
)

// Field names shared by the page form and the chart query string
// dimensions and measures use their own names, ranges add _min and _max
const (
	FieldIncludeSentinel = "include_sentinel"
	FieldTheme           = "theme"
	FieldReset           = "reset"

	searchPrefix = "search_"
	minSuffix    = "_min"
	maxSuffix    = "_max"

	// the page echoes the options count of each multi-select
	offeredSuffix = "_offered"
	// the page echoes the bounds it rendered so an untouched slider stays untouched
	floorSuffix = "_floor"
	ceilSuffix  = "_ceil"
)

// SearchField names the free-text box of a dimension
func SearchField(d Dimension) string { return searchPrefix + string(d) }

// OfferedField names the echoed count of options a multi-select offered
func OfferedField(d Dimension) string { return string(d) + offeredSuffix }

// MinField names the lower end of a measure range
func MinField(m Measure) string { return string(m) + minSuffix }

// MaxField names the upper end of a measure range
func MaxField(m Measure) string { return string(m) + maxSuffix }

// FloorField names the rendered lower bound of a measure
func FloorField(m Measure) string { return string(m) + floorSuffix }

// CeilField names the rendered upper bound of a measure
func CeilField(m Measure) string { return string(m) + ceilSuffix }

// ParseCriteria reads Criteria from query values
// a missing dimension is unfiltered and a missing range end is open
func ParseCriteria(q url.Values) (Criteria, error) {
	c := Criteria{IncludeSentinel: flag(q.Get(FieldIncludeSentinel))}
	for _, d := range dimensions {
		if vals := values(q, string(d)); len(vals) > 0 {
			c.SetSelected(d, vals)
		}
	}
	for _, m := range measures {
		lo, hasLo, err := number(q, MinField(m))
		if err != nil {
			return Criteria{}, err
		}
		hi, hasHi, err := number(q, MaxField(m))
		if err != nil {
			return Criteria{}, err
		}
		if !hasLo && !hasHi {
			continue
		}
		if !hasLo {
			lo = math.Inf(-1)
		}
		if !hasHi {
			hi = math.Inf(1)
		}
		if lo > hi {
			return Criteria{}, perr.WithField(perr.InvalidArgf("%s must not exceed %s", MinField(m), MaxField(m)), string(m))
		}
		c.SetRange(m, &Range{Min: lo, Max: hi})
	}
	return c, nil
}

// EncodeCriteria is the inverse of ParseCriteria; open range ends are left out
func EncodeCriteria(c Criteria) url.Values {
	q := url.Values{}
	if c.IncludeSentinel {
		q.Set(FieldIncludeSentinel, "1")
	}
	for _, d := range dimensions {
		for _, v := range c.Selected(d) {
			q.Add(string(d), v)
		}
	}
	for _, m := range measures {
		r := c.RangeOf(m)
		if r == nil {
			continue
		}
		if !math.IsInf(r.Min, 0) {
			q.Set(MinField(m), strconv.FormatFloat(r.Min, 'f', -1, 64))
		}
		if !math.IsInf(r.Max, 0) {
			q.Set(MaxField(m), strconv.FormatFloat(r.Max, 'f', -1, 64))
		}
	}
	return q
}

// ParseSelection reads the page form into a Selection
// a range equal to the bounds the page rendered, or a multi-select with every
// offered option picked, is treated as untouched so it follows the live options
// when other filters change them
func ParseSelection(form url.Values) (Selection, error) {
	sel := Selection{
		Search:          map[Dimension]string{},
		Chosen:          map[Dimension][]string{},
		Ranges:          map[Measure]Range{},
		IncludeSentinel: flag(form.Get(FieldIncludeSentinel)),
		Theme:           strings.TrimSpace(form.Get(FieldTheme)),
	}
	for _, d := range dimensions {
		if s := strings.TrimSpace(form.Get(SearchField(d))); s != "" {
			sel.Search[d] = s
		}
		vals := values(form, string(d))
		if len(vals) == 0 {
			continue
		}
		if n, ok, _ := number(form, OfferedField(d)); ok && int(n) == len(vals) {
			continue
		}
		sel.Chosen[d] = vals
	}
	for _, m := range measures {
		lo, hasLo, err := number(form, MinField(m))
		if err != nil {
			return Selection{}, err
		}
		hi, hasHi, err := number(form, MaxField(m))
		if err != nil {
			return Selection{}, err
		}
		if !hasLo || !hasHi {
			continue
		}
		floor, hasFloor, _ := number(form, FloorField(m))
		ceil, hasCeil, _ := number(form, CeilField(m))
		if hasFloor && hasCeil && same(lo, floor) && same(hi, ceil) {
			continue
		}
		sel.Ranges[m] = Range{Min: lo, Max: hi}
	}
	return sel, nil
}

// ValidateSelection rejects unknown dimension or measure keys and inverted ranges
func ValidateSelection(sel Selection) error {
	for d := range sel.Search {
		if !d.Valid() {
			return perr.WithField(perr.InvalidArgf("unknown dimension %q", d), "search")
		}
	}
	for d := range sel.Chosen {
		if !d.Valid() {
			return perr.WithField(perr.InvalidArgf("unknown dimension %q", d), "chosen")
		}
	}
	for m, r := range sel.Ranges {
		if !m.Valid() {
			return perr.WithField(perr.InvalidArgf("unknown measure %q", m), "ranges")
		}
		if r.Min > r.Max {
			return perr.WithField(perr.InvalidArgf("%s max must be at least min", m), string(m))
		}
	}
	return nil
}

// values returns the non-blank values of a repeated key
// labels may carry commas so values are never split
func values(q url.Values, key string) []string {
	var out []string
	for _, v := range q[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func number(q url.Values, key string) (float64, bool, error) {
	s := strings.TrimSpace(q.Get(key))
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false, perr.WithField(perr.InvalidArgf("%s is not a number", key), key)
	}
	return v, true, nil
}

func flag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// same compares with a tolerance wide enough for values echoed through a form
func same(a, b float64) bool { return math.Abs(a-b) <= 1e-9*math.Max(1, math.Abs(b)) }
