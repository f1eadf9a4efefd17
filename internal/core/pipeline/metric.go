package pipeline

import (
	"encoding/json"
	"strconv"

	"pcaobdash/internal/core/inspection"
)

// NoDataText is what a scorecard shows when nothing matched
const NoDataText = "No data available"

// Metric is a scalar summary with an explicit no-data marker
// A zero total over matched rows is data; a total over no rows is not
type Metric struct {
	value  float64
	ok     bool
	places int    // display rounding; -1 trims to 3dp
	text   string // display decoded from the wire, if any
}

// sumMetric totals over n rows
func sumMetric(total float64, n int) Metric {
	if n == 0 {
		return Metric{}
	}
	return Metric{value: total, ok: true, places: -1}
}

// meanMetric averages over n rows
func meanMetric(total float64, n int) Metric {
	if n == 0 {
		return Metric{}
	}
	return Metric{value: total / float64(n), ok: true, places: 2}
}

// Value returns the number and whether there is one
func (m Metric) Value() (float64, bool) { return m.value, m.ok }

// NoData reports whether the metric was computed over zero rows
func (m Metric) NoData() bool { return !m.ok }

// Display renders the scorecard text; averages round to 2dp
func (m Metric) Display() string {
	if !m.ok {
		return NoDataText
	}
	if m.text != "" {
		return m.text
	}
	v := inspection.Round3(m.value)
	if m.places == 2 {
		v = inspection.Round2(m.value)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type metricWire struct {
	Value  *float64 `json:"value"`
	NoData bool     `json:"no_data"`
	Disp   string   `json:"display"`
}

// MarshalJSON encodes {"value": n|null, "no_data": bool, "display": text}
func (m Metric) MarshalJSON() ([]byte, error) {
	w := metricWire{NoData: !m.ok, Disp: m.Display()}
	if m.ok {
		v := m.value
		w.Value = &v
	}
	return json.Marshal(w)
}

// UnmarshalJSON restores a metric from its wire form
func (m *Metric) UnmarshalJSON(b []byte) error {
	var w metricWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*m = Metric{places: -1}
	if w.Value != nil && !w.NoData {
		m.value, m.ok, m.text = *w.Value, true, w.Disp
	}
	return nil
}
