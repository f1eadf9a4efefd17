// Package pipeline filters the inspection dataset and summarizes what remains
//
// Every stage takes an input slice and returns a new one; the base dataset is never
// modified, so the same Criteria over the same records always yields the same View
package pipeline

import (
	"pcaobdash/internal/core/inspection"
)

// Dimension is a categorical filter, ordered as the sidebar shows them
type Dimension string

const (
	DimInspectionType Dimension = "inspection_type"
	DimYear           Dimension = "year"
	DimCountry        Dimension = "country"
	DimCompany        Dimension = "company"
	DimFirm           Dimension = "firm"
)

var dimensions = []Dimension{DimInspectionType, DimYear, DimCountry, DimCompany, DimFirm}

// Dimensions returns every categorical dimension in filter order
func Dimensions() []Dimension { return append([]Dimension(nil), dimensions...) }

// Valid reports whether d names a known dimension
func (d Dimension) Valid() bool {
	for _, x := range dimensions {
		if x == d {
			return true
		}
	}
	return false
}

// Value returns the record field the dimension filters on
func (d Dimension) Value(r inspection.Record) string {
	switch d {
	case DimInspectionType:
		return r.InspectionType
	case DimYear:
		return r.InspectionYear
	case DimCountry:
		return r.Country
	case DimCompany:
		return r.Company
	case DimFirm:
		return r.FirmName
	}
	return ""
}

// Scoped reports whether the dimension's options come from the sentinel-scoped population
func (d Dimension) Scoped() bool { return d == DimCompany || d == DimFirm }

// Measure is a numeric range filter
type Measure string

const (
	MeasureClients        Measure = "clients"
	MeasureAuditsReviewed Measure = "audits_reviewed"
	MeasureDeficiencyRate Measure = "deficiency_rate"
	MeasureWordCount      Measure = "word_count"
	MeasureSentiment      Measure = "sentiment"
)

var measures = []Measure{MeasureClients, MeasureAuditsReviewed, MeasureDeficiencyRate, MeasureWordCount, MeasureSentiment}

// Measures returns every numeric dimension in filter order
func Measures() []Measure { return append([]Measure(nil), measures...) }

// Valid reports whether m names a known measure
func (m Measure) Valid() bool {
	for _, x := range measures {
		if x == m {
			return true
		}
	}
	return false
}

// Value returns the record field the measure filters on
func (m Measure) Value(r inspection.Record) float64 {
	switch m {
	case MeasureClients:
		return r.TotalIssuerAuditClients
	case MeasureAuditsReviewed:
		return float64(r.AuditsReviewed)
	case MeasureDeficiencyRate:
		return r.DeficiencyRate
	case MeasureWordCount:
		return float64(r.WordCount)
	case MeasureSentiment:
		return r.SentimentScore
	}
	return 0
}

// Range is an inclusive numeric interval
// A collapsed range (Min == Max) matches exactly that value
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max" validate:"gtefield=Min"`
}

// Contains reports lo <= v <= hi; a nil range contains everything
func (r *Range) Contains(v float64) bool {
	if r == nil {
		return true
	}
	return v >= r.Min && v <= r.Max
}

// Criteria is the resolved filter bundle applied to the dataset
// An empty selected set means the dimension is not filtered; a nil range is unbounded
type Criteria struct {
	InspectionTypes []string `json:"inspection_types,omitempty" validate:"omitempty,dive,max=256"`
	Years           []string `json:"years,omitempty" validate:"omitempty,dive,max=16"`
	Countries       []string `json:"countries,omitempty" validate:"omitempty,dive,max=256"`
	Companies       []string `json:"companies,omitempty" validate:"omitempty,dive,max=256"`
	Firms           []string `json:"firms,omitempty" validate:"omitempty,dive,max=512"`

	Clients        *Range `json:"clients,omitempty"`
	AuditsReviewed *Range `json:"audits_reviewed,omitempty"`
	DeficiencyRate *Range `json:"deficiency_rate,omitempty"`
	WordCount      *Range `json:"word_count,omitempty"`
	Sentiment      *Range `json:"sentiment,omitempty"`

	IncludeSentinel bool `json:"include_sentinel"`
}

// Selected returns the accepted set for a dimension
func (c Criteria) Selected(d Dimension) []string {
	switch d {
	case DimInspectionType:
		return c.InspectionTypes
	case DimYear:
		return c.Years
	case DimCountry:
		return c.Countries
	case DimCompany:
		return c.Companies
	case DimFirm:
		return c.Firms
	}
	return nil
}

// SetSelected replaces the accepted set for a dimension
func (c *Criteria) SetSelected(d Dimension, vals []string) {
	switch d {
	case DimInspectionType:
		c.InspectionTypes = vals
	case DimYear:
		c.Years = vals
	case DimCountry:
		c.Countries = vals
	case DimCompany:
		c.Companies = vals
	case DimFirm:
		c.Firms = vals
	}
}

// RangeOf returns the range for a measure, nil when unbounded
func (c Criteria) RangeOf(m Measure) *Range {
	switch m {
	case MeasureClients:
		return c.Clients
	case MeasureAuditsReviewed:
		return c.AuditsReviewed
	case MeasureDeficiencyRate:
		return c.DeficiencyRate
	case MeasureWordCount:
		return c.WordCount
	case MeasureSentiment:
		return c.Sentiment
	}
	return nil
}

// SetRange replaces the range for a measure
func (c *Criteria) SetRange(m Measure, r *Range) {
	switch m {
	case MeasureClients:
		c.Clients = r
	case MeasureAuditsReviewed:
		c.AuditsReviewed = r
	case MeasureDeficiencyRate:
		c.DeficiencyRate = r
	case MeasureWordCount:
		c.WordCount = r
	case MeasureSentiment:
		c.Sentiment = r
	}
}
