// Package inspection models PCAOB inspection report records and the loader that
// turns raw tabular rows into normalized records
package inspection

import (
	"pcaobdash/internal/core/normalize"
)

// Sentinel is the company label for firms outside a tracked global network
// It also absorbs year values that were recorded in the company column upstream
const Sentinel = "Non-Global Network Company"

// Record is one normalized inspection report row
type Record struct {
	Company                 string  `json:"company"`
	FirmName                string  `json:"firm_name"`
	Country                 string  `json:"country"`
	InspectionYear          string  `json:"inspection_year"`
	InspectionType          string  `json:"inspection_type"`
	TotalIssuerAuditClients float64 `json:"total_issuer_audit_clients"`
	AuditsReviewed          int64   `json:"audits_reviewed"`
	DeficiencyRate          float64 `json:"deficiency_rate"`
	WordCount               int64   `json:"word_count"`
	SentimentScore          float64 `json:"sentiment_score"`
	PDFLink                 string  `json:"pdf_link"`
	ReportDate              string  `json:"report_date,omitempty"`
}

// IsSentinel reports whether the record belongs to the non-global bucket
func (r Record) IsSentinel() bool { return r.Company == Sentinel }

// Column names a source column by its canonical header
type Column string

const (
	ColCompany        Column = "Company"
	ColFirmName       Column = "Inspection Report Company"
	ColCountry        Column = "Country"
	ColInspectionYear Column = "Inspection Year"
	ColInspectionType Column = "Inspection Type"
	ColClients        Column = "Total Issuer Audit Clients"
	ColAuditsReviewed Column = "Audits Reviewed"
	ColDeficiencyRate Column = "Part I.A Deficiency Rate"
	ColWordCount      Column = "word_count"
	ColSentiment      Column = "document_sentiment_score"
	ColPDFLink        Column = "pdf_link"
	ColReportDate     Column = "Inspection Report Date"
)

var allColumns = []Column{
	ColCompany,
	ColFirmName,
	ColCountry,
	ColInspectionYear,
	ColInspectionType,
	ColClients,
	ColAuditsReviewed,
	ColDeficiencyRate,
	ColWordCount,
	ColSentiment,
	ColPDFLink,
	ColReportDate,
}

// optional columns may be missing from a source entirely
var optionalColumns = map[Column]bool{
	ColClients:    true,
	ColReportDate: true,
}

var columnsByKey = func() map[string]Column {
	m := make(map[string]Column, len(allColumns))
	for _, c := range allColumns {
		m[normalize.HeaderKey(string(c))] = c
	}
	return m
}()

// Columns returns every known column in canonical order
func Columns() []Column {
	out := make([]Column, len(allColumns))
	copy(out, allColumns)
	return out
}

// Required reports whether a source must carry the column
func (c Column) Required() bool { return !optionalColumns[c] }

// LookupColumn maps a source header onto a canonical column
// Matching ignores case and treats runs of spaces, dots, dashes and underscores alike
func LookupColumn(header string) (Column, bool) {
	c, ok := columnsByKey[normalize.HeaderKey(header)]
	return c, ok
}
