// Package schema is the table layout SQL sources read and the seed command writes
package schema

import (
	"fmt"
	"regexp"
	"strings"

	"pcaobdash/internal/core/inspection"
	perr "pcaobdash/internal/platform/errors"
)

// Field is one table column and the canonical column it holds
type Field struct {
	Name   string
	Column inspection.Column
	PGType string
	CHType string
}

// Fields lists the table columns in insert order
var Fields = []Field{
	{"company", inspection.ColCompany, "text NOT NULL", "String"},
	{"inspection_report_company", inspection.ColFirmName, "text NOT NULL", "String"},
	{"country", inspection.ColCountry, "text NOT NULL", "LowCardinality(String)"},
	{"inspection_year", inspection.ColInspectionYear, "text NOT NULL", "LowCardinality(String)"},
	{"inspection_type", inspection.ColInspectionType, "text NOT NULL", "LowCardinality(String)"},
	{"total_issuer_audit_clients", inspection.ColClients, "double precision", "Nullable(Float64)"},
	{"audits_reviewed", inspection.ColAuditsReviewed, "bigint NOT NULL", "Int64"},
	{"part_i_a_deficiency_rate", inspection.ColDeficiencyRate, "double precision NOT NULL", "Float64"},
	{"word_count", inspection.ColWordCount, "bigint NOT NULL", "Int64"},
	{"document_sentiment_score", inspection.ColSentiment, "double precision NOT NULL", "Float64"},
	{"pdf_link", inspection.ColPDFLink, "text NOT NULL", "String"},
	{"inspection_report_date", inspection.ColReportDate, "text NOT NULL DEFAULT ''", "String"},
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// Table validates a table name, optionally schema qualified
func Table(name string) (string, error) {
	name = strings.TrimSpace(name)
	if !identRe.MatchString(name) {
		return "", perr.InvalidArgf("invalid table name %q", name)
	}
	return name, nil
}

// Names returns the column names in insert order
func Names() []string {
	out := make([]string, len(Fields))
	for i, f := range Fields {
		out[i] = f.Name
	}
	return out
}

// SelectList is the comma separated column list
func SelectList() string { return strings.Join(Names(), ", ") }

// PGCreate returns the postgres DDL for table
func PGCreate(table string) string {
	cols := make([]string, len(Fields))
	for i, f := range Fields {
		cols[i] = fmt.Sprintf("  %s %s", f.Name, f.PGType)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n)", table, strings.Join(cols, ",\n"))
}

// CHCreate returns the clickhouse DDL for table
func CHCreate(table string) string {
	cols := make([]string, len(Fields))
	for i, f := range Fields {
		cols[i] = fmt.Sprintf("  %s %s", f.Name, f.CHType)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n) ENGINE = MergeTree ORDER BY (company, inspection_year)",
		table, strings.Join(cols, ",\n"))
}

// Values lays out a record in insert order
// clients is never NULL after normalization
func Values(r inspection.Record) []any {
	clients := r.TotalIssuerAuditClients
	return []any{
		r.Company,
		r.FirmName,
		r.Country,
		r.InspectionYear,
		r.InspectionType,
		&clients,
		r.AuditsReviewed,
		r.DeficiencyRate,
		r.WordCount,
		r.SentimentScore,
		r.PDFLink,
		r.ReportDate,
	}
}
