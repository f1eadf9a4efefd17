// Package chtable reads the inspection dataset from a clickhouse table
package chtable

import (
	"context"

	"pcaobdash/internal/adapters/source/schema"
	"pcaobdash/internal/core/inspection"
	perr "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/platform/store"
)

// Source selects the schema columns from one table
type Source struct {
	ch    store.Clickhouse
	table string
}

var _ inspection.Source = (*Source)(nil)

// New validates table and binds the source to ch
func New(ch store.Clickhouse, table string) (*Source, error) {
	if ch == nil {
		return nil, perr.Unavailablef("chtable: clickhouse is not configured")
	}
	t, err := schema.Table(table)
	if err != nil {
		return nil, err
	}
	return &Source{ch: ch, table: t}, nil
}

// Name implements inspection.Source
func (s *Source) Name() string { return "clickhouse:" + s.table }

// Rows implements inspection.Source
// the native driver needs typed destinations so every column is scanned into its own type
func (s *Source) Rows(ctx context.Context) ([]inspection.RawRow, error) {
	rows, err := s.ch.Query(ctx, "SELECT "+schema.SelectList()+" FROM "+s.table)
	if err != nil {
		return nil, perr.FromClickhousef(err, "read %s", s.table)
	}
	defer rows.Close()

	var out []inspection.RawRow
	for rows.Next() {
		if len(out)%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "clickhouse read canceled")
			}
		}
		var (
			company, firm, country, year, typ, link, date string
			clients                                       *float64
			audits, words                                 int64
			rate, sentiment                               float64
		)
		if err := rows.Scan(&company, &firm, &country, &year, &typ, &clients, &audits, &rate, &words, &sentiment, &link, &date); err != nil {
			return nil, perr.FromClickhousef(err, "scan %s", s.table)
		}
		out = append(out, inspection.RawRow{
			inspection.ColCompany:        inspection.Text(company),
			inspection.ColFirmName:       inspection.Text(firm),
			inspection.ColCountry:        inspection.Text(country),
			inspection.ColInspectionYear: inspection.Text(year),
			inspection.ColInspectionType: inspection.Text(typ),
			inspection.ColClients:        inspection.FromAny(clients),
			inspection.ColAuditsReviewed: inspection.Number(float64(audits)),
			inspection.ColDeficiencyRate: inspection.Number(rate),
			inspection.ColWordCount:      inspection.Number(float64(words)),
			inspection.ColSentiment:      inspection.Number(sentiment),
			inspection.ColPDFLink:        inspection.Text(link),
			inspection.ColReportDate:     inspection.Text(date),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, perr.FromClickhousef(err, "iterate %s", s.table)
	}
	return out, nil
}
