package repo

import (
	"context"

	"pcaobdash/internal/adapters/source/schema"
	"pcaobdash/internal/core/inspection"
	"pcaobdash/internal/modkit/repokit"
	perr "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/services/seed/domain"
)

// CH publishes into a clickhouse MergeTree table with batch inserts
type CH struct{ ch repokit.Clickhouse }

// NewCH wraps the clickhouse seam
func NewCH(ch repokit.Clickhouse) *CH {
	if ch == nil {
		panic("seed.repo.NewCH requires a non nil Clickhouse")
	}
	return &CH{ch: ch}
}

// Target implements domain.Writer
func (*CH) Target() domain.Target { return domain.TargetClickhouse }

// Prepare creates the table and optionally truncates it
func (c *CH) Prepare(ctx context.Context, table string, truncate bool) error {
	t, err := schema.Table(table)
	if err != nil {
		return err
	}
	if err := c.ch.Exec(ctx, schema.CHCreate(t)); err != nil {
		return perr.FromClickhousef(err, "create table %s", t)
	}
	if truncate {
		if err := c.ch.Exec(ctx, "TRUNCATE TABLE IF EXISTS "+t); err != nil {
			return perr.FromClickhousef(err, "truncate table %s", t)
		}
	}
	return nil
}

// Write appends recs as one batch
func (c *CH) Write(ctx context.Context, table string, recs []inspection.Record) error {
	if len(recs) == 0 {
		return nil
	}
	t, err := schema.Table(table)
	if err != nil {
		return err
	}
	rows := make([][]any, len(recs))
	for i, r := range recs {
		rows[i] = schema.Values(r)
	}
	if err := c.ch.Insert(ctx, t, rows); err != nil {
		return perr.FromClickhousef(err, "insert into %s", t)
	}
	return nil
}
