// Package repo writes normalized inspection records into postgres and clickhouse
package repo

import (
	"context"
	"strconv"
	"strings"

	"pcaobdash/internal/adapters/source/schema"
	"pcaobdash/internal/core/inspection"
	"pcaobdash/internal/modkit/repokit"
	perr "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/services/seed/domain"
)

// PG publishes into a postgres table, each call runs in its own transaction
type PG struct{ tx repokit.TxRunner }

// NewPG wraps a transaction runner
func NewPG(tx repokit.TxRunner) *PG {
	if tx == nil {
		panic("seed.repo.NewPG requires a non nil TxRunner")
	}
	return &PG{tx: tx}
}

// Target implements domain.Writer
func (*PG) Target() domain.Target { return domain.TargetPostgres }

// Prepare creates the table and optionally truncates it
func (p *PG) Prepare(ctx context.Context, table string, truncate bool) error {
	t, err := schema.Table(table)
	if err != nil {
		return err
	}
	return repokit.WithTx(ctx, p.tx, func(q repokit.Queryer) error {
		if _, err := q.Exec(ctx, schema.PGCreate(t)); err != nil {
			return perr.FromPostgresf(err, "create table %s", t)
		}
		if truncate {
			if _, err := q.Exec(ctx, "TRUNCATE TABLE "+t); err != nil {
				return perr.FromPostgresf(err, "truncate table %s", t)
			}
		}
		return nil
	})
}

// Write inserts recs with one multi row statement
func (p *PG) Write(ctx context.Context, table string, recs []inspection.Record) error {
	if len(recs) == 0 {
		return nil
	}
	t, err := schema.Table(table)
	if err != nil {
		return err
	}
	sql, args := insertSQL(t, recs)
	return repokit.WithTx(ctx, p.tx, func(q repokit.Queryer) error {
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return perr.FromPostgresf(err, "insert into %s", t)
		}
		return nil
	})
}

// insertSQL builds INSERT ... VALUES ($1..$n), ($n+1..) with args in the same order
func insertSQL(table string, recs []inspection.Record) (string, []any) {
	width := len(schema.Fields)
	args := make([]any, 0, width*len(recs))

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(table)
	b.WriteString(" (")
	b.WriteString(schema.SelectList())
	b.WriteString(") VALUES ")
	for i, r := range recs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for j := range width {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(i*width + j + 1))
		}
		b.WriteByte(')')
		args = append(args, schema.Values(r)...)
	}
	return b.String(), args
}
