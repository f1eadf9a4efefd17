// Package pgtable reads the inspection dataset from a postgres table
package pgtable

import (
	"context"
	"time"

	"pcaobdash/internal/adapters/source/schema"
	"pcaobdash/internal/core/inspection"
	"pcaobdash/internal/modkit/repokit"
	perr "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/platform/store"
)

// Source selects the schema columns from one table inside a read only tx
type Source struct {
	tx    repokit.TxRunner
	table string
}

var _ inspection.Source = (*Source)(nil)

// New validates table and binds the source to tx
// timeout caps the select; zero leaves the server default
func New(tx repokit.TxRunner, table string, timeout time.Duration) (*Source, error) {
	if tx == nil {
		return nil, perr.Unavailablef("pgtable: postgres is not configured")
	}
	t, err := schema.Table(table)
	if err != nil {
		return nil, err
	}
	hooks := []repokit.BeginHook{repokit.ReadOnlyHook()}
	if timeout > 0 {
		hooks = append(hooks, repokit.StatementTimeoutHook(timeout))
	}
	return &Source{tx: repokit.WithBeginHooks(tx, hooks...), table: t}, nil
}

// Name implements inspection.Source
func (s *Source) Name() string { return "postgres:" + s.table }

// Rows implements inspection.Source
func (s *Source) Rows(ctx context.Context) ([]inspection.RawRow, error) {
	var maps []map[string]any
	err := s.tx.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		maps, err = store.Maps(ctx, q, "SELECT "+schema.SelectList()+" FROM "+s.table)
		return err
	})
	if err != nil {
		return nil, perr.FromPostgresf(err, "read %s", s.table)
	}
	out := make([]inspection.RawRow, len(maps))
	for i, m := range maps {
		out[i] = inspection.FromMap(m)
	}
	return out, nil
}
