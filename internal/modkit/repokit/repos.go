// Package repokit provides the store seams and transaction helpers repositories are written against
package repokit

import (
	"context"

	"pcaobdash/internal/platform/store"
)

type (
	// Queryer is the statement surface inside and outside a transaction
	Queryer = store.RowQuerier
	// TxRunner can run a function inside a transaction
	TxRunner = store.TxRunner
	// Clickhouse is the columnar seam the clickhouse reader and writer use
	Clickhouse = store.Clickhouse

	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)

// WithTx runs fn inside a transaction on tx
func WithTx(ctx context.Context, tx TxRunner, fn func(q Queryer) error) error {
	return tx.Tx(ctx, fn)
}
