package store

import (
	"context"
	"strconv"
	"time"
)

// ReadOnly marks the current transaction read only
// must run before the first query in the tx
func ReadOnly(ctx context.Context, q RowQuerier) error {
	_, err := q.Exec(ctx, "SET TRANSACTION READ ONLY")
	return err
}

// StatementTimeout caps every statement in the current transaction
// d <= 0 leaves the server default in place
func StatementTimeout(ctx context.Context, q RowQuerier, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	ms := strconv.FormatInt(d.Milliseconds(), 10)
	_, err := q.Exec(ctx, "SELECT set_config('statement_timeout', $1, true)", ms)
	return err
}
