package repokit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pcaobdash/internal/platform/testkit"
)

// recQ records every statement it sees
type recQ struct {
	sqls []string
	args [][]any
	err  error
}

func (r *recQ) Exec(_ context.Context, sql string, args ...any) (CommandTag, error) {
	r.sqls = append(r.sqls, sql)
	r.args = append(r.args, args)
	return nil, r.err
}

func (r *recQ) Query(_ context.Context, sql string, _ ...any) (Rows, error) {
	r.sqls = append(r.sqls, sql)
	return nil, r.err
}

func (r *recQ) QueryRow(_ context.Context, sql string, _ ...any) Row {
	r.sqls = append(r.sqls, sql)
	return nil
}

// recTx hands its own recQ to fn, beginErr fails the transaction before fn
type recTx struct {
	recQ
	txs      int
	beginErr error
}

func (r *recTx) Tx(_ context.Context, fn func(Queryer) error) error {
	r.txs++
	if r.beginErr != nil {
		return r.beginErr
	}
	return fn(&r.recQ)
}

func TestWithBeginHooks_ReadOnlyAndTimeoutBeforeRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	inner := &recTx{}
	tx := WithBeginHooks(inner, ReadOnlyHook(), StatementTimeoutHook(1500*time.Millisecond))

	err := WithTx(ctx, tx, func(q Queryer) error {
		_, err := q.Query(ctx, "SELECT company FROM pcaob_inspections")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if inner.txs != 1 || len(inner.sqls) != 3 {
		t.Fatalf("txs=%d sqls=%q", inner.txs, inner.sqls)
	}
	testkit.MustContain(t, inner.sqls[0], "READ ONLY")
	testkit.MustContain(t, inner.sqls[1], "statement_timeout")
	if inner.args[1][0] != "1500" {
		t.Fatalf("timeout arg = %v", inner.args[1])
	}
	testkit.MustContain(t, inner.sqls[2], "pcaob_inspections")

	// outside a transaction statements skip the hooks
	if _, err := tx.Exec(ctx, "SELECT 1"); err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if inner.sqls[3] != "SELECT 1" {
		t.Fatalf("sqls = %q", inner.sqls)
	}
}

func TestWithBeginHooks_FailingHookSkipsFn(t *testing.T) {
	t.Parallel()

	inner := &recTx{recQ: recQ{err: errors.New("cannot set transaction read-only")}}
	tx := WithBeginHooks(inner, ReadOnlyHook())

	var ran bool
	err := WithTx(context.Background(), tx, func(Queryer) error { ran = true; return nil })
	if err == nil || ran {
		t.Fatalf("err=%v ran=%v", err, ran)
	}

	// a zero timeout adds no statement
	quiet := &recTx{}
	if err := WithTx(context.Background(), WithBeginHooks(quiet, StatementTimeoutHook(0)), func(Queryer) error { return nil }); err != nil {
		t.Fatalf("WithTx: %v", err)
	}
	if len(quiet.sqls) != 0 {
		t.Fatalf("sqls = %q", quiet.sqls)
	}
}

func TestWithTx_PropagatesErrors(t *testing.T) {
	t.Parallel()

	begin := errors.New("too many connections")
	if err := WithTx(context.Background(), &recTx{beginErr: begin}, func(Queryer) error { return nil }); !errors.Is(err, begin) {
		t.Fatalf("begin err = %v", err)
	}
	abort := errors.New("batch rejected")
	if err := WithTx(context.Background(), &recTx{}, func(Queryer) error { return abort }); !errors.Is(err, abort) {
		t.Fatalf("fn err = %v", err)
	}
}

type guardFn func(context.Context) error

func (g guardFn) Guard(ctx context.Context) error { return g(ctx) }

func TestMustGuard(t *testing.T) {
	t.Parallel()

	MustGuard(context.Background(), guardFn(func(context.Context) error { return nil }))

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !strings.Contains(err.Error(), "dependency guard failed: pg: refused") {
			t.Fatalf("recovered %v", r)
		}
	}()
	MustGuard(context.Background(), guardFn(func(context.Context) error { return errors.New("pg: refused") }))
}
