package store

import (
	"context"
	"errors"
	"testing"

	"pcaobdash/internal/platform/store/ch"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

type adBatch struct {
	driver.Batch
	n int
}

func (b *adBatch) Append(...any) error { b.n++; return nil }
func (b *adBatch) Send() error         { return nil }
func (b *adBatch) Abort() error        { return nil }

type adRows struct {
	driver.Rows
	closed bool
}

func (r *adRows) Next() bool        { return false }
func (r *adRows) Scan(...any) error { return nil }
func (r *adRows) Err() error        { return nil }
func (r *adRows) Close() error      { r.closed = true; return nil }
func (r *adRows) Columns() []string { return []string{"company"} }

type adConn struct {
	batch   *adBatch
	rows    *adRows
	execs   int
	pingErr error
}

func (c *adConn) PrepareBatch(context.Context, string, ...driver.PrepareBatchOption) (driver.Batch, error) {
	return c.batch, nil
}
func (c *adConn) Query(context.Context, string, ...any) (driver.Rows, error) { return c.rows, nil }
func (c *adConn) Exec(context.Context, string, ...any) error                 { c.execs++; return nil }
func (c *adConn) Ping(context.Context) error                                 { return c.pingErr }
func (c *adConn) Close() error                                               { return nil }

func TestCHAdapter_InsertShape(t *testing.T) {
	t.Parallel()

	conn := &adConn{batch: &adBatch{}}
	a := newCHAdapter(ch.New(conn))

	if err := a.Insert(context.Background(), "inspections", struct{}{}); err == nil {
		t.Fatalf("expected error for unsupported insert shape")
	}
	if err := a.Insert(context.Background(), "inspections", [][]any{{"a"}, {"b"}}); err != nil {
		t.Fatalf("Insert err: %v", err)
	}
	if conn.batch.n != 2 {
		t.Fatalf("appended %d rows, want 2", conn.batch.n)
	}
}

func TestCHAdapter_QueryExecPing(t *testing.T) {
	t.Parallel()

	conn := &adConn{rows: &adRows{}, pingErr: errors.New("down")}
	a := newCHAdapter(ch.New(conn))

	rows, err := a.Query(context.Background(), "SELECT company FROM inspections")
	if err != nil {
		t.Fatalf("Query err: %v", err)
	}
	if cols := rows.Columns(); len(cols) != 1 || cols[0] != "company" {
		t.Fatalf("columns = %v", cols)
	}
	rows.Close()
	if !conn.rows.closed {
		t.Fatalf("Close not forwarded to driver rows")
	}

	if err := a.Exec(context.Background(), "TRUNCATE TABLE inspections"); err != nil || conn.execs != 1 {
		t.Fatalf("Exec not forwarded: %v", err)
	}

	p, ok := a.(Pinger)
	if !ok {
		t.Fatalf("adapter should be a Pinger")
	}
	if err := p.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error from driver")
	}
	var nilAdapter *clickhouseAdapter
	if err := nilAdapter.Ping(context.Background()); err == nil {
		t.Fatalf("expected error on nil adapter ping")
	}
}
