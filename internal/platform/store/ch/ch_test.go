package ch

import (
	"context"
	"errors"
	"testing"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

type fakeBatch struct {
	driver.Batch
	rows      [][]any
	appendErr error
	sent      bool
	aborted   bool
}

func (b *fakeBatch) Append(v ...any) error {
	if b.appendErr != nil {
		return b.appendErr
	}
	b.rows = append(b.rows, v)
	return nil
}
func (b *fakeBatch) Send() error  { b.sent = true; return nil }
func (b *fakeBatch) Abort() error { b.aborted = true; return nil }

type fakeRows struct {
	driver.Rows
	n int
}

func (r *fakeRows) Next() bool             { r.n++; return r.n == 1 }
func (r *fakeRows) Scan(dest ...any) error { *(dest[0].(*string)) = "Deloitte"; return nil }
func (r *fakeRows) Err() error             { return nil }
func (r *fakeRows) Close() error           { return nil }
func (r *fakeRows) Columns() []string      { return []string{"Company"} }

type fakeConn struct {
	batch    *fakeBatch
	query    string
	execs    []string
	pingErr  error
	closed   bool
	batchErr error
}

func (f *fakeConn) PrepareBatch(_ context.Context, q string, _ ...driver.PrepareBatchOption) (driver.Batch, error) {
	f.query = q
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	return f.batch, nil
}

func (f *fakeConn) Query(_ context.Context, q string, _ ...any) (driver.Rows, error) {
	f.query = q
	return &fakeRows{}, nil
}

func (f *fakeConn) Exec(_ context.Context, q string, _ ...any) error {
	f.execs = append(f.execs, q)
	return nil
}

func (f *fakeConn) Ping(context.Context) error { return f.pingErr }
func (f *fakeConn) Close() error               { f.closed = true; return nil }

func TestOpen_BadDSN(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), Config{URL: "://bad"}); err == nil {
		t.Fatalf("expected parse error for bad dsn")
	}
}

func TestOpen_LazyPool(t *testing.T) {
	t.Parallel()

	// open does not dial, so an unreachable address still yields a client
	cl, err := Open(context.Background(), Config{URL: "clickhouse://127.0.0.1:1/default", Role: "dashboard", Tag: "test"})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if cl == nil {
		t.Fatalf("Open returned nil client")
	}
	_ = cl.Close()
}

func TestInsert_BatchesRows(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{batch: &fakeBatch{}}
	cl := New(fc)
	rows := [][]any{
		{"Deloitte", "2019"},
		{"KPMG", "2020"},
	}
	if err := cl.Insert(context.Background(), "inspections", rows); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if fc.query != "INSERT INTO inspections" {
		t.Fatalf("unexpected batch query %q", fc.query)
	}
	if len(fc.batch.rows) != 2 || !fc.batch.sent {
		t.Fatalf("batch not sent with two rows: %+v", fc.batch)
	}
}

func TestInsert_EmptyIsNoop(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{}
	if err := New(fc).Insert(context.Background(), "inspections", nil); err != nil {
		t.Fatalf("empty insert should be a no-op, got %v", err)
	}
	if fc.query != "" {
		t.Fatalf("no batch should be prepared for empty insert")
	}
}

func TestInsert_AppendErrorAborts(t *testing.T) {
	t.Parallel()

	boom := errors.New("column count mismatch")
	fc := &fakeConn{batch: &fakeBatch{appendErr: boom}}
	err := New(fc).Insert(context.Background(), "inspections", [][]any{{"x"}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected append error, got %v", err)
	}
	if !fc.batch.aborted || fc.batch.sent {
		t.Fatalf("batch should be aborted and not sent")
	}
}

func TestInsert_PrepareError(t *testing.T) {
	t.Parallel()

	boom := errors.New("table missing")
	fc := &fakeConn{batchErr: boom}
	if err := New(fc).Insert(context.Background(), "nope", [][]any{{1}}); !errors.Is(err, boom) {
		t.Fatalf("expected prepare error, got %v", err)
	}
}

func TestQuery_ExecPingClose(t *testing.T) {
	t.Parallel()

	fc := &fakeConn{}
	cl := New(fc)

	rows, err := cl.Query(context.Background(), "SELECT Company FROM inspections")
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	if cols := rows.Columns(); len(cols) != 1 || cols[0] != "Company" {
		t.Fatalf("columns = %v", cols)
	}
	var company string
	if !rows.Next() {
		t.Fatalf("expected one row")
	}
	if err := rows.Scan(&company); err != nil || company != "Deloitte" {
		t.Fatalf("scan = %q, %v", company, err)
	}
	_ = rows.Close()

	if err := cl.Exec(context.Background(), "TRUNCATE TABLE inspections"); err != nil {
		t.Fatalf("Exec returned error: %v", err)
	}
	if len(fc.execs) != 1 {
		t.Fatalf("exec not forwarded")
	}
	if err := cl.Ping(context.Background()); err != nil {
		t.Fatalf("Ping returned error: %v", err)
	}
	if err := cl.Close(); err != nil || !fc.closed {
		t.Fatalf("Close not forwarded")
	}
}

func TestNilClient(t *testing.T) {
	t.Parallel()

	var cl *CH
	if err := cl.Insert(context.Background(), "t", [][]any{{1}}); err == nil {
		t.Fatalf("expected error on nil client insert")
	}
	if _, err := cl.Query(context.Background(), "SELECT 1"); err == nil {
		t.Fatalf("expected error on nil client query")
	}
	if err := cl.Ping(context.Background()); err == nil {
		t.Fatalf("expected error on nil client ping")
	}
	if err := cl.Close(); err != nil {
		t.Fatalf("Close on nil client should be a no-op")
	}
}

func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	info := BuildClientInfo("seed", " v1 ")
	if len(info.Products) < 2 {
		t.Fatalf("expected products, got %+v", info.Products)
	}
	if info.Products[0].Name != "pcaobdash" || info.Products[0].Version != "v1" {
		t.Fatalf("unexpected first product %+v", info.Products[0])
	}
	if info.Products[1].Name != "role" || info.Products[1].Version != "seed" {
		t.Fatalf("unexpected role product %+v", info.Products[1])
	}
}
