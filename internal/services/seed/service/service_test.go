package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"pcaobdash/internal/core/inspection"
	perr "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/platform/testkit"
	"pcaobdash/internal/services/seed/domain"
)

type fakeWriter struct {
	prepared []string
	truncate bool
	batches  [][]inspection.Record
	failAt   int
}

func (f *fakeWriter) Target() domain.Target { return domain.TargetPostgres }

func (f *fakeWriter) Prepare(_ context.Context, table string, truncate bool) error {
	f.prepared = append(f.prepared, table)
	f.truncate = truncate
	return nil
}

func (f *fakeWriter) Write(_ context.Context, _ string, recs []inspection.Record) error {
	if f.failAt > 0 && len(f.batches)+1 == f.failAt {
		return perr.DBf("batch %d rejected", f.failAt)
	}
	f.batches = append(f.batches, recs)
	return nil
}

func dataset(n int) *inspection.Dataset {
	recs := make([]inspection.Record, n)
	for i := range recs {
		recs[i] = inspection.Record{Company: fmt.Sprintf("Firm %d", i), InspectionYear: "2020"}
	}
	return inspection.NewDataset("fixture.csv", recs, time.Now())
}

func TestPublish_Batches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		rows, size  int
		wantBatches int
	}{
		{"exact", 4, 2, 2},
		{"remainder", 5, 2, 3},
		{"default size", 3, 0, 1},
		{"empty", 0, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			w := &fakeWriter{}
			res, err := New(w).Publish(context.Background(), dataset(tc.rows),
				domain.Options{Table: "inspections", Truncate: true, BatchSize: tc.size})
			if err != nil {
				t.Fatalf("Publish: %v", err)
			}
			if res.Rows != tc.rows || res.Batches != tc.wantBatches || len(w.batches) != tc.wantBatches {
				t.Fatalf("res = %+v, writes = %d", res, len(w.batches))
			}
			if res.Target != domain.TargetPostgres || res.Source != "fixture.csv" || res.Table != "inspections" {
				t.Fatalf("res = %+v", res)
			}
			if len(w.prepared) != 1 || !w.truncate {
				t.Fatalf("prepare = %v truncate=%v", w.prepared, w.truncate)
			}
		})
	}
}

func TestPublish_KeepsInsertOrder(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	if _, err := New(w).Publish(context.Background(), dataset(3), domain.Options{Table: "t", BatchSize: 2}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if w.batches[0][0].Company != "Firm 0" || w.batches[1][0].Company != "Firm 2" {
		t.Fatalf("batches out of order: %+v", w.batches)
	}
}

func TestPublish_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := New(&fakeWriter{}).Publish(ctx, dataset(1), domain.Options{Table: "drop table;"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad table code = %v", perr.CodeOf(err))
	}

	_, err = New(&fakeWriter{}).Publish(ctx, nil, domain.Options{Table: "t"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("nil dataset code = %v", perr.CodeOf(err))
	}

	res, err := New(&fakeWriter{failAt: 2}).Publish(ctx, dataset(5), domain.Options{Table: "t", BatchSize: 2})
	if !perr.IsCode(err, perr.ErrorCodeDB) || res.Rows != 2 {
		t.Fatalf("partial: res=%+v err=%v", res, err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = New(&fakeWriter{}).Publish(cancelled, dataset(2), domain.Options{Table: "t"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled err = %v", err)
	}

	testkit.MustPanic(t, func() { New(nil) })
}
