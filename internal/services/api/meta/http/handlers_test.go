package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pcaobdash/internal/core/inspection"
	phttp "pcaobdash/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, d Deps, path string) (int, json.RawMessage) {
	t.Helper()
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, d)
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	return rr.Code, env.Data
}

func TestReady_Rollup(t *testing.T) {
	t.Parallel()

	loaded := inspection.NewDataset("test", []inspection.Record{{Company: "BDO"}}, time.Now())
	empty := inspection.NewDataset("test", nil, time.Now())
	cases := []struct {
		name   string
		ds     *inspection.Dataset
		pg, ch any
		want   string
	}{
		{"only the dataset", loaded, nil, nil, "ok"},
		{"pg up", loaded, pinger{}, nil, "ok"},
		{"ch without ping", loaded, nil, struct{}{}, "degraded"},
		{"empty dataset", empty, pinger{}, nil, "degraded"},
		{"pg down", loaded, pinger{errors.New("connection refused")}, struct{}{}, "fail"},
		{"no dataset", nil, pinger{}, nil, "fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, data := get(t, Deps{Dataset: tc.ds, PG: tc.pg, CH: tc.ch}, "/ready")
			var out ReadyResponse
			if err := json.Unmarshal(data, &out); err != nil || code != stdhttp.StatusOK {
				t.Fatalf("code=%d err=%v", code, err)
			}
			if out.Status != tc.want || len(out.Checks) != 3 || out.Checks[0].Name != "dataset" {
				t.Fatalf("ready = %+v, want %s", out, tc.want)
			}
		})
	}
}

func TestDataset(t *testing.T) {
	t.Parallel()

	loaded := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	ds := inspection.NewDataset("csv:pcaob_data.csv", []inspection.Record{{Company: "BDO"}, {Company: "RSM"}}, loaded)
	code, data := get(t, Deps{Dataset: ds}, "/dataset")
	var out DatasetResponse
	if err := json.Unmarshal(data, &out); err != nil || code != stdhttp.StatusOK {
		t.Fatalf("code=%d err=%v", code, err)
	}
	if out.Source != "csv:pcaob_data.csv" || out.Rows != 2 || out.LoadedAt == nil || !out.LoadedAt.Equal(loaded) {
		t.Fatalf("dataset = %+v", out)
	}

	if code, _ := get(t, Deps{}, "/dataset"); code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("no dataset status = %d", code)
	}
}

func TestServiceUptime(t *testing.T) {
	t.Parallel()

	d := Deps{ServiceName: "pcaob-dashboard", StartedAt: time.Now().Add(-90 * time.Second)}
	_, data := get(t, d, "/service")
	var out ServiceResponse
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Name != "pcaob-dashboard" || out.Uptime < 90 {
		t.Fatalf("service = %+v", out)
	}

	_, data = get(t, d, "/health")
	var h HealthResponse
	if err := json.Unmarshal(data, &h); err != nil || !h.OK {
		t.Fatalf("health = %+v %v", h, err)
	}
}
