package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pcaobdash/internal/platform/config"
	pnet "pcaobdash/internal/platform/net"
	phttp "pcaobdash/internal/platform/net/http"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid, ""))
}

func TestNewServer_DefaultsAndMux(t *testing.T) {
	srv := phttp.NewServer(config.New()) // no env, should default to :4000
	if srv.Addr() == "" {
		t.Fatalf("expected non-empty addr")
	}
	r := srv.Router()
	if r == nil || r.Mux() == nil {
		t.Fatalf("router or mux is nil")
	}

	// simple route
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	r.Mux().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("bad response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestHandle_ThroughRouter(t *testing.T) {
	r := phttp.NewServer(config.New()).Router()
	r.Get("/meta/dataset", phttp.Handle(func(*http.Request) phttp.Response {
		return phttp.OK(map[string]any{"rows": 4})
	}))

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, reqWithReqID("GET", "/meta/dataset", "rid-data-classic"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.StatusCode != http.StatusOK || env.RequestID != "rid-data-classic" {
		t.Fatalf("bad envelope: %+v", env)
	}
	m, ok := env.Data.(map[string]any)
	if !ok || m["rows"] != float64(4) {
		t.Fatalf("expected data map with rows=4, got %#v", env.Data)
	}
}
