package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pcaobdash/internal/platform/config"
	phttp "pcaobdash/internal/platform/net/http"
	"pcaobdash/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

const miniDoc = `{
  "swagger": "2.0",
  "info": {"title": "PCAOB Inspection Dashboard API"},
  "paths": {
    "/dashboard/view": {
      "post": {"responses": {"200": {"description": "OK"}, "400": {"description": "custom"}}}
    },
    "/charts/{id}.png": {
      "parameters": [{"name": "id"}],
      "get": {}
    }
  }
}`

func fetchDoc(t *testing.T, h http.Handler) (int, map[string]any) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	var spec map[string]any
	if rr.Code == http.StatusOK {
		if err := json.Unmarshal(rr.Body.Bytes(), &spec); err != nil {
			t.Fatalf("doc is not json: %v", err)
		}
	}
	return rr.Code, spec
}

func responses(spec map[string]any, path, verb string) map[string]any {
	paths := spec["paths"].(map[string]any)
	return paths[path].(map[string]any)[verb].(map[string]any)["responses"].(map[string]any)
}

func TestServeDocJSON_FillsErrorResponses(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return miniDoc })
	t.Setenv("PCAOB_API_DOCS_TITLE_SUFFIX", "(staging)")

	code, spec := fetchDoc(t, serveDocJSON(config.New().Prefix("PCAOB_API_")))
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if spec["openapi"] != "3.0.3" || spec["swagger"] != nil {
		t.Fatalf("version not normalized: %v / %v", spec["openapi"], spec["swagger"])
	}
	if title := spec["info"].(map[string]any)["title"]; title != "PCAOB Inspection Dashboard API (staging)" {
		t.Fatalf("title = %v", title)
	}
	servers := spec["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}
	schemas := spec["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse schema missing")
	}

	view := responses(spec, "/dashboard/view", "post")
	if view["400"].(map[string]any)["description"] != "custom" {
		t.Fatalf("annotated 400 overwritten: %v", view["400"])
	}
	if view["500"] == nil {
		t.Fatalf("500 not added")
	}

	png := responses(spec, "/charts/{id}.png", "get")
	ex := png["400"].(map[string]any)["content"].(map[string]any)["application/json"].(map[string]any)["example"].(map[string]any)
	if ex["error"] != "max must be at least min" || ex["status"] != "Bad Request" {
		t.Fatalf("400 example = %v", ex)
	}
}

func TestServeDocJSON_KeepsOAS30(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return `{"openapi":"3.0.1","servers":[{"url":"/x"}]}` })

	_, spec := fetchDoc(t, serveDocJSON(config.New()))
	if spec["openapi"] != "3.0.1" {
		t.Fatalf("openapi = %v", spec["openapi"])
	}
	if spec["servers"].([]any)[0].(map[string]any)["url"] != "/x" {
		t.Fatalf("servers replaced: %v", spec["servers"])
	}
}

func TestServeDocJSON_BadDoc(t *testing.T) {
	testkit.Swap(t, &docReader, func() string { return "{" })

	if code, _ := fetchDoc(t, serveDocJSON(config.New())); code != http.StatusInternalServerError {
		t.Fatalf("status = %d", code)
	}
}

func TestMount_Toggle(t *testing.T) {
	t.Parallel()

	for _, enabled := range []bool{false, true} {
		r := phttp.AdaptChi(chi.NewRouter())
		Mount(r, enabled)

		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
		want := http.StatusNotFound
		if enabled {
			want = http.StatusPermanentRedirect
		}
		if rr.Code != want {
			t.Fatalf("enabled=%v status = %d, want %d", enabled, rr.Code, want)
		}
	}
}
