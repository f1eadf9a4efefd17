package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// tag returns middleware that appends name to X-Chain
func tag(name string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Add("X-Chain", name)
			next.ServeHTTP(w, req)
		})
	}
}

func text(s string) Handler {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte(s)) }
}

func TestAdaptChi_MiddlewareScopes(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Use(tag("root"))
	r.Get("/", text("page"))
	r.Group(func(g Router) {
		g.Use(tag("session"))
		g.Get("/export/{format}", text("export"))
		g.Group(func(n Router) { n.Get("/charts/{id}", text("chart")) })
	})
	r.Route("/api/v1", func(api Router) {
		api.Use(tag("api"))
		api.Post("/dashboard/view", text("view"))
		api.Route("/meta", func(m Router) { m.Get("/dataset", text("meta")) })
	})

	cases := []struct {
		method, path, body string
		chain              []string
	}{
		{stdhttp.MethodGet, "/", "page", []string{"root"}},
		{stdhttp.MethodGet, "/export/csv", "export", []string{"root", "session"}},
		{stdhttp.MethodGet, "/charts/sentiment-box.png", "chart", []string{"root", "session"}},
		{stdhttp.MethodPost, "/api/v1/dashboard/view", "view", []string{"root", "api"}},
		{stdhttp.MethodGet, "/api/v1/meta/dataset", "meta", []string{"root", "api"}},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != 200 || rec.Body.String() != tc.body {
			t.Fatalf("%s %s => %d %q", tc.method, tc.path, rec.Code, rec.Body.String())
		}
		got := rec.Header().Values("X-Chain")
		if len(got) != len(tc.chain) {
			t.Fatalf("%s chain = %v, want %v", tc.path, got, tc.chain)
		}
		for i := range got {
			if got[i] != tc.chain[i] {
				t.Fatalf("%s chain = %v, want %v", tc.path, got, tc.chain)
			}
		}
	}
}

func TestAdaptChi_VerbsAndHandle(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Post("/api/v1/dashboard/view", text("view"))
	r.Group(func(g Router) {
		g.Handle("/metrics", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			_, _ = w.Write([]byte("# HELP"))
		}))
		if g.Mux() == nil {
			t.Fatalf("group Mux() returned nil")
		}
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/api/v1/dashboard/view", nil))
	if rec.Code != stdhttp.StatusMethodNotAllowed {
		t.Fatalf("GET on a POST route => %d, want 405", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/metrics", nil))
	if rec.Code != 200 || rec.Body.String() != "# HELP" {
		t.Fatalf("GET /metrics => %d %q", rec.Code, rec.Body.String())
	}
}

func TestParam_FromPattern(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Route("/charts", func(sub Router) {
		sub.Get("/{id}.png", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			_, _ = w.Write([]byte(Param(req, "id") + "|" + Param(req, "missing")))
		})
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/charts/sentiment-box.png", nil))
	if rec.Code != 200 || rec.Body.String() != "sentiment-box|" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}
