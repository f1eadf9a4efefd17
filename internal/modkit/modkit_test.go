package modkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pcaobdash/internal/modkit/httpkit"
	phttp "pcaobdash/internal/platform/net/http"
	"pcaobdash/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func tag(v string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Chain", v)
			next.ServeHTTP(w, r)
		})
	}
}

func TestBuild_AppliesOptionsInOrder(t *testing.T) {
	t.Parallel()

	type ports struct{ Width, Height int }
	b := Build(
		WithName("charts"),
		WithPrefix("/charts"),
		WithPrefix("/figures"),
		WithMiddlewares(tag("a")),
		WithMiddlewares(tag("b")),
		WithPorts(ports{Width: 480, Height: 320}),
	)
	if b.Name != "charts" || b.Prefix != "/figures" {
		t.Fatalf("name/prefix = %q %q", b.Name, b.Prefix)
	}
	if p, ok := b.Ports.(ports); !ok || p.Width != 480 {
		t.Fatalf("ports = %#v", b.Ports)
	}
	if len(b.Mw) != 2 {
		t.Fatalf("mw = %d, want 2", len(b.Mw))
	}
}

func TestBuilt_MountScopesMiddleware(t *testing.T) {
	t.Parallel()

	r := phttp.AdaptChi(chi.NewRouter())
	b := Build(WithName("export"), WithPrefix("export/"), WithMiddlewares(tag("a"), tag("b")))
	b.Mount(r, func(rr httpkit.Router) {
		rr.Get("/csv", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	})
	r.Get("/other", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	cases := []struct {
		path  string
		chain string
	}{
		{"/export/csv", "a,b"},
		{"/other", ""},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("%s: status = %d", tc.path, rr.Code)
		}
		if got := strings.Join(rr.Header().Values("X-Chain"), ","); got != tc.chain {
			t.Fatalf("%s: chain = %q, want %q", tc.path, got, tc.chain)
		}
	}
	if b.ModuleName() != "export" {
		t.Fatalf("name = %q", b.ModuleName())
	}
}

func TestBuilt_RequiresNameAndPrefix(t *testing.T) {
	t.Parallel()

	r := phttp.AdaptChi(chi.NewRouter())
	testkit.MustPanic(t, func() { _ = Build().ModuleName() })
	testkit.MustPanic(t, func() { Build(WithPrefix(" / ")).Mount(r, func(httpkit.Router) {}) })
}
