package httpkit

import (
	"net/http"

	phttp "pcaobdash/internal/platform/net/http"
)

type route struct {
	verb string
	path string
	h    phttp.Handler
}

// fakeRouter records routing calls, Route and Group hand back the same router
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	verbCalls []route
}

func (f *fakeRouter) Mux() http.Handler     { return http.NewServeMux() }
func (f *fakeRouter) Group(fn func(Router)) { fn(f) }

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Handle(path string, h http.Handler) {
	f.verbCalls = append(f.verbCalls, route{"HANDLE", path, h.ServeHTTP})
}

func (f *fakeRouter) Get(path string, h phttp.Handler) {
	f.verbCalls = append(f.verbCalls, route{"GET", path, h})
}

func (f *fakeRouter) Post(path string, h phttp.Handler) {
	f.verbCalls = append(f.verbCalls, route{"POST", path, h})
}
