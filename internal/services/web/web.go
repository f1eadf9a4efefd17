// Package web serves the interactive dashboard page
// It holds only per-session sidebar state and reuses the API module ports for every recompute
package web

import (
	"embed"
	"html/template"

	"pcaobdash/internal/adapters/render"
	"pcaobdash/internal/modkit/httpkit"
	"pcaobdash/internal/modkit/module"
	phttp "pcaobdash/internal/platform/net/http"
	chartsdomain "pcaobdash/internal/services/api/charts/domain"
	dashdomain "pcaobdash/internal/services/api/dashboard/domain"
	dashmod "pcaobdash/internal/services/api/dashboard/module"
	exportdomain "pcaobdash/internal/services/api/export/domain"
)

// CookieName carries the session id
const CookieName = "pcaob_session"

// field the page form sets so a plain GET keeps the stored selection
const fieldApply = "apply"

//go:embed templates/dashboard.html
var templates embed.FS

var pageTmpl = template.Must(template.ParseFS(templates, "templates/dashboard.html"))

// Options tune the page
type Options struct {
	Sessions *Sessions
	// Theme is the chart theme of a fresh session, empty means the renderer default
	Theme string
	// SecureCookie marks the session cookie Secure
	SecureCookie bool
}

// Deps are the API ports the page is drawn from
type Deps struct {
	Views  dashdomain.Recomputer
	Charts chartsdomain.ServicePort
	Export exportdomain.ServicePort
}

// Mount mounts the page using the ports api.Mount registered
func Mount(r phttp.Router, opt Options) {
	dash, ok := module.PortsAs[dashmod.Ports]("dashboard")
	if !ok {
		panic("web.Mount requires the dashboard module, mount the API first")
	}
	ch, ok := module.PortsAs[chartsdomain.ServicePort]("charts")
	if !ok {
		panic("web.Mount requires the charts module, mount the API first")
	}
	ex, ok := module.PortsAs[exportdomain.ServicePort]("export")
	if !ok {
		panic("web.Mount requires the export module, mount the API first")
	}
	MountWith(r, Deps{Views: dash.Recomputer, Charts: ch, Export: ex}, opt)
}

// MountWith mounts the page over explicit ports
func MountWith(r phttp.Router, d Deps, opt Options) {
	if d.Views == nil || d.Charts == nil || d.Export == nil {
		panic("web.MountWith requires Views, Charts and Export")
	}
	if opt.Sessions == nil {
		opt.Sessions = NewSessions(0)
	}
	theme, err := render.ParseTheme(opt.Theme)
	if err != nil {
		panic(err)
	}

	h := &handlers{deps: d, sessions: opt.Sessions, theme: string(theme)}
	cookies := httpkit.NewCookiePort(CookieName, opt.SecureCookie, nil)

	r.Group(func(g phttp.Router) {
		g.Use(httpkit.CommonStack()...)
		httpkit.Sessioned(g, cookies, func(s httpkit.Router) {
			s.Get("/", h.page)
			httpkit.Get(s, "/charts/{id}", h.chart)
			httpkit.Get(s, "/export/{format}", h.export)
		})
	})
}
