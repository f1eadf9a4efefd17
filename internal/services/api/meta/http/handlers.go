// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"pcaobdash/internal/core/inspection"
	"pcaobdash/internal/core/version"
	"pcaobdash/internal/modkit/httpkit"
	perr "pcaobdash/internal/platform/errors"
	ptime "pcaobdash/internal/platform/time"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	PG          any
	CH          any
	Dataset     *inspection.Dataset
}

type handlers struct{ deps Deps }

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/dataset", h.dataset)
}

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"pcaob-dashboard"`
	Started string `json:"started"  example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"      example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"pg"`
	Status string `json:"status" example:"ok"` // ok fail skipped unknown
	Error  string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"pcaob-dashboard"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// DatasetResponse describes the loaded snapshot
type DatasetResponse struct {
	Source   string     `json:"source"              example:"parquet:pcaob.parquet"`
	Rows     int        `json:"rows"                example:"1820"`
	LoadedAt *time.Time `json:"loaded_at,omitempty" example:"2025-09-03T13:00:00Z"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 type HealthResponse ok
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: ptime.Stamp(h.deps.StartedAt),
		Now:     ptime.Stamp(time.Now()),
	}, nil
}

// check is one readiness probe
type check func(stdctx.Context) ReadyCheck

// pingCheck reports skipped for a missing store and unknown for one that cannot ping
func pingCheck(name string, dep any) check {
	return func(ctx stdctx.Context) ReadyCheck {
		c := ReadyCheck{Name: name, Status: "ok"}
		p, ok := dep.(Pinger)
		switch {
		case dep == nil:
			c.Status = "skipped"
		case !ok:
			c.Status = "unknown"
		default:
			if err := p.Ping(ctx); err != nil {
				c.Status, c.Error = "fail", err.Error()
			}
		}
		return c
	}
}

// datasetCheck fails until a snapshot is loaded; an empty snapshot only degrades
func datasetCheck(d *inspection.Dataset) check {
	return func(stdctx.Context) ReadyCheck {
		c := ReadyCheck{Name: "dataset", Status: "ok"}
		switch {
		case d == nil:
			c.Status, c.Error = "fail", "dataset not loaded"
		case d.Len() == 0:
			c.Status, c.Error = "unknown", "dataset has no records"
		}
		return c
	}
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe over the stores and the loaded dataset
// @Tags Meta
// @Produce json
// @Success 200 type ReadyResponse ok
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := []check{
		datasetCheck(h.deps.Dataset),
		pingCheck("pg", h.deps.PG),
		pingCheck("ch", h.deps.CH),
	}
	out := ReadyResponse{Status: "ok", Now: ptime.Stamp(time.Now())}
	for _, run := range checks {
		c := run(ctx)
		switch {
		case c.Status == "fail":
			out.Status = "fail"
		case c.Status == "unknown" && out.Status == "ok":
			out.Status = "degraded"
		}
		out.Checks = append(out.Checks, c)
	}
	return out, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 type version.BuildInfo ok
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 type ServiceResponse ok
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: ptime.Stamp(h.deps.StartedAt),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

// swagger:route GET /meta/dataset Meta metaDataset
// @Summary Loaded dataset snapshot
// @Tags Meta
// @Produce json
// @Success 200 type DatasetResponse ok
// @Router /meta/dataset [get]
func (h *handlers) dataset(_ *http.Request) (any, error) {
	d := h.deps.Dataset
	if d == nil {
		return nil, perr.Unavailablef("dataset not loaded")
	}
	return DatasetResponse{
		Source:   d.Source(),
		Rows:     d.Len(),
		LoadedAt: ptime.Ptr(d.LoadedAt()),
	}, nil
}
