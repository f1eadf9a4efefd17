package web

import (
	"bytes"
	"net/http"
	"slices"
	"strings"

	"pcaobdash/internal/core/pipeline"
	"pcaobdash/internal/modkit/httpkit"
	perr "pcaobdash/internal/platform/errors"
	"pcaobdash/internal/platform/logger"
	"pcaobdash/internal/platform/metrics"
	chartsdomain "pcaobdash/internal/services/api/charts/domain"
	exportdomain "pcaobdash/internal/services/api/export/domain"
)

type handlers struct {
	deps     Deps
	sessions *Sessions
	theme    string
}

// selection returns the session state, a fresh session starts on the default theme
func (h *handlers) selection(sid string) pipeline.Selection {
	sel, ok := h.sessions.Get(sid)
	if !ok || sel.Theme == "" {
		sel.Theme = h.theme
	}
	return sel
}

// page renders the dashboard; a submitted form replaces the session state first
func (h *handlers) page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sid := httpkit.MustSession(r)
	q := r.URL.Query()

	if q.Get(pipeline.FieldReset) != "" {
		h.sessions.Delete(sid)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sel := h.selection(sid)
	var formErr error
	if q.Get(fieldApply) != "" {
		next, err := pipeline.ParseSelection(q)
		if err == nil {
			err = pipeline.ValidateSelection(next)
		}
		if err == nil && next.Theme != "" && !h.knownTheme(next.Theme) {
			err = perr.WithField(perr.InvalidArgf("unknown theme %q", next.Theme), pipeline.FieldTheme)
		}
		if err != nil {
			formErr = err
		} else {
			if next.Theme == "" {
				next.Theme = h.theme
			}
			sel = next
			h.sessions.Put(sid, sel)
		}
	}

	out, err := h.deps.Views.ResolveFor(ctx, metrics.SurfaceWeb, sel)
	if err != nil {
		logger.C(ctx).Error().Err(err).Msg("dashboard resolve failed")
		http.Error(w, perr.WireFrom(err).Message, perr.HTTPStatus(err))
		return
	}

	p := buildPage(sel, out, h.deps.Charts.Themes().Themes, sel.Theme)
	if formErr != nil {
		p.Error = perr.WireFrom(formErr).Message
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, p); err != nil {
		logger.C(ctx).Error().Err(err).Msg("dashboard template failed")
		http.Error(w, "error rendering page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	status := http.StatusOK
	if formErr != nil {
		status = perr.HTTPStatus(formErr)
	}
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// chart draws one panel for the session selection
func (h *handlers) chart(r *http.Request) (any, error) {
	id, ok := strings.CutSuffix(httpkit.Param(r, "id"), ".png")
	if !ok {
		return nil, perr.NotFoundf("chart images end in .png")
	}
	ctx := r.Context()
	sel := h.selection(httpkit.MustSession(r))
	opts, err := h.deps.Views.Options(ctx, sel)
	if err != nil {
		return nil, err
	}
	b, err := h.deps.Charts.PNG(ctx, chartsdomain.PNGInput{ID: id, Theme: sel.Theme, Criteria: opts.Criteria})
	if err != nil {
		return nil, err
	}
	return httpkit.Blob("image/png", b), nil
}

// export downloads the session results table
func (h *handlers) export(r *http.Request) (any, error) {
	ctx := r.Context()
	opts, err := h.deps.Views.Options(ctx, h.selection(httpkit.MustSession(r)))
	if err != nil {
		return nil, err
	}

	var f exportdomain.File
	switch httpkit.Param(r, "format") {
	case "csv":
		f, err = h.deps.Export.CSV(ctx, opts.Criteria)
	case "xlsx":
		f, err = h.deps.Export.XLSX(ctx, opts.Criteria)
	default:
		return nil, perr.NotFoundf("export format %q not found", httpkit.Param(r, "format"))
	}
	if err != nil {
		return nil, err
	}
	return httpkit.Attachment(f.Name, f.ContentType, f.Body), nil
}

func (h *handlers) knownTheme(t string) bool {
	return slices.Contains(h.deps.Charts.Themes().Themes, t)
}
