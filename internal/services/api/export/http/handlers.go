// Package http provides http transport for exports
package http

import (
	stdhttp "net/http"

	"pcaobdash/internal/modkit/httpkit"
	"pcaobdash/internal/services/api/export/domain"
	svc "pcaobdash/internal/services/api/export/service"
)

// Register mounts export endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.Input](r, "/csv", h.csv)
	httpkit.PostJSON[domain.Input](r, "/xlsx", h.xlsx)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /export/csv Export exportCSV
// @Summary Results table as CSV
// @Tags Export
// @Accept json
// @Produce text/csv
// @Param payload body domain.Input true "Criteria"
// @Success 200 {file} binary "download"
// @Router /export/csv [post]
func (h *handlers) csv(r *stdhttp.Request, in domain.Input) (any, error) {
	return download(h.svc.CSV(r.Context(), in))
}

// swagger:route POST /export/xlsx Export exportXLSX
// @Summary Results table as an Excel workbook with linked reports
// @Tags Export
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param payload body domain.Input true "Criteria"
// @Success 200 {file} binary "download"
// @Router /export/xlsx [post]
func (h *handlers) xlsx(r *stdhttp.Request, in domain.Input) (any, error) {
	return download(h.svc.XLSX(r.Context(), in))
}

func download(f domain.File, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return httpkit.Attachment(f.Name, f.ContentType, f.Body), nil
}
