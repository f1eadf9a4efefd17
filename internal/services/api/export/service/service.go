// Package service renders the results table as downloadable files
package service

import (
	"context"

	"pcaobdash/internal/core/pipeline"
	"pcaobdash/internal/platform/metrics"
	dashdomain "pcaobdash/internal/services/api/dashboard/domain"
	"pcaobdash/internal/services/api/export/domain"
)

// base name of every download
const fileStem = "pcaob_inspections"

// Service defines the export service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the export service
type Svc struct {
	views dashdomain.Recomputer
}

// New constructs an export service
func New(views dashdomain.Recomputer) *Svc {
	if views == nil {
		panic("export.Service requires a non nil Recomputer")
	}
	return &Svc{views: views}
}

// CSV exports the results table as comma separated text
func (s *Svc) CSV(ctx context.Context, in domain.Input) (domain.File, error) {
	rows, err := s.results(ctx, in)
	if err != nil {
		return domain.File{}, err
	}
	b, err := writeCSV(rows)
	if err != nil {
		return domain.File{}, err
	}
	return domain.File{Name: fileStem + ".csv", ContentType: domain.ContentTypeCSV, Body: b}, nil
}

// XLSX exports the results table as a workbook with clickable report links
func (s *Svc) XLSX(ctx context.Context, in domain.Input) (domain.File, error) {
	rows, err := s.results(ctx, in)
	if err != nil {
		return domain.File{}, err
	}
	b, err := writeXLSX(rows)
	if err != nil {
		return domain.File{}, err
	}
	return domain.File{Name: fileStem + ".xlsx", ContentType: domain.ContentTypeXLSX, Body: b}, nil
}

func (s *Svc) results(ctx context.Context, in domain.Input) ([]pipeline.ResultRow, error) {
	v, err := s.views.Recompute(ctx, metrics.SurfaceExport, in)
	if err != nil {
		return nil, err
	}
	return v.Results(), nil
}
