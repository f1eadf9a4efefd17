// Package domain holds DTOs for export http and service contracts
package domain

import (
	"context"

	"pcaobdash/internal/core/pipeline"
)

// Input is the criteria of the rows to export
type Input = pipeline.Criteria

// File is a rendered download
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

// Content types of the export formats
const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ServicePort is consumed by handlers and the web page
type ServicePort interface {
	CSV(ctx context.Context, in Input) (File, error)
	XLSX(ctx context.Context, in Input) (File, error)
}
