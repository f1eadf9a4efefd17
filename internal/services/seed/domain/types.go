// Package domain holds the seed contracts
package domain

import (
	"context"

	"pcaobdash/internal/core/inspection"
)

// Target names the store a dataset is published into
type Target string

const (
	TargetPostgres   Target = "postgres"
	TargetClickhouse Target = "clickhouse"
)

// Options control one publish run
type Options struct {
	Table string
	// Truncate empties the table before the first batch
	Truncate bool
	// BatchSize caps records per write, <= 0 means DefaultBatchSize
	BatchSize int
}

// DefaultBatchSize is the records per write when Options leave it unset
const DefaultBatchSize = 500

// Result summarizes a publish run
type Result struct {
	Target  Target `json:"target"`
	Table   string `json:"table"`
	Source  string `json:"source"`
	Rows    int    `json:"rows"`
	Batches int    `json:"batches"`
}

// Writer publishes normalized records into one store
type Writer interface {
	Target() Target
	// Prepare creates the table when missing and optionally empties it
	Prepare(ctx context.Context, table string, truncate bool) error
	// Write appends one batch in insert order
	Write(ctx context.Context, table string, recs []inspection.Record) error
}
