package inspection

import (
	"context"
	"slices"
	"strings"
	"time"

	perr "pcaobdash/internal/platform/errors"
)

// Source yields the raw rows of one tabular dataset
type Source interface {
	// Name identifies the source in logs and the dataset endpoint
	Name() string
	// Rows reads every row; each row carries every column present in the source header
	Rows(ctx context.Context) ([]RawRow, error)
}

// HeaderSource is a Source whose header may lack columns, file sources mostly
// Columns reports the canonical columns of the header read by the last Rows call
type HeaderSource interface {
	Source
	Columns() []Column
}

// Dataset is an immutable snapshot of normalized records
// It is shared read-only by every session for the life of the process
type Dataset struct {
	records  []Record
	source   string
	loadedAt time.Time
}

// NewDataset snapshots records; the caller's slice is copied
func NewDataset(source string, records []Record, loadedAt time.Time) *Dataset {
	recs := make([]Record, len(records))
	copy(recs, records)
	return &Dataset{records: recs, source: source, loadedAt: loadedAt.UTC()}
}

// Records returns a copy of the normalized records in load order
func (d *Dataset) Records() []Record {
	if d == nil {
		return nil
	}
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Len returns the number of records
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// Source returns the name of the source the snapshot was loaded from
func (d *Dataset) Source() string {
	if d == nil {
		return ""
	}
	return d.source
}

// LoadedAt returns the load time in UTC
func (d *Dataset) LoadedAt() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.loadedAt
}

// Load reads every row from src and normalizes it
// The first malformed row aborts the load; rows are never skipped
func Load(ctx context.Context, src Source) (*Dataset, error) {
	if src == nil {
		return nil, perr.InvalidArgf("inspection: nil source")
	}
	rows, err := src.Rows(ctx)
	if err != nil {
		return nil, perr.WithOp(err, "inspection.Load")
	}
	if header, ok := headerOf(src, rows); ok {
		if err := checkColumns(header); err != nil {
			return nil, err
		}
	}

	recs := make([]Record, 0, len(rows))
	for i, row := range rows {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "inspection: load canceled")
			}
		}
		rec, err := Normalize(row, i+1)
		if err != nil {
			return nil, perr.WithOp(err, "inspection.Load")
		}
		recs = append(recs, rec)
	}
	return &Dataset{records: recs, source: src.Name(), loadedAt: time.Now().UTC()}, nil
}

// headerOf prefers the header a source reports and falls back to the first row
// a plain source with no rows has no header to check
func headerOf(src Source, rows []RawRow) ([]Column, bool) {
	if hs, ok := src.(HeaderSource); ok {
		return hs.Columns(), true
	}
	if len(rows) == 0 {
		return nil, false
	}
	out := make([]Column, 0, len(rows[0]))
	for c := range rows[0] {
		out = append(out, c)
	}
	return out, true
}

// checkColumns fails when header lacks a required column
func checkColumns(header []Column) error {
	var missing []string
	for _, c := range allColumns {
		if c.Required() && !slices.Contains(header, c) {
			missing = append(missing, string(c))
		}
	}
	if len(missing) > 0 {
		return perr.WithOp(perr.Malformedf("missing required columns: %s", strings.Join(missing, ", ")), "inspection.Load")
	}
	return nil
}
