// Package csvfile reads the inspection dataset from a comma separated file with a header row
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"

	"pcaobdash/internal/core/inspection"
	perr "pcaobdash/internal/platform/errors"
)

// Source reads one csv file
type Source struct {
	path string
	open func() (io.ReadCloser, error)
	cols []inspection.Column
}

var _ inspection.HeaderSource = (*Source)(nil)

// New returns a Source over the file at path
func New(path string) *Source {
	return &Source{path: path, open: func() (io.ReadCloser, error) { return os.Open(path) }}
}

// FromReader returns a Source over an already open stream; name is used in logs
func FromReader(name string, r io.Reader) *Source {
	return &Source{path: name, open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil }}
}

// Name implements inspection.Source
func (s *Source) Name() string { return "csv:" + filepath.Base(s.path) }

// Columns implements inspection.HeaderSource; an empty file has none
func (s *Source) Columns() []inspection.Column { return s.cols }

// Rows implements inspection.Source
func (s *Source) Rows(ctx context.Context) ([]inspection.RawRow, error) {
	f, err := s.open()
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open %s", s.path)
	}
	defer func() { _ = f.Close() }()
	s.cols = nil

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeMalformedData, "read header of %s", s.path)
	}
	s.cols = inspection.NewHeader(header).Columns()

	var records [][]string
	for {
		if len(records)%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "csv read canceled")
			}
		}
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeMalformedData, "read %s", s.path)
		}
		records = append(records, rec)
	}
	return inspection.FromText(header, records), nil
}
