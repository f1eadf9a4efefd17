// Package parquetfile reads the inspection dataset from a parquet file
// Leaf column names are matched against the canonical headers, so both
// "Inspection Year" and inspection_year resolve
package parquetfile

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"pcaobdash/internal/core/inspection"
	perr "pcaobdash/internal/platform/errors"

	"github.com/parquet-go/parquet-go"
)

// readBatch is the number of rows pulled from a row group per call
const readBatch = 256

// Source reads a parquet file from disk or from an in-memory reader
type Source struct {
	path string
	open func() (io.ReaderAt, int64, func() error, error)
	cols []inspection.Column
}

var _ inspection.HeaderSource = (*Source)(nil)

// New returns a Source over the file at path
func New(path string) *Source {
	return &Source{path: path, open: func() (io.ReaderAt, int64, func() error, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, 0, nil, err
		}
		st, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return nil, 0, nil, err
		}
		return f, st.Size(), f.Close, nil
	}}
}

// FromReaderAt returns a Source over size bytes of r
func FromReaderAt(name string, r io.ReaderAt, size int64) *Source {
	return &Source{path: name, open: func() (io.ReaderAt, int64, func() error, error) {
		return r, size, func() error { return nil }, nil
	}}
}

// Name implements inspection.Source
func (s *Source) Name() string { return "parquet:" + filepath.Base(s.path) }

// Columns implements inspection.HeaderSource, read from the file schema
func (s *Source) Columns() []inspection.Column { return s.cols }

// Rows implements inspection.Source
func (s *Source) Rows(ctx context.Context) ([]inspection.RawRow, error) {
	r, size, closeFn, err := s.open()
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open parquet %s", s.path)
	}
	defer func() { _ = closeFn() }()
	s.cols = nil

	f, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeMalformedData, "read parquet footer %s", s.path)
	}

	paths := f.Schema().Columns()
	names := make([]string, len(paths))
	for i, p := range paths {
		if len(p) > 0 {
			names[i] = p[len(p)-1]
		}
	}
	header := inspection.NewHeader(names)
	s.cols = header.Columns()

	var out []inspection.RawRow
	cells := make([]inspection.RawValue, len(names))
	buf := make([]parquet.Row, readBatch)
	for _, rg := range f.RowGroups() {
		if err := ctx.Err(); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "parquet read canceled")
		}
		rows, err := readGroup(rg, buf, header, cells)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeMalformedData, "read parquet rows %s", s.path)
		}
		out = append(out, rows...)
	}
	return out, nil
}

func readGroup(rg parquet.RowGroup, buf []parquet.Row, header inspection.Header, cells []inspection.RawValue) ([]inspection.RawRow, error) {
	rows := rg.Rows()
	defer func() { _ = rows.Close() }()

	var out []inspection.RawRow
	for {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			for i := range cells {
				cells[i] = inspection.Null()
			}
			for _, v := range row {
				if c := v.Column(); c >= 0 && c < len(cells) {
					cells[c] = rawValue(v)
				}
			}
			out = append(out, header.Row(cells))
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// rawValue maps one parquet leaf value; byte arrays are read as text
func rawValue(v parquet.Value) inspection.RawValue {
	if v.IsNull() {
		return inspection.Null()
	}
	switch v.Kind() {
	case parquet.Boolean:
		if v.Boolean() {
			return inspection.Text("true")
		}
		return inspection.Text("false")
	case parquet.Int32:
		return inspection.Number(float64(v.Int32()))
	case parquet.Int64:
		return inspection.Number(float64(v.Int64()))
	case parquet.Float:
		return inspection.Number(float64(v.Float()))
	case parquet.Double:
		return inspection.Number(v.Double())
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return inspection.Text(string(v.ByteArray()))
	default:
		return inspection.Text(v.String())
	}
}
