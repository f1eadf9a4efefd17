// Package xlsxfile reads the inspection dataset from one sheet of an excel workbook
package xlsxfile

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"pcaobdash/internal/core/inspection"
	perr "pcaobdash/internal/platform/errors"

	"github.com/xuri/excelize/v2"
)

// Source reads one sheet; an empty sheet name means the first sheet
type Source struct {
	path  string
	sheet string
	open  func() (*excelize.File, error)
	cols  []inspection.Column
}

var _ inspection.HeaderSource = (*Source)(nil)

// New returns a Source over the workbook at path
func New(path, sheet string) *Source {
	return &Source{path: path, sheet: sheet, open: func() (*excelize.File, error) { return excelize.OpenFile(path) }}
}

// FromReader returns a Source over an open workbook stream
func FromReader(name, sheet string, r io.Reader) *Source {
	return &Source{path: name, sheet: sheet, open: func() (*excelize.File, error) { return excelize.OpenReader(r) }}
}

// Name implements inspection.Source
func (s *Source) Name() string {
	n := "xlsx:" + filepath.Base(s.path)
	if s.sheet != "" {
		n += "#" + s.sheet
	}
	return n
}

// Columns implements inspection.HeaderSource; an empty sheet has none
func (s *Source) Columns() []inspection.Column { return s.cols }

// Rows implements inspection.Source
func (s *Source) Rows(ctx context.Context) ([]inspection.RawRow, error) {
	f, err := s.open()
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open workbook %s", s.path)
	}
	defer func() { _ = f.Close() }()
	s.cols = nil

	sheet, err := s.pickSheet(f)
	if err != nil {
		return nil, err
	}
	grid, err := f.GetRows(sheet)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeMalformedData, "read sheet %q", sheet)
	}
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "xlsx read canceled")
	}
	if len(grid) == 0 {
		return nil, nil
	}
	s.cols = inspection.NewHeader(grid[0]).Columns()

	// GetRows trims trailing empty cells and may keep blank rows between data
	records := make([][]string, 0, len(grid)-1)
	for _, row := range grid[1:] {
		if blank(row) {
			continue
		}
		records = append(records, row)
	}
	return inspection.FromText(grid[0], records), nil
}

func (s *Source) pickSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", perr.Malformedf("workbook %s has no sheets", s.path)
	}
	if s.sheet == "" {
		return sheets[0], nil
	}
	for _, sh := range sheets {
		if strings.EqualFold(sh, s.sheet) {
			return sh, nil
		}
	}
	return "", perr.NotFoundf("sheet %q not found in %s", s.sheet, s.path)
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
