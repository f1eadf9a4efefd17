package service

import (
	"pcaobdash/internal/core/pipeline"
	perr "pcaobdash/internal/platform/errors"

	"github.com/xuri/excelize/v2"
)

const sheet = "Results"

func writeXLSX(rows []pipeline.ResultRow) (out []byte, err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = perr.Wrap(cerr, perr.ErrorCodeUnknown, "close workbook")
		}
	}()

	wrap := func(err error, msg string) error { return perr.Wrap(err, perr.ErrorCodeUnknown, msg) }

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, wrap(err, "name sheet")
	}
	header := make([]any, len(pipeline.ResultColumns))
	for i, c := range pipeline.ResultColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, wrap(err, "write header")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, wrap(err, "header style")
	}
	last, _ := excelize.ColumnNumberToName(len(pipeline.ResultColumns))
	if err := f.SetCellStyle(sheet, "A1", last+"1", bold); err != nil {
		return nil, wrap(err, "style header")
	}
	link, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Color: "0563C1", Underline: "single"}})
	if err != nil {
		return nil, wrap(err, "link style")
	}

	tip := "Open the inspection report"
	for i, r := range rows {
		cells := r.Cells()
		first, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, wrap(err, "cell name")
		}
		if err := f.SetSheetRow(sheet, first, &cells); err != nil {
			return nil, wrap(err, "write row")
		}
		if r.PDFLink == "" {
			continue
		}
		if err := f.SetCellHyperLink(sheet, first, r.PDFLink, "External", excelize.HyperlinkOpts{Tooltip: &tip}); err != nil {
			return nil, wrap(err, "link report")
		}
		if err := f.SetCellStyle(sheet, first, first, link); err != nil {
			return nil, wrap(err, "style link")
		}
	}

	if err := f.SetColWidth(sheet, "A", last, 22); err != nil {
		return nil, wrap(err, "column width")
	}
	if err := f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, wrap(err, "freeze header")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}
