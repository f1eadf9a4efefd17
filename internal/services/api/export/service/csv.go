package service

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"pcaobdash/internal/core/pipeline"
	perr "pcaobdash/internal/platform/errors"
)

func writeCSV(rows []pipeline.ResultRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(pipeline.ResultColumns); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "write csv header")
	}
	rec := make([]string, len(pipeline.ResultColumns))
	for _, r := range rows {
		for i, c := range r.Cells() {
			rec[i] = cellText(c)
		}
		if err := w.Write(rec); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "flush csv")
	}
	return buf.Bytes(), nil
}

func cellText(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}
