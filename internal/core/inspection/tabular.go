package inspection

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "pcaobdash/internal/platform/time"
)

// Header maps source column positions onto canonical columns
// Unknown headers are kept as gaps and their cells dropped
type Header struct {
	cols  []Column
	known []bool
}

// NewHeader resolves every source header name
func NewHeader(names []string) Header {
	h := Header{cols: make([]Column, len(names)), known: make([]bool, len(names))}
	for i, n := range names {
		if i == 0 {
			n = strings.TrimPrefix(n, "\ufeff")
		}
		h.cols[i], h.known[i] = LookupColumn(n)
	}
	return h
}

// Columns returns the canonical columns the header carries, in source order
func (h Header) Columns() []Column {
	var out []Column
	for i, c := range h.cols {
		if h.known[i] {
			out = append(out, c)
		}
	}
	return out
}

// Row builds a RawRow from positional cells
// cells past the end of a short row are Null so every header column is present
func (h Header) Row(cells []RawValue) RawRow {
	row := make(RawRow, len(h.cols))
	for i, c := range h.cols {
		if !h.known[i] {
			continue
		}
		if i < len(cells) {
			row[c] = cells[i]
		} else {
			row[c] = Null()
		}
	}
	return row
}

// FromText turns a text grid into RawRows
// A column whose every non-blank cell parses as a number is read as numeric;
// blank cells are Null either way
func FromText(header []string, records [][]string) []RawRow {
	h := NewHeader(header)
	numeric := make([]bool, len(header))
	for i := range header {
		numeric[i] = numericColumn(records, i)
	}

	out := make([]RawRow, 0, len(records))
	cells := make([]RawValue, len(header))
	for _, rec := range records {
		for i := range cells {
			cells[i] = Null()
			if i >= len(rec) {
				continue
			}
			s := strings.TrimSpace(rec[i])
			switch {
			case s == "":
			case numeric[i]:
				f, _ := strconv.ParseFloat(s, 64)
				cells[i] = Number(f)
			default:
				cells[i] = Text(rec[i])
			}
		}
		out = append(out, h.Row(cells))
	}
	return out
}

func numericColumn(records [][]string, i int) bool {
	seen := false
	for _, rec := range records {
		if i >= len(rec) {
			continue
		}
		s := strings.TrimSpace(rec[i])
		if s == "" {
			continue
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}

// FromAny converts a driver scanned value into a RawValue
// Unknown types fall back to their text form
func FromAny(v any) RawValue {
	switch x := v.(type) {
	case nil:
		return Null()
	case string:
		return Text(x)
	case []byte:
		return Text(string(x))
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int8:
		return Number(float64(x))
	case int16:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint8:
		return Number(float64(x))
	case uint16:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case *string:
		if x == nil {
			return Null()
		}
		return Text(*x)
	case *float64:
		if x == nil {
			return Null()
		}
		return Number(*x)
	case *int64:
		if x == nil {
			return Null()
		}
		return Number(float64(*x))
	case time.Time:
		return Text(ptime.Date(x))
	case bool:
		return Text(strconv.FormatBool(x))
	case driver.Valuer:
		dv, err := x.Value()
		if err != nil {
			return Text(fmt.Sprint(v))
		}
		if _, again := dv.(driver.Valuer); again {
			return Text(fmt.Sprint(dv))
		}
		return FromAny(dv)
	default:
		return Text(fmt.Sprint(v))
	}
}

// FromMap builds a RawRow from a column name keyed map, as SQL sources scan rows
func FromMap(m map[string]any) RawRow {
	row := make(RawRow, len(m))
	for name, v := range m {
		if c, ok := LookupColumn(name); ok {
			row[c] = FromAny(v)
		}
	}
	return row
}
