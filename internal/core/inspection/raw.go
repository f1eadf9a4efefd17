package inspection

import (
	"strconv"
	"strings"
)

// Kind tags the dynamic type carried by a RawValue
type Kind uint8

const (
	KindNull Kind = iota
	KindText
	KindNumber
)

// RawValue is one undecoded cell as a source adapter read it
type RawValue struct {
	kind Kind
	text string
	num  float64
}

// Null returns an absent cell
func Null() RawValue { return RawValue{} }

// Text returns a text cell
func Text(s string) RawValue { return RawValue{kind: KindText, text: s} }

// Number returns a numeric cell
func Number(f float64) RawValue { return RawValue{kind: KindNumber, num: f} }

// Kind returns the cell kind
func (v RawValue) Kind() Kind { return v.kind }

// IsNull reports whether the cell is absent
func (v RawValue) IsNull() bool { return v.kind == KindNull }

// String renders the cell for labels and error messages
// Numbers render without a trailing fraction so 2015.0 becomes "2015"
func (v RawValue) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return ""
	}
}

// Float returns the numeric value of the cell
// Text cells are parsed after trimming; ok is false for null or unparsable cells
func (v RawValue) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// RawRow is one source row keyed by canonical column
// Adapters set every column present in the source header, using Null for empty cells
type RawRow map[Column]RawValue
