// Package normalize folds free text so "Ernst & Young", "ERNST & YOUNG" and
// fullwidth or accented spellings compare equal in option search and header matching
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// chains are stateful, each Fold borrows its own
var chains = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Mn)), // accents split off by NFKD
			runes.Remove(runes.In(unicode.Cf)), // zero width joiners, BOM
			width.Fold,
			norm.NFC,
		)
	},
}

// Fold case-folds s, strips accents and format runes, narrows fullwidth forms
// and collapses whitespace runs to one space; invalid UTF-8 bytes are dropped
func Fold(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chains.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chains.Put(tr)
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}

var headerSeparators = strings.NewReplacer("_", " ", "-", " ", ".", " ")

// HeaderKey folds a column header so "Inspection Year", "inspection_year"
// and "INSPECTION-YEAR" share one key
func HeaderKey(s string) string { return Fold(headerSeparators.Replace(s)) }
