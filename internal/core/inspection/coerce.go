package inspection

import (
	"math"
	"strconv"
	"strings"

	perr "pcaobdash/internal/platform/errors"
)

// Plausible inspection years; a company cell holding one of these is an upstream data-entry slip
const (
	minYearToken = 2000
	maxYearToken = 2034
)

// ErrMalformedPercentage marks a deficiency rate cell that is not a percentage in [0, 100]
var ErrMalformedPercentage = perr.New(perr.ErrorCodeMalformedData, "malformed percentage")

// ParsePercentage reads a deficiency rate cell
// "3.25%", " 3.25 % ", "3.25" and the number 3.25 all yield 3.25; anything outside [0, 100] is malformed
func ParsePercentage(v RawValue) (float64, error) {
	var (
		f  float64
		ok bool
	)
	switch v.Kind() {
	case KindNumber:
		f, ok = v.Float()
	case KindText:
		s := strings.TrimSpace(v.String())
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		if s != "" {
			var err error
			f, err = strconv.ParseFloat(s, 64)
			ok = err == nil
		}
	}
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > 100 {
		return 0, perr.Wrapf(ErrMalformedPercentage, perr.ErrorCodeMalformedData, "cannot read %q as a percentage", v.String())
	}
	return f, nil
}

// IsYearToken reports whether s is a 4-digit year within the plausible inspection range
func IsYearToken(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	n, _ := strconv.Atoi(s)
	return n >= minYearToken && n <= maxYearToken
}

// Round3 rounds half away from zero to 3 decimals
func Round3(f float64) float64 { return roundTo(f, 3) }

// Round2 rounds half away from zero to 2 decimals
func Round2(f float64) float64 { return roundTo(f, 2) }

func roundTo(f float64, places int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	p := math.Pow10(places)
	return math.Round(f*p) / p
}

// Normalize decodes one raw row into a Record
// line is the 1-based data row number used in error messages
func Normalize(row RawRow, line int) (Record, error) {
	var (
		rec Record
		err error
	)

	rec.Company = label(row[ColCompany])
	if IsYearToken(rec.Company) {
		rec.Company = Sentinel
	}
	rec.FirmName = label(row[ColFirmName])
	rec.Country = label(row[ColCountry])
	rec.InspectionType = label(row[ColInspectionType])
	rec.PDFLink = label(row[ColPDFLink])
	rec.ReportDate = label(row[ColReportDate])

	year := row[ColInspectionYear]
	if year.IsNull() || label(year) == "" {
		return Record{}, malformed(line, ColInspectionYear, year, "missing year")
	}
	rec.InspectionYear = label(year)

	if clients := row[ColClients]; !clients.IsNull() {
		f, ok := clients.Float()
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return Record{}, malformed(line, ColClients, clients, "not a non-negative number")
		}
		rec.TotalIssuerAuditClients = Round3(f)
	}

	if rec.AuditsReviewed, err = count(row, ColAuditsReviewed, line); err != nil {
		return Record{}, err
	}
	if rec.WordCount, err = count(row, ColWordCount, line); err != nil {
		return Record{}, err
	}

	rate, err := ParsePercentage(row[ColDeficiencyRate])
	if err != nil {
		return Record{}, perr.WithField(perr.Wrapf(err, perr.ErrorCodeMalformedData, "row %d column %q", line, ColDeficiencyRate), string(ColDeficiencyRate))
	}
	rec.DeficiencyRate = Round3(rate)

	sentiment := row[ColSentiment]
	s, ok := sentiment.Float()
	if !ok || math.IsNaN(s) || math.IsInf(s, 0) {
		return Record{}, malformed(line, ColSentiment, sentiment, "not a number")
	}
	rec.SentimentScore = Round3(s)

	return rec, nil
}

// label renders a categorical cell as trimmed text; null becomes empty
func label(v RawValue) string { return strings.TrimSpace(v.String()) }

// count reads a non-negative integral cell
func count(row RawRow, col Column, line int) (int64, error) {
	v := row[col]
	f, ok := v.Float()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, malformed(line, col, v, "not a number")
	}
	if f < 0 || f != math.Trunc(f) {
		return 0, malformed(line, col, v, "not a non-negative whole number")
	}
	return int64(f), nil
}

func malformed(line int, col Column, v RawValue, why string) error {
	return perr.WithField(
		perr.Newf(perr.ErrorCodeMalformedData, "row %d column %q: %s (got %q)", line, col, why, v.String()),
		string(col),
	)
}
