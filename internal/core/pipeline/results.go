package pipeline

// ResultColumns are the results table headers in display order
var ResultColumns = []string{
	"pdf_link",
	"Inspection Report Date",
	"Inspection Year",
	"Inspection Type",
	"Part I.A Deficiency Rate",
	"Country",
	"Global Network Company",
	"Firm Names",
	"document_sentiment_score",
}

// ResultRow is one line of the results table
type ResultRow struct {
	PDFLink        string  `json:"pdf_link"`
	ReportDate     string  `json:"report_date"`
	InspectionYear string  `json:"inspection_year"`
	InspectionType string  `json:"inspection_type"`
	DeficiencyRate float64 `json:"deficiency_rate"`
	Country        string  `json:"country"`
	Company        string  `json:"company"`
	FirmName       string  `json:"firm_name"`
	SentimentScore float64 `json:"sentiment_score"`
}

// Cells lists the row values in ResultColumns order
func (r ResultRow) Cells() []any {
	return []any{
		r.PDFLink,
		r.ReportDate,
		r.InspectionYear,
		r.InspectionType,
		r.DeficiencyRate,
		r.Country,
		r.Company,
		r.FirmName,
		r.SentimentScore,
	}
}

// Results projects the view onto the results table, keeping row order
func (v View) Results() []ResultRow {
	out := make([]ResultRow, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = ResultRow{
			PDFLink:        r.PDFLink,
			ReportDate:     r.ReportDate,
			InspectionYear: r.InspectionYear,
			InspectionType: r.InspectionType,
			DeficiencyRate: r.DeficiencyRate,
			Country:        r.Country,
			Company:        r.Company,
			FirmName:       r.FirmName,
			SentimentScore: r.SentimentScore,
		}
	}
	return out
}
