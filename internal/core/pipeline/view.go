package pipeline

import (
	"cmp"
	"slices"

	"pcaobdash/internal/core/inspection"
)

// ViewRow is a filtered record plus the mean word count of its company within the view
type ViewRow struct {
	inspection.Record
	CompanyMeanWordCount float64 `json:"company_mean_word_count"`
}

// CountryTotal is one row of the country to client total table
type CountryTotal struct {
	Country string  `json:"country"`
	Clients float64 `json:"clients"`
}

// YearCompanyMean is one row of the year by company mean deficiency table
type YearCompanyMean struct {
	Year               string  `json:"year"`
	Company            string  `json:"company"`
	MeanDeficiencyRate float64 `json:"mean_deficiency_rate"`
	Reports            int     `json:"reports"`
}

// View is the result of one recompute; it lives for a single interaction
type View struct {
	Rows                    []ViewRow         `json:"rows"`
	TotalClients            Metric            `json:"total_clients"`
	AvgSentiment            Metric            `json:"avg_sentiment"`
	AvgWordCount            Metric            `json:"avg_word_count"`
	ByCountryClientTotal    []CountryTotal    `json:"by_country_client_total"`
	ByYearCompanyDeficiency []YearCompanyMean `json:"by_year_company_deficiency"`
	Matched                 int               `json:"matched"`
	Total                   int               `json:"total"`
}

// Empty reports whether no record matched
func (v View) Empty() bool { return v.Matched == 0 }

// Records returns the plain records of the view
func (v View) Records() []inspection.Record {
	out := make([]inspection.Record, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = r.Record
	}
	return out
}

// summarize aggregates the final filtered rows
// Sums run in row order and groups are emitted sorted so output is reproducible
func summarize(rows []inspection.Record, total int) View {
	v := View{
		Rows:                    make([]ViewRow, len(rows)),
		ByCountryClientTotal:    []CountryTotal{},
		ByYearCompanyDeficiency: []YearCompanyMean{},
		Matched:                 len(rows),
		Total:                   total,
	}

	var clients, sentiment, words float64
	for _, r := range rows {
		clients += r.TotalIssuerAuditClients
		sentiment += r.SentimentScore
		words += float64(r.WordCount)
	}
	v.TotalClients = sumMetric(clients, len(rows))
	v.AvgSentiment = meanMetric(sentiment, len(rows))
	v.AvgWordCount = meanMetric(words, len(rows))

	v.ByCountryClientTotal = ByCountryClientTotal(rows)
	v.ByYearCompanyDeficiency = ByYearCompanyDeficiency(rows)

	companyWords := CompanyMeanWordCount(rows)
	for i, r := range rows {
		v.Rows[i] = ViewRow{Record: r, CompanyMeanWordCount: companyWords[r.Company]}
	}
	return v
}

// ByCountryClientTotal sums clients per country, sorted by country
func ByCountryClientTotal(rows []inspection.Record) []CountryTotal {
	idx := map[string]int{}
	out := []CountryTotal{}
	for _, r := range rows {
		i, ok := idx[r.Country]
		if !ok {
			i = len(out)
			idx[r.Country] = i
			out = append(out, CountryTotal{Country: r.Country})
		}
		out[i].Clients += r.TotalIssuerAuditClients
	}
	slices.SortFunc(out, func(a, b CountryTotal) int { return cmp.Compare(a.Country, b.Country) })
	return out
}

// ByYearCompanyDeficiency averages the deficiency rate per (year, company), sorted by year then company
func ByYearCompanyDeficiency(rows []inspection.Record) []YearCompanyMean {
	type key struct{ year, company string }
	idx := map[key]int{}
	sums := []float64{}
	out := []YearCompanyMean{}
	for _, r := range rows {
		k := key{r.InspectionYear, r.Company}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, YearCompanyMean{Year: k.year, Company: k.company})
			sums = append(sums, 0)
		}
		sums[i] += r.DeficiencyRate
		out[i].Reports++
	}
	for i := range out {
		out[i].MeanDeficiencyRate = sums[i] / float64(out[i].Reports)
	}
	slices.SortFunc(out, func(a, b YearCompanyMean) int {
		if c := cmp.Compare(a.Year, b.Year); c != 0 {
			return c
		}
		return cmp.Compare(a.Company, b.Company)
	})
	return out
}

// CompanyMeanWordCount averages word count per company, rounded to 2dp
func CompanyMeanWordCount(rows []inspection.Record) map[string]float64 {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range rows {
		sums[r.Company] += float64(r.WordCount)
		counts[r.Company]++
	}
	out := make(map[string]float64, len(sums))
	for c, s := range sums {
		out[c] = inspection.Round2(s / float64(counts[c]))
	}
	return out
}
