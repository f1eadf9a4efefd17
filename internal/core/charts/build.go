package charts

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"pcaobdash/internal/core/inspection"
	"pcaobdash/internal/core/pipeline"
)

const histogramBins = 20

// fillSentimentHeatmap keeps the highest sentiment per company and year
func fillSentimentHeatmap(c *Chart, v pipeline.View) {
	type key struct{ company, year string }
	peak := map[key]float64{}
	for _, r := range v.Rows {
		k := key{r.Company, r.InspectionYear}
		if cur, ok := peak[k]; !ok || r.SentimentScore > cur {
			peak[k] = r.SentimentScore
		}
	}
	c.Rows = distinct(v.Rows, func(r pipeline.ViewRow) string { return r.Company })
	c.Categories = distinct(v.Rows, func(r pipeline.ViewRow) string { return r.InspectionYear })
	for _, company := range c.Rows {
		for _, year := range c.Categories {
			if val, ok := peak[key{company, year}]; ok {
				c.Cells = append(c.Cells, Cell{Row: company, Col: year, Value: inspection.Round3(val)})
			}
		}
	}
}

func fillClientsChoropleth(c *Chart, v pipeline.View) {
	totals := slices.Clone(v.ByCountryClientTotal)
	slices.SortStableFunc(totals, func(a, b pipeline.CountryTotal) int { return cmp.Compare(b.Clients, a.Clients) })
	s := Series{Name: "Total Issuer Audit Clients"}
	for i, t := range totals {
		c.Categories = append(c.Categories, t.Country)
		s.Points = append(s.Points, Point{Label: t.Country, X: float64(i), Y: t.Clients})
	}
	c.Series = []Series{s}
}

func fillSentimentTrend(c *Chart, v pipeline.View) {
	c.Categories = distinct(v.Rows, func(r pipeline.ViewRow) string { return r.InspectionYear })
	c.Series = meanByCompanyYear(v.Rows, c.Categories, func(r pipeline.ViewRow) float64 { return r.SentimentScore })
}

func fillDeficiencyTrend(c *Chart, v pipeline.View) {
	c.Categories = distinct(v.Rows, func(r pipeline.ViewRow) string { return r.InspectionYear })
	idx := index(c.Categories)
	byCompany := map[string]*Series{}
	var order []string
	for _, m := range v.ByYearCompanyDeficiency {
		s, ok := byCompany[m.Company]
		if !ok {
			s = &Series{Name: m.Company}
			byCompany[m.Company] = s
			order = append(order, m.Company)
		}
		s.Points = append(s.Points, Point{Label: m.Year, X: float64(idx[m.Year]), Y: inspection.Round3(m.MeanDeficiencyRate)})
	}
	slices.Sort(order)
	for _, name := range order {
		c.Series = append(c.Series, *byCompany[name])
	}
}

func fillWordCountByCompany(c *Chart, v pipeline.View) {
	means := map[string]float64{}
	countries := map[string]map[string]struct{}{}
	for _, r := range v.Rows {
		means[r.Company] = r.CompanyMeanWordCount
		if countries[r.Company] == nil {
			countries[r.Company] = map[string]struct{}{}
		}
		countries[r.Company][r.Country] = struct{}{}
	}
	companies := make([]string, 0, len(means))
	for k := range means {
		companies = append(companies, k)
	}
	// longest reports first, ties by name
	slices.SortFunc(companies, func(a, b string) int {
		if c := cmp.Compare(means[b], means[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	s := Series{Name: "Average Word Count"}
	for i, name := range companies {
		cs := make([]string, 0, len(countries[name]))
		for k := range countries[name] {
			cs = append(cs, k)
		}
		slices.Sort(cs)
		s.Points = append(s.Points, Point{Label: name, Group: strings.Join(cs, ", "), X: float64(i), Y: means[name]})
	}
	c.Categories = companies
	c.Series = []Series{s}
}

// fillClientsShare marks the chart NoData when no company has a client to share out
func fillClientsShare(c *Chart, v pipeline.View) {
	companies := distinct(v.Rows, func(r pipeline.ViewRow) string { return r.Company })
	totals := sumBy(v.Rows, func(r pipeline.ViewRow) string { return r.Company })
	s := Series{Name: "Total Issuer Audit Clients"}
	c.NoData = true
	for i, name := range companies {
		s.Points = append(s.Points, Point{Label: name, X: float64(i), Y: totals[name]})
		if totals[name] > 0 {
			c.NoData = false
		}
	}
	c.Categories = companies
	c.Series = []Series{s}
}

func fillClientsByCountry(c *Chart, v pipeline.View) {
	c.Categories = distinct(v.Rows, func(r pipeline.ViewRow) string { return r.Country })
	c.Series = clientsGrid(v.Rows, c.Categories, func(r pipeline.ViewRow) string { return r.Country })
}

func fillClientsByYear(c *Chart, v pipeline.View) {
	c.Categories = distinct(v.Rows, func(r pipeline.ViewRow) string { return r.InspectionYear })
	c.Series = clientsGrid(v.Rows, c.Categories, func(r pipeline.ViewRow) string { return r.InspectionYear })
}

func fillClientsVsDeficiency(c *Chart, v pipeline.View) {
	c.Series = scatterBy(v.Rows, func(r pipeline.ViewRow) string { return r.Company }, func(r pipeline.ViewRow) Point {
		return Point{Label: r.FirmName, Group: r.InspectionYear, X: r.TotalIssuerAuditClients, Y: r.DeficiencyRate, Size: r.TotalIssuerAuditClients}
	})
}

func fillSentimentVsDeficiency(c *Chart, v pipeline.View) {
	c.Series = scatterBy(v.Rows, func(r pipeline.ViewRow) string { return r.FirmName }, func(r pipeline.ViewRow) Point {
		return Point{Label: r.Company, Group: r.InspectionYear, X: r.SentimentScore, Y: r.DeficiencyRate, Size: math.Abs(r.SentimentScore)}
	})
}

func fillSentimentBox(c *Chart, v pipeline.View) {
	groups := map[string][]float64{}
	for _, r := range v.Rows {
		groups[r.Company] = append(groups[r.Company], r.SentimentScore)
	}
	c.Categories = distinct(v.Rows, func(r pipeline.ViewRow) string { return r.Company })
	for _, name := range c.Categories {
		c.Boxes = append(c.Boxes, FiveNumber(name, groups[name]))
	}
}

func fillWordCountHistogram(c *Chart, v pipeline.View) {
	words := make([]float64, len(v.Rows))
	for i, r := range v.Rows {
		words[i] = float64(r.WordCount)
	}
	c.BinEdges = BinEdges(words, histogramBins)
	c.Categories = distinct(v.Rows, func(r pipeline.ViewRow) string { return r.Company })
	bins := len(c.BinEdges) - 1
	for _, name := range c.Categories {
		counts := make([]int, bins)
		for _, r := range v.Rows {
			if r.Company == name {
				counts[binOf(float64(r.WordCount), c.BinEdges)]++
			}
		}
		s := Series{Name: name}
		for i, n := range counts {
			mid := (c.BinEdges[i] + c.BinEdges[i+1]) / 2
			s.Points = append(s.Points, Point{X: mid, Y: float64(n)})
		}
		c.Series = append(c.Series, s)
	}
}

// distinct returns the sorted distinct keys of rows
func distinct(rows []pipeline.ViewRow, key func(pipeline.ViewRow) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range rows {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func index(cats []string) map[string]int {
	m := make(map[string]int, len(cats))
	for i, c := range cats {
		m[c] = i
	}
	return m
}

func sumBy(rows []pipeline.ViewRow, key func(pipeline.ViewRow) string) map[string]float64 {
	out := map[string]float64{}
	for _, r := range rows {
		out[key(r)] += r.TotalIssuerAuditClients
	}
	return out
}

// meanByCompanyYear yields one series per company with a point per year that has data
func meanByCompanyYear(rows []pipeline.ViewRow, years []string, val func(pipeline.ViewRow) float64) []Series {
	type key struct{ company, year string }
	sums := map[key]float64{}
	counts := map[key]int{}
	for _, r := range rows {
		k := key{r.Company, r.InspectionYear}
		sums[k] += val(r)
		counts[k]++
	}
	var out []Series
	for _, company := range distinct(rows, func(r pipeline.ViewRow) string { return r.Company }) {
		s := Series{Name: company}
		for i, y := range years {
			k := key{company, y}
			if n := counts[k]; n > 0 {
				s.Points = append(s.Points, Point{Label: y, X: float64(i), Y: inspection.Round3(sums[k] / float64(n))})
			}
		}
		out = append(out, s)
	}
	return out
}

// clientsGrid yields one series per company with a client total for every category, zero when absent
func clientsGrid(rows []pipeline.ViewRow, cats []string, cat func(pipeline.ViewRow) string) []Series {
	type key struct{ company, cat string }
	totals := map[key]float64{}
	for _, r := range rows {
		totals[key{r.Company, cat(r)}] += r.TotalIssuerAuditClients
	}
	var out []Series
	for _, company := range distinct(rows, func(r pipeline.ViewRow) string { return r.Company }) {
		s := Series{Name: company}
		for i, c := range cats {
			s.Points = append(s.Points, Point{Label: c, X: float64(i), Y: totals[key{company, c}]})
		}
		out = append(out, s)
	}
	return out
}

// scatterBy groups rows into named series keeping row order within a series
func scatterBy(rows []pipeline.ViewRow, group func(pipeline.ViewRow) string, point func(pipeline.ViewRow) Point) []Series {
	names := distinct(rows, group)
	idx := index(names)
	out := make([]Series, len(names))
	for i, n := range names {
		out[i].Name = n
	}
	for _, r := range rows {
		i := idx[group(r)]
		out[i].Points = append(out[i].Points, point(r))
	}
	return out
}
