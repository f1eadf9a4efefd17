package web

import (
	"net/url"
	"slices"
	"strconv"

	"pcaobdash/internal/core/charts"
	"pcaobdash/internal/core/pipeline"
	dashdomain "pcaobdash/internal/services/api/dashboard/domain"
)

// PageTitle heads the dashboard
const PageTitle = "PCAOB Inspection Data Dashboard"

// PDFLabel is the link text of every results row
const PDFLabel = "data source - pdf"

var dimensionLabels = map[pipeline.Dimension]string{
	pipeline.DimInspectionType: "Inspection Type",
	pipeline.DimYear:           "Years",
	pipeline.DimCountry:        "Countries",
	pipeline.DimCompany:        "Global Networks",
	pipeline.DimFirm:           "Firm Names",
}

var measureLabels = map[pipeline.Measure]string{
	pipeline.MeasureClients:        "Total Issuer Audit Clients",
	pipeline.MeasureAuditsReviewed: "Total Audits Reviewed",
	pipeline.MeasureDeficiencyRate: "Part I.A Deficiency Rate",
	pipeline.MeasureWordCount:      "Word Count",
	pipeline.MeasureSentiment:      "Sentiment Score",
}

type option struct {
	Value    string
	Selected bool
}

type filter struct {
	Label       string
	Name        string
	SearchName  string
	Search      string
	OfferedName string
	Options     []option
}

type rangeInput struct {
	Label     string
	MinName   string
	MaxName   string
	FloorName string
	CeilName  string
	Min       string
	Max       string
	Floor     string
	Ceil      string
	Step      string
}

type scorecard struct {
	Label string
	Value string
}

type panel struct {
	Title   string
	Caption string
	Src     string
	NoData  bool
}

type page struct {
	Title           string
	Error           string
	Hint            string
	Filters         []filter
	Ranges          []rangeInput
	NoBounds        bool
	IncludeSentinel bool
	SentinelField   string
	ThemeField      string
	Themes          []option
	Scorecards      []scorecard
	Panels          []panel
	Columns         []string
	Rows            []pipeline.ResultRow
	Matched         int
	Total           int
	PDFLabel        string
}

// buildPage lays a resolved selection out for the template
func buildPage(sel pipeline.Selection, out dashdomain.ResolveOutput, themes []string, theme string) page {
	p := page{
		Title:           PageTitle,
		Hint:            out.Hint,
		NoBounds:        out.Bounds.Empty,
		IncludeSentinel: sel.IncludeSentinel,
		SentinelField:   pipeline.FieldIncludeSentinel,
		ThemeField:      pipeline.FieldTheme,
		Columns:         pipeline.ResultColumns,
		Rows:            out.View.Results(),
		Matched:         out.View.Matched,
		Total:           out.View.Total,
		PDFLabel:        PDFLabel,
		Scorecards: []scorecard{
			{"Total Issuer Audit Clients", out.View.TotalClients.Display()},
			{"Average Sentiment", out.View.AvgSentiment.Display()},
			{"Average Word Count", out.View.AvgWordCount.Display()},
		},
	}

	for _, d := range pipeline.Dimensions() {
		picked := out.Criteria.Selected(d)
		f := filter{
			Label:       dimensionLabels[d],
			Name:        string(d),
			SearchName:  pipeline.SearchField(d),
			Search:      sel.Search[d],
			OfferedName: pipeline.OfferedField(d),
		}
		for _, v := range out.Available[d] {
			f.Options = append(f.Options, option{Value: v, Selected: slices.Contains(picked, v)})
		}
		p.Filters = append(p.Filters, f)
	}

	if !out.Bounds.Empty {
		for _, m := range pipeline.Measures() {
			b := out.Bounds.Ranges[m]
			cur := b
			if r := out.Criteria.RangeOf(m); r != nil {
				cur = *r
			}
			p.Ranges = append(p.Ranges, rangeInput{
				Label:     measureLabels[m],
				MinName:   pipeline.MinField(m),
				MaxName:   pipeline.MaxField(m),
				FloorName: pipeline.FloorField(m),
				CeilName:  pipeline.CeilField(m),
				Min:       num(cur.Min),
				Max:       num(cur.Max),
				Floor:     num(b.Min),
				Ceil:      num(b.Max),
				Step:      step(m),
			})
		}
	}

	for _, t := range themes {
		p.Themes = append(p.Themes, option{Value: t, Selected: t == theme})
	}

	for _, c := range charts.All(out.View) {
		p.Panels = append(p.Panels, panel{
			Title:   c.Title,
			Caption: c.Caption,
			Src:     chartSrc(c.ID),
			NoData:  c.NoData,
		})
	}
	return p
}

// chartSrc points an img at the session chart route
func chartSrc(id charts.ID) string {
	return "/charts/" + url.PathEscape(string(id)) + ".png"
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// step keeps the count measures on whole numbers
func step(m pipeline.Measure) string {
	if m == pipeline.MeasureAuditsReviewed || m == pipeline.MeasureWordCount {
		return "1"
	}
	return "any"
}
