// Package charts derives render-ready series from a filtered view
// Builders are pure; rendering to images lives in the render adapter
package charts

import (
	"pcaobdash/internal/core/pipeline"
	perr "pcaobdash/internal/platform/errors"
)

// Kind tells a renderer how to draw a chart
type Kind string

const (
	KindHeatmap    Kind = "heatmap"
	KindChoropleth Kind = "choropleth"
	KindLine       Kind = "line"
	KindBar        Kind = "bar"
	KindGroupedBar Kind = "grouped_bar"
	KindStackedBar Kind = "stacked_bar"
	KindPie        Kind = "pie"
	KindScatter    Kind = "scatter"
	KindBox        Kind = "box"
	KindHistogram  Kind = "histogram"
)

// ID names one dashboard panel
type ID string

const (
	SentimentHeatmap      ID = "sentiment-heatmap"
	ClientsChoropleth     ID = "clients-choropleth"
	SentimentTrend        ID = "sentiment-trend"
	DeficiencyTrend       ID = "deficiency-trend"
	WordCountByCompany    ID = "wordcount-by-company"
	ClientsShare          ID = "clients-share"
	ClientsByCountry      ID = "clients-by-country"
	ClientsVsDeficiency   ID = "clients-vs-deficiency"
	SentimentVsDeficiency ID = "sentiment-vs-deficiency"
	ClientsByYear         ID = "clients-by-year"
	SentimentBox          ID = "sentiment-box"
	WordCountHistogram    ID = "wordcount-histogram"
)

// Point is one plotted mark
// Label names the category or hover text; X carries the category index for categorical charts
type Point struct {
	Label string  `json:"label,omitempty"`
	Group string  `json:"group,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size,omitempty"`
}

// Series is one legend entry
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Cell is one heatmap square
type Cell struct {
	Row   string  `json:"row"`
	Col   string  `json:"col"`
	Value float64 `json:"value"`
}

// Box is a five-number summary of one group
type Box struct {
	Label  string  `json:"label"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	N      int     `json:"n"`
}

// Chart is a render-ready description of one panel
type Chart struct {
	ID         ID        `json:"id"`
	Kind       Kind      `json:"kind"`
	Title      string    `json:"title"`
	Caption    string    `json:"caption,omitempty"`
	XTitle     string    `json:"x_title,omitempty"`
	YTitle     string    `json:"y_title,omitempty"`
	Categories []string  `json:"categories,omitempty"`
	Rows       []string  `json:"rows,omitempty"`
	Series     []Series  `json:"series,omitempty"`
	Cells      []Cell    `json:"cells,omitempty"`
	Boxes      []Box     `json:"boxes,omitempty"`
	BinEdges   []float64 `json:"bin_edges,omitempty"`
	NoData     bool      `json:"no_data"`
}

type builder struct {
	id      ID
	kind    Kind
	title   string
	caption string
	xTitle  string
	yTitle  string
	fill    func(c *Chart, v pipeline.View)
}

// registry in page order
var registry = []builder{
	{SentimentHeatmap, KindHeatmap, "Heatmap of Sentiment Scores by Year and Global Network Company",
		"Highest sentiment per company and inspection year; darker cells are more negative.",
		"Year", "Company", fillSentimentHeatmap},
	{ClientsChoropleth, KindChoropleth, "Choropleth Map of Total Issuer Audit Clients",
		"Total issuer audit clients per country, ranked.",
		"Country", "Total Issuer Audit Clients", fillClientsChoropleth},
	{SentimentTrend, KindLine, "Average Sentiment by Year",
		"Mean sentiment per year, one line per global network company.",
		"Inspection Year", "Average Sentiment", fillSentimentTrend},
	{DeficiencyTrend, KindLine, "Average Part I.A Deficiency Rate by Year and Company",
		"Mean deficiency rate per year, one line per global network company.",
		"Inspection Year", "Part I.A Deficiency Rate (%)", fillDeficiencyTrend},
	{WordCountByCompany, KindBar, "Average Word Count by Global Network Company",
		"Typical report length per company; longer reports may reflect more detailed findings.",
		"Company", "Average Word Count", fillWordCountByCompany},
	{ClientsShare, KindPie, "Distribution of Total Issuer Audit Clients by Global Network Company",
		"Share of issuer audit clients held by each company.",
		"", "", fillClientsShare},
	{ClientsByCountry, KindGroupedBar, "Total Issuer Audit Clients by Country and Global Network Company",
		"Issuer audit clients per country, grouped by company.",
		"Country", "Total Issuer Audit Clients", fillClientsByCountry},
	{ClientsVsDeficiency, KindScatter, "Total Issuer Audit Clients vs. Part I.A Deficiency Rate",
		"Each point is a report; point size follows the client count.",
		"Total Issuer Audit Clients", "Part I.A Deficiency Rate", fillClientsVsDeficiency},
	{SentimentVsDeficiency, KindScatter, "Sentiment Score vs. Part I.A Deficiency Rate",
		"Each point is a report colored by firm; point size follows the sentiment magnitude.",
		"Sentiment Score", "Part I.A Deficiency Rate", fillSentimentVsDeficiency},
	{ClientsByYear, KindStackedBar, "Total Issuer Audit Clients by Inspection Year and Global Network Company",
		"Issuer audit clients per inspection year, stacked by company.",
		"Inspection Year", "Total Issuer Audit Clients", fillClientsByYear},
	{SentimentBox, KindBox, "Sentiment Average Distribution by Global Network Company",
		"Spread of sentiment scores per company: extremes, quartiles and median.",
		"Company", "Sentiment Score", fillSentimentBox},
	{WordCountHistogram, KindHistogram, "Distribution of Word Count by Global Network Company",
		"Report counts per word-count bin, one series per company.",
		"Word Count", "Reports", fillWordCountHistogram},
}

// IDs returns every chart id in page order
func IDs() []ID {
	out := make([]ID, len(registry))
	for i, b := range registry {
		out[i] = b.id
	}
	return out
}

// Lookup resolves a chart id from text
func Lookup(s string) (ID, bool) {
	for _, b := range registry {
		if string(b.id) == s {
			return b.id, true
		}
	}
	return "", false
}

// Build derives one chart from the view
func Build(id ID, v pipeline.View) (Chart, error) {
	for _, b := range registry {
		if b.id == id {
			return b.build(v), nil
		}
	}
	return Chart{}, perr.NotFoundf("chart %q not found", id)
}

// All derives every chart from the view in page order
func All(v pipeline.View) []Chart {
	out := make([]Chart, len(registry))
	for i, b := range registry {
		out[i] = b.build(v)
	}
	return out
}

func (b builder) build(v pipeline.View) Chart {
	c := Chart{ID: b.id, Kind: b.kind, Title: b.title, Caption: b.caption, XTitle: b.xTitle, YTitle: b.yTitle}
	if v.Empty() {
		c.NoData = true
		return c
	}
	b.fill(&c, v)
	return c
}
