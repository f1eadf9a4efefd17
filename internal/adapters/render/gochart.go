package render

import (
	"bytes"
	"image/color"
	"io"
	"math"
	"slices"

	"pcaobdash/internal/core/charts"
	perr "pcaobdash/internal/platform/errors"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ranked charts keep the largest categories only
const maxRankedBars = 30

type goChart interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func renderGoChart(c goChart) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func dc(c color.RGBA) drawing.Color { return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A} }

func background() chart.Style {
	return chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}}
}

// padded returns an axis range around [lo, hi] that go-chart accepts
// go-chart rejects a zero width range so a flat series gets a unit margin
func padded(lo, hi float64) *chart.ContinuousRange {
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return &chart.ContinuousRange{Min: 0, Max: 1}
	}
	if lo == hi {
		return &chart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	pad := (hi - lo) * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// fromZero is the value axis for bars
func fromZero(lo, hi float64) *chart.ContinuousRange {
	lo = math.Min(lo, 0)
	if hi <= lo {
		hi = lo + 1
	}
	return &chart.ContinuousRange{Min: lo, Max: hi * 1.05}
}

func extent(series []charts.Series, val func(charts.Point) float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, p := range s.Points {
			lo = math.Min(lo, val(p))
			hi = math.Max(hi, val(p))
		}
	}
	return lo, hi
}

func categoryTicks(cats []string) []chart.Tick {
	out := make([]chart.Tick, len(cats))
	for i, c := range cats {
		out[i] = chart.Tick{Value: float64(i), Label: c}
	}
	return out
}

func xy(points []charts.Point) ([]float64, []float64) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func withLegend(ch *chart.Chart) {
	if len(ch.Series) > 1 && len(ch.Series) <= maxLegend {
		ch.Elements = []chart.Renderable{chart.Legend(ch)}
	}
}

func (r Renderer) line(c charts.Chart, th Theme) ([]byte, error) {
	colors := th.Series(len(c.Series))
	series := make([]chart.Series, 0, len(c.Series))
	for i, s := range c.Series {
		xs, ys := xy(s.Points)
		col := dc(colors[i])
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: col, StrokeWidth: 2, DotColor: col, DotWidth: 3},
		})
	}
	ch := chart.Chart{
		Title:      c.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: background(),
		XAxis: chart.XAxis{
			Name:  c.XTitle,
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(len(c.Categories)) - 0.5},
			Ticks: categoryTicks(c.Categories),
		},
		YAxis:  chart.YAxis{Name: c.YTitle, Range: padded(extent(c.Series, func(p charts.Point) float64 { return p.Y }))},
		Series: series,
	}
	withLegend(&ch)
	return renderGoChart(ch)
}

func (r Renderer) scatter(c charts.Chart, th Theme) ([]byte, error) {
	_, maxSize := extent(c.Series, func(p charts.Point) float64 { return p.Size })
	colors := th.Series(len(c.Series))
	series := make([]chart.Series, 0, len(c.Series))
	for i, s := range c.Series {
		xs, ys := xy(s.Points)
		sizes := make([]float64, len(s.Points))
		for j, p := range s.Points {
			sizes[j] = 3
			if maxSize > 0 {
				sizes[j] += 9 * p.Size / maxSize
			}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotColor:    dc(colors[i]).WithAlpha(200),
				DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
					return sizes[index]
				},
			},
		})
	}
	ch := chart.Chart{
		Title:      c.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: background(),
		XAxis:      chart.XAxis{Name: c.XTitle, Range: padded(extent(c.Series, func(p charts.Point) float64 { return p.X }))},
		YAxis:      chart.YAxis{Name: c.YTitle, Range: padded(extent(c.Series, func(p charts.Point) float64 { return p.Y }))},
		Series:     series,
	}
	withLegend(&ch)
	return renderGoChart(ch)
}

func (r Renderer) barChart(c charts.Chart, bars []chart.Value) ([]byte, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, b := range bars {
		lo, hi = math.Min(lo, b.Value), math.Max(hi, b.Value)
	}
	width := max((r.Width-160)/max(len(bars), 1)-6, 4)
	bc := chart.BarChart{
		Title:      c.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: background(),
		BarWidth:   width,
		BarSpacing: 6,
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis:      chart.YAxis{Name: c.YTitle, Range: fromZero(lo, hi)},
		Bars:       bars,
	}
	return renderGoChart(bc)
}

func (r Renderer) bar(c charts.Chart, th Theme) ([]byte, error) {
	if len(c.Series) == 0 {
		return nil, perr.NoDataf("chart %s has no series", c.ID)
	}
	col := dc(th.Series(1)[0])
	bars := make([]chart.Value, 0, len(c.Series[0].Points))
	for _, p := range c.Series[0].Points {
		bars = append(bars, chart.Value{Label: p.Label, Value: p.Y, Style: chart.Style{FillColor: col, StrokeColor: col}})
	}
	return r.barChart(c, bars)
}

// ranked draws a per-country total as bars shaded by value, largest first
func (r Renderer) ranked(c charts.Chart, th Theme) ([]byte, error) {
	if len(c.Series) == 0 {
		return nil, perr.NoDataf("chart %s has no series", c.ID)
	}
	points := slices.Clone(c.Series[0].Points)
	slices.SortStableFunc(points, func(a, b charts.Point) int {
		switch {
		case a.Y > b.Y:
			return -1
		case a.Y < b.Y:
			return 1
		}
		return 0
	})
	if len(points) > maxRankedBars {
		points = points[:maxRankedBars]
	}
	top := 0.0
	if len(points) > 0 {
		top = points[0].Y
	}
	bars := make([]chart.Value, 0, len(points))
	for _, p := range points {
		f := 1.0
		if top > 0 {
			f = 0.15 + 0.85*p.Y/top
		}
		col := dc(th.At(f))
		bars = append(bars, chart.Value{Label: p.Label, Value: p.Y, Style: chart.Style{FillColor: col, StrokeColor: col}})
	}
	return r.barChart(c, bars)
}

func (r Renderer) pie(c charts.Chart, th Theme) ([]byte, error) {
	if len(c.Series) == 0 {
		return nil, perr.NoDataf("chart %s has no series", c.ID)
	}
	var slicesOf []charts.Point
	for _, p := range c.Series[0].Points {
		if p.Y > 0 {
			slicesOf = append(slicesOf, p)
		}
	}
	if len(slicesOf) == 0 {
		return nil, perr.NoDataf("chart %s has nothing to share out", c.ID)
	}
	colors := th.Series(len(slicesOf))
	values := make([]chart.Value, len(slicesOf))
	for i, p := range slicesOf {
		col := dc(colors[i])
		values[i] = chart.Value{Label: p.Label, Value: p.Y, Style: chart.Style{FillColor: col, StrokeColor: drawing.ColorWhite}}
	}
	pc := chart.PieChart{
		Title:      c.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: background(),
		Values:     values,
	}
	return renderGoChart(pc)
}
