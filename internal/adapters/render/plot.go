package render

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"pcaobdash/internal/core/charts"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// screen DPI used by the gonum image canvas
const dpi = 96

func (r Renderer) length(px int) vg.Length { return vg.Length(px) * vg.Inch / dpi }

func newPlot(c charts.Chart) *plot.Plot {
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XTitle
	p.Y.Label.Text = c.YTitle
	p.Legend.Top = true
	return p
}

func (r Renderer) save(p *plot.Plot) ([]byte, error) {
	w, err := p.WriterTo(r.length(r.Width), r.length(r.Height), "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rect(x0, y0, x1, y1 float64, fill color.Color) (*plotter.Polygon, error) {
	poly, err := plotter.NewPolygon(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
	if err != nil {
		return nil, err
	}
	poly.Color = fill
	poly.LineStyle.Width = 0
	return poly, nil
}

func segment(x0, y0, x1, y1 float64, col color.Color) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return nil, err
	}
	l.Color = col
	l.Width = vg.Points(1.2)
	return l, nil
}

// heatmap draws one square per populated cell; absent cells stay blank
func (r Renderer) heatmap(c charts.Chart, th Theme) ([]byte, error) {
	p := newPlot(c)
	cols := make(map[string]int, len(c.Categories))
	for i, v := range c.Categories {
		cols[v] = i
	}
	rows := make(map[string]int, len(c.Rows))
	for i, v := range c.Rows {
		rows[v] = i
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, cell := range c.Cells {
		lo, hi = math.Min(lo, cell.Value), math.Max(hi, cell.Value)
	}
	span := hi - lo
	for _, cell := range c.Cells {
		f := 0.5
		if span > 0 {
			f = (cell.Value - lo) / span
		}
		x, y := float64(cols[cell.Col]), float64(rows[cell.Row])
		sq, err := rect(x-0.5, y-0.5, x+0.5, y+0.5, th.At(f))
		if err != nil {
			return nil, err
		}
		p.Add(sq)
	}
	if len(c.Cells) > 0 {
		for _, e := range []struct {
			label string
			f     float64
			v     float64
		}{{"low", 0, lo}, {"high", 1, hi}} {
			sw, err := rect(0, 0, 1, 1, th.At(e.f))
			if err != nil {
				return nil, err
			}
			p.Legend.Add(fmt.Sprintf("%s %.3f", e.label, e.v), sw)
		}
	}
	p.NominalX(c.Categories...)
	p.NominalY(c.Rows...)
	p.X.Min, p.X.Max = -0.5, float64(len(c.Categories))-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(len(c.Rows))-0.5
	return r.save(p)
}

// bars draws one bar per series at each category, side by side or stacked
func (r Renderer) bars(c charts.Chart, th Theme, stacked bool) ([]byte, error) {
	p := newPlot(c)
	n := max(len(c.Categories), 1)
	slot := r.length(r.Width) * 0.75 / vg.Length(n)
	width := slot * 0.8
	if !stacked && len(c.Series) > 0 {
		width = slot / vg.Length(len(c.Series))
	}
	width = max(width, vg.Points(1))

	colors := th.Series(len(c.Series))
	var below *plotter.BarChart
	for i, s := range c.Series {
		vals := make(plotter.Values, len(c.Categories))
		for _, pt := range s.Points {
			if j := int(pt.X); j >= 0 && j < len(vals) {
				vals[j] = pt.Y
			}
		}
		b, err := plotter.NewBarChart(vals, width)
		if err != nil {
			return nil, err
		}
		b.Color = colors[i]
		b.LineStyle.Width = 0
		if stacked {
			if below != nil {
				b.StackOn(below)
			}
			below = b
		} else {
			b.Offset = width * vg.Length(float64(i)-float64(len(c.Series)-1)/2)
		}
		p.Add(b)
		if i < maxLegend {
			p.Legend.Add(s.Name, b)
		}
	}
	p.NominalX(c.Categories...)
	return r.save(p)
}

// box draws precomputed five-number summaries: a Q1..Q3 box, a median bar and min/max whiskers
func (r Renderer) box(c charts.Chart, th Theme) ([]byte, error) {
	p := newPlot(c)
	colors := th.Series(len(c.Boxes))
	ink := color.RGBA{A: 0xff}
	labels := make([]string, len(c.Boxes))
	for i, b := range c.Boxes {
		labels[i] = b.Label
		x := float64(i)
		body, err := rect(x-0.3, b.Q1, x+0.3, b.Q3, colors[i])
		if err != nil {
			return nil, err
		}
		p.Add(body)
		for _, seg := range [][4]float64{
			{x - 0.3, b.Median, x + 0.3, b.Median},
			{x, b.Min, x, b.Q1},
			{x, b.Q3, x, b.Max},
			{x - 0.15, b.Min, x + 0.15, b.Min},
			{x - 0.15, b.Max, x + 0.15, b.Max},
		} {
			l, err := segment(seg[0], seg[1], seg[2], seg[3], ink)
			if err != nil {
				return nil, err
			}
			p.Add(l)
		}
	}
	p.NominalX(labels...)
	p.X.Min, p.X.Max = -0.5, float64(len(c.Boxes))-0.5
	return r.save(p)
}

// histogram stacks each series' bin counts; tick labels show every fourth bin edge
func (r Renderer) histogram(c charts.Chart, th Theme) ([]byte, error) {
	bins := max(len(c.BinEdges)-1, 0)
	labels := make([]string, bins)
	for i := range labels {
		if i%4 == 0 {
			labels[i] = fmt.Sprintf("%.0f", c.BinEdges[i])
		}
	}
	grid := c
	grid.Categories = labels
	grid.Series = make([]charts.Series, len(c.Series))
	for si, s := range c.Series {
		pts := make([]charts.Point, len(s.Points))
		for i, pt := range s.Points {
			pts[i] = charts.Point{X: float64(i), Y: pt.Y}
		}
		grid.Series[si] = charts.Series{Name: s.Name, Points: pts}
	}
	return r.bars(grid, th, true)
}
