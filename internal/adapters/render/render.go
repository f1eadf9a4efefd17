// Package render draws chart specs as PNG images
// Axis charts go through go-chart; matrix and distribution charts through gonum plot
package render

import (
	"bytes"

	"pcaobdash/internal/core/charts"
	perr "pcaobdash/internal/platform/errors"
)

const (
	DefaultWidth  = 960
	DefaultHeight = 540

	// legends past this many entries cover the plot area
	maxLegend = 12
)

// Renderer draws at a fixed pixel size
type Renderer struct {
	Width  int
	Height int
}

// New returns a Renderer; non-positive sizes fall back to the defaults
func New(width, height int) Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return Renderer{Width: width, Height: height}
}

// PNG renders one chart
// A chart without data is a NoData error so callers can show the marker instead of an image
func (r Renderer) PNG(c charts.Chart, theme Theme) ([]byte, error) {
	if c.NoData {
		return nil, perr.NoDataf("chart %s has no data for the current filters", c.ID)
	}
	if !theme.Valid() {
		return nil, perr.WithField(perr.InvalidArgf("unknown theme %q", theme), "theme")
	}
	if r.Width <= 0 || r.Height <= 0 {
		r = New(r.Width, r.Height)
	}

	var (
		out []byte
		err error
	)
	switch c.Kind {
	case charts.KindLine:
		out, err = r.line(c, theme)
	case charts.KindBar:
		out, err = r.bar(c, theme)
	case charts.KindChoropleth:
		out, err = r.ranked(c, theme)
	case charts.KindPie:
		out, err = r.pie(c, theme)
	case charts.KindScatter:
		out, err = r.scatter(c, theme)
	case charts.KindHeatmap:
		out, err = r.heatmap(c, theme)
	case charts.KindGroupedBar:
		out, err = r.bars(c, theme, false)
	case charts.KindStackedBar:
		out, err = r.bars(c, theme, true)
	case charts.KindBox:
		out, err = r.box(c, theme)
	case charts.KindHistogram:
		out, err = r.histogram(c, theme)
	default:
		return nil, perr.InvalidArgf("cannot render chart kind %q", c.Kind)
	}
	if err != nil {
		if _, ok := perr.As(err); ok {
			return nil, err
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "render %s", c.ID)
	}
	return out, nil
}

// IsPNG reports whether b starts with the PNG signature
func IsPNG(b []byte) bool { return bytes.HasPrefix(b, []byte("\x89PNG\r\n\x1a\n")) }
