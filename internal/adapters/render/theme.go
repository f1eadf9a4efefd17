package render

import (
	"image/color"
	"math"
	"slices"
	"strings"

	perr "pcaobdash/internal/platform/errors"
)

// Theme names a sequential color scale
type Theme string

const (
	Viridis Theme = "viridis"
	Cividis Theme = "cividis"
	Blues   Theme = "blues"
	Reds    Theme = "reds"
	Plasma  Theme = "plasma"
	Inferno Theme = "inferno"

	DefaultTheme = Viridis
)

// color stops sampled evenly along each scale
var stops = map[Theme][]uint32{
	Viridis: {0x440154, 0x482878, 0x3e4989, 0x31688e, 0x26828e, 0x1f9e89, 0x35b779, 0x6ece58, 0xb5de2b, 0xfde725},
	Cividis: {0x00224e, 0x123570, 0x3b496c, 0x575d6d, 0x707173, 0x8a8779, 0xa69d75, 0xc4b56c, 0xe4cf5b, 0xfee838},
	Blues:   {0xf7fbff, 0xdeebf7, 0xc6dbef, 0x9ecae1, 0x6baed6, 0x4292c6, 0x2171b5, 0x08519c, 0x08306b},
	Reds:    {0xfff5f0, 0xfee0d2, 0xfcbba1, 0xfc9272, 0xfb6a4a, 0xef3b2c, 0xcb181d, 0xa50f15, 0x67000d},
	Plasma:  {0x0d0887, 0x46039f, 0x7201a8, 0x9c179e, 0xbd3786, 0xd8576b, 0xed7953, 0xfb9f3a, 0xfdca26, 0xf0f921},
	Inferno: {0x000004, 0x1b0c41, 0x4a0c6b, 0x781c6d, 0xa52c60, 0xcf4446, 0xed6925, 0xfb9b06, 0xf7d13d, 0xfcffa4},
}

// Themes lists the accepted theme names in menu order
func Themes() []string {
	return []string{string(Viridis), string(Cividis), string(Blues), string(Reds), string(Plasma), string(Inferno)}
}

// ParseTheme resolves a theme name; empty means the default
func ParseTheme(s string) (Theme, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultTheme, nil
	}
	if t := Theme(s); t.Valid() {
		return t, nil
	}
	return "", perr.WithField(perr.InvalidArgf("unknown theme %q", s), "theme")
}

// Valid reports whether t is a known theme
func (t Theme) Valid() bool { return slices.Contains(Themes(), string(t)) }

// At returns the scale color at f in [0, 1]; values outside are clamped
func (t Theme) At(f float64) color.RGBA {
	s, ok := stops[t]
	if !ok {
		s = stops[DefaultTheme]
	}
	if math.IsNaN(f) || f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	pos := f * float64(len(s)-1)
	i := int(pos)
	if i >= len(s)-1 {
		return rgb(s[len(s)-1])
	}
	a, b := rgb(s[i]), rgb(s[i+1])
	w := pos - float64(i)
	return color.RGBA{R: mix(a.R, b.R, w), G: mix(a.G, b.G, w), B: mix(a.B, b.B, w), A: 0xff}
}

// Series returns n distinct colors for categorical marks
// light ends of the single hue scales are skipped so marks stay visible on white
func (t Theme) Series(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	lo, hi := 0.0, 0.9
	if t == Blues || t == Reds {
		lo, hi = 0.3, 1
	}
	out := make([]color.RGBA, n)
	for i := range out {
		f := lo
		if n > 1 {
			f = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		out[i] = t.At(f)
	}
	return out
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

func mix(a, b uint8, w float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*w))
}
