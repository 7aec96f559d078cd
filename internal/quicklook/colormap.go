package quicklook

import (
	"image/color"

	"gonum.org/v1/plot/palette"
)

// Grays returns an n-step grayscale palette, the amplitude panel's scale.
func Grays(n int) palette.Palette {
	return grayPalette(n)
}

type grayPalette int

func (g grayPalette) Colors() []color.Color {
	colors := make([]color.Color, int(g))
	for i := range colors {
		v := uint8(255 * i / (int(g) - 1))
		colors[i] = color.Gray{Y: v}
	}
	return colors
}

// Cyclic returns the rainbow palette used for phase, matching the
// perceptually cyclic scale of the original quicklooks.
func Cyclic(n int) palette.Palette {
	return palette.Rainbow(n, palette.Blue, palette.Red, 1, 1, 1)
}

// linearMap adapts a Palette to the ColorMap interface the colorbar plotter
// needs: a linear mapping from [min, max] onto the palette's colors.
type linearMap struct {
	colors   []color.Color
	min, max float64
	alpha    float64
}

func newLinearMap(p palette.Palette) *linearMap {
	return &linearMap{colors: p.Colors(), alpha: 1}
}

func (m *linearMap) At(v float64) (color.Color, error) {
	if v != v {
		return nil, palette.ErrNaN
	}
	if v < m.min {
		return nil, palette.ErrUnderflow
	}
	if v > m.max {
		return nil, palette.ErrOverflow
	}
	span := m.max - m.min
	idx := 0
	if span > 0 {
		idx = int(float64(len(m.colors)-1) * (v - m.min) / span)
	}
	return m.colors[idx], nil
}

func (m *linearMap) Min() float64       { return m.min }
func (m *linearMap) SetMin(v float64)   { m.min = v }
func (m *linearMap) Max() float64       { return m.max }
func (m *linearMap) SetMax(v float64)   { m.max = v }
func (m *linearMap) Alpha() float64     { return m.alpha }
func (m *linearMap) SetAlpha(v float64) { m.alpha = v }

func (m *linearMap) Palette(n int) palette.Palette {
	if n == len(m.colors) {
		return palette.Palette(staticPalette(m.colors))
	}
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = m.colors[i*(len(m.colors)-1)/max(n-1, 1)]
	}
	return staticPalette(colors)
}

type staticPalette []color.Color

func (p staticPalette) Colors() []color.Color { return p }
