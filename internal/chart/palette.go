package chart

import (
	"fmt"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
)

// rgb is one colormap anchor.
type rgb struct{ r, g, b float64 }

// Anchor tables for the two perceptually-uniform colormaps, sampled at
// equal intervals. Intermediate positions interpolate linearly; the
// approximation is close enough for categorical palettes.
var viridisAnchors = []rgb{
	{68, 1, 84}, {72, 40, 120}, {62, 74, 137}, {49, 104, 142},
	{38, 130, 142}, {31, 158, 137}, {53, 183, 121}, {109, 205, 89},
	{253, 231, 37},
}

var plasmaAnchors = []rgb{
	{13, 8, 135}, {84, 2, 163}, {139, 10, 165}, {185, 50, 137},
	{219, 92, 104}, {244, 136, 73}, {254, 188, 43}, {250, 220, 36},
	{240, 249, 33},
}

// sample evaluates a colormap at t in [0,1].
func sample(anchors []rgb, t float64) rgb {
	if t <= 0 {
		return anchors[0]
	}
	if t >= 1 {
		return anchors[len(anchors)-1]
	}
	pos := t * float64(len(anchors)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := anchors[i], anchors[i+1]
	return rgb{
		r: a.r + (b.r-a.r)*frac,
		g: a.g + (b.g-a.g)*frac,
		b: a.b + (b.b-a.b)*frac,
	}
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.r+0.5), int(c.g+0.5), int(c.b+0.5))
}

// palette returns n category colors spread across [0.1, 0.9] of the theme's
// colormap: viridis for light, plasma for dark. The range avoids the
// near-white and near-black colormap extremes. Sampling always spans at
// least two positions so a single category still gets a mid-range color.
func palette(theme contracts.Theme, n int) []string {
	anchors := viridisAnchors
	if theme.Name == contracts.ThemeDark {
		anchors = plasmaAnchors
	}

	samples := n
	if samples < 2 {
		samples = 2
	}

	colors := make([]string, 0, n)
	for i := 0; i < samples && len(colors) < n; i++ {
		t := 0.1 + 0.8*float64(i)/float64(samples-1)
		colors = append(colors, sample(anchors, t).hex())
	}
	return colors
}
