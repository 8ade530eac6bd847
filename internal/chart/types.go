// Package chart turns series into draw plans: passive descriptions of
// wedges, bars, lines, ticks and colors that a presentation shell can paint
// at any resolution. Rendering is a pure function of its inputs and
// performs no I/O.
package chart

import "github.com/MartnzGO/Adattarhaz/internal/contracts"

// DrawPlan is the complete, self-contained description of one chart. Every
// color is re-derived from the theme passed to the render call, so plans
// from different runs never share state.
type DrawPlan struct {
	Archetype contracts.Archetype `json:"archetype"`
	Title     string              `json:"title"`
	XLabel    string              `json:"x_label,omitempty"`
	YLabel    string              `json:"y_label,omitempty"`

	// Figure colors, resolved from the theme.
	Background     string `json:"background"`
	PlotBackground string `json:"plot_background"`
	TextColor      string `json:"text_color"`

	// Placeholder is set when there is nothing to draw; the shell renders
	// PlaceholderText centered instead of a chart body.
	Placeholder     bool   `json:"placeholder"`
	PlaceholderText string `json:"placeholder_text,omitempty"`

	Wedges []Wedge `json:"wedges,omitempty"`
	Bars   []Bar   `json:"bars,omitempty"`
	Lines  []Line  `json:"lines,omitempty"`

	Ticks       []Tick `json:"ticks,omitempty"`
	RotateTicks bool   `json:"rotate_ticks"`

	GridX bool `json:"grid_x"`
	GridY bool `json:"grid_y"`

	// EqualAspect is set only for pie plans; a shell reusing one canvas
	// must reset aspect before drawing any other archetype.
	EqualAspect bool `json:"equal_aspect"`

	// WedgeEdgeColor separates adjacent wedges; pie plans only.
	WedgeEdgeColor string `json:"wedge_edge_color,omitempty"`
}

// Wedge is one pie slice.
type Wedge struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Proportion float64 `json:"proportion"`
	Color      string  `json:"color"`
	// Explode is the radial offset of the slice; only the largest slice of
	// a plan has a non-zero offset.
	Explode float64 `json:"explode"`
}

// Bar is one category bar.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// Line is one polyline with optional point markers.
type Line struct {
	Name   string      `json:"name"`
	Color  string      `json:"color"`
	Style  string      `json:"style"`  // solid, dashed
	Marker string      `json:"marker"` // o, x, or empty
	Width  float64     `json:"width"`
	Points []LinePoint `json:"points"`
}

// LinePoint positions one value on the shared ordinal x axis.
type LinePoint struct {
	Index int     `json:"index"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Tick is one displayed x-axis tick.
type Tick struct {
	Index int    `json:"index"`
	Label string `json:"label"`
}

const (
	lineStyleSolid  = "solid"
	lineStyleDashed = "dashed"

	markerCircle = "o"
	markerCross  = "x"

	noDataText = "No data available."
)
