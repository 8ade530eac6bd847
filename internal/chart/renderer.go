package chart

import "github.com/MartnzGO/Adattarhaz/internal/contracts"

// Render produces the draw plan for one series. It is pure: identical
// inputs yield identical plans, and a plan never references state from a
// previous render. An empty series (and, for pie, an all-zero one) yields a
// placeholder plan rather than an error.
func Render(series contracts.Series, archetype contracts.Archetype, theme contracts.Theme, title string) DrawPlan {
	plan := newPlan(archetype, theme, title)

	if len(series) == 0 {
		plan.Placeholder = true
		plan.PlaceholderText = noDataText
		return plan
	}

	switch archetype {
	case contracts.ArchetypePie:
		renderPie(&plan, series, theme)
	case contracts.ArchetypeCategoricalBar:
		renderBar(&plan, series, theme)
	default:
		renderTimeLine(&plan, series, theme)
	}
	return plan
}

// newPlan resolves the figure-level settings every archetype shares. All
// colors come from the theme argument of this call; nothing is cached.
func newPlan(archetype contracts.Archetype, theme contracts.Theme, title string) DrawPlan {
	return DrawPlan{
		Archetype:      archetype,
		Title:          title,
		Background:     theme.Background,
		PlotBackground: theme.PlotBG,
		TextColor:      theme.Foreground,
	}
}

func renderPie(plan *DrawPlan, series contracts.Series, theme contracts.Theme) {
	total := series.Sum()
	if total <= 0 {
		plan.Placeholder = true
		plan.PlaceholderText = noDataText
		return
	}

	colors := palette(theme, len(series))
	maxIdx := series.MaxIndex()

	plan.Wedges = make([]Wedge, len(series))
	for i, p := range series {
		w := Wedge{
			Label:      p.X,
			Value:      p.Y,
			Proportion: p.Y / total,
			Color:      colors[i],
		}
		if i == maxIdx {
			w.Explode = 0.1
		}
		plan.Wedges[i] = w
	}

	plan.EqualAspect = true
	plan.WedgeEdgeColor = theme.Background
}

func renderBar(plan *DrawPlan, series contracts.Series, theme contracts.Theme) {
	colors := palette(theme, len(series))

	plan.Bars = make([]Bar, len(series))
	for i, p := range series {
		plan.Bars[i] = Bar{Label: p.X, Value: p.Y, Color: colors[i]}
	}

	// Every category keeps its label; rotation keeps long labels readable.
	plan.Ticks = make([]Tick, len(series))
	for i, p := range series {
		plan.Ticks[i] = Tick{Index: i, Label: p.X}
	}
	plan.RotateTicks = true
	plan.GridY = true
}

func renderTimeLine(plan *DrawPlan, series contracts.Series, theme contracts.Theme) {
	points := make([]LinePoint, len(series))
	for i, p := range series {
		points[i] = LinePoint{Index: i, Label: p.X, Value: p.Y}
	}

	plan.Lines = []Line{{
		Name:   plan.Title,
		Color:  theme.Accent,
		Style:  lineStyleSolid,
		Marker: markerCircle,
		Width:  2,
		Points: points,
	}}

	plan.Ticks = thinTicks(series.Labels())
	plan.RotateTicks = true
	plan.GridX = true
	plan.GridY = true
}

// tickStride keeps roughly 12 ticks visible regardless of series length.
func tickStride(n int) int {
	stride := n / 12
	if stride < 1 {
		stride = 1
	}
	return stride
}

// thinTicks emits ticks at indices 0, stride, 2*stride, … clipped to the
// last index.
func thinTicks(labels []string) []Tick {
	stride := tickStride(len(labels))
	var ticks []Tick
	for i := 0; i < len(labels); i += stride {
		ticks = append(ticks, Tick{Index: i, Label: labels[i]})
	}
	return ticks
}
