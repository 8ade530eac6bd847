package chart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
)

func TestRender_Pie_ProportionsSumToOne(t *testing.T) {
	series := contracts.Series{
		{X: "credit_card", Y: 70000},
		{X: "boleto", Y: 20000},
		{X: "voucher", Y: 6000},
		{X: "debit_card", Y: 4000},
	}

	plan := Render(series, contracts.ArchetypePie, contracts.LightTheme(), "Payment Type Distribution")
	require.Len(t, plan.Wedges, 4)

	var total float64
	for _, w := range plan.Wedges {
		total += w.Proportion
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.True(t, plan.EqualAspect)
}

func TestRender_Pie_ExplodesFirstMax(t *testing.T) {
	series := contracts.Series{
		{X: "a", Y: 10},
		{X: "b", Y: 50},
		{X: "c", Y: 50},
	}

	plan := Render(series, contracts.ArchetypePie, contracts.LightTheme(), "Distribution")

	exploded := 0
	for i, w := range plan.Wedges {
		if w.Explode > 0 {
			exploded++
			assert.Equal(t, 1, i, "tie must explode the first max by series order")
			assert.InDelta(t, 0.1, w.Explode, 1e-9)
		}
	}
	assert.Equal(t, 1, exploded, "exactly one wedge is exploded")
}

func TestRender_Pie_AllZeroIsPlaceholder(t *testing.T) {
	series := contracts.Series{{X: "a", Y: 0}, {X: "b", Y: 0}}

	plan := Render(series, contracts.ArchetypePie, contracts.DarkTheme(), "Distribution")
	assert.True(t, plan.Placeholder)
	assert.Equal(t, "No data available.", plan.PlaceholderText)
	assert.Empty(t, plan.Wedges)
}

func TestRender_EmptySeriesIsPlaceholder(t *testing.T) {
	for _, archetype := range []contracts.Archetype{
		contracts.ArchetypePie,
		contracts.ArchetypeCategoricalBar,
		contracts.ArchetypeTimeLine,
	} {
		plan := Render(nil, archetype, contracts.LightTheme(), "empty")
		assert.True(t, plan.Placeholder, "archetype %s", archetype)
		assert.Equal(t, "No data available.", plan.PlaceholderText)
	}
}

func TestRender_Bar_YGridOnlyAndRotatedTicks(t *testing.T) {
	series := contracts.Series{
		{X: "SP", Y: 400}, {X: "RJ", Y: 300}, {X: "MG", Y: 200},
	}

	plan := Render(series, contracts.ArchetypeCategoricalBar, contracts.LightTheme(), "Orders Count by State")
	require.Len(t, plan.Bars, 3)
	assert.Len(t, plan.Ticks, 3, "bars keep every category label")
	assert.True(t, plan.RotateTicks)
	assert.True(t, plan.GridY)
	assert.False(t, plan.GridX)
}

func TestRender_TimeLine_UsesAccentAndFullGrid(t *testing.T) {
	series := contracts.Series{{X: "2023-01", Y: 1}, {X: "2023-02", Y: 2}}

	theme := contracts.DarkTheme()
	plan := Render(series, contracts.ArchetypeTimeLine, theme, "Monthly Revenue")
	require.Len(t, plan.Lines, 1)
	assert.Equal(t, theme.Accent, plan.Lines[0].Color)
	assert.Equal(t, "o", plan.Lines[0].Marker)
	assert.True(t, plan.GridX)
	assert.True(t, plan.GridY)
}

// Displayed tick indices are exactly 0, stride, 2*stride, … clipped to L-1,
// with stride = max(1, L/12).
func TestRender_TimeLine_TickThinning(t *testing.T) {
	for _, length := range []int{1, 5, 11, 12, 13, 24, 25, 36, 100} {
		t.Run(fmt.Sprintf("len_%d", length), func(t *testing.T) {
			series := make(contracts.Series, length)
			for i := range series {
				series[i] = contracts.Point{X: fmt.Sprintf("m%02d", i), Y: float64(i)}
			}

			plan := Render(series, contracts.ArchetypeTimeLine, contracts.LightTheme(), "t")

			stride := length / 12
			if stride < 1 {
				stride = 1
			}
			wantCount := (length + stride - 1) / stride
			require.Len(t, plan.Ticks, wantCount)

			for i, tick := range plan.Ticks {
				assert.Equal(t, i*stride, tick.Index)
				assert.LessOrEqual(t, tick.Index, length-1)
				assert.Equal(t, series[tick.Index].X, tick.Label)
			}
		})
	}
}

// Colors must come from the theme passed to the call, never from an
// earlier render.
func TestRender_ThemeIsRederivedPerCall(t *testing.T) {
	series := contracts.Series{{X: "a", Y: 1}, {X: "b", Y: 2}, {X: "c", Y: 3}}

	light := Render(series, contracts.ArchetypePie, contracts.LightTheme(), "d")
	dark := Render(series, contracts.ArchetypePie, contracts.DarkTheme(), "d")
	lightAgain := Render(series, contracts.ArchetypePie, contracts.LightTheme(), "d")

	assert.NotEqual(t, light.Wedges[0].Color, dark.Wedges[0].Color)
	assert.Equal(t, light, lightAgain, "render is pure")
	assert.Equal(t, contracts.LightTheme().Background, light.WedgeEdgeColor)
}

// A pie plan sets equal aspect; any other plan from the same inputs must
// not carry it over.
func TestRender_AspectResetAcrossArchetypes(t *testing.T) {
	series := contracts.Series{{X: "a", Y: 1}, {X: "b", Y: 2}}

	pie := Render(series, contracts.ArchetypePie, contracts.LightTheme(), "d")
	line := Render(series, contracts.ArchetypeTimeLine, contracts.LightTheme(), "d")

	assert.True(t, pie.EqualAspect)
	assert.False(t, line.EqualAspect)
	assert.Empty(t, line.WedgeEdgeColor)
}
