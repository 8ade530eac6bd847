package chart

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestPalette_CountAndFormat(t *testing.T) {
	for _, n := range []int{1, 2, 3, 10, 15} {
		colors := palette(contracts.LightTheme(), n)
		require.Len(t, colors, n, "n=%d", n)
		for _, c := range colors {
			assert.Regexp(t, hexColor, c)
		}
	}
}

func TestPalette_DistinctColors(t *testing.T) {
	colors := palette(contracts.LightTheme(), 10)
	seen := make(map[string]bool)
	for _, c := range colors {
		assert.False(t, seen[c], "duplicate color %s", c)
		seen[c] = true
	}
}

// The two themes read from different colormaps.
func TestPalette_ThemeSelectsColormap(t *testing.T) {
	light := palette(contracts.LightTheme(), 5)
	dark := palette(contracts.DarkTheme(), 5)
	assert.NotEqual(t, light, dark)
}

// A single category still gets the color at 0.1, not a colormap extreme.
func TestPalette_SingleCategoryMidRange(t *testing.T) {
	one := palette(contracts.LightTheme(), 1)
	two := palette(contracts.LightTheme(), 2)
	require.Len(t, one, 1)
	assert.Equal(t, two[0], one[0])
}

func TestSample_Clamps(t *testing.T) {
	assert.Equal(t, viridisAnchors[0], sample(viridisAnchors, -0.5))
	assert.Equal(t, viridisAnchors[len(viridisAnchors)-1], sample(viridisAnchors, 1.5))
}
