package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	light, err := ThemeByName("light")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, light.Name)
	assert.Equal(t, "#0078D7", light.Accent)

	dark, err := ThemeByName("dark")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, dark.Name)
	assert.Equal(t, "#4db8ff", dark.Accent)

	// Empty defaults to light.
	def, err := ThemeByName("")
	require.NoError(t, err)
	assert.Equal(t, light, def)

	_, err = ThemeByName("solarized")
	assert.Error(t, err)
}
