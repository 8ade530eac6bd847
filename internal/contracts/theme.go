package contracts

import "fmt"

// ThemeName identifies one of the two supported color themes.
type ThemeName string

const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

// Theme is an immutable color table. There are exactly two variants; partial
// or custom themes are not supported. Every render call receives the active
// theme explicitly so a theme switch between runs can never leak into an
// in-flight plan.
type Theme struct {
	Name       ThemeName `json:"name"`
	Background string    `json:"background"`
	Foreground string    `json:"foreground"`
	WidgetBG   string    `json:"widget_bg"`
	ButtonBG   string    `json:"button_bg"`
	ButtonFG   string    `json:"button_fg"`
	Accent     string    `json:"accent"`
	PlotBG     string    `json:"plot_bg"`
}

// LightTheme returns the light color table.
func LightTheme() Theme {
	return Theme{
		Name:       ThemeLight,
		Background: "#f0f0f0",
		Foreground: "#000000",
		WidgetBG:   "#ffffff",
		ButtonBG:   "#e0e0e0",
		ButtonFG:   "#000000",
		Accent:     "#0078D7",
		PlotBG:     "#ffffff",
	}
}

// DarkTheme returns the dark color table.
func DarkTheme() Theme {
	return Theme{
		Name:       ThemeDark,
		Background: "#2e2e2e",
		Foreground: "#ffffff",
		WidgetBG:   "#3c3c3c",
		ButtonBG:   "#444444",
		ButtonFG:   "#ffffff",
		Accent:     "#4db8ff",
		PlotBG:     "#383838",
	}
}

// ThemeByName resolves a theme name. An empty name defaults to light.
func ThemeByName(name string) (Theme, error) {
	switch ThemeName(name) {
	case ThemeLight, "":
		return LightTheme(), nil
	case ThemeDark:
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want light or dark)", name)
	}
}
