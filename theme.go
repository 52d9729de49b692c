package etoalium

import "fmt"

// Theme selects the site palette.
type Theme uint8

const (
	ThemeDark  Theme = iota // catppuccin Mocha
	ThemeLight              // catppuccin Latte
)

// Palette is the small set of colors the page chrome uses.
type Palette struct {
	Text       Color
	Base       Color
	Mantle     Color
	CanvasEdge Color
}

var (
	mochaPalette = newPalette("#cdd6f4", "#1e1e2e", "#181825")
	lattePalette = newPalette("#4c4f69", "#eff1f5", "#e6e9ef")
)

func newPalette(text, base, mantle string) Palette {
	p := Palette{
		Text:   MustHex(text),
		Base:   MustHex(base),
		Mantle: MustHex(mantle),
	}
	p.CanvasEdge = p.Base.Lighten(0.25)
	return p
}

// Palette returns the theme's colors.
func (t Theme) Palette() Palette {
	if t == ThemeLight {
		return lattePalette
	}
	return mochaPalette
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseTheme accepts "dark" or "light". The empty string selects dark.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "", "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	}
	return ThemeDark, fmt.Errorf("etoalium: unknown theme %q", s)
}
