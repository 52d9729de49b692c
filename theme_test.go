package etoalium

import "testing"

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#325FA2")
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, "R", c.R, 0x32/255.0)
	assertNear(t, "B", c.B, 0xa2/255.0)
	if c.A != 1 {
		t.Errorf("alpha = %v, want 1", c.A)
	}
	if c.Hex() != "#325fa2" {
		t.Errorf("Hex = %q", c.Hex())
	}
	if _, err := ParseHex("blue"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestGrayClamps(t *testing.T) {
	if Gray(2) != ColorWhite {
		t.Errorf("Gray(2) = %+v", Gray(2))
	}
	if Gray(-1) != ColorBlack {
		t.Errorf("Gray(-1) = %+v", Gray(-1))
	}
}

func TestLightenKeepsAlpha(t *testing.T) {
	c := Color{0.1, 0.1, 0.2, 0.5}
	l := c.Lighten(0.3)
	if l.A != 0.5 {
		t.Errorf("alpha = %v, want 0.5", l.A)
	}
	if l.R+l.G+l.B <= c.R+c.G+c.B {
		t.Errorf("Lighten did not brighten: %+v -> %+v", c, l)
	}
}

func TestToRGBAPremultiplies(t *testing.T) {
	got := Color{1, 0.5, 0, 0.5}.toRGBA()
	if got.A != 128 || got.R != 128 || got.G != 64 || got.B != 0 {
		t.Errorf("toRGBA = %+v", got)
	}
}

func TestThemePalettes(t *testing.T) {
	dark, light := ThemeDark.Palette(), ThemeLight.Palette()
	if dark.Base.Hex() != "#1e1e2e" || light.Base.Hex() != "#eff1f5" {
		t.Errorf("bases = %s, %s", dark.Base.Hex(), light.Base.Hex())
	}
	if dark.Text.Hex() != "#cdd6f4" || light.Text.Hex() != "#4c4f69" {
		t.Errorf("texts = %s, %s", dark.Text.Hex(), light.Text.Hex())
	}
	if dark.CanvasEdge == dark.Base {
		t.Error("canvas edge does not stand out from the base")
	}
}

func TestThemeToggle(t *testing.T) {
	if ThemeDark.Toggle() != ThemeLight || ThemeLight.Toggle() != ThemeDark {
		t.Error("Toggle does not alternate")
	}
}

func TestParseTheme(t *testing.T) {
	for s, want := range map[string]Theme{"": ThemeDark, "dark": ThemeDark, "light": ThemeLight} {
		got, err := ParseTheme(s)
		if err != nil || got != want {
			t.Errorf("ParseTheme(%q) = %v, %v", s, got, err)
		}
		if got.String() != s && s != "" {
			t.Errorf("String() = %q, want %q", got.String(), s)
		}
	}
	if _, err := ParseTheme("sepia"); err == nil {
		t.Error("expected error for unknown theme")
	}
}
