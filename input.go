package etoalium

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Link binds a key to a site path, standing in for the site's anchors.
type Link struct {
	Key  ebiten.Key
	Path string
}

// DefaultLinks are the keyboard shortcuts for every page.
var DefaultLinks = []Link{
	{ebiten.KeyH, HomeRoute().Path()},
	{ebiten.KeyW, WorksIndexRoute().Path()},
	{ebiten.Key1, WorkRoute(SlugClockExample).Path()},
	{ebiten.Key2, WorkRoute(SlugWavingDotsSquare).Path()},
	{ebiten.Key3, WorkRoute(SlugSeigaiha).Path()},
}

const (
	keyBack        = ebiten.KeyBackspace
	keyToggleTheme = ebiten.KeyT
	keyToggleFPS   = ebiten.KeyF
)

// pollInput turns this tick's key presses into queued navigation and
// chrome toggles.
func (a *App) pollInput() {
	for _, l := range DefaultLinks {
		if inpututil.IsKeyJustPressed(l.Key) {
			a.Navigate(l.Path)
		}
	}
	if inpututil.IsKeyJustPressed(keyBack) {
		a.Back()
	}
	if inpututil.IsKeyJustPressed(keyToggleTheme) {
		a.SetTheme(a.theme.Toggle())
	}
	if inpututil.IsKeyJustPressed(keyToggleFPS) {
		a.cfg.ShowFPS = !a.cfg.ShowFPS
	}
}
