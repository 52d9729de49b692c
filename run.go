package etoalium

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Resizable lets the user resize the window; the page is scaled to fit.
	Resizable bool
}

// Run opens a window and runs app until the window is closed or app's
// Update returns an error. The canvas is unmounted on return.
func Run(app *App, cfg RunConfig) error {
	defer app.Close()

	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w, h = app.cfg.Width, app.cfg.Height
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	app.log.Info().Str("title", cfg.Title).Int("width", w).Int("height", h).Msg("window opening")
	return ebiten.RunGame(app)
}
