package etoalium

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshSecs is how often the FPS readout is refreshed.
const fpsRefreshSecs = 0.5

// fpsCounter caches the FPS/TPS readout so the text only changes twice a
// second.
type fpsCounter struct {
	elapsed float64
	label   string
}

func (f *fpsCounter) update(dt float64) {
	f.elapsed += dt
	if f.label != "" && f.elapsed < fpsRefreshSecs {
		return
	}
	f.elapsed = 0
	f.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// draw prints the readout in the bottom-left corner over a translucent box.
func (f *fpsCounter) draw(screen *ebiten.Image) {
	if f.label == "" {
		return
	}
	h := screen.Bounds().Dy()
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	ctx := newImageContext(screen)
	ctx.SetFillColor(Color{0, 0, 0, 0.5})
	fillRect(ctx, 0, float64(h-32), 100, 32)
	ebitenutil.DebugPrintAt(screen, f.label, 2, h-32)
}
