package etoalium

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	headerPadX  = 12
	logoWidth   = 50
	logoHeight  = 40
	canvasFrame = 2
)

// imageSource is implemented by surfaces that can be composited.
type imageSource interface {
	Image() *ebiten.Image
}

// Draw implements ebiten.Game. It runs the frame scheduler, which paints the
// mounted canvas, then composites the page chrome around it.
func (a *App) Draw(screen *ebiten.Image) {
	pal := a.theme.Palette()

	var t0 time.Time
	if a.cfg.Debug {
		t0 = time.Now()
	}

	a.sched.RunFrame(a.clock.Now())

	if a.cfg.Debug {
		a.stats.frameTime = time.Since(t0)
		t0 = time.Now()
	}

	screen.Fill(pal.Mantle.toRGBA())
	a.drawHeader(screen, pal)
	a.drawContent(screen, pal)

	if a.cfg.Debug {
		a.stats.compositeTime = time.Since(t0)
		a.stats.tasks = a.sched.Len()
		a.debugLog()
	}
	if a.cfg.ShowFPS {
		a.fps.draw(screen)
	}
}

func (a *App) drawHeader(screen *ebiten.Image, pal Palette) {
	ctx := newImageContext(screen)
	ctx.Translate(headerPadX, (headerHeight-logoHeight)/2)
	drawLogo(ctx, pal.Text)

	title := pal.Text
	title.A *= clamp01(a.title.Value)
	drawText(screen, "EtoAlium", a.fonts.title, headerPadX+logoWidth+12, (headerHeight-titleSize)/2-4, title, false)
}

// drawLogo paints the wave mark into a logoWidth x logoHeight box: three
// nested arcs, the same motif as the seigaiha work.
func drawLogo(ctx Context, col Color) {
	ctx.Save()
	ctx.SetStrokeColor(col)
	ctx.SetLineWidth(4)
	ctx.SetLineCap(LineCapRound)
	cx, cy := float64(logoWidth)/2, float64(logoHeight)
	for i := 1; i <= 3; i++ {
		ctx.BeginPath()
		ctx.Arc(cx, cy, float64(i)*11, math.Pi, 2*math.Pi, false)
		ctx.Stroke()
	}
	ctx.Restore()
}

func (a *App) drawContent(screen *ebiten.Image, pal Palette) {
	sw, sh := float64(a.cfg.Width), float64(a.cfg.Height)
	areaTop := float64(headerHeight)
	areaH := sh - areaTop

	src, ok := a.surface.(imageSource)
	if !ok || src.Image() == nil {
		drawText(screen, a.content.Text, a.fonts.caption, sw/2, areaTop+areaH/2-captionSize, pal.Text, true)
		return
	}

	img := src.Image()
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	x := math.Floor((sw - w) / 2)
	y := math.Floor(areaTop + (areaH-h)/2)

	// Black backdrop with a border, the canvas drawn on top.
	frame := newImageContext(screen)
	frame.SetFillColor(pal.CanvasEdge)
	fillRect(frame, x-canvasFrame, y-canvasFrame, w+2*canvasFrame, h+2*canvasFrame)
	frame.SetFillColor(ColorBlack)
	fillRect(frame, x, y, w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func fillRect(ctx Context, x, y, w, h float64) {
	ctx.BeginPath()
	ctx.MoveTo(x, y)
	ctx.LineTo(x+w, y)
	ctx.LineTo(x+w, y+h)
	ctx.LineTo(x, y+h)
	ctx.Fill()
}
