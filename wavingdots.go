package etoalium

import (
	"math"
	"time"
)

// wavePeriodMillis is the breathing period of the dot grid.
const wavePeriodMillis = 1000

// WavingDots draws an N x N grid of dots whose radii sweep from zero to a
// half cell once per second, each dot phase-shifted by its grid index.
type WavingDots struct {
	Width, Height int
	N             int     // dots per edge
	DotSize       float64 // cell size
}

var _ Renderer = (*WavingDots)(nil)

// NewWavingDots returns the 16x16 grid on a 480x480 canvas.
func NewWavingDots() *WavingDots {
	return &WavingDots{Width: 480, Height: 480, N: 16, DotSize: 30}
}

func (w *WavingDots) Name() string     { return SlugWavingDotsSquare.String() }
func (w *WavingDots) Size() (int, int) { return w.Width, w.Height }

// DotRadius returns the radius of dot k (row-major index) in an n-wide grid
// of cell size d at nowMillis. The result is in [0, d/2) and repeats every
// 1000 ms.
func DotRadius(nowMillis int64, k, n int, d float64) float64 {
	half := d / 2
	phase := float64(k%(n+1)) / float64(n)
	timeFrac := float64(floorModInt(nowMillis, wavePeriodMillis)) / (wavePeriodMillis - 1) * half
	return math.Mod(timeFrac+phase*half, half)
}

// DotBrightness maps a radius to a grey level: white at zero, black at d/2.
func DotBrightness(radius, d float64) float64 {
	return clamp01(1 - radius/d*2)
}

func (w *WavingDots) Draw(ctx Context, now time.Time) {
	millis := now.UnixMilli()
	ctx.ClearRect(0, 0, float64(w.Width), float64(w.Height))

	d := w.DotSize
	for k := range w.N * w.N {
		x := d*float64(k%w.N) + d/2
		y := d*float64(k/w.N) + d/2
		r := DotRadius(millis, k, w.N, d)

		ctx.Save()
		ctx.SetFillColor(Gray(DotBrightness(r, d)))
		ctx.BeginPath()
		ctx.Arc(x, y, r, 0, 2*math.Pi, true)
		ctx.Fill()
		ctx.Restore()
	}
}

// floorModInt returns x mod m in [0, m) for m > 0.
func floorModInt(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
