package etoalium

import (
	"math"
	"time"
)

const (
	chipPeriodMillis = 3000
	chipRings        = 5
	// chipSpan is the arc length of each chip ring: nine tenths of a turn.
	chipSpan = 2 * math.Pi * 9 / 10
)

// Seigaiha draws staggered rows of overlapping discs, each with five
// concentric chipped rings that rotate once every three seconds.
type Seigaiha struct {
	Width, Height int
	N             int // discs per row

	Disc Color
	Ring Color
}

var _ Renderer = (*Seigaiha)(nil)

// NewSeigaiha returns the eight-per-row pattern on a 480x480 canvas.
func NewSeigaiha() *Seigaiha {
	return &Seigaiha{
		Width:  480,
		Height: 480,
		N:      8,
		Disc:   ColorWhite,
		Ring:   RGB8(59, 93, 160),
	}
}

func (s *Seigaiha) Name() string     { return SlugSeigaiha.String() }
func (s *Seigaiha) Size() (int, int) { return s.Width, s.Height }

// ChipAngle returns the start angle in radians of a disc's chip rings at
// nowMillis, before the per-ring phase. It repeats every 3000 ms.
func ChipAngle(nowMillis int64, offset float64) float64 {
	return float64(floorModInt(nowMillis, chipPeriodMillis))/chipPeriodMillis*2*math.Pi + offset
}

// DiscOffset returns the fixed angular offset of disc k in an n-per-row
// pattern.
func DiscOffset(k, n int) float64 {
	return float64(k%(n+2)) / float64(n+1) * math.Pi
}

// cell returns the disc spacing.
func (s *Seigaiha) cell() float64 {
	return float64(s.Width / s.N)
}

// DiscCount returns the number of discs drawn per frame.
func (s *Seigaiha) DiscCount() int {
	return (4*s.N + 1) * (s.N + 1)
}

// discCenter returns the center of disc k. Rows are a quarter cell apart and
// every other row is shifted right by half a cell.
func (s *Seigaiha) discCenter(k int) (x, y float64) {
	size := s.cell()
	perRow := s.N + 1
	row, col := k/perRow, k%perRow
	x = size * float64(col)
	if row%2 == 1 {
		x += size / 2
	}
	y = size*float64(row)/4 + size/2 - size/4
	return x, y
}

func (s *Seigaiha) Draw(ctx Context, now time.Time) {
	millis := now.UnixMilli()
	ctx.ClearRect(0, 0, float64(s.Width), float64(s.Height))

	size := s.cell()
	radius := size / 2
	for k := range s.DiscCount() {
		x, y := s.discCenter(k)
		chip := ChipAngle(millis, DiscOffset(k, s.N))

		ctx.Save()
		ctx.SetFillColor(s.Disc)
		ctx.BeginPath()
		ctx.Arc(x, y, radius, 0, 2*math.Pi, true)
		ctx.Fill()

		ctx.SetLineWidth(size / 16)
		ctx.SetStrokeColor(s.Ring)
		for j := range chipRings {
			start := chip + math.Pi/6*float64(j)
			ctx.BeginPath()
			ctx.Arc(x, y, radius/4*float64(j), start, start+chipSpan, false)
			ctx.Stroke()
		}
		ctx.Restore()
	}
}
