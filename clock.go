package etoalium

import (
	"math"
	"time"
)

// ClockFace draws an analog clock for the local time of each frame. Its
// geometry is laid out in a 300-unit design space, scaled into the canvas.
type ClockFace struct {
	Width, Height int
	// FaceScale maps the design space into the canvas.
	FaceScale float64

	Ink        Color // ticks, hour and minute hands
	Face       Color
	SecondHand Color
	Frame      Color
}

var _ Renderer = (*ClockFace)(nil)

// NewClockFace returns the 150x150 clock.
func NewClockFace() *ClockFace {
	return &ClockFace{
		Width:      150,
		Height:     150,
		FaceScale:  0.4,
		Ink:        ColorBlack,
		Face:       ColorWhite,
		SecondHand: MustHex("#D40000"),
		Frame:      MustHex("#325FA2"),
	}
}

func (c *ClockFace) Name() string     { return SlugClockExample.String() }
func (c *ClockFace) Size() (w, h int) { return c.Width, c.Height }

// HandAngles holds clock hand angles in degrees, clockwise from 12 o'clock.
type HandAngles struct {
	Hour, Minute, Second float64
}

// ClockAngles computes hand angles for a time of day. hour is taken mod 12.
func ClockAngles(hour, minute, second float64) HandAngles {
	hour = math.Mod(hour, 12)
	return HandAngles{
		Hour:   hour*30 + minute*0.5 + second/120,
		Minute: minute*6 + second*0.1,
		Second: second * 6,
	}
}

// ClockAnglesAt computes hand angles for t in t's location. Seconds are
// whole, so the second hand ticks.
func ClockAnglesAt(t time.Time) HandAngles {
	return ClockAngles(float64(t.Hour()), float64(t.Minute()), float64(t.Second()))
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

// Draw paints the clock for now.Local().
func (c *ClockFace) Draw(ctx Context, now time.Time) {
	angles := ClockAnglesAt(now.Local())
	w, h := float64(c.Width), float64(c.Height)

	ctx.Save()
	ctx.ClearRect(0, 0, w, h)
	ctx.Translate(w/2, h/2)
	ctx.Scale(c.FaceScale, c.FaceScale)
	// Zero degrees points at 12 o'clock.
	ctx.Rotate(-math.Pi / 2)
	ctx.SetStrokeColor(c.Ink)
	ctx.SetFillColor(c.Face)
	ctx.SetLineWidth(8)
	ctx.SetLineCap(LineCapRound)

	c.drawHourTicks(ctx)
	c.drawMinuteTicks(ctx)

	ctx.SetFillColor(c.Ink)
	c.drawHand(ctx, angles.Hour, 14, -20, 80)
	c.drawHand(ctx, angles.Minute, 10, -28, 112)
	c.drawSecondHand(ctx, angles.Second)

	// Frame
	ctx.BeginPath()
	ctx.SetLineWidth(14)
	ctx.SetStrokeColor(c.Frame)
	ctx.Arc(0, 0, 142, 0, 2*math.Pi, true)
	ctx.Stroke()

	ctx.Restore()
}

func (c *ClockFace) drawHourTicks(ctx Context) {
	ctx.Save()
	for range 12 {
		ctx.BeginPath()
		ctx.Rotate(math.Pi / 6)
		ctx.MoveTo(100, 0)
		ctx.LineTo(120, 0)
		ctx.Stroke()
	}
	ctx.Restore()
}

func (c *ClockFace) drawMinuteTicks(ctx Context) {
	ctx.Save()
	ctx.SetLineWidth(5)
	for i := range 60 {
		if i%5 != 0 {
			ctx.BeginPath()
			ctx.MoveTo(117, 0)
			ctx.LineTo(120, 0)
			ctx.Stroke()
		}
		ctx.Rotate(math.Pi / 30)
	}
	ctx.Restore()
}

func (c *ClockFace) drawHand(ctx Context, deg, width, from, to float64) {
	ctx.Save()
	ctx.Rotate(degToRad(deg))
	ctx.SetLineWidth(width)
	ctx.BeginPath()
	ctx.MoveTo(from, 0)
	ctx.LineTo(to, 0)
	ctx.Stroke()
	ctx.Restore()
}

func (c *ClockFace) drawSecondHand(ctx Context, deg float64) {
	ctx.Save()
	ctx.Rotate(degToRad(deg))
	ctx.SetStrokeColor(c.SecondHand)
	ctx.SetFillColor(c.SecondHand)
	ctx.SetLineWidth(6)
	ctx.BeginPath()
	ctx.MoveTo(-30, 0)
	ctx.LineTo(83, 0)
	ctx.Stroke()

	// hub
	ctx.BeginPath()
	ctx.Arc(0, 0, 10, 0, 2*math.Pi, true)
	ctx.Fill()

	// tip ring
	ctx.BeginPath()
	ctx.Arc(95, 0, 10, 0, 2*math.Pi, true)
	ctx.Stroke()

	// pin
	ctx.SetFillColor(ColorTransparent)
	ctx.BeginPath()
	ctx.Arc(0, 0, 3, 0, 2*math.Pi, true)
	ctx.Fill()
	ctx.Restore()
}
