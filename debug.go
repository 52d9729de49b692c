package etoalium

import (
	"time"
)

// debugLogEvery is how many frames pass between debug stat lines.
const debugLogEvery = 60

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when AppConfig.Debug is true.
type debugStats struct {
	navTime       time.Duration
	frameTime     time.Duration
	compositeTime time.Duration
	tasks         int
	fills         int
	strokes       int
}

// debugLog logs timing and draw-call stats every debugLogEvery frames.
func (a *App) debugLog() {
	if !a.cfg.Debug || a.sched.Frames()%debugLogEvery != 0 {
		return
	}
	s := a.stats
	a.log.Debug().
		Uint64("frame", a.sched.Frames()).
		Dur("nav", s.navTime).
		Dur("render", s.frameTime).
		Dur("composite", s.compositeTime).
		Dur("total", s.navTime+s.frameTime+s.compositeTime).
		Int("tasks", s.tasks).
		Int("fills", s.fills).
		Int("strokes", s.strokes).
		Msg("frame stats")
}

// countingRenderer wraps a renderer and counts the fills and strokes it
// issues each frame.
type countingRenderer struct {
	Renderer
	stats *debugStats
}

func (r *countingRenderer) Draw(ctx Context, now time.Time) {
	cc := &countingContext{Context: ctx}
	r.Renderer.Draw(cc, now)
	r.stats.fills = cc.fills
	r.stats.strokes = cc.strokes
}

type countingContext struct {
	Context
	fills, strokes int
}

func (c *countingContext) Fill() {
	c.fills++
	c.Context.Fill()
}

func (c *countingContext) Stroke() {
	c.strokes++
	c.Context.Stroke()
}
