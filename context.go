package etoalium

// LineCap selects how stroke ends are drawn.
type LineCap uint8

const (
	LineCapButt   LineCap = iota // flat end at the path endpoint (default)
	LineCapRound                 // semicircular end
	LineCapSquare                // flat end extended by half the line width
)

// Context is the 2D drawing context a renderer paints into. It follows the
// HTML canvas 2D model: a current path built with MoveTo/LineTo/Arc, a
// current transform modified by Translate/Rotate/Scale, and a Save/Restore
// stack that snapshots the transform and all style state.
//
// Angles are in radians, measured clockwise from +X (Y grows downward).
type Context interface {
	// ClearRect makes the device-space rectangle fully transparent. The
	// current transform is not applied.
	ClearRect(x, y, w, h float64)

	Save()
	// Restore pops the most recent Save. Unbalanced calls are ignored.
	Restore()

	Translate(x, y float64)
	Rotate(rad float64)
	Scale(sx, sy float64)

	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	SetLineCap(lc LineCap)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a circular arc centered at (x, y) from start to end. With
	// anticlockwise set the arc sweeps in the negative direction.
	Arc(x, y, r, start, end float64, anticlockwise bool)

	Fill()
	Stroke()
}

// drawState is the part of a context snapshotted by Save.
type drawState struct {
	transform Affine
	fill      Color
	stroke    Color
	lineWidth float64
	lineCap   LineCap
}

func defaultDrawState() drawState {
	return drawState{
		transform: identityTransform,
		fill:      ColorBlack,
		stroke:    ColorBlack,
		lineWidth: 1,
		lineCap:   LineCapButt,
	}
}

// stateStack implements the transform/style half of Context. Concrete
// contexts embed it and add path building and rasterization.
type stateStack struct {
	cur   drawState
	saved []drawState
}

func newStateStack() stateStack {
	return stateStack{cur: defaultDrawState()}
}

func (s *stateStack) Save() {
	s.saved = append(s.saved, s.cur)
}

func (s *stateStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *stateStack) Translate(x, y float64) { s.cur.transform = s.cur.transform.translated(x, y) }
func (s *stateStack) Rotate(rad float64)     { s.cur.transform = s.cur.transform.rotated(rad) }
func (s *stateStack) Scale(sx, sy float64)   { s.cur.transform = s.cur.transform.scaled(sx, sy) }

func (s *stateStack) SetFillColor(c Color)   { s.cur.fill = c }
func (s *stateStack) SetStrokeColor(c Color) { s.cur.stroke = c }
func (s *stateStack) SetLineCap(lc LineCap)  { s.cur.lineCap = lc }

// SetLineWidth ignores non-positive widths, as a canvas does.
func (s *stateStack) SetLineWidth(w float64) {
	if w > 0 {
		s.cur.lineWidth = w
	}
}

// depth reports the number of outstanding Saves.
func (s *stateStack) depth() int { return len(s.saved) }

// reset drops all saved state and restores defaults.
func (s *stateStack) reset() {
	s.cur = defaultDrawState()
	s.saved = s.saved[:0]
}
