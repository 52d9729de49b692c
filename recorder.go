package etoalium

// CommandOp identifies a recorded drawing call.
type CommandOp uint8

const (
	OpClearRect CommandOp = iota
	OpSave
	OpRestore
	OpTranslate
	OpRotate
	OpScale
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpFill
	OpStroke
)

var opNames = [...]string{
	OpClearRect: "clearRect",
	OpSave:      "save",
	OpRestore:   "restore",
	OpTranslate: "translate",
	OpRotate:    "rotate",
	OpScale:     "scale",
	OpBeginPath: "beginPath",
	OpMoveTo:    "moveTo",
	OpLineTo:    "lineTo",
	OpArc:       "arc",
	OpFill:      "fill",
	OpStroke:    "stroke",
}

func (op CommandOp) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "unknown"
}

// Command is one recorded drawing call. Args holds the call's numeric
// arguments in declaration order (Arc's anticlockwise flag is 1 or 0).
// Transform, Color and LineWidth capture the context state at call time;
// Color is the fill color for OpFill and the stroke color otherwise.
type Command struct {
	Op        CommandOp
	Args      []float64
	Transform Affine
	Color     Color
	LineWidth float64
	LineCap   LineCap
}

// Recorder is a Context that records every call instead of rasterizing.
// Renderers are pure functions of time, so two recordings of the same
// renderer at the same instant are identical.
type Recorder struct {
	stateStack
	Commands []Command

	// maxDepth is the deepest Save nesting seen.
	maxDepth int
}

var _ Context = (*Recorder)(nil)

// NewRecorder returns an empty Recorder with default state.
func NewRecorder() *Recorder {
	return &Recorder{stateStack: newStateStack()}
}

// Reset clears recorded commands and state so the Recorder can be reused
// for the next frame.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.maxDepth = 0
	r.reset()
}

// Depth returns the number of outstanding Saves. A well-behaved renderer
// leaves it at zero.
func (r *Recorder) Depth() int { return r.depth() }

// MaxDepth returns the deepest Save nesting reached since the last Reset.
func (r *Recorder) MaxDepth() int { return r.maxDepth }

// Count returns how many commands with the given op were recorded.
func (r *Recorder) Count(op CommandOp) int {
	n := 0
	for i := range r.Commands {
		if r.Commands[i].Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded commands with the given op, in order.
func (r *Recorder) Filter(op CommandOp) []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) record(op CommandOp, args ...float64) {
	col := r.cur.stroke
	if op == OpFill {
		col = r.cur.fill
	}
	r.Commands = append(r.Commands, Command{
		Op:        op,
		Args:      args,
		Transform: r.cur.transform,
		Color:     col,
		LineWidth: r.cur.lineWidth,
		LineCap:   r.cur.lineCap,
	})
}

func (r *Recorder) ClearRect(x, y, w, h float64) { r.record(OpClearRect, x, y, w, h) }

func (r *Recorder) Save() {
	r.stateStack.Save()
	r.maxDepth = max(r.maxDepth, r.depth())
	r.record(OpSave)
}

func (r *Recorder) Restore() {
	r.stateStack.Restore()
	r.record(OpRestore)
}

func (r *Recorder) Translate(x, y float64) {
	r.stateStack.Translate(x, y)
	r.record(OpTranslate, x, y)
}

func (r *Recorder) Rotate(rad float64) {
	r.stateStack.Rotate(rad)
	r.record(OpRotate, rad)
}

func (r *Recorder) Scale(sx, sy float64) {
	r.stateStack.Scale(sx, sy)
	r.record(OpScale, sx, sy)
}

func (r *Recorder) BeginPath()          { r.record(OpBeginPath) }
func (r *Recorder) MoveTo(x, y float64) { r.record(OpMoveTo, x, y) }
func (r *Recorder) LineTo(x, y float64) { r.record(OpLineTo, x, y) }

func (r *Recorder) Arc(x, y, radius, start, end float64, anticlockwise bool) {
	ccw := 0.0
	if anticlockwise {
		ccw = 1
	}
	r.record(OpArc, x, y, radius, start, end, ccw)
}

func (r *Recorder) Fill()   { r.record(OpFill) }
func (r *Recorder) Stroke() { r.record(OpStroke) }
