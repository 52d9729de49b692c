package etoalium

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the solid source for all path triangles. Sampling the
// center pixel of a 3x3 image avoids bleeding at the edges.
var whiteSubImage *ebiten.Image

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(ColorWhite.toRGBA())
	whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// Vec2 is a device-space point.
type Vec2 struct {
	X, Y float64
}

const (
	minArcSegments = 8
	maxArcSegments = 256
)

// ImageSurface is a drawing surface backed by an ebiten image. It owns the
// image and deallocates it on Release.
type ImageSurface struct {
	img *ebiten.Image
	ctx *imageContext
}

var (
	_ Surface  = (*ImageSurface)(nil)
	_ Releaser = (*ImageSurface)(nil)
)

// NewImageSurface allocates a w x h surface.
func NewImageSurface(w, h int) *ImageSurface {
	return &ImageSurface{img: ebiten.NewImage(w, h)}
}

// Image returns the backing image, or nil once released.
func (s *ImageSurface) Image() *ebiten.Image { return s.img }

// Context2D returns the surface's drawing context. Every call returns the
// same context; it fails once the surface has been released.
func (s *ImageSurface) Context2D() (Context, error) {
	if s.img == nil {
		return nil, ErrSurfaceReleased
	}
	if s.ctx == nil {
		s.ctx = newImageContext(s.img)
	}
	return s.ctx, nil
}

// Release deallocates the backing image. Safe to call more than once.
func (s *ImageSurface) Release() {
	if s.img == nil {
		return
	}
	s.img.Deallocate()
	s.img = nil
	if s.ctx != nil {
		s.ctx.dst = nil
		s.ctx = nil
	}
}

// imageContext rasterizes canvas-style paths onto an ebiten image. Path
// points are transformed to device space as they are added, matching the
// canvas model; stroke width is scaled by the transform at stroke time.
type imageContext struct {
	stateStack
	dst *ebiten.Image

	subpaths [][]Vec2
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ Context = (*imageContext)(nil)

func newImageContext(dst *ebiten.Image) *imageContext {
	return &imageContext{stateStack: newStateStack(), dst: dst}
}

func (c *imageContext) ClearRect(x, y, w, h float64) {
	if c.dst == nil {
		return
	}
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	r = r.Intersect(c.dst.Bounds())
	if r.Empty() {
		return
	}
	c.dst.SubImage(r).(*ebiten.Image).Clear()
}

func (c *imageContext) BeginPath() {
	c.subpaths = c.subpaths[:0]
}

func (c *imageContext) MoveTo(x, y float64) {
	dx, dy := c.cur.transform.Apply(x, y)
	c.subpaths = append(c.subpaths, []Vec2{{dx, dy}})
}

func (c *imageContext) LineTo(x, y float64) {
	if len(c.subpaths) == 0 {
		c.MoveTo(x, y)
		return
	}
	dx, dy := c.cur.transform.Apply(x, y)
	last := len(c.subpaths) - 1
	c.subpaths[last] = append(c.subpaths[last], Vec2{dx, dy})
}

func (c *imageContext) Arc(x, y, r, start, end float64, anticlockwise bool) {
	if r < 0 {
		return
	}
	sweep := arcSweep(start, end, anticlockwise)
	segs := arcSegments(sweep, r*c.uniformScale())
	for i := 0; i <= segs; i++ {
		a := start + sweep*float64(i)/float64(segs)
		sin, cos := math.Sincos(a)
		px, py := x+r*cos, y+r*sin
		// The first point connects to an open subpath like a canvas does.
		if i == 0 && len(c.subpaths) == 0 {
			c.MoveTo(px, py)
			continue
		}
		c.LineTo(px, py)
	}
}

func (c *imageContext) Fill() {
	if c.dst == nil || len(c.subpaths) == 0 {
		return
	}
	var p vector.Path
	for _, sp := range c.subpaths {
		if len(sp) < 3 {
			continue
		}
		p.MoveTo(float32(sp[0].X), float32(sp[0].Y))
		for _, pt := range sp[1:] {
			p.LineTo(float32(pt.X), float32(pt.Y))
		}
		p.Close()
	}
	c.vertices, c.indices = p.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	c.submit(c.cur.fill, ebiten.FillRuleNonZero)
}

func (c *imageContext) Stroke() {
	if c.dst == nil || len(c.subpaths) == 0 {
		return
	}
	var p vector.Path
	for _, sp := range c.subpaths {
		if len(sp) < 2 {
			continue
		}
		p.MoveTo(float32(sp[0].X), float32(sp[0].Y))
		for _, pt := range sp[1:] {
			p.LineTo(float32(pt.X), float32(pt.Y))
		}
	}
	op := &vector.StrokeOptions{
		Width:    float32(c.cur.lineWidth * c.uniformScale()),
		LineJoin: vector.LineJoinRound,
		LineCap:  vectorLineCap(c.cur.lineCap),
	}
	c.vertices, c.indices = p.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], op)
	c.submit(c.cur.stroke, ebiten.FillRuleFillAll)
}

// submit draws the tessellated triangles with a flat premultiplied color.
func (c *imageContext) submit(col Color, rule ebiten.FillRule) {
	if len(c.indices) == 0 || col.A <= 0 {
		return
	}
	rgba := col.toRGBA()
	r := float32(rgba.R) / 255
	g := float32(rgba.G) / 255
	b := float32(rgba.B) / 255
	a := float32(rgba.A) / 255
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		FillRule:       rule,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, op)
}

// uniformScale returns the length scale of the current transform.
func (c *imageContext) uniformScale() float64 {
	m := c.cur.transform
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

// arcSweep returns the signed angle swept by a canvas arc. Any request
// spanning a full turn or more draws the whole circle.
func arcSweep(start, end float64, anticlockwise bool) float64 {
	const tau = 2 * math.Pi
	if math.Abs(end-start) >= tau {
		if anticlockwise {
			return -tau
		}
		return tau
	}
	if anticlockwise {
		return -floorMod(start-end, tau)
	}
	return floorMod(end-start, tau)
}

// arcSegments picks a polyline resolution for an arc of the given sweep
// and device-space radius.
func arcSegments(sweep, deviceRadius float64) int {
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * math.Max(deviceRadius, float64(minArcSegments))))
	return min(max(n, minArcSegments), maxArcSegments)
}

func vectorLineCap(lc LineCap) vector.LineCap {
	switch lc {
	case LineCapRound:
		return vector.LineCapRound
	case LineCapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapButt
	}
}

// floorMod returns x mod m in [0, m) for m > 0.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
