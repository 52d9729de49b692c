package etoalium

import (
	"sort"
	"time"
)

// Renderer paints one frame of an animation. Draw must be a pure function of
// now and the renderer's fixed geometry: no state carries between frames.
type Renderer interface {
	Name() string
	// Size returns the canvas size the renderer is laid out for.
	Size() (w, h int)
	Draw(ctx Context, now time.Time)
}

// RendererFactory builds a fresh renderer for a mount.
type RendererFactory func() Renderer

// Registry maps work slugs to renderers so the view layer can mount a canvas
// without knowing renderer internals.
type Registry struct {
	factories map[Slug]RendererFactory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Slug]RendererFactory)}
}

// DefaultRegistry returns a Registry with every built-in work.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(SlugClockExample, func() Renderer { return NewClockFace() })
	r.Register(SlugWavingDotsSquare, func() Renderer { return NewWavingDots() })
	r.Register(SlugSeigaiha, func() Renderer { return NewSeigaiha() })
	return r
}

// Register binds a factory to slug, replacing any previous binding. The
// works index (SlugRoot) never has a renderer; registering it is ignored.
func (r *Registry) Register(slug Slug, f RendererFactory) {
	if f == nil || slug == SlugRoot {
		return
	}
	r.factories[slug] = f
}

// Lookup returns a new renderer for the given page and slug. Only work pages
// with a registered slug have one.
func (r *Registry) Lookup(page Page, slug Slug) (Renderer, bool) {
	if page != PageWork {
		return nil, false
	}
	f, ok := r.factories[slug]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Slugs returns the registered slugs in declaration order.
func (r *Registry) Slugs() []Slug {
	out := make([]Slug, 0, len(r.factories))
	for s := range r.factories {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Content is what the view layer displays for the current state: a caption
// and, for animated works, the renderer to mount.
type Content struct {
	Page     Page
	Slug     Slug
	Text     string
	Renderer Renderer
}

// ContentFor resolves the displayable content for a state snapshot.
func ContentFor(snap Snapshot, reg *Registry) Content {
	c := Content{Page: snap.Page, Slug: snap.Slug}
	switch snap.Page {
	case PageHome:
		c.Text = "Hello💚"
	case PageWork:
		if rd, ok := reg.Lookup(snap.Page, snap.Slug); ok {
			c.Renderer = rd
			c.Text = snap.Slug.String()
		} else {
			c.Text = "WorkRoot"
		}
	default:
		c.Text = "Unknown"
	}
	return c
}
