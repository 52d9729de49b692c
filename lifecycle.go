package etoalium

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

var (
	// ErrNoContext is returned when a surface cannot yield a 2D context.
	// The component cannot render; treat it as fatal.
	ErrNoContext = errors.New("etoalium: surface has no 2D context")

	// ErrSurfaceReleased is returned by a surface that was already released.
	ErrSurfaceReleased = errors.New("etoalium: surface released")
)

// Surface is a mounted drawing target.
type Surface interface {
	Context2D() (Context, error)
}

// Releaser is implemented by surfaces that own resources to free on unmount.
type Releaser interface {
	Release()
}

// AnimationHandle binds one surface's context to one scheduled frame task.
// It is the only holder of that context.
type AnimationHandle struct {
	surface  Surface
	ctx      Context
	task     *Task
	renderer Renderer
	clock    Clock
}

// Acquire obtains the surface's context and schedules a frame task that
// draws renderer into it on every frame. The caller must Release the
// handle when the surface goes away.
func Acquire(sched *Scheduler, surface Surface, renderer Renderer, clock Clock) (*AnimationHandle, error) {
	if surface == nil {
		return nil, ErrNoContext
	}
	ctx, err := surface.Context2D()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoContext, err)
	}
	if ctx == nil {
		return nil, ErrNoContext
	}
	if clock == nil {
		clock = SystemClock{}
	}
	h := &AnimationHandle{
		surface:  surface,
		ctx:      ctx,
		renderer: renderer,
		clock:    clock,
	}
	h.task = sched.Schedule(h.frame)
	return h, nil
}

// frame draws one frame if the handle still owns a context. The host's
// timestamp is ignored in favor of the handle's clock so tests can pin time.
func (h *AnimationHandle) frame(time.Time) {
	if h.ctx == nil || h.renderer == nil {
		return
	}
	h.renderer.Draw(h.ctx, h.clock.Now())
}

// Context returns the owned context, or nil after Release.
func (h *AnimationHandle) Context() Context { return h.ctx }

// Renderer returns the renderer driven by this handle.
func (h *AnimationHandle) Renderer() Renderer { return h.renderer }

// Active reports whether the frame task is still registered.
func (h *AnimationHandle) Active() bool {
	return h != nil && h.task.Active()
}

// Release cancels the frame task, drops the context and releases the
// surface. Safe to call more than once.
func (h *AnimationHandle) Release() {
	if h == nil {
		return
	}
	h.task.Cancel()
	h.ctx = nil
	if r, ok := h.surface.(Releaser); ok && r != nil {
		r.Release()
	}
	h.surface = nil
}

// Lifecycle manages the single animation slot of one view. Mounting while
// mounted tears the old handle down first, so at most one handle is alive.
type Lifecycle struct {
	sched  *Scheduler
	clock  Clock
	log    zerolog.Logger
	handle *AnimationHandle
}

// NewLifecycle returns an unmounted Lifecycle on sched.
func NewLifecycle(sched *Scheduler, clock Clock, log zerolog.Logger) *Lifecycle {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Lifecycle{sched: sched, clock: clock, log: log}
}

// OnSurfaceMounted starts animating renderer on surface. An error means the
// surface cannot render and the component must not continue.
func (l *Lifecycle) OnSurfaceMounted(surface Surface, renderer Renderer) error {
	l.OnSurfaceUnmounted()
	h, err := Acquire(l.sched, surface, renderer, l.clock)
	if err != nil {
		if r, ok := surface.(Releaser); ok && r != nil {
			r.Release()
		}
		return fmt.Errorf("mount %s: %w", rendererName(renderer), err)
	}
	l.handle = h
	l.log.Debug().Str("renderer", rendererName(renderer)).Int("tasks", l.sched.Len()).Msg("surface mounted")
	return nil
}

// OnSurfaceUnmounted stops the frame task and releases the context. It is a
// no-op when nothing is mounted.
func (l *Lifecycle) OnSurfaceUnmounted() {
	if l.handle == nil {
		return
	}
	name := rendererName(l.handle.renderer)
	l.handle.Release()
	l.handle = nil
	l.log.Debug().Str("renderer", name).Int("tasks", l.sched.Len()).Msg("surface unmounted")
}

// Handle returns the live handle, or nil when unmounted.
func (l *Lifecycle) Handle() *AnimationHandle { return l.handle }

// Mounted reports whether a surface is currently mounted.
func (l *Lifecycle) Mounted() bool { return l.handle != nil }

func rendererName(r Renderer) string {
	if r == nil {
		return "<nil>"
	}
	return r.Name()
}
