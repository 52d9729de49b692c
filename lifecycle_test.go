package etoalium

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fixedClock always reports the same instant.
type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

// fakeSurface hands out a Recorder as its context.
type fakeSurface struct {
	rec      *Recorder
	err      error
	released int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{rec: NewRecorder()}
}

func (s *fakeSurface) Context2D() (Context, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.released > 0 {
		return nil, ErrSurfaceReleased
	}
	return s.rec, nil
}

func (s *fakeSurface) Release() { s.released++ }

// countRenderer counts Draw calls.
type countRenderer struct {
	name  string
	draws int
	last  time.Time
}

func (r *countRenderer) Name() string     { return r.name }
func (r *countRenderer) Size() (int, int) { return 10, 10 }
func (r *countRenderer) Draw(ctx Context, now time.Time) {
	r.draws++
	r.last = now
	ctx.ClearRect(0, 0, 10, 10)
}

func TestAcquireDrawsEveryFrame(t *testing.T) {
	sched := NewScheduler()
	surf := newFakeSurface()
	rd := &countRenderer{name: "count"}
	clock := &fixedClock{t: epoch}

	h, err := Acquire(sched, surf, rd, clock)
	if err != nil {
		t.Fatal(err)
	}
	if h.Context() != Context(surf.rec) {
		t.Error("handle does not own the surface context")
	}

	sched.RunFrame(time.Time{})
	sched.RunFrame(time.Time{})
	if rd.draws != 2 {
		t.Errorf("draws = %d, want 2", rd.draws)
	}
	if !rd.last.Equal(epoch) {
		t.Errorf("renderer saw %v, want the handle clock %v", rd.last, epoch)
	}
	if surf.rec.Count(OpClearRect) != 2 {
		t.Errorf("clearRect count = %d, want 2", surf.rec.Count(OpClearRect))
	}
}

func TestHandleReleaseStopsDrawing(t *testing.T) {
	sched := NewScheduler()
	surf := newFakeSurface()
	rd := &countRenderer{name: "count"}

	h, err := Acquire(sched, surf, rd, &fixedClock{t: epoch})
	if err != nil {
		t.Fatal(err)
	}
	sched.RunFrame(epoch)
	h.Release()
	h.Release()
	sched.RunFrame(epoch)

	if rd.draws != 1 {
		t.Errorf("draws = %d, want 1", rd.draws)
	}
	if h.Context() != nil {
		t.Error("context retained after Release")
	}
	if h.Active() {
		t.Error("handle active after Release")
	}
	if surf.released != 1 {
		t.Errorf("surface released %d times, want 1", surf.released)
	}
	if sched.Len() != 0 {
		t.Errorf("scheduler Len = %d, want 0", sched.Len())
	}
}

func TestHandleReleasedMidFrame(t *testing.T) {
	sched := NewScheduler()
	surf := newFakeSurface()
	rd := &countRenderer{name: "count"}

	var h *AnimationHandle
	sched.Schedule(func(time.Time) { h.Release() })
	h, err := Acquire(sched, surf, rd, &fixedClock{t: epoch})
	if err != nil {
		t.Fatal(err)
	}

	sched.RunFrame(epoch)
	if rd.draws != 0 {
		t.Errorf("renderer drew %d times after its handle was released", rd.draws)
	}
}

func TestAcquireNoContext(t *testing.T) {
	sched := NewScheduler()
	surf := newFakeSurface()
	surf.err = errors.New("webgl only")

	_, err := Acquire(sched, surf, &countRenderer{}, nil)
	if !errors.Is(err, ErrNoContext) {
		t.Fatalf("err = %v, want ErrNoContext", err)
	}
	if !errors.Is(err, surf.err) {
		t.Errorf("err = %v, want it to wrap the surface error", err)
	}
	if sched.Len() != 0 {
		t.Errorf("scheduler Len = %d, want 0", sched.Len())
	}

	if _, err := Acquire(sched, nil, &countRenderer{}, nil); !errors.Is(err, ErrNoContext) {
		t.Errorf("nil surface: err = %v, want ErrNoContext", err)
	}
}

func TestLifecycleMountUnmount(t *testing.T) {
	sched := NewScheduler()
	lc := NewLifecycle(sched, &fixedClock{t: epoch}, zerolog.Nop())
	surf := newFakeSurface()
	rd := &countRenderer{name: "count"}

	if err := lc.OnSurfaceMounted(surf, rd); err != nil {
		t.Fatal(err)
	}
	if !lc.Mounted() || sched.Len() != 1 {
		t.Fatalf("Mounted = %v, Len = %d", lc.Mounted(), sched.Len())
	}
	h := lc.Handle()

	sched.RunFrame(epoch)
	lc.OnSurfaceUnmounted()
	sched.RunFrame(epoch)

	if rd.draws != 1 {
		t.Errorf("draws = %d, want 1", rd.draws)
	}
	if lc.Mounted() || lc.Handle() != nil {
		t.Error("lifecycle still mounted")
	}
	if h.Context() != nil {
		t.Error("old handle kept its context")
	}
	if sched.Len() != 0 {
		t.Errorf("Len = %d, want 0", sched.Len())
	}
}

func TestLifecycleUnmountWithoutMount(t *testing.T) {
	sched := NewScheduler()
	lc := NewLifecycle(sched, nil, zerolog.Nop())
	lc.OnSurfaceUnmounted()
	lc.OnSurfaceUnmounted()
	if lc.Mounted() {
		t.Error("mounted after bare unmounts")
	}
}

func TestLifecycleDoubleUnmount(t *testing.T) {
	sched := NewScheduler()
	lc := NewLifecycle(sched, nil, zerolog.Nop())
	surf := newFakeSurface()
	if err := lc.OnSurfaceMounted(surf, &countRenderer{}); err != nil {
		t.Fatal(err)
	}
	lc.OnSurfaceUnmounted()
	lc.OnSurfaceUnmounted()
	if surf.released != 1 {
		t.Errorf("released = %d, want 1", surf.released)
	}
}

func TestLifecycleRemountIsFresh(t *testing.T) {
	sched := NewScheduler()
	lc := NewLifecycle(sched, &fixedClock{t: epoch}, zerolog.Nop())

	first, second := newFakeSurface(), newFakeSurface()
	r1, r2 := &countRenderer{name: "a"}, &countRenderer{name: "b"}

	if err := lc.OnSurfaceMounted(first, r1); err != nil {
		t.Fatal(err)
	}
	h1 := lc.Handle()
	// Mounting again without an unmount tears the old handle down.
	if err := lc.OnSurfaceMounted(second, r2); err != nil {
		t.Fatal(err)
	}
	h2 := lc.Handle()

	if h1 == h2 {
		t.Fatal("remount reused the handle")
	}
	if first.released != 1 {
		t.Errorf("first surface released %d times, want 1", first.released)
	}
	if sched.Len() != 1 {
		t.Fatalf("Len = %d, want exactly one live task", sched.Len())
	}

	sched.RunFrame(epoch)
	if r1.draws != 0 || r2.draws != 1 {
		t.Errorf("draws = %d, %d, want 0, 1", r1.draws, r2.draws)
	}
	if h2.Context() != Context(second.rec) {
		t.Error("new handle does not own the new context")
	}
}

func TestLifecycleMountFailure(t *testing.T) {
	sched := NewScheduler()
	lc := NewLifecycle(sched, nil, zerolog.Nop())
	surf := newFakeSurface()
	surf.err = errors.New("no 2d")

	err := lc.OnSurfaceMounted(surf, &countRenderer{name: "dm-seigaiha"})
	if !errors.Is(err, ErrNoContext) {
		t.Fatalf("err = %v, want ErrNoContext", err)
	}
	if lc.Mounted() {
		t.Error("mounted after failure")
	}
	if sched.Len() != 0 {
		t.Errorf("Len = %d, want 0", sched.Len())
	}
	if surf.released != 1 {
		t.Errorf("released = %d, want 1", surf.released)
	}
}
