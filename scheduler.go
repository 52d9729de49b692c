package etoalium

import "time"

// Clock supplies wall-clock time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FrameFunc is called once per display frame with the frame's timestamp.
type FrameFunc func(now time.Time)

// Task is a repeating frame callback registered with a Scheduler.
type Task struct {
	id        uint32
	fn        FrameFunc
	sched     *Scheduler
	cancelled bool
}

// Cancel deregisters the task. It takes effect immediately: once Cancel
// returns the task is never invoked again, even later in the current frame.
// Cancelling twice is a no-op.
func (t *Task) Cancel() {
	if t == nil || t.cancelled {
		return
	}
	t.cancelled = true
	t.sched.remove(t)
}

// Active reports whether the task is still registered.
func (t *Task) Active() bool {
	return t != nil && !t.cancelled
}

// Scheduler runs registered tasks once per frame. It is driven by the host's
// display refresh (RunFrame from ebiten's Draw), so gaps between frames are
// irregular and may be long while the window is hidden. Not safe for
// concurrent use.
type Scheduler struct {
	tasks  []*Task
	nextID uint32

	// running is reused by RunFrame so tasks may (de)register mid-frame.
	running []*Task
	frames  uint64
}

// NewScheduler returns an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule registers fn to run on every frame until the returned task is
// cancelled.
func (s *Scheduler) Schedule(fn FrameFunc) *Task {
	s.nextID++
	t := &Task{id: s.nextID, fn: fn, sched: s}
	s.tasks = append(s.tasks, t)
	return t
}

// Len returns the number of registered tasks.
func (s *Scheduler) Len() int { return len(s.tasks) }

// Frames returns the number of frames run so far.
func (s *Scheduler) Frames() uint64 { return s.frames }

// RunFrame invokes every registered task once, in registration order.
// Tasks registered during the frame first run on the next frame.
func (s *Scheduler) RunFrame(now time.Time) {
	s.frames++
	s.running = append(s.running[:0], s.tasks...)
	for _, t := range s.running {
		if t.cancelled {
			continue
		}
		t.fn(now)
	}
	clear(s.running)
	s.running = s.running[:0]
}

func (s *Scheduler) remove(t *Task) {
	for i, cur := range s.tasks {
		if cur == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}
