package etoalium

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"
)

const (
	headerHeight  = 64
	titleFadeSecs = 0.4
)

// SurfaceFactory allocates a drawing surface of the given size.
type SurfaceFactory func(w, h int) Surface

// AppConfig configures an App. Zero values pick sensible defaults.
type AppConfig struct {
	Width, Height int
	// StartPath is navigated to on the first Update. Defaults to "/".
	StartPath string
	Theme     Theme
	Debug     bool
	ShowFPS   bool

	Logger   zerolog.Logger
	Clock    Clock
	Registry *Registry
	// NewSurface defaults to NewImageSurface.
	NewSurface SurfaceFactory
}

type navKind uint8

const (
	navPush navKind = iota
	navBack
)

type navEvent struct {
	kind navKind
	path string
}

// App is the site shell: it owns the page state, turns navigation into
// state transitions, mounts the canvas of the current work and drives the
// frame scheduler. It implements ebiten.Game.
type App struct {
	cfg AppConfig
	log zerolog.Logger

	state     *State
	history   History
	registry  *Registry
	sched     *Scheduler
	lifecycle *Lifecycle
	clock     Clock

	content Content
	surface Surface
	theme   Theme
	title   *Fade
	fonts   *fonts
	fps     fpsCounter

	pending []navEvent
	script  *Script
	err     error

	stats debugStats
}

var _ ebiten.Game = (*App)(nil)

// NewApp builds an App. The start path is queued, not applied, so the
// first Update performs the initial mount.
func NewApp(cfg AppConfig) (*App, error) {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.StartPath == "" {
		cfg.StartPath = "/"
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistry()
	}
	if cfg.NewSurface == nil {
		cfg.NewSurface = func(w, h int) Surface { return NewImageSurface(w, h) }
	}

	f, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("etoalium: %w", err)
	}

	sched := NewScheduler()
	a := &App{
		cfg:       cfg,
		log:       cfg.Logger,
		state:     NewState(),
		registry:  cfg.Registry,
		sched:     sched,
		lifecycle: NewLifecycle(sched, cfg.Clock, cfg.Logger),
		clock:     cfg.Clock,
		theme:     cfg.Theme,
		title:     NewFade(0, 1, titleFadeSecs, ease.OutQuad),
		fonts:     f,
	}
	a.content = ContentFor(a.state.Snapshot(), a.registry)
	a.state.Subscribe(a.onStateChange)
	a.Navigate(cfg.StartPath)
	return a, nil
}

// State returns the page state. Callers must treat it as read-only.
func (a *App) State() *State { return a.state }

// Scheduler returns the frame scheduler.
func (a *App) Scheduler() *Scheduler { return a.sched }

// Lifecycle returns the canvas mount slot.
func (a *App) Lifecycle() *Lifecycle { return a.lifecycle }

// Content returns what is currently displayed.
func (a *App) Content() Content { return a.content }

// Theme returns the active theme.
func (a *App) Theme() Theme { return a.theme }

// SetTheme switches the palette.
func (a *App) SetTheme(t Theme) {
	if a.theme == t {
		return
	}
	a.theme = t
	a.log.Info().Stringer("theme", t).Msg("theme changed")
}

// CurrentPath returns the current history entry.
func (a *App) CurrentPath() string { return a.history.Current() }

// Navigate queues a navigation to path. It is applied on the next Update,
// before the next frame is drawn.
func (a *App) Navigate(path string) {
	a.pending = append(a.pending, navEvent{kind: navPush, path: path})
}

// Back queues a navigation to the previous history entry.
func (a *App) Back() {
	a.pending = append(a.pending, navEvent{kind: navBack})
}

// SetScript attaches a navigation script stepped once per Update.
func (a *App) SetScript(s *Script) { a.script = s }

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.pollInput()
	return a.Step(float32(1.0 / float64(ebiten.TPS())))
}

// Step applies one update tick: script, queued navigation and chrome
// animation. Every navigation queued before Step is fully applied,
// including any canvas swap, when it returns.
func (a *App) Step(dt float32) error {
	if a.script != nil {
		if err := a.script.step(a); err != nil {
			return err
		}
	}

	var t0 time.Time
	if a.cfg.Debug {
		t0 = time.Now()
	}
	for len(a.pending) > 0 && a.err == nil {
		ev := a.pending[0]
		a.pending = a.pending[1:]
		a.applyNav(ev)
	}
	if a.cfg.Debug {
		a.stats.navTime = time.Since(t0)
	}
	if a.err != nil {
		return a.err
	}

	a.title.Update(dt)
	a.fps.update(float64(dt))
	return nil
}

func (a *App) applyNav(ev navEvent) {
	path := ev.path
	switch ev.kind {
	case navBack:
		p, ok := a.history.Back()
		if !ok {
			return
		}
		path = p
	default:
		a.history.Push(path)
	}
	r, ok := a.state.Navigate(path)
	le := a.log.Debug().Str("path", path).Bool("routable", ok)
	if ok {
		le = le.Stringer("route", r)
	}
	le.Msg("navigate")
}

// onStateChange swaps the mounted canvas to match the new state. It runs
// synchronously inside State.Apply, so the old surface is torn down before
// any frame can observe the new page.
func (a *App) onStateChange(snap Snapshot) {
	next := ContentFor(snap, a.registry)
	prev := a.content
	a.content = next
	a.log.Info().
		Stringer("page", snap.Page).
		Stringer("slug", snap.Slug).
		Msg("page changed")

	a.title.Restart()

	if prev.Renderer == nil && next.Renderer == nil {
		return
	}
	a.lifecycle.OnSurfaceUnmounted()
	a.surface = nil
	if next.Renderer == nil {
		return
	}

	r := next.Renderer
	if a.cfg.Debug {
		r = &countingRenderer{Renderer: r, stats: &a.stats}
	}
	w, h := r.Size()
	surface := a.cfg.NewSurface(w, h)
	if err := a.lifecycle.OnSurfaceMounted(surface, r); err != nil {
		a.err = err
		a.log.Error().Err(err).Str("renderer", r.Name()).Msg("cannot render")
		return
	}
	a.surface = surface
}

// Close unmounts the canvas. The App must not be used afterwards.
func (a *App) Close() {
	a.lifecycle.OnSurfaceUnmounted()
	a.surface = nil
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}
