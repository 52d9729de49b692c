// Package etoalium is the rendering and navigation core of a small personal
// showcase: a handful of pages addressed by URL path, some of which mount a
// procedural 2D canvas animation, hosted on [Ebitengine].
//
// # Quick start
//
// [Run] opens a window and drives the app:
//
//	app, err := etoalium.NewApp(etoalium.AppConfig{StartPath: "/works/dm-seigaiha"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	etoalium.Run(app, etoalium.RunConfig{Title: "Etoalium", Width: 640, Height: 600})
//
// # Routes and pages
//
// Paths decode to a [Route] ("/", "/works", "/works/<slug>"); [ParsePath]
// never fails loudly, it reports false for anything unknown. [State] reduces
// routes to a [Page] and the active [Slug], notifying subscribers only when
// something actually changed.
//
// # Animations
//
// A [Renderer] paints one frame into a canvas-like [Context] as a pure
// function of wall-clock time: the same instant always yields the same
// picture, so skipped or delayed frames never accumulate error. [ClockFace],
// [WavingDots] and [Seigaiha] are the built-in works; [Registry] maps slugs
// to them.
//
// A [Lifecycle] binds a mounted [Surface] to a [Scheduler] task through an
// [AnimationHandle]. Unmounting cancels the task synchronously; no frame is
// ever drawn into a surface after it is unmounted.
//
// # Testing
//
// [Recorder] implements [Context] by recording calls, so renderers can be
// checked without a GPU, and [Script] replays navigation tick by tick.
//
// [Ebitengine]: https://ebitengine.org
package etoalium
