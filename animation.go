package etoalium

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade eases a single value, used for page chrome transitions such as the
// title fading in after navigation. Renderers never use it: their frames
// depend on wall-clock time only.
//
// There is no global animation manager; the app calls Update itself.
type Fade struct {
	tween *gween.Tween
	Value float64
	Done  bool
}

// NewFade creates a Fade from one value to another over duration seconds.
func NewFade(from, to float64, duration float32, fn ease.TweenFunc) *Fade {
	return &Fade{
		tween: gween.New(float32(from), float32(to), duration, fn),
		Value: from,
	}
}

// Update advances the fade by dt seconds.
func (f *Fade) Update(dt float32) {
	if f.Done {
		return
	}
	val, finished := f.tween.Update(dt)
	f.Value = float64(val)
	f.Done = finished
}

// Restart rewinds the fade to its starting value.
func (f *Fade) Restart() {
	f.tween.Reset()
	val, _ := f.tween.Update(0)
	f.Value = float64(val)
	f.Done = false
}
