package plexus

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade tweens an opacity multiplier from 0 to 1. The Driver restarts it every
// time the field is rebuilt so a fresh population eases in instead of popping.
//
// There is no global animation manager; the owner calls Update each frame.
type Fade struct {
	tween *gween.Tween
	alpha float64
	Done  bool
}

// NewFade creates a fade that reaches full opacity after duration seconds
// using the easing function. A nil fn uses ease.Linear.
func NewFade(duration float32, fn ease.TweenFunc) *Fade {
	if fn == nil {
		fn = ease.Linear
	}
	return &Fade{tween: gween.New(0, 1, duration, fn)}
}

// Update advances the fade by dt seconds and returns the current opacity.
func (f *Fade) Update(dt float32) float64 {
	if f.Done {
		return 1
	}
	val, finished := f.tween.Update(dt)
	f.alpha = clamp01(float64(val))
	f.Done = finished
	if finished {
		f.alpha = 1
	}
	return f.alpha
}

// Alpha returns the opacity computed by the last Update.
func (f *Fade) Alpha() float64 {
	return f.alpha
}

// Restart rewinds the fade to fully transparent.
func (f *Fade) Restart() {
	f.tween.Reset()
	f.alpha = 0
	f.Done = false
}
