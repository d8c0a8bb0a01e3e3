// Package hud holds presentation state that outlives a single frame.
package hud

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// HealthBar eases the displayed health toward the real value so a hit reads
// as a drain instead of a jump. Healing, which only happens on a restart,
// snaps.
type HealthBar struct {
	shown    float32
	target   float32
	duration float32
	tween    *gween.Tween
}

// NewHealthBar returns a full bar that drains over drainSeconds.
func NewHealthBar(drainSeconds float64) *HealthBar {
	return &HealthBar{
		shown:    1,
		target:   1,
		duration: float32(drainSeconds),
	}
}

// Set changes the real health fraction.
func (b *HealthBar) Set(fraction float64) {
	f := float32(clamp01(fraction))
	if f == b.target {
		return
	}
	b.target = f
	if f > b.shown || b.duration <= 0 {
		b.shown = f
		b.tween = nil
		return
	}
	b.tween = gween.New(b.shown, f, b.duration, ease.OutQuad)
}

// Update advances the drain by dt seconds and returns the fraction to draw.
func (b *HealthBar) Update(dt float64) float64 {
	if b.tween != nil {
		v, done := b.tween.Update(float32(dt))
		b.shown = v
		if done {
			b.shown = b.target
			b.tween = nil
		}
	}
	return float64(b.shown)
}

// Shown is the fraction currently drawn.
func (b *HealthBar) Shown() float64 { return float64(b.shown) }

// Target is the real health fraction.
func (b *HealthBar) Target() float64 { return float64(b.target) }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
