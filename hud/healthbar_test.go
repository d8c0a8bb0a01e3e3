package hud

import (
	"math"
	"testing"
)

func TestHealthBarDrains(t *testing.T) {
	bar := NewHealthBar(0.5)
	bar.Set(0.9)

	prev := bar.Shown()
	if prev != 1 {
		t.Fatalf("bar jumped to %g before any update", prev)
	}
	for i := 0; i < 60; i++ {
		shown := bar.Update(1.0 / 60)
		if shown > prev+1e-6 {
			t.Fatalf("step %d: bar rose from %g to %g", i, prev, shown)
		}
		if shown < 0.9-1e-6 {
			t.Fatalf("step %d: bar went below the target: %g", i, shown)
		}
		prev = shown
	}
	if math.Abs(bar.Shown()-0.9) > 1e-6 {
		t.Fatalf("bar settled at %g, want 0.9", bar.Shown())
	}
}

func TestHealthBarSnapsUp(t *testing.T) {
	bar := NewHealthBar(0.5)
	bar.Set(0.2)
	bar.Update(1)
	bar.Set(1)
	if bar.Shown() != 1 {
		t.Fatalf("bar = %g after a restart, want 1", bar.Shown())
	}
}

func TestHealthBarClamps(t *testing.T) {
	bar := NewHealthBar(0)
	bar.Set(-3)
	if bar.Update(0) != 0 {
		t.Fatalf("bar = %g, want 0", bar.Shown())
	}
	bar.Set(7)
	if bar.Target() != 1 {
		t.Fatalf("target = %g, want 1", bar.Target())
	}
}
