package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestApproachNeverOvershoots(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		rate            float64
	}{
		{"toward negative", 0, -1.6, 0.1},
		{"toward positive", 0, 0.9, 0.1},
		{"relax from negative", -1.5, 0, 0.1},
		{"relax from positive", 0.85, 0, 0.1},
		{"fast rate", 0.3, -0.4, 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := tt.current
			prevGap := math.Abs(tt.target - cur)
			for i := 0; i < 500; i++ {
				next := Approach(cur, tt.target, tt.rate)
				lo, hi := math.Min(cur, tt.target), math.Max(cur, tt.target)
				if next < lo || next > hi {
					t.Fatalf("tick %d: %g left [%g, %g]", i, next, lo, hi)
				}
				gap := math.Abs(tt.target - next)
				if gap > prevGap {
					t.Fatalf("tick %d: gap grew from %g to %g", i, prevGap, gap)
				}
				prevGap = gap
				cur = next
			}
		})
	}
}

func TestApproachReferenceStep(t *testing.T) {
	got := Approach(0, -1.6, 0.1)
	if math.Abs(got-(-0.16)) > 1e-12 {
		t.Fatalf("Approach(0, -1.6, 0.1) = %g, want -0.16", got)
	}
	if got := Approach(1, 0, 1); got != 0 {
		t.Fatalf("rate 1 should land on target, got %g", got)
	}
	if got := Approach(1, 0, 0); got != 1 {
		t.Fatalf("rate 0 should hold, got %g", got)
	}
}

func TestDecayRateMatchesReferenceTick(t *testing.T) {
	if got := DecayRate(0.1, 1.0/60, 60); math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("one reference tick should keep the rate, got %g", got)
	}

	// Two half ticks cover the same ground as one full tick.
	half := DecayRate(0.1, 1.0/120, 60)
	x := Approach(Approach(1, 0, half), 0, half)
	y := Approach(1, 0, 0.1)
	if math.Abs(x-y) > 1e-12 {
		t.Fatalf("two half ticks = %g, one tick = %g", x, y)
	}

	if got := DecayRate(0.1, 0, 60); got != 0 {
		t.Fatalf("zero dt should not move, got %g", got)
	}
}

func TestTicksToSettle(t *testing.T) {
	n := TicksToSettle(1.5, 1e-3, 0.1)
	cur := 1.5
	for i := 0; i < n; i++ {
		cur = Approach(cur, 0, 0.1)
	}
	if math.Abs(cur) > 1e-3 {
		t.Fatalf("after %d ticks angle is %g", n, cur)
	}
	if n < 60 || n > 80 {
		t.Fatalf("unexpected settle time %d", n)
	}
}

func TestDistance(t *testing.T) {
	a := mgl64.Vec3{0, 0, 0}
	b := mgl64.Vec3{3, 5, 4}
	if got := Distance(a, b, true); math.Abs(got-5) > 1e-12 {
		t.Errorf("planar distance = %g, want 5", got)
	}
	if got := Distance(a, b, false); math.Abs(got-math.Sqrt(50)) > 1e-12 {
		t.Errorf("3D distance = %g, want %g", got, math.Sqrt(50))
	}
}

func TestYawTowards(t *testing.T) {
	tests := []struct {
		to   mgl64.Vec3
		want float64
	}{
		{mgl64.Vec3{0, 0, 1}, 0},
		{mgl64.Vec3{1, 0, 0}, math.Pi / 2},
		{mgl64.Vec3{-1, 0, 0}, -math.Pi / 2},
		{mgl64.Vec3{0, 0, 0}, 0},
	}
	for _, tt := range tests {
		if got := YawTowards(mgl64.Vec3{}, tt.to); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("YawTowards(%v) = %g, want %g", tt.to, got, tt.want)
		}
	}
}
