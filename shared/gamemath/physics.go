package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Approach moves current toward target by the fraction rate of the remaining
// distance. With rate in (0,1] the result never passes target.
func Approach(current, target, rate float64) float64 {
	if rate >= 1 {
		return target
	}
	if rate <= 0 {
		return current
	}
	return current + (target-current)*rate
}

// DecayRate converts a per-tick rate measured at referenceHz into the rate for
// a tick of dt seconds, so that Approach covers the same fraction per second at
// any tick rate.
func DecayRate(rate, dt, referenceHz float64) float64 {
	if dt <= 0 || referenceHz <= 0 {
		return 0
	}
	if rate >= 1 {
		return 1
	}
	return 1 - math.Pow(1-rate, dt*referenceHz)
}

// TicksToSettle returns how many Approach steps it takes for an offset of
// start to shrink below eps.
func TicksToSettle(start, eps, rate float64) int {
	start = math.Abs(start)
	if start < eps {
		return 0
	}
	if rate <= 0 || rate >= 1 {
		return 1
	}
	return int(math.Ceil(math.Log(eps/start) / math.Log(1-rate)))
}

// Distance returns the distance between a and b. When planar is set the
// vertical axis is ignored.
func Distance(a, b mgl64.Vec3, planar bool) float64 {
	d := b.Sub(a)
	if planar {
		d[1] = 0
	}
	return d.Len()
}

// YawTowards returns the yaw, around +y, that turns a body at from to face to.
// Zero yaw faces +z.
func YawTowards(from, to mgl64.Vec3) float64 {
	dx := to.X() - from.X()
	dz := to.Z() - from.Z()
	if dx == 0 && dz == 0 {
		return 0
	}
	return math.Atan2(dx, dz)
}

// ClampInt clamps v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
