package systems

import (
	"math"

	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/automoto/octagon/shared/gamemath"
	"github.com/automoto/octagon/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ComputeVelocity turns held direction keys into a floor plane velocity.
// Forward is -z. Diagonals add up, so they move at speed*sqrt(2) unless
// config.Locomotion.NormalizeDiagonal is set.
func ComputeVelocity(held components.Keys, speed float64) (vx, vz float64) {
	return velocityFor(cfg.Input.Actions(held), speed, cfg.Locomotion.NormalizeDiagonal)
}

func velocityFor(actions [cfg.ActionCount]bool, speed float64, normalize bool) (vx, vz float64) {
	if actions[cfg.ActionMoveForward] {
		vz -= speed
	}
	if actions[cfg.ActionMoveBack] {
		vz += speed
	}
	if actions[cfg.ActionMoveLeft] {
		vx -= speed
	}
	if actions[cfg.ActionMoveRight] {
		vx += speed
	}
	if normalize && vx != 0 && vz != 0 {
		vx /= math.Sqrt2
		vz /= math.Sqrt2
	}
	return vx, vz
}

// UpdateLocomotion commands every fighter's body with the velocity its held
// keys ask for. The vertical component belongs to the body and is kept.
func UpdateLocomotion(w donburi.World, speed float64, normalize bool) {
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.Body == nil {
			return
		}
		input := components.Input.Get(e)

		vx, vz := velocityFor(input.Current, speed, normalize)
		v := body.Body.Velocity()
		body.Body.SetVelocity(mgl64.Vec3{vx, v.Y(), vz})
	})
}

// UpdateFacing turns each fighter to face the other one.
func UpdateFacing(w donburi.World) {
	positions := map[components.ActorID]mgl64.Vec3{}
	tags.Fighter.Each(w, func(e *donburi.Entry) {
		positions[components.Actor.Get(e).ID] = components.Body.Get(e).Position()
	})

	tags.Fighter.Each(w, func(e *donburi.Entry) {
		actor := components.Actor.Get(e)
		other, ok := positions[actor.ID.Other()]
		if !ok {
			return
		}
		self := positions[actor.ID]
		if gamemath.Distance(self, other, true) == 0 {
			return
		}
		actor.Yaw = gamemath.YawTowards(self, other)
	})
}
