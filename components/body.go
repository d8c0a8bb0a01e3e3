package components

import (
	"github.com/automoto/octagon/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type BodyData struct {
	Body physics.Body
}

// Position returns the body position, or the origin when no body is attached.
func (b *BodyData) Position() mgl64.Vec3 {
	if b.Body == nil {
		return mgl64.Vec3{}
	}
	return b.Body.Position()
}

var Body = donburi.NewComponentType[BodyData]()
