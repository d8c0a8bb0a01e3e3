package components

import "github.com/yohamta/donburi"

type MeleeData struct {
	HitLanded bool // set once the current attack has dealt damage
}

var Melee = donburi.NewComponentType[MeleeData]()
