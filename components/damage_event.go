package components

import "github.com/yohamta/donburi"

// DamageEventData is attached to the defender when a hit lands and removed
// once health has been updated.
type DamageEventData struct {
	Attacker ActorID
	Defender ActorID
	Kind     string // attack name, for logs
	Amount   int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
