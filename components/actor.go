package components

import "github.com/yohamta/donburi"

// ActorID identifies one of the two fighters
type ActorID int

const (
	Player ActorID = iota
	Opponent
)

func (id ActorID) String() string {
	switch id {
	case Player:
		return "player"
	case Opponent:
		return "ai"
	}
	return "unknown"
}

// Other returns the fighter id facing this one.
func (id ActorID) Other() ActorID {
	if id == Player {
		return Opponent
	}
	return Player
}

type ActorData struct {
	ID  ActorID
	Yaw float64 // radians around +y, 0 faces +z
}

var Actor = donburi.NewComponentType[ActorData]()
