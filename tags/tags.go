package tags

import "github.com/yohamta/donburi"

var (
	Fighter  = donburi.NewTag().SetName("Fighter")
	Player   = donburi.NewTag().SetName("Player")
	Opponent = donburi.NewTag().SetName("Opponent")
)
