package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Terrain = donburi.NewTag().SetName("Terrain")
)
