package components

import (
	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/shared/terrain"
	"github.com/yohamta/donburi"
)

type TerrainData struct {
	World *terrain.World
	Name  string           // Level stem, or "random"
	Spawn gamemath.Point3D // Where the player starts and respawns
}

var Terrain = donburi.NewComponentType[TerrainData]()
