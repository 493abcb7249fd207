package factory

import (
	"github.com/automoto/isoterrain/archetypes"
	"github.com/automoto/isoterrain/assets"
	"github.com/automoto/isoterrain/components"
	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/shared/terrain"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTerrain spawns the world entity together with the bitmaps it draws from.
func CreateTerrain(ecs *ecs.ECS, name string, w *terrain.World, spawn gamemath.Point3D, bank *assets.Bank) *donburi.Entry {
	entry := archetypes.Terrain.Spawn(ecs)
	components.Terrain.SetValue(entry, components.TerrainData{World: w, Name: name, Spawn: spawn})
	components.Bank.SetValue(entry, components.BankData{Bank: bank})
	return entry
}
