package systems

import (
	"github.com/automoto/isoterrain/components"
	cfg "github.com/automoto/isoterrain/config"
	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns the held movement actions into a direction and steps the
// player actor over the terrain.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	terrainEntry, ok := components.Terrain.First(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	world := components.Terrain.Get(terrainEntry).World

	dir := gamemath.DirectionFromKeys(
		GetAction(input, cfg.ActionMoveNorth).Pressed,
		GetAction(input, cfg.ActionMoveSouth).Pressed,
		GetAction(input, cfg.ActionMoveEast).Pressed,
		GetAction(input, cfg.ActionMoveWest).Pressed,
	)
	components.Actor.Get(playerEntry).Logic(dir, GetAction(input, cfg.ActionJump).Pressed, world)
}
