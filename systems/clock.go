package systems

import (
	"github.com/automoto/isoterrain/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock measures the time since the previous tick. ebiten paces the
// loop itself, so the timer only marks.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	components.Clock.Get(entry).Mark()
}
