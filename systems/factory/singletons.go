package factory

import (
	"github.com/automoto/isoterrain/archetypes"
	"github.com/automoto/isoterrain/components"
	"github.com/automoto/isoterrain/shared/clock"
	"github.com/automoto/isoterrain/ui"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS, framerate float64) {
	entry := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(entry, components.ClockData{Timer: clock.NewTimer(framerate)})
}

func CreateSettings(ecs *ecs.ECS, debug bool) {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, components.SettingsData{Debug: debug})
}

func CreateHUD(ecs *ecs.ECS, hud *ui.HUDUI) {
	entry := archetypes.HUD.Spawn(ecs)
	components.HUD.SetValue(entry, components.HUDData{HUDUI: hud})
}
