package systems

import (
	"github.com/automoto/isoterrain/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
	}
	return components.Settings.Get(entry)
}

// QuitRequested reports whether the quit action has been pressed.
func QuitRequested(ecs *ecs.ECS) bool {
	return GetOrCreateSettings(ecs).Quit
}
