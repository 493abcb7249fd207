package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	Debug bool // Collision overlay visible
	Quit  bool // Set once quit is pressed; the scene ends the game
}

var Settings = donburi.NewComponentType[SettingsData]()
