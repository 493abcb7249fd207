package components

import (
	"github.com/automoto/isoterrain/ui"
	"github.com/yohamta/donburi"
)

type HUDData struct {
	*ui.HUDUI
}

var HUD = donburi.NewComponentType[HUDData]()
