package components

import (
	"github.com/automoto/isoterrain/shared/clock"
	"github.com/yohamta/donburi"
)

type ClockData struct {
	*clock.Timer
}

var Clock = donburi.NewComponentType[ClockData]()
