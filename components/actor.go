package components

import (
	"github.com/automoto/isoterrain/shared/actor"
	"github.com/yohamta/donburi"
)

type ActorData struct {
	*actor.Actor
}

var Actor = donburi.NewComponentType[ActorData]()
