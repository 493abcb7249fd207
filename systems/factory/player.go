package factory

import (
	"github.com/automoto/isoterrain/archetypes"
	"github.com/automoto/isoterrain/assets"
	"github.com/automoto/isoterrain/components"
	cfg "github.com/automoto/isoterrain/config"
	"github.com/automoto/isoterrain/shared/actor"
	"github.com/automoto/isoterrain/shared/collision"
	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerHitbox is the configured player collision box.
func PlayerHitbox() collision.Hitbox {
	return collision.Hitbox{
		Width:  cfg.Player.HitboxWidth,
		Height: cfg.Player.HitboxHeight,
		Depth:  cfg.Player.HitboxDepth,
	}
}

// NewPlayerActor builds an actor at pos with the configured hitbox and tuning.
func NewPlayerActor(pos gamemath.Point3D) *actor.Actor {
	a := actor.New(pos)
	a.Hitbox = PlayerHitbox()
	a.Tuning = actor.Tuning{
		Speed:            cfg.Player.Speed,
		Gravity:          cfg.Player.Gravity,
		TerminalVelocity: cfg.Player.TerminalVelocity,
		JumpImpulse:      cfg.Player.JumpImpulse,
	}
	return a
}

func CreatePlayer(ecs *ecs.ECS, pos gamemath.Point3D) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Actor.SetValue(player, components.ActorData{Actor: NewPlayerActor(pos)})
	components.Sprite.SetValue(player, components.SpriteData{
		Image: assets.NewEntireImage(assets.ImageMu, cfg.Player.SpriteWidth, cfg.Player.SpriteHeight),
	})

	return player
}
