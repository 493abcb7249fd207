package scenes

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/automoto/isoterrain/assets"
	cfg "github.com/automoto/isoterrain/config"
	"github.com/automoto/isoterrain/shared/gamemath"
	"github.com/automoto/isoterrain/shared/terrain"
	"github.com/automoto/isoterrain/systems/factory"
)

// RandomLevelName is the name given to generated terrain.
const RandomLevelName = "random"

// LoadLevel returns the embedded heightmap called name, or random terrain
// built from the world config when name is empty. The spawn is always set and
// rests on the surface under it, so the player never starts inside a tile.
func LoadLevel(name string, seed int64) (*terrain.Level, error) {
	if name == "" {
		return randomLevel(seed), nil
	}

	levels, names, err := terrain.LoadLevels(assets.LevelFS(), assets.LevelsDir)
	if err != nil {
		return nil, err
	}
	level, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q, have %s", name, strings.Join(names, ", "))
	}
	spawn := defaultSpawn()
	if level.Spawn != nil {
		spawn = *level.Spawn
	}
	spawn = factory.PlayerHitbox().Settle(spawn, level.World)
	level.Spawn = &spawn
	return level, nil
}

func randomLevel(seed int64) *terrain.Level {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	world := terrain.NewRandomWorld(cfg.World.Width, cfg.World.Depth, cfg.World.MinHeight, cfg.World.MaxHeight, rng)
	spawn := factory.PlayerHitbox().Settle(defaultSpawn(), world)
	return &terrain.Level{
		Name:  RandomLevelName,
		World: world,
		Spawn: &spawn,
	}
}

func defaultSpawn() gamemath.Point3D {
	return gamemath.Point3D{
		X: float64(cfg.Player.SpawnTileX) * terrain.TileWidth,
		Z: float64(cfg.Player.SpawnTileZ) * terrain.TileTopHeight,
	}
}
