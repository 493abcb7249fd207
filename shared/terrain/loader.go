package terrain

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/automoto/isoterrain/shared/gamemath"
)

// Layer and object group names read from TMX heightmaps.
const (
	HeightLayer      = "heights"
	SpawnObjectGroup = "PlayerSpawn"
)

// Level is a world loaded from a TMX heightmap.
type Level struct {
	Name  string
	World *World
	// Spawn is nil when the map has no PlayerSpawn object.
	Spawn *gamemath.Point3D
}

// LoadHeightmap parses a TMX file whose "heights" tile layer stores each
// cell's level as its local tile ID. Empty cells are level 0. The map's X axis
// is the world X axis and its Y axis is the world Z axis. It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func LoadHeightmap(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var heights *tiled.Layer
	for _, layer := range levelMap.Layers {
		if layer.Name == HeightLayer {
			heights = layer
			break
		}
	}
	if heights == nil {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, HeightLayer)
	}
	if len(heights.Tiles) < levelMap.Width*levelMap.Height {
		return nil, fmt.Errorf("load TMX %s: layer %q has %d tiles, want %d",
			tmxPath, HeightLayer, len(heights.Tiles), levelMap.Width*levelMap.Height)
	}

	world := NewWorld(levelMap.Width, levelMap.Height)
	for z := 0; z < levelMap.Height; z++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := heights.Tiles[z*levelMap.Width+x]
			if tile.IsNil() {
				continue
			}
			if tile.ID > math.MaxUint16 {
				return nil, fmt.Errorf("load TMX %s: tile (%d, %d) level %d out of range", tmxPath, x, z, tile.ID)
			}
			if err := world.SetHeight(x, z, uint16(tile.ID)); err != nil {
				return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
			}
		}
	}

	level := &Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		World: world,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnObjectGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		level.Spawn = &gamemath.Point3D{
			X: o.X / float64(levelMap.TileWidth) * TileWidth,
			Y: 0,
			Z: o.Y / float64(levelMap.TileHeight) * TileTopHeight,
		}
		break
	}

	return level, nil
}

// LoadLevels discovers all .tmx files in levelsDir within fsys and loads each
// one. It returns a map keyed by stem name plus a sorted list of names.
func LoadLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadHeightmap(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
