package terrain

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrOutOfRange is returned for grid coordinates outside the world.
var ErrOutOfRange = errors.New("tile out of range")

// World is a fixed width x depth grid of tiles.
type World struct {
	width      int
	depth      int
	tiles      []Tile
	appearance Appearance
}

// NewWorld creates a flat world with every tile at height 0.
func NewWorld(width, depth int) *World {
	if width < 0 || depth < 0 {
		panic(fmt.Sprintf("terrain: invalid world size %dx%d", width, depth))
	}
	return &World{
		width:      width,
		depth:      depth,
		tiles:      make([]Tile, width*depth),
		appearance: NewAppearance(0, 0),
	}
}

// NewRandomWorld creates a world with heights drawn uniformly from [minHeight, maxHeight].
func NewRandomWorld(width, depth int, minHeight, maxHeight uint16, rng *rand.Rand) *World {
	if maxHeight < minHeight {
		minHeight, maxHeight = maxHeight, minHeight
	}
	w := NewWorld(width, depth)
	span := int(maxHeight) - int(minHeight) + 1
	for i := range w.tiles {
		w.tiles[i].Height = minHeight + uint16(rng.Intn(span))
	}
	return w
}

// Width is the grid extent along X.
func (w *World) Width() int { return w.width }

// Depth is the grid extent along Z.
func (w *World) Depth() int { return w.depth }

// Height is the number of addressable vertical levels. It is a level ceiling
// derived from the Tile.Height field size, not a world distance.
func (w *World) Height() int { return math.MaxUint16 + 1 }

// Appearance returns the face layout shared by all tiles.
func (w *World) Appearance() *Appearance { return &w.appearance }

// SetAppearance replaces the face layout, e.g. after loading a sheet with a different origin.
func (w *World) SetAppearance(a Appearance) { w.appearance = a }

func (w *World) inRange(x, z int) bool {
	return x >= 0 && x < w.width && z >= 0 && z < w.depth
}

// TileAt returns the tile at (x, z). ok is false when the coordinates are
// outside the grid.
func (w *World) TileAt(x, z int) (tile *Tile, ok bool) {
	if !w.inRange(x, z) {
		return nil, false
	}
	return &w.tiles[x*w.depth+z], true
}

// Lookup is TileAt for callers that must not ignore a miss.
func (w *World) Lookup(x, z int) (*Tile, error) {
	tile, ok := w.TileAt(x, z)
	if !ok {
		return nil, fmt.Errorf("%w: (%d, %d) in %dx%d world", ErrOutOfRange, x, z, w.width, w.depth)
	}
	return tile, nil
}

// SetHeight changes the level of the tile at (x, z).
func (w *World) SetHeight(x, z int, height uint16) error {
	tile, err := w.Lookup(x, z)
	if err != nil {
		return err
	}
	tile.Height = height
	return nil
}

// heightAt returns the level at (x, z), or 0 outside the grid.
func (w *World) heightAt(x, z int) int {
	if tile, ok := w.TileAt(x, z); ok {
		return int(tile.Height)
	}
	return 0
}
