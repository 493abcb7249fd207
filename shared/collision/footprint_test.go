package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/isoterrain/shared/gamemath"
)

func TestFootprint(t *testing.T) {
	w := worldFrom(t, [][]uint16{
		{0, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	pos := gamemath.Point3D{X: 16, Y: 0, Z: 48}

	f := NewFootprint(w, pos, box, 2)
	require.Len(t, f.Walls, 1)
	assert.Equal(t, 64.0, f.Walls[0].X)
	assert.Equal(t, 32.0, f.Walls[0].Y)
	assert.True(t, f.Actor.HasTags(TagActor))

	assert.Empty(t, f.Touching(0, 0))
	touching := f.Touching(48, 0)
	require.Len(t, touching, 1)
	assert.Same(t, f.Walls[0], touching[0])
}

func TestFootprintIgnoresLowTiles(t *testing.T) {
	w := worldFrom(t, [][]uint16{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})

	standing := NewFootprint(w, gamemath.Point3D{X: 16, Y: 16, Z: 16}, box, 2)
	assert.Empty(t, standing.Walls)

	outOfReach := NewFootprint(w, gamemath.Point3D{X: 16, Y: 0, Z: 16}, box, 0)
	assert.Empty(t, outOfReach.Walls)
}
