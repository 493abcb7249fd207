package terrain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldBounds(t *testing.T) {
	w := NewWorld(50, 50)

	count := 0
	for x := 0; x < 50; x++ {
		for z := 0; z < 50; z++ {
			if _, ok := w.TileAt(x, z); ok {
				count++
			}
		}
	}
	assert.Equal(t, 2500, count)

	tests := []struct {
		name string
		x, z int
		ok   bool
	}{
		{"origin", 0, 0, true},
		{"last corner", 49, 49, true},
		{"x edge", 49, 0, true},
		{"z edge", 0, 49, true},
		{"x just outside", 50, 0, false},
		{"z just outside", 0, 50, false},
		{"negative x", -1, 0, false},
		{"negative z", 0, -1, false},
		{"above the x edge", 49, -1, false},
		{"past the far x corner", 50, 49, false},
		{"left of the z edge", -1, 49, false},
		{"past the far z corner", 49, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile, ok := w.TileAt(tt.x, tt.z)
			assert.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.Nil(t, tile)
			}

			_, err := w.Lookup(tt.x, tt.z)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrOutOfRange)
			}
		})
	}
}

func TestTileAtReturnsSameTile(t *testing.T) {
	w := NewWorld(4, 3)
	a, ok := w.TileAt(2, 1)
	require.True(t, ok)
	b, ok := w.TileAt(2, 1)
	require.True(t, ok)
	assert.Same(t, a, b)

	a.Height = 7
	assert.Equal(t, uint16(7), b.Height)
}

func TestSetHeight(t *testing.T) {
	w := NewWorld(3, 5)

	require.NoError(t, w.SetHeight(2, 4, 9))
	tile, err := w.Lookup(2, 4)
	require.NoError(t, err)
	assert.Equal(t, uint16(9), tile.Height)
	assert.Equal(t, 9*TileHeight, tile.SnapHeight())

	// neighbours untouched
	other, _ := w.TileAt(1, 4)
	assert.Equal(t, uint16(0), other.Height)

	assert.ErrorIs(t, w.SetHeight(3, 0, 1), ErrOutOfRange)
}

func TestWorldExtents(t *testing.T) {
	w := NewWorld(7, 11)
	assert.Equal(t, 7, w.Width())
	assert.Equal(t, 11, w.Depth())
	assert.Equal(t, 65536, w.Height())
}

func TestNewRandomWorldHeights(t *testing.T) {
	w := NewRandomWorld(50, 50, 0, 2, rand.New(rand.NewSource(1)))

	seen := map[uint16]bool{}
	for x := 0; x < 50; x++ {
		for z := 0; z < 50; z++ {
			tile, ok := w.TileAt(x, z)
			require.True(t, ok)
			assert.LessOrEqual(t, tile.Height, uint16(2))
			seen[tile.Height] = true
		}
	}
	assert.Len(t, seen, 3, "every level in range should appear in 2500 draws")

	again := NewRandomWorld(50, 50, 0, 2, rand.New(rand.NewSource(1)))
	assert.Equal(t, w.tiles, again.tiles, "same seed gives the same world")
}

func TestNewRandomWorldSwappedBounds(t *testing.T) {
	w := NewRandomWorld(10, 10, 5, 3, rand.New(rand.NewSource(2)))
	for _, tile := range w.tiles {
		assert.GreaterOrEqual(t, tile.Height, uint16(3))
		assert.LessOrEqual(t, tile.Height, uint16(5))
	}
}

func TestNewWorldNegativeSizePanics(t *testing.T) {
	assert.Panics(t, func() { NewWorld(-1, 4) })
}

func TestAppearanceLayout(t *testing.T) {
	a := NewAppearance(0, 0)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 32, H: 32}, a[FaceTop])
	assert.Equal(t, Rect{X: 0, Y: 32, W: 32, H: 32}, a[FaceTopEdgeN])
	assert.Equal(t, Rect{X: 0, Y: 8 * 32, W: 32, H: 32}, a[FaceCornerNW])
	assert.Equal(t, Rect{X: 0, Y: 9 * 32, W: 32, H: 16}, a[FaceSide])
	assert.Equal(t, Rect{X: 0, Y: 9*32 + 16, W: 32, H: 16}, a[FaceSideEdgeE])
	assert.Equal(t, Rect{X: 0, Y: 9*32 + 48, W: 32, H: 16}, a[FaceSideGrass])

	shifted := NewAppearance(64, 10)
	assert.Equal(t, Rect{X: 64, Y: 10 + 9*32, W: 32, H: 16}, shifted[FaceSide])

	sw, sh := SheetSize()
	assert.Equal(t, 32, sw)
	assert.Equal(t, 9*32+4*16, sh)
}

func TestFaceString(t *testing.T) {
	assert.Equal(t, "top", FaceTop.String())
	assert.Equal(t, "side-grass", FaceSideGrass.String())
	assert.Equal(t, "invalid", FaceCount.String())
	assert.True(t, FaceCornerNW.IsTop())
	assert.False(t, FaceSide.IsTop())
}
