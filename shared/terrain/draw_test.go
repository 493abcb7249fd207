package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/isoterrain/shared/gamemath"
)

type drawCall struct {
	face Face
	x, y float64
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) DrawFace(face Face, src Rect, x, y float64) {
	c.calls = append(c.calls, drawCall{face: face, x: x, y: y})
}

func (c *recordingCanvas) faces() []Face {
	out := make([]Face, 0, len(c.calls))
	for _, call := range c.calls {
		out = append(out, call.face)
	}
	return out
}

func worldFrom(t *testing.T, rows [][]uint16) *World {
	t.Helper()
	w := NewWorld(len(rows[0]), len(rows))
	for z, row := range rows {
		for x, h := range row {
			require.NoError(t, w.SetHeight(x, z, h))
		}
	}
	return w
}

var testViewport = Viewport{EffWidth: 200, EffHeight: 100}

func TestDrawTileTopFace(t *testing.T) {
	w := worldFrom(t, [][]uint16{
		{0, 0, 0},
		{0, 2, 0},
		{0, 0, 0},
	})
	c := &recordingCanvas{}

	w.DrawTile(1, 2, 1, gamemath.Point{}, testViewport, c)

	assert.Equal(t, []Face{
		FaceTop,
		FaceTopEdgeW, FaceTopEdgeN, FaceTopEdgeE, FaceTopEdgeS,
		FaceCornerNW, FaceCornerNE, FaceCornerSW, FaceCornerSE,
	}, c.faces())
	for _, call := range c.calls {
		assert.Equal(t, 132.0, call.x)
		assert.Equal(t, 50.0, call.y)
	}
}

func TestDrawTileFlatTopHasNoEdges(t *testing.T) {
	w := worldFrom(t, [][]uint16{
		{0, 0, 0},
		{0, 2, 0},
		{0, 0, 0},
	})
	c := &recordingCanvas{}

	w.DrawTile(0, 0, 0, gamemath.Point{}, testViewport, c)

	require.Len(t, c.calls, 1)
	assert.Equal(t, drawCall{face: FaceTop, x: 100, y: 50}, c.calls[0])
}

func TestDrawTileTopHiddenByTallFront(t *testing.T) {
	w := worldFrom(t, [][]uint16{
		{0, 1},
		{2, 2},
	})

	c := &recordingCanvas{}
	w.DrawTile(0, 0, 0, gamemath.Point{}, testViewport, c)
	assert.Empty(t, c.calls, "front row two levels taller hides the top")

	c = &recordingCanvas{}
	w.DrawTile(1, 1, 0, gamemath.Point{}, testViewport, c)
	assert.NotEmpty(t, c.calls, "front row one level taller still shows the top")
	assert.Equal(t, FaceTop, c.calls[0].face)
}

func TestDrawTileSideFaces(t *testing.T) {
	w := worldFrom(t, [][]uint16{
		{0, 0, 0},
		{0, 2, 0},
		{0, 0, 0},
	})

	c := &recordingCanvas{}
	w.DrawTile(1, 1, 1, gamemath.Point{}, testViewport, c)
	assert.Equal(t, []Face{FaceSide, FaceSideEdgeW, FaceSideEdgeE, FaceSideGrass}, c.faces())
	for _, call := range c.calls {
		assert.Equal(t, 132.0, call.x)
		assert.Equal(t, 82.0, call.y)
	}

	c = &recordingCanvas{}
	w.DrawTile(1, 0, 1, gamemath.Point{}, testViewport, c)
	assert.Equal(t, []Face{FaceSide, FaceSideEdgeW, FaceSideEdgeE}, c.faces())
	assert.Equal(t, 98.0, c.calls[0].y)
}

func TestDrawTileSideCoveredByFront(t *testing.T) {
	w := worldFrom(t, [][]uint16{
		{3, 3},
		{2, 0},
	})

	c := &recordingCanvas{}
	w.DrawTile(0, 1, 0, gamemath.Point{}, testViewport, c)
	assert.Empty(t, c.calls)

	c = &recordingCanvas{}
	w.DrawTile(0, 2, 0, gamemath.Point{}, testViewport, c)
	// neighbour (1,0) is level 3, so no side edges
	assert.Equal(t, []Face{FaceSide, FaceSideGrass}, c.faces())
}

func TestDrawTileLastRowHasNoFront(t *testing.T) {
	w := worldFrom(t, [][]uint16{
		{0, 0},
		{1, 1},
	})

	c := &recordingCanvas{}
	w.DrawTile(0, 0, 1, gamemath.Point{}, testViewport, c)
	assert.Equal(t, []Face{FaceSide, FaceSideGrass}, c.faces())
}

func TestDrawTileNothingAboveSurfaceOrOutside(t *testing.T) {
	w := worldFrom(t, [][]uint16{{1}})

	c := &recordingCanvas{}
	w.DrawTile(0, 2, 0, gamemath.Point{}, testViewport, c)
	w.DrawTile(5, 0, 0, gamemath.Point{}, testViewport, c)
	w.DrawTile(-1, 0, 0, gamemath.Point{}, testViewport, c)
	assert.Empty(t, c.calls)
}

func TestDrawTileCentreOffset(t *testing.T) {
	w := worldFrom(t, [][]uint16{{0}})
	c := &recordingCanvas{}

	w.DrawTile(0, 0, 0, gamemath.Point{X: 40, Y: -20}, testViewport, c)

	require.Len(t, c.calls, 1)
	assert.Equal(t, 60.0, c.calls[0].x)
	assert.Equal(t, 70.0, c.calls[0].y)
}

func TestVisibleRange(t *testing.T) {
	w := NewWorld(50, 50)
	vp := Viewport{EffWidth: 683, EffHeight: 384}

	tests := []struct {
		name         string
		centre       gamemath.Point
		z            int
		startX, endX int
		startY, endY int
	}{
		{"top left", gamemath.Point{X: 341.5, Y: 192}, 0, 0, 22, 0, 19},
		{"top left deeper row", gamemath.Point{X: 341.5, Y: 192}, 10, 0, 22, 0, 23},
		{"far past the grid", gamemath.Point{X: 1e6, Y: -1e6}, 0, 50, 50, 0, 62515},
		{"far before the grid", gamemath.Point{X: -1e6, Y: 1e7}, 0, 0, 0, 65536, 65536},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.startX, w.StartX(tt.centre, vp))
			assert.Equal(t, tt.endX, w.EndX(tt.centre, vp))
			assert.Equal(t, tt.startY, w.StartY(tt.centre, tt.z, vp))
			assert.Equal(t, tt.endY, w.EndY(tt.centre, tt.z, vp))
		})
	}
}

func TestVisibleRangeCoversScreen(t *testing.T) {
	w := NewWorld(50, 50)
	vp := Viewport{EffWidth: 300, EffHeight: 200}
	centre := gamemath.Point{X: 800, Y: 600}

	start, end := w.StartX(centre, vp), w.EndX(centre, vp)
	assert.Less(t, start, end)

	// every column that lands on screen is inside [start, end)
	for x := 0; x < w.Width(); x++ {
		left := vp.EffWidth/2 + float64(x)*TileWidth - centre.X
		if left+TileWidth > 0 && left < vp.EffWidth {
			assert.GreaterOrEqual(t, x, start)
			assert.Less(t, x, end)
		}
	}
}

func TestVisibleRangeCoversLevels(t *testing.T) {
	w := NewWorld(50, 50)

	tests := []struct {
		name   string
		vp     Viewport
		centre gamemath.Point
	}{
		{"zoomed in", Viewport{EffWidth: 227, EffHeight: 128}, gamemath.Point{X: 400, Y: 400}},
		{"zoomed in near top", Viewport{EffWidth: 227, EffHeight: 128}, gamemath.Point{X: 113.5, Y: 64}},
		{"default zoom", Viewport{EffWidth: 683, EffHeight: 384}, gamemath.Point{X: 800, Y: 700}},
		{"zoomed out", Viewport{EffWidth: 1366, EffHeight: 768}, gamemath.Point{X: 800, Y: 800}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for z := 0; z < w.Depth(); z++ {
				start, end := w.StartY(tt.centre, z, tt.vp), w.EndY(tt.centre, z, tt.vp)
				assert.LessOrEqual(t, start, end)

				// every level whose top face or side slice lands on screen is inside [start, end)
				for y := 0; y <= 8; y++ {
					top := tt.vp.EffHeight/2 + float64(z)*TileTopHeight - float64(y)*TileHeight - tt.centre.Y
					side := tt.vp.EffHeight/2 + float64(z)*TileTopHeight + TileTopHeight - float64(y+1)*TileHeight - tt.centre.Y
					topVisible := top+TileTopHeight > 0 && top < tt.vp.EffHeight
					sideVisible := side+TileHeight > 0 && side < tt.vp.EffHeight
					if topVisible || sideVisible {
						assert.GreaterOrEqual(t, y, start, "row %d level %d", z, y)
						assert.Less(t, y, end, "row %d level %d", z, y)
					}
				}
			}
		})
	}
}
