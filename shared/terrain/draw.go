package terrain

import "github.com/automoto/isoterrain/shared/gamemath"

// Canvas receives the faces emitted by DrawTile. x and y are unscaled screen
// coordinates relative to the top left of the viewport.
type Canvas interface {
	DrawFace(face Face, src Rect, x, y float64)
}

// DrawTile emits the face at height level y of the tile at grid (x, z), if
// that level shows anything. The top surface is drawn on the level equal to
// the tile height. Side walls fill every level below it.
func (w *World) DrawTile(x, y, z int, centre gamemath.Point, vp Viewport, canvas Canvas) {
	tile, ok := w.TileAt(x, z)
	if !ok {
		return
	}
	h := int(tile.Height)

	// level of the row in front, or 0 past the last row
	front := 0
	if z != w.depth-1 {
		front = w.heightAt(x, z+1)
	}

	switch {
	case y == h:
		w.drawTop(x, h, z, front, centre, vp, canvas)
	case y <= h-1:
		w.drawSide(x, y, z, h, front, centre, vp, canvas)
	}
}

func (w *World) drawTop(x, h, z, front int, centre gamemath.Point, vp Viewport, canvas Canvas) {
	// hidden behind a row at least two levels taller
	if h-front < -1 {
		return
	}
	a := &w.appearance
	screenX := vp.EffWidth/2.0 + float64(x)*TileWidth - centre.X
	screenY := vp.EffHeight/2.0 + float64(z)*TileTopHeight - float64(h)*TileHeight - centre.Y

	lower := func(nx, nz int) bool {
		tile, ok := w.TileAt(nx, nz)
		return ok && int(tile.Height) < h
	}

	emit := func(f Face) { canvas.DrawFace(f, a[f], screenX, screenY) }

	emit(FaceTop)
	if lower(x-1, z) {
		emit(FaceTopEdgeW)
	}
	if lower(x, z-1) {
		emit(FaceTopEdgeN)
	}
	if lower(x+1, z) {
		emit(FaceTopEdgeE)
	}
	if lower(x, z+1) {
		emit(FaceTopEdgeS)
	}
	if lower(x-1, z-1) {
		emit(FaceCornerNW)
	}
	if lower(x+1, z-1) {
		emit(FaceCornerNE)
	}
	if lower(x-1, z+1) {
		emit(FaceCornerSW)
	}
	if lower(x+1, z+1) {
		emit(FaceCornerSE)
	}
}

func (w *World) drawSide(x, y, z, h, front int, centre gamemath.Point, vp Viewport, canvas Canvas) {
	// covered by the row in front
	if y-front < 0 {
		return
	}
	a := &w.appearance
	screenX := vp.EffWidth/2.0 + float64(x)*TileWidth - centre.X
	screenY := vp.EffHeight/2.0 + float64(z)*TileTopHeight + TileTopHeight - float64(y+1)*TileHeight - centre.Y

	open := func(nx, nz int) bool {
		tile, ok := w.TileAt(nx, nz)
		return ok && int(tile.Height) <= y
	}

	emit := func(f Face) { canvas.DrawFace(f, a[f], screenX, screenY) }

	emit(FaceSide)
	if open(x-1, z) {
		emit(FaceSideEdgeW)
	}
	if open(x+1, z) {
		emit(FaceSideEdgeE)
	}
	if y == h-1 {
		emit(FaceSideGrass)
	}
}
