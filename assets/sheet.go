package assets

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/automoto/isoterrain/shared/terrain"
)

var (
	grassTop   = color.RGBA{R: 96, G: 168, B: 72, A: 255}
	grassEdge  = color.RGBA{R: 58, G: 110, B: 44, A: 255}
	dirtSide   = color.RGBA{R: 138, G: 96, B: 60, A: 255}
	dirtEdge   = color.RGBA{R: 92, G: 62, B: 38, A: 255}
	grassStrip = color.RGBA{R: 76, G: 140, B: 58, A: 255}
	muBody     = color.RGBA{R: 240, G: 220, B: 120, A: 255}
	muOutline  = color.RGBA{R: 60, G: 40, B: 20, A: 255}
)

const edgeWidth = 2

// GenerateTileSheet draws a tile sheet with the layout terrain.NewAppearance(0, 0)
// expects. Overlays are transparent except for their edge strip.
func GenerateTileSheet() *ebiten.Image {
	w, h := terrain.SheetSize()
	sheet := ebiten.NewImage(w, h)
	a := terrain.NewAppearance(0, 0)

	fill := func(r terrain.Rect, c color.Color) {
		vector.FillRect(sheet, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
	}
	strip := func(r terrain.Rect, dx, dy, sw, sh float64, c color.Color) {
		vector.FillRect(sheet, float32(r.X+dx), float32(r.Y+dy), float32(sw), float32(sh), c, false)
	}

	top := a[terrain.FaceTop]
	fill(top, grassTop)

	r := a[terrain.FaceTopEdgeN]
	strip(r, 0, 0, r.W, edgeWidth, grassEdge)
	r = a[terrain.FaceTopEdgeE]
	strip(r, r.W-edgeWidth, 0, edgeWidth, r.H, grassEdge)
	r = a[terrain.FaceTopEdgeS]
	strip(r, 0, r.H-edgeWidth, r.W, edgeWidth, grassEdge)
	r = a[terrain.FaceTopEdgeW]
	strip(r, 0, 0, edgeWidth, r.H, grassEdge)

	r = a[terrain.FaceCornerNE]
	strip(r, r.W-edgeWidth, 0, edgeWidth, edgeWidth, grassEdge)
	r = a[terrain.FaceCornerSE]
	strip(r, r.W-edgeWidth, r.H-edgeWidth, edgeWidth, edgeWidth, grassEdge)
	r = a[terrain.FaceCornerSW]
	strip(r, 0, r.H-edgeWidth, edgeWidth, edgeWidth, grassEdge)
	r = a[terrain.FaceCornerNW]
	strip(r, 0, 0, edgeWidth, edgeWidth, grassEdge)

	fill(a[terrain.FaceSide], dirtSide)
	r = a[terrain.FaceSideEdgeE]
	strip(r, r.W-edgeWidth, 0, edgeWidth, r.H, dirtEdge)
	r = a[terrain.FaceSideEdgeW]
	strip(r, 0, 0, edgeWidth, r.H, dirtEdge)
	r = a[terrain.FaceSideGrass]
	strip(r, 0, 0, r.W, 4, grassStrip)

	return sheet
}

// GenerateMu draws the 16x16 player sprite.
func GenerateMu() *ebiten.Image {
	img := ebiten.NewImage(16, 16)
	vector.FillCircle(img, 8, 8, 7, muOutline, true)
	vector.FillCircle(img, 8, 8, 6, muBody, true)
	// the stem and bowl of a lowercase mu
	vector.FillRect(img, 5, 4, 2, 10, muOutline, false)
	vector.FillRect(img, 9, 4, 2, 7, muOutline, false)
	vector.FillRect(img, 5, 10, 6, 1, muOutline, false)
	return img
}
