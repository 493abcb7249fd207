// Package terrain holds the heightmapped tile grid: lookups, visible range
// culling and the layered face rendering of each cell.
// It has no dependencies on ebitengine or donburi, so it can be tested headless.
package terrain

// Tile dimensions in world units.
const (
	TileWidth     = 32.0 // X extent of a tile
	TileHeight    = 16.0 // vertical extent of one height level
	TileTopHeight = 32.0 // Z extent of a tile, also the top face sprite height
)

// Tile is one grid cell.
type Tile struct {
	Height uint16
}

// SnapHeight converts the tile's level into vertical world units.
func (t Tile) SnapHeight() float64 {
	return float64(t.Height) * TileHeight
}

// Face identifies one image of a tile: the top surface with its edge and corner
// overlays, or the side wall with its edge and grass overlays.
type Face int

const (
	FaceTop Face = iota
	FaceTopEdgeN
	FaceTopEdgeE
	FaceTopEdgeS
	FaceTopEdgeW
	FaceCornerNE
	FaceCornerSE
	FaceCornerSW
	FaceCornerNW
	FaceSide
	FaceSideEdgeE
	FaceSideEdgeW
	FaceSideGrass
	FaceCount
)

const topFaceCount = int(FaceSide)

var faceNames = [...]string{
	FaceTop:       "top",
	FaceTopEdgeN:  "top-edge-n",
	FaceTopEdgeE:  "top-edge-e",
	FaceTopEdgeS:  "top-edge-s",
	FaceTopEdgeW:  "top-edge-w",
	FaceCornerNE:  "corner-ne",
	FaceCornerSE:  "corner-se",
	FaceCornerSW:  "corner-sw",
	FaceCornerNW:  "corner-nw",
	FaceSide:      "side",
	FaceSideEdgeE: "side-edge-e",
	FaceSideEdgeW: "side-edge-w",
	FaceSideGrass: "side-grass",
}

func (f Face) String() string {
	if f < 0 || f >= FaceCount {
		return "invalid"
	}
	return faceNames[f]
}

// IsTop reports whether f belongs to the top surface set.
func (f Face) IsTop() bool {
	return f >= FaceTop && int(f) < topFaceCount
}

// Rect is a source rectangle on the tile sheet.
type Rect struct {
	X, Y, W, H float64
}

// Appearance maps every face to its source rectangle on the tile sheet.
type Appearance [FaceCount]Rect

// NewAppearance lays out the faces of one tile column starting at (originX, originY):
// the nine top images stacked at TileTopHeight pitch, then the four side images at
// TileHeight pitch.
func NewAppearance(originX, originY float64) Appearance {
	var a Appearance
	for f := FaceTop; f < FaceCount; f++ {
		if f.IsTop() {
			a[f] = Rect{
				X: originX,
				Y: originY + float64(f)*TileTopHeight,
				W: TileWidth,
				H: TileTopHeight,
			}
			continue
		}
		side := int(f) - topFaceCount
		a[f] = Rect{
			X: originX,
			Y: originY + float64(topFaceCount)*TileTopHeight + float64(side)*TileHeight,
			W: TileWidth,
			H: TileHeight,
		}
	}
	return a
}

// SheetSize returns the pixel size a tile sheet needs to hold one Appearance column.
func SheetSize() (w, h int) {
	return int(TileWidth), int(float64(topFaceCount)*TileTopHeight + float64(int(FaceCount)-topFaceCount)*TileHeight)
}
