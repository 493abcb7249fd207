package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/automoto/isoterrain/shared/terrain"
)

var (
	//go:embed levels/*.tmx
	levelFS embed.FS
)

// LevelsDir is the directory inside LevelFS holding the TMX heightmaps.
const LevelsDir = "levels"

// LevelFS returns the embedded level files.
func LevelFS() fs.FS {
	return levelFS
}

// ImageID names one loaded bitmap.
type ImageID int

const (
	ImageMu ImageID = iota
	ImageTiles
	ImageCount
)

func (id ImageID) String() string {
	switch id {
	case ImageMu:
		return "mu"
	case ImageTiles:
		return "tiles"
	}
	return "invalid"
}

// Image is a drawable region of a bitmap with its own display size. Entire
// images draw the whole bitmap and ignore Src.
type Image struct {
	ID     ImageID
	Entire bool
	Src    image.Rectangle
	DispW  float64
	DispH  float64
}

// NewImage is a sub-rectangle displayed at its own size.
func NewImage(id ImageID, src image.Rectangle) Image {
	return Image{ID: id, Src: src, DispW: float64(src.Dx()), DispH: float64(src.Dy())}
}

// NewEntireImage is the whole bitmap displayed at dispW x dispH.
func NewEntireImage(id ImageID, dispW, dispH float64) Image {
	return Image{ID: id, Entire: true, DispW: dispW, DispH: dispH}
}

// NewScaledImage is a sub-rectangle stretched to dispW x dispH.
func NewScaledImage(id ImageID, dispW, dispH float64, src image.Rectangle) Image {
	return Image{ID: id, Src: src, DispW: dispW, DispH: dispH}
}

// RectFromFace converts a terrain sheet rectangle into an image rectangle.
func RectFromFace(r terrain.Rect) image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X+r.W), int(r.Y+r.H))
}

// Bank holds one bitmap per ImageID.
type Bank struct {
	bitmaps [ImageCount]*ebiten.Image
}

// Bitmap returns the loaded bitmap for id.
func (b *Bank) Bitmap(id ImageID) *ebiten.Image {
	return b.bitmaps[id]
}

// LoadBank loads each bitmap from its path, or generates it when the path is
// empty. A path that fails to load falls back to the generated bitmap.
func LoadBank(tileSheetPath, spritePath string) *Bank {
	b := &Bank{}
	b.bitmaps[ImageTiles] = loadOrGenerate(tileSheetPath, GenerateTileSheet)
	b.bitmaps[ImageMu] = loadOrGenerate(spritePath, GenerateMu)
	return b
}

func loadOrGenerate(path string, generate func() *ebiten.Image) *ebiten.Image {
	if path == "" {
		return generate()
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("Warning: could not load image %s, using generated one: %v", path, err)
		return generate()
	}
	return img
}

// Draw draws img with its top left at (x, y), truncated to whole units, then
// applies geo (usually the screen scale).
func (img Image) Draw(dst *ebiten.Image, x, y float64, b *Bank, geo ebiten.GeoM) {
	bitmap := b.Bitmap(img.ID)
	if bitmap == nil {
		return
	}
	if !img.Entire {
		bitmap = bitmap.SubImage(img.Src).(*ebiten.Image)
	}
	bounds := bitmap.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(img.DispW/float64(bounds.Dx()), img.DispH/float64(bounds.Dy()))
	op.GeoM.Translate(math.Trunc(x), math.Trunc(y))
	op.GeoM.Concat(geo)
	dst.DrawImage(bitmap, op)
}

// String is used in debug output.
func (img Image) String() string {
	if img.Entire {
		return fmt.Sprintf("%s[entire %vx%v]", img.ID, img.DispW, img.DispH)
	}
	return fmt.Sprintf("%s[%v %vx%v]", img.ID, img.Src, img.DispW, img.DispH)
}
