package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDOptions sets the look of the status bar.
type HUDOptions struct {
	Height    int
	FontSize  float64
	Padding   int
	BgColor   color.Color
	TextColor color.Color
	Hint      string
}

// HUDUI is the status bar across the top of the screen.
type HUDUI struct {
	UI *ebitenui.UI

	fpsLabel   *widget.Label
	levelLabel *widget.Label

	face text.Face
}

func NewHUDUI(opts HUDOptions) *HUDUI {
	hud := &HUDUI{}
	hud.loadFonts(opts.FontSize)
	hud.buildUI(opts)
	return hud
}

func (hud *HUDUI) loadFonts(size float64) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	hud.face = &text.GoTextFace{Source: fontSource, Size: size}
}

func (hud *HUDUI) buildUI(opts HUDOptions) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(opts.BgColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&widget.Insets{Left: opts.Padding, Right: opts.Padding}),
			widget.RowLayoutOpts.Spacing(opts.Padding*4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchHorizontal:  true,
			}),
			widget.WidgetOpts.MinSize(0, opts.Height),
		),
	)

	labelColor := &widget.LabelColor{Idle: opts.TextColor}
	hud.fpsLabel = widget.NewLabel(widget.LabelOpts.Text(FormatFPS(0), &hud.face, labelColor))
	hud.levelLabel = widget.NewLabel(widget.LabelOpts.Text("", &hud.face, labelColor))
	hint := widget.NewLabel(widget.LabelOpts.Text(opts.Hint, &hud.face, labelColor))

	bar.AddChild(hud.fpsLabel)
	bar.AddChild(hint)
	bar.AddChild(hud.levelLabel)
	rootContainer.AddChild(bar)

	hud.UI = &ebitenui.UI{Container: rootContainer}
}

// FormatFPS renders a frame rate the way the status bar shows it.
func FormatFPS(fps float64) string {
	return fmt.Sprintf("%.2f FPS", fps)
}

// SetStatus refreshes the labels.
func (hud *HUDUI) SetStatus(fps float64, level string) {
	hud.fpsLabel.Label = FormatFPS(fps)
	hud.levelLabel.Label = level
}

func (hud *HUDUI) Update() {
	hud.UI.Update()
}

func (hud *HUDUI) Draw(screen *ebiten.Image) {
	hud.UI.Draw(screen)
}
