package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/isoterrain/config"
	"github.com/automoto/isoterrain/fonts"
	"github.com/automoto/isoterrain/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "isoterrain.yaml", "YAML file overriding the built-in settings (ignored if missing)")
	level := flag.String("level", "", "Embedded heightmap to load instead of random terrain")
	seed := flag.Int64("seed", 0, "Seed for random terrain (0 = seed from the clock)")
	res := flag.String("res", "", "Window size as WIDTHxHEIGHT, e.g. "+config.ResolutionLabels())
	debug := flag.Bool("debug", false, "Start with the collision overlay visible")
	headless := flag.Bool("headless", false, "Run the movement loop without a window")
	frames := flag.Int("frames", 0, "Frames to run in headless mode (0 = config default)")
	flag.Parse()

	if err := config.LoadFile(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *res != "" {
		r, err := config.ParseResolution(*res)
		if err != nil {
			log.Fatalf("Invalid -res: %v", err)
		}
		config.C.Width, config.C.Height = r.Width, r.Height
	}
	if *level != "" {
		config.World.Level = *level
	}
	if *seed != 0 {
		config.World.Seed = *seed
	}
	config.Debug.Overlay = *debug
	config.Debug.Headless = *headless
	if *frames > 0 {
		config.Debug.Frames = *frames
	}

	lvl, err := scenes.LoadLevel(config.World.Level, config.World.Seed)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	if config.Debug.Headless {
		runHeadless(lvl, config.Debug.Frames)
		return
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(scenes.NewTerrainScene(lvl))); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
