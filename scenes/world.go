package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/isoterrain/assets"
	cfg "github.com/automoto/isoterrain/config"
	"github.com/automoto/isoterrain/shared/terrain"
	"github.com/automoto/isoterrain/systems"
	"github.com/automoto/isoterrain/systems/factory"
	"github.com/automoto/isoterrain/ui"
)

type TerrainScene struct {
	ecs   *ecs.ECS
	level *terrain.Level
	once  sync.Once
}

func NewTerrainScene(level *terrain.Level) *TerrainScene {
	return &TerrainScene{level: level}
}

// Update steps the scene and returns ebiten.Termination once quit is pressed.
func (ts *TerrainScene) Update() error {
	ts.once.Do(ts.configure)
	ts.ecs.Update()

	if systems.QuitRequested(ts.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (ts *TerrainScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TerrainScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateHUD)

	ecs.AddRenderer(cfg.Default, systems.DrawTerrain)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)

	ts.ecs = ecs

	bank := assets.LoadBank(cfg.Assets.TileSheetPath, cfg.Assets.SpritePath)
	factory.CreateTerrain(ts.ecs, ts.level.Name, ts.level.World, *ts.level.Spawn, bank)
	factory.CreateClock(ts.ecs, float64(cfg.C.TPS))
	factory.CreateSettings(ts.ecs, cfg.Debug.Overlay)
	factory.CreateCamera(ts.ecs)
	factory.CreatePlayer(ts.ecs, *ts.level.Spawn)
	factory.CreateHUD(ts.ecs, ui.NewHUDUI(ui.HUDOptions{
		Height:    int(cfg.UI.HUDHeight),
		FontSize:  cfg.UI.HUDFontSize,
		Padding:   cfg.UI.HUDPadding,
		BgColor:   cfg.UI.HUDBgColor,
		TextColor: cfg.UI.HUDTextColor,
		Hint:      cfg.UI.QuitHint,
	}))

	// Snap camera to the spawn to prevent panning from (0,0)
	systems.SnapCamera(ts.ecs)
}
