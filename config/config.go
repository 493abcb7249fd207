package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"` // Fixed update rate, also the headless frame target
	Title  string `yaml:"title"`
}

// WorldConfig controls how the terrain is built when no level file is chosen
type WorldConfig struct {
	Width     int    `yaml:"width"`
	Depth     int    `yaml:"depth"`
	MinHeight uint16 `yaml:"min_height"`
	MaxHeight uint16 `yaml:"max_height"`
	Seed      int64  `yaml:"seed"`  // 0 seeds from the clock
	Level     string `yaml:"level"` // Stem of an embedded TMX heightmap, empty for random terrain
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, per frame
	Speed            float64 `yaml:"speed"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	JumpImpulse      float64 `yaml:"jump_impulse"`

	// Hitbox
	HitboxWidth  float64 `yaml:"hitbox_width"`
	HitboxHeight float64 `yaml:"hitbox_height"`
	HitboxDepth  float64 `yaml:"hitbox_depth"`

	// Sprite display size
	SpriteWidth  float64 `yaml:"sprite_width"`
	SpriteHeight float64 `yaml:"sprite_height"`

	// Spawn tile when the level has no PlayerSpawn object
	SpawnTileX int `yaml:"spawn_tile_x"`
	SpawnTileZ int `yaml:"spawn_tile_z"`
}

// CameraConfig contains view scaling and zoom values
type CameraConfig struct {
	BaseWidth       float64 `yaml:"base_width"` // Resolution the scale formula is normalised to
	BaseHeight      float64 `yaml:"base_height"`
	ScaleFactor     float64 `yaml:"scale_factor"`
	FollowSmoothing float64 `yaml:"follow_smoothing"` // 1.0 snaps to the target every frame

	ZoomMin          float64 `yaml:"zoom_min"`
	ZoomMax          float64 `yaml:"zoom_max"`
	ZoomStep         float64 `yaml:"zoom_step"`
	ZoomTweenSeconds float64 `yaml:"zoom_tween_seconds"`
}

// AssetConfig points at optional image files that replace the generated sheets
type AssetConfig struct {
	TileSheetPath string `yaml:"tile_sheet"`
	SpritePath    string `yaml:"sprite"`
}

// UIConfig contains HUD and overlay values
type UIConfig struct {
	HUDHeight     float64
	HUDFontSize   float64
	DebugFontSize float64
	HUDPadding    int

	HUDBgColor      color.RGBA
	HUDTextColor    color.RGBA
	DebugWallColor  color.RGBA
	DebugFloorColor color.RGBA
	DebugTextColor  color.RGBA
	SkyColor        color.RGBA

	QuitHint string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay  bool // Start with the collision overlay visible
	Headless bool // Run the movement loop without a window
	Frames   int  // Frames to run in headless mode
}

// Global configuration instances
var C *Config
var World WorldConfig
var Player PlayerConfig
var Camera CameraConfig
var Assets AssetConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyBlue      = color.RGBA{R: 120, G: 170, B: 220, A: 255}
)

func init() {
	C = &Config{
		Width:  1366,
		Height: 768,
		TPS:    30,
		Title:  "isoterrain",
	}

	World = WorldConfig{
		Width:     50,
		Depth:     50,
		MinHeight: 0,
		MaxHeight: 2,
	}

	Player = PlayerConfig{
		Speed:            5.0,
		Gravity:          1.0,
		TerminalVelocity: -25.0,
		JumpImpulse:      7.5,

		HitboxWidth:  16.0,
		HitboxHeight: 16.0,
		HitboxDepth:  16.0,

		SpriteWidth:  16.0,
		SpriteHeight: 16.0,

		SpawnTileX: 10,
		SpawnTileZ: 10,
	}

	Camera = CameraConfig{
		BaseWidth:       1366.0,
		BaseHeight:      768.0,
		ScaleFactor:     2.0,
		FollowSmoothing: 1.0,

		ZoomMin:          0.5,
		ZoomMax:          3.0,
		ZoomStep:         0.25,
		ZoomTweenSeconds: 0.2,
	}

	UI = UIConfig{
		HUDHeight:     19.0, // Matches the status bar text line
		HUDFontSize:   14.0,
		DebugFontSize: 10.0,
		HUDPadding:    4,

		HUDBgColor:      Black,
		HUDTextColor:    White,
		DebugWallColor:  Red,
		DebugFloorColor: LightGreen,
		DebugTextColor:  Yellow,
		SkyColor:        SkyBlue,

		QuitHint: "press escape to quit",
	}

	Debug = DebugConfig{
		Frames: 300,
	}
}
