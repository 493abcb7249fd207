package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the shape of the optional YAML override file. Keys that are absent
// keep their built-in value.
type File struct {
	Window Config       `yaml:"window"`
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Camera CameraConfig `yaml:"camera"`
	Assets AssetConfig  `yaml:"assets"`
}

// current snapshots the globals that File covers.
func current() File {
	return File{
		Window: *C,
		World:  World,
		Player: Player,
		Camera: Camera,
		Assets: Assets,
	}
}

func apply(f File) {
	*C = f.Window
	World = f.World
	Player = f.Player
	Camera = f.Camera
	Assets = f.Assets
}

// LoadFile overlays the YAML file at path onto the global configuration.
// A missing file leaves the defaults untouched. On a parse error nothing is applied.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse overlays YAML data onto the global configuration. name is only used in errors.
func Parse(data []byte, name string) error {
	f := current()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing config %s: %w", name, err)
	}
	if err := f.validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", name, err)
	}
	apply(f)
	return nil
}

func (f File) validate() error {
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", f.Window.Width, f.Window.Height)
	case f.Window.TPS <= 0:
		return fmt.Errorf("tps %d must be positive", f.Window.TPS)
	case f.World.Width < 0 || f.World.Depth < 0:
		return fmt.Errorf("world size %dx%d must not be negative", f.World.Width, f.World.Depth)
	case f.Camera.ScaleFactor <= 0:
		return fmt.Errorf("camera scale_factor %v must be positive", f.Camera.ScaleFactor)
	case f.Camera.ZoomMin <= 0 || f.Camera.ZoomMax < f.Camera.ZoomMin:
		return fmt.Errorf("camera zoom range [%v, %v] is invalid", f.Camera.ZoomMin, f.Camera.ZoomMax)
	}
	return nil
}
