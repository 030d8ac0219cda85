package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Camera holds the viewer constants. Speed is in world units per
// millisecond, Sensitivity in degrees per pixel of pointer travel.
type Camera struct {
	FOV         float32 `toml:"fov"`
	Near        float32 `toml:"near"`
	Far         float32 `toml:"far"`
	Speed       float32 `toml:"speed"`
	Sensitivity float32 `toml:"sensitivity"`
}

type Light struct {
	Position [3]float32 `toml:"position"`
	Color    [3]float32 `toml:"color"`
}

// Assets maps pool keys to files on disk. Texture keys are integer ids
// rendered as strings because TOML table keys are always strings.
type Assets struct {
	Textures map[string]string `toml:"textures"`
	Meshes   map[string]string `toml:"meshes"`
}

// Keys names the glfw keys bound to the six movement directions.
type Keys struct {
	Forward string `toml:"forward"`
	Back    string `toml:"back"`
	Left    string `toml:"left"`
	Right   string `toml:"right"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
}

type Grid struct {
	N int `toml:"n"`
	S int `toml:"s"`
}

type Config struct {
	Window     Window     `toml:"window"`
	FrameRate  int        `toml:"frame_rate"`
	ClearColor [3]float32 `toml:"clear_color"`
	Camera     Camera     `toml:"camera"`
	Light      Light      `toml:"light"`
	Assets     Assets     `toml:"assets"`
	Keys       Keys       `toml:"keys"`
	Grid       Grid       `toml:"grid"`
	Debug      bool       `toml:"debug"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: Window{
			Width:  1600,
			Height: 900,
			Title:  "Scene3D",
		},
		FrameRate:  60,
		ClearColor: [3]float32{0.08, 0.16, 0.18},
		Camera: Camera{
			FOV:         50,
			Near:        0.1,
			Far:         100,
			Speed:       0.01,
			Sensitivity: 0.05,
		},
		Light: Light{
			Position: [3]float32{3, 3, -3},
			Color:    [3]float32{1, 1, 1},
		},
		Assets: Assets{
			Textures: map[string]string{
				"0": "textures/img.jpg",
				"1": "textures/img_1.jpg",
				"2": "textures/img_2.jpg",
				"3": "objects/cat/cat_diffuse.jpg",
			},
			Meshes: map[string]string{
				"cat": "objects/cat/12221_Cat_v1_l3.obj",
			},
		},
		// AZERTY layout: Z/S forward and back, Q/D strafe, A/E up and down.
		Keys: Keys{
			Forward: "Z",
			Back:    "S",
			Left:    "Q",
			Right:   "D",
			Up:      "A",
			Down:    "E",
		},
		Grid: Grid{N: 30, S: 3},
	}
}

// Load reads a TOML file on top of the defaults. Keys absent from the file
// keep their default values. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Decode unmarshals TOML into cfg, strictly: unknown keys are an error.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Encode renders cfg as TOML, used to dump the effective configuration.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate %d", ErrInvalidConfig, c.FrameRate)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalidConfig, c.Camera.Near, c.Camera.Far)
	case c.Grid.S <= 0:
		return fmt.Errorf("%w: grid step %d", ErrInvalidConfig, c.Grid.S)
	}
	return nil
}

// AspectRatio is width over height.
func (w Window) AspectRatio() float32 {
	return float32(w.Width) / float32(w.Height)
}

func (l Light) PositionVec() mgl32.Vec3 { return mgl32.Vec3(l.Position) }
func (l Light) ColorVec() mgl32.Vec3    { return mgl32.Vec3(l.Color) }
