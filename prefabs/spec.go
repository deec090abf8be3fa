package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CameraSpec struct {
	Name         string   `yaml:"name"`
	Offset       Vec3Spec `yaml:"offset"`
	RotateSpeed  float64  `yaml:"rotate_speed"`
	MinView      float64  `yaml:"min_view"`
	MaxView      float64  `yaml:"max_view"`
	InvertY      bool     `yaml:"invert_y"`
	FloorMargin  float64  `yaml:"floor_margin"`
	IgnoreLayers []string `yaml:"ignore_layers"`
	StartYaw     float64  `yaml:"start_yaw"`
	StartPitch   float64  `yaml:"start_pitch"`
	FOV          float64  `yaml:"fov"`
	Near         float64  `yaml:"near"`
	Far          float64  `yaml:"far"`
	Flat         FlatSpec `yaml:"flat"`
}

// FlatSpec is the fixed side-on camera used by the 2D view.
type FlatSpec struct {
	OrthoHeight float64 `yaml:"ortho_height"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	if spec.MinView > 0 || spec.MaxView < 0 || spec.MaxView >= 180 || spec.MinView <= -180 {
		return nil, fmt.Errorf("prefabs: camera.yaml: view range [%v, %v] must contain 0 and stay within (-180, 180)", spec.MinView, spec.MaxView)
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name      string      `yaml:"name"`
	Half      Vec3Spec    `yaml:"half_extents"`
	MoveSpeed float64     `yaml:"move_speed"`
	JumpSpeed float64     `yaml:"jump_speed"`
	Gravity   float64     `yaml:"gravity"`
	Color     *YAMLColor  `yaml:"color"`
	Audio     []AudioSpec `yaml:"audio"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type HealthSpec struct {
	Max            int     `yaml:"max"`
	RespawnDelay   float64 `yaml:"respawn_delay"`
	FadeWait       float64 `yaml:"fade_wait"`
	FadeSpeed      float64 `yaml:"fade_speed"`
	EffectLifetime float64 `yaml:"effect_lifetime"`
	DebugAmount    int     `yaml:"debug_amount"`
	HazardCooldown float64 `yaml:"hazard_cooldown"`
}

func LoadHealthSpec() (*HealthSpec, error) {
	spec, err := LoadSpec[HealthSpec]("health.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Max <= 0 {
		return nil, fmt.Errorf("prefabs: health.yaml: max must be positive, got %d", spec.Max)
	}
	return &spec, nil
}

type JewelSpec struct {
	Name      string      `yaml:"name"`
	Half      Vec3Spec    `yaml:"half_extents"`
	BobHeight float64     `yaml:"bob_height"`
	BobSpeed  float64     `yaml:"bob_speed"`
	SpinSpeed float64     `yaml:"spin_speed"`
	Color     *YAMLColor  `yaml:"color"`
	Script    string      `yaml:"completion_script"`
	Audio     []AudioSpec `yaml:"audio"`
}

func LoadJewelSpec() (*JewelSpec, error) {
	spec, err := LoadSpec[JewelSpec]("jewel.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type HUDSpec struct {
	PipColor  *YAMLColor `yaml:"pip_color"`
	TextColor *YAMLColor `yaml:"text_color"`
	ShowHints bool       `yaml:"show_hints"`
}

func LoadHUDSpec() (*HUDSpec, error) {
	spec, err := LoadSpec[HUDSpec]("hud.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// Vec3Spec is a vector written as a three element YAML sequence.
type Vec3Spec [3]float64

func (v Vec3Spec) Vec() mgl64.Vec3 {
	return mgl64.Vec3{v[0], v[1], v[2]}
}

type YAMLColor struct {
	color.Color
}

// ColorOr returns the parsed color, or fallback when none was given.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	clr, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = clr
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa"; the leading # is optional.
func ParseHexColor(value string) (color.Color, error) {
	s := strings.TrimPrefix(value, "#")

	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return nil, err
	}
	g, err := parse(2)
	if err != nil {
		return nil, err
	}
	b, err := parse(4)
	if err != nil {
		return nil, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return nil, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
