package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

//go:embed *.json
var LevelsFS embed.FS

// Default is loaded when no level is named.
const Default = "garden"

// Vec3 is written as a three element JSON array.
type Vec3 [3]float64

func (v Vec3) Vec() mgl64.Vec3 { return mgl64.Vec3{v[0], v[1], v[2]} }

type Level struct {
	Name        string       `json:"name"`
	Spawn       Vec3         `json:"spawn"`
	KillY       float64      `json:"kill_y"`
	Boxes       []Box        `json:"boxes"`
	Jewels      []Vec3       `json:"jewels"`
	Checkpoints []Checkpoint `json:"checkpoints,omitempty"`
	Hazards     []Hazard     `json:"hazards,omitempty"`
	Camera2D    Camera2D     `json:"camera_2d"`
}

// Box is static level geometry.
type Box struct {
	Center Vec3   `json:"center"`
	Half   Vec3   `json:"half"`
	Color  string `json:"color,omitempty"`
}

// Checkpoint is a trigger volume. Point defaults to the volume centre.
type Checkpoint struct {
	Center Vec3  `json:"center"`
	Half   Vec3  `json:"half"`
	Point  *Vec3 `json:"point,omitempty"`
}

func (c Checkpoint) RespawnPoint() mgl64.Vec3 {
	if c.Point != nil {
		return c.Point.Vec()
	}
	return c.Center.Vec()
}

type Hazard struct {
	Center Vec3 `json:"center"`
	Half   Vec3 `json:"half"`
	Damage int  `json:"damage"`
}

// Camera2D places the fixed side-on camera.
type Camera2D struct {
	Position Vec3 `json:"position"`
	LookAt   Vec3 `json:"look_at"`
}

// Load reads a level by name (".json" optional), preferring levels/<name>.json
// on disk over the embedded copy.
func Load(name string) (*Level, error) {
	if strings.TrimSpace(name) == "" {
		name = Default
	}
	file := filepath.Base(name)
	if !strings.HasSuffix(file, ".json") {
		file += ".json"
	}

	data, err := os.ReadFile(filepath.Join("levels", file))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, file)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", file, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	return &lvl, nil
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".json"); ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Validate reports every structural problem in the level.
func (l *Level) Validate() error {
	var errs []error
	if len(l.Jewels) == 0 {
		errs = append(errs, errors.New("no jewels"))
	}
	if len(l.Boxes) == 0 {
		errs = append(errs, errors.New("no geometry"))
	}
	for i, b := range l.Boxes {
		if !positive(b.Half) {
			errs = append(errs, fmt.Errorf("box %d: half extents must be positive", i))
		}
	}
	for i, c := range l.Checkpoints {
		if !positive(c.Half) {
			errs = append(errs, fmt.Errorf("checkpoint %d: half extents must be positive", i))
		}
	}
	for i, h := range l.Hazards {
		if !positive(h.Half) {
			errs = append(errs, fmt.Errorf("hazard %d: half extents must be positive", i))
		}
		if h.Damage <= 0 {
			errs = append(errs, fmt.Errorf("hazard %d: damage must be positive", i))
		}
	}
	if l.KillY >= l.Spawn[1] {
		errs = append(errs, fmt.Errorf("kill_y %v is not below spawn height %v", l.KillY, l.Spawn[1]))
	}
	for i, j := range l.Jewels {
		if j[1] <= l.KillY {
			errs = append(errs, fmt.Errorf("jewel %d is below kill_y", i))
		}
	}
	if l.Camera2D.Position == l.Camera2D.LookAt {
		errs = append(errs, errors.New("camera_2d: position and look_at coincide"))
	}
	return errors.Join(errs...)
}

func positive(v Vec3) bool {
	return v[0] > 0 && v[1] > 0 && v[2] > 0
}
