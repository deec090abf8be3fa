package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/levels"
	"github.com/milk9111/jewelrun/prefabs"
)

// Specs are the prefab tunables a scene is built from.
type Specs struct {
	Camera *prefabs.CameraSpec
	Player *prefabs.PlayerSpec
	Health *prefabs.HealthSpec
	Jewel  *prefabs.JewelSpec
	HUD    *prefabs.HUDSpec
}

func LoadSpecs() (*Specs, error) {
	camera, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	health, err := prefabs.LoadHealthSpec()
	if err != nil {
		return nil, err
	}
	jewel, err := prefabs.LoadJewelSpec()
	if err != nil {
		return nil, err
	}
	hud, err := prefabs.LoadHUDSpec()
	if err != nil {
		return nil, err
	}
	return &Specs{Camera: camera, Player: player, Health: health, Jewel: jewel, HUD: hud}, nil
}

// Config adjusts scene construction.
type Config struct {
	// InvertY overrides camera.yaml when set.
	InvertY *bool
	// Silent skips loading sound players.
	Silent bool
}

// Scene holds the handles of a built level.
type Scene struct {
	Level    *levels.Level
	Player   ecs.Entity
	Camera   ecs.Entity
	Overlay  ecs.Entity
	HUD      ecs.Entity
	Jewels   ecs.Entity
	Geometry []ecs.Entity
}

// BuildScene populates w with lvl: geometry, player, cameras, jewels, the
// fade overlay and the HUD.
func BuildScene(w *ecs.World, lvl *levels.Level, specs *Specs, cfg Config) (*Scene, error) {
	if w == nil {
		return nil, fmt.Errorf("build scene: world is nil")
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("build scene: level %q: %w", lvl.Name, err)
	}

	scene := &Scene{Level: lvl}

	geometry, err := LoadLevelToWorld(w, lvl, specs.Health.HazardCooldown)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	scene.Geometry = geometry

	if scene.Overlay, err = NewFadeOverlay(w, specs.Health.FadeSpeed); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	if scene.Player, err = NewPlayer(w, specs, lvl.Spawn.Vec(), lvl.KillY, scene.Overlay, cfg.Silent); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	if scene.Camera, err = NewOrbitCamera(w, specs.Camera, scene.Player, lvl.Camera2D, cfg.InvertY); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	positions := make([]mgl64.Vec3, 0, len(lvl.Jewels))
	for _, j := range lvl.Jewels {
		positions = append(positions, j.Vec())
	}
	if scene.Jewels, _, err = NewJewelManager(w, specs.Jewel, positions, cfg.Silent); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	if scene.HUD, err = NewHUD(w, specs.HUD); err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	return scene, nil
}
