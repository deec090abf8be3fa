package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
	"github.com/milk9111/jewelrun/levels"
	"github.com/milk9111/jewelrun/prefabs"
	"golang.org/x/image/colornames"
)

// LoadLevelToWorld creates the static geometry, checkpoint volumes and
// hazards of lvl. Hazards grant hazardCooldown seconds of invulnerability.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, hazardCooldown float64) ([]ecs.Entity, error) {
	var out []ecs.Entity

	for i, b := range lvl.Boxes {
		clr := color.Color(colornames.Slategray)
		if b.Color != "" {
			c, err := prefabs.ParseHexColor(b.Color)
			if err != nil {
				return nil, fmt.Errorf("level: box %d: %w", i, err)
			}
			clr = c
		}
		e, err := newVolume(w, b.Center.Vec(), b.Half.Vec(), component.LayerDefault, true, clr, true)
		if err != nil {
			return nil, fmt.Errorf("level: box %d: %w", i, err)
		}
		if err := ecs.Add(w, e, component.LevelGeometryTagComponent.Kind(), &component.LevelGeometryTag{}); err != nil {
			return nil, fmt.Errorf("level: box %d: add geometry tag: %w", i, err)
		}
		out = append(out, e)
	}

	for i, c := range lvl.Checkpoints {
		e, err := newVolume(w, c.Center.Vec(), c.Half.Vec(), component.LayerCheckpoint, false, colornames.Limegreen, false)
		if err != nil {
			return nil, fmt.Errorf("level: checkpoint %d: %w", i, err)
		}
		if err := ecs.Add(w, e, component.CheckpointComponent.Kind(), &component.Checkpoint{Point: c.RespawnPoint()}); err != nil {
			return nil, fmt.Errorf("level: checkpoint %d: add checkpoint: %w", i, err)
		}
		out = append(out, e)
	}

	for i, h := range lvl.Hazards {
		e, err := newVolume(w, h.Center.Vec(), h.Half.Vec(), component.LayerHazard, false, colornames.Orangered, true)
		if err != nil {
			return nil, fmt.Errorf("level: hazard %d: %w", i, err)
		}
		if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{
			Damage:   h.Damage,
			Cooldown: hazardCooldown,
		}); err != nil {
			return nil, fmt.Errorf("level: hazard %d: add hazard: %w", i, err)
		}
		out = append(out, e)
	}

	return out, nil
}

// newVolume creates a drawn box registered on layer.
func newVolume(w *ecs.World, center, half mgl64.Vec3, layer component.Layer, solid bool, clr color.Color, filled bool) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		Position: center,
		Rotation: mgl64.QuatIdent(),
	}); err != nil {
		return 0, fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BoxComponent.Kind(), &component.Box{Half: half}); err != nil {
		return 0, fmt.Errorf("add box: %w", err)
	}
	if err := ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Layer: layer,
		Solid: solid,
	}); err != nil {
		return 0, fmt.Errorf("add collision layer: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderStyleComponent.Kind(), &component.RenderStyle{
		Color:  clr,
		Filled: filled,
	}); err != nil {
		return 0, fmt.Errorf("add render style: %w", err)
	}
	return e, nil
}
