package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
	"github.com/milk9111/jewelrun/prefabs"
	"golang.org/x/image/colornames"
)

var defaultPlayerHalf = mgl64.Vec3{0.4, 0.9, 0.4}

// NewPlayer builds the player at spawn. Falling below killY is lethal; the
// fade overlay masks its respawn.
func NewPlayer(w *ecs.World, specs *Specs, spawn mgl64.Vec3, killY float64, overlay ecs.Entity, silent bool) (ecs.Entity, error) {
	spec, health := specs.Player, specs.Health

	half := spec.Half.Vec()
	if half == (mgl64.Vec3{}) {
		half = defaultPlayerHalf
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		Position: spawn,
		Rotation: mgl64.QuatIdent(),
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.BoxComponent.Kind(), &component.Box{Half: half}); err != nil {
		return 0, fmt.Errorf("player: add box: %w", err)
	}
	if err := ecs.Add(w, player, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Layer: component.LayerPlayer,
		Solid: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add collision layer: %w", err)
	}
	if err := ecs.Add(w, player, component.HealthComponent.Kind(), &component.Health{
		Current: health.Max,
		Max:     health.Max,
	}); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}
	if err := ecs.Add(w, player, component.RespawnerComponent.Kind(), &component.Respawner{
		Point:          spawn,
		Delay:          health.RespawnDelay,
		FadeWait:       health.FadeWait,
		EffectLifetime: health.EffectLifetime,
		Overlay:        uint64(overlay),
	}); err != nil {
		return 0, fmt.Errorf("player: add respawner: %w", err)
	}
	if err := ecs.Add(w, player, component.MotionControllerComponent.Kind(), &component.MotionController{
		Enabled:   true,
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: spec.JumpSpeed,
		Gravity:   spec.Gravity,
	}); err != nil {
		return 0, fmt.Errorf("player: add motion controller: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.KillHeightComponent.Kind(), &component.KillHeight{Y: killY}); err != nil {
		return 0, fmt.Errorf("player: add kill height: %w", err)
	}
	if err := ecs.Add(w, player, component.RenderStyleComponent.Kind(), &component.RenderStyle{
		Color:  spec.Color.ColorOr(colornames.Gold),
		Filled: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add render style: %w", err)
	}

	audioComp, err := buildAudioComponent(spec.Audio, silent)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if audioComp != nil {
		if err := ecs.Add(w, player, component.AudioComponent.Kind(), audioComp); err != nil {
			return 0, fmt.Errorf("player: add audio: %w", err)
		}
	}

	return player, nil
}

// ApplyHealthSpec pushes reloaded health tuning onto a live player and its
// overlay. Current health is clamped to the new maximum.
func ApplyHealthSpec(w *ecs.World, player ecs.Entity, spec *prefabs.HealthSpec) {
	if spec == nil {
		return
	}
	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		h.Max = spec.Max
		h.Current = min(h.Current, h.Max)
	}
	r, ok := ecs.Get(w, player, component.RespawnerComponent.Kind())
	if !ok {
		return
	}
	r.Delay = spec.RespawnDelay
	r.FadeWait = spec.FadeWait
	r.EffectLifetime = spec.EffectLifetime
	if f, ok := ecs.Get(w, ecs.Entity(r.Overlay), component.FadeComponent.Kind()); ok {
		f.Speed = spec.FadeSpeed
	}
}
