package system

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

const checkpointEpsilon = 1e-5

// ApplyDamage subtracts amount from e's health. Reaching zero plays the death
// clip and starts the respawn sequence. Damage taken while a sequence is
// running is ignored. It reports whether this call started a sequence.
func ApplyDamage(w *ecs.World, e ecs.Entity, amount int) bool {
	if amount <= 0 {
		return false
	}
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return false
	}
	if ecs.Has(w, e, component.RespawningComponent.Kind()) {
		return false
	}

	health.Current -= amount
	if health.Current > 0 {
		return false
	}
	health.Current = 0

	requestClip(w, e, "death")
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Entity: e})
	return startRespawn(w, e)
}

// Heal adds amount to e's health, never past its maximum.
func Heal(w *ecs.World, e ecs.Entity, amount int) {
	if amount <= 0 {
		return
	}
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return
	}
	health.Current += amount
	if health.Current > health.Max {
		health.Current = health.Max
	}
}

// SetCheckpoint moves e's respawn point. The confirmation clip only plays
// when the point actually changes. It reports whether it changed.
func SetCheckpoint(w *ecs.World, e ecs.Entity, point mgl64.Vec3) bool {
	r, ok := ecs.Get(w, e, component.RespawnerComponent.Kind())
	if !ok {
		return false
	}
	changed := !r.Point.ApproxEqualThreshold(point, checkpointEpsilon)
	if changed {
		requestClip(w, e, "checkpoint")
		w.Events().Push(ecs.Event{Type: ecs.EventCheckpointReached, Entity: e, Data: point})
	}
	r.Point = point
	return changed
}

func startRespawn(w *ecs.World, e ecs.Entity) bool {
	r, ok := ecs.Get(w, e, component.RespawnerComponent.Kind())
	if !ok {
		log.Printf("health: entity %v died without a respawner", e)
		return false
	}

	_ = ecs.Add(w, e, component.DisabledComponent.Kind(), &component.Disabled{})
	syncCollider(w, e)
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		spawnDeathEffect(w, t.Position, r.EffectLifetime)
	}
	_ = ecs.Add(w, e, component.RespawningComponent.Kind(), &component.Respawning{
		Stage:     component.RespawnDisabled,
		Remaining: r.Delay,
	})
	return true
}

const deathParticles = 24

func spawnDeathEffect(w *ecs.World, at mgl64.Vec3, lifetime float64) ecs.Entity {
	// directions on a golden-angle spiral over the sphere
	dirs := make([]mgl64.Vec3, 0, deathParticles)
	golden := math.Pi * (3 - math.Sqrt(5))
	for i := 0; i < deathParticles; i++ {
		y := 1 - 2*(float64(i)+0.5)/deathParticles
		r := math.Sqrt(1 - y*y)
		theta := golden * float64(i)
		dirs = append(dirs, mgl64.Vec3{r * math.Cos(theta), y, r * math.Sin(theta)})
	}

	fx := ecs.CreateEntity(w)
	_ = ecs.Add(w, fx, component.TransformComponent.Kind(), &component.Transform{Position: at, Rotation: mgl64.QuatIdent()})
	_ = ecs.Add(w, fx, component.DeathEffectComponent.Kind(), &component.DeathEffect{Particles: dirs, Speed: 3})
	_ = ecs.Add(w, fx, component.TTLComponent.Kind(), &component.TTL{Remaining: lifetime})
	return fx
}

func requestClip(w *ecs.World, e ecs.Entity, name string) {
	if a, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
		a.Request(name)
	}
}

// DebugHealthSystem applies the debug damage and heal keys to the player.
type DebugHealthSystem struct {
	Amount int
}

func NewDebugHealthSystem(amount int) *DebugHealthSystem {
	if amount <= 0 {
		amount = 1
	}
	return &DebugHealthSystem{Amount: amount}
}

func (s *DebugHealthSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.InputComponent.Kind(), component.HealthComponent.Kind(), func(e ecs.Entity, in *component.Input, _ *component.Health) {
		if in.Damage {
			ApplyDamage(w, e, s.Amount)
		}
		if in.Heal {
			Heal(w, e, s.Amount)
		}
	})
}
