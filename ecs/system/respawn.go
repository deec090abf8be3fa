package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

// RespawnSystem advances running respawn sequences:
// disabled -> fading out -> repositioning -> fading in.
// Each stage waits out its timer; a long tick may cross several stages.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem { return &RespawnSystem{} }

func (s *RespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach(w, component.RespawningComponent.Kind(), func(e ecs.Entity, rs *component.Respawning) {
		rs.Remaining -= dt
		for rs.Remaining <= 0 {
			if !advanceRespawn(w, e, rs) {
				return
			}
		}
	})
}

// advanceRespawn performs the action that ends the current stage and arms
// the next timer. It returns false once the sequence is over.
func advanceRespawn(w *ecs.World, e ecs.Entity, rs *component.Respawning) bool {
	r, ok := ecs.Get(w, e, component.RespawnerComponent.Kind())
	if !ok {
		_ = ecs.Remove(w, e, component.RespawningComponent.Kind())
		return false
	}

	switch rs.Stage {
	case component.RespawnDisabled:
		StartFade(w, ecs.Entity(r.Overlay), component.FadeToBlack)
		rs.Stage = component.RespawnFadingOut
		rs.Remaining += r.FadeWait
		return true

	case component.RespawnFadingOut:
		reposition(w, e, r.Point)
		rs.Stage = component.RespawnRepositioning
		rs.Remaining += r.FadeWait
		return true

	default:
		StartFade(w, ecs.Entity(r.Overlay), component.FadeFromBlack)
		rs.Stage = component.RespawnFadingIn
		_ = ecs.Remove(w, e, component.RespawningComponent.Kind())
		w.Events().Push(ecs.Event{Type: ecs.EventRespawned, Entity: e, Data: r.Point})
		return false
	}
}

// reposition re-enables e at point with full health. The motion controller
// is off while the transform is moved so no velocity carries over.
func reposition(w *ecs.World, e ecs.Entity, point mgl64.Vec3) {
	_ = ecs.Remove(w, e, component.DisabledComponent.Kind())

	mc, hasMC := ecs.Get(w, e, component.MotionControllerComponent.Kind())
	if hasMC {
		mc.Enabled = false
	}

	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.Position = point
		syncCollider(w, e)
	}
	if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
		health.Current = health.Max
	}

	if hasMC {
		mc.Velocity = mgl64.Vec3{}
		mc.Grounded = false
		mc.Enabled = true
	}
}
