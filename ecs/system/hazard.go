package system

import (
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

// HazardSystem applies damage from hazard volumes and kill heights.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem {
	return &HazardSystem{}
}

func (h *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if pw := w.PhysicsWorld(); pw != nil {
		for _, e := range w.Query(component.HealthComponent.Kind(), component.TransformComponent.Kind(), component.BoxComponent.Kind()) {
			if !canBeHurt(w, e) || ecs.Has(w, e, component.InvulnerableComponent.Kind()) {
				continue
			}
			box, ok := entityBox(w, e)
			if !ok {
				continue
			}
			for _, c := range pw.Overlaps(box, component.LayerHazard.Mask()) {
				hz, ok := ecs.Get(w, c.Entity, component.HazardComponent.Kind())
				if !ok {
					continue
				}
				died := ApplyDamage(w, e, hz.Damage)
				if !died && hz.Cooldown > 0 {
					_ = ecs.Add(w, e, component.InvulnerableComponent.Kind(), &component.Invulnerable{Remaining: hz.Cooldown})
				}
				break
			}
		}
	}

	ecs.ForEach2(w, component.KillHeightComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, kh *component.KillHeight, t *component.Transform) {
		if t.Position.Y() >= kh.Y || !canBeHurt(w, e) {
			return
		}
		dmg := kh.Damage
		if dmg <= 0 {
			if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
				dmg = health.Current
			}
		}
		ApplyDamage(w, e, dmg)
	})
}

func canBeHurt(w *ecs.World, e ecs.Entity) bool {
	return !ecs.Has(w, e, component.DisabledComponent.Kind()) && !ecs.Has(w, e, component.RespawningComponent.Kind())
}

// InvulnerabilitySystem counts down Invulnerable and removes it at zero.
type InvulnerabilitySystem struct{}

func NewInvulnerabilitySystem() *InvulnerabilitySystem { return &InvulnerabilitySystem{} }

func (s *InvulnerabilitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	ecs.ForEach(w, component.InvulnerableComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerable) {
		inv.Remaining -= dt
		if inv.Remaining <= 0 {
			_ = ecs.Remove(w, e, component.InvulnerableComponent.Kind())
		}
	})
}
