package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

type DeathEffectSystem struct{}

func NewDeathEffectSystem() *DeathEffectSystem { return &DeathEffectSystem{} }

func (s *DeathEffectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()
	ecs.ForEach(w, component.DeathEffectComponent.Kind(), func(_ ecs.Entity, fx *component.DeathEffect) {
		fx.Age += dt
	})
}

// ParticlePositions returns where each particle of fx currently is.
func ParticlePositions(origin mgl64.Vec3, fx *component.DeathEffect) []mgl64.Vec3 {
	if fx == nil {
		return nil
	}
	out := make([]mgl64.Vec3, len(fx.Particles))
	dist := fx.Speed * fx.Age
	for i, d := range fx.Particles {
		out[i] = origin.Add(d.Mul(dist))
	}
	return out
}
