package system

import (
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

// CheckpointSystem moves a respawner's point to any checkpoint it stands in.
type CheckpointSystem struct{}

func NewCheckpointSystem() *CheckpointSystem { return &CheckpointSystem{} }

func (s *CheckpointSystem) Update(w *ecs.World) {
	if w == nil || w.PhysicsWorld() == nil {
		return
	}

	for _, e := range w.Query(component.RespawnerComponent.Kind(), component.TransformComponent.Kind(), component.BoxComponent.Kind()) {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			continue
		}
		box, ok := entityBox(w, e)
		if !ok {
			continue
		}
		for _, c := range w.PhysicsWorld().Overlaps(box, component.LayerCheckpoint.Mask()) {
			if cp, ok := ecs.Get(w, c.Entity, component.CheckpointComponent.Kind()); ok {
				SetCheckpoint(w, e, cp.Point)
			}
		}
	}
}
