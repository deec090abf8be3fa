package system

import (
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

// ColliderSyncSystem mirrors Transform+Box+CollisionLayer into the physics
// world. Disabled entities leave it until they are enabled again.
type ColliderSyncSystem struct{}

func NewColliderSyncSystem() *ColliderSyncSystem { return &ColliderSyncSystem{} }

func (s *ColliderSyncSystem) Update(w *ecs.World) {
	if w == nil || w.PhysicsWorld() == nil {
		return
	}
	for _, e := range w.Query(component.BoxComponent.Kind(), component.CollisionLayerComponent.Kind()) {
		syncCollider(w, e)
	}
}

func syncCollider(w *ecs.World, e ecs.Entity) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
	if !ok {
		return
	}
	if ecs.Has(w, e, component.DisabledComponent.Kind()) {
		pw.Remove(e)
		return
	}
	box, ok := entityBox(w, e)
	if !ok {
		pw.Remove(e)
		return
	}
	pw.Set(e, box, layer.Layer, layer.Solid)
}

func entityBox(w *ecs.World, e ecs.Entity) (ecs.AABB, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return ecs.AABB{}, false
	}
	b, ok := ecs.Get(w, e, component.BoxComponent.Kind())
	if !ok {
		return ecs.AABB{}, false
	}
	return ecs.NewAABB(t.Position, b.Half), true
}
