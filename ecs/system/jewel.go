package system

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

// CollectJewel removes jewel from the manager's list and destroys it. When
// the last jewel goes, the completion message is built and announced once.
// Jewels the manager does not track are left alone and false is returned.
func CollectJewel(w *ecs.World, manager, jewel ecs.Entity) bool {
	jm, ok := ecs.Get(w, manager, component.JewelManagerComponent.Kind())
	if !ok {
		return false
	}

	idx := -1
	for i, id := range jm.Jewels {
		if ecs.Entity(id) == jewel {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	jm.Jewels = append(jm.Jewels[:idx], jm.Jewels[idx+1:]...)
	jm.Count = len(jm.Jewels)
	ecs.DestroyEntity(w, jewel)

	requestClip(w, manager, "collect")
	w.Events().Push(ecs.Event{Type: ecs.EventJewelCollected, Entity: manager, Data: jm.Count})

	if jm.Count == 0 && !jm.Completed {
		jm.Completed = true
		jm.Message = completionMessage(jm.Script, jm.Max, w.Elapsed())
		log.Printf("jewels: all %d collected after %.1fs", jm.Max, w.Elapsed())
		w.Events().Push(ecs.Event{Type: ecs.EventAllJewelsCollected, Entity: manager, Data: jm.Message})
	}
	return true
}

// JewelCollectSystem hands every collectible the player touches to its
// manager.
type JewelCollectSystem struct{}

func NewJewelCollectSystem() *JewelCollectSystem { return &JewelCollectSystem{} }

func (s *JewelCollectSystem) Update(w *ecs.World) {
	if w == nil || w.PhysicsWorld() == nil {
		return
	}

	for _, player := range w.Query(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), component.BoxComponent.Kind()) {
		if ecs.Has(w, player, component.DisabledComponent.Kind()) {
			continue
		}
		box, ok := entityBox(w, player)
		if !ok {
			continue
		}
		for _, c := range w.PhysicsWorld().Overlaps(box, component.LayerCollectible.Mask()) {
			j, ok := ecs.Get(w, c.Entity, component.JewelComponent.Kind())
			if !ok {
				continue
			}
			CollectJewel(w, ecs.Entity(j.Manager), c.Entity)
		}
	}
}

// JewelSpinSystem bobs and spins the remaining jewels.
type JewelSpinSystem struct{}

func NewJewelSpinSystem() *JewelSpinSystem { return &JewelSpinSystem{} }

func (s *JewelSpinSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach2(w, component.JewelComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, j *component.Jewel, t *component.Transform) {
		j.Phase += dt
		t.Position[1] = j.BaseY + j.BobHeight*math.Sin(2*math.Pi*j.BobSpeed*j.Phase)
		angle := mgl64.DegToRad(math.Mod(j.SpinSpeed*j.Phase, 360))
		t.Rotation = mgl64.QuatRotate(angle, axisY)
		syncCollider(w, e)
	})
}
