package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

func newPhysicsTestWorld() *ecs.World {
	w := ecs.NewWorld()
	w.SetPhysicsWorld(ecs.NewPhysicsWorld())
	return w
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// addBox gives e a transform, box and collision layer and registers it.
func addBox(t *testing.T, w *ecs.World, e ecs.Entity, center, half mgl64.Vec3, layer component.Layer, solid bool) {
	t.Helper()
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{Position: center, Rotation: mgl64.QuatIdent()})
	mustAdd(t, w, e, component.BoxComponent.Kind(), &component.Box{Half: half})
	mustAdd(t, w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{Layer: layer, Solid: solid})
	syncCollider(w, e)
}

func newTestAudio(names ...string) *component.Audio {
	return &component.Audio{
		Names:   names,
		Players: make([]*audio.Player, len(names)),
		Volume:  make([]float64, len(names)),
		Play:    make([]bool, len(names)),
		Stop:    make([]bool, len(names)),
	}
}

// testPlayer builds a player with health, a respawner, audio and a fade
// overlay.
type testPlayer struct {
	entity  ecs.Entity
	overlay ecs.Entity
}

func newTestPlayer(t *testing.T, w *ecs.World, health int, pos mgl64.Vec3) testPlayer {
	t.Helper()
	overlay := ecs.CreateEntity(w)
	mustAdd(t, w, overlay, component.FadeComponent.Kind(), &component.Fade{Speed: 4})

	p := ecs.CreateEntity(w)
	mustAdd(t, w, p, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	addBox(t, w, p, pos, mgl64.Vec3{0.5, 1, 0.5}, component.LayerPlayer, true)
	mustAdd(t, w, p, component.HealthComponent.Kind(), &component.Health{Current: health, Max: health})
	mustAdd(t, w, p, component.RespawnerComponent.Kind(), &component.Respawner{
		Point:          pos,
		Delay:          1,
		FadeWait:       0.5,
		EffectLifetime: 1,
		Overlay:        uint64(overlay),
	})
	mustAdd(t, w, p, component.MotionControllerComponent.Kind(), &component.MotionController{Enabled: true, MoveSpeed: 4, JumpSpeed: 6, Gravity: 20})
	mustAdd(t, w, p, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, p, component.AudioComponent.Kind(), newTestAudio("death", "checkpoint"))
	return testPlayer{entity: p, overlay: overlay}
}

func countEvents(events []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
