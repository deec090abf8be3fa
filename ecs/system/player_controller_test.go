package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

func addFloor(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	floor := ecs.CreateEntity(w)
	addBox(t, w, floor, mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{20, 0.5, 20}, component.LayerDefault, true)
	return floor
}

func TestPlayerLandsOnFloor(t *testing.T) {
	w := newPhysicsTestWorld()
	addFloor(t, w)
	p := newTestPlayer(t, w, 3, mgl64.Vec3{0, 3, 0})
	sched := ecs.NewScheduler(NewPlayerControllerSystem())

	for i := 0; i < 120; i++ {
		sched.Update(w, 1.0/60)
	}

	tr, _ := ecs.Get(w, p.entity, component.TransformComponent.Kind())
	mc, _ := ecs.Get(w, p.entity, component.MotionControllerComponent.Kind())
	if math.Abs(tr.Position.Y()-1) > 1e-9 {
		t.Fatalf("player should rest on the floor at y=1, got %v", tr.Position.Y())
	}
	if !mc.Grounded {
		t.Fatalf("player should be grounded")
	}

	in, _ := ecs.Get(w, p.entity, component.InputComponent.Kind())
	in.JumpPressed = true
	sched.Update(w, 1.0/60)
	if tr.Position.Y() <= 1 {
		t.Fatalf("jump should lift the player, y=%v", tr.Position.Y())
	}
}

func TestPlayerBlockedByWall(t *testing.T) {
	w := newPhysicsTestWorld()
	addFloor(t, w)
	wall := ecs.CreateEntity(w)
	addBox(t, w, wall, mgl64.Vec3{3, 2, 0}, mgl64.Vec3{0.5, 2, 5}, component.LayerDefault, true)
	p := newTestPlayer(t, w, 3, mgl64.Vec3{0, 1, 0})
	in, _ := ecs.Get(w, p.entity, component.InputComponent.Kind())
	in.MoveX = 1

	sched := ecs.NewScheduler(NewPlayerControllerSystem())
	for i := 0; i < 120; i++ {
		sched.Update(w, 1.0/60)
	}

	tr, _ := ecs.Get(w, p.entity, component.TransformComponent.Kind())
	if math.Abs(tr.Position.X()-2) > 1e-9 {
		t.Fatalf("player should stop against the wall at x=2, got %v", tr.Position.X())
	}
}

func TestPlayerMovementFollowsView(t *testing.T) {
	tests := []struct {
		name string
		mode component.ViewMode
		yaw  float64
		want mgl64.Vec3 // direction of travel for MoveZ=1, MoveX=1
	}{
		{"3d_forward_right", component.View3D, 0, mgl64.Vec3{-1, 0, 1}.Normalize()},
		{"3d_turned", component.View3D, 90, mgl64.Vec3{1, 0, 1}.Normalize()},
		{"2d_only_x", component.View2D, 0, mgl64.Vec3{1, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p := newTestPlayer(t, w, 3, mgl64.Vec3{})
			mc, _ := ecs.Get(w, p.entity, component.MotionControllerComponent.Kind())
			mc.Gravity = 0

			cam := ecs.CreateEntity(w)
			// camera offset looks along +Z
			mustAdd(t, w, cam, component.OrbitCameraComponent.Kind(), &component.OrbitCamera{
				Target: uint64(p.entity),
				Offset: mgl64.Vec3{0, 0, 5},
				Yaw:    tc.yaw,
				Mode:   tc.mode,
			})

			in, _ := ecs.Get(w, p.entity, component.InputComponent.Kind())
			in.MoveX, in.MoveZ = 1, 1

			ecs.NewScheduler(NewPlayerControllerSystem()).Update(w, 1)
			tr, _ := ecs.Get(w, p.entity, component.TransformComponent.Kind())
			got := tr.Position.Normalize()
			if !got.ApproxEqualThreshold(tc.want, 1e-9) {
				t.Fatalf("moved toward %v, want %v", got, tc.want)
			}
			if math.Abs(tr.Position.Len()-mc.MoveSpeed) > 1e-9 {
				t.Fatalf("moved %v, want speed %v", tr.Position.Len(), mc.MoveSpeed)
			}
		})
	}
}

func TestDisabledPlayerDoesNotMove(t *testing.T) {
	w := ecs.NewWorld()
	p := newTestPlayer(t, w, 3, mgl64.Vec3{0, 5, 0})
	_ = ecs.Add(w, p.entity, component.DisabledComponent.Kind(), &component.Disabled{})

	ecs.NewScheduler(NewPlayerControllerSystem()).Update(w, 1)
	tr, _ := ecs.Get(w, p.entity, component.TransformComponent.Kind())
	if tr.Position != (mgl64.Vec3{0, 5, 0}) {
		t.Fatalf("disabled player moved to %v", tr.Position)
	}
}
