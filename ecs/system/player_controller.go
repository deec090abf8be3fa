package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

// PlayerControllerSystem moves players from their Input relative to the
// camera that follows them. In the 2D view only the X axis moves.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.MotionControllerComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	for _, e := range entities {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			continue
		}
		mc, _ := ecs.Get(w, e, component.MotionControllerComponent.Kind())
		if !mc.Enabled {
			continue
		}
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())

		forward, right, flat := moveBasis(w, e)
		var move mgl64.Vec3
		if flat {
			move = mgl64.Vec3{input.MoveX, 0, 0}
		} else {
			move = right.Mul(input.MoveX).Add(forward.Mul(input.MoveZ))
		}
		if l := move.Len(); l > 1 {
			move = move.Mul(1 / l)
		}
		move = move.Mul(mc.MoveSpeed)

		mc.Velocity[0] = move.X()
		mc.Velocity[2] = move.Z()
		if input.JumpPressed && mc.Grounded {
			mc.Velocity[1] = mc.JumpSpeed
		}
		mc.Velocity[1] -= mc.Gravity * dt

		t.Position = moveAndCollide(w, e, t.Position, mc, dt)
		syncCollider(w, e)
	}
}

// moveBasis returns the horizontal forward and right vectors of the camera
// following e, and whether that camera is in the 2D view.
func moveBasis(w *ecs.World, e ecs.Entity) (mgl64.Vec3, mgl64.Vec3, bool) {
	forward := mgl64.Vec3{0, 0, -1}
	flat := false
	ecs.ForEach(w, component.OrbitCameraComponent.Kind(), func(_ ecs.Entity, rig *component.OrbitCamera) {
		if ecs.Entity(rig.Target) != e {
			return
		}
		flat = rig.Mode == component.View2D
		f := OrbitRotation(rig.Yaw, 0).Rotate(rig.Offset)
		f[1] = 0
		if f.Len() > 1e-9 {
			forward = f.Normalize()
		}
	})
	return forward, forward.Cross(axisY), flat
}

// moveAndCollide integrates one axis at a time and pushes the box back out of
// any solid box it enters.
func moveAndCollide(w *ecs.World, e ecs.Entity, pos mgl64.Vec3, mc *component.MotionController, dt float64) mgl64.Vec3 {
	mc.Grounded = false
	b, ok := ecs.Get(w, e, component.BoxComponent.Kind())
	pw := w.PhysicsWorld()
	if !ok || pw == nil {
		return pos.Add(mc.Velocity.Mul(dt))
	}

	mask := component.MaskExcept(component.LayerPlayer)
	for axis := 0; axis < 3; axis++ {
		step := mc.Velocity[axis] * dt
		if step == 0 {
			continue
		}
		pos[axis] += step
		for _, c := range pw.Overlaps(ecs.NewAABB(pos, b.Half), mask) {
			if !c.Solid || c.Entity == e {
				continue
			}
			if step > 0 {
				pos[axis] = c.Box.Min[axis] - b.Half[axis]
			} else {
				pos[axis] = c.Box.Max[axis] + b.Half[axis]
				if axis == 1 {
					mc.Grounded = true
				}
			}
			mc.Velocity[axis] = 0
		}
	}
	return pos
}
