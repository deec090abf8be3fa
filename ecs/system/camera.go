package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/common"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

var (
	axisX = mgl64.Vec3{1, 0, 0}
	axisY = mgl64.Vec3{0, 1, 0}
)

// CameraSystem drives every orbit camera: view toggling, pivot rotation,
// collision-avoiding placement and look-at.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.OrbitCameraComponent.Kind(), func(e ecs.Entity, _ *component.OrbitCamera) {
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		if input != nil && input.ToggleView {
			ToggleView(w, e)
		}

		cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
		if !ok || !cam.Enabled {
			return
		}

		var dx, dy float64
		if input != nil {
			dx, dy = input.LookX, input.LookY
		}
		UpdateOrbit(w, e, dx, dy)
	})
}

// OrbitStep applies one tick of pointer deltas to the rig's pivots. Pitch is
// clamped into [MinView, MaxView] across the 0/360 wrap: angles just past
// MaxView snap to MaxView and angles in the lower half of the circle snap up
// to 360+MinView.
func OrbitStep(rig *component.OrbitCamera, dx, dy float64) {
	if rig == nil {
		return
	}
	rig.Yaw = common.NormalizeDegrees(rig.Yaw + dx*rig.RotateSpeed)

	dp := dy * rig.RotateSpeed
	if rig.InvertY {
		dp = -dp
	}
	pitch := common.NormalizeDegrees(rig.Pitch + dp)
	switch {
	case pitch > rig.MaxView && pitch < 180:
		pitch = rig.MaxView
	case pitch >= 180 && pitch < 360+rig.MinView:
		pitch = 360 + rig.MinView
	}
	rig.Pitch = common.NormalizeDegrees(pitch)
}

// OrbitRotation composes the horizontal and vertical pivots.
func OrbitRotation(yaw, pitch float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(yaw), axisY).Mul(mgl64.QuatRotate(mgl64.DegToRad(pitch), axisX))
}

// UpdateOrbit runs one orbit tick for the camera entity: rotate the pivots,
// place the camera at target - rotation*offset, pull it in front of any
// blocking geometry, keep it from sinking under the target and face the
// target.
func UpdateOrbit(w *ecs.World, camEntity ecs.Entity, dx, dy float64) {
	rig, ok := ecs.Get(w, camEntity, component.OrbitCameraComponent.Kind())
	if !ok {
		return
	}
	camT, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	targetT, ok := ecs.Get(w, ecs.Entity(rig.Target), component.TransformComponent.Kind())
	if !ok {
		return
	}

	OrbitStep(rig, dx, dy)

	target := targetT.Position
	desired := target.Sub(OrbitRotation(rig.Yaw, rig.Pitch).Rotate(rig.Offset))

	pos := desired
	if hit, blocked := w.PhysicsWorld().LineCast(target, desired, rig.IgnoreMask); blocked {
		pos = hit.Point
	}

	if floor := target.Y() - rig.FloorMargin; pos.Y() < floor {
		pos[1] = floor
	}

	camT.Position = pos
	lookAt(camT, target)
}

// ToggleView swaps between the orbit camera and its fixed 2D camera. The
// orbit camera's position is stored on the way out and restored on the way
// back, so toggling twice leaves it where it was.
func ToggleView(w *ecs.World, camEntity ecs.Entity) (component.ViewMode, bool) {
	rig, ok := ecs.Get(w, camEntity, component.OrbitCameraComponent.Kind())
	if !ok {
		return component.View3D, false
	}
	mainCam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	if !ok {
		return rig.Mode, false
	}
	mainT, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return rig.Mode, false
	}
	flat := ecs.Entity(rig.Flat)
	flatCam, ok := ecs.Get(w, flat, component.CameraComponent.Kind())
	if !ok {
		return rig.Mode, false
	}
	flatT, ok := ecs.Get(w, flat, component.TransformComponent.Kind())
	if !ok {
		return rig.Mode, false
	}

	if mainCam.Enabled {
		rig.Stored = mainT.Position
		mainT.Position = flatT.Position
		if targetT, ok := ecs.Get(w, ecs.Entity(rig.Target), component.TransformComponent.Kind()); ok {
			lookAt(mainT, targetT.Position)
		}
		mainCam.Enabled = false
		flatCam.Enabled = true
		rig.Mode = component.View2D
	} else {
		mainCam.Enabled = true
		flatCam.Enabled = false
		mainT.Position = rig.Stored
		rig.Mode = component.View3D
	}

	w.Events().Push(ecs.Event{Type: ecs.EventViewToggled, Entity: camEntity, Data: rig.Mode})
	return rig.Mode, true
}

// ActiveCamera returns the enabled camera, if any.
func ActiveCamera(w *ecs.World) (ecs.Entity, bool) {
	for _, e := range w.Query(component.CameraComponent.Kind(), component.TransformComponent.Kind()) {
		if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok && cam.Enabled {
			return e, true
		}
	}
	return 0, false
}

// lookAt turns t so its -Z axis points at target.
func lookAt(t *component.Transform, target mgl64.Vec3) {
	f := target.Sub(t.Position)
	if f.Len() < 1e-9 {
		return
	}
	t.Rotation = common.LookRotation(f)
}
