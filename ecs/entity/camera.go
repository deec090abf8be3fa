package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/common"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
	"github.com/milk9111/jewelrun/levels"
	"github.com/milk9111/jewelrun/prefabs"
)

// NewOrbitCamera builds the fixed 2D camera from the level and the orbit
// camera following target. The orbit camera starts enabled.
func NewOrbitCamera(w *ecs.World, spec *prefabs.CameraSpec, target ecs.Entity, flat levels.Camera2D, invertY *bool) (ecs.Entity, error) {
	flatCam, err := newFlatCamera(w, spec, flat)
	if err != nil {
		return 0, err
	}

	mask, err := ignoreMask(spec.IgnoreLayers)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{Rotation: mgl64.QuatIdent()}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Enabled: true,
		FOV:     spec.FOV,
		Near:    spec.Near,
		Far:     spec.Far,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	rig := &component.OrbitCamera{
		Target:      uint64(target),
		Flat:        uint64(flatCam),
		IgnoreMask:  mask,
		Yaw:         common.NormalizeDegrees(spec.StartYaw),
		Pitch:       common.NormalizeDegrees(spec.StartPitch),
		Mode:        component.View3D,
		Offset:      spec.Offset.Vec(),
		RotateSpeed: spec.RotateSpeed,
		MinView:     spec.MinView,
		MaxView:     spec.MaxView,
		InvertY:     spec.InvertY,
		FloorMargin: spec.FloorMargin,
	}
	if invertY != nil {
		rig.InvertY = *invertY
	}
	if err := ecs.Add(w, camera, component.OrbitCameraComponent.Kind(), rig); err != nil {
		return 0, fmt.Errorf("camera: add orbit camera: %w", err)
	}
	if err := ecs.Add(w, camera, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("camera: add input: %w", err)
	}

	return camera, nil
}

func newFlatCamera(w *ecs.World, spec *prefabs.CameraSpec, flat levels.Camera2D) (ecs.Entity, error) {
	pos := flat.Position.Vec()

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("flat camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		Position: pos,
		Rotation: common.LookRotation(flat.LookAt.Vec().Sub(pos)),
	}); err != nil {
		return 0, fmt.Errorf("flat camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Orthographic: true,
		OrthoHeight:  spec.Flat.OrthoHeight,
		Near:         spec.Flat.Near,
		Far:          spec.Flat.Far,
	}); err != nil {
		return 0, fmt.Errorf("flat camera: add camera component: %w", err)
	}
	return camera, nil
}

// ApplyCameraSpec pushes reloaded tuning onto a live orbit camera. The pivot
// angles and view mode are left alone.
func ApplyCameraSpec(w *ecs.World, camera ecs.Entity, spec *prefabs.CameraSpec, invertY *bool) error {
	rig, ok := ecs.Get(w, camera, component.OrbitCameraComponent.Kind())
	if !ok {
		return fmt.Errorf("camera: entity %v has no orbit camera", camera)
	}
	mask, err := ignoreMask(spec.IgnoreLayers)
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}

	rig.Offset = spec.Offset.Vec()
	rig.RotateSpeed = spec.RotateSpeed
	rig.MinView = spec.MinView
	rig.MaxView = spec.MaxView
	rig.InvertY = spec.InvertY
	if invertY != nil {
		rig.InvertY = *invertY
	}
	rig.FloorMargin = spec.FloorMargin
	rig.IgnoreMask = mask

	if cam, ok := ecs.Get(w, camera, component.CameraComponent.Kind()); ok {
		cam.FOV, cam.Near, cam.Far = spec.FOV, spec.Near, spec.Far
	}
	if cam, ok := ecs.Get(w, ecs.Entity(rig.Flat), component.CameraComponent.Kind()); ok {
		cam.OrthoHeight, cam.Near, cam.Far = spec.Flat.OrthoHeight, spec.Flat.Near, spec.Flat.Far
	}
	return nil
}

func ignoreMask(names []string) (component.LayerMask, error) {
	layers := make([]component.Layer, 0, len(names))
	for _, name := range names {
		l, ok := component.LayerByName(name)
		if !ok {
			return 0, fmt.Errorf("unknown layer %q", name)
		}
		layers = append(layers, l)
	}
	return component.MaskExcept(layers...), nil
}
