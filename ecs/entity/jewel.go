package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
	"github.com/milk9111/jewelrun/prefabs"
	"golang.org/x/image/colornames"
)

var defaultJewelHalf = mgl64.Vec3{0.3, 0.3, 0.3}

// NewJewelManager builds a manager owning one jewel per position.
func NewJewelManager(w *ecs.World, spec *prefabs.JewelSpec, positions []mgl64.Vec3, silent bool) (ecs.Entity, []ecs.Entity, error) {
	manager := ecs.CreateEntity(w)

	half := spec.Half.Vec()
	if half == (mgl64.Vec3{}) {
		half = defaultJewelHalf
	}
	clr := spec.Color.ColorOr(colornames.Turquoise)

	jm := &component.JewelManager{
		Jewels: make([]uint64, 0, len(positions)),
		Max:    len(positions),
		Count:  len(positions),
		Script: spec.Script,
	}
	jewels := make([]ecs.Entity, 0, len(positions))
	for i, pos := range positions {
		jewel, err := newVolume(w, pos, half, component.LayerCollectible, false, clr, true)
		if err != nil {
			return 0, nil, fmt.Errorf("jewel %d: %w", i, err)
		}
		if err := ecs.Add(w, jewel, component.JewelComponent.Kind(), &component.Jewel{
			Manager:   uint64(manager),
			BaseY:     pos.Y(),
			BobHeight: spec.BobHeight,
			BobSpeed:  spec.BobSpeed,
			SpinSpeed: spec.SpinSpeed,
			// stagger so neighbouring jewels do not bob in step
			Phase: float64(i) * 0.3,
		}); err != nil {
			return 0, nil, fmt.Errorf("jewel %d: add jewel: %w", i, err)
		}
		jm.Jewels = append(jm.Jewels, uint64(jewel))
		jewels = append(jewels, jewel)
	}

	if err := ecs.Add(w, manager, component.JewelManagerComponent.Kind(), jm); err != nil {
		return 0, nil, fmt.Errorf("jewel manager: add manager: %w", err)
	}
	audioComp, err := buildAudioComponent(spec.Audio, silent)
	if err != nil {
		return 0, nil, fmt.Errorf("jewel manager: %w", err)
	}
	if audioComp != nil {
		if err := ecs.Add(w, manager, component.AudioComponent.Kind(), audioComp); err != nil {
			return 0, nil, fmt.Errorf("jewel manager: add audio: %w", err)
		}
	}

	return manager, jewels, nil
}
