package entity

import (
	"fmt"

	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
	"github.com/milk9111/jewelrun/prefabs"
	"golang.org/x/image/colornames"
)

// NewFadeOverlay builds the full-screen fade, starting transparent.
func NewFadeOverlay(w *ecs.World, speed float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.FadeComponent.Kind(), &component.Fade{Speed: speed}); err != nil {
		return 0, fmt.Errorf("fade overlay: add fade: %w", err)
	}
	return e, nil
}

func NewHUD(w *ecs.World, spec *prefabs.HUDSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HUDComponent.Kind(), &component.HUD{
		PipColor:  spec.PipColor.ColorOr(colornames.Crimson),
		TextColor: spec.TextColor.ColorOr(colornames.White),
		ShowHints: spec.ShowHints,
	}); err != nil {
		return 0, fmt.Errorf("hud: add hud: %w", err)
	}
	return e, nil
}
