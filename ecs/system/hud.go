package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin  = 16
	hudPipSize = 18
	hudPipGap  = 6
)

// HUDSystem draws health pips, the jewel counter and the active view, then
// the fade overlay on top of everything.
type HUDSystem struct {
	face ebtext.Face
}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil {
		return
	}
	bounds := screen.Bounds()

	style := component.HUD{PipColor: colornames.Crimson, TextColor: colornames.White}
	if e, ok := ecs.First(w, component.HUDComponent.Kind()); ok {
		hud, _ := ecs.Get(w, e, component.HUDComponent.Kind())
		style = *hud
	}
	if style.PipColor == nil {
		style.PipColor = colornames.Crimson
	}
	if style.TextColor == nil {
		style.TextColor = colornames.White
	}

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if health, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
			h.drawHealth(screen, health, style.PipColor)
		}
	}

	line := 0
	ecs.ForEach(w, component.JewelManagerComponent.Kind(), func(_ ecs.Entity, jm *component.JewelManager) {
		h.print(screen, fmt.Sprintf("Jewels: %d/%d", jm.Max-jm.Count, jm.Max), hudMargin, hudMargin+hudPipSize+12+line*16, style.TextColor)
		line++
	})

	ecs.ForEach(w, component.OrbitCameraComponent.Kind(), func(_ ecs.Entity, rig *component.OrbitCamera) {
		label := "View: " + rig.Mode.String()
		if style.ShowHints {
			label += "  [G]"
		}
		h.print(screen, label, bounds.Dx()-hudMargin-len(label)*7, hudMargin, style.TextColor)
	})

	ecs.ForEach(w, component.FadeComponent.Kind(), func(_ ecs.Entity, f *component.Fade) {
		if f.Alpha <= 0 {
			return
		}
		a := uint8(f.Alpha*255 + 0.5)
		vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), color.NRGBA{A: a}, false)
	})
}

func (h *HUDSystem) drawHealth(screen *ebiten.Image, health *component.Health, clr color.Color) {
	for slot := 0; slot < health.Max; slot++ {
		x := float32(hudMargin + slot*(hudPipSize+hudPipGap))
		y := float32(hudMargin)
		if slot < health.Current {
			vector.FillRect(screen, x, y, hudPipSize, hudPipSize, clr, false)
		}
		vector.StrokeRect(screen, x, y, hudPipSize, hudPipSize, 2, colornames.White, false)
	}
}

func (h *HUDSystem) print(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, h.face, op)
}
