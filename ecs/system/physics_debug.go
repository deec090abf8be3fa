package system

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
	"golang.org/x/image/colornames"
)

// PhysicsDebugSystem outlines every registered collider through the active
// camera and prints the player's state.
type PhysicsDebugSystem struct{}

func NewPhysicsDebugSystem() *PhysicsDebugSystem { return &PhysicsDebugSystem{} }

func (s *PhysicsDebugSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	DrawPhysicsDebug(w, screen)
	DrawPlayerStateDebug(w, screen)
}

func DrawPhysicsDebug(w *ecs.World, screen *ebiten.Image) {
	camEntity, ok := ActiveCamera(w)
	if !ok {
		return
	}
	camT, _ := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())

	bounds := screen.Bounds()
	sw, sh := float64(bounds.Dx()), float64(bounds.Dy())
	vp := ViewProjection(camT, cam, sw/sh)
	axisAligned := &component.Transform{Rotation: mgl64.QuatIdent()}

	w.PhysicsWorld().ForEach(func(c ecs.Contact) {
		axisAligned.Position = c.Box.Center()
		corners := boxCorners(axisAligned, c.Box.Half())

		var xs, ys [8]float64
		var ok [8]bool
		for i, p := range corners {
			xs[i], ys[i], ok[i] = Project(vp, p, sw, sh)
		}
		clr := layerDebugColor(c.Layer, c.Solid)
		for _, edge := range boxEdges {
			a, b := edge[0], edge[1]
			if !ok[a] || !ok[b] {
				continue
			}
			vector.StrokeLine(screen, float32(xs[a]), float32(ys[a]), float32(xs[b]), float32(ys[b]), 1, clr, false)
		}
	})
}

func layerDebugColor(l component.Layer, solid bool) color.Color {
	switch l {
	case component.LayerPlayer:
		return colornames.Yellow
	case component.LayerCheckpoint:
		return colornames.Lime
	case component.LayerCollectible:
		return colornames.Cyan
	case component.LayerHazard:
		return colornames.Red
	}
	if solid {
		return colornames.Magenta
	}
	return colornames.Gray
}

func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}

	health := "-"
	if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
		health = fmt.Sprintf("%d/%d", h.Current, h.Max)
	}
	stage := "none"
	if rs, ok := ecs.Get(w, player, component.RespawningComponent.Kind()); ok {
		stage = fmt.Sprintf("%s (%.2fs)", rs.Stage, rs.Remaining)
	}
	grounded := false
	if mc, ok := ecs.Get(w, player, component.MotionControllerComponent.Kind()); ok {
		grounded = mc.Grounded
	}
	invulnerable := 0.0
	if inv, ok := ecs.Get(w, player, component.InvulnerableComponent.Kind()); ok {
		invulnerable = inv.Remaining
	}

	text := fmt.Sprintf("Health: %s\nRespawn: %s\nGrounded: %v\nInvulnerable: %.2fs", health, stage, grounded, invulnerable)
	ecs.ForEach(w, component.OrbitCameraComponent.Kind(), func(_ ecs.Entity, rig *component.OrbitCamera) {
		text += fmt.Sprintf("\nView: %s  Yaw: %.1f  Pitch: %.1f", rig.Mode, rig.Yaw, rig.Pitch)
	})
	ebitenutil.DebugPrintAt(screen, text, 10, 80)
}
