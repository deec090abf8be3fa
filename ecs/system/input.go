package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

const (
	stickDeadzone = 0.2
	// degrees of look per tick at full right-stick deflection, before
	// sensitivity
	stickLookRate = 4.0
)

// InputSystem samples keyboard, mouse and the first gamepad into every
// Input component. Pointer deltas come from the captured cursor.
type InputSystem struct {
	Sensitivity float64
	Debug       bool

	lastX, lastY int
	primed       bool
}

func NewInputSystem(sensitivity float64, debug bool) *InputSystem {
	if sensitivity <= 0 {
		sensitivity = 1
	}
	return &InputSystem{Sensitivity: sensitivity, Debug: debug}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)
	jumpPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	toggle := inpututil.IsKeyJustPressed(ebiten.KeyG)
	damage := i.Debug && inpututil.IsKeyJustPressed(ebiten.KeyK)
	heal := i.Debug && inpututil.IsKeyJustPressed(ebiten.KeyH)

	moveX := axis(left, right)
	moveZ := axis(down, up)

	lookX, lookY := i.pointerDelta()

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			moveX = lx
			moveZ = -ly
		}

		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		jumpPressed = jumpPressed || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		toggle = toggle || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			lookX += rx * stickLookRate * i.Sensitivity
			lookY -= ry * stickLookRate * i.Sensitivity
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveZ = moveZ
		input.Jump = jump
		input.JumpPressed = jumpPressed
		input.LookX = lookX
		input.LookY = lookY
		input.ToggleView = toggle
		input.Damage = damage
		input.Heal = heal
	})
}

// pointerDelta is the cursor movement since the last tick, screen-up
// positive. Nothing is reported until the cursor is captured.
func (i *InputSystem) pointerDelta() (float64, float64) {
	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		i.primed = false
		return 0, 0
	}
	x, y := ebiten.CursorPosition()
	if !i.primed {
		i.lastX, i.lastY = x, y
		i.primed = true
		return 0, 0
	}
	dx, dy := x-i.lastX, y-i.lastY
	i.lastX, i.lastY = x, y
	return float64(dx) * i.Sensitivity, -float64(dy) * i.Sensitivity
}

func axis(neg, pos bool) float64 {
	v := 0.0
	if neg {
		v -= 1
	}
	if pos {
		v += 1
	}
	return v
}
