package component

import "github.com/go-gl/mathgl/mgl64"

// MotionController moves an entity from Input. While disabled the entity
// keeps its position and ignores input and gravity.
type MotionController struct {
	Enabled   bool
	MoveSpeed float64
	JumpSpeed float64
	Gravity   float64
	Velocity  mgl64.Vec3
	Grounded  bool
}

var MotionControllerComponent = NewComponent[MotionController]()

// Disabled marks an inactive object: not simulated, not drawn, no triggers.
type Disabled struct{}

var DisabledComponent = NewComponent[Disabled]()
