package component

import "github.com/go-gl/mathgl/mgl64"

// DeathEffect is a burst of particles flying out from the entity position.
type DeathEffect struct {
	Age       float64
	Particles []mgl64.Vec3 // unit directions
	Speed     float64
}

var DeathEffectComponent = NewComponent[DeathEffect]()
