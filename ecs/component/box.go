package component

import "github.com/go-gl/mathgl/mgl64"

// Box is an axis aligned extent centred on the entity's Transform position.
type Box struct {
	Half mgl64.Vec3
}

var BoxComponent = NewComponent[Box]()
