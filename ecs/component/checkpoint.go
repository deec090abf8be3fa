package component

import "github.com/go-gl/mathgl/mgl64"

// Checkpoint sets the respawn point of whoever enters it.
type Checkpoint struct {
	Point mgl64.Vec3
}

var CheckpointComponent = NewComponent[Checkpoint]()
