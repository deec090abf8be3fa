package component

import "github.com/go-gl/mathgl/mgl64"

// Camera is a viewpoint. At most one camera is enabled at a time; the
// renderer draws through the enabled one.
type Camera struct {
	Enabled      bool
	FOV          float64 // vertical, degrees
	Near         float64
	Far          float64
	Orthographic bool
	OrthoHeight  float64
}

var CameraComponent = NewComponent[Camera]()

// ViewMode is the active camera of an orbit rig.
type ViewMode int

const (
	View3D ViewMode = iota
	View2D
)

func (m ViewMode) String() string {
	if m == View2D {
		return "2D"
	}
	return "3D"
}

// OrbitCamera is the third-person rig. Yaw is the horizontal pivot, Pitch
// the vertical pivot, both in degrees normalised to [0, 360). MinView is
// negative (looking down), MaxView positive.
type OrbitCamera struct {
	Target uint64 // ecs.Entity of the followed object
	Flat   uint64 // ecs.Entity of the fixed 2D camera

	Offset      mgl64.Vec3
	RotateSpeed float64
	MinView     float64
	MaxView     float64
	InvertY     bool
	FloorMargin float64
	IgnoreMask  LayerMask

	Yaw   float64
	Pitch float64

	Mode   ViewMode
	Stored mgl64.Vec3
}

var OrbitCameraComponent = NewComponent[OrbitCamera]()
