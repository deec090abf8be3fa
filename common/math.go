package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// MoveTowards moves current toward target by at most maxDelta without
// overshooting.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

// SignedDegrees maps an angle in [0, 360) to (-180, 180].
func SignedDegrees(d float64) float64 {
	d = NormalizeDegrees(d)
	if d > 180 {
		return d - 360
	}
	return d
}

// LookRotation returns the rotation that turns -Z toward dir with +Y kept
// up. A zero dir yields the identity.
func LookRotation(dir mgl64.Vec3) mgl64.Quat {
	if dir.Len() < 1e-9 {
		return mgl64.QuatIdent()
	}
	f := dir.Normalize()
	up := mgl64.Vec3{0, 1, 0}
	// looking straight up or down
	if math.Abs(f.Dot(up)) > 1-1e-9 {
		up = mgl64.Vec3{0, 0, -1}
	}
	r := f.Cross(up).Normalize()
	u := r.Cross(f)
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(r, u, f.Mul(-1)).Mat4()).Normalize()
}
