package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

func TestProject(t *testing.T) {
	camT := &component.Transform{Position: mgl64.Vec3{0, 0, 10}}
	lookAt(camT, mgl64.Vec3{})

	tests := []struct {
		name   string
		cam    component.Camera
		point  mgl64.Vec3
		wantOK bool
		check  func(t *testing.T, x, y float64)
	}{
		{
			name:   "target_is_centered",
			cam:    component.Camera{FOV: 60, Near: 0.1, Far: 100},
			point:  mgl64.Vec3{},
			wantOK: true,
			check: func(t *testing.T, x, y float64) {
				if math.Abs(x-640) > 1e-6 || math.Abs(y-360) > 1e-6 {
					t.Fatalf("got (%v, %v), want screen centre", x, y)
				}
			},
		},
		{
			name:   "up_is_up_and_right_is_right",
			cam:    component.Camera{FOV: 60, Near: 0.1, Far: 100},
			point:  mgl64.Vec3{1, 1, 0},
			wantOK: true,
			check: func(t *testing.T, x, y float64) {
				if x <= 640 || y >= 360 {
					t.Fatalf("got (%v, %v), want upper right quadrant", x, y)
				}
			},
		},
		{
			name:   "behind_camera",
			cam:    component.Camera{FOV: 60, Near: 0.1, Far: 100},
			point:  mgl64.Vec3{0, 0, 20},
			wantOK: false,
		},
		{
			name:   "ortho_half_height_hits_top_edge",
			cam:    component.Camera{Orthographic: true, OrthoHeight: 10, Near: 0.1, Far: 100},
			point:  mgl64.Vec3{0, 5, 0},
			wantOK: true,
			check: func(t *testing.T, x, y float64) {
				if math.Abs(x-640) > 1e-6 || math.Abs(y) > 1e-6 {
					t.Fatalf("got (%v, %v), want top centre", x, y)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam := tc.cam
			vp := ViewProjection(camT, &cam, 1280.0/720.0)
			x, y, ok := Project(vp, tc.point, 1280, 720)
			if ok != tc.wantOK {
				t.Fatalf("ok=%v, want %v", ok, tc.wantOK)
			}
			if ok && tc.check != nil {
				tc.check(t, x, y)
			}
		})
	}
}

func TestBoxCornersFollowRotation(t *testing.T) {
	tr := &component.Transform{
		Position: mgl64.Vec3{1, 0, 0},
		Rotation: mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
	}
	corners := boxCorners(tr, mgl64.Vec3{2, 1, 0.5})
	// +X corner rotated a quarter turn about Y points to -Z
	got := corners[1|2|4]
	want := mgl64.Vec3{1 + 0.5, 1, -2}
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("corner %v, want %v", got, want)
	}
}

func TestTTLSystem(t *testing.T) {
	w := ecs.NewWorld()
	short := ecs.CreateEntity(w)
	long := ecs.CreateEntity(w)
	mustAdd(t, w, short, component.TTLComponent.Kind(), &component.TTL{Remaining: 0.5})
	mustAdd(t, w, long, component.TTLComponent.Kind(), &component.TTL{Remaining: 2})

	sched := ecs.NewScheduler(NewTTLSystem())
	sched.Update(w, 0.25)
	if !ecs.IsAlive(w, short) {
		t.Fatalf("short-lived entity destroyed too early")
	}
	sched.Update(w, 0.25)
	if ecs.IsAlive(w, short) {
		t.Fatalf("short-lived entity should be gone after 0.5s")
	}
	if !ecs.IsAlive(w, long) {
		t.Fatalf("long-lived entity destroyed too early")
	}
}
