package system

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
	"golang.org/x/image/colornames"
)

// boxEdges indexes the corners returned by boxCorners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// top face, counter-clockwise seen from above
var boxTop = [4]int{2, 3, 7, 6}

// RenderSystem draws boxes and particles in wireframe through the enabled
// camera.
type RenderSystem struct {
	white *ebiten.Image
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	camEntity, ok := ActiveCamera(w)
	if !ok {
		return
	}
	camT, _ := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())

	bounds := screen.Bounds()
	sw, sh := float64(bounds.Dx()), float64(bounds.Dy())
	vp := ViewProjection(camT, cam, sw/sh)

	entities := w.Query(component.TransformComponent.Kind(), component.BoxComponent.Kind(), component.RenderStyleComponent.Kind())
	// far to near so nearer outlines land on top
	depth := make(map[ecs.Entity]float64, len(entities))
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		depth[e] = t.Position.Sub(camT.Position).Len()
	}
	sort.SliceStable(entities, func(i, j int) bool {
		if depth[entities[i]] != depth[entities[j]] {
			return depth[entities[i]] > depth[entities[j]]
		}
		return entities[i] < entities[j]
	})

	for _, e := range entities {
		if ecs.Has(w, e, component.DisabledComponent.Kind()) {
			continue
		}
		style, _ := ecs.Get(w, e, component.RenderStyleComponent.Kind())
		if style.Hidden {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		b, _ := ecs.Get(w, e, component.BoxComponent.Kind())
		r.drawBox(screen, vp, sw, sh, boxCorners(t, b.Half), style)
	}

	ecs.ForEach2(w, component.DeathEffectComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, fx *component.DeathEffect, t *component.Transform) {
		for _, p := range ParticlePositions(t.Position, fx) {
			x, y, ok := Project(vp, p, sw, sh)
			if !ok {
				continue
			}
			vector.FillCircle(screen, float32(x), float32(y), 3, colornames.Orangered, true)
		}
	})
}

func (r *RenderSystem) drawBox(screen *ebiten.Image, vp mgl64.Mat4, sw, sh float64, corners [8]mgl64.Vec3, style *component.RenderStyle) {
	clr := style.Color
	if clr == nil {
		clr = colornames.White
	}

	var xs, ys [8]float64
	var ok [8]bool
	for i, c := range corners {
		xs[i], ys[i], ok[i] = Project(vp, c, sw, sh)
	}

	if style.Filled && ok[boxTop[0]] && ok[boxTop[1]] && ok[boxTop[2]] && ok[boxTop[3]] {
		r.fillQuad(screen, xs, ys, boxTop, clr)
	}

	for _, edge := range boxEdges {
		a, b := edge[0], edge[1]
		if !ok[a] || !ok[b] {
			continue
		}
		vector.StrokeLine(screen, float32(xs[a]), float32(ys[a]), float32(xs[b]), float32(ys[b]), 1.5, clr, true)
	}
}

func (r *RenderSystem) fillQuad(screen *ebiten.Image, xs, ys [8]float64, idx [4]int, clr color.Color) {
	if r.white == nil {
		r.white = ebiten.NewImage(3, 3)
		r.white.Fill(color.White)
	}

	path := vector.Path{}
	path.MoveTo(float32(xs[idx[0]]), float32(ys[idx[0]]))
	for _, i := range idx[1:] {
		path.LineTo(float32(xs[i]), float32(ys[i]))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := clr.RGBA()
	// faces are drawn dimmer than their outline
	const shade = 0.35
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(cr) / 0xffff * shade
		vs[i].ColorG = float32(cg) / 0xffff * shade
		vs[i].ColorB = float32(cb) / 0xffff * shade
		vs[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillRuleNonZero
	screen.DrawTriangles(vs, is, r.white.SubImage(r.white.Bounds().Inset(1)).(*ebiten.Image), op)
}

// ViewProjection builds the clip transform of a camera. The transform's
// rotation maps -Z onto the viewing direction.
func ViewProjection(t *component.Transform, cam *component.Camera, aspect float64) mgl64.Mat4 {
	if t == nil || cam == nil {
		return mgl64.Ident4()
	}
	near, far := cam.Near, cam.Far
	if near <= 0 {
		near = 0.1
	}
	if far <= near {
		far = near + 1000
	}

	var proj mgl64.Mat4
	if cam.Orthographic {
		h := cam.OrthoHeight
		if h <= 0 {
			h = 10
		}
		hw := h * aspect / 2
		proj = mgl64.Ortho(-hw, hw, -h/2, h/2, near, far)
	} else {
		fov := cam.FOV
		if fov <= 0 {
			fov = 60
		}
		proj = mgl64.Perspective(mgl64.DegToRad(fov), aspect, near, far)
	}

	view := t.Rotation.Inverse().Mat4().Mul4(mgl64.Translate3D(-t.Position.X(), -t.Position.Y(), -t.Position.Z()))
	return proj.Mul4(view)
}

// Project maps a world point to screen pixels. Points behind the camera or
// outside the depth range are not drawable.
func Project(vp mgl64.Mat4, p mgl64.Vec3, sw, sh float64) (float64, float64, bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-6 {
		return 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, false
	}
	return (ndc.X() + 1) / 2 * sw, (1 - ndc.Y()) / 2 * sh, true
}

// boxCorners returns the corners of the rotated box, bit 0 = +X, bit 1 = +Y,
// bit 2 = +Z.
func boxCorners(t *component.Transform, half mgl64.Vec3) [8]mgl64.Vec3 {
	rot := t.Rotation
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}
	var out [8]mgl64.Vec3
	for i := 0; i < 8; i++ {
		c := mgl64.Vec3{-half.X(), -half.Y(), -half.Z()}
		if i&1 != 0 {
			c[0] = half.X()
		}
		if i&2 != 0 {
			c[1] = half.Y()
		}
		if i&4 != 0 {
			c[2] = half.Z()
		}
		out[i] = t.Position.Add(rot.Rotate(c))
	}
	return out
}
