package ecs

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jewelrun/ecs/component"
)

// AABB is an axis aligned box in world units.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

func NewAABB(center, half mgl64.Vec3) AABB {
	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

func (b AABB) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Half() mgl64.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Overlaps reports a strict overlap; boxes that only touch do not overlap.
func (b AABB) Overlaps(o AABB) bool {
	for i := 0; i < 3; i++ {
		if b.Min[i] >= o.Max[i] || b.Max[i] <= o.Min[i] {
			return false
		}
	}
	return true
}

func (b AABB) Contains(p mgl64.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// footprint is the box projected onto the ground plane, the plane chipmunk
// indexes.
func (b AABB) footprint() cp.BB {
	return cp.BB{L: b.Min.X(), B: b.Min.Z(), R: b.Max.X(), T: b.Max.Z()}
}

// Hit is the nearest blocking point of a line query.
type Hit struct {
	Entity   Entity
	Point    mgl64.Vec3
	Fraction float64
}

// Contact is one result of an overlap query.
type Contact struct {
	Entity Entity
	Box    AABB
	Layer  component.Layer
	Solid  bool
}

type staticBox struct {
	entity Entity
	box    AABB
	layer  component.Layer
	solid  bool
	shape  *cp.Shape
}

// PhysicsWorld answers line and overlap queries against layered boxes. The
// chipmunk space holds each box's ground-plane footprint as a static shape
// and does the broadphase plus layer filtering; the exact 3D test runs on
// the candidates.
type PhysicsWorld struct {
	space         *cp.Space
	shapeToEntity map[*cp.Shape]*staticBox
	entityToBox   map[Entity]*staticBox
}

// NewPhysicsWorld creates an empty physics world.
func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		space:         cp.NewSpace(),
		shapeToEntity: make(map[*cp.Shape]*staticBox),
		entityToBox:   make(map[Entity]*staticBox),
	}
}

// Space returns the underlying chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Set registers or moves the box of e.
func (pw *PhysicsWorld) Set(e Entity, box AABB, layer component.Layer, solid bool) {
	if pw == nil || !e.Valid() {
		return
	}
	pw.Remove(e)

	shape := cp.NewBox2(pw.space.StaticBody, box.footprint(), 0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(layer.Mask()), cp.ALL_CATEGORIES))
	pw.space.AddShape(shape)

	sb := &staticBox{entity: e, box: box, layer: layer, solid: solid, shape: shape}
	pw.shapeToEntity[shape] = sb
	pw.entityToBox[e] = sb
}

// Remove unregisters e. Unknown entities are ignored.
func (pw *PhysicsWorld) Remove(e Entity) {
	if pw == nil {
		return
	}
	sb, ok := pw.entityToBox[e]
	if !ok {
		return
	}
	pw.space.RemoveShape(sb.shape)
	delete(pw.shapeToEntity, sb.shape)
	delete(pw.entityToBox, e)
}

// Box returns the registered box of e.
func (pw *PhysicsWorld) Box(e Entity) (AABB, bool) {
	if pw == nil {
		return AABB{}, false
	}
	sb, ok := pw.entityToBox[e]
	if !ok {
		return AABB{}, false
	}
	return sb.box, true
}

// Len returns the number of registered boxes.
func (pw *PhysicsWorld) Len() int {
	if pw == nil {
		return 0
	}
	return len(pw.entityToBox)
}

// ForEach visits every registered box in entity order.
func (pw *PhysicsWorld) ForEach(fn func(Contact)) {
	if pw == nil {
		return
	}
	boxes := make([]*staticBox, 0, len(pw.entityToBox))
	for _, sb := range pw.entityToBox {
		boxes = append(boxes, sb)
	}
	sort.Slice(boxes, func(i, j int) bool { return boxes[i].entity < boxes[j].entity })
	for _, sb := range boxes {
		fn(Contact{Entity: sb.entity, Box: sb.box, Layer: sb.layer, Solid: sb.solid})
	}
}

func (pw *PhysicsWorld) query(bb cp.BB, mask component.LayerMask, fn func(sb *staticBox)) {
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
	var found []*staticBox
	pw.space.BBQuery(bb, filter, func(shape *cp.Shape, _ interface{}) {
		if sb, ok := pw.shapeToEntity[shape]; ok {
			found = append(found, sb)
		}
	}, nil)
	sort.Slice(found, func(i, j int) bool { return found[i].entity < found[j].entity })
	for _, sb := range found {
		fn(sb)
	}
}

// LineCast finds the first box on a mask layer crossed by the segment
// from->to. A segment starting inside a box hits it at from.
func (pw *PhysicsWorld) LineCast(from, to mgl64.Vec3, mask component.LayerMask) (Hit, bool) {
	if pw == nil {
		return Hit{}, false
	}

	const pad = 1e-6
	bb := cp.BB{
		L: math.Min(from.X(), to.X()) - pad,
		B: math.Min(from.Z(), to.Z()) - pad,
		R: math.Max(from.X(), to.X()) + pad,
		T: math.Max(from.Z(), to.Z()) + pad,
	}
	dir := to.Sub(from)

	var hit Hit
	found := false
	pw.query(bb, mask, func(sb *staticBox) {
		t, ok := segmentAABB(from, dir, sb.box)
		if !ok {
			return
		}
		if !found || t < hit.Fraction {
			hit = Hit{Entity: sb.entity, Fraction: t}
			found = true
		}
	})
	if !found {
		return Hit{}, false
	}
	hit.Point = from.Add(dir.Mul(hit.Fraction))
	return hit, true
}

// Overlaps returns every box on a mask layer overlapping box, ordered by
// entity.
func (pw *PhysicsWorld) Overlaps(box AABB, mask component.LayerMask) []Contact {
	if pw == nil {
		return nil
	}
	var out []Contact
	pw.query(box.footprint(), mask, func(sb *staticBox) {
		if !box.Overlaps(sb.box) {
			return
		}
		out = append(out, Contact{Entity: sb.entity, Box: sb.box, Layer: sb.layer, Solid: sb.solid})
	})
	return out
}

// segmentAABB is the slab test for the segment origin + t*dir, t in [0,1].
func segmentAABB(origin, dir mgl64.Vec3, box AABB) (float64, bool) {
	tmin := 0.0
	tmax := 1.0
	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < box.Min[i] || origin[i] > box.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dir[i]
		t1 := (box.Min[i] - origin[i]) * inv
		t2 := (box.Max[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmax < tmin {
			return 0, false
		}
	}
	return tmin, true
}
