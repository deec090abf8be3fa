package ecs

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs/component"
)

func almostVec(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}

func TestLineCast(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	wall := CreateEntity(w)
	checkpoint := CreateEntity(w)
	player := CreateEntity(w)

	pw.Set(wall, NewAABB(mgl64.Vec3{0, 1, -5}, mgl64.Vec3{2, 1, 0.5}), component.LayerDefault, true)
	pw.Set(checkpoint, NewAABB(mgl64.Vec3{0, 1, -2}, mgl64.Vec3{1, 1, 0.5}), component.LayerCheckpoint, false)
	pw.Set(player, NewAABB(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0.5, 1, 0.5}), component.LayerPlayer, true)

	from := mgl64.Vec3{0, 1, 0}
	to := mgl64.Vec3{0, 1, -10}

	tests := []struct {
		name    string
		mask    component.LayerMask
		wantHit bool
		want    Entity
		point   mgl64.Vec3
	}{
		{"ignores_player_and_checkpoint", component.MaskExcept(component.LayerPlayer, component.LayerCheckpoint), true, wall, mgl64.Vec3{0, 1, -4.5}},
		{"checkpoint_blocks_when_not_masked", component.MaskExcept(component.LayerPlayer), true, checkpoint, mgl64.Vec3{0, 1, -1.5}},
		{"start_inside_player_box", component.AllLayers, true, player, from},
		{"nothing_on_hazard_layer", component.LayerHazard.Mask(), false, 0, mgl64.Vec3{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := pw.LineCast(from, to, tc.mask)
			if ok != tc.wantHit {
				t.Fatalf("hit=%v, want %v", ok, tc.wantHit)
			}
			if !ok {
				return
			}
			if hit.Entity != tc.want {
				t.Fatalf("hit entity %v, want %v", hit.Entity, tc.want)
			}
			if !almostVec(hit.Point, tc.point) {
				t.Fatalf("hit point %v, want %v", hit.Point, tc.point)
			}
		})
	}
}

func TestLineCastPassesOverLowBox(t *testing.T) {
	pw := NewPhysicsWorld()
	w := NewWorld()
	low := CreateEntity(w)
	// footprint is crossed but the segment passes above the box
	pw.Set(low, NewAABB(mgl64.Vec3{0, 0.25, -3}, mgl64.Vec3{1, 0.25, 1}), component.LayerDefault, true)

	if _, ok := pw.LineCast(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 2, -6}, component.AllLayers); ok {
		t.Fatalf("segment above the box should not hit")
	}
	hit, ok := pw.LineCast(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0, 0, -4}, component.AllLayers)
	if !ok {
		t.Fatalf("descending segment should hit the box top")
	}
	if math.Abs(hit.Point.Y()-0.5) > 1e-9 {
		t.Fatalf("expected hit on top face, got %v", hit.Point)
	}
}

func TestVerticalLineCast(t *testing.T) {
	pw := NewPhysicsWorld()
	w := NewWorld()
	floor := CreateEntity(w)
	pw.Set(floor, NewAABB(mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{5, 0.5, 5}), component.LayerDefault, true)

	hit, ok := pw.LineCast(mgl64.Vec3{1, 3, 1}, mgl64.Vec3{1, -3, 1}, component.AllLayers)
	if !ok || !almostVec(hit.Point, mgl64.Vec3{1, 0, 1}) {
		t.Fatalf("expected hit at floor surface, got %v ok=%v", hit.Point, ok)
	}
}

func TestOverlapsAndRemove(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	a := CreateEntity(w)
	b := CreateEntity(w)
	pw.Set(a, NewAABB(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}), component.LayerCollectible, false)
	pw.Set(b, NewAABB(mgl64.Vec3{3, 0, 0}, mgl64.Vec3{1, 1, 1}), component.LayerHazard, false)

	probe := NewAABB(mgl64.Vec3{1.5, 0, 0}, mgl64.Vec3{1, 1, 1})
	got := pw.Overlaps(probe, component.AllLayers)
	if len(got) != 2 {
		t.Fatalf("expected 2 contacts, got %v", got)
	}
	if got := pw.Overlaps(probe, component.LayerHazard.Mask()); len(got) != 1 || got[0].Entity != b {
		t.Fatalf("expected only hazard contact, got %v", got)
	}

	// touching faces do not count
	touch := NewAABB(mgl64.Vec3{-2, 0, 0}, mgl64.Vec3{1, 1, 1})
	if got := pw.Overlaps(touch, component.AllLayers); len(got) != 0 {
		t.Fatalf("touching box should not overlap, got %v", got)
	}

	DestroyEntity(w, a)
	if pw.Len() != 1 {
		t.Fatalf("destroying an entity should drop its box, have %d", pw.Len())
	}
	if got := pw.Overlaps(probe, component.AllLayers); len(got) != 1 || got[0].Entity != b {
		t.Fatalf("expected only b after removal, got %v", got)
	}
}

func TestMaskExcept(t *testing.T) {
	m := component.MaskExcept(component.LayerPlayer, component.LayerCheckpoint)
	if m.Has(component.LayerPlayer) || m.Has(component.LayerCheckpoint) {
		t.Fatalf("mask should exclude player and checkpoint")
	}
	if !m.Has(component.LayerDefault) || !m.Has(component.LayerHazard) {
		t.Fatalf("mask should include other layers")
	}
	if l, ok := component.LayerByName("collectible"); !ok || l != component.LayerCollectible {
		t.Fatalf("component.LayerByName collectible = %v %v", l, ok)
	}
}

func TestForEachVisitsInEntityOrder(t *testing.T) {
	w := NewWorld()
	pw := NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	var want []Entity
	for i := 0; i < 4; i++ {
		e := CreateEntity(w)
		pw.Set(e, NewAABB(mgl64.Vec3{float64(i * 3), 0, 0}, mgl64.Vec3{1, 1, 1}), component.LayerDefault, i%2 == 0)
		want = append(want, e)
	}

	var got []Entity
	pw.ForEach(func(c Contact) {
		got = append(got, c.Entity)
		if c.Solid != (len(got)%2 == 1) {
			t.Fatalf("contact %v solid=%v", c.Entity, c.Solid)
		}
	})
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visited %v, want %v", got, want)
		}
	}

	var nilWorld *PhysicsWorld
	nilWorld.ForEach(func(Contact) { t.Fatalf("nil world should visit nothing") })
}
