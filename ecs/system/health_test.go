package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		name        string
		health      int
		damage      int
		wantHealth  int
		wantRespawn bool
	}{
		{"survives", 3, 1, 2, false},
		{"exactly_lethal", 3, 3, 0, true},
		{"overkill_clamps_to_zero", 3, 7, 0, true},
		{"zero_damage_is_noop", 3, 0, 3, false},
		{"negative_damage_is_noop", 3, -2, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newPhysicsTestWorld()
			p := newTestPlayer(t, w, tc.health, mgl64.Vec3{0, 1, 0})

			started := ApplyDamage(w, p.entity, tc.damage)
			if started != tc.wantRespawn {
				t.Fatalf("ApplyDamage started=%v, want %v", started, tc.wantRespawn)
			}
			health, _ := ecs.Get(w, p.entity, component.HealthComponent.Kind())
			if health.Current != tc.wantHealth {
				t.Fatalf("health %d, want %d", health.Current, tc.wantHealth)
			}

			a, _ := ecs.Get(w, p.entity, component.AudioComponent.Kind())
			if a.Requested("death") != tc.wantRespawn {
				t.Fatalf("death clip requested=%v, want %v", a.Requested("death"), tc.wantRespawn)
			}
			if ecs.Has(w, p.entity, component.DisabledComponent.Kind()) != tc.wantRespawn {
				t.Fatalf("disabled mismatch")
			}
			if _, inPhysics := w.PhysicsWorld().Box(p.entity); inPhysics == tc.wantRespawn {
				t.Fatalf("collider registered=%v after damage", inPhysics)
			}
		})
	}
}

func TestDamageDuringRespawnIsIgnored(t *testing.T) {
	w := newPhysicsTestWorld()
	p := newTestPlayer(t, w, 2, mgl64.Vec3{0, 1, 0})

	if !ApplyDamage(w, p.entity, 5) {
		t.Fatalf("lethal damage should start a respawn")
	}
	for i := 0; i < 3; i++ {
		if ApplyDamage(w, p.entity, 5) {
			t.Fatalf("second sequence started on hit %d", i)
		}
	}

	effects := w.Query(component.DeathEffectComponent.Kind())
	if len(effects) != 1 {
		t.Fatalf("expected a single death effect, got %d", len(effects))
	}
	if n := countEvents(w.Events().Drain(), ecs.EventPlayerDied); n != 1 {
		t.Fatalf("expected one death event, got %d", n)
	}
}

func TestHeal(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		amount   int
		expected int
	}{
		{"partial", 1, 1, 2},
		{"clamped_to_max", 2, 10, 3},
		{"already_full", 3, 1, 3},
		{"non_positive", 1, -1, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			mustAdd(t, w, e, component.HealthComponent.Kind(), &component.Health{Current: tc.current, Max: 3})
			Heal(w, e, tc.amount)
			h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
			if h.Current != tc.expected {
				t.Fatalf("health %d, want %d", h.Current, tc.expected)
			}
		})
	}
}

func TestSetCheckpoint(t *testing.T) {
	w := newPhysicsTestWorld()
	start := mgl64.Vec3{0, 1, 0}
	p := newTestPlayer(t, w, 3, start)
	a, _ := ecs.Get(w, p.entity, component.AudioComponent.Kind())

	if SetCheckpoint(w, p.entity, start) {
		t.Fatalf("same point should not count as a change")
	}
	if a.Requested("checkpoint") {
		t.Fatalf("clip played for an unchanged checkpoint")
	}

	next := mgl64.Vec3{10, 1, 0}
	if !SetCheckpoint(w, p.entity, next) {
		t.Fatalf("new point should count as a change")
	}
	if !a.Requested("checkpoint") {
		t.Fatalf("clip not requested for a new checkpoint")
	}
	r, _ := ecs.Get(w, p.entity, component.RespawnerComponent.Kind())
	if r.Point != next {
		t.Fatalf("respawn point %v, want %v", r.Point, next)
	}

	a.Play[1] = false
	if SetCheckpoint(w, p.entity, next) || a.Requested("checkpoint") {
		t.Fatalf("re-entering the same checkpoint should be silent")
	}
}

func TestCheckpointSystem(t *testing.T) {
	w := newPhysicsTestWorld()
	p := newTestPlayer(t, w, 3, mgl64.Vec3{0, 1, 0})

	cpEntity := ecs.CreateEntity(w)
	point := mgl64.Vec3{0, 1, 0.5}
	addBox(t, w, cpEntity, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{2, 2, 2}, component.LayerCheckpoint, false)
	mustAdd(t, w, cpEntity, component.CheckpointComponent.Kind(), &component.Checkpoint{Point: point})

	NewCheckpointSystem().Update(w)

	r, _ := ecs.Get(w, p.entity, component.RespawnerComponent.Kind())
	if r.Point != point {
		t.Fatalf("respawn point %v, want %v", r.Point, point)
	}
	if n := countEvents(w.Events().Drain(), ecs.EventCheckpointReached); n != 1 {
		t.Fatalf("expected one checkpoint event, got %d", n)
	}

	NewCheckpointSystem().Update(w)
	if n := countEvents(w.Events().Drain(), ecs.EventCheckpointReached); n != 0 {
		t.Fatalf("standing in the checkpoint should not re-fire, got %d", n)
	}
}

func TestHazardSystem(t *testing.T) {
	w := newPhysicsTestWorld()
	p := newTestPlayer(t, w, 3, mgl64.Vec3{0, 1, 0})

	spike := ecs.CreateEntity(w)
	addBox(t, w, spike, mgl64.Vec3{0, 0.5, 0}, mgl64.Vec3{1, 0.5, 1}, component.LayerHazard, false)
	mustAdd(t, w, spike, component.HazardComponent.Kind(), &component.Hazard{Damage: 1, Cooldown: 0.5})

	sched := ecs.NewScheduler(NewInvulnerabilitySystem(), NewHazardSystem())
	health, _ := ecs.Get(w, p.entity, component.HealthComponent.Kind())

	sched.Update(w, 0.25)
	if health.Current != 2 {
		t.Fatalf("health %d after first contact, want 2", health.Current)
	}
	sched.Update(w, 0.25)
	if health.Current != 2 {
		t.Fatalf("invulnerability should block the second hit, health %d", health.Current)
	}
	// 0.5s cooldown is gone after the second decrement
	sched.Update(w, 0.25)
	sched.Update(w, 0.25)
	if health.Current != 1 {
		t.Fatalf("health %d after cooldown, want 1", health.Current)
	}
}

func TestKillHeight(t *testing.T) {
	w := newPhysicsTestWorld()
	p := newTestPlayer(t, w, 3, mgl64.Vec3{0, 1, 0})
	mustAdd(t, w, p.entity, component.KillHeightComponent.Kind(), &component.KillHeight{Y: -10})

	sys := NewHazardSystem()
	sys.Update(w)
	if ecs.Has(w, p.entity, component.RespawningComponent.Kind()) {
		t.Fatalf("respawn started above the kill height")
	}

	tr, _ := ecs.Get(w, p.entity, component.TransformComponent.Kind())
	tr.Position = mgl64.Vec3{0, -11, 0}
	sys.Update(w)
	if !ecs.Has(w, p.entity, component.RespawningComponent.Kind()) {
		t.Fatalf("falling below the kill height should start a respawn")
	}
	h, _ := ecs.Get(w, p.entity, component.HealthComponent.Kind())
	if h.Current != 0 {
		t.Fatalf("kill height should be lethal, health %d", h.Current)
	}
}
