package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

func TestRespawnSequence(t *testing.T) {
	w := newPhysicsTestWorld()
	p := newTestPlayer(t, w, 3, mgl64.Vec3{0, 1, 0})

	point := mgl64.Vec3{5, 1, 5}
	SetCheckpoint(w, p.entity, point)

	tr, _ := ecs.Get(w, p.entity, component.TransformComponent.Kind())
	tr.Position = mgl64.Vec3{0, -20, 0}
	mc, _ := ecs.Get(w, p.entity, component.MotionControllerComponent.Kind())
	mc.Velocity = mgl64.Vec3{0, -30, 0}

	if !ApplyDamage(w, p.entity, 3) {
		t.Fatalf("lethal damage should start a respawn")
	}
	w.Events().Drain()

	sched := ecs.NewScheduler(NewRespawnSystem(), NewFadeSystem(), NewTTLSystem())
	fade, _ := ecs.Get(w, p.overlay, component.FadeComponent.Kind())

	stage := func() (component.RespawnStage, bool) {
		rs, ok := ecs.Get(w, p.entity, component.RespawningComponent.Kind())
		if !ok {
			return 0, false
		}
		return rs.Stage, true
	}

	// delay of 1s: disabled for three ticks
	for i := 0; i < 3; i++ {
		sched.Update(w, 0.25)
		if s, ok := stage(); !ok || s != component.RespawnDisabled {
			t.Fatalf("tick %d: stage %v %v, want disabled", i, s, ok)
		}
		if fade.Alpha != 0 {
			t.Fatalf("tick %d: fade started early, alpha %v", i, fade.Alpha)
		}
	}

	sched.Update(w, 0.25) // t=1.0
	if s, _ := stage(); s != component.RespawnFadingOut {
		t.Fatalf("stage %v, want fading out", s)
	}
	if fade.Alpha != 1 {
		t.Fatalf("alpha %v, want 1", fade.Alpha)
	}
	if len(w.Query(component.DeathEffectComponent.Kind())) != 0 {
		t.Fatalf("death effect should expire after its lifetime")
	}
	if !ecs.Has(w, p.entity, component.DisabledComponent.Kind()) {
		t.Fatalf("player should stay disabled while fading out")
	}

	sched.Update(w, 0.25)
	sched.Update(w, 0.25) // t=1.5
	if s, _ := stage(); s != component.RespawnRepositioning {
		t.Fatalf("stage %v, want repositioning", s)
	}
	if tr.Position != point {
		t.Fatalf("player at %v, want %v", tr.Position, point)
	}
	if ecs.Has(w, p.entity, component.DisabledComponent.Kind()) {
		t.Fatalf("player should be enabled after repositioning")
	}
	if !mc.Enabled || mc.Velocity != (mgl64.Vec3{}) {
		t.Fatalf("motion controller not reset: %+v", mc)
	}
	health, _ := ecs.Get(w, p.entity, component.HealthComponent.Kind())
	if health.Current != health.Max {
		t.Fatalf("health %d, want %d", health.Current, health.Max)
	}
	if box, ok := w.PhysicsWorld().Box(p.entity); !ok || box.Center() != point {
		t.Fatalf("collider not restored at respawn point: %v %v", box, ok)
	}
	if ApplyDamage(w, p.entity, 5) {
		t.Fatalf("damage during the sequence must not start another")
	}

	sched.Update(w, 0.25)
	sched.Update(w, 0.25) // t=2.0
	if _, ok := stage(); ok {
		t.Fatalf("sequence should be over")
	}
	if fade.Alpha != 0 || fade.Direction != component.FadeIdle {
		t.Fatalf("overlay should be clear, alpha %v dir %v", fade.Alpha, fade.Direction)
	}
	if n := countEvents(w.Events().Drain(), ecs.EventRespawned); n != 1 {
		t.Fatalf("expected one respawn event, got %d", n)
	}

	if !ApplyDamage(w, p.entity, 3) {
		t.Fatalf("a new sequence should start once the previous one finished")
	}
}

func TestRespawnLongTickCrossesStages(t *testing.T) {
	w := newPhysicsTestWorld()
	p := newTestPlayer(t, w, 1, mgl64.Vec3{0, 1, 0})
	ApplyDamage(w, p.entity, 1)

	ecs.NewScheduler(NewRespawnSystem()).Update(w, 10)
	if ecs.Has(w, p.entity, component.RespawningComponent.Kind()) {
		t.Fatalf("a long tick should finish the whole sequence")
	}
	if ecs.Has(w, p.entity, component.DisabledComponent.Kind()) {
		t.Fatalf("player should be enabled")
	}
}

func TestFadeSystem(t *testing.T) {
	tests := []struct {
		name      string
		start     float64
		dir       component.FadeDirection
		speed, dt float64
		want      float64
		wantDir   component.FadeDirection
	}{
		{"to_black_partial", 0, component.FadeToBlack, 2, 0.25, 0.5, component.FadeToBlack},
		{"to_black_complete", 0.75, component.FadeToBlack, 2, 0.25, 1, component.FadeIdle},
		{"from_black_partial", 1, component.FadeFromBlack, 1, 0.25, 0.75, component.FadeFromBlack},
		{"from_black_complete", 0.1, component.FadeFromBlack, 1, 0.25, 0, component.FadeIdle},
		{"idle_holds", 0.4, component.FadeIdle, 1, 0.25, 0.4, component.FadeIdle},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			mustAdd(t, w, e, component.FadeComponent.Kind(), &component.Fade{Alpha: tc.start, Speed: tc.speed, Direction: tc.dir})
			ecs.NewScheduler(NewFadeSystem()).Update(w, tc.dt)

			f, _ := ecs.Get(w, e, component.FadeComponent.Kind())
			if f.Alpha != tc.want || f.Direction != tc.wantDir {
				t.Fatalf("alpha %v dir %v, want %v %v", f.Alpha, f.Direction, tc.want, tc.wantDir)
			}
		})
	}
}

func TestStartFadeReplacesDirection(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.FadeComponent.Kind(), &component.Fade{Alpha: 0.5, Speed: 1, Direction: component.FadeToBlack})

	StartFade(w, e, component.FadeFromBlack)
	f, _ := ecs.Get(w, e, component.FadeComponent.Kind())
	if f.Direction != component.FadeFromBlack {
		t.Fatalf("direction %v, want from black", f.Direction)
	}
}
