package component

import "github.com/go-gl/mathgl/mgl64"

type Health struct {
	Current int
	Max     int
}

var HealthComponent = NewComponent[Health]()

// Respawner configures the death and respawn sequence of an entity. Overlay
// is the ecs.Entity carrying the Fade used to mask the teleport.
type Respawner struct {
	Point          mgl64.Vec3
	Delay          float64 // seconds between death and fade-out
	FadeWait       float64 // seconds spent on each side of the teleport
	EffectLifetime float64
	Overlay        uint64
}

var RespawnerComponent = NewComponent[Respawner]()

// RespawnStage is the step a respawn sequence is waiting in.
type RespawnStage int

const (
	RespawnDisabled RespawnStage = iota
	RespawnFadingOut
	RespawnRepositioning
	RespawnFadingIn
)

func (s RespawnStage) String() string {
	switch s {
	case RespawnDisabled:
		return "disabled"
	case RespawnFadingOut:
		return "fading_out"
	case RespawnRepositioning:
		return "repositioning"
	case RespawnFadingIn:
		return "fading_in"
	}
	return "unknown"
}

// Respawning is present while a respawn sequence runs. Its presence guards
// against starting a second sequence.
type Respawning struct {
	Stage     RespawnStage
	Remaining float64
}

var RespawningComponent = NewComponent[Respawning]()
