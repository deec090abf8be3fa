package component

// Hazard damages the player on overlap. Cooldown is the invulnerability
// granted afterwards, in seconds.
type Hazard struct {
	Damage   int
	Cooldown float64
}

var HazardComponent = NewComponent[Hazard]()

// KillHeight damages its owner with Damage whenever it falls below Y.
type KillHeight struct {
	Y      float64
	Damage int
}

var KillHeightComponent = NewComponent[KillHeight]()
