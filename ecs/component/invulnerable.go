package component

// Invulnerable makes an entity immune to hazard damage. The system counts
// Remaining seconds down each tick and removes the component at zero.
type Invulnerable struct {
	Remaining float64
}

var InvulnerableComponent = NewComponent[Invulnerable]()
