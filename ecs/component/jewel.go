package component

// Jewel is a collectible parented under a JewelManager (an ecs.Entity).
type Jewel struct {
	Manager   uint64
	BaseY     float64
	BobHeight float64
	BobSpeed  float64
	SpinSpeed float64 // degrees per second
	Phase     float64
}

var JewelComponent = NewComponent[Jewel]()

// JewelManager tracks the jewels still to collect. Count always equals
// len(Jewels); Completed is set once when Count first reaches zero.
type JewelManager struct {
	Jewels    []uint64
	Max       int
	Count     int
	Completed bool
	Script    string
	Message   string
}

var JewelManagerComponent = NewComponent[JewelManager]()
