package component

// Input stores per-tick input state for an entity. LookX/LookY are pointer
// or right-stick deltas already scaled by the configured sensitivity.
type Input struct {
	MoveX       float64
	MoveZ       float64
	Jump        bool
	JumpPressed bool
	LookX       float64
	LookY       float64
	ToggleView  bool
	Damage      bool
	Heal        bool
}

var InputComponent = NewComponent[Input]()
