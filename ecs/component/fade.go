package component

// FadeDirection is the way a Fade is currently moving. A single field keeps
// fading out and fading in mutually exclusive.
type FadeDirection int

const (
	FadeIdle FadeDirection = iota
	FadeToBlack
	FadeFromBlack
)

// Fade drives the alpha of a full-screen overlay. Speed is alpha per second.
type Fade struct {
	Alpha     float64
	Speed     float64
	Direction FadeDirection
}

var FadeComponent = NewComponent[Fade]()
