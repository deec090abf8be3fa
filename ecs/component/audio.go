package component

import "github.com/hajimehoshi/ebiten/v2/audio"

// Audio holds named clips. Systems raise Play or Stop by index; the audio
// system consumes the flags.
type Audio struct {
	Names   []string
	Players []*audio.Player
	Volume  []float64
	Play    []bool
	Stop    []bool
}

var AudioComponent = NewComponent[Audio]()

// Request raises the play flag of the named clip and reports whether the
// clip exists.
func (a *Audio) Request(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n != name {
			continue
		}
		if i < len(a.Play) {
			a.Play[i] = true
			return true
		}
	}
	return false
}

// Requested reports whether the named clip has a pending play flag.
func (a *Audio) Requested(name string) bool {
	if a == nil {
		return false
	}
	for i, n := range a.Names {
		if n == name && i < len(a.Play) {
			return a.Play[i]
		}
	}
	return false
}
