package assets

import (
	"encoding/binary"
	"math"
)

// Tone is a short synthesized clip: a sine per note, played one after the
// other, each with an exponential decay.
type Tone struct {
	Notes     []float64 // Hz
	NoteLen   float64   // seconds per note
	Decay     float64   // per second
	Sweep     float64   // Hz per second applied to every note
	Amplitude float64
}

var Tones = map[string]Tone{
	"death":      {Notes: []float64{440, 330, 220}, NoteLen: 0.16, Decay: 6, Sweep: -300, Amplitude: 0.5},
	"checkpoint": {Notes: []float64{523.25, 659.25, 783.99}, NoteLen: 0.09, Decay: 10, Amplitude: 0.4},
	"collect":    {Notes: []float64{987.77, 1318.51}, NoteLen: 0.07, Decay: 14, Amplitude: 0.35},
}

// Synthesize renders t as 16-bit little-endian stereo PCM, the layout
// ebiten's audio players consume.
func Synthesize(t Tone, sampleRate int) []byte {
	perNote := int(t.NoteLen * float64(sampleRate))
	if perNote <= 0 || len(t.Notes) == 0 {
		return nil
	}
	amp := math.Min(math.Max(t.Amplitude, 0), 1)

	out := make([]byte, 0, perNote*len(t.Notes)*4)
	var frame [4]byte
	for _, freq := range t.Notes {
		phase := 0.0
		for i := 0; i < perNote; i++ {
			secs := float64(i) / float64(sampleRate)
			f := math.Max(freq+t.Sweep*secs, 0)
			phase += 2 * math.Pi * f / float64(sampleRate)
			env := math.Exp(-t.Decay * secs)
			// short attack avoids a click at note start
			if attack := float64(i) / 64; attack < 1 {
				env *= attack
			}
			v := int16(math.Sin(phase) * env * amp * math.MaxInt16)
			binary.LittleEndian.PutUint16(frame[0:], uint16(v))
			binary.LittleEndian.PutUint16(frame[2:], uint16(v))
			out = append(out, frame[:]...)
		}
	}
	return out
}
