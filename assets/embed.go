package assets

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Dir is where on-disk sound overrides are looked up.
const Dir = "assets"

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

func audioCtx() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// LoadAudioPlayer returns a player for the named clip. A WAV file at
// assets/<name>.wav replaces the built-in tone.
func LoadAudioPlayer(name string) (*audio.Player, error) {
	clean := cleanAssetPath(name)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty clip name")
	}

	if b, err := os.ReadFile(filepath.Join(Dir, clean+".wav")); err == nil {
		stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("assets: decode wav %q: %w", name, err)
		}
		return audioCtx().NewPlayer(stream)
	}

	tone, ok := Tones[clean]
	if !ok {
		return nil, fmt.Errorf("assets: unknown clip %q", name)
	}
	return audioCtx().NewPlayerFromBytes(Synthesize(tone, SampleRate)), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	s = strings.TrimPrefix(s, Dir+"/")
	return strings.TrimSuffix(s, filepath.Ext(s))
}
