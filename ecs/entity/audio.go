package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/jewelrun/assets"
	"github.com/milk9111/jewelrun/ecs/component"
	"github.com/milk9111/jewelrun/prefabs"
)

// buildAudioComponent loads one player per clip. Silent keeps the clip
// names and flags but leaves every player nil.
func buildAudioComponent(audioSpecs []prefabs.AudioSpec, silent bool) (*component.Audio, error) {
	n := len(audioSpecs)
	if n == 0 {
		return nil, nil
	}

	names := make([]string, 0, n)
	players := make([]*audio.Player, 0, n)
	volume := make([]float64, 0, n)

	for i, clip := range audioSpecs {
		var player *audio.Player
		if !silent {
			var err error
			player, err = assets.LoadAudioPlayer(clip.File)
			if err != nil {
				return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
			}
		}
		names = append(names, clip.Name)
		players = append(players, player)
		volume = append(volume, clip.Volume)
	}

	return &component.Audio{
		Names:   names,
		Players: players,
		Volume:  volume,
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}, nil
}
