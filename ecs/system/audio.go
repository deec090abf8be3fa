package system

import (
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

// AudioSystem starts and stops clips flagged on Audio components.
type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(_ ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Play), len(audioComp.Players))

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil {
				if i < len(audioComp.Volume) {
					player.SetVolume(audioComp.Volume[i])
				}
				// sounds are one-shots; restart if still playing
				_ = player.Rewind()
				player.Play()
			}

			audioComp.Play[i] = false
		}

		stops := min(len(audioComp.Stop), len(audioComp.Players))
		for i := 0; i < stops; i++ {
			if !audioComp.Stop[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}

			audioComp.Stop[i] = false
		}
	})
}
