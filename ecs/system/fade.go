package system

import (
	"github.com/milk9111/jewelrun/common"
	"github.com/milk9111/jewelrun/ecs"
	"github.com/milk9111/jewelrun/ecs/component"
)

// FadeSystem moves overlay alpha toward black or clear.
type FadeSystem struct{}

func NewFadeSystem() *FadeSystem { return &FadeSystem{} }

func (s *FadeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.DeltaTime()

	ecs.ForEach(w, component.FadeComponent.Kind(), func(_ ecs.Entity, f *component.Fade) {
		step := f.Speed * dt
		switch f.Direction {
		case component.FadeToBlack:
			f.Alpha = common.MoveTowards(f.Alpha, 1, step)
			if f.Alpha == 1 {
				f.Direction = component.FadeIdle
			}
		case component.FadeFromBlack:
			f.Alpha = common.MoveTowards(f.Alpha, 0, step)
			if f.Alpha == 0 {
				f.Direction = component.FadeIdle
			}
		}
	})
}

// StartFade points the overlay's fade in a new direction, replacing any fade
// already in progress.
func StartFade(w *ecs.World, overlay ecs.Entity, dir component.FadeDirection) {
	if f, ok := ecs.Get(w, overlay, component.FadeComponent.Kind()); ok {
		f.Direction = dir
	}
}
