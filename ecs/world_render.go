package ecs

import "github.com/hajimehoshi/ebiten/v2"

// Renderer is implemented by systems that also draw.
type Renderer interface {
	Draw(w *World, screen *ebiten.Image)
}

// AddRenderer registers a draw-only pass. Passes run after every
// render-capable system.
func (s *Scheduler) AddRenderer(r Renderer) {
	if r == nil {
		return
	}
	s.renderers = append(s.renderers, r)
}

// Draw calls every render-capable system in registration order, then the
// draw-only passes.
func (s *Scheduler) Draw(w *World, screen *ebiten.Image) {
	if s == nil || w == nil || screen == nil {
		return
	}
	for _, system := range s.systems {
		if r, ok := system.(Renderer); ok {
			r.Draw(w, screen)
		}
	}
	for _, r := range s.renderers {
		r.Draw(w, screen)
	}
}
