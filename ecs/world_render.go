package ecs

import "github.com/milk9111/glowsnake/render"

// Renderer draws world state each frame.
type Renderer interface {
	Draw(w *World, p render.Painter)
}

// AddRenderer appends r to the draw pass.
func (s *Scheduler) AddRenderer(r Renderer) {
	if s == nil || r == nil {
		return
	}
	s.renderers = append(s.renderers, r)
}

// Draw calls every renderer in insertion order.
func (s *Scheduler) Draw(w *World, p render.Painter) {
	if s == nil || w == nil || p == nil {
		return
	}
	for _, r := range s.renderers {
		r.Draw(w, p)
	}
}
