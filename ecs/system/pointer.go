package system

import (
	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
	"github.com/milk9111/glowsnake/pointer"
)

// nominalFPS converts frame counts into the seconds handed to pointer
// sources.
const nominalFPS = 60.0

// PointerSystem copies the source position into the scene pointer. A nil
// source or a sample with ok=false leaves the pointer where it is.
type PointerSystem struct {
	source pointer.Source
}

func NewPointerSystem(source pointer.Source) *PointerSystem {
	return &PointerSystem{source: source}
}

// SetSource swaps the source, e.g. after a script reload.
func (s *PointerSystem) SetSource(source pointer.Source) {
	s.source = source
}

func (s *PointerSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}

	scene, ok := ecs.First(w, component.SceneTagComponent)
	if !ok {
		return
	}
	p, ok := ecs.Get(w, scene, component.PointerComponent)
	if !ok {
		return
	}

	var width, height, t float64
	if surface, ok := ecs.Get(w, scene, component.SurfaceComponent); ok {
		width, height = surface.Width, surface.Height
	}
	if clock, ok := ecs.Get(w, scene, component.ClockComponent); ok {
		t = float64(clock.Frame) / nominalFPS
	}

	if x, y, ok := s.source.Sample(t, width, height); ok {
		p.X, p.Y = x, y
		p.Sampled = true
	}
}
