package scene

import (
	"fmt"
	"image/color"

	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
)

// Stats is a snapshot of the scene for debug overlays and logs.
type Stats struct {
	Frame     uint64
	Time      float64
	Particles int
	HeadX     float64
	HeadY     float64
	PointerX  float64
	PointerY  float64
	Color     color.NRGBA
}

func (s *Scene) Stats() Stats {
	var st Stats
	if s == nil {
		return st
	}

	w := s.world
	if clock, ok := ecs.Get(w, s.entity, component.ClockComponent); ok {
		st.Frame, st.Time = clock.Frame, clock.Time
	}
	if spine, ok := ecs.Get(w, s.entity, component.SpineComponent); ok {
		head := spine.Head()
		st.HeadX, st.HeadY = head.X, head.Y
	}
	if p, ok := ecs.Get(w, s.entity, component.PointerComponent); ok {
		st.PointerX, st.PointerY = p.X, p.Y
	}
	if colors, ok := ecs.Get(w, s.entity, component.ColorStateComponent); ok {
		st.Color = colors.Current
	}
	st.Particles = ecs.Count(w, component.ParticleComponent)
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("frame %d  particles %d  head (%.1f, %.1f)  pointer (%.0f, %.0f)  color #%02x%02x%02x",
		st.Frame, st.Particles, st.HeadX, st.HeadY, st.PointerX, st.PointerY, st.Color.R, st.Color.G, st.Color.B)
}
