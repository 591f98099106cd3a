package system

import (
	"image/color"
	"sort"

	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
)

// ParticleSystem integrates particle velocities.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ParticleComponent, component.TransformComponent, func(_ ecs.Entity, p *component.Particle, t *component.Transform) {
		t.X += p.VX
		t.Y += p.VY
	})
}

// ParticleCapSystem enforces the emitter capacity after expired particles
// are gone, destroying the oldest survivors first.
type ParticleCapSystem struct {
	scratch []aged
}

type aged struct {
	e   ecs.Entity
	seq uint64
}

func NewParticleCapSystem() *ParticleCapSystem {
	return &ParticleCapSystem{}
}

func (s *ParticleCapSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	em, ok := ecs.Single(w, component.ParticleEmitterComponent)
	if !ok {
		return
	}
	surplus := ecs.Count(w, component.ParticleComponent) - em.Capacity
	if surplus <= 0 {
		return
	}

	s.scratch = s.scratch[:0]
	ecs.ForEach(w, component.ParticleComponent, func(e ecs.Entity, p *component.Particle) {
		s.scratch = append(s.scratch, aged{e: e, seq: p.Seq})
	})
	sort.Slice(s.scratch, func(i, j int) bool { return s.scratch[i].seq < s.scratch[j].seq })

	for _, a := range s.scratch[:surplus] {
		ecs.DestroyEntity(w, a.e)
	}
}

func colorNRGBA(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
