package system

import (
	"log"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
	"github.com/milk9111/glowsnake/ecs/entity"
)

// ParticleSpawnSystem emits PerFrame particles at the pointer each update.
type ParticleSpawnSystem struct {
	rng *rand.Rand
}

func NewParticleSpawnSystem(rng *rand.Rand) *ParticleSpawnSystem {
	return &ParticleSpawnSystem{rng: rng}
}

func (s *ParticleSpawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ParticleEmitterComponent, component.PointerComponent, func(_ ecs.Entity, em *component.ParticleEmitter, p *component.Pointer) {
		for i := 0; i < em.PerFrame; i++ {
			if _, err := s.Spawn(w, em, p.X, p.Y); err != nil {
				log.Printf("particles: spawn: %v", err)
				return
			}
		}
	})
}

// Spawn creates one particle at (x, y) with velocity in [-Speed, Speed) on
// each axis, a random life, a random fully saturated hue and a random size.
func (s *ParticleSpawnSystem) Spawn(w *ecs.World, em *component.ParticleEmitter, x, y float64) (ecs.Entity, error) {
	hue := s.rng.Float64() * 360
	r, g, b := colorful.Hsl(hue, em.Saturation, em.Lightness).Clamped().RGB255()

	p := component.Particle{
		VX:    (s.rng.Float64()*2 - 1) * em.Speed,
		VY:    (s.rng.Float64()*2 - 1) * em.Speed,
		Color: colorNRGBA(r, g, b),
		Size:  em.SizeMin + s.rng.Float64()*(em.SizeMax-em.SizeMin),
		Seq:   em.NextSeq,
	}
	life := em.LifeMin + s.rng.Float64()*(em.LifeMax-em.LifeMin)

	e, err := entity.NewParticle(w, x, y, p, life)
	if err != nil {
		return 0, err
	}
	em.NextSeq++
	return e, nil
}
