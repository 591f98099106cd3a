package entity

import (
	"fmt"

	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
)

// NewParticle spawns one particle entity at (x, y) living for life frames.
func NewParticle(w *ecs.World, x, y float64, p component.Particle, life float64) (ecs.Entity, error) {
	return ecs.BuildEntity(w, func(e ecs.Entity) error {
		if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
			return fmt.Errorf("particle: add transform: %w", err)
		}
		if err := ecs.Add(w, e, component.ParticleComponent, &p); err != nil {
			return fmt.Errorf("particle: add particle: %w", err)
		}
		if err := ecs.Add(w, e, component.TTLComponent, &component.TTL{Frames: life}); err != nil {
			return fmt.Errorf("particle: add ttl: %w", err)
		}
		return nil
	})
}
