package system

import (
	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
)

// TTLSystem takes one frame off every TTL and destroys the entity in the
// same update its TTL stops being positive.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent, func(e ecs.Entity, ttl *component.TTL) {
		ttl.Frames--
		if ttl.Frames <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}
