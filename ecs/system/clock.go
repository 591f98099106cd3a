package system

import (
	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
)

// ClockSystem advances every clock by its fixed step.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.ClockComponent, func(_ ecs.Entity, clock *component.Clock) {
		clock.Time += clock.Step
		clock.Frame++
	})
}
