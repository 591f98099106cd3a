package system

import (
	"math"
	"math/rand/v2"

	"github.com/milk9111/glowsnake/common"
	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
)

// SpineSystem pulls the spine toward the pointer and recolors the glow while
// the head is close to it.
type SpineSystem struct {
	rng *rand.Rand
}

func NewSpineSystem(rng *rand.Rand) *SpineSystem {
	return &SpineSystem{rng: rng}
}

func (s *SpineSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.SpineComponent, component.PointerComponent, func(e ecs.Entity, spine *component.Spine, p *component.Pointer) {
		dist := AdvanceSpine(spine, p.X, p.Y)

		// Level-triggered: this fires on every frame the head stays inside
		// the radius, not only on entry.
		if dist >= spine.ColorRadius {
			return
		}
		colors, ok := ecs.Get(w, e, component.ColorStateComponent)
		if !ok || len(colors.Palette) == 0 {
			return
		}
		colors.Current = colors.Palette[s.rng.IntN(len(colors.Palette))]
		w.Events().Push(ecs.Event{Type: ecs.EventColorChanged, Entity: e, Data: colors.Current})
	})
}

// AdvanceSpine moves node 0 a Damping fraction of the way to (px, py), then
// re-lays every following node exactly Spacing behind its predecessor along
// the line between them. It returns the head's remaining distance to the
// target.
func AdvanceSpine(s *component.Spine, px, py float64) float64 {
	if s == nil || len(s.Nodes) == 0 {
		return math.Inf(1)
	}

	head := &s.Nodes[0]
	head.X = common.Lerp(head.X, px, s.Damping)
	head.Y = common.Lerp(head.Y, py, s.Damping)
	dist := math.Hypot(px-head.X, py-head.Y)

	for i := 1; i < len(s.Nodes); i++ {
		prev := s.Nodes[i-1]
		n := &s.Nodes[i]
		a := math.Atan2(prev.Y-n.Y, prev.X-n.X)
		n.X = prev.X - math.Cos(a)*s.Spacing
		n.Y = prev.Y - math.Sin(a)*s.Spacing
		n.Heading = a
	}

	return dist
}
