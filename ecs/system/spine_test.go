package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
	"github.com/milk9111/glowsnake/ecs/entity"
	"github.com/milk9111/glowsnake/prefabs"
)

func defaultSpine(x, y float64) component.Spine {
	return entity.NewSpine(prefabs.DefaultTuning().Spine, x, y)
}

func TestAdvanceSpineSteadyState(t *testing.T) {
	s := defaultSpine(500, 500)
	before := append([]component.SpineNode(nil), s.Nodes...)

	dist := AdvanceSpine(&s, 500, 500)

	assert.Zero(t, dist)
	require.Len(t, s.Nodes, 90)
	for i := range s.Nodes {
		assert.InDelta(t, before[i].X, s.Nodes[i].X, 1e-9, "node %d x", i)
		assert.InDelta(t, before[i].Y, s.Nodes[i].Y, 1e-9, "node %d y", i)
		assert.InDelta(t, 0, s.Nodes[i].Heading, 1e-12, "node %d heading", i)
	}
}

func TestAdvanceSpineHeadMovesDampedFraction(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
	}{
		{name: "right", px: 600, py: 500},
		{name: "diagonal", px: 300, py: 800},
		{name: "far", px: -4000, py: 12000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSpine(500, 500)
			dist := AdvanceSpine(&s, tt.px, tt.py)

			head := s.Head()
			assert.InDelta(t, 500+0.005*(tt.px-500), head.X, 1e-9)
			assert.InDelta(t, 500+0.005*(tt.py-500), head.Y, 1e-9)

			initial := math.Hypot(tt.px-500, tt.py-500)
			assert.InDelta(t, initial*0.995, dist, 1e-6)
		})
	}
}

func TestAdvanceSpineKeepsSpacing(t *testing.T) {
	s := defaultSpine(500, 500)
	rng := newTestRand()

	for frame := 0; frame < 2000; frame++ {
		px, py := rng.Float64()*2000-500, rng.Float64()*2000-500
		if frame%200 == 0 {
			// Pointer exactly on the head.
			head := s.Head()
			px, py = head.X, head.Y
		}
		AdvanceSpine(&s, px, py)

		for i := 1; i < len(s.Nodes); i++ {
			a, b := s.Nodes[i-1], s.Nodes[i]
			require.InDelta(t, 8, math.Hypot(a.X-b.X, a.Y-b.Y), 1e-9, "frame %d node %d", frame, i)
		}
	}
}

func TestAdvanceSpineNeverOvershoots(t *testing.T) {
	s := defaultSpine(100, 100)
	const px, py = 900.0, 400.0

	last := math.Hypot(px-s.Head().X, py-s.Head().Y)
	for frame := 0; frame < 3000; frame++ {
		dist := AdvanceSpine(&s, px, py)
		require.LessOrEqual(t, dist, last)

		// Still on the near side of the target along both axes.
		head := s.Head()
		require.LessOrEqual(t, head.X, px)
		require.LessOrEqual(t, head.Y, py)
		last = dist
	}
}

func TestAdvanceSpineHeadingPointsAtPredecessor(t *testing.T) {
	s := defaultSpine(0, 0)
	for i := 0; i < 30; i++ {
		AdvanceSpine(&s, 300, -200)
	}

	for i := 1; i < len(s.Nodes); i++ {
		prev, n := s.Nodes[i-1], s.Nodes[i]
		want := math.Atan2(prev.Y-n.Y, prev.X-n.X)
		assert.InDelta(t, want, n.Heading, 1e-9)
	}
}

func TestAdvanceSpineEmpty(t *testing.T) {
	assert.True(t, math.IsInf(AdvanceSpine(nil, 0, 0), 1))
	assert.True(t, math.IsInf(AdvanceSpine(&component.Spine{}, 0, 0), 1))
}

func TestSpineSystemColorIsLevelTriggered(t *testing.T) {
	w, scene := newTestScene(t, 1000, 1000)
	sys := NewSpineSystem(newTestRand())

	colors, ok := ecs.Get(w, scene, component.ColorStateComponent)
	require.True(t, ok)

	// The head starts on the pointer, so every update re-rolls the color.
	for i := 0; i < 5; i++ {
		sys.Update(w)
	}
	events := w.Events().Drain()
	require.Len(t, events, 5)
	for _, evt := range events {
		assert.Equal(t, ecs.EventColorChanged, evt.Type)
		assert.Equal(t, scene, evt.Entity)
		assert.Contains(t, colors.Palette, evt.Data)
	}
	assert.Equal(t, events[len(events)-1].Data, colors.Current)
}

func TestSpineSystemKeepsColorWhenFar(t *testing.T) {
	w, scene := newTestScene(t, 1000, 1000)
	sys := NewSpineSystem(newTestRand())

	p, ok := ecs.Get(w, scene, component.PointerComponent)
	require.True(t, ok)
	p.X, p.Y = 900, 900

	colors, ok := ecs.Get(w, scene, component.ColorStateComponent)
	require.True(t, ok)
	initial := colors.Current

	for i := 0; i < 10; i++ {
		sys.Update(w)
	}
	assert.Zero(t, w.Events().Len())
	assert.Equal(t, initial, colors.Current)
}

func TestSpineSystemUsesDistanceAfterMove(t *testing.T) {
	w, scene := newTestScene(t, 1000, 1000)
	sys := NewSpineSystem(newTestRand())

	// 20.05 away before the move, 19.95 after it.
	p, ok := ecs.Get(w, scene, component.PointerComponent)
	require.True(t, ok)
	p.X += 20.05

	sys.Update(w)
	assert.Equal(t, 1, w.Events().Len())
}
