package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
	"github.com/milk9111/glowsnake/ecs/entity"
	"github.com/milk9111/glowsnake/render"
)

func lastIndex(calls []render.Call, op render.Op) int {
	idx := -1
	for i, c := range calls {
		if c.Op == op {
			idx = i
		}
	}
	return idx
}

func firstIndex(calls []render.Call, op render.Op) int {
	for i, c := range calls {
		if c.Op == op {
			return i
		}
	}
	return -1
}

func TestRenderSystemDrawOrder(t *testing.T) {
	w, _ := newTestScene(t, 1000, 1000)
	_, err := entity.NewParticle(w, 1, 1, component.Particle{Size: 3, Color: colorNRGBA(255, 0, 0)}, 25)
	require.NoError(t, err)

	rec := render.NewRecorder(1000, 1000)
	NewRenderSystem().Draw(w, rec)

	calls := rec.Calls
	require.NotEmpty(t, calls)
	assert.Equal(t, render.OpClear, calls[0].Op)

	glows := rec.Filter(render.OpRadialGlow)
	assert.Len(t, glows, 90)

	// 89 body segments plus two ribs at nodes 10, 15, ..., 85, drawn by
	// three bloom passes and the core pass, plus the head spike per pass.
	assert.Len(t, rec.Filter(render.OpStrokeLine), (89+32)*4+4)
	assert.Len(t, rec.Filter(render.OpStrokeArc), 2*4)
	// Two eyes and one particle.
	assert.Len(t, rec.Filter(render.OpFillCircle), 3)

	assert.Less(t, lastIndex(calls, render.OpRadialGlow), firstIndex(calls, render.OpStrokeLine))
	assert.Less(t, lastIndex(calls, render.OpStrokeLine), firstIndex(calls, render.OpFillCircle))
	assert.Equal(t, 3.0, calls[len(calls)-1].Args[2], "particle drawn last")
}

func TestRenderSystemGlowPulse(t *testing.T) {
	w, scene := newTestScene(t, 1000, 1000)
	clock, ok := ecs.Get(w, scene, component.ClockComponent)
	require.True(t, ok)
	clock.Time = 1.3

	colors, ok := ecs.Get(w, scene, component.ColorStateComponent)
	require.True(t, ok)

	rec := render.NewRecorder(1000, 1000)
	NewRenderSystem().Draw(w, rec)

	for i, c := range rec.Filter(render.OpRadialGlow) {
		g := math.Sin(1.3+float64(i)*0.25)*0.5 + 0.5
		assert.Equal(t, 18.0, c.Args[2])
		assert.Equal(t, colors.Current, c.Color)
		require.Len(t, c.Stops, 3)
		assert.InDelta(t, 0.25*g, c.Stops[0].Alpha, 1e-12)
		assert.InDelta(t, 0.18*g, c.Stops[1].Alpha, 1e-12)
		assert.Equal(t, render.GlowStop{Offset: 1}, c.Stops[2])
	}
}

func TestRenderSystemRibsArePerpendicular(t *testing.T) {
	w, scene := newTestScene(t, 1000, 1000)
	spine, ok := ecs.Get(w, scene, component.SpineComponent)
	require.True(t, ok)

	rec := render.NewRecorder(1000, 1000)
	NewRenderSystem().Draw(w, rec)

	// The core skeleton pass is followed by the four head spike strokes.
	lines := rec.Filter(render.OpStrokeLine)
	core := lines[len(lines)-4-(89+32) : len(lines)-4]
	ribs := core[89:]
	require.Len(t, ribs, 32)

	n := spine.Nodes[10]
	assert.Equal(t, []float64{n.X, n.Y, n.X, n.Y + 7, 1.3}, roundArgs(ribs[0].Args))
	assert.Equal(t, []float64{n.X, n.Y, n.X, n.Y - 7, 1.3}, roundArgs(ribs[1].Args))
}

func roundArgs(args []float64) []float64 {
	out := make([]float64, len(args))
	for i, a := range args {
		out[i] = math.Round(a*1e6) / 1e6
	}
	return out
}

func TestResolveHeadOrientsTowardPointer(t *testing.T) {
	look := entity.LookFromSpec(testTuning()).Head
	g := ResolveHead(component.SpineNode{}, component.Pointer{X: 0, Y: 100}, look, 0)

	assert.InDelta(t, math.Pi/2, g.Angle, 1e-12)
	assert.InDelta(t, 0, g.CX, 1e-9)
	assert.InDelta(t, -5, g.CY, 1e-9)
	assert.InDelta(t, 18, g.Radius, 1e-12)
	assert.InDelta(t, math.Pi, g.Arcs[0][0], 1e-12)
	assert.InDelta(t, 2*math.Pi, g.Arcs[0][1], 1e-12)
	assert.InDelta(t, 0, g.Arcs[1][0], 1e-12)
	assert.InDelta(t, math.Pi, g.Arcs[1][1], 1e-12)

	assert.InDelta(t, 0, g.Spike[1][0], 1e-9)
	assert.InDelta(t, 18, g.Spike[1][1], 1e-9)

	assert.InDelta(t, 4, g.Eyes[0][0], 1e-9)
	assert.InDelta(t, 8, g.Eyes[0][1], 1e-9)
	assert.InDelta(t, -4, g.Eyes[1][0], 1e-9)
	assert.InDelta(t, 8, g.Eyes[1][1], 1e-9)
}

func TestResolveHeadPulses(t *testing.T) {
	look := entity.LookFromSpec(testTuning()).Head
	tm := math.Pi / 2 / 1.6

	g := ResolveHead(component.SpineNode{}, component.Pointer{X: 1}, look, tm)
	assert.InDelta(t, 20, g.Radius, 1e-9)
}

func TestRenderSystemParticlesOldestOnTop(t *testing.T) {
	w, _ := newTestScene(t, 100, 100)
	for seq := uint64(0); seq < 3; seq++ {
		_, err := entity.NewParticle(w, 0, 0, component.Particle{Seq: seq, Size: float64(seq + 1), Color: colorNRGBA(0, 0, 255)}, 25)
		require.NoError(t, err)
	}

	rec := render.NewRecorder(100, 100)
	NewRenderSystem().Draw(w, rec)

	circles := rec.Filter(render.OpFillCircle)
	particles := circles[len(circles)-3:]
	assert.Equal(t, 3.0, particles[0].Args[2])
	assert.Equal(t, 2.0, particles[1].Args[2])
	assert.Equal(t, 1.0, particles[2].Args[2])
	for _, c := range particles {
		assert.Equal(t, uint8(128), c.Color.A, "half of the 50 frame life left")
	}
}

func TestParticleAlpha(t *testing.T) {
	assert.Equal(t, 0.5, ParticleAlpha(25, 50))
	assert.Equal(t, 1.0, ParticleAlpha(80, 50))
	assert.Equal(t, 0.0, ParticleAlpha(-1, 50))
	assert.Equal(t, 1.0, ParticleAlpha(10, 0))
}

func TestRenderSystemWithoutScene(t *testing.T) {
	rec := render.NewRecorder(10, 10)
	NewRenderSystem().Draw(ecs.NewWorld(), rec)
	assert.Empty(t, rec.Calls)
}
