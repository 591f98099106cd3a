package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
	"github.com/milk9111/glowsnake/pointer"
)

func TestPointerSystemSamplesSource(t *testing.T) {
	w, scene := newTestScene(t, 640, 480)
	clock, ok := ecs.Get(w, scene, component.ClockComponent)
	require.True(t, ok)
	clock.Frame = 120

	var gotT, gotW, gotH float64
	sys := NewPointerSystem(pointer.Func(func(t, width, height float64) (float64, float64, bool) {
		gotT, gotW, gotH = t, width, height
		return 12, 34, true
	}))
	sys.Update(w)

	assert.Equal(t, 2.0, gotT)
	assert.Equal(t, 640.0, gotW)
	assert.Equal(t, 480.0, gotH)

	p, ok := ecs.Get(w, scene, component.PointerComponent)
	require.True(t, ok)
	assert.Equal(t, component.Pointer{X: 12, Y: 34, Sampled: true}, *p)
}

func TestPointerSystemKeepsPositionWithoutSample(t *testing.T) {
	w, scene := newTestScene(t, 640, 480)
	manual := &pointer.Manual{}
	sys := NewPointerSystem(manual)

	sys.Update(w)
	p, ok := ecs.Get(w, scene, component.PointerComponent)
	require.True(t, ok)
	assert.Equal(t, component.Pointer{X: 320, Y: 240}, *p)

	manual.Set(5, 6)
	sys.Update(w)
	assert.Equal(t, component.Pointer{X: 5, Y: 6, Sampled: true}, *p)

	sys.SetSource(nil)
	sys.Update(w)
	assert.Equal(t, component.Pointer{X: 5, Y: 6, Sampled: true}, *p)
}

func TestClockSystemAdvances(t *testing.T) {
	w, scene := newTestScene(t, 10, 10)
	sys := NewClockSystem()
	for i := 0; i < 10; i++ {
		sys.Update(w)
	}

	clock, ok := ecs.Get(w, scene, component.ClockComponent)
	require.True(t, ok)
	assert.InDelta(t, 0.7, clock.Time, 1e-9)
	assert.Equal(t, uint64(10), clock.Frame)
}
