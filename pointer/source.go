// Package pointer provides the sources that feed the pointer position into
// the scene each frame.
package pointer

// Source yields the pointer position for a frame. t is the nominal time in
// seconds since the scene started; width and height are the surface size.
// ok is false when the source has nothing to report, in which case the
// previous position is kept.
type Source interface {
	Sample(t, width, height float64) (x, y float64, ok bool)
}

// Func adapts a plain function to Source.
type Func func(t, width, height float64) (float64, float64, bool)

func (f Func) Sample(t, width, height float64) (float64, float64, bool) {
	return f(t, width, height)
}

// Manual holds a position pushed by an input handler. It reports nothing
// until the first Set, so the scene keeps its default centre position.
type Manual struct {
	x, y float64
	set  bool
}

func (m *Manual) Set(x, y float64) {
	m.x, m.y, m.set = x, y, true
}

func (m *Manual) Sample(float64, float64, float64) (float64, float64, bool) {
	return m.x, m.y, m.set
}
