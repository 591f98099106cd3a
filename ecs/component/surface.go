package component

// Surface is the drawing surface size in pixels.
type Surface struct {
	Width  float64
	Height float64
}

// Center returns the middle of the surface.
func (s Surface) Center() (float64, float64) {
	return s.Width / 2, s.Height / 2
}

var SurfaceComponent = NewComponent[Surface]()
