// Package render defines the drawing surface the scene renders onto and the
// helpers shared by its backends.
package render

import (
	"image/color"
	"math"
)

// GlowStop is one stop of a radial gradient: at Offset (0 at the centre, 1
// at the rim) the glow color is drawn with Alpha.
type GlowStop struct {
	Offset float64
	Alpha  float64
}

// Painter is a 2D drawing surface. Coordinates are surface pixels with y
// pointing down; angles are radians measured clockwise from +x, matching the
// canvas convention.
type Painter interface {
	Size() (width, height float64)
	Clear(c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	// StrokeArc draws the arc from start to end going in the direction of
	// increasing angle.
	StrokeArc(cx, cy, r, start, end, width float64, c color.NRGBA)
	// RadialGlow fills a disc of radius r whose alpha follows stops. Stops
	// must be sorted by Offset.
	RadialGlow(cx, cy, r float64, c color.NRGBA, stops []GlowStop)
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = alphaByte(a)
	return c
}

// ScaleAlpha multiplies the alpha of c by a.
func ScaleAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = alphaByte(float64(c.A) / 255 * a)
	return c
}

func alphaByte(a float64) uint8 {
	if math.IsNaN(a) || a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(math.Round(a * 255))
}

// StopAlpha evaluates stops at offset t, interpolating linearly between
// neighbours and clamping outside the first and last stop.
func StopAlpha(stops []GlowStop, t float64) float64 {
	if len(stops) == 0 {
		return 0
	}
	if t <= stops[0].Offset {
		return stops[0].Alpha
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Alpha
			}
			f := (t - a.Offset) / span
			return a.Alpha + (b.Alpha-a.Alpha)*f
		}
	}
	return stops[len(stops)-1].Alpha
}

// ArcSegments picks how many straight segments approximate an arc so that
// each segment spans roughly 3 pixels.
func ArcSegments(r, sweep float64) int {
	n := int(math.Ceil(math.Abs(sweep) * r / 3))
	if n < 4 {
		n = 4
	}
	if n > 256 {
		n = 256
	}
	return n
}

// ArcPoints returns n+1 points along the arc from start to end.
func ArcPoints(cx, cy, r, start, end float64, n int) [][2]float64 {
	pts := make([][2]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		a := start + (end-start)*float64(i)/float64(n)
		pts = append(pts, [2]float64{cx + math.Cos(a)*r, cy + math.Sin(a)*r})
	}
	return pts
}
