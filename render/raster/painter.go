// Package raster draws into an in-memory RGBA image with the
// golang.org/x/image/vector rasteriser. It has no display dependency and is
// used for headless recording.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/milk9111/glowsnake/common"
	"github.com/milk9111/glowsnake/render"
)

type Painter struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func New(width, height int) *Painter {
	z := vector.NewRasterizer(1, 1)
	z.DrawOp = draw.Over
	return &Painter{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   z,
	}
}

// Image returns the backing image. It is reused across frames.
func (p *Painter) Image() *image.RGBA {
	return p.img
}

func (p *Painter) Size() (float64, float64) {
	b := p.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (p *Painter) Clear(c color.NRGBA) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (p *Painter) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	pts := render.ArcPoints(cx, cy, r, 0, 2*math.Pi, render.ArcSegments(r, 2*math.Pi))
	p.fillPolygon(pts, c)
}

func (p *Painter) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if width <= 0 || c.A == 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	p.fillPolygon([][2]float64{
		{x0 + nx, y0 + ny},
		{x1 + nx, y1 + ny},
		{x1 - nx, y1 - ny},
		{x0 - nx, y0 - ny},
	}, c)
}

func (p *Painter) StrokeArc(cx, cy, r, start, end, width float64, c color.NRGBA) {
	if r <= 0 {
		return
	}
	pts := render.ArcPoints(cx, cy, r, start, end, render.ArcSegments(r, end-start))
	for i := 1; i < len(pts); i++ {
		p.StrokeLine(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1], width, c)
	}
}

// RadialGlow builds an alpha mask over the glow's bounding box and composites
// the solid color through it.
func (p *Painter) RadialGlow(cx, cy, r float64, c color.NRGBA, stops []render.GlowStop) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	box := image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r)), int(math.Ceil(cy+r)),
	).Intersect(p.img.Bounds())
	if box.Empty() {
		return
	}

	base := float64(c.A) / 255
	c.A = 255
	mask := image.NewAlpha(box)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / r
			if d > 1 {
				continue
			}
			a := render.StopAlpha(stops, d) * base
			mask.SetAlpha(x, y, color.Alpha{A: uint8(math.Round(common.Clamp(a, 0, 1) * 255))})
		}
	}
	draw.DrawMask(p.img, box, image.NewUniform(c), image.Point{}, mask, box.Min, draw.Over)
}

// fillPolygon rasterises pts inside their clipped bounding box only, so the
// cost scales with the shape rather than the surface.
func (p *Painter) fillPolygon(pts [][2]float64, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	minX, minY := pts[0][0], pts[0][1]
	maxX, maxY := minX, minY
	for _, pt := range pts[1:] {
		minX, maxX = math.Min(minX, pt[0]), math.Max(maxX, pt[0])
		minY, maxY = math.Min(minY, pt[1]), math.Max(maxY, pt[1])
	}
	box := image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	).Intersect(p.img.Bounds())
	if box.Empty() {
		return
	}

	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	p.z.Reset(box.Dx(), box.Dy())
	p.z.DrawOp = draw.Over
	p.z.MoveTo(float32(pts[0][0]-ox), float32(pts[0][1]-oy))
	for _, pt := range pts[1:] {
		p.z.LineTo(float32(pt[0]-ox), float32(pt[1]-oy))
	}
	p.z.ClosePath()
	p.z.Draw(p.img, box, image.NewUniform(c), image.Point{})
}
