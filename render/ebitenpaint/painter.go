// Package ebitenpaint draws onto an ebiten image.
package ebitenpaint

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/glowsnake/render"
)

// glowTextureSize is the side of the cached gradient textures. Halos are
// scaled from it with linear filtering.
const glowTextureSize = 64

// Painter implements render.Painter for one ebiten image at a time. Call
// Target at the start of each Draw.
type Painter struct {
	dst   *ebiten.Image
	glows map[string]*ebiten.Image
}

func New() *Painter {
	return &Painter{glows: map[string]*ebiten.Image{}}
}

// Target points the painter at dst and returns it for chaining.
func (p *Painter) Target(dst *ebiten.Image) *Painter {
	p.dst = dst
	return p
}

func (p *Painter) Size() (float64, float64) {
	if p.dst == nil {
		return 0, 0
	}
	b := p.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (p *Painter) Clear(c color.NRGBA) {
	p.dst.Fill(c)
}

func (p *Painter) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	vector.FillCircle(p.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (p *Painter) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if width <= 0 || c.A == 0 {
		return
	}
	vector.StrokeLine(p.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (p *Painter) StrokeArc(cx, cy, r, start, end, width float64, c color.NRGBA) {
	if r <= 0 || width <= 0 || c.A == 0 {
		return
	}
	pts := render.ArcPoints(cx, cy, r, start, end, render.ArcSegments(r, end-start))
	for i := 1; i < len(pts); i++ {
		p.StrokeLine(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1], width, c)
	}
}

func (p *Painter) RadialGlow(cx, cy, r float64, c color.NRGBA, stops []render.GlowStop) {
	if r <= 0 || len(stops) == 0 {
		return
	}
	peak := 0.0
	for _, s := range stops {
		peak = math.Max(peak, s.Alpha)
	}
	if peak <= 0 {
		return
	}

	tex := p.glowTexture(stops, peak)
	half := glowTextureSize / 2.0

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-half, -half)
	op.GeoM.Scale(r/half, r/half)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(render.ScaleAlpha(c, peak))
	op.Filter = ebiten.FilterLinear
	p.dst.DrawImage(tex, op)
}

// glowTexture returns a white gradient whose alpha follows stops divided by
// peak. Stops that only differ by a common factor share a texture, so a
// pulsing halo never allocates after its first frame.
func (p *Painter) glowTexture(stops []render.GlowStop, peak float64) *ebiten.Image {
	norm := make([]render.GlowStop, len(stops))
	var key strings.Builder
	for i, s := range stops {
		norm[i] = render.GlowStop{Offset: s.Offset, Alpha: s.Alpha / peak}
		fmt.Fprintf(&key, "%.3f:%.3f;", norm[i].Offset, norm[i].Alpha)
	}
	if tex, ok := p.glows[key.String()]; ok {
		return tex
	}

	img := image.NewNRGBA(image.Rect(0, 0, glowTextureSize, glowTextureSize))
	half := glowTextureSize / 2.0
	for y := 0; y < glowTextureSize; y++ {
		for x := 0; x < glowTextureSize; x++ {
			d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			a := 0.0
			if d <= 1 {
				a = render.StopAlpha(norm, d)
			}
			img.SetNRGBA(x, y, render.WithAlpha(color.NRGBA{R: 255, G: 255, B: 255}, a))
		}
	}

	tex := ebiten.NewImageFromImage(img)
	p.glows[key.String()] = tex
	return tex
}
