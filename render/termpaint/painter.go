// Package termpaint renders onto a terminal cell grid. Every cell stands for
// a CellWidth x CellHeight block of surface pixels; halos and translucent
// strokes tint cell backgrounds, opaque strokes and dots become glyphs.
package termpaint

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/milk9111/glowsnake/render"
)

const (
	CellWidth  = 8
	CellHeight = 16
)

// Screen is the part of tcell.Screen the painter writes to.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type cell struct {
	bg    colorful.Color
	fg    colorful.Color
	glyph rune
}

// Painter accumulates one frame in memory; Flush copies it to a Screen.
type Painter struct {
	cols, rows int
	cells      []cell
}

func New(cols, rows int) *Painter {
	p := &Painter{}
	p.Resize(cols, rows)
	return p
}

// Resize changes the grid size, dropping the current frame.
func (p *Painter) Resize(cols, rows int) {
	p.cols, p.rows = max(cols, 0), max(rows, 0)
	p.cells = make([]cell, p.cols*p.rows)
}

// Grid returns the grid size in cells.
func (p *Painter) Grid() (int, int) {
	return p.cols, p.rows
}

func (p *Painter) Size() (float64, float64) {
	return float64(p.cols * CellWidth), float64(p.rows * CellHeight)
}

func (p *Painter) Clear(c color.NRGBA) {
	bg := toColorful(c)
	for i := range p.cells {
		p.cells[i] = cell{bg: bg, fg: bg, glyph: ' '}
	}
}

func (p *Painter) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	glyph := '•'
	if r >= CellWidth/2 {
		glyph = '●'
	}
	hit := false
	p.eachCellWithin(cx, cy, r, func(ce *cell, _ float64) {
		p.putGlyph(ce, glyph, c)
		hit = true
	})
	if !hit {
		if ce := p.cellAt(cx, cy); ce != nil {
			p.putGlyph(ce, glyph, c)
		}
	}
}

func (p *Painter) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	if c.A == 0 || width <= 0 {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	steps := int(math.Ceil(length/(CellWidth/2))) + 1

	if c.A < 128 || width > CellWidth {
		// Bloom and other soft strokes only tint what is underneath.
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			p.eachCellWithin(x0+dx*t, y0+dy*t, width/2, func(ce *cell, _ float64) {
				ce.bg = blend(ce.bg, c, 0.5)
			})
		}
		return
	}

	glyph := lineGlyph(dx, dy)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if ce := p.cellAt(x0+dx*t, y0+dy*t); ce != nil {
			p.putGlyph(ce, glyph, c)
		}
	}
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

func (p *Painter) RadialGlow(cx, cy, r float64, c color.NRGBA, stops []render.GlowStop) {
	if r <= 0 {
		return
	}
	base := float64(c.A) / 255
	p.eachCellWithin(cx, cy, r, func(ce *cell, d float64) {
		ce.bg = blend(ce.bg, c, render.StopAlpha(stops, d/r)*base)
	})
}

// Flush writes the frame to screen. The caller still calls Show.
func (p *Painter) Flush(screen Screen) {
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			ce := p.cells[row*p.cols+col]
			style := tcell.StyleDefault.
				Background(tcellColor(ce.bg)).
				Foreground(tcellColor(ce.fg))
			screen.SetContent(col, row, ce.glyph, nil, style)
		}
	}
}

// Cell returns the glyph and colors at a grid position, for tests and
// debugging.
func (p *Painter) Cell(col, row int) (rune, color.NRGBA, color.NRGBA) {
	if col < 0 || row < 0 || col >= p.cols || row >= p.rows {
		return 0, color.NRGBA{}, color.NRGBA{}
	}
	ce := p.cells[row*p.cols+col]
	return ce.glyph, toNRGBA(ce.fg), toNRGBA(ce.bg)
}

func (p *Painter) cellAt(x, y float64) *cell {
	col := int(math.Floor(x / CellWidth))
	row := int(math.Floor(y / CellHeight))
	if col < 0 || row < 0 || col >= p.cols || row >= p.rows {
		return nil
	}
	return &p.cells[row*p.cols+col]
}

// eachCellWithin visits cells whose centre lies within r pixels of (x, y),
// passing the distance.
func (p *Painter) eachCellWithin(x, y, r float64, fn func(*cell, float64)) {
	c0 := max(0, int(math.Floor((x-r)/CellWidth)))
	c1 := min(p.cols-1, int(math.Floor((x+r)/CellWidth)))
	r0 := max(0, int(math.Floor((y-r)/CellHeight)))
	r1 := min(p.rows-1, int(math.Floor((y+r)/CellHeight)))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			mx := (float64(col) + 0.5) * CellWidth
			my := (float64(row) + 0.5) * CellHeight
			if d := math.Hypot(mx-x, my-y); d <= r {
				fn(&p.cells[row*p.cols+col], d)
			}
		}
	}
}

func (p *Painter) putGlyph(ce *cell, glyph rune, c color.NRGBA) {
	ce.glyph = glyph
	ce.fg = blend(ce.bg, c, float64(c.A)/255)
}

func lineGlyph(dx, dy float64) rune {
	a := math.Atan2(dy, dx)
	if a < 0 {
		a += math.Pi
	}
	switch {
	case a < math.Pi/8 || a >= 7*math.Pi/8:
		return '─'
	case a < 3*math.Pi/8:
		return '╲'
	case a < 5*math.Pi/8:
		return '│'
	default:
		return '╱'
	}
}

func blend(dst colorful.Color, c color.NRGBA, a float64) colorful.Color {
	if a <= 0 {
		return dst
	}
	return dst.BlendRgb(toColorful(c), math.Min(a, 1))
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
