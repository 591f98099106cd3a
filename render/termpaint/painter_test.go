package termpaint

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/glowsnake/render"
)

type fakeScreen struct {
	cells map[[2]int]rune
}

func (f *fakeScreen) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	f.cells[[2]int{x, y}] = primary
}

var black = color.NRGBA{A: 255}

func TestSizeIsGridTimesCell(t *testing.T) {
	p := New(10, 5)
	w, h := p.Size()
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 80.0, h)

	p.Resize(-1, 3)
	cols, rows := p.Grid()
	assert.Equal(t, 0, cols)
	assert.Equal(t, 3, rows)
}

func TestStrokeLineGlyphs(t *testing.T) {
	p := New(10, 4)
	p.Clear(black)
	p.StrokeLine(4, 8, 76, 8, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	glyph, fg, _ := p.Cell(5, 0)
	assert.Equal(t, '─', glyph)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, fg)

	p.StrokeLine(4, 8, 4, 60, 1, color.NRGBA{R: 255, A: 255})
	glyph, _, _ = p.Cell(0, 2)
	assert.Equal(t, '│', glyph)
}

func TestSoftStrokeTintsBackground(t *testing.T) {
	p := New(10, 4)
	p.Clear(black)
	p.StrokeLine(4, 24, 76, 24, 12, color.NRGBA{G: 255, A: 60})

	glyph, _, bg := p.Cell(5, 1)
	assert.Equal(t, ' ', glyph)
	assert.Greater(t, bg.G, uint8(0))
}

func TestRadialGlowAndDot(t *testing.T) {
	p := New(20, 10)
	p.Clear(black)
	stops := []render.GlowStop{{Offset: 0, Alpha: 1}, {Offset: 1, Alpha: 0}}
	p.RadialGlow(84, 88, 40, color.NRGBA{B: 255, A: 255}, stops)
	p.FillCircle(84, 88, 2, color.NRGBA{R: 255, A: 255})

	glyph, fg, bg := p.Cell(10, 5)
	assert.Equal(t, '•', glyph)
	assert.Equal(t, uint8(255), fg.R)
	assert.Greater(t, bg.B, uint8(200))

	_, _, far := p.Cell(0, 0)
	assert.Equal(t, uint8(0), far.B)

	glyph, _, _ = p.Cell(-1, 0)
	assert.Equal(t, rune(0), glyph)
}

func TestFlushWritesEveryCell(t *testing.T) {
	p := New(3, 2)
	p.Clear(black)
	p.FillCircle(12, 8, 1, color.NRGBA{R: 255, A: 255})

	screen := &fakeScreen{cells: map[[2]int]rune{}}
	p.Flush(screen)

	require.Len(t, screen.cells, 6)
	assert.Equal(t, '•', screen.cells[[2]int{1, 0}])
	assert.Equal(t, ' ', screen.cells[[2]int{0, 1}])
}
