package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/glowsnake/render/ebitenpaint"
)

type windowOptions struct {
	width       int
	height      int
	baseMonitor bool
}

type Game struct {
	app     *app
	painter *ebitenpaint.Painter
	debug   bool

	width, height float64
}

func NewGame(a *app, debug bool) *Game {
	if !a.usesScript() {
		a.scene.SetPointerSource(&cursorSource{})
	}
	w, h := a.scene.Size()
	return &Game{
		app:     a,
		painter: ebitenpaint.New(),
		debug:   debug,
		width:   w,
		height:  h,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	g.app.poll()
	g.app.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.app.scene.Draw(g.painter.Target(screen))

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f\n%s", ebiten.ActualFPS(), g.app.scene.Stats()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.app.scene.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// cursorSource follows the mouse once it has moved. Until then the scene
// keeps the pointer on the surface centre, through resizes, instead of
// jumping to wherever the cursor sat at launch.
type cursorSource struct {
	last   image.Point
	primed bool
	moved  bool
}

func (c *cursorSource) Sample(float64, float64, float64) (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	return c.observe(image.Pt(x, y))
}

func (c *cursorSource) observe(p image.Point) (float64, float64, bool) {
	if !c.primed {
		c.last, c.primed = p, true
		return 0, 0, false
	}
	if p != c.last {
		c.last, c.moved = p, true
	}
	if !c.moved {
		return 0, 0, false
	}
	return float64(p.X), float64(p.Y), true
}

func runWindow(opts *options, win *windowOptions) error {
	if win.baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	a, err := newApp(opts, float64(win.width), float64(win.height))
	if err != nil {
		return err
	}
	defer a.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(win.width, win.height)
	ebiten.SetWindowTitle("glowsnake")
	if icon, err := renderIcon(iconSize); err == nil {
		ebiten.SetWindowIcon([]image.Image{icon})
	}

	return ebiten.RunGame(NewGame(a, opts.debug))
}
