package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/glowsnake/chime"
	"github.com/milk9111/glowsnake/pointer"
	"github.com/milk9111/glowsnake/render/termpaint"
	"github.com/milk9111/glowsnake/scene"
)

type termOptions struct {
	chime bool
	fps   int
}

func newTermCmd(opts *options) *cobra.Command {
	topts := &termOptions{fps: 60}
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Run in the terminal, following the mouse",
		Long: `Runs the animation on a terminal cell grid. The snake follows mouse
clicks and drags (or --script). Press q, Esc or Ctrl-C to quit, d to toggle
frame statistics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTerm(opts, topts)
		},
	}
	cmd.Flags().BoolVar(&topts.chime, "chime", false, "play a tone when the snake changes color")
	cmd.Flags().IntVar(&topts.fps, "fps", topts.fps, "frames per second")
	return cmd
}

type terminal struct {
	screen  tcell.Screen
	app     *app
	painter *termpaint.Painter
	mouse   *pointer.Manual
	debug   bool
}

func runTerm(opts *options, topts *termOptions) error {
	if topts.fps <= 0 {
		return fmt.Errorf("term: fps must be positive, got %d", topts.fps)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	var sceneOpts []scene.Option
	if topts.chime {
		c := chime.New(chime.DefaultInterval)
		if err := c.Init(); err != nil {
			// Non-fatal, the animation runs without sound.
			log.Printf("chime: audio init failed: %v", err)
		} else {
			defer c.Close()
			sceneOpts = append(sceneOpts, scene.WithColorChange(func(col color.NRGBA) { c.Play(col) }))
		}
	}

	cols, rows := screen.Size()
	painter := termpaint.New(cols, rows)
	w, h := painter.Size()

	a, err := newApp(opts, w, h, sceneOpts...)
	if err != nil {
		return err
	}
	defer a.Close()

	t := &terminal{
		screen:  screen,
		app:     a,
		painter: painter,
		mouse:   &pointer.Manual{},
		debug:   opts.debug,
	}
	if !a.usesScript() {
		a.scene.SetPointerSource(t.mouse)
	}

	t.run(time.Second / time.Duration(topts.fps))
	return nil
}

func (t *terminal) run(frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.app.poll()
			t.app.scene.Update()
			t.draw()
		}
	}
}

// handleEvent applies one terminal event and reports whether to keep
// running.
func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
			t.debug = !t.debug
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		t.mouse.Set(cellCentre(col, row))
	case *tcell.EventResize:
		t.screen.Sync()
		cols, rows := ev.Size()
		t.painter.Resize(cols, rows)
		t.app.scene.Resize(t.painter.Size())
	}
	return true
}

// cellCentre maps a grid cell to the surface point at its centre.
func cellCentre(col, row int) (float64, float64) {
	return float64(col*termpaint.CellWidth) + termpaint.CellWidth/2,
		float64(row*termpaint.CellHeight) + termpaint.CellHeight/2
}

func (t *terminal) draw() {
	t.app.scene.Draw(t.painter)
	t.painter.Flush(t.screen)
	if t.debug {
		drawText(t.screen, 0, 0, t.app.scene.Stats().String(), tcell.StyleDefault.Reverse(true))
	}
	t.screen.Show()
}

func drawText(screen termpaint.Screen, col, row int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(col, row, r, nil, style)
		col++
	}
}
