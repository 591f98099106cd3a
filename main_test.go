package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
	"github.com/milk9111/glowsnake/pointer"
	"github.com/milk9111/glowsnake/render/termpaint"
)

func TestRootCommandFlags(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"config", "watch", "script", "seed", "debug"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
	for _, name := range []string{"width", "height", "monitor"} {
		assert.NotNil(t, root.Flags().Lookup(name), name)
	}
	assert.Equal(t, "m", root.Flags().Lookup("monitor").Shorthand)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "term")
	assert.Contains(t, names, "record")

	term, _, err := root.Find([]string{"term"})
	require.NoError(t, err)
	assert.NotNil(t, term.Flags().Lookup("chime"))
}

func TestRecordWritesFrames(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frames")

	root := newRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"record", "--seed", "5", "--frames", "4", "--every", "2", "--width", "48", "--height", "32", "--out", out})
	require.NoError(t, root.Execute())

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "frame_00002.png", entries[0].Name())
	assert.Equal(t, "frame_00004.png", entries[1].Name())
	assert.Contains(t, stdout.String(), "wrote 2 frames")

	f, err := os.Open(filepath.Join(out, entries[1].Name()))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 48, 32), img.Bounds())
}

func TestRecordValidation(t *testing.T) {
	tests := []struct {
		name  string
		ropts recordOptions
	}{
		{name: "size", ropts: recordOptions{width: 0, height: 10, frames: 1, every: 1, out: "x"}},
		{name: "frames", ropts: recordOptions{width: 10, height: 10, frames: 0, every: 1, out: "x"}},
		{name: "every", ropts: recordOptions{width: 10, height: 10, frames: 1, every: 0, out: "x"}},
		{name: "out", ropts: recordOptions{width: 10, height: 10, frames: 1, every: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRecord(&options{}, &tt.ropts)
			assert.Error(t, err)
		})
	}
}

func TestRecordUnknownScript(t *testing.T) {
	_, err := runRecord(&options{script: "no-such-script"}, &recordOptions{width: 8, height: 8, frames: 1, every: 1, out: t.TempDir()})
	assert.Error(t, err)
}

func TestAppReloadsTuning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spine: {count: 30}\n"), 0o644))

	a, err := newApp(&options{config: path, seed: 1}, 200, 200)
	require.NoError(t, err)
	defer a.Close()

	spine, ok := ecs.Single(a.scene.World(), component.SpineComponent)
	require.True(t, ok)
	assert.Len(t, spine.Nodes, 30)

	require.NoError(t, os.WriteFile(path, []byte("spine: {count: 40}\n"), 0o644))
	a.reload(path)
	assert.Len(t, spine.Nodes, 40)

	// A broken edit keeps the running tuning.
	require.NoError(t, os.WriteFile(path, []byte("spine: {count: 1}\n"), 0o644))
	a.reload(path)
	assert.Len(t, spine.Nodes, 40)
}

func TestAppWatchPaths(t *testing.T) {
	script := filepath.Join(t.TempDir(), "path.tengo")
	require.NoError(t, os.WriteFile(script, []byte("x := 1; y := 2"), 0o644))

	a := &app{opts: &options{script: script}}
	assert.Equal(t, []string{filepath.Join("prefabs", "snake.yaml"), script}, a.watchPaths())

	a = &app{opts: &options{config: "custom.yaml", script: "orbit"}}
	assert.Equal(t, []string{"custom.yaml"}, a.watchPaths())
}

func TestCursorSourceWaitsForMovement(t *testing.T) {
	c := &cursorSource{}

	_, _, ok := c.observe(image.Pt(10, 10))
	assert.False(t, ok)
	_, _, ok = c.observe(image.Pt(10, 10))
	assert.False(t, ok)

	x, y, ok := c.observe(image.Pt(12, 15))
	require.True(t, ok)
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 15.0, y)

	_, _, ok = c.observe(image.Pt(12, 15))
	assert.True(t, ok, "keeps reporting once moved")
}

func TestRenderIcon(t *testing.T) {
	img, err := renderIcon(iconSize)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, iconSize, iconSize), img.Bounds())
}

func newTestTerminal(t *testing.T) *terminal {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)

	painter := termpaint.New(20, 10)
	w, h := painter.Size()
	a, err := newApp(&options{seed: 2}, w, h)
	require.NoError(t, err)

	term := &terminal{screen: screen, app: a, painter: painter, mouse: &pointer.Manual{}}
	a.scene.SetPointerSource(term.mouse)
	return term
}

func TestTerminalHandleEvent(t *testing.T) {
	term := newTestTerminal(t)

	assert.True(t, term.handleEvent(tcell.NewEventMouse(3, 2, tcell.ButtonNone, tcell.ModNone)))
	x, y, ok := term.mouse.Sample(0, 0, 0)
	require.True(t, ok)
	assert.Equal(t, 28.0, x)
	assert.Equal(t, 40.0, y)

	assert.True(t, term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone)))
	assert.True(t, term.debug)

	assert.True(t, term.handleEvent(tcell.NewEventResize(30, 12)))
	cols, rows := term.painter.Grid()
	assert.Equal(t, 30, cols)
	assert.Equal(t, 12, rows)
	w, h := term.app.scene.Size()
	assert.Equal(t, 240.0, w)
	assert.Equal(t, 192.0, h)

	assert.False(t, term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, term.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
}

type textScreen struct {
	runes map[[2]int]rune
}

func (s *textScreen) SetContent(x, y int, primary rune, _ []rune, _ tcell.Style) {
	s.runes[[2]int{x, y}] = primary
}

func TestDrawText(t *testing.T) {
	screen := &textScreen{runes: map[[2]int]rune{}}
	drawText(screen, 2, 1, "frame", tcell.StyleDefault)

	assert.Len(t, screen.runes, 5)
	assert.Equal(t, 'f', screen.runes[[2]int{2, 1}])
	assert.Equal(t, 'e', screen.runes[[2]int{6, 1}])
}
