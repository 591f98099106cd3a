package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/milk9111/glowsnake/render/raster"
)

// defaultRecordScript drives the pointer when record is run without
// --script; with no input device the snake would otherwise sit still.
const defaultRecordScript = "orbit"

type recordOptions struct {
	width  int
	height int
	frames int
	every  int
	out    string
}

func newRecordCmd(opts *options) *cobra.Command {
	ropts := &recordOptions{width: 640, height: 360, frames: 240, every: 1, out: "frames"}
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Render frames to PNG files without a window",
		Long: `Runs the animation headlessly with the software rasteriser and writes
frames as numbered PNG files. The pointer follows --script, "orbit" by
default.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := runRecord(opts, ropts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s\n", n, ropts.out)
			return nil
		},
	}
	cmd.Flags().IntVar(&ropts.width, "width", ropts.width, "frame width in pixels")
	cmd.Flags().IntVar(&ropts.height, "height", ropts.height, "frame height in pixels")
	cmd.Flags().IntVar(&ropts.frames, "frames", ropts.frames, "number of frames to simulate")
	cmd.Flags().IntVar(&ropts.every, "every", ropts.every, "write every nth frame")
	cmd.Flags().StringVarP(&ropts.out, "out", "o", ropts.out, "output directory")
	return cmd
}

func (o *recordOptions) validate() error {
	switch {
	case o.width <= 0 || o.height <= 0:
		return fmt.Errorf("record: size must be positive, got %dx%d", o.width, o.height)
	case o.frames <= 0:
		return fmt.Errorf("record: frames must be positive, got %d", o.frames)
	case o.every <= 0:
		return fmt.Errorf("record: every must be positive, got %d", o.every)
	case o.out == "":
		return fmt.Errorf("record: output directory is required")
	}
	return nil
}

// runRecord simulates ropts.frames frames and returns how many were written.
func runRecord(opts *options, ropts *recordOptions) (int, error) {
	if err := ropts.validate(); err != nil {
		return 0, err
	}

	sceneOpts := *opts
	sceneOpts.watch = false
	if sceneOpts.script == "" {
		sceneOpts.script = defaultRecordScript
	}

	a, err := newApp(&sceneOpts, float64(ropts.width), float64(ropts.height))
	if err != nil {
		return 0, err
	}
	defer a.Close()

	if err := os.MkdirAll(ropts.out, 0o755); err != nil {
		return 0, fmt.Errorf("record: %w", err)
	}

	painter := raster.New(ropts.width, ropts.height)
	written := 0
	for frame := 1; frame <= ropts.frames; frame++ {
		a.scene.Update()
		if frame%ropts.every != 0 {
			continue
		}

		a.scene.Draw(painter)
		path := filepath.Join(ropts.out, fmt.Sprintf("frame_%05d.png", frame))
		if err := writePNG(path, painter); err != nil {
			return written, err
		}
		written++
		if opts.debug {
			log.Printf("record: %s  %s", path, a.scene.Stats())
		}
	}
	return written, nil
}

func writePNG(path string, p *raster.Painter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("record: %w", err)
	}
	if err := png.Encode(f, p.Image()); err != nil {
		f.Close()
		return fmt.Errorf("record: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return nil
}
