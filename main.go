package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// options are the flags shared by every front-end.
type options struct {
	config string
	watch  bool
	script string
	seed   uint64
	debug  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	win := &windowOptions{width: 1280, height: 720}

	root := &cobra.Command{
		Use:   "glowsnake",
		Short: "Glowing skeletal snake that chases the pointer",
		Long: `glowsnake draws a chain of glowing nodes that eases toward the mouse
pointer, trailing ribs, a hooded head and a spray of particles.

Without a subcommand it opens a window. Use "term" to run it in a terminal
or "record" to render PNG frames headlessly.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(opts, win)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.config, "config", "", "tuning YAML file (default: prefabs/snake.yaml or the embedded copy)")
	flags.BoolVar(&opts.watch, "watch", false, "reload the tuning file and pointer script when they change")
	flags.StringVar(&opts.script, "script", "", "tengo pointer script: a file path or an embedded name (orbit, hover)")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed; 0 picks one at startup")
	flags.BoolVar(&opts.debug, "debug", false, "show frame statistics")

	root.Flags().IntVar(&win.width, "width", win.width, "window width")
	root.Flags().IntVar(&win.height, "height", win.height, "window height")
	root.Flags().BoolVarP(&win.baseMonitor, "monitor", "m", false, "use base monitor instead of primary (for multi-monitor setups)")

	root.AddCommand(newTermCmd(opts), newRecordCmd(opts))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
