package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/glowsnake/pointer"
	"github.com/milk9111/glowsnake/prefabs"
	"github.com/milk9111/glowsnake/scene"
)

// app is the scene plus the optional script and hot-reload watcher every
// front-end shares.
type app struct {
	opts    *options
	scene   *scene.Scene
	script  *pointer.Script
	watcher *prefabs.Watcher
}

func newApp(opts *options, width, height float64, sceneOpts ...scene.Option) (*app, error) {
	spec, err := prefabs.LoadTuning(opts.config)
	if err != nil {
		return nil, err
	}

	a := &app{opts: opts}
	if opts.script != "" {
		script, err := pointer.LoadScript(opts.script)
		if err != nil {
			return nil, err
		}
		a.script = script
		sceneOpts = append(sceneOpts, scene.WithSource(script))
	}
	if opts.seed != 0 {
		sceneOpts = append(sceneOpts, scene.WithSeed(opts.seed))
	}

	a.scene, err = scene.New(spec, width, height, sceneOpts...)
	if err != nil {
		return nil, err
	}

	if opts.watch {
		paths := a.watchPaths()
		w, err := prefabs.NewWatcher(paths...)
		if err != nil {
			// Hot reload is a convenience; run without it.
			log.Printf("watch: %v", err)
		} else {
			log.Printf("watch: %s", strings.Join(paths, ", "))
			a.watcher = w
		}
	}

	return a, nil
}

func (a *app) watchPaths() []string {
	config := a.opts.config
	if config == "" {
		config = prefabs.DiskPath(prefabs.DefaultTuningFile)
	}
	paths := []string{config}
	if a.opts.script != "" {
		if info, err := os.Stat(a.opts.script); err == nil && !info.IsDir() {
			paths = append(paths, a.opts.script)
		}
	}
	return paths
}

// usesScript reports whether the scene pointer is driven by the script
// rather than by an input device.
func (a *app) usesScript() bool {
	return a.script != nil
}

// poll applies any pending file changes without blocking. Broken edits are
// logged and the previous tuning or script stays in place.
func (a *app) poll() {
	if a.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-a.watcher.Events:
			if !ok {
				a.watcher = nil
				return
			}
			a.reload(name)
		case err, ok := <-a.watcher.Errors:
			if !ok {
				a.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (a *app) reload(name string) {
	if strings.EqualFold(filepath.Ext(name), ".tengo") {
		script, err := pointer.LoadScript(a.opts.script)
		if err != nil {
			log.Printf("reload: %v", err)
			return
		}
		a.script = script
		a.scene.SetPointerSource(script)
		log.Printf("reload: script %s", script.Name())
		return
	}

	spec, err := prefabs.LoadTuning(a.opts.config)
	if err != nil {
		log.Printf("reload: %v", err)
		return
	}
	if err := a.scene.ApplyTuning(spec); err != nil {
		log.Printf("reload: %v", err)
		return
	}
	log.Printf("reload: tuning %s", spec.Name)
}

func (a *app) Close() error {
	if a.watcher == nil {
		return nil
	}
	if err := a.watcher.Close(); err != nil {
		return fmt.Errorf("watch: close: %w", err)
	}
	return nil
}
