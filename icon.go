package main

import (
	"image"
	"math"

	"github.com/milk9111/glowsnake/pointer"
	"github.com/milk9111/glowsnake/prefabs"
	"github.com/milk9111/glowsnake/render/raster"
	"github.com/milk9111/glowsnake/scene"
)

const iconSize = 64

// renderIcon draws a short, coiled snake with the software rasteriser.
func renderIcon(size int) (image.Image, error) {
	spec := prefabs.DefaultTuning()
	spec.Spine.Count = 10
	spec.Spine.Spacing = 3
	spec.Spine.Damping = 0.2
	spec.Glow.Radius = 6
	spec.Head.Radius = 6
	spec.Head.Spike = 6
	spec.Head.PulseAmp = 0
	spec.Head.BloomWidth = 4
	spec.Particles.Capacity = 1

	s, err := scene.New(&spec, float64(size), float64(size), scene.WithSeed(1),
		scene.WithSource(pointer.Func(func(t, w, h float64) (float64, float64, bool) {
			a := t * 4
			return w/2 + math.Cos(a)*w/4, h/2 + math.Sin(a)*h/4, true
		})))
	if err != nil {
		return nil, err
	}
	for i := 0; i < 90; i++ {
		s.Update()
	}

	p := raster.New(size, size)
	s.Draw(p)
	return p.Image(), nil
}
