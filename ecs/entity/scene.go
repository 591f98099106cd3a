package entity

import (
	"fmt"

	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
	"github.com/milk9111/glowsnake/prefabs"
)

// NewScene creates the singleton scene entity for a surface of the given
// size. The pointer starts at the surface centre with the spine trailing
// straight to its left.
func NewScene(w *ecs.World, spec *prefabs.TuningSpec, width, height float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("scene: nil tuning")
	}
	if err := spec.Validate(); err != nil {
		return 0, fmt.Errorf("scene: %w", err)
	}

	surface := component.Surface{Width: width, Height: height}
	px, py := surface.Center()

	return ecs.BuildEntity(w, func(scene ecs.Entity) error {
		if err := ecs.Add(w, scene, component.SceneTagComponent, &component.SceneTag{}); err != nil {
			return fmt.Errorf("scene: add scene tag: %w", err)
		}
		if err := ecs.Add(w, scene, component.SurfaceComponent, &surface); err != nil {
			return fmt.Errorf("scene: add surface: %w", err)
		}
		if err := ecs.Add(w, scene, component.PointerComponent, &component.Pointer{X: px, Y: py}); err != nil {
			return fmt.Errorf("scene: add pointer: %w", err)
		}

		spine := NewSpine(spec.Spine, px, py)
		if err := ecs.Add(w, scene, component.SpineComponent, &spine); err != nil {
			return fmt.Errorf("scene: add spine: %w", err)
		}
		if err := ecs.Add(w, scene, component.ColorStateComponent, &component.ColorState{
			Current: spec.Spine.InitialColor.NRGBA,
			Palette: spec.Spine.Colors(),
		}); err != nil {
			return fmt.Errorf("scene: add color state: %w", err)
		}

		emitter := emitterFromSpec(spec.Particles)
		if err := ecs.Add(w, scene, component.ParticleEmitterComponent, &emitter); err != nil {
			return fmt.Errorf("scene: add particle emitter: %w", err)
		}
		if err := ecs.Add(w, scene, component.ClockComponent, &component.Clock{Step: spec.Clock.TimeStep}); err != nil {
			return fmt.Errorf("scene: add clock: %w", err)
		}

		look := LookFromSpec(spec)
		if err := ecs.Add(w, scene, component.LookComponent, &look); err != nil {
			return fmt.Errorf("scene: add look: %w", err)
		}
		return nil
	})
}

// NewSpine lays count nodes out leftwards from (x, y), Spacing apart, all
// with heading 0.
func NewSpine(spec prefabs.SpineSpec, x, y float64) component.Spine {
	nodes := make([]component.SpineNode, spec.Count)
	for i := range nodes {
		nodes[i] = component.SpineNode{X: x - float64(i)*spec.Spacing, Y: y}
	}
	return component.Spine{
		Nodes:       nodes,
		Spacing:     spec.Spacing,
		Damping:     spec.Damping,
		ColorRadius: spec.ColorRadius,
	}
}

// ApplyTuning pushes a reloaded spec into an existing scene. Spine length
// and spacing are construction parameters: changing either rebuilds the
// spine behind the current pointer, which is reported through rebuilt.
// Everything else, including the live particle pool, is updated in place.
func ApplyTuning(w *ecs.World, scene ecs.Entity, spec *prefabs.TuningSpec) (rebuilt bool, err error) {
	if spec == nil {
		return false, fmt.Errorf("scene: nil tuning")
	}
	if err := spec.Validate(); err != nil {
		return false, fmt.Errorf("scene: %w", err)
	}

	spine, ok := ecs.Get(w, scene, component.SpineComponent)
	if !ok {
		return false, fmt.Errorf("scene: missing spine")
	}
	pointer, ok := ecs.Get(w, scene, component.PointerComponent)
	if !ok {
		return false, fmt.Errorf("scene: missing pointer")
	}

	if len(spine.Nodes) != spec.Spine.Count || spine.Spacing != spec.Spine.Spacing {
		*spine = NewSpine(spec.Spine, pointer.X, pointer.Y)
		rebuilt = true
	} else {
		spine.Damping = spec.Spine.Damping
		spine.ColorRadius = spec.Spine.ColorRadius
	}

	if colors, ok := ecs.Get(w, scene, component.ColorStateComponent); ok {
		colors.Palette = spec.Spine.Colors()
	}
	if emitter, ok := ecs.Get(w, scene, component.ParticleEmitterComponent); ok {
		next := emitterFromSpec(spec.Particles)
		next.NextSeq = emitter.NextSeq
		*emitter = next
	}
	if clock, ok := ecs.Get(w, scene, component.ClockComponent); ok {
		clock.Step = spec.Clock.TimeStep
	}
	if look, ok := ecs.Get(w, scene, component.LookComponent); ok {
		*look = LookFromSpec(spec)
	}

	if rebuilt {
		w.Events().Push(ecs.Event{Type: ecs.EventSpineRebuilt, Entity: scene})
	}
	return rebuilt, nil
}

func emitterFromSpec(spec prefabs.ParticlesSpec) component.ParticleEmitter {
	return component.ParticleEmitter{
		Capacity:   spec.Capacity,
		PerFrame:   spec.PerFrame,
		Speed:      spec.Speed,
		LifeMin:    spec.LifeMin,
		LifeMax:    spec.LifeMax,
		SizeMin:    spec.SizeMin,
		SizeMax:    spec.SizeMax,
		Saturation: spec.Saturation,
		Lightness:  spec.Lightness,
	}
}

func LookFromSpec(spec *prefabs.TuningSpec) component.Look {
	return component.Look{
		Background: spec.Background.NRGBA,
		Glow: component.GlowLook{
			Radius:     spec.Glow.Radius,
			InnerAlpha: spec.Glow.InnerAlpha,
			MidAlpha:   spec.Glow.MidAlpha,
			PhaseStep:  spec.Glow.PhaseStep,
		},
		Skeleton: component.SkeletonLook{
			Color:      spec.Skeleton.Color.NRGBA,
			Width:      spec.Skeleton.Width,
			Bloom:      spec.Skeleton.Bloom.NRGBA,
			BloomWidth: spec.Skeleton.BloomWidth,
			RibStart:   spec.Skeleton.RibStart,
			RibEvery:   spec.Skeleton.RibEvery,
			RibLength:  spec.Skeleton.RibLength,
		},
		Head: component.HeadLook{
			Color:      spec.Head.Color.NRGBA,
			Width:      spec.Head.Width,
			Bloom:      spec.Head.Bloom.NRGBA,
			BloomWidth: spec.Head.BloomWidth,
			Radius:     spec.Head.Radius,
			OffsetX:    spec.Head.OffsetX,
			PulseAmp:   spec.Head.PulseAmp,
			PulseFreq:  spec.Head.PulseFreq,
			Spike:      spec.Head.Spike,
			EyeColor:   spec.Head.EyeColor.NRGBA,
			EyeRadius:  spec.Head.EyeRadius,
			EyeX:       spec.Head.EyeX,
			EyeY:       spec.Head.EyeY,
		},
	}
}
