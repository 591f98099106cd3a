// Package scene owns the animation world and runs its frame pipeline.
package scene

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
	"github.com/milk9111/glowsnake/ecs/entity"
	"github.com/milk9111/glowsnake/ecs/system"
	"github.com/milk9111/glowsnake/pointer"
	"github.com/milk9111/glowsnake/prefabs"
	"github.com/milk9111/glowsnake/render"
)

type Scene struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	pointer   *system.PointerSystem
	entity    ecs.Entity

	rng           *rand.Rand
	source        pointer.Source
	onColorChange func(color.NRGBA)
}

type Option func(*Scene)

// WithRand makes the scene draw all randomness from rng.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scene) { s.rng = rng }
}

// WithSeed is WithRand with a PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func WithSource(source pointer.Source) Option {
	return func(s *Scene) { s.source = source }
}

// WithColorChange registers fn to run after each update that recolored the
// glow, once per update with the latest color.
func WithColorChange(fn func(color.NRGBA)) Option {
	return func(s *Scene) { s.onColorChange = fn }
}

// New builds a scene for a surface of the given size.
func New(spec *prefabs.TuningSpec, width, height float64, opts ...Option) (*Scene, error) {
	s := &Scene{world: ecs.NewWorld()}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	e, err := entity.NewScene(s.world, spec, width, height)
	if err != nil {
		return nil, err
	}
	s.entity = e

	s.pointer = system.NewPointerSystem(s.source)
	s.scheduler = ecs.NewScheduler(
		s.pointer,
		system.NewClockSystem(),
		system.NewSpineSystem(s.rng),
		system.NewParticleSpawnSystem(s.rng),
		system.NewParticleSystem(),
		system.NewTTLSystem(),
		system.NewParticleCapSystem(),
	)
	s.scheduler.AddRenderer(system.NewRenderSystem())

	return s, nil
}

// Update runs one frame of the simulation.
func (s *Scene) Update() {
	if s == nil {
		return
	}

	s.scheduler.Update(s.world)

	var (
		latest  color.NRGBA
		changed bool
	)
	for _, evt := range s.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventColorChanged:
			if c, ok := evt.Data.(color.NRGBA); ok {
				latest, changed = c, true
			}
		case ecs.EventSpineRebuilt:
			log.Printf("scene: spine rebuilt")
		}
	}
	if changed && s.onColorChange != nil {
		s.onColorChange(latest)
	}
}

func (s *Scene) Draw(p render.Painter) {
	if s == nil {
		return
	}
	s.scheduler.Draw(s.world, p)
}

// Resize records a new surface size. The pointer and spine stay where they
// are.
func (s *Scene) Resize(width, height float64) {
	if s == nil {
		return
	}
	surface, ok := ecs.Get(s.world, s.entity, component.SurfaceComponent)
	if !ok {
		return
	}
	surface.Width, surface.Height = width, height
	if p, ok := ecs.Get(s.world, s.entity, component.PointerComponent); ok && !p.Sampled {
		p.X, p.Y = surface.Center()
	}
}

// Size returns the current surface size.
func (s *Scene) Size() (float64, float64) {
	if s == nil {
		return 0, 0
	}
	if surface, ok := ecs.Get(s.world, s.entity, component.SurfaceComponent); ok {
		return surface.Width, surface.Height
	}
	return 0, 0
}

func (s *Scene) SetPointerSource(source pointer.Source) {
	if s == nil {
		return
	}
	s.source = source
	s.pointer.SetSource(source)
}

// ApplyTuning swaps in a reloaded tuning. On error the scene is untouched.
func (s *Scene) ApplyTuning(spec *prefabs.TuningSpec) error {
	if s == nil {
		return fmt.Errorf("scene: nil scene")
	}
	if _, err := entity.ApplyTuning(s.world, s.entity, spec); err != nil {
		return err
	}
	return nil
}

func (s *Scene) World() *ecs.World {
	if s == nil {
		return nil
	}
	return s.world
}
