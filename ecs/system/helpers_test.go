package system

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/entity"
	"github.com/milk9111/glowsnake/prefabs"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func newTestScene(t *testing.T, width, height float64) (*ecs.World, ecs.Entity) {
	t.Helper()

	w := ecs.NewWorld()
	spec := prefabs.DefaultTuning()
	scene, err := entity.NewScene(w, &spec, width, height)
	require.NoError(t, err)
	return w, scene
}

// newFramePipeline returns the per-frame update order used by the scene.
func newFramePipeline(rng *rand.Rand) *ecs.Scheduler {
	return ecs.NewScheduler(
		NewClockSystem(),
		NewSpineSystem(rng),
		NewParticleSpawnSystem(rng),
		NewParticleSystem(),
		NewTTLSystem(),
		NewParticleCapSystem(),
	)
}

func testTuning() *prefabs.TuningSpec {
	spec := prefabs.DefaultTuning()
	return &spec
}
