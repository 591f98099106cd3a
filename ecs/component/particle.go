package component

import "image/color"

// Particle is a short-lived dot drifting from the pointer. Position lives in
// Transform and remaining life in TTL.
type Particle struct {
	VX    float64
	VY    float64
	Color color.NRGBA
	Size  float64
	// Seq orders particles by spawn time; lower is older.
	Seq uint64
}

var ParticleComponent = NewComponent[Particle]()

// ParticleEmitter holds the pool limits and spawn ranges. It lives on the
// scene entity.
type ParticleEmitter struct {
	Capacity int
	PerFrame int
	// Speed bounds each velocity axis to [-Speed, Speed].
	Speed      float64
	LifeMin    float64
	LifeMax    float64
	SizeMin    float64
	SizeMax    float64
	Saturation float64
	Lightness  float64

	NextSeq uint64
}

var ParticleEmitterComponent = NewComponent[ParticleEmitter]()
