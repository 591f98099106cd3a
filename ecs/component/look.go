package component

import "image/color"

// Look is the render style of the scene.
type Look struct {
	Background color.NRGBA
	Glow       GlowLook
	Skeleton   SkeletonLook
	Head       HeadLook
}

type GlowLook struct {
	Radius     float64
	InnerAlpha float64
	MidAlpha   float64
	// PhaseStep offsets the pulse of consecutive halos.
	PhaseStep float64
}

type SkeletonLook struct {
	Color      color.NRGBA
	Width      float64
	Bloom      color.NRGBA
	BloomWidth float64
	RibStart   int
	RibEvery   int
	RibLength  float64
}

type HeadLook struct {
	Color      color.NRGBA
	Width      float64
	Bloom      color.NRGBA
	BloomWidth float64

	// Radius and OffsetX place the hood circle; OffsetX shifts it back along
	// the direction of travel.
	Radius    float64
	OffsetX   float64
	PulseAmp  float64
	PulseFreq float64
	Spike     float64

	EyeColor  color.NRGBA
	EyeRadius float64
	EyeX      float64
	EyeY      float64
}

var LookComponent = NewComponent[Look]()
