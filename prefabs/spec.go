package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is returned when a tuning file parses but describes a
// scene that cannot be built.
var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

type TuningSpec struct {
	Name       string        `yaml:"name"`
	Background YAMLColor     `yaml:"background"`
	Spine      SpineSpec     `yaml:"spine"`
	Particles  ParticlesSpec `yaml:"particles"`
	Clock      ClockSpec     `yaml:"clock"`
	Glow       GlowSpec      `yaml:"glow"`
	Skeleton   SkeletonSpec  `yaml:"skeleton"`
	Head       HeadSpec      `yaml:"head"`
}

type SpineSpec struct {
	Count        int         `yaml:"count"`
	Spacing      float64     `yaml:"spacing"`
	Damping      float64     `yaml:"damping"`
	ColorRadius  float64     `yaml:"color_radius"`
	InitialColor YAMLColor   `yaml:"initial_color"`
	Palette      []YAMLColor `yaml:"palette"`
}

type ParticlesSpec struct {
	Capacity   int     `yaml:"capacity"`
	PerFrame   int     `yaml:"per_frame"`
	Speed      float64 `yaml:"speed"`
	LifeMin    float64 `yaml:"life_min"`
	LifeMax    float64 `yaml:"life_max"`
	SizeMin    float64 `yaml:"size_min"`
	SizeMax    float64 `yaml:"size_max"`
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

type ClockSpec struct {
	TimeStep float64 `yaml:"time_step"`
}

type GlowSpec struct {
	Radius     float64 `yaml:"radius"`
	InnerAlpha float64 `yaml:"inner_alpha"`
	MidAlpha   float64 `yaml:"mid_alpha"`
	PhaseStep  float64 `yaml:"phase_step"`
}

type SkeletonSpec struct {
	Color      YAMLColor `yaml:"color"`
	Width      float64   `yaml:"width"`
	Bloom      YAMLColor `yaml:"bloom"`
	BloomWidth float64   `yaml:"bloom_width"`
	RibStart   int       `yaml:"rib_start"`
	RibEvery   int       `yaml:"rib_every"`
	RibLength  float64   `yaml:"rib_length"`
}

type HeadSpec struct {
	Color      YAMLColor `yaml:"color"`
	Width      float64   `yaml:"width"`
	Bloom      YAMLColor `yaml:"bloom"`
	BloomWidth float64   `yaml:"bloom_width"`
	Radius     float64   `yaml:"radius"`
	OffsetX    float64   `yaml:"offset_x"`
	PulseAmp   float64   `yaml:"pulse_amp"`
	PulseFreq  float64   `yaml:"pulse_freq"`
	Spike      float64   `yaml:"spike"`
	EyeColor   YAMLColor `yaml:"eye_color"`
	EyeRadius  float64   `yaml:"eye_radius"`
	EyeX       float64   `yaml:"eye_x"`
	EyeY       float64   `yaml:"eye_y"`
}

func hex(r, g, b, a uint8) YAMLColor {
	return YAMLColor{NRGBA: color.NRGBA{R: r, G: g, B: b, A: a}}
}

// DefaultTuning mirrors snake.yaml. Fields missing from a loaded file keep
// these values.
func DefaultTuning() TuningSpec {
	return TuningSpec{
		Name:       "glowsnake",
		Background: hex(0, 0, 0, 255),
		Spine: SpineSpec{
			Count:        90,
			Spacing:      8,
			Damping:      0.005,
			ColorRadius:  20,
			InitialColor: hex(0xff, 0xff, 0x00, 255),
			Palette: []YAMLColor{
				hex(0xff, 0x00, 0x00, 255),
				hex(0x00, 0xff, 0x00, 255),
				hex(0xff, 0xff, 0x00, 255),
				hex(0x00, 0xff, 0xff, 255),
				hex(0xff, 0x00, 0xff, 255),
				hex(0xff, 0xa5, 0x00, 255),
			},
		},
		Particles: ParticlesSpec{
			Capacity:   40,
			PerFrame:   1,
			Speed:      0.5,
			LifeMin:    20,
			LifeMax:    50,
			SizeMin:    2,
			SizeMax:    5,
			Saturation: 1,
			Lightness:  0.5,
		},
		Clock: ClockSpec{TimeStep: 0.07},
		Glow: GlowSpec{
			Radius:     18,
			InnerAlpha: 0.25,
			MidAlpha:   0.18,
			PhaseStep:  0.25,
		},
		Skeleton: SkeletonSpec{
			Color:      hex(0xe5, 0xe7, 0xeb, 255),
			Width:      1.3,
			Bloom:      hex(0xff, 0xff, 0xff, 0x80),
			BloomWidth: 6,
			RibStart:   10,
			RibEvery:   5,
			RibLength:  7,
		},
		Head: HeadSpec{
			Color:      hex(0xf8, 0xfa, 0xfc, 255),
			Width:      2,
			Bloom:      hex(0x00, 0xff, 0x96, 0xe6),
			BloomWidth: 25,
			Radius:     18,
			OffsetX:    -5,
			PulseAmp:   2,
			PulseFreq:  1.6,
			Spike:      18,
			EyeColor:   hex(0xff, 0xff, 0x66, 255),
			EyeRadius:  2,
			EyeX:       8,
			EyeY:       4,
		},
	}
}

// LoadSpec decodes a named prefab over base, so fields the file omits keep
// their base values.
func LoadSpec[T any](filename string, base T) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	spec := base
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadTuning reads the tuning prefab. An empty path loads snake.yaml from
// prefabs/ on disk or, failing that, the embedded copy. Any other path is
// read from disk as given.
func LoadTuning(path string) (*TuningSpec, error) {
	if path == "" {
		spec, err := LoadSpec(DefaultTuningFile, DefaultTuning())
		if err != nil {
			return nil, err
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("prefabs: %s: %w", DefaultTuningFile, err)
		}
		return &spec, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	spec, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", path, err)
	}
	return spec, nil
}

// ParseTuning decodes YAML over DefaultTuning and validates the result.
func ParseTuning(data []byte) (*TuningSpec, error) {
	spec := DefaultTuning()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (t *TuningSpec) Validate() error {
	var problems []string
	check := func(ok bool, msg string) {
		if !ok {
			problems = append(problems, msg)
		}
	}

	check(t.Spine.Count >= 2, "spine.count must be at least 2")
	check(t.Spine.Spacing > 0, "spine.spacing must be positive")
	check(t.Spine.Damping > 0 && t.Spine.Damping <= 1, "spine.damping must be in (0, 1]")
	check(t.Spine.ColorRadius >= 0, "spine.color_radius must not be negative")
	check(len(t.Spine.Palette) > 0, "spine.palette must not be empty")
	check(t.Particles.Capacity >= 1, "particles.capacity must be at least 1")
	check(t.Particles.PerFrame >= 0, "particles.per_frame must not be negative")
	check(t.Particles.Speed >= 0, "particles.speed must not be negative")
	check(t.Particles.LifeMin > 0 && t.Particles.LifeMax > t.Particles.LifeMin, "particles life range must satisfy 0 < life_min < life_max")
	check(t.Particles.SizeMin > 0 && t.Particles.SizeMax > t.Particles.SizeMin, "particles size range must satisfy 0 < size_min < size_max")
	check(t.Clock.TimeStep >= 0, "clock.time_step must not be negative")
	check(t.Glow.Radius > 0, "glow.radius must be positive")
	check(t.Skeleton.RibEvery > 0, "skeleton.rib_every must be positive")

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidTuning, strings.Join(problems, "; "))
}

// Colors returns the palette as plain colors.
func (s SpineSpec) Colors() []color.NRGBA {
	out := make([]color.NRGBA, 0, len(s.Palette))
	for _, c := range s.Palette {
		out = append(out, c.NRGBA)
	}
	return out
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

// ParseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" and SVG color names; the
// leading '#' is optional.
func ParseColor(s string) (color.NRGBA, error) {
	trimmed := strings.TrimSpace(s)
	if named, ok := colornames.Map[strings.ToLower(trimmed)]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
	}
	raw := strings.TrimPrefix(trimmed, "#")

	alpha := uint8(255)
	if len(raw) == 8 {
		a, err := strconv.ParseUint(raw[6:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
		}
		alpha = uint8(a)
		raw = raw[:6]
	}
	if len(raw) != 3 && len(raw) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}

	parsed, err := colorful.Hex("#" + raw)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", s)
	}
	r, g, b := parsed.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
