// Package chime plays a short tone whenever the snake changes color.
package chime

import (
	"image/color"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	sampleRate = beep.SampleRate(48000)

	// DefaultInterval keeps the chime from retriggering on every frame the
	// head lingers near the pointer.
	DefaultInterval = 250 * time.Millisecond

	toneLength = 180 * time.Millisecond
	baseFreq   = 330.0
)

type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	interval    time.Duration
	last        time.Time
	now         func() time.Time
	initialized bool
}

func New(interval time.Duration) *Chime {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Chime{
		mixer:    &beep.Mixer{},
		interval: interval,
		now:      time.Now,
	}
}

// Init opens the audio device. A failure leaves the chime silent.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Close silences anything still ringing.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// Play rings a tone pitched from the hue of col. It reports whether a tone
// was queued.
func (c *Chime) Play(col color.NRGBA) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return false
	}
	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < c.interval {
		return false
	}
	c.last = now

	tone := &effects.Gain{Streamer: NewTone(Pitch(col), toneLength, sampleRate), Gain: -0.6}
	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
	return true
}

// Pitch maps the hue of col onto one octave above baseFreq.
func Pitch(col color.NRGBA) float64 {
	cf, _ := colorful.MakeColor(col)
	h, _, _ := cf.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return baseFreq * math.Pow(2, h/360)
}

// tone is a sine with a linear attack and exponential decay.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	attack   int
	rate     beep.SampleRate
}

func NewTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	return &tone{
		freq:     freq,
		duration: n,
		attack:   rate.N(5 * time.Millisecond),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		env := math.Exp(-4 * float64(t.position) / float64(t.duration))
		if t.position < t.attack {
			env *= float64(t.position) / float64(t.attack)
		}
		v := math.Sin(2*math.Pi*t.phase) * env
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
