package render

import "image/color"

// Op names a recorded drawing call.
type Op string

const (
	OpClear      Op = "clear"
	OpFillCircle Op = "fill_circle"
	OpStrokeLine Op = "stroke_line"
	OpStrokeArc  Op = "stroke_arc"
	OpRadialGlow Op = "radial_glow"
)

// Call is one recorded drawing call. Args holds the numeric arguments in the
// order the Painter method takes them.
type Call struct {
	Op    Op
	Args  []float64
	Color color.NRGBA
	Stops []GlowStop
}

// Recorder is a Painter that only remembers what was drawn.
type Recorder struct {
	Width  float64
	Height float64
	Calls  []Call
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Clear(c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, Args: []float64{cx, cy, rad}, Color: c})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeLine, Args: []float64{x0, y0, x1, y1, width}, Color: c})
}

func (r *Recorder) StrokeArc(cx, cy, rad, start, end, width float64, c color.NRGBA) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeArc, Args: []float64{cx, cy, rad, start, end, width}, Color: c})
}

func (r *Recorder) RadialGlow(cx, cy, rad float64, c color.NRGBA, stops []GlowStop) {
	r.Calls = append(r.Calls, Call{Op: OpRadialGlow, Args: []float64{cx, cy, rad}, Color: c, Stops: append([]GlowStop(nil), stops...)})
}

// Filter returns the calls with the given op.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Reset drops every recorded call.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
