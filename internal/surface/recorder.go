package surface

import (
	"fmt"
	"strings"

	"vertex/internal/color"
	"vertex/internal/graphics"
)

var _ graphics.Surface = (*Recorder)(nil)

type Op struct {
	Name  string
	Args  []float64
	Color color.Color
}

func (o Op) String() string {
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = fmt.Sprintf("%g", a)
	}
	s := o.Name + "(" + strings.Join(parts, ",") + ")"
	if o.Name == "stroke" || o.Name == "fill" {
		s = o.Name + "(#" + o.Color.Hex() + ")"
	}
	return s
}

// Recorder keeps every call made on it, in order.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Clear() { r.record("clear") }
func (r *Recorder) Translate(x, y float64) { r.record("translate", x, y) }
func (r *Recorder) BeginPath() { r.record("beginPath") }
func (r *Recorder) MoveTo(x, y float64) { r.record("moveTo", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.record("lineTo", x, y) }

func (r *Recorder) Stroke(c color.Color) { r.Ops = append(r.Ops, Op{Name: "stroke", Color: c}) }
func (r *Recorder) Fill(c color.Color) { r.Ops = append(r.Ops, Op{Name: "fill", Color: c}) }

// Names lists the recorded operation names.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.Name
	}
	return out
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) record(name string, args ...float64) {
	r.Ops = append(r.Ops, Op{Name: name, Args: args})
}
