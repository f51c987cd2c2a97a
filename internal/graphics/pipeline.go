// Package graphics turns mesh instances into a depth-ordered, flat-shaded
// image drawn on a Surface.
package graphics

import (
	"errors"

	"go.uber.org/zap"

	"vertex/internal/camera"
	"vertex/internal/logger"
)

var ErrNoSurface = errors.New("graphics: no render surface")

type Options struct {
	// Camera Width and Height are taken from the surface.
	Camera      camera.Options
	FieldOfView float64
	Scale       float64
	TargetFPS   int
	Style       Style
	// UseParallelWorker moves geometry and rasterize onto an Offloader.
	UseParallelWorker bool
	// Workers bounds the offloader fan-out. Zero means one batch.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		Camera:      camera.DefaultOptions(),
		FieldOfView: 90,
		Scale:       300,
		TargetFPS:   30,
		Style:       StyleStroke,
	}
}

// Pipeline draws instances on a surface every frame.
type Pipeline struct {
	surface   Surface
	projector *Projector
	offloader *Offloader
	style     Style
	stats     Stats
	log       *zap.Logger
}

func New(surface Surface, opts Options, log *zap.Logger) (*Pipeline, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if log == nil {
		log = logger.Nop()
	}
	opts.Camera.Width, opts.Camera.Height = surface.Size()

	p := &Pipeline{
		surface:   surface,
		projector: NewProjector(opts, log),
		style:     opts.Style,
		log:       log,
	}
	if opts.UseParallelWorker {
		p.offloader = NewOffloader(opts, log.Named("offloader"))
	}
	log.Info("pipeline ready",
		zap.Float64("width", opts.Camera.Width),
		zap.Float64("height", opts.Camera.Height),
		zap.Stringer("style", opts.Style),
		zap.Bool("parallel", opts.UseParallelWorker),
	)
	return p, nil
}

// Camera returns the live camera. Input handlers move it between frames.
func (p *Pipeline) Camera() *camera.Camera { return p.projector.Camera() }

func (p *Pipeline) Style() Style { return p.style }

// SetStyle takes effect on the next Screen call.
func (p *Pipeline) SetStyle(s Style) { p.style = s }

// Stats describes the last Geometry call made on this goroutine.
func (p *Pipeline) Stats() Stats { return p.stats }

func (p *Pipeline) Geometry(instances []Instance) ([]Fragment, error) {
	frags, stats, err := p.projector.Geometry(instances)
	p.stats = stats
	return frags, err
}

func (p *Pipeline) Rasterize(frags []Fragment) []Fragment {
	return p.projector.Rasterize(frags)
}

// Screen draws fragments in slice order with the origin moved to the
// viewport center. Screen y grows downwards, so y is negated.
func (p *Pipeline) Screen(frags []Fragment) {
	w, h := p.surface.Size()
	s := p.surface

	s.Clear()
	s.Translate(w/2, h/2)
	for _, f := range frags {
		p1, p2, p3 := f.Points[0], f.Points[1], f.Points[2]
		s.BeginPath()
		s.MoveTo(p1.X(), -p1.Y())
		s.LineTo(p2.X(), -p2.Y())
		s.LineTo(p3.X(), -p3.Y())
		s.LineTo(p1.X(), -p1.Y())
		if p.style == StyleFill {
			s.Fill(f.Color)
		} else {
			s.Stroke(f.Color)
		}
	}
	s.Translate(-w/2, -h/2)
}

// Render runs all three stages. With a parallel worker the current
// instances are submitted and the newest finished raster, if any, is
// drawn instead; the image then lags input by at least one frame.
func (p *Pipeline) Render(instances []Instance) error {
	if p.offloader != nil {
		job, err := NewJob(p.Camera(), instances)
		if err != nil {
			return err
		}
		if err := p.offloader.Submit(job); err != nil {
			return err
		}
		raster, ok := p.offloader.Latest()
		if !ok {
			return nil
		}
		if raster.Err != nil {
			return raster.Err
		}
		p.stats = raster.Stats
		p.Screen(raster.Fragments)
		return nil
	}

	frags, err := p.Geometry(instances)
	if err != nil {
		return err
	}
	p.Screen(p.Rasterize(frags))
	return nil
}

// Close stops the parallel worker, if any.
func (p *Pipeline) Close() {
	if p.offloader != nil {
		p.offloader.Close()
	}
}
