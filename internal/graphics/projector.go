package graphics

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"vertex/internal/camera"
	"vertex/internal/linalg"
	"vertex/internal/logger"
)

// Projector runs the geometry and rasterize stages. It needs no surface,
// so the parallel worker owns one of its own.
type Projector struct {
	camera     *camera.Camera
	projection *linalg.Matrix
	zOffset    *linalg.Vector
	// screenScale maps divided coordinates to screen units.
	screenScale float64
	log         *zap.Logger
}

func NewProjector(opts Options, log *zap.Logger) *Projector {
	if log == nil {
		log = logger.Nop()
	}
	cam := camera.New(opts.Camera)
	// Built for near/2 rather than near, so a point on the near clip
	// plane keeps a positive divisor after the z offset. This shifts depth:
	// fz = far/(far-near/2) and zOffset = far*(near/2)/(far-near/2).
	proj, zOffset := linalg.ProjectionMatrix(opts.Camera.Near/2, opts.Camera.Far, opts.FieldOfView)

	aspect := 1.0
	if opts.Camera.Width > 0 {
		aspect = opts.Camera.Height / opts.Camera.Width
	}
	return &Projector{
		camera:      cam,
		projection:  proj,
		zOffset:     linalg.NewVector(0, 0, zOffset),
		screenScale: aspect * opts.Scale,
		log:         log,
	}
}

func (p *Projector) Camera() *camera.Camera { return p.camera }

// Geometry transforms every instance triangle into clipped screen-space
// fragments. Fragments come out grouped by instance in input order.
func (p *Projector) Geometry(instances []Instance) ([]Fragment, Stats, error) {
	_, view := p.camera.ViewMatrix()
	return p.geometry(instances, view)
}

func (p *Projector) geometry(instances []Instance, view *linalg.Matrix) ([]Fragment, Stats, error) {
	var (
		stats    Stats
		toRaster []Fragment
	)
	for _, inst := range instances {
		frags, s, err := p.instance(inst, view)
		if err != nil {
			return nil, stats, fmt.Errorf("instance %s: %w", inst.ID, err)
		}
		stats.add(s)
		toRaster = append(toRaster, frags...)
	}

	bounds := p.camera.Frustum().Bounds()
	raster := make([]Fragment, 0, len(toRaster))
	for _, frag := range toRaster {
		queue := []Fragment{frag}
		for _, bound := range bounds {
			var next []Fragment
			for _, f := range queue {
				for _, pts := range bound.ClipTriangle(f.Points) {
					next = append(next, Fragment{Points: pts, ZMidpoint: f.ZMidpoint, Normal: f.Normal})
				}
			}
			queue = next
		}
		raster = append(raster, queue...)
	}
	stats.Fragments = len(raster)
	return raster, stats, nil
}

func (p *Projector) instance(inst Instance, view *linalg.Matrix) ([]Fragment, Stats, error) {
	var stats Stats
	if inst.Mesh == nil {
		return nil, stats, nil
	}
	stats.Instances = 1

	world := linalg.WorldMatrix(inst.Rotation, inst.Position)
	frustum := p.camera.Frustum()

	bounds := inst.Mesh.Bounds()
	center, err := toView(world, view, linalg.Extended(bounds.Position, 1))
	if err != nil {
		return nil, stats, err
	}
	if !frustum.ContainsDepth(center, bounds.Radius) {
		stats.Culled = len(inst.Mesh.Triangles())
		return nil, stats, nil
	}

	var out []Fragment
	for _, tri := range inst.Mesh.Triangles() {
		stats.Triangles++

		var worldPts [3]*linalg.Vector
		for i, v := range tri {
			w, err := world.Transform(v)
			if err != nil {
				return nil, stats, err
			}
			worldPts[i] = w
		}

		normal, _, cull := p.camera.ShouldCull(worldPts[0], worldPts[1], worldPts[2], 0)
		if cull {
			stats.Culled++
			continue
		}

		var viewPts [3]*linalg.Vector
		for i, w := range worldPts {
			v, err := rowTransform(w, view)
			if err != nil {
				return nil, stats, err
			}
			viewPts[i] = v
		}

		for _, pts := range frustum.Near.ClipTriangle(viewPts) {
			frag, ok, err := p.project(pts, normal)
			if err != nil {
				return nil, stats, err
			}
			if !ok {
				stats.Degenerate++
				p.log.Debug("dropping degenerate triangle", zap.String("instance", inst.ID))
				continue
			}
			out = append(out, frag)
		}
	}
	return out, stats, nil
}

// project applies the perspective matrix and divide. ok is false when a
// corner ends up on or behind the projection origin.
func (p *Projector) project(pts [3]*linalg.Vector, normal *linalg.Vector) (Fragment, bool, error) {
	frag := Fragment{Normal: normal}
	var zSum float64
	for i, pt := range pts {
		projected, err := p.projection.Transform(pt)
		if err != nil {
			return frag, false, err
		}
		projected.Sub(p.zOffset)
		z := projected.Z()
		if z <= 0 {
			return frag, false, nil
		}
		zSum += z
		frag.Points[i] = projected.Div(z).Scale(p.screenScale)
	}
	frag.ZMidpoint = zSum / 3
	return frag, true, nil
}

// Rasterize orders fragments farthest first and shades them. The slice is
// sorted in place and returned.
func (p *Projector) Rasterize(frags []Fragment) []Fragment {
	slices.SortStableFunc(frags, func(a, b Fragment) int {
		return cmp.Compare(b.ZMidpoint, a.ZMidpoint)
	})
	for i := range frags {
		frags[i].Color = p.camera.Illuminate(frags[i].Normal)
	}
	return frags
}

func rowTransform(v *linalg.Vector, m *linalg.Matrix) (*linalg.Vector, error) {
	out, err := v.RowMatrix().Mult(m)
	if err != nil {
		return nil, err
	}
	return out.Vector()
}

func toView(world, view *linalg.Matrix, p *linalg.Vector) (*linalg.Vector, error) {
	w, err := world.Transform(p)
	if err != nil {
		return nil, err
	}
	return rowTransform(w, view)
}
