package linalg

import "math"

// DefaultEpsilon is the parallel-ray threshold used by ClipTriangle.
const DefaultEpsilon = 1e-6

// Plane is a reference point plus a normal. D is Point·Normal.
//
// PointDistance adds D rather than subtracting it, so the half-space it
// classifies is bounded by Normal·p = -D. A plane meant to keep x >= -a with
// normal +x is therefore built with its point at x = +a.
type Plane struct {
	Point  *Vector
	Normal *Vector
	D      float64
}

func NewPlane(point, normal *Vector) Plane {
	return Plane{Point: point, Normal: normal, D: point.Dot(normal)}
}

// PlaneFromPoints builds the plane through p with normal (q-p) x (r-p).
func PlaneFromPoints(p, q, r *Vector) Plane {
	normal := Subbed(q, p).Cross(Subbed(r, p))
	return NewPlane(p.Copy(), normal)
}

// PointDistance is the signed distance of p. Non-negative means inside.
func (pl Plane) PointDistance(p *Vector) float64 {
	return (pl.Normal.Dot(p) + pl.D) / pl.Normal.Mag()
}

// IntersectRay returns where the line through start and end crosses the
// plane through Point. ok is false when the ray is parallel to the plane
// within eps. Neither argument is modified.
func (pl Plane) IntersectRay(start, end *Vector, eps float64) (*Vector, bool) {
	ray := Subbed(end, start)
	dot := pl.Normal.Dot(ray)
	if math.Abs(dot) <= eps {
		return nil, false
	}
	w := Subbed(start, pl.Point)
	fac := -pl.Normal.Dot(w) / dot
	return Added(start, ray.Scale(fac)), true
}

// boundary is the plane through the surface PointDistance measures from.
func (pl Plane) boundary() Plane {
	n2 := pl.Normal.Dot(pl.Normal)
	if n2 == 0 {
		return pl
	}
	return NewPlane(Scaled(pl.Normal, -pl.D/n2), pl.Normal)
}

// ClipTriangle clips a triangle against the plane and returns 0, 1 or 2
// triangles. Vertex winding is preserved. A triangle whose edge
// intersection cannot be computed is left out of the result.
func (pl Plane) ClipTriangle(tri [3]*Vector) [][3]*Vector {
	var inside [3]bool
	count := 0
	for i, p := range tri {
		if pl.PointDistance(p) >= 0 {
			inside[i] = true
			count++
		}
	}

	switch count {
	case 3:
		return [][3]*Vector{{tri[0].Copy(), tri[1].Copy(), tri[2].Copy()}}
	case 0:
		return nil
	}

	edge := pl.boundary()
	cut := func(in, out *Vector) (*Vector, bool) {
		return edge.IntersectRay(in, out, DefaultEpsilon)
	}

	if count == 1 {
		i := 0
		for !inside[i] {
			i++
		}
		a, b, c := tri[i], tri[(i+1)%3], tri[(i+2)%3]
		ab, ok1 := cut(a, b)
		ac, ok2 := cut(a, c)
		if !ok1 || !ok2 {
			return nil
		}
		return [][3]*Vector{{a.Copy(), ab, ac}}
	}

	// two inside: c is the outside vertex, a and b keep their order
	i := 0
	for inside[i] {
		i++
	}
	c, a, b := tri[i], tri[(i+1)%3], tri[(i+2)%3]
	bc, ok := cut(b, c)
	if !ok {
		return nil
	}
	out := [][3]*Vector{{a.Copy(), b.Copy(), bc}}
	if ac, ok := cut(a, c); ok {
		out = append(out, [3]*Vector{a.Copy(), bc.Copy(), ac})
	}
	return out
}
