package linalg

type Sphere struct {
	Position *Vector
	Radius   float64
}

// Intersects reports whether the centers are closer than the radius sum.
func (s Sphere) Intersects(o Sphere) bool {
	return o.Position.Vec3().Sub(s.Position.Vec3()).Len() < s.Radius+o.Radius
}
