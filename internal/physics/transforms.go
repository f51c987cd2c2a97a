package physics

import "vertex/internal/linalg"

// Transforms below advance a fixed step per tick and ignore dt, matching
// the frame-counted motion of the demo scenes.

// Spin adds the named force to the body's rotation.
func Spin(force string) Transform {
	return func(_ float64, self *RigidBody, _ Bodies) {
		if f := self.Force(force); f != nil {
			self.Rotation.Add(f)
		}
	}
}

// Integrate adds the named force to the body's position.
func Integrate(force string) Transform {
	return func(_ float64, self *RigidBody, _ Bodies) {
		if f := self.Force(force); f != nil {
			self.Position.Add(f)
		}
	}
}

// Gravitate accelerates the named force (a velocity) towards the body
// registered as other, with magnitude g*m1*m2/r^2 divided by the body's
// own mass.
func Gravitate(g float64, force, other string) Transform {
	return func(_ float64, self *RigidBody, bodies Bodies) {
		v := self.Force(force)
		o, ok := bodies[other]
		if v == nil || !ok || o == self {
			return
		}
		v.Add(Attraction(g, self, o).Div(self.Mass))
	}
}

// Attraction is the gravitational force on a exerted by b. It is zero when
// the bodies share a position.
func Attraction(g float64, a, b *RigidBody) *linalg.Vector {
	d := linalg.Subbed(b.Position, a.Position)
	r := d.Mag()
	if r == 0 {
		return linalg.Zeroes(d.Dim())
	}
	return d.Normalize().Scale(g * a.Mass * b.Mass / (r * r))
}
