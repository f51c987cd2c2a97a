package physics

import (
	"vertex/internal/linalg"
)

// Transform is a per-tick mutation registered on a body. bodies holds every
// body in the world, including self, and must not be modified.
type Transform func(dt float64, self *RigidBody, bodies Bodies)

// Bodies maps entity ids to their bodies for the duration of a step.
type Bodies map[string]*RigidBody

type (
	TransformList = Ordered[Transform]
	ForceSet      = Ordered[*linalg.Vector]
)

type BodyOptions struct {
	Position *linalg.Vector
	// Rotation holds Euler angles in degrees.
	Rotation *linalg.Vector
	// Mass defaults to 1.
	Mass       float64
	Forces     []Named[*linalg.Vector]
	Transforms []Named[Transform]
	// SphereRadius sizes the default bounding sphere, centered on the body.
	SphereRadius float64
}

type RigidBody struct {
	Position   *linalg.Vector
	Rotation   *linalg.Vector
	Mass       float64
	Forces     ForceSet
	Transforms TransformList
	// BoundingSphere is in body space: its position is an offset from
	// Position.
	BoundingSphere linalg.Sphere
}

func NewRigidBody(opts BodyOptions) *RigidBody {
	b := &RigidBody{
		Position: opts.Position,
		Rotation: opts.Rotation,
		Mass:     opts.Mass,
		BoundingSphere: linalg.Sphere{
			Position: linalg.Zeroes(3),
			Radius:   opts.SphereRadius,
		},
	}
	if b.Position == nil {
		b.Position = linalg.Zeroes(3)
	}
	if b.Rotation == nil {
		b.Rotation = linalg.Zeroes(3)
	}
	if b.Mass == 0 {
		b.Mass = 1
	}
	for _, f := range opts.Forces {
		b.Forces.Set(f.Name, f.Value)
	}
	for _, t := range opts.Transforms {
		b.Transforms.Set(t.Name, t.Value)
	}
	return b
}

// Force returns the named force vector, or nil.
func (b *RigidBody) Force(name string) *linalg.Vector {
	v, _ := b.Forces.Get(name)
	return v
}

// Update runs every transform once, in registration order.
func (b *RigidBody) Update(dt float64, bodies Bodies) {
	for _, fn := range b.Transforms.All() {
		fn(dt, b, bodies)
	}
}
