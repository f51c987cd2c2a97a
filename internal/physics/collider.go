package physics

import (
	"errors"

	"vertex/internal/linalg"
)

var ErrMissingBody = errors.New("physics: collider is missing a body")

// Collider is checked once per physics step while active.
type Collider interface {
	Active() bool
	// TryResolveContact reports whether the shapes touch and runs any
	// contact response.
	TryResolveContact() (bool, error)
}

type ColliderSet = Ordered[Collider]

var _ Collider = (*SphereCollider)(nil)

// SphereCollider tests the bounding spheres of two bodies. Callback fires
// when contact begins, not on every step of a sustained contact.
type SphereCollider struct {
	Body        *RigidBody
	Other       *RigidBody
	Callback    func()
	IsActive    bool
	IsColliding bool
}

// NewSphereCollider returns an active collider.
func NewSphereCollider(body, other *RigidBody, callback func()) *SphereCollider {
	return &SphereCollider{Body: body, Other: other, Callback: callback, IsActive: true}
}

func (c *SphereCollider) Active() bool { return c.IsActive }

func (c *SphereCollider) TryResolveContact() (bool, error) {
	if c.Body == nil || c.Other == nil {
		return false, ErrMissingBody
	}

	contact := WorldSphere(c.Body).Intersects(WorldSphere(c.Other))
	if contact && !c.IsColliding && c.Callback != nil {
		c.Callback()
	}
	c.IsColliding = contact
	return contact, nil
}

// WorldSphere places a body's bounding sphere in world space. The stored
// radius is halved.
func WorldSphere(b *RigidBody) linalg.Sphere {
	offset := b.BoundingSphere.Position
	if offset == nil {
		offset = linalg.Zeroes(3)
	}
	return linalg.Sphere{
		Position: linalg.Added(b.Position, offset),
		Radius:   b.BoundingSphere.Radius / 2,
	}
}
