package engine

import (
	"vertex/internal/graphics"
	"vertex/internal/linalg"
	"vertex/internal/mesh"
	"vertex/internal/physics"
)

// Entity ties an optional mesh to an optional rigid body. Colliders are
// stepped by the scene's physics world.
type Entity struct {
	ID        string
	MeshID    string
	Mesh      *mesh.Mesh
	Body      *physics.RigidBody
	Colliders physics.ColliderSet
}

// NewEntity builds an entity. meshID names the mesh resource; entities
// drawing the same mesh should share it.
func NewEntity(id, meshID string, m *mesh.Mesh, body *physics.RigidBody) *Entity {
	return &Entity{ID: id, MeshID: meshID, Mesh: m, Body: body}
}

// Instance places the entity's mesh at its body. Entities without a mesh
// are not drawn.
func (e *Entity) Instance() (graphics.Instance, bool) {
	if e.Mesh == nil {
		return graphics.Instance{}, false
	}
	inst := graphics.Instance{
		ID:       e.ID,
		MeshID:   e.MeshID,
		Mesh:     e.Mesh,
		Position: linalg.Zeroes(3),
		Rotation: linalg.Zeroes(3),
	}
	if e.Body != nil {
		inst.Position = e.Body.Position
		inst.Rotation = e.Body.Rotation
	}
	return inst, true
}
