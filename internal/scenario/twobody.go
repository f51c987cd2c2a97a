package scenario

import (
	"vertex/internal/engine"
	"vertex/internal/linalg"
	"vertex/internal/physics"
)

// G is the gravitational constant of the two-body scene.
const G = 0.025

// TwoBody places a heavy earth and a light mars that attract each other.
// Their velocities reverse when the two collide.
func TwoBody(scene *engine.Scene, opts Options) error {
	earthMesh, em, err := sphere(opts, 1)
	if err != nil {
		return err
	}
	marsMesh, mm, err := sphere(opts, 0.25)
	if err != nil {
		return err
	}

	earth := engine.NewEntity("earth", earthMesh, em, physics.NewRigidBody(physics.BodyOptions{
		Position: linalg.NewVector(7.5, 5, -5),
		Rotation: linalg.NewVector(30, 0, 0),
		Mass:     10,
		Forces: []physics.Named[*linalg.Vector]{
			{Name: "velocity", Value: linalg.NewVector(0, 0, 0.1)},
			{Name: "rotation", Value: linalg.NewVector(0, 1, 0)},
		},
		Transforms: []physics.Named[physics.Transform]{
			{Name: "rotate", Value: physics.Spin("rotation")},
			{Name: "applyGravity", Value: physics.Gravitate(G, "velocity", "mars")},
			{Name: "move", Value: physics.Integrate("velocity")},
		},
	}))
	mars := engine.NewEntity("mars", marsMesh, mm, physics.NewRigidBody(physics.BodyOptions{
		Position: linalg.NewVector(-5, 0, 0),
		Rotation: linalg.NewVector(0, 2, 0),
		Mass:     0.5,
		Forces: []physics.Named[*linalg.Vector]{
			{Name: "velocity", Value: linalg.NewVector(0, 0, 0)},
			{Name: "rotation", Value: linalg.NewVector(0, 4, 0)},
		},
		Transforms: []physics.Named[physics.Transform]{
			{Name: "rotate", Value: physics.Spin("rotation")},
			{Name: "applyGravity", Value: physics.Gravitate(G, "velocity", "earth")},
			{Name: "move", Value: physics.Integrate("velocity")},
		},
	}))

	earth.Colliders.Set("withMars", physics.NewSphereCollider(earth.Body, mars.Body, func() {
		earth.Body.Force("velocity").Scale(-1)
		mars.Body.Force("velocity").Scale(-1)
	}))

	if err := scene.Add(earth); err != nil {
		return err
	}
	return scene.Add(mars)
}
