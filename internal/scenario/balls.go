package scenario

import (
	"vertex/internal/engine"
	"vertex/internal/linalg"
	"vertex/internal/physics"
)

// Balls sends two spheres back and forth along z.
func Balls(scene *engine.Scene, opts Options) error {
	id, m, err := sphere(opts, 1)
	if err != nil {
		return err
	}

	balls := []struct {
		name      string
		position  *linalg.Vector
		rotation  *linalg.Vector
		spin      *linalg.Vector
		limit     float64
		magnitude float64
	}{
		{"earth", linalg.NewVector(5, 5, 0), linalg.NewVector(30, 0, 0), linalg.NewVector(0, 4, 0), 50, 0.1},
		{"mars", linalg.NewVector(0, 0, -25), linalg.NewVector(0, 0, 0), linalg.NewVector(0, 8, 0), 25, 0.2},
	}
	for _, b := range balls {
		body := physics.NewRigidBody(physics.BodyOptions{
			Position: b.position,
			Rotation: b.rotation,
			Forces: []physics.Named[*linalg.Vector]{
				{Name: "velocity", Value: linalg.NewVector(0, 0, 0.1)},
				{Name: "acceleration", Value: linalg.NewVector(0, 0, b.magnitude)},
				{Name: "rotation", Value: b.spin},
			},
			Transforms: []physics.Named[physics.Transform]{
				{Name: "rotate", Value: physics.Spin("rotation")},
				{Name: "move", Value: physics.Integrate("velocity")},
				{Name: "accelerate", Value: bounceZ(b.limit, b.magnitude)},
			},
		})
		if err := scene.Add(engine.NewEntity(b.name, id, m, body)); err != nil {
			return err
		}
	}
	return nil
}

// bounceZ accelerates towards -z once the body passes limit, and towards
// +z otherwise.
func bounceZ(limit, magnitude float64) physics.Transform {
	return func(_ float64, self *physics.RigidBody, _ physics.Bodies) {
		acc, vel := self.Force("acceleration"), self.Force("velocity")
		if acc == nil || vel == nil {
			return
		}
		if self.Position.Z() >= limit {
			acc.SetZ(-magnitude)
		} else {
			acc.SetZ(magnitude)
		}
		vel.Add(acc)
	}
}
