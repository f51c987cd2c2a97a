package engine

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"vertex/internal/graphics"
	"vertex/internal/linalg"
	"vertex/internal/logger"
	"vertex/internal/physics"
)

var ErrDuplicateEntity = errors.New("engine: entity already exists")

// Scene is an insertion-ordered registry of entities. Every entity is also
// registered with the scene's physics world.
type Scene struct {
	Name     string
	entities []*Entity
	byID     map[string]*Entity
	world    *physics.World
	log      *zap.Logger
}

func NewScene(name string, log *zap.Logger) *Scene {
	if log == nil {
		log = logger.Nop()
	}
	return &Scene{
		Name:  name,
		byID:  make(map[string]*Entity),
		world: physics.NewWorld(log.Named("physics")),
		log:   log,
	}
}

// Add registers e. A body whose bounding sphere has no radius takes the
// bounds of the entity's mesh.
func (s *Scene) Add(e *Entity) error {
	if _, ok := s.byID[e.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateEntity, e.ID)
	}
	if e.Body != nil && e.Mesh != nil && e.Body.BoundingSphere.Radius == 0 {
		b := e.Mesh.Bounds()
		e.Body.BoundingSphere = linalg.Sphere{Position: b.Position.Copy(), Radius: b.Radius}
	}
	if err := s.world.Add(e.ID, e.Body, &e.Colliders); err != nil {
		return err
	}
	s.entities = append(s.entities, e)
	s.byID[e.ID] = e
	s.log.Debug("entity added", zap.String("id", e.ID), zap.String("mesh", e.MeshID))
	return nil
}

func (s *Scene) Remove(id string) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, e := range s.entities {
		if e.ID == id {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
	s.world.Remove(id)
	return true
}

func (s *Scene) Get(id string) (*Entity, bool) {
	e, ok := s.byID[id]
	return e, ok
}

func (s *Scene) Len() int { return len(s.entities) }

// Entities returns the entities in insertion order.
func (s *Scene) Entities() []*Entity {
	return append([]*Entity(nil), s.entities...)
}

func (s *Scene) Bodies() physics.Bodies { return s.world.Bodies() }

func (s *Scene) Physics() *physics.World { return s.world }

// Instances lists the drawable entities in insertion order.
func (s *Scene) Instances() []graphics.Instance {
	out := make([]graphics.Instance, 0, len(s.entities))
	for _, e := range s.entities {
		if inst, ok := e.Instance(); ok {
			out = append(out, inst)
		}
	}
	return out
}

func (s *Scene) Step(dt float64) (physics.StepStats, error) {
	return s.world.Step(dt)
}
