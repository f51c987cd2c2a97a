// Package physics advances rigid bodies through their registered
// transforms and resolves sphere contacts between them.
package physics

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"vertex/internal/logger"
)

var (
	ErrDuplicateBody = errors.New("physics: body already registered")
	ErrUnknownBody   = errors.New("physics: no such body")
)

type entry struct {
	id        string
	body      *RigidBody
	colliders *ColliderSet
}

// StepStats summarizes one Step call.
type StepStats struct {
	Bodies   int
	Checked  int
	Contacts int
}

// World holds bodies and colliders in registration order. A step visits
// them in that order.
type World struct {
	entries []*entry
	log     *zap.Logger
}

func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = logger.Nop()
	}
	return &World{log: log}
}

func (w *World) find(id string) *entry {
	for _, e := range w.entries {
		if e.id == id {
			return e
		}
	}
	return nil
}

// Add registers id. body may be nil for entities that only carry
// colliders. The world keeps colliders by reference, so later changes
// to the set are seen by the next step; nil starts an empty set.
func (w *World) Add(id string, body *RigidBody, colliders *ColliderSet) error {
	if w.find(id) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateBody, id)
	}
	if colliders == nil {
		colliders = &ColliderSet{}
	}
	w.entries = append(w.entries, &entry{id: id, body: body, colliders: colliders})
	return nil
}

// AddCollider attaches a named collider to id, replacing one with the same
// name.
func (w *World) AddCollider(id, name string, c Collider) error {
	e := w.find(id)
	if e == nil {
		return fmt.Errorf("%w: %s", ErrUnknownBody, id)
	}
	e.colliders.Set(name, c)
	return nil
}

func (w *World) Remove(id string) bool {
	for i, e := range w.entries {
		if e.id == id {
			w.entries = append(w.entries[:i], w.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (w *World) Body(id string) (*RigidBody, bool) {
	e := w.find(id)
	if e == nil || e.body == nil {
		return nil, false
	}
	return e.body, true
}

func (w *World) Len() int { return len(w.entries) }

// Bodies returns a snapshot of the id to body mapping.
func (w *World) Bodies() Bodies {
	out := make(Bodies, len(w.entries))
	for _, e := range w.entries {
		if e.body != nil {
			out[e.id] = e.body
		}
	}
	return out
}

// Step updates each body, then checks that entity's active colliders,
// before moving to the next entity. A collider error ends the step.
func (w *World) Step(dt float64) (StepStats, error) {
	var stats StepStats
	bodies := w.Bodies()
	entries := append([]*entry(nil), w.entries...)

	for _, e := range entries {
		if e.body != nil {
			e.body.Update(dt, bodies)
			stats.Bodies++
		}

		for name, c := range e.colliders.All() {
			if !c.Active() {
				continue
			}
			stats.Checked++
			contact, err := c.TryResolveContact()
			if err != nil {
				return stats, fmt.Errorf("collider %s/%s: %w", e.id, name, err)
			}
			if contact {
				stats.Contacts++
				w.log.Debug("contact", zap.String("entity", e.id), zap.String("collider", name))
			}
		}
	}
	return stats, nil
}
