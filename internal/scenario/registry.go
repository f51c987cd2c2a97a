// Package scenario builds the demo scenes.
package scenario

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"vertex/internal/engine"
	"vertex/internal/mesh"
)

var ErrUnknownScenario = errors.New("scenario: not registered")

// Options are shared by every builder.
type Options struct {
	Meshes *mesh.Cache
	// SpherePath points to an OBJ file used for every sphere. Empty means
	// a procedural UV sphere.
	SpherePath string
}

// Builder adds a scenario's entities to scene.
type Builder func(scene *engine.Scene, opts Options) error

var registry = map[string]Builder{}

// Register makes a builder available by name. It panics on a duplicate
// name.
func Register(name string, b Builder) {
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("scenario %q already registered", name))
	}
	registry[name] = b
}

// Build runs the named builder against scene.
func Build(name string, scene *engine.Scene, opts Options) error {
	b, ok := registry[name]
	if !ok {
		return fmt.Errorf("%w: %q (have %v)", ErrUnknownScenario, name, Names())
	}
	if opts.Meshes == nil {
		opts.Meshes = mesh.NewCache()
	}
	if err := b(scene, opts); err != nil {
		return fmt.Errorf("scenario %s: %w", name, err)
	}
	return nil
}

// Names returns the registered names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

func init() {
	Register("twoBody", TwoBody)
	Register("balls", Balls)
}
