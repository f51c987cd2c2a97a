// Package engine runs a scene: physics steps and render frames on their
// own schedules.
package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"vertex/internal/graphics"
	"vertex/internal/logger"
	"vertex/internal/physics"
)

// FrameStats is published after every rendered frame.
type FrameStats struct {
	Frame        uint64
	PhysicsSteps uint64
	Physics      physics.StepStats
	Render       graphics.Stats
	Elapsed      time.Duration
}

type Engine struct {
	Scene    *Scene
	Pipeline *graphics.Pipeline
	// FrameStats fires on the render step.
	FrameStats Event[FrameStats]

	loop  *Loop
	log   *zap.Logger
	stats FrameStats
	start time.Time
}

func New(scene *Scene, pipeline *graphics.Pipeline, loop *Loop, log *zap.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{Scene: scene, Pipeline: pipeline, loop: loop, log: log}
}

func (e *Engine) Start(now time.Time) {
	e.start = now
	e.loop.Start(now)
	e.log.Info("engine started",
		zap.String("scene", e.Scene.Name),
		zap.Int("entities", e.Scene.Len()),
		zap.Duration("physicsInterval", e.loop.PhysicsInterval()),
		zap.Duration("renderInterval", e.loop.RenderInterval()),
	)
}

// Tick runs whichever steps are due. Physics runs before rendering so a
// frame shows the newest positions.
func (e *Engine) Tick(now time.Time) error {
	dt, stepPhysics, stepRender := e.loop.Tick(now)
	if stepPhysics {
		st, err := e.Scene.Step(dt)
		if err != nil {
			return fmt.Errorf("physics step: %w", err)
		}
		e.stats.PhysicsSteps++
		e.stats.Physics = st
	}
	if stepRender && e.Pipeline != nil {
		if err := e.Pipeline.Render(e.Scene.Instances()); err != nil {
			return fmt.Errorf("render frame %d: %w", e.stats.Frame, err)
		}
		e.stats.Frame++
		e.stats.Render = e.Pipeline.Stats()
		e.stats.Elapsed = now.Sub(e.start)
		e.FrameStats.Invoke(e.stats)
	}
	return nil
}

// Stats returns the counters as of the last tick.
func (e *Engine) Stats() FrameStats { return e.stats }

func (e *Engine) Close() {
	if e.Pipeline != nil {
		e.Pipeline.Close()
	}
}
