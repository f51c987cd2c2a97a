// Package viewer shows a running scene in a raylib window.
package viewer

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"vertex/internal/config"
	"vertex/internal/engine"
	"vertex/internal/graphics"
	"vertex/internal/logger"
	"vertex/internal/scenario"
)

type Viewer struct {
	cfg     *config.Config
	engine  *engine.Engine
	window  *Window
	overlay Overlay
	stats   engine.FrameStats
	log     *zap.Logger
}

func New(cfg *config.Config, log *zap.Logger) (*Viewer, error) {
	if log == nil {
		log = logger.Nop()
	}
	win := NewWindow(cfg.Pipeline.Width, cfg.Pipeline.Height)
	pipe, err := graphics.New(win, cfg.GraphicsOptions(), log.Named("graphics"))
	if err != nil {
		return nil, err
	}

	scene := engine.NewScene(cfg.Scene.Name, log.Named("scene"))
	if err := scenario.Build(cfg.Scene.Name, scene, scenario.Options{SpherePath: cfg.Scene.SpherePath}); err != nil {
		pipe.Close()
		return nil, err
	}
	loop, err := engine.NewLoop(cfg.Pipeline.PhysicsRate, cfg.Pipeline.TargetFPS)
	if err != nil {
		pipe.Close()
		return nil, err
	}

	v := &Viewer{
		cfg:     cfg,
		engine:  engine.New(scene, pipe, loop, log),
		window:  win,
		overlay: Overlay{Visible: true},
		log:     log,
	}
	v.engine.FrameStats.AddListener(func(s engine.FrameStats) { v.stats = s })
	return v, nil
}

func (v *Viewer) Engine() *engine.Engine { return v.engine }

// Run opens the window and blocks until it is closed or ctx is done.
// Configs received on reloads are applied between frames.
func (v *Viewer) Run(ctx context.Context, reloads <-chan *config.Config) error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(v.cfg.Pipeline.Width), int32(v.cfg.Pipeline.Height), fmt.Sprintf("vertex - %s", v.cfg.Scene.Name))
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	initStyle()

	defer v.engine.Close()
	v.engine.Start(time.Now())

	cam := v.engine.Pipeline.Camera()
	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-reloads:
			if ok {
				v.Apply(c)
			} else {
				reloads = nil
			}
		default:
		}

		Control(cam, raylibKeys{})
		if err := v.engine.Tick(time.Now()); err != nil {
			return err
		}

		rl.BeginDrawing()
		v.window.Present()
		v.overlay.Draw(v.stats, v.engine.Pipeline, cam)
		rl.EndDrawing()
	}
	return nil
}

// Apply takes the live settings of a reloaded config. Projection, rates
// and scene changes need a restart.
func (v *Viewer) Apply(c *config.Config) {
	p := v.engine.Pipeline
	opts := c.GraphicsOptions()
	p.SetStyle(opts.Style)

	cam := p.Camera()
	cam.Displacement = opts.Camera.Displacement
	cam.Light = opts.Camera.Light

	if c.Scene != v.cfg.Scene || c.Camera.FieldOfView != v.cfg.Camera.FieldOfView ||
		c.Pipeline.PhysicsRate != v.cfg.Pipeline.PhysicsRate || c.Pipeline.TargetFPS != v.cfg.Pipeline.TargetFPS {
		v.log.Warn("config change needs a restart to take effect")
	}
	v.cfg = c
	v.log.Info("config reloaded", zap.Stringer("style", opts.Style), zap.Float64("displacement", cam.Displacement))
}
