// Command snapshot renders a scenario without a window and writes every
// frame as a PNG.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"vertex/internal/config"
	"vertex/internal/engine"
	"vertex/internal/graphics"
	"vertex/internal/logger"
	"vertex/internal/scenario"
	"vertex/internal/surface"
)

func main() {
	var (
		path   string
		scene  string
		out    string
		frames int
	)
	flag.StringVar(&path, "config", "", "YAML config file")
	flag.StringVar(&scene, "scene", "", fmt.Sprintf("scenario to render %v", scenario.Names()))
	flag.StringVar(&out, "out", "frames", "output directory")
	flag.IntVar(&frames, "frames", 60, "number of frames to render")
	flag.Parse()

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if scene != "" {
		cfg.Scene.Name = scene
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, out, frames, log); err != nil {
		log.Fatal("snapshot failed", zap.Error(err))
	}
}

func run(cfg *config.Config, out string, frames int, log *zap.Logger) error {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}

	img := surface.NewImage(cfg.Pipeline.Width, cfg.Pipeline.Height)
	opts := cfg.GraphicsOptions()
	// frames must match the physics state they were taken at
	opts.UseParallelWorker = false
	pipe, err := graphics.New(img, opts, log.Named("graphics"))
	if err != nil {
		return err
	}
	defer pipe.Close()

	scene := engine.NewScene(cfg.Scene.Name, log.Named("scene"))
	if err := scenario.Build(cfg.Scene.Name, scene, scenario.Options{SpherePath: cfg.Scene.SpherePath}); err != nil {
		return err
	}

	steps := max(cfg.Pipeline.PhysicsRate/cfg.Pipeline.TargetFPS, 1)
	dt := 1 / float64(cfg.Pipeline.PhysicsRate)
	for i := range frames {
		for range steps {
			if _, err := scene.Step(dt); err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
		}
		if err := pipe.Render(scene.Instances()); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		name := filepath.Join(out, fmt.Sprintf("frame-%04d.png", i))
		if err := img.Save(name); err != nil {
			return err
		}
		st := pipe.Stats()
		log.Debug("frame written",
			zap.String("file", name),
			zap.Int("fragments", st.Fragments),
			zap.Int("culled", st.Culled),
		)
	}
	log.Info("snapshot done", zap.Int("frames", frames), zap.String("dir", out))
	return nil
}
