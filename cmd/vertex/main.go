package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"go.uber.org/zap"

	"vertex/internal/config"
	"vertex/internal/logger"
	"vertex/internal/scenario"
	"vertex/internal/viewer"
)

func init() {
	// raylib must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	var (
		path  string
		scene string
	)
	flag.StringVar(&path, "config", "", "YAML config file, watched for changes")
	flag.StringVar(&scene, "scene", "", fmt.Sprintf("scenario to run %v", scenario.Names()))
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var reloads <-chan *config.Config
	if path != "" {
		cfgs, errs, err := config.Watch(ctx, path)
		if err != nil {
			log.Fatal("watch config", zap.Error(err))
		}
		go func() {
			for err := range errs {
				log.Warn("config reload failed", zap.Error(err))
			}
		}()
		reloads = cfgs
	}

	v, err := viewer.New(cfg, log)
	if err != nil {
		log.Fatal("init viewer", zap.Error(err))
	}
	if err := v.Run(ctx, reloads); err != nil {
		log.Fatal("viewer stopped", zap.Error(err))
	}
}
