package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/leterax/voxel-terrain/pkg/game"
	"github.com/leterax/voxel-terrain/pkg/noise"
	"github.com/leterax/voxel-terrain/pkg/voxel"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Terrain config YAML (empty for defaults)")
	seed := flag.Int64("seed", 0, "Noise seed, overrides the config file when set")
	radius := flag.Int("radius", 2, "Generation radius around the origin (in chunks)")
	workers := flag.Int("workers", 0, "Worker goroutines (0 for one per CPU)")
	verbose := flag.Bool("v", false, "Log every chunk")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := voxel.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = voxel.LoadConfig(*configPath); err != nil {
			log.Error("failed to load config", "err", err)
			os.Exit(1)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.Seed = *seed
		}
	})

	if err := run(cfg, *radius, *workers, log); err != nil {
		log.Error("generation stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg voxel.Config, radius, workers int, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cm := game.NewChunkManager(cfg, noise.Perlin(cfg.Seed), workers, log)
	defer cm.Cleanup()

	log.Info("generating terrain",
		"seed", cfg.Seed, "radius", radius,
		"chunk_size", cfg.ChunkSize, "chunk_height", cfg.ChunkHeight)

	if err := cm.GenerateArea(ctx, voxel.ChunkCoord{}, radius); err != nil {
		return err
	}

	s := cm.Stats()
	log.Info("terrain ready",
		"chunks", s.Chunks, "faces", s.Faces,
		"vertices", s.Vertices, "triangles", s.Triangles)
	return nil
}
