package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spritecam/internal/batch"
	"spritecam/internal/config"
	"spritecam/internal/discover"
	"spritecam/internal/logger"

	"go.uber.org/zap"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to settings file (default: spritecam.yaml if present)")
	testN := flag.Int("test", 0, "Process only first N models for testing")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	dataDir := flag.String("data", "", "Directory (or single file) to scan for .glb/.gltf models")
	outputDir := flag.String("output", "", "Output directory for manifest.json (default: data dir)")
	distance := flag.Float64("distance", 0, "Distance multiplier (default: 1)")
	viewAngle := flag.String("view-angle", "", "Elevation in degrees (default: 90)")
	steps := flag.Int("steps", 0, "Turntable steps (default: 16)")
	mirror := flag.Bool("mirror", true, "Mirror azimuths between 90 and 270")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	logFile := flag.String("log-file", "", "Also write JSON logs to this file")

	flag.Parse()

	// Load config
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// CLI flags override config file
	flags := config.Flags{
		Distance:  *distance,
		ViewAngle: *viewAngle,
		Steps:     *steps,
		DataDir:   *dataDir,
		OutputDir: *outputDir,
		Workers:   *workers,
		LogLevel:  *logLevel,
		LogFile:   *logFile,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "mirror" {
			flags.Mirror = mirror
		}
	})
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.DataDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no model directory. Use -data flag or dataDir in the settings file.")
		os.Exit(1)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = cfg.DataDir
		if info, err := os.Stat(cfg.DataDir); err == nil && !info.IsDir() {
			cfg.OutputDir = filepath.Dir(cfg.DataDir)
		}
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	models, err := discover.Models(cfg.DataDir)
	if err != nil {
		logger.Error("scan models", zap.String("data", cfg.DataDir), zap.Error(err))
		os.Exit(1)
	}

	// Limit for testing
	if *testN > 0 && *testN < len(models) {
		models = models[:*testN]
	}

	if len(models) == 0 {
		fmt.Println("No models found.")
		os.Exit(0)
	}

	logger.Info("starting batch",
		zap.Int("models", len(models)),
		zap.Int("workers", cfg.Workers),
		zap.Int("steps", cfg.Turntable.Steps),
		zap.Bool("mirror", cfg.Turntable.Mirror),
		zap.String("output", cfg.OutputDir))

	start := time.Now()

	batchCfg := batch.Config{
		Record:    cfg.Record,
		Overrides: &cfg.Overrides,
		Steps:     cfg.Turntable.Steps,
		Mirror:    cfg.Turntable.Mirror,
		Workers:   cfg.Workers,
	}
	results := batch.Run(batchCfg, models)

	success, failed := batch.Summary(results)
	logger.Info("batch done",
		zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)),
		zap.Int("success", success),
		zap.Int("failed", len(failed)))

	limit := min(len(failed), 20)
	for _, r := range failed[:limit] {
		logger.Warn("failed", zap.String("model", r.Model), zap.String("error", r.Error))
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	root := cfg.DataDir
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		root = filepath.Dir(root)
	}
	if err := batch.WriteManifest(manifestPath, root, batchCfg, results); err != nil {
		logger.Error("manifest write failed", zap.String("path", manifestPath), zap.Error(err))
		os.Exit(1)
	}
	fmt.Printf("Manifest: %s\n", manifestPath)

	if len(failed) > 0 {
		os.Exit(1)
	}
}
