package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"path/filepath"

	"spritecam/internal/compress"
	"spritecam/internal/config"
	"spritecam/internal/discover"
	"spritecam/internal/frames"
	"spritecam/internal/logger"
	"spritecam/internal/sheet"
	"spritecam/internal/turntable"

	"go.uber.org/zap"
)

// layoutFile is written next to the sheet so consumers can slice it.
type layoutFile struct {
	Image  string           `json:"image"`
	Icon   string           `json:"icon,omitempty"`
	Layout sheet.Layout     `json:"layout"`
	Steps  []turntable.Step `json:"steps"`
}

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to settings file (default: spritecam.yaml if present)")
	framesDir := flag.String("frames", "", "Directory of rendered frames, in sweep order by file name (digit runs sort numerically)")
	iconPath := flag.String("icon", "", "Rendered icon image (optional)")
	outputDir := flag.String("output", "", "Output directory (default: frames dir)")
	name := flag.String("name", "sheet", "Base name of the output files")
	columns := flag.Int("columns", 0, "Sheet columns (default: near-square)")
	cell := flag.Int("cell", 0, "Cell size in pixels (default: 128)")
	steps := flag.Int("steps", 0, "Turntable steps (default: 16)")
	mirror := flag.Bool("mirror", true, "Frames cover only non-mirrored azimuths")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	flags := config.Flags{
		Steps:     *steps,
		Columns:   *columns,
		CellSize:  *cell,
		OutputDir: *outputDir,
		LogLevel:  *logLevel,
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

	if *framesDir == "" {
		fmt.Fprintln(os.Stderr, "Error: -frames is required.")
		flag.Usage()
		os.Exit(2)
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = *framesDir
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, *framesDir, *iconPath, *name); err != nil {
		logger.Error("sheet failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, framesDir, iconPath, name string) error {
	paths, err := discover.Files(framesDir, frames.Extensions...)
	if err != nil {
		return err
	}
	imgs, err := frames.LoadAll(paths)
	if err != nil {
		return err
	}

	sweep := turntable.Sweep(cfg.Turntable.Steps, cfg.Turntable.Mirror)
	if len(imgs) == len(sweep) && len(turntable.Rendered(sweep)) != len(sweep) {
		// Every azimuth was rendered; nothing to mirror.
		logger.Info("frames cover the full sweep, mirroring disabled", zap.Int("frames", len(imgs)))
		sweep = turntable.Sweep(cfg.Turntable.Steps, false)
	}
	cells, err := sheet.FromSweep(sweep, imgs)
	if err != nil {
		return err
	}

	layout := sheet.NewLayout(len(cells), cfg.Sheet.Columns, cfg.Sheet.CellSize)
	img := sheet.Compose(layout, cells)
	logger.Info("sheet composed",
		zap.Int("frames", len(imgs)),
		zap.Int("cells", layout.Cells),
		zap.Int("columns", layout.Columns),
		zap.Int("rows", layout.Rows()),
		zap.Int("cellSize", layout.CellSize))

	enc := compress.WebPEncoder{}
	q := compress.NewQueue(2, enc)
	defer q.Close()

	type output struct {
		path    string
		pending *compress.Pending
	}
	var outs []output
	submit := func(jobName string, img image.Image) error {
		p, err := q.Submit(ctx, compress.Job{Name: jobName, Image: img})
		if err != nil {
			return err
		}
		outs = append(outs, output{path: filepath.Join(cfg.OutputDir, jobName+enc.Ext()), pending: p})
		return nil
	}

	if err := submit(name, img); err != nil {
		return err
	}
	doc := layoutFile{Image: name + enc.Ext(), Layout: layout, Steps: sweep}
	if iconPath != "" {
		icon, err := frames.Load(iconPath)
		if err != nil {
			return err
		}
		if err := submit(name+"_icon", sheet.Fit(icon, layout.CellSize)); err != nil {
			return err
		}
		doc.Icon = name + "_icon" + enc.Ext()
	}

	for _, o := range outs {
		res, err := o.pending.Wait(ctx)
		if err != nil {
			return err
		}
		if err := res.WriteFile(o.path); err != nil {
			return err
		}
		logger.Info("wrote", zap.String("path", o.path), zap.Int("bytes", len(res.Data)))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	jsonPath := filepath.Join(cfg.OutputDir, name+".json")
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return fmt.Errorf("sheet: write %s: %w", jsonPath, err)
	}
	logger.Info("wrote", zap.String("path", jsonPath))
	return nil
}
