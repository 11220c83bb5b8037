package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"spritecam/internal/config"
	"spritecam/internal/logger"
	"spritecam/internal/model"
	"spritecam/internal/rig"
	"spritecam/internal/turntable"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

type output struct {
	Model      string              `json:"model,omitempty"`
	Dimensions rig.ModelDimensions `json:"dimensions"`
	Distance   float64             `json:"distance"`
	Rig        rig.Rig             `json:"rig"`
	Views      views               `json:"views"`
	Frames     []turntable.Frame   `json:"frames,omitempty"`
}

type views struct {
	Spritesheet mgl64.Mat4 `json:"spritesheet"`
	Icon        mgl64.Mat4 `json:"icon"`
}

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to settings file (default: spritecam.yaml if present)")
	modelPath := flag.String("model", "", "Path to a .glb/.gltf model")
	dims := flag.String("dims", "", "Model dimensions as x,y,z (instead of -model)")
	distance := flag.Float64("distance", 0, "Distance multiplier (default: 1)")
	viewAngle := flag.String("view-angle", "", "Elevation in degrees (default: 90)")
	steps := flag.Int("steps", 0, "Turntable steps (default: 16)")
	mirror := flag.Bool("mirror", true, "Mirror azimuths between 90 and 270")
	withFrames := flag.Bool("frames", false, "Include turntable cameras in the output")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	flags := config.Flags{
		Distance:  *distance,
		ViewAngle: *viewAngle,
		Steps:     *steps,
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

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var d rig.ModelDimensions
	switch {
	case *modelPath != "" && *dims != "":
		fmt.Fprintln(os.Stderr, "Error: use either -model or -dims, not both.")
		os.Exit(2)
	case *modelPath != "":
		d, err = model.LoadDimensions(*modelPath)
	case *dims != "":
		d, err = model.ParseDimensions(*dims)
	default:
		fmt.Fprintln(os.Stderr, "Error: -model or -dims is required.")
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.Error("dimensions", zap.Error(err))
		os.Exit(1)
	}

	r := rig.Generate(d, &cfg.Overrides, cfg.Record)
	logger.Debug("rig generated",
		zap.String("model", *modelPath),
		zap.Float64("max", d.Max()),
		zap.String("viewAngle", string(cfg.Record.ViewAngle)))

	out := output{
		Model:      *modelPath,
		Dimensions: d,
		Distance:   rig.Distance(d, cfg.Record),
		Rig:        r,
		Views: views{
			Spritesheet: r.Spritesheet.View(),
			Icon:        r.Icon.View(),
		},
	}
	if *withFrames {
		out.Frames = turntable.Frames(r, turntable.Sweep(cfg.Turntable.Steps, cfg.Turntable.Mirror))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("write output", zap.Error(err))
		os.Exit(1)
	}
}
