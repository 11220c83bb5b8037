// Package config handles project settings: record parameters, icon camera
// overrides, turntable and spritesheet options, logging.
package config

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"spritecam/internal/rig"
	"spritecam/internal/sheet"
	"spritecam/internal/turntable"
)

// Config holds all configurable settings.
type Config struct {
	Record rig.RecordParams `yaml:"record"`
	// Overrides carries the icon camera override under the top-level "icon" key.
	Overrides rig.Overrides `yaml:",inline"`

	Turntable TurntableConfig `yaml:"turntable"`
	Sheet     SheetConfig     `yaml:"sheet"`
	Logging   LoggingConfig   `yaml:"logging"`

	DataDir   string `yaml:"dataDir"`
	OutputDir string `yaml:"outputDir"`
	Workers   int    `yaml:"workers"`
}

// TurntableConfig controls the azimuth sweep.
type TurntableConfig struct {
	Steps  int  `yaml:"steps"`
	Mirror bool `yaml:"mirror"`
}

// SheetConfig controls spritesheet assembly.
type SheetConfig struct {
	CellSize int `yaml:"cellSize"`
	Columns  int `yaml:"columns"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns a Config with default values.
// The view angle is left empty so the camera core applies its own default.
func Default() *Config {
	return &Config{
		Record: rig.RecordParams{Distance: 1},
		Turntable: TurntableConfig{
			Steps:  turntable.DefaultSteps,
			Mirror: true,
		},
		Sheet: SheetConfig{
			CellSize: sheet.DefaultCellSize,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Flags holds CLI flag values that override config file settings.
// Zero values and nil pointers mean "not given".
type Flags struct {
	Distance  float64
	ViewAngle string
	Steps     int
	Mirror    *bool
	Columns   int
	CellSize  int
	DataDir   string
	OutputDir string
	Workers   int
	LogLevel  string
	LogFile   string
}

// Resolve applies flags over the loaded values and fills remaining defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Distance != 0 {
		c.Record.Distance = flags.Distance
	}
	if flags.ViewAngle != "" {
		c.Record.ViewAngle = rig.Angle(flags.ViewAngle)
	}
	if flags.Steps > 0 {
		c.Turntable.Steps = flags.Steps
	}
	if flags.Mirror != nil {
		c.Turntable.Mirror = *flags.Mirror
	}
	if flags.Columns > 0 {
		c.Sheet.Columns = flags.Columns
	}
	if flags.CellSize > 0 {
		c.Sheet.CellSize = flags.CellSize
	}
	if flags.DataDir != "" {
		c.DataDir = flags.DataDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.Logging.Level = flags.LogLevel
	}
	if flags.LogFile != "" {
		c.Logging.File = flags.LogFile
	}

	if c.Turntable.Steps <= 0 {
		c.Turntable.Steps = turntable.DefaultSteps
	}
	if c.Sheet.CellSize <= 0 {
		c.Sheet.CellSize = sheet.DefaultCellSize
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate reports settings no command can work with.
func (c *Config) Validate() error {
	var errs []error
	if d := c.Record.Distance; math.IsInf(d, 0) || d < 0 {
		errs = append(errs, fmt.Errorf("record.distance must be a finite value >= 0, got %v", d))
	}
	if c.Turntable.Steps < 0 {
		errs = append(errs, fmt.Errorf("turntable.steps must be >= 0, got %d", c.Turntable.Steps))
	}
	if c.Sheet.CellSize < 0 {
		errs = append(errs, fmt.Errorf("sheet.cellSize must be >= 0, got %d", c.Sheet.CellSize))
	}
	if c.Sheet.Columns < 0 {
		errs = append(errs, fmt.Errorf("sheet.columns must be >= 0, got %d", c.Sheet.Columns))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
