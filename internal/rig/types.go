// Package rig computes where the camera goes when a model is rendered into a
// spritesheet and into a single icon view.
package rig

import (
	"encoding/json"
	"fmt"

	"spritecam/internal/logger"
	"spritecam/internal/mathutil"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ModelDimensions holds the bounding-box extents of a model. The model is
// assumed to stand on the ground plane, spanning y=0..Y.
type ModelDimensions struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Max returns the largest extent.
func (d ModelDimensions) Max() float64 {
	return max(d.X, d.Y, d.Z)
}

// Angle is a degree value as it arrives from settings or UI controls:
// either a number or numeric text. Invalid text reads as 90°.
type Angle string

// Degrees returns the Angle for a numeric degree value.
func Degrees(d float64) Angle {
	return Angle(mathutil.FormatAngle(d))
}

// Radians converts the angle, falling back to mathutil.DefaultAngle.
func (a Angle) Radians() float64 {
	deg, ok := mathutil.ParseDegrees(string(a))
	if !ok {
		logger.Debug("invalid angle, using default",
			zap.String("input", string(a)),
			zap.Float64("default", mathutil.DefaultAngle))
	}
	return mathutil.Deg2Rad(deg)
}

// UnmarshalJSON accepts a JSON number or string.
func (a *Angle) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Angle(s)
		return nil
	}
	if string(b) == "null" {
		*a = ""
		return nil
	}
	*a = Angle(b)
	return nil
}

// UnmarshalYAML accepts any scalar.
func (a *Angle) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("rig: line %d: angle must be a number or string", node.Line)
	}
	if node.Tag == "!!null" {
		*a = ""
		return nil
	}
	*a = Angle(node.Value)
	return nil
}

// RecordParams are the user-facing render controls.
type RecordParams struct {
	// Distance multiplies the largest model dimension. Zero means 1.
	Distance float64 `json:"distance,omitempty" yaml:"distance"`
	// ViewAngle is the spritesheet camera elevation in degrees.
	ViewAngle Angle `json:"viewAngle" yaml:"viewAngle"`
}

// Multiplier returns Distance, or 1 when Distance is zero or NaN.
func (p RecordParams) Multiplier() float64 {
	if p.Distance == 0 || p.Distance != p.Distance {
		return 1
	}
	return p.Distance
}

// Camera is a position and a look-at target.
type Camera struct {
	Position mathutil.Vec3 `json:"position"`
	Target   mathutil.Vec3 `json:"target"`
}

// IconCamera is the camera for the single icon view.
type IconCamera struct {
	Camera
	// StartAngle seeds the downstream turntable/UI rotation, in degrees.
	StartAngle float64 `json:"startAngle"`
	// Light is only set when supplied by an override; nil means the
	// renderer's default lighting.
	Light *mathutil.Vec3 `json:"light,omitempty"`
}

// Rig is the result of Generate.
type Rig struct {
	Spritesheet Camera     `json:"spritesheet"`
	Icon        IconCamera `json:"icon"`
}
