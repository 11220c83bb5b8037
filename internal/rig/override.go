package rig

import "spritecam/internal/mathutil"

// Overrides is the camera section of a project settings file.
// Only the icon camera can be overridden.
type Overrides struct {
	Icon *IconOverride `json:"icon,omitempty" yaml:"icon"`
}

// IconOverride wraps the icon camera override.
type IconOverride struct {
	Camera *CameraOverride `json:"camera,omitempty" yaml:"camera"`
}

// CameraOverride lists the icon camera keys a user may replace.
// A nil field keeps the computed value; a set field replaces it whole.
type CameraOverride struct {
	Position   *mathutil.Vec3 `json:"position,omitempty" yaml:"position"`
	Target     *mathutil.Vec3 `json:"target,omitempty" yaml:"target"`
	Light      *mathutil.Vec3 `json:"light,omitempty" yaml:"light"`
	StartAngle *float64       `json:"startAngle,omitempty" yaml:"startAngle"`
}

// IconCamera returns the icon camera override, or nil.
func (o *Overrides) IconCamera() *CameraOverride {
	if o == nil || o.Icon == nil {
		return nil
	}
	return o.Icon.Camera
}

// Apply returns c with every key set in o replaced.
func (o *CameraOverride) Apply(c IconCamera) IconCamera {
	if o == nil {
		return c
	}
	if o.Position != nil {
		c.Position = *o.Position
	}
	if o.Target != nil {
		c.Target = *o.Target
	}
	if o.Light != nil {
		l := *o.Light
		c.Light = &l
	}
	if o.StartAngle != nil {
		c.StartAngle = *o.StartAngle
	}
	return c
}
