// Package turntable sweeps the spritesheet camera around the model, one
// step per spritesheet cell.
//
// Azimuths follow the rig's base-angle convention: at 90° the frame camera is
// exactly the rig's spritesheet camera, and a camera at azimuth a is the
// left/right mirror image of one at 180-a.
package turntable

import (
	"spritecam/internal/mathutil"
	"spritecam/internal/rig"
)

// DefaultSteps is the number of azimuth steps in a full turn.
const DefaultSteps = 16

// Step is one azimuth of the sweep.
type Step struct {
	Index   int     `json:"index"`
	Azimuth float64 `json:"azimuth"`
	// Mirror marks steps that are not rendered; the cell is the horizontal
	// flip of step SourceIndex at azimuth Source.
	Mirror      bool    `json:"mirror,omitempty"`
	Source      float64 `json:"source"`
	SourceIndex int     `json:"sourceIndex"`
}

// Frame is a step with the camera that renders it.
type Frame struct {
	Step
	Camera rig.Camera `json:"camera"`
}

// Sweep returns steps evenly spaced over 360°, starting at 0.
// With mirror set, azimuths strictly between 90 and 270 are mirrored.
// Mirroring needs an even step count so every mirror source lies on the
// grid; odd counts render every step.
func Sweep(steps int, mirror bool) []Step {
	if steps <= 0 {
		steps = DefaultSteps
	}
	if steps%2 != 0 {
		mirror = false
	}
	out := make([]Step, steps)
	for i := range out {
		a := azimuthOf(i, steps)
		s := Step{Index: i, Azimuth: a, Source: a, SourceIndex: i}
		if mirror && a > 90 && a < 270 {
			// 180-a on the grid.
			j := (steps/2 - i + steps) % steps
			s.Mirror = true
			s.SourceIndex = j
			s.Source = azimuthOf(j, steps)
		}
		out[i] = s
	}
	return out
}

func azimuthOf(i, steps int) float64 {
	return 360 / float64(steps) * float64(i)
}

// Rendered returns the steps that need a render of their own.
func Rendered(steps []Step) []Step {
	var out []Step
	for _, s := range steps {
		if !s.Mirror {
			out = append(out, s)
		}
	}
	return out
}

// CameraAt rotates the spritesheet camera about the vertical axis through
// its target so that it sits at the given azimuth. Distance to the target
// and elevation are preserved.
func CameraAt(r rig.Rig, azimuth float64) rig.Camera {
	cam := r.Spritesheet
	yaw := mathutil.Deg2Rad(azimuth - rig.BaseAngleDegrees)
	return rig.Camera{
		Position: mathutil.RotateAbout(cam.Position, cam.Target, yaw),
		Target:   cam.Target,
	}
}

// Frames pairs each step with its camera. Mirrored steps carry the camera
// of their source azimuth.
func Frames(r rig.Rig, steps []Step) []Frame {
	out := make([]Frame, len(steps))
	for i, s := range steps {
		out[i] = Frame{Step: s, Camera: CameraAt(r, s.Source)}
	}
	return out
}
