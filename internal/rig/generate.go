package rig

import (
	"math"

	"spritecam/internal/mathutil"
)

const (
	// BaseAngleDegrees is the fixed azimuth reference for both cameras.
	BaseAngleDegrees = 90.0
	// IconDistanceRatio scales the spritesheet distance for the icon camera.
	IconDistanceRatio = 0.25
	// IconHeightBias inflates the model height when framing the icon.
	// Tuned visually; keep as is.
	IconHeightBias = 1.6
	// IconStartAngle is the default icon orientation hint in degrees.
	IconStartAngle = 270.0
)

// SpherePoint returns the point at distance from the model's vertical
// midpoint, at azimuth baseAngle and elevation viewAngle (radians).
func SpherePoint(distance float64, dims ModelDimensions, baseAngle, viewAngle float64) mathutil.Vec3 {
	return mathutil.Vec3{
		-distance * math.Cos(baseAngle) * math.Sin(viewAngle),
		dims.Y/2 + distance*math.Sin(viewAngle),
		distance * math.Sin(baseAngle) * math.Cos(viewAngle),
	}
}

// Distance returns the camera sphere radius for dims: the largest extent
// times the record multiplier.
func Distance(dims ModelDimensions, params RecordParams) float64 {
	return dims.Max() * params.Multiplier()
}

// Generate computes the spritesheet and icon cameras for a model.
// overrides may be nil. It never fails: bad angles fall back to 90°
// and degenerate dimensions produce a camera at the origin.
func Generate(dims ModelDimensions, overrides *Overrides, params RecordParams) Rig {
	distance := Distance(dims, params)
	baseAngle := mathutil.AngleToRadians(BaseAngleDegrees)
	viewAngle := params.ViewAngle.Radians()

	sheet := Camera{
		Position: SpherePoint(distance, dims, baseAngle, viewAngle),
		Target:   mathutil.Vec3{0, dims.Y / 2, 0},
	}

	iconDims := dims
	iconDims.Y *= IconHeightBias
	icon := IconCamera{
		Camera: Camera{
			Position: SpherePoint(distance*IconDistanceRatio, iconDims, baseAngle, 0),
			Target:   mathutil.Vec3{0, dims.Y / 2 * IconHeightBias, 0},
		},
		StartAngle: IconStartAngle,
	}

	return Rig{
		Spritesheet: sheet,
		Icon:        overrides.IconCamera().Apply(icon),
	}
}
