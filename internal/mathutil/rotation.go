package mathutil

import "github.com/go-gl/mathgl/mgl64"

// RotateAbout rotates p around the vertical axis through pivot by yaw
// radians. Positive yaw turns +Z toward +X.
func RotateAbout(p, pivot Vec3, yaw float64) Vec3 {
	return Vec3(mgl64.Rotate3DY(yaw).Mul3x1(mgl64.Vec3(p.Sub(pivot)))).Add(pivot)
}
