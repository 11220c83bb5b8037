package rig

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// View returns the right-handed look-at matrix for c with +Y up.
// When the camera looks straight up or down, +Z is used as up instead.
// A camera sitting on its target yields the identity.
func (c Camera) View() mgl64.Mat4 {
	eye := mgl64.Vec3(c.Position)
	center := mgl64.Vec3(c.Target)

	dir := center.Sub(eye)
	if dir.Len() < 1e-12 {
		return mgl64.Ident4()
	}

	up := mgl64.Vec3{0, 1, 0}
	if math.Abs(dir.Normalize().Dot(up)) > 1-1e-9 {
		up = mgl64.Vec3{0, 0, 1}
	}
	return mgl64.LookAtV(eye, center, up)
}
