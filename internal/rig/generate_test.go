package rig

import (
	"math"
	"testing"

	"spritecam/internal/mathutil"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got mathutil.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestSpherePoint_FrontalElevation(t *testing.T) {
	dims := ModelDimensions{X: 3, Y: 8, Z: 1}
	base := math.Pi / 2
	for _, d := range []float64{0, 0.5, 1, 7, 1000} {
		p := SpherePoint(d, dims, base, 0)
		assert.InDelta(t, 0, p[0], eps)
		assert.InDelta(t, dims.Y/2, p[1], eps)
		assert.InDelta(t, d, p[2], eps)
	}
}

func TestSpherePoint_ElevationOnly(t *testing.T) {
	// With viewAngle = 0 and baseAngle = π/2 the z term carries the full distance
	// and x vanishes regardless of distance.
	p := SpherePoint(5, ModelDimensions{Y: 2}, math.Pi/2, 0)
	assertVec(t, mathutil.Vec3{0, 1, 5}, p)
}

func TestSpherePoint_ConstantRadiusOverElevation(t *testing.T) {
	dims := ModelDimensions{X: 1, Y: 6, Z: 2}
	center := mathutil.Vec3{0, dims.Y / 2, 0}
	for deg := -180.0; deg <= 180; deg += 15 {
		p := SpherePoint(4, dims, math.Pi/2, mathutil.Deg2Rad(deg))
		assert.InDelta(t, 4, p.Dist(center), eps, "viewAngle=%v", deg)
	}
}

func TestGenerate_TallModelFromAbove(t *testing.T) {
	dims := ModelDimensions{X: 2, Y: 4, Z: 2}
	r := Generate(dims, nil, RecordParams{ViewAngle: Degrees(90)})

	assert.Equal(t, 4.0, Distance(dims, RecordParams{ViewAngle: Degrees(90)}))
	assertVec(t, mathutil.Vec3{0, 2, 0}, r.Spritesheet.Target)
	assertVec(t, mathutil.Vec3{0, 6, 0}, r.Spritesheet.Position)

	// Icon: quarter distance, frontal, height inflated by 1.6.
	assertVec(t, mathutil.Vec3{0, 3.2, 1}, r.Icon.Position)
	assertVec(t, mathutil.Vec3{0, 3.2, 0}, r.Icon.Target)
	assert.Equal(t, 270.0, r.Icon.StartAngle)
	assert.Nil(t, r.Icon.Light)
}

func TestGenerate_LargestAxisDrivesDistance(t *testing.T) {
	dims := ModelDimensions{X: 10, Y: 2, Z: 3}
	r := Generate(dims, nil, RecordParams{Distance: 2, ViewAngle: Degrees(0)})
	assertVec(t, mathutil.Vec3{0, 1, 20}, r.Spritesheet.Position)
	assertVec(t, mathutil.Vec3{0, 1.6, 5}, r.Icon.Position)
}

func TestGenerate_ZeroDistanceMeansOne(t *testing.T) {
	dims := ModelDimensions{X: 2, Y: 4, Z: 2}
	absent := Generate(dims, nil, RecordParams{ViewAngle: Degrees(90)})
	zero := Generate(dims, nil, RecordParams{Distance: 0, ViewAngle: Degrees(90)})
	nan := Generate(dims, nil, RecordParams{Distance: math.NaN(), ViewAngle: Degrees(90)})
	assert.Equal(t, absent, zero)
	assert.Equal(t, absent, nan)
}

func TestGenerate_InvalidViewAngleFallsBack(t *testing.T) {
	dims := ModelDimensions{X: 1, Y: 1, Z: 1}
	want := Generate(dims, nil, RecordParams{ViewAngle: Degrees(90)})
	for _, a := range []Angle{"", "abc", "NaN", Degrees(math.NaN())} {
		assert.Equal(t, want, Generate(dims, nil, RecordParams{ViewAngle: a}), "angle %q", a)
	}
}

func TestGenerate_TextAndNumericAnglesAgree(t *testing.T) {
	dims := ModelDimensions{X: 3, Y: 5, Z: 4}
	for _, deg := range []float64{-30, 0, 12.5, 45, 89.999} {
		num := Generate(dims, nil, RecordParams{ViewAngle: Degrees(deg)})
		txt := Generate(dims, nil, RecordParams{ViewAngle: Angle(" " + mathutil.FormatAngle(deg) + " ")})
		assert.Equal(t, num, txt)
	}
}

func TestGenerate_NonNumericSpellingsFallBack(t *testing.T) {
	dims := ModelDimensions{X: 2, Y: 4, Z: 2}
	want := Generate(dims, nil, RecordParams{ViewAngle: Degrees(90)})
	for _, a := range []Angle{"inf", "-inf", "Infinity", "nan", "1e999", Degrees(math.Inf(1))} {
		r := Generate(dims, nil, RecordParams{ViewAngle: a})
		assert.Equal(t, want, r, "angle %q", a)
		for _, v := range append(r.Spritesheet.Position[:], r.Icon.Position[:]...) {
			assert.False(t, math.IsNaN(v), "angle %q", a)
		}
	}

	// Hex text reads up to the "x", like any other trailing junk.
	hex := Generate(dims, nil, RecordParams{ViewAngle: "0x1p4"})
	assert.Equal(t, Generate(dims, nil, RecordParams{ViewAngle: Degrees(0)}), hex)
}

func TestGenerate_DegenerateDimensions(t *testing.T) {
	r := Generate(ModelDimensions{}, nil, RecordParams{ViewAngle: Degrees(45)})
	assertVec(t, mathutil.Vec3{}, r.Spritesheet.Position)
	assertVec(t, mathutil.Vec3{}, r.Spritesheet.Target)
	assertVec(t, mathutil.Vec3{}, r.Icon.Position)
}

func TestGenerate_StartAngleOverrideKeepsComputedCamera(t *testing.T) {
	dims := ModelDimensions{X: 2, Y: 4, Z: 2}
	params := RecordParams{ViewAngle: Degrees(30)}
	base := Generate(dims, nil, params)

	start := 45.0
	r := Generate(dims, &Overrides{Icon: &IconOverride{Camera: &CameraOverride{StartAngle: &start}}}, params)

	assert.Equal(t, 45.0, r.Icon.StartAngle)
	assert.Equal(t, base.Icon.Position, r.Icon.Position)
	assert.Equal(t, base.Icon.Target, r.Icon.Target)
	assert.Equal(t, base.Spritesheet, r.Spritesheet)
}

func TestGenerate_OverridesReplaceWholeKeys(t *testing.T) {
	dims := ModelDimensions{X: 2, Y: 4, Z: 2}
	pos := mathutil.Vec3{1, 2, 3}
	light := mathutil.Vec3{0, -1, 0}
	ov := &Overrides{Icon: &IconOverride{Camera: &CameraOverride{Position: &pos, Light: &light}}}

	r := Generate(dims, ov, RecordParams{ViewAngle: Degrees(90)})
	assert.Equal(t, pos, r.Icon.Position)
	assertVec(t, mathutil.Vec3{0, 3.2, 0}, r.Icon.Target)
	require.NotNil(t, r.Icon.Light)
	assert.Equal(t, light, *r.Icon.Light)
	assert.Equal(t, IconStartAngle, r.Icon.StartAngle)

	// The result does not alias the override.
	light[1] = 5
	assert.Equal(t, -1.0, r.Icon.Light[1])
}

func TestGenerate_EmptyOverrideSections(t *testing.T) {
	dims := ModelDimensions{X: 2, Y: 4, Z: 2}
	params := RecordParams{ViewAngle: Degrees(10)}
	want := Generate(dims, nil, params)
	assert.Equal(t, want, Generate(dims, &Overrides{}, params))
	assert.Equal(t, want, Generate(dims, &Overrides{Icon: &IconOverride{}}, params))
	assert.Equal(t, want, Generate(dims, &Overrides{Icon: &IconOverride{Camera: &CameraOverride{}}}, params))
}

func TestCameraView(t *testing.T) {
	r := Generate(ModelDimensions{X: 2, Y: 4, Z: 2}, nil, RecordParams{ViewAngle: Degrees(30)})

	for _, cam := range []Camera{r.Spritesheet, r.Icon.Camera} {
		v := cam.View()
		target := v.Mul4x1(mgl64.Vec3(cam.Target).Vec4(1))
		dist := cam.Position.Dist(cam.Target)
		assert.InDelta(t, 0, target[0], eps)
		assert.InDelta(t, 0, target[1], eps)
		assert.InDelta(t, -dist, target[2], eps)
	}
}

func TestCameraView_StraightDown(t *testing.T) {
	// viewAngle 90 puts the camera directly above the target.
	r := Generate(ModelDimensions{X: 2, Y: 4, Z: 2}, nil, RecordParams{ViewAngle: Degrees(90)})
	v := r.Spritesheet.View()
	for _, f := range v {
		assert.False(t, math.IsNaN(f))
	}
	target := v.Mul4x1(mgl64.Vec3(r.Spritesheet.Target).Vec4(1))
	assert.InDelta(t, -4, target[2], eps)
}

func TestCameraView_Degenerate(t *testing.T) {
	assert.Equal(t, mgl64.Ident4(), Camera{}.View())
}
