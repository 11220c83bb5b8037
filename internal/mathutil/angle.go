package mathutil

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultAngle is substituted for any angle that is missing or not a number.
const DefaultAngle = 90.0

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}

// AngleToRadians converts an angle in degrees to radians.
// NaN and ±Inf degrade to DefaultAngle instead of propagating.
func AngleToRadians(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		deg = DefaultAngle
	}
	return Deg2Rad(deg)
}

// ParseAngle converts user-typed degree text to radians.
// Surrounding whitespace is ignored and the longest decimal prefix is used,
// so "30deg" reads as 30 and "0x10" as 0. Text with no decimal prefix, or
// one that overflows, yields DefaultAngle.
func ParseAngle(s string) float64 {
	deg, _ := ParseDegrees(s)
	return Deg2Rad(deg)
}

// ParseDegrees reads degree text the way ParseAngle does and reports whether
// a usable number was found. On false the returned value is DefaultAngle.
func ParseDegrees(s string) (float64, bool) {
	deg, ok := parseLeadingFloat(strings.TrimSpace(s))
	if !ok || math.IsNaN(deg) || math.IsInf(deg, 0) {
		return DefaultAngle, false
	}
	return deg, true
}

// FormatAngle renders a degree value so that ParseAngle(FormatAngle(d))
// equals AngleToRadians(d) for every finite d.
func FormatAngle(deg float64) string {
	return strconv.FormatFloat(deg, 'g', -1, 64)
}

// decimalPrefix matches plain decimal notation only: no hex, no inf/nan
// words, no digit separators.
var decimalPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func parseLeadingFloat(s string) (float64, bool) {
	m := decimalPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Only overflow is possible here.
		return 0, false
	}
	return v, true
}

// AngleDist returns the shortest angular distance between two angles in degrees (0–180).
func AngleDist(a, b float64) float64 {
	d := math.Mod(a-b, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		return 360 - d
	}
	return d
}

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
