// Package model derives model dimensions from 3D model files.
package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"spritecam/internal/mathutil"
	"spritecam/internal/rig"
)

// Bounds is an axis-aligned bounding box. The zero value is not empty;
// use NewBounds.
type Bounds struct {
	Min, Max mathutil.Vec3
}

// NewBounds returns an empty box that any Extend call will replace.
func NewBounds() Bounds {
	inf := math.Inf(1)
	return Bounds{
		Min: mathutil.Vec3{inf, inf, inf},
		Max: mathutil.Vec3{-inf, -inf, -inf},
	}
}

// Empty reports whether no point was added.
func (b Bounds) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Extend grows the box to contain p.
func (b *Bounds) Extend(p mathutil.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Union grows the box to contain o.
func (b *Bounds) Union(o Bounds) {
	if o.Empty() {
		return
	}
	b.Extend(o.Min)
	b.Extend(o.Max)
}

// Corners returns the eight corners of the box.
func (b Bounds) Corners() [8]mathutil.Vec3 {
	var c [8]mathutil.Vec3
	for i := range c {
		for k := 0; k < 3; k++ {
			if i&(1<<k) == 0 {
				c[i][k] = b.Min[k]
			} else {
				c[i][k] = b.Max[k]
			}
		}
	}
	return c
}

// Dimensions returns the box extents. An empty box has zero extents.
func (b Bounds) Dimensions() rig.ModelDimensions {
	if b.Empty() {
		return rig.ModelDimensions{}
	}
	return rig.ModelDimensions{
		X: b.Max[0] - b.Min[0],
		Y: b.Max[1] - b.Min[1],
		Z: b.Max[2] - b.Min[2],
	}
}

// ParseDimensions reads "x,y,z" (commas or spaces). Extents must be finite and >= 0.
func ParseDimensions(s string) (rig.ModelDimensions, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == 'x' })
	if len(fields) != 3 {
		return rig.ModelDimensions{}, fmt.Errorf("model: dimensions %q: want 3 values, got %d", s, len(fields))
	}
	var v [3]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return rig.ModelDimensions{}, fmt.Errorf("model: dimensions %q: %w", s, err)
		}
		if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
			return rig.ModelDimensions{}, fmt.Errorf("model: dimensions %q: extent %v out of range", s, n)
		}
		v[i] = n
	}
	return rig.ModelDimensions{X: v[0], Y: v[1], Z: v[2]}, nil
}
