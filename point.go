// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// Point is the four-double coordinate carried through a transform: X/Y
// hold either geographic radians or projected metres depending on the
// pipeline stage, Z and M pass through unmodified. hasZ tracks whether the
// caller supplied a genuine Z (so the pipeline can zero it back out per
// the no-hasZ convention) without overloading Z itself as a sentinel.
type Point struct {
	X, Y, Z, M float64
	hasZ       bool
}

// NewPoint2D builds a 2D point with Z defaulted to 0 and not considered
// "supplied" for the purposes of the hasZ convention in the pipeline.
func NewPoint2D(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewPoint3D builds a point with an explicit Z.
func NewPoint3D(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z, hasZ: true}
}

// IsNaN reports whether either coordinate of p is NaN; NaN inputs are not
// an error; they propagate to a NaN-carrying Point without the pipeline
// raising anything.
func (p Point) IsNaN() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

func nanPoint(z, m float64) Point {
	return Point{X: math.NaN(), Y: math.NaN(), Z: z, M: m}
}
