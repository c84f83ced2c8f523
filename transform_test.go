// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformNaNShortCircuit(t *testing.T) {
	from, err := Parse("+proj=longlat +ellps=WGS84 +datum=WGS84 +no_defs")
	require.NoError(t, err)
	to, err := Parse("+proj=merc +ellps=WGS84 +lon_0=0 +x_0=0 +y_0=0 +no_defs")
	require.NoError(t, err)

	pt := Point{X: math.NaN(), Y: 10}
	out, err := DefaultEngine.Transform(from, to, pt)
	require.NoError(t, err)
	assert.True(t, out.IsNaN())
}

func TestTransformEqualShortCircuit(t *testing.T) {
	from, err := Parse("+proj=merc +ellps=WGS84 +lon_0=0 +x_0=0 +y_0=0 +no_defs")
	require.NoError(t, err)
	to, err := Parse("+proj=merc +ellps=WGS84 +lon_0=0 +x_0=0 +y_0=0 +no_defs")
	require.NoError(t, err)

	pt := NewPoint2D(123456, 654321)
	out, err := DefaultEngine.Transform(from, to, pt)
	require.NoError(t, err)
	assert.Equal(t, pt, out)
}

func TestTransformLongLatToUTM(t *testing.T) {
	out, err := Transform("WGS84", "+proj=utm +zone=33 +ellps=WGS84 +datum=WGS84 +no_defs",
		NewPoint2D(15, 45))
	require.NoError(t, err)
	assert.False(t, math.IsNaN(out.X) || math.IsNaN(out.Y))
	assert.InDelta(t, 500000, out.X, 200000)

	back, err := Transform("+proj=utm +zone=33 +ellps=WGS84 +datum=WGS84 +no_defs", "WGS84", out)
	require.NoError(t, err)
	assert.InDelta(t, 15, back.X, 1e-6)
	assert.InDelta(t, 45, back.Y, 1e-6)
}

func TestTransformZeroesUnsuppliedZ(t *testing.T) {
	out, err := Transform("WGS84", "+proj=merc +ellps=WGS84 +lon_0=0 +x_0=0 +y_0=0 +no_defs",
		NewPoint2D(10*d2r, 45*d2r))
	require.NoError(t, err)
	assert.Equal(t, 0.0, out.Z)
}

func TestAdjustAxisNoOpForDefault(t *testing.T) {
	p := defaultParams()
	p.Axis = "enu"
	pt := NewPoint3D(1, 2, 3)
	assert.Equal(t, pt, adjustAxis(p, pt, false))
	assert.Equal(t, pt, adjustAxis(p, pt, true))
}

func TestAdjustAxisPermutesNorthEastUp(t *testing.T) {
	p := defaultParams()
	p.Axis = "neu"
	pt := NewPoint3D(10, 20, 30) // native order: north=10, east=20, up=30

	toInternal := adjustAxis(p, pt, false)
	assert.Equal(t, 20.0, toInternal.X) // east
	assert.Equal(t, 10.0, toInternal.Y) // north
	assert.Equal(t, 30.0, toInternal.Z)

	back := adjustAxis(p, toInternal, true)
	assert.Equal(t, pt.X, back.X)
	assert.Equal(t, pt.Y, back.Y)
	assert.Equal(t, pt.Z, back.Z)
}

func TestAdjustAxisSignFlip(t *testing.T) {
	p := defaultParams()
	p.Axis = "wsu"
	pt := Point{X: 5, Y: 7, Z: 9}

	internal := adjustAxis(p, pt, false)
	assert.Equal(t, -5.0, internal.X)
	assert.Equal(t, -7.0, internal.Y)
	assert.Equal(t, 9.0, internal.Z)
}
