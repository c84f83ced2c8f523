// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatGrid(rows, cols int, lowerLon, lowerLat, inc float64, dLat, dLon float64) *SubGrid {
	shifts := make([][2]float64, rows*cols)
	for i := range shifts {
		shifts[i] = [2]float64{dLat, dLon}
	}
	return &SubGrid{
		Name:     "TEST",
		LowerLat: lowerLat,
		UpperLat: lowerLat + float64(rows-1)*inc,
		LowerLon: lowerLon,
		UpperLon: lowerLon + float64(cols-1)*inc,
		LatInc:   inc,
		LonInc:   inc,
		Rows:     rows,
		Cols:     cols,
		Shifts:   shifts,
	}
}

func TestInterpolateUniformShiftIsConstant(t *testing.T) {
	sg := flatGrid(4, 4, 0, 0, 0.1, 0.001, -0.002)
	g := &Grid{Subgrids: []*SubGrid{sg}}

	dLat, dLon, err := g.Interpolate(0.15, 0.15)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, dLat, 1e-12)
	assert.InDelta(t, -0.002, dLon, 1e-12)
}

func TestInterpolateOutsideCoverage(t *testing.T) {
	sg := flatGrid(4, 4, 0, 0, 0.1, 0.001, -0.002)
	g := &Grid{Subgrids: []*SubGrid{sg}}

	_, _, err := g.Interpolate(10, 10)
	assert.ErrorIs(t, err, ErrOutsideGrid)
}

func TestInterpolateBilinearRamp(t *testing.T) {
	// 2x2 grid with a linear ramp in dLat across longitude so the
	// interpolated midpoint should land exactly between corner values.
	sg := &SubGrid{
		LowerLat: 0, UpperLat: 1,
		LowerLon: 0, UpperLon: 1,
		LatInc: 1, LonInc: 1,
		Rows: 2, Cols: 2,
		Shifts: [][2]float64{
			{0, 0}, {1, 0}, // row 0: col0, col1
			{0, 0}, {1, 0}, // row 1: col0, col1
		},
	}
	g := &Grid{Subgrids: []*SubGrid{sg}}
	dLat, _, err := g.Interpolate(0.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, dLat, 1e-9)
}

func TestFindDeepestPrefersChild(t *testing.T) {
	child := flatGrid(4, 4, 0.4, 0.4, 0.01, 0.05, 0.05)
	parent := flatGrid(4, 4, 0, 0, 0.2, 0.001, 0.001)
	parent.Children = []*SubGrid{child}
	g := &Grid{Subgrids: []*SubGrid{parent}}

	dLat, dLon, err := g.Interpolate(0.41, 0.41)
	require.NoError(t, err)
	assert.InDelta(t, 0.05, dLat, 1e-9)
	assert.InDelta(t, 0.05, dLon, 1e-9)
}
