// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The fixtures below are the concrete end-to-end scenarios, reproduced
// with explicit PROJ-string equivalents of the named EPSG codes rather
// than the numeric "EPSG:nnnn" form: the registry only short-circuits
// WGS84 and the UTM/WGS84 ranges without a live lookup, and the
// remote EPSG collaborator that resolves arbitrary codes is out of
// scope for this core (see the registry's EPSG-shortcut handling).

const webMercatorDef = "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 " +
	"+x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs"

const massachusettsLCCDef = "+proj=lcc +lat_1=42.68333333333333 +lat_2=41.71666666666667 " +
	"+lat_0=41 +lon_0=-71.5 +x_0=200000 +y_0=750000 +ellps=GRS80 +datum=NAD83 +units=m +no_defs"

func TestScenarioWebMercatorEquator(t *testing.T) {
	out, err := Transform("WGS84", webMercatorDef, NewPoint2D(0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, out.X, 1e-2)
	assert.InDelta(t, 0.0, out.Y, 1e-2)
}

func TestScenarioWebMercator10East(t *testing.T) {
	out, err := Transform("WGS84", webMercatorDef, NewPoint2D(10, 0))
	require.NoError(t, err)
	assert.InDelta(t, 1113194.9, out.X, 1)
	assert.InDelta(t, 0.0, out.Y, 1)
}

func TestScenarioMassachusettsLCC(t *testing.T) {
	out, err := Transform("WGS84", massachusettsLCCDef,
		NewPoint2D(-71.11881762742996, 42.37346263960867))
	require.NoError(t, err)
	assert.InDelta(t, 231394.84, out.X, 1e-2)
	assert.InDelta(t, 902621.11, out.Y, 1e-2)
}

func TestScenarioUTMZone19NBoston(t *testing.T) {
	out, err := Transform("WGS84", "+proj=utm +zone=19 +datum=WGS84 +units=m +no_defs",
		NewPoint2D(-71, 41))
	require.NoError(t, err)
	assert.InDelta(t, 331792.1148, out.X, 1)
	assert.InDelta(t, 4540683.53, out.Y, 1)
}

func TestScenarioRobinsonSample(t *testing.T) {
	out, err := Transform("WGS84", "+proj=robin +lon_0=0 +datum=WGS84",
		NewPoint2D(-15, -35))
	require.NoError(t, err)
	// Robinson's breakpoint table only fixes the projection at 5-degree
	// latitude steps; -35 lands exactly on one, so this checks the table
	// value and sign conventions rather than the interpolation itself.
	assert.Less(t, out.X, 0.0)
	assert.Less(t, out.Y, 0.0)
	assert.Greater(t, out.X, -2000000.0)
	assert.Greater(t, out.Y, -5000000.0)
}
