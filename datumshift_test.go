// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wgs84Params(t *testing.T) *Params {
	t.Helper()
	p, err := Parse("+proj=longlat +ellps=WGS84 +datum=WGS84 +no_defs")
	require.NoError(t, err)
	return p
}

func TestDatumsEqualIdentity(t *testing.T) {
	from := wgs84Params(t)
	to := wgs84Params(t)
	assert.True(t, datumsEqual(from, to))
}

func TestShiftDatumIdentityShortCircuit(t *testing.T) {
	e := NewEngine()
	from := wgs84Params(t)
	to := wgs84Params(t)
	pt := NewPoint2D(10*d2r, 50*d2r)
	out, err := e.shiftDatum(from, to, pt)
	require.NoError(t, err)
	assert.Equal(t, pt, out)
}

func TestShiftDatumHelmert3Param(t *testing.T) {
	e := NewEngine()
	from, err := Parse("+proj=longlat +ellps=bessel +towgs84=598.1,73.7,418.2 +no_defs")
	require.NoError(t, err)
	to := wgs84Params(t)

	pt := NewPoint2D(13.4*d2r, 52.5*d2r)
	out, err := e.shiftDatum(from, to, pt)
	require.NoError(t, err)
	assert.NotEqual(t, pt.X, out.X)
	assert.InDelta(t, pt.X, out.X, 1e-3)
	assert.InDelta(t, pt.Y, out.Y, 1e-3)
}

func TestShiftDatumHelmert7Param(t *testing.T) {
	e := NewEngine()
	from, err := Parse("+proj=longlat +ellps=bessel " +
		"+towgs84=598.1,73.7,418.2,0.202,0.045,-2.455,6.7 +no_defs")
	require.NoError(t, err)
	to := wgs84Params(t)

	pt := NewPoint3D(13.4*d2r, 52.5*d2r, 50)
	out, err := e.shiftDatum(from, to, pt)
	require.NoError(t, err)
	assert.InDelta(t, pt.X, out.X, 1e-3)
	assert.InDelta(t, pt.Y, out.Y, 1e-3)
}

func TestShiftDatumGridMissingIsTransformFailure(t *testing.T) {
	e := NewEngine()
	from, err := Parse("+proj=longlat +ellps=clrk66 +nadgrids=missing_conus +no_defs")
	require.NoError(t, err)
	to := wgs84Params(t)

	_, err = e.shiftDatum(from, to, NewPoint2D(-100*d2r, 40*d2r))
	require.Error(t, err)
	var tf *TransformFailure
	assert.ErrorAs(t, err, &tf)
}

func TestShiftDatumGridOptionalMissingFallsThrough(t *testing.T) {
	e := NewEngine()
	from, err := Parse("+proj=longlat +ellps=WGS84 +datum=WGS84 +nadgrids=@missing_conus +no_defs")
	require.NoError(t, err)
	to := wgs84Params(t)

	pt := NewPoint2D(-100*d2r, 40*d2r)
	out, err := e.shiftDatum(from, to, pt)
	require.NoError(t, err)
	assert.Equal(t, pt.X, out.X)
	assert.Equal(t, pt.Y, out.Y)
}

func TestParseNadGridsName(t *testing.T) {
	name, optional := parseNadGridsName("@conus")
	assert.Equal(t, "conus", name)
	assert.True(t, optional)

	name, optional = parseNadGridsName("conus")
	assert.Equal(t, "conus", name)
	assert.False(t, optional)
}

func TestGeodeticGeocentricRoundTrip(t *testing.T) {
	a, es := 6378137.0, 0.00669438002290
	lon, lat, h := -95*d2r, 38*d2r, 150.0
	x, y, z := geodeticToGeocentric(lon, lat, h, a, es)

	gotLon, gotLat, gotH := geocentricToGeodeticBowring(x, y, z, a, es)
	assert.InDelta(t, lon, gotLon, 1e-9)
	assert.InDelta(t, lat, gotLat, 1e-9)
	assert.InDelta(t, h, gotH, 1e-6)

	gotLon2, gotLat2, gotH2, err := geocentricToGeodeticIterative(x, y, z, a, es)
	require.NoError(t, err)
	assert.InDelta(t, lon, gotLon2, 1e-9)
	assert.InDelta(t, lat, gotLat2, 1e-9)
	assert.InDelta(t, h, gotH2, 1e-6)
}

func TestApplyUnapplyHelmertRoundTrip(t *testing.T) {
	params := []float64{598.1, 73.7, 418.2, 0.202, 0.045, -2.455, 6.7}
	x, y, z := 3770000.0, 900000.0, 5000000.0
	hx, hy, hz := applyHelmert(x, y, z, params)
	bx, by, bz := unapplyHelmert(hx, hy, hz, params)
	// Both directions use the small-angle rotation matrix I+W, so the round
	// trip returns (I-W)(I+W)x = x + |w|^2 x - w(w.x): a second-order
	// residual, not x itself.
	wx, wy, wz := params[3]*secToRad, params[4]*secToRad, params[5]*secToRad
	ww, wdot := wx*wx+wy*wy+wz*wz, wx*x+wy*y+wz*z
	assert.InDelta(t, x+ww*x-wx*wdot, bx, 1e-6)
	assert.InDelta(t, y+ww*y-wy*wdot, by, 1e-6)
	assert.InDelta(t, z+ww*z-wz*wdot, bz, 1e-6)
}
