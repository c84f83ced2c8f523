// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWkt2ParseSimpleClause(t *testing.T) {
	node, err := wkt2Parse(`ELLIPSOID["WGS 84",6378137,298.257223563]`)
	require.NoError(t, err)
	assert.Equal(t, "ELLIPSOID", node.keyword)
	assert.Equal(t, []string{"WGS 84", "6378137", "298.257223563"}, node.args)
	assert.Equal(t, "WGS 84", node.arg)
}

func TestWkt2ParseNestedClause(t *testing.T) {
	node, err := wkt2Parse(`DATUM["World Geodetic System 1984",ELLIPSOID["WGS 84",6378137,298.257223563]]`)
	require.NoError(t, err)
	assert.Equal(t, "DATUM", node.keyword)
	assert.Equal(t, "World Geodetic System 1984", node.arg)
	require.Len(t, node.children, 1)
	ell := node.children[0]
	assert.Equal(t, "ELLIPSOID", ell.keyword)
	assert.Equal(t, []string{"WGS 84", "6378137", "298.257223563"}, ell.args)
}

func TestWkt2ParseCommaInsideNestedBracketsNotTopLevel(t *testing.T) {
	// The nested PARAMETER's own comma-separated fields must not be
	// mistaken for a top-level field boundary of the outer CONVERSION.
	node, err := wkt2Parse(`CONVERSION["UTM zone 33N",METHOD["Transverse Mercator"],PARAMETER["False easting",500000]]`)
	require.NoError(t, err)
	assert.Equal(t, "CONVERSION", node.keyword)
	assert.Equal(t, "UTM zone 33N", node.arg)
	require.Len(t, node.children, 2)
	assert.Equal(t, "METHOD", node.children[0].keyword)
	assert.Equal(t, "PARAMETER", node.children[1].keyword)
	assert.Equal(t, []string{"False easting", "500000"}, node.children[1].args)
}

func TestParseWKT2Geographic(t *testing.T) {
	wkt := `GEOGCRS["WGS 84",DATUM["World Geodetic System 1984",` +
		`ELLIPSOID["WGS 84",6378137,298.257223563]],PRIMEM["Greenwich",0]]`
	p, err := parseWKT2(wkt)
	require.NoError(t, err)
	assert.True(t, p.IsLongLat())
	assert.InDelta(t, 6378137, p.A, 1e-6)
	assert.InDelta(t, 298.257223563, p.Rf, 1e-9)
}

func TestParseWKT2Projected(t *testing.T) {
	wkt := `PROJCRS["WGS 84 / UTM zone 33N",` +
		`BASEGEOGCRS["WGS 84",DATUM["World Geodetic System 1984",` +
		`ELLIPSOID["WGS 84",6378137,298.257223563]]],` +
		`CONVERSION["UTM zone 33N",METHOD["Transverse Mercator"],` +
		`PARAMETER["Latitude of natural origin",0],` +
		`PARAMETER["Longitude of natural origin",15],` +
		`PARAMETER["Scale factor at natural origin",0.9996],` +
		`PARAMETER["False easting",500000],` +
		`PARAMETER["False northing",0]]]`
	p, err := parseWKT2(wkt)
	require.NoError(t, err)
	assert.Equal(t, "tmerc", canonicalProjName(p.ProjName))
	assert.InDelta(t, 15*d2r, p.Long0, 1e-9)
	assert.InDelta(t, 0.9996, p.K0, 1e-9)
	assert.InDelta(t, 500000, p.X0, 1e-6)
	assert.InDelta(t, 6378137, p.A, 1e-6)

	fwd, err := p.Forward(NewPoint2D(15.5*d2r, 45*d2r))
	require.NoError(t, err)
	inv, err := p.Inverse(fwd)
	require.NoError(t, err)
	assert.InDelta(t, 15.5*d2r, inv.X, 1e-9)
	assert.InDelta(t, 45*d2r, inv.Y, 1e-9)
}

func TestParseWKT2BoundCRSHelmert(t *testing.T) {
	wkt := `BOUNDCRS[SOURCECRS[GEOGCRS["DHDN",DATUM["Deutsches Hauptdreiecksnetz",` +
		`ELLIPSOID["Bessel 1841",6377397.155,299.1528128]]]],` +
		`ABRIDGEDTRANSFORMATION["DHDN to WGS84",` +
		`PARAMETER["X-axis translation",598.1],` +
		`PARAMETER["Y-axis translation",73.7],` +
		`PARAMETER["Z-axis translation",418.2],` +
		`PARAMETER["X-axis rotation",0.202],` +
		`PARAMETER["Y-axis rotation",0.045],` +
		`PARAMETER["Z-axis rotation",-2.455],` +
		`PARAMETER["Scale difference",6.7]]]`
	p, err := parseWKT2(wkt)
	require.NoError(t, err)
	require.Len(t, p.DatumParams, 7)
	assert.InDelta(t, 598.1, p.DatumParams[0], 1e-6)
	assert.InDelta(t, 73.7, p.DatumParams[1], 1e-6)
	assert.InDelta(t, 418.2, p.DatumParams[2], 1e-6)
	assert.InDelta(t, 6.7, p.DatumParams[6], 1e-6)
}

func TestParseWKT2ParameterOwnAngleUnitOverridesDegreeDefault(t *testing.T) {
	// 50 grad == 45 degrees; the grad ANGLEUNIT's own conversion factor
	// (pi/200 radians per unit) must override the plain-degree default.
	wkt := `PROJCRS["grad test",` +
		`BASEGEOGCRS["WGS 84",DATUM["World Geodetic System 1984",` +
		`ELLIPSOID["WGS 84",6378137,298.257223563]]],` +
		`CONVERSION["unnamed",METHOD["Transverse Mercator"],` +
		`PARAMETER["Latitude of natural origin",50,ANGLEUNIT["grad",0.015707963267948967]],` +
		`PARAMETER["Longitude of natural origin",0]]]`
	p, err := parseWKT2(wkt)
	require.NoError(t, err)
	assert.InDelta(t, 45*d2r, p.Lat0, 1e-9)
}

func TestParseWKT2ParameterOwnLengthUnitOverridesMetreDefault(t *testing.T) {
	wkt := `PROJCRS["us-ft test",` +
		`BASEGEOGCRS["WGS 84",DATUM["World Geodetic System 1984",` +
		`ELLIPSOID["WGS 84",6378137,298.257223563]]],` +
		`CONVERSION["unnamed",METHOD["Mercator"],` +
		`PARAMETER["False easting",1640416.6667,LENGTHUNIT["US survey foot",0.304800609601219]]]]`
	p, err := parseWKT2(wkt)
	require.NoError(t, err)
	assert.InDelta(t, 1640416.6667*0.304800609601219, p.X0, 1e-3)
}

func TestParseWKT2HotineObliqueMercatorAzimuthCenterSuppressesOffset(t *testing.T) {
	wkt := `PROJCRS["omerc azimuth center test",` +
		`BASEGEOGCRS["WGS 84",DATUM["World Geodetic System 1984",` +
		`ELLIPSOID["WGS 84",6378137,298.257223563]]],` +
		`CONVERSION["unnamed",METHOD["Hotine Oblique Mercator Azimuth Center"],` +
		`PARAMETER["Latitude of projection centre",4],` +
		`PARAMETER["Longitude of projection centre",115],` +
		`PARAMETER["Azimuth of initial line",53.3158204722],` +
		`PARAMETER["Scale factor on initial line",0.99984],` +
		`PARAMETER["False easting",0],` +
		`PARAMETER["False northing",0]]]`
	p, err := parseWKT2(wkt)
	require.NoError(t, err)
	assert.Equal(t, "omerc", p.ProjName)
	assert.True(t, p.NoUoff)
}
