// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePROJJSONGeographic(t *testing.T) {
	doc := `{
		"type": "GeographicCRS",
		"name": "WGS 84",
		"datum": {
			"name": "World Geodetic System 1984",
			"ellipsoid": {"name": "WGS 84", "semi_major_axis": 6378137, "inverse_flattening": 298.257223563},
			"prime_meridian": {"name": "Greenwich", "longitude": 0}
		}
	}`
	p, err := parsePROJJSON([]byte(doc))
	require.NoError(t, err)
	assert.True(t, p.IsLongLat())
	assert.InDelta(t, 6378137, p.A, 1e-6)
	assert.InDelta(t, 298.257223563, p.Rf, 1e-9)
}

func TestParsePROJJSONProjected(t *testing.T) {
	doc := `{
		"type": "ProjectedCRS",
		"name": "WGS 84 / UTM zone 33N",
		"base_crs": {
			"type": "GeographicCRS",
			"name": "WGS 84",
			"datum": {
				"name": "World Geodetic System 1984",
				"ellipsoid": {"name": "WGS 84", "semi_major_axis": 6378137, "inverse_flattening": 298.257223563}
			}
		},
		"conversion": {
			"name": "UTM zone 33N",
			"method": {"name": "Transverse Mercator"},
			"parameters": [
				{"name": "Latitude of natural origin", "value": 0},
				{"name": "Longitude of natural origin", "value": 15},
				{"name": "Scale factor at natural origin", "value": 0.9996},
				{"name": "False easting", "value": 500000},
				{"name": "False northing", "value": 0}
			]
		}
	}`
	p, err := parsePROJJSON([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "tmerc", canonicalProjName(p.ProjName))
	assert.InDelta(t, 15*d2r, p.Long0, 1e-9)
	assert.InDelta(t, 500000, p.X0, 1e-6)

	fwd, err := p.Forward(NewPoint2D(15.5*d2r, 45*d2r))
	require.NoError(t, err)
	inv, err := p.Inverse(fwd)
	require.NoError(t, err)
	assert.InDelta(t, 15.5*d2r, inv.X, 1e-9)
	assert.InDelta(t, 45*d2r, inv.Y, 1e-9)
}

func TestParsePROJJSONBoundCRSTransformation(t *testing.T) {
	doc := `{
		"type": "BoundCRS",
		"source_crs": {
			"type": "GeographicCRS",
			"name": "DHDN",
			"datum": {
				"name": "Deutsches Hauptdreiecksnetz",
				"ellipsoid": {"name": "Bessel 1841", "semi_major_axis": 6377397.155, "inverse_flattening": 299.1528128}
			}
		},
		"transformation": {
			"name": "DHDN to WGS84",
			"parameters": [
				{"name": "X-axis translation", "value": 598.1},
				{"name": "Y-axis translation", "value": 73.7},
				{"name": "Z-axis translation", "value": 418.2},
				{"name": "X-axis rotation", "value": 0.202},
				{"name": "Y-axis rotation", "value": 0.045},
				{"name": "Z-axis rotation", "value": -2.455},
				{"name": "Scale difference", "value": 6.7}
			]
		}
	}`
	p, err := parsePROJJSON([]byte(doc))
	require.NoError(t, err)
	require.Len(t, p.DatumParams, 7)
	assert.InDelta(t, 598.1, p.DatumParams[0], 1e-6)
	assert.InDelta(t, 6.7, p.DatumParams[6], 1e-6)
	assert.InDelta(t, 6377397.155, p.A, 1e-3)
}

func TestParsePROJJSONMalformed(t *testing.T) {
	_, err := parsePROJJSON([]byte("not json"))
	assert.Error(t, err)
}
