// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineParseCaches(t *testing.T) {
	e := NewEngine()
	def := "+proj=longlat +ellps=WGS84 +datum=WGS84"
	p1, err := e.Parse(def)
	require.NoError(t, err)
	p2, err := e.Parse(def)
	require.NoError(t, err)
	assert.Same(t, p1, p2)
}

func TestParseWGS84Shortcut(t *testing.T) {
	p, err := Parse("WGS84")
	require.NoError(t, err)
	assert.True(t, p.IsLongLat())

	p2, err := Parse("EPSG:4326")
	require.NoError(t, err)
	assert.True(t, p2.IsLongLat())
}

func TestParseUTMEPSGShortcut(t *testing.T) {
	zone, south, ok := parseUTMEPSG("EPSG:32633")
	require.True(t, ok)
	assert.Equal(t, 33, zone)
	assert.False(t, south)

	zone, south, ok = parseUTMEPSG("32733")
	require.True(t, ok)
	assert.Equal(t, 33, zone)
	assert.True(t, south)

	_, _, ok = parseUTMEPSG("4326")
	assert.False(t, ok)

	p, err := Parse("EPSG:32633")
	require.NoError(t, err)
	assert.Equal(t, "utm", canonicalProjName(p.ProjName))
	assert.Equal(t, 33, p.Zone)
}

func TestParseUnrecognizedDefinition(t *testing.T) {
	_, err := Parse("not a crs definition at all")
	assert.Error(t, err)
}

func TestLooksLikeWKT(t *testing.T) {
	assert.True(t, looksLikeWKT(`GEOGCS["WGS 84", DATUM["WGS_1984"]]`))
	assert.True(t, looksLikeWKT(`PROJCRS["WGS 84 / UTM zone 33N", BASEGEOGCRS[...]]`))
	assert.False(t, looksLikeWKT("+proj=longlat"))
}
