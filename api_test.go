// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-geodesy/projectron/grid"
)

func TestPackageTransformWGS84ToUTM(t *testing.T) {
	out, err := Transform("WGS84", "+proj=utm +zone=32 +ellps=WGS84 +datum=WGS84 +no_defs",
		NewPoint2D(9*d2r, 51*d2r))
	require.NoError(t, err)
	assert.False(t, math.IsNaN(out.X) || math.IsNaN(out.Y))
}

func TestMakeConverterReusable(t *testing.T) {
	conv, err := MakeConverter("WGS84", "+proj=merc +ellps=WGS84 +lon_0=0 +x_0=0 +y_0=0 +no_defs")
	require.NoError(t, err)

	p1, err := conv(NewPoint2D(10*d2r, 45*d2r))
	require.NoError(t, err)
	p2, err := conv(NewPoint2D(20*d2r, 45*d2r))
	require.NoError(t, err)
	assert.NotEqual(t, p1.X, p2.X)
}

func TestTransformFlatInPlace(t *testing.T) {
	coords := []float64{10, 45, 20, 50}
	err := TransformFlat(
		"+proj=longlat +ellps=WGS84 +datum=WGS84 +units=degrees +no_defs",
		"+proj=longlat +ellps=WGS84 +datum=WGS84 +units=degrees +no_defs",
		coords)
	require.NoError(t, err)
	assert.InDelta(t, 10, coords[0], 1e-6)
	assert.InDelta(t, 45, coords[1], 1e-6)
	assert.InDelta(t, 20, coords[2], 1e-6)
	assert.InDelta(t, 50, coords[3], 1e-6)
}

func TestLoadNTv2GridThroughAPI(t *testing.T) {
	data := buildMinimalNTv2(t)
	err := LoadNTv2Grid("apitestgrid", bytes.NewReader(data))
	require.NoError(t, err)

	_, err = Parse("+proj=longlat +ellps=clrk66 +nadgrids=apitestgrid +no_defs")
	require.NoError(t, err)
}

func TestLoadNTv2GridMalformedReturnsIOError(t *testing.T) {
	err := LoadNTv2Grid("badgrid", bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
	var ioErr *IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestLoadGridFileDetectsGeoTIFF(t *testing.T) {
	data := buildMinimalGeoTIFF(t)
	err := LoadGridFile("apitestgeotiff", bytes.NewReader(data))
	require.NoError(t, err)

	_, err = Parse("+proj=longlat +ellps=WGS84 +nadgrids=apitestgeotiff +no_defs")
	require.NoError(t, err)
}

func TestLoadGridFileDetectsNTv2(t *testing.T) {
	data := buildMinimalNTv2(t)
	err := LoadGridFile("apitestgridfile", bytes.NewReader(data))
	require.NoError(t, err)

	_, err = Parse("+proj=longlat +ellps=clrk66 +nadgrids=apitestgridfile +no_defs")
	require.NoError(t, err)
}

func TestLoadGridDirect(t *testing.T) {
	g := &grid.Grid{}
	LoadGrid("direct", g)
	_, ok := DefaultEngine.lookupGrid("direct")
	assert.True(t, ok)
}

// buildMinimalGeoTIFF assembles a tiny 2x2, two-band, float64 GeoTIFF,
// mirroring grid.LoadGeoTIFF's tag layout (see grid/geotiff_test.go, which
// this is a trimmed copy of since that helper is unexported to package grid).
func buildMinimalGeoTIFF(t *testing.T) []byte {
	t.Helper()
	const cols, rows = 2, 2
	const headerSize = 8
	const entryCount = 9
	ifdSize := 2 + entryCount*12 + 4
	tiepointsOff := headerSize + ifdSize
	pixelScaleOff := tiepointsOff + 6*8
	stripOff := pixelScaleOff + 3*8
	stripSize := cols * rows * 2 * 8

	buf := make([]byte, stripOff+stripSize)
	ord := binary.LittleEndian
	copy(buf[0:2], "II")
	ord.PutUint16(buf[2:4], 42)
	ord.PutUint32(buf[4:8], headerSize)

	ord.PutUint16(buf[8:10], entryCount)
	pos := 10
	put := func(tag, typ uint16, count uint32, val uint32) {
		ord.PutUint16(buf[pos:pos+2], tag)
		ord.PutUint16(buf[pos+2:pos+4], typ)
		ord.PutUint32(buf[pos+4:pos+8], count)
		ord.PutUint32(buf[pos+8:pos+12], val)
		pos += 12
	}
	put(256, 4, 1, cols)
	put(257, 4, 1, rows)
	put(258, 3, 1, 64)
	put(277, 3, 1, 2)
	put(278, 4, 1, rows)
	put(273, 4, 1, uint32(stripOff))
	put(279, 4, 1, uint32(stripSize))
	put(33922, 12, 6, uint32(tiepointsOff))
	put(33550, 12, 3, uint32(pixelScaleOff))
	ord.PutUint32(buf[pos:pos+4], 0)

	tp := []float64{0, 0, 0, 0, float64(rows - 1), 0}
	for i, v := range tp {
		ord.PutUint64(buf[tiepointsOff+i*8:tiepointsOff+i*8+8], math.Float64bits(v))
	}
	ps := []float64{1, 1, 0}
	for i, v := range ps {
		ord.PutUint64(buf[pixelScaleOff+i*8:pixelScaleOff+i*8+8], math.Float64bits(v))
	}
	p := stripOff
	for i := 0; i < cols*rows; i++ {
		ord.PutUint64(buf[p:p+8], math.Float64bits(6.0))
		p += 8
		ord.PutUint64(buf[p:p+8], math.Float64bits(-3.0))
		p += 8
	}
	return buf
}

// buildMinimalNTv2 constructs the smallest valid single-subgrid NTv2 byte
// stream, mirroring grid.LoadNTv2's field layout (see grid/ntv2_test.go).
func buildMinimalNTv2(t *testing.T) []byte {
	t.Helper()
	field := func(buf *bytes.Buffer, label string, value [8]byte) {
		var name [8]byte
		copy(name[:], label)
		buf.Write(name[:])
		buf.Write(value[:])
	}
	dbl := func(v float64) [8]byte {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		return b
	}
	i32 := func(v int32) [8]byte {
		var b [8]byte
		binary.LittleEndian.PutUint32(b[:4], uint32(v))
		return b
	}
	txt := func(s string) [8]byte {
		var b [8]byte
		copy(b[:], s)
		for i := len(s); i < 8; i++ {
			b[i] = ' '
		}
		return b
	}

	var buf bytes.Buffer
	field(&buf, "NUM_OREC", i32(11))
	field(&buf, "NUM_SREC", i32(11))
	field(&buf, "NUM_FILE", i32(1))
	field(&buf, "GS_TYPE", txt("SECONDS"))
	field(&buf, "VERSION", txt(""))
	field(&buf, "SYSTEM_F", txt("NAD27"))
	field(&buf, "SYSTEM_T", txt("NAD83"))
	field(&buf, "MAJOR_F", dbl(6378206.4))
	field(&buf, "MINOR_F", dbl(6356583.8))
	field(&buf, "MAJOR_T", dbl(6378137.0))
	field(&buf, "MINOR_T", dbl(6356752.3))

	field(&buf, "SUB_NAME", txt("APITEST"))
	field(&buf, "PARENT", txt("NONE"))
	field(&buf, "CREATED", txt(""))
	field(&buf, "UPDATED", txt(""))
	field(&buf, "S_LAT", dbl(0))
	field(&buf, "N_LAT", dbl(3600))
	field(&buf, "E_LONG", dbl(0))
	field(&buf, "W_LONG", dbl(3600))
	field(&buf, "LAT_INC", dbl(3600))
	field(&buf, "LONG_INC", dbl(3600))
	field(&buf, "GS_COUNT", i32(4))

	for i := 0; i < 4; i++ {
		var rec [16]byte
		binary.LittleEndian.PutUint32(rec[0:4], math.Float32bits(1.0))
		binary.LittleEndian.PutUint32(rec[4:8], math.Float32bits(1.0))
		buf.Write(rec[:])
	}
	return buf.Bytes()
}
