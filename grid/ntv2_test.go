// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeField appends one 16-byte NTv2 record: an 8-byte ASCII label
// (content irrelevant to the reader except where the label IS the
// payload, as in SUB_NAME/PARENT) followed by an 8-byte value.
func writeField(buf *bytes.Buffer, label string, value [8]byte) {
	var name [8]byte
	copy(name[:], label)
	buf.Write(name[:])
	buf.Write(value[:])
}

func doubleBytes(v float64) [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return b
}

func intBytes(v int32) [8]byte {
	var b [8]byte
	binary.LittleEndian.PutUint32(b[:4], uint32(v))
	return b
}

func textBytes(s string) [8]byte {
	var b [8]byte
	copy(b[:], s)
	for i := len(s); i < 8; i++ {
		b[i] = ' '
	}
	return b
}

// ntv2Header writes the 11-record file header; numFile tells the reader
// how many subgrid bodies follow.
func ntv2Header(buf *bytes.Buffer, numFile int32) {
	writeField(buf, "NUM_OREC", intBytes(11))
	writeField(buf, "NUM_SREC", intBytes(11))
	writeField(buf, "NUM_FILE", intBytes(numFile))
	writeField(buf, "GS_TYPE", textBytes("SECONDS"))
	writeField(buf, "VERSION", textBytes(""))
	writeField(buf, "SYSTEM_F", textBytes("NAD27"))
	writeField(buf, "SYSTEM_T", textBytes("NAD83"))
	writeField(buf, "MAJOR_F", doubleBytes(6378206.4))
	writeField(buf, "MINOR_F", doubleBytes(6356583.8))
	writeField(buf, "MAJOR_T", doubleBytes(6378137.0))
	writeField(buf, "MINOR_T", doubleBytes(6356752.3))
}

// ntv2SubGrid writes one subgrid body (11 header records + gsCount shift
// records), every node sharing the one (latShiftSec, lonShiftSec) value so
// Interpolate's result anywhere inside is trivially predictable.
func ntv2SubGrid(buf *bytes.Buffer, name, parent string, rows, cols int, slatSec, nlatSec, wlonSec, elonSec, dlatSec, dlonSec float64, latShiftSec, lonShiftSec float32) {
	writeField(buf, "SUB_NAME", textBytes(name))
	writeField(buf, "PARENT", textBytes(parent))
	writeField(buf, "CREATED", textBytes(""))
	writeField(buf, "UPDATED", textBytes(""))
	writeField(buf, "S_LAT", doubleBytes(slatSec))
	writeField(buf, "N_LAT", doubleBytes(nlatSec))
	writeField(buf, "E_LONG", doubleBytes(wlonSec))
	writeField(buf, "W_LONG", doubleBytes(elonSec))
	writeField(buf, "LAT_INC", doubleBytes(dlatSec))
	writeField(buf, "LONG_INC", doubleBytes(dlonSec))
	writeField(buf, "GS_COUNT", intBytes(int32(rows*cols)))

	for i := 0; i < rows*cols; i++ {
		var rec [16]byte
		binary.LittleEndian.PutUint32(rec[0:4], math.Float32bits(latShiftSec))
		binary.LittleEndian.PutUint32(rec[4:8], math.Float32bits(lonShiftSec))
		buf.Write(rec[:])
	}
}

func TestLoadNTv2SingleSubGrid(t *testing.T) {
	var buf bytes.Buffer
	ntv2Header(&buf, 1)
	ntv2SubGrid(&buf, "TESTSUB", "NONE", 2, 2, 0, 3600, 0, 3600, 3600, 3600, 5.0, -2.0)

	g, err := LoadNTv2(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, g.Subgrids, 1)

	sg := g.Subgrids[0]
	assert.Equal(t, "TESTSUB", sg.Name)
	assert.Equal(t, 2, sg.Rows)
	assert.Equal(t, 2, sg.Cols)

	lon := sg.LowerLon + (sg.UpperLon-sg.LowerLon)/2
	lat := sg.LowerLat + (sg.UpperLat-sg.LowerLat)/2
	dLat, dLon, err := g.Interpolate(lon, lat)
	require.NoError(t, err)
	assert.InDelta(t, 5.0*secToRad, dLat, 1e-9)
	assert.InDelta(t, 2.0*secToRad, dLon, 1e-9)
}

func TestLoadNTv2TooShort(t *testing.T) {
	_, err := LoadNTv2(bytes.NewReader([]byte{1, 2, 3}))
	assert.Error(t, err)
}

func TestLoadNTv2ParentLinkage(t *testing.T) {
	var buf bytes.Buffer
	ntv2Header(&buf, 2)
	ntv2SubGrid(&buf, "TESTSUB", "NONE", 2, 2, 0, 3600, 0, 3600, 3600, 3600, 1.0, 1.0)
	ntv2SubGrid(&buf, "CHILDSUB", "TESTSUB", 2, 2, 900, 2700, 900, 2700, 1800, 1800, 9.0, 9.0)

	g, err := LoadNTv2(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, g.Subgrids, 1)
	root := g.Subgrids[0]
	assert.Equal(t, "TESTSUB", root.Name)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "CHILDSUB", root.Children[0].Name)
}

const secToRad = 4.84813681109535993589914102357e-6
