// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// NTv2 files are laid out as fixed 16-byte records: an 8-byte ASCII field
// name, then either an 8-byte double or two 4-byte integers/floats,
// depending on the field. Endianness is detected from the file header's
// NUM_OREC record, whose integer value must read as a small positive
// number in the correct byte order.

const recordSize = 16

// LoadNTv2 parses an NTv2 (.gsb) grid-shift file per the binary layout
// above, returning every top-level sub-grid with its children attached by
// PARENT linkage.
func LoadNTv2(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read ntv2: %w", err)
	}
	if len(data) < recordSize*11 {
		return nil, fmt.Errorf("grid: ntv2 file too short")
	}

	order, err := detectByteOrder(data)
	if err != nil {
		return nil, err
	}

	pos := 0
	readRecord := func() (name string, raw []byte) {
		name = string(bytes.TrimRight(data[pos:pos+8], " \x00"))
		raw = data[pos+8 : pos+16]
		pos += recordSize
		return
	}
	readInt := func() int {
		_, raw := readRecord()
		return int(order.Uint32(raw))
	}
	readDouble := func() float64 {
		_, raw := readRecord()
		return math.Float64frombits(order.Uint64(raw))
	}

	readRecord() // NUM_OREC
	numSrec := readInt()
	numFile := readInt()
	readRecord() // GS_TYPE
	readRecord() // VERSION
	readRecord() // SYSTEM_F
	readRecord() // SYSTEM_T
	readDouble() // MAJOR_F
	readDouble() // MINOR_F
	readDouble() // MAJOR_T
	readDouble() // MINOR_T
	_ = numSrec

	all := make([]*SubGrid, 0, numFile)
	byName := map[string]*SubGrid{}

	for i := 0; i < numFile; i++ {
		sg, consumed, err := readSubGrid(data, pos, order)
		if err != nil {
			return nil, err
		}
		pos += consumed
		all = append(all, sg)
		byName[sg.Name] = sg
	}

	var roots []*SubGrid
	for _, sg := range all {
		if sg.ParentName == "" || sg.ParentName == "NONE" {
			roots = append(roots, sg)
			continue
		}
		parent, ok := byName[sg.ParentName]
		if !ok {
			roots = append(roots, sg)
			continue
		}
		parent.Children = append(parent.Children, sg)
	}
	return &Grid{Subgrids: roots}, nil
}

func readSubGrid(data []byte, pos int, order binary.ByteOrder) (*SubGrid, int, error) {
	start := pos
	name := string(bytes.TrimRight(data[pos+8:pos+16], " \x00"))
	pos += recordSize
	parent := string(bytes.TrimRight(data[pos+8:pos+16], " \x00"))
	pos += recordSize
	pos += recordSize // CREATED
	pos += recordSize // UPDATED

	readDouble := func() float64 {
		v := math.Float64frombits(order.Uint64(data[pos+8 : pos+16]))
		pos += recordSize
		return v
	}
	readInt := func() int {
		v := int(order.Uint32(data[pos+8 : pos+16]))
		pos += recordSize
		return v
	}

	const secToRad = 4.84813681109535993589914102357e-6
	slat := readDouble() * secToRad
	nlat := readDouble() * secToRad
	wlonSec := readDouble()
	elonSec := readDouble()
	dlat := readDouble() * secToRad
	dlon := readDouble() * secToRad
	gsCount := readInt()

	// NTv2 stores longitude west-positive; the catalogue works in
	// east-positive radians throughout, so negate here once.
	wlon := -wlonSec * secToRad
	elon := -elonSec * secToRad

	cols := int(math.Round((elonSec-wlonSec)/(dlon/secToRad))) + 1
	rows := int(math.Round((nlat-slat)/dlat)) + 1
	if cols*rows != gsCount {
		// fall back to the declared counts; some encoders round the
		// extent fields slightly.
		if rows <= 0 {
			rows = gsCount
			cols = 1
		}
	}

	shifts := make([][2]float64, 0, gsCount)
	for i := 0; i < gsCount; i++ {
		latShiftSec := math.Float32frombits(order.Uint32(data[pos : pos+4]))
		lonShiftSec := math.Float32frombits(order.Uint32(data[pos+4 : pos+8]))
		pos += recordSize
		shifts = append(shifts, [2]float64{
			float64(latShiftSec) * secToRad,
			-float64(lonShiftSec) * secToRad,
		})
	}

	sg := &SubGrid{
		Name:       name,
		ParentName: parent,
		LowerLat:   slat,
		UpperLat:   nlat,
		LowerLon:   math.Min(wlon, elon),
		UpperLon:   math.Max(wlon, elon),
		LatInc:     dlat,
		LonInc:     dlon,
		Rows:       rows,
		Cols:       cols,
		Shifts:     shifts,
	}
	return sg, pos - start, nil
}

func detectByteOrder(data []byte) (binary.ByteOrder, error) {
	raw := data[8:16]
	if binary.LittleEndian.Uint32(raw[:4]) > 0 && binary.LittleEndian.Uint32(raw[:4]) < 1000 {
		return binary.LittleEndian, nil
	}
	if binary.BigEndian.Uint32(raw[:4]) > 0 && binary.BigEndian.Uint32(raw[:4]) < 1000 {
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("grid: cannot detect ntv2 byte order")
}
