// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// LoadGeoTIFF parses the GeoTIFF-packed grid-shift variant used
// alongside NTv2 binary (the format OSTN15's
// uk_os_OSTN15_NTv2_OSGBtoETRS.tif ships in): a single IFD carrying
// ModelTiepointTag/ModelPixelScaleTag georeferencing and two (or more)
// bands of float64 samples, band 0 the longitude shift and band 1 the
// latitude shift, both in arc-seconds. No TIFF library in the retrieval
// pack decodes float64 multi-band grid samples (the stdlib's
// image/tiff-shaped decoders target integer pixel formats for display,
// not geodetic float payloads), so this reads the handful of tags the
// format actually needs directly off the byte stream, the same level
// ntv2.go already reads the NTv2 binary layout at.
func LoadGeoTIFF(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("grid: read geotiff: %w", err)
	}
	if len(data) < 8 {
		return nil, fmt.Errorf("grid: geotiff file too short")
	}

	order, err := tiffByteOrder(data)
	if err != nil {
		return nil, err
	}
	if order.Uint16(data[2:4]) != 42 {
		return nil, fmt.Errorf("grid: not a TIFF file (bad magic)")
	}
	ifdOffset := order.Uint32(data[4:8])

	tags, err := readIFD(data, order, ifdOffset)
	if err != nil {
		return nil, err
	}

	width, ok := tags[256]
	if !ok {
		return nil, fmt.Errorf("grid: geotiff missing ImageWidth tag")
	}
	height, ok := tags[257]
	if !ok {
		return nil, fmt.Errorf("grid: geotiff missing ImageLength tag")
	}
	samplesPerPixel := 1
	if spp, ok := tags[277]; ok && len(spp.values) > 0 {
		samplesPerPixel = int(spp.values[0])
	}
	if samplesPerPixel < 2 {
		return nil, fmt.Errorf("grid: geotiff grid needs at least 2 sample bands, got %d", samplesPerPixel)
	}
	bitsPerSample := 64
	if bps, ok := tags[258]; ok && len(bps.values) > 0 {
		bitsPerSample = int(bps.values[0])
	}
	if bitsPerSample != 64 {
		return nil, fmt.Errorf("grid: geotiff grid expects 64-bit samples, got %d", bitsPerSample)
	}

	tiepoints, ok := tags[33922]
	if !ok || len(tiepoints.values) < 6 {
		return nil, fmt.Errorf("grid: geotiff missing ModelTiepointTag")
	}
	pixelScale, ok := tags[33550]
	if !ok || len(pixelScale.values) < 2 {
		return nil, fmt.Errorf("grid: geotiff missing ModelPixelScaleTag")
	}

	cols, rows := int(width.values[0]), int(height.values[0])
	originLon := tiepoints.values[3]
	originLat := tiepoints.values[4]
	scaleLon := pixelScale.values[0]
	scaleLat := pixelScale.values[1]

	samples, err := readSamples(data, order, tags, cols, rows, samplesPerPixel)
	if err != nil {
		return nil, err
	}

	const secToRad = 4.84813681109535993589914102357e-6
	shifts := make([][2]float64, rows*cols)
	// GeoTIFF rasters are stored top row (north) first; flip to the
	// south-up row order SubGrid.Shifts and Interpolate assume.
	for r := 0; r < rows; r++ {
		srcRow := rows - 1 - r
		for c := 0; c < cols; c++ {
			lonShiftSec := samples[0][srcRow*cols+c]
			latShiftSec := samples[1][srcRow*cols+c]
			shifts[r*cols+c] = [2]float64{
				latShiftSec * secToRad,
				-lonShiftSec * secToRad,
			}
		}
	}

	lowerLon := originLon // tie point is the upper-left (NW) corner, col 0
	upperLat := originLat
	lowerLat := upperLat - scaleLat*float64(rows-1)
	lowerLonRad := lowerLon * secToRadDeg
	upperLonRad := (lowerLon + scaleLon*float64(cols-1)) * secToRadDeg
	sg := &SubGrid{
		Name:     "geotiff",
		LowerLat: lowerLat * secToRadDeg,
		UpperLat: upperLat * secToRadDeg,
		LowerLon: math.Min(lowerLonRad, upperLonRad),
		UpperLon: math.Max(lowerLonRad, upperLonRad),
		LatInc:   scaleLat * secToRadDeg,
		LonInc:   scaleLon * secToRadDeg,
		Rows:     rows,
		Cols:     cols,
		Shifts:   shifts,
	}
	return &Grid{Subgrids: []*SubGrid{sg}}, nil
}

// secToRadDeg converts the degree-valued tiepoint/scale fields GeoTIFF
// stores (ModelTiepointTag/ModelPixelScaleTag are geographic degrees, not
// arc-seconds like the per-node shifts) into radians.
const secToRadDeg = math.Pi / 180

type tiffTag struct {
	typ    uint16
	values []float64
}

func tiffByteOrder(data []byte) (binary.ByteOrder, error) {
	switch string(data[:2]) {
	case "II":
		return binary.LittleEndian, nil
	case "MM":
		return binary.BigEndian, nil
	}
	return nil, fmt.Errorf("grid: not a TIFF file (bad byte-order marker)")
}

func readIFD(data []byte, order binary.ByteOrder, offset uint32) (map[uint16]tiffTag, error) {
	if int(offset)+2 > len(data) {
		return nil, fmt.Errorf("grid: geotiff IFD offset out of range")
	}
	count := int(order.Uint16(data[offset : offset+2]))
	tags := make(map[uint16]tiffTag, count)
	pos := int(offset) + 2
	for i := 0; i < count; i++ {
		if pos+12 > len(data) {
			return nil, fmt.Errorf("grid: geotiff IFD entry out of range")
		}
		entry := data[pos : pos+12]
		tagID := order.Uint16(entry[0:2])
		fieldType := order.Uint16(entry[2:4])
		fieldCount := order.Uint32(entry[4:8])
		valueOff := entry[8:12]

		vals, err := decodeFieldValues(data, order, fieldType, fieldCount, valueOff)
		if err != nil {
			return nil, fmt.Errorf("grid: geotiff tag %d: %w", tagID, err)
		}
		tags[tagID] = tiffTag{typ: fieldType, values: vals}
		pos += 12
	}
	return tags, nil
}

func typeSize(fieldType uint16) int {
	switch fieldType {
	case 1, 2, 6, 7: // BYTE, ASCII, SBYTE, UNDEFINED
		return 1
	case 3, 8: // SHORT, SSHORT
		return 2
	case 4, 9, 11: // LONG, SLONG, FLOAT
		return 4
	case 5, 10, 12: // RATIONAL, SRATIONAL, DOUBLE
		return 8
	}
	return 0
}

func decodeFieldValues(data []byte, order binary.ByteOrder, fieldType uint16, count uint32, inlineOrOffset []byte) ([]float64, error) {
	size := typeSize(fieldType)
	if size == 0 {
		return nil, fmt.Errorf("unsupported field type %d", fieldType)
	}
	total := int(count) * size
	var raw []byte
	if total <= 4 {
		raw = inlineOrOffset[:total]
	} else {
		off := order.Uint32(inlineOrOffset)
		if int(off)+total > len(data) {
			return nil, fmt.Errorf("field value out of range")
		}
		raw = data[off : int(off)+total]
	}

	out := make([]float64, count)
	for i := 0; i < int(count); i++ {
		b := raw[i*size : i*size+size]
		switch fieldType {
		case 1, 2, 6, 7:
			out[i] = float64(b[0])
		case 3:
			out[i] = float64(order.Uint16(b))
		case 8:
			out[i] = float64(int16(order.Uint16(b)))
		case 4:
			out[i] = float64(order.Uint32(b))
		case 9:
			out[i] = float64(int32(order.Uint32(b)))
		case 11:
			out[i] = float64(math.Float32frombits(order.Uint32(b)))
		case 12:
			out[i] = math.Float64frombits(order.Uint64(b))
		case 5:
			num := order.Uint32(b[0:4])
			den := order.Uint32(b[4:8])
			if den == 0 {
				out[i] = 0
			} else {
				out[i] = float64(num) / float64(den)
			}
		case 10:
			num := int32(order.Uint32(b[0:4]))
			den := int32(order.Uint32(b[4:8]))
			if den == 0 {
				out[i] = 0
			} else {
				out[i] = float64(num) / float64(den)
			}
		}
	}
	return out, nil
}

// readSamples extracts samplesPerPixel interleaved bands of float64 data,
// honoring either chunky (PlanarConfiguration=1, the common case) or
// planar (=2) layout, from the strip(s) StripOffsets/StripByteCounts name.
func readSamples(data []byte, order binary.ByteOrder, tags map[uint16]tiffTag, cols, rows, samplesPerPixel int) ([][]float64, error) {
	stripOffsets, ok := tags[273]
	if !ok || len(stripOffsets.values) == 0 {
		return nil, fmt.Errorf("grid: geotiff missing StripOffsets tag")
	}
	rowsPerStrip := rows
	if rps, ok := tags[278]; ok && len(rps.values) > 0 {
		rowsPerStrip = int(rps.values[0])
	}
	planarConfig := 1
	if pc, ok := tags[284]; ok && len(pc.values) > 0 {
		planarConfig = int(pc.values[0])
	}

	bands := make([][]float64, samplesPerPixel)
	for b := range bands {
		bands[b] = make([]float64, rows*cols)
	}

	nStrips := len(stripOffsets.values)
	readF64 := func(off int) float64 {
		return math.Float64frombits(order.Uint64(data[off : off+8]))
	}

	if planarConfig == 2 {
		stripsPerBand := nStrips / samplesPerPixel
		for b := 0; b < samplesPerPixel; b++ {
			row := 0
			for s := 0; s < stripsPerBand; s++ {
				idx := b*stripsPerBand + s
				off := int(stripOffsets.values[idx])
				thisRows := rowsPerStrip
				if row+thisRows > rows {
					thisRows = rows - row
				}
				for r := 0; r < thisRows; r++ {
					for c := 0; c < cols; c++ {
						pos := off + (r*cols+c)*8
						bands[b][(row+r)*cols+c] = readF64(pos)
					}
				}
				row += thisRows
			}
		}
		return bands, nil
	}

	row := 0
	for s := 0; s < nStrips; s++ {
		off := int(stripOffsets.values[s])
		thisRows := rowsPerStrip
		if row+thisRows > rows {
			thisRows = rows - row
		}
		for r := 0; r < thisRows; r++ {
			for c := 0; c < cols; c++ {
				base := off + (r*cols+c)*samplesPerPixel*8
				for b := 0; b < samplesPerPixel; b++ {
					bands[b][(row+r)*cols+c] = readF64(base + b*8)
				}
			}
		}
		row += thisRows
	}
	return bands, nil
}
