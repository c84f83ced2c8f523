// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grid implements the nadgrids collaborator boundary: loading
// NTv2 (.gsb) horizontal-shift grids and interpolating a per-point
// (dLon, dLat) correction out of them. Grounded on the NTv2 binary layout
// that ctessum/geom/proj's datum machinery assumes a grid provides, with
// the bilinear interpolation proj4js's nadgrid.js applies once loaded.
package grid

import (
	"errors"
	"math"
)

// ErrOutsideGrid reports a point outside every sub-grid's coverage;
// callers fall back to identity or another grid in their search list.
var ErrOutsideGrid = errors.New("grid: point outside coverage")

// SubGrid is one NTv2 node lattice: a rectangular array of (dLat, dLon)
// shift values in radians, indexed row-major from the south-west corner.
type SubGrid struct {
	Name               string
	ParentName         string
	LowerLat, UpperLat float64 // radians
	LowerLon, UpperLon float64 // radians, east-positive (NTv2's west-positive header values negated on load)
	LatInc, LonInc     float64 // radians
	Rows, Cols         int
	// Shifts[row*Cols+col] = {dLat, dLon}, radians, row 0 is LowerLat.
	Shifts [][2]float64
	Children []*SubGrid
}

// Grid is a loaded NTv2 file: one or more top-level sub-grids, each of
// which may have higher-resolution children covering part of its extent.
type Grid struct {
	Subgrids []*SubGrid
}

// Interpolate returns the bilinearly-interpolated (dLat, dLon) shift, in
// radians, at the given geographic point (radians), searching the most
// specific (deepest child) sub-grid that contains it.
func (g *Grid) Interpolate(lon, lat float64) (dLat, dLon float64, err error) {
	for _, sg := range g.Subgrids {
		if best := findDeepest(sg, lon, lat); best != nil {
			return best.interpolate(lon, lat)
		}
	}
	return 0, 0, ErrOutsideGrid
}

func findDeepest(sg *SubGrid, lon, lat float64) *SubGrid {
	if !sg.contains(lon, lat) {
		return nil
	}
	for _, child := range sg.Children {
		if best := findDeepest(child, lon, lat); best != nil {
			return best
		}
	}
	return sg
}

func (sg *SubGrid) contains(lon, lat float64) bool {
	return lon >= sg.LowerLon && lon <= sg.UpperLon && lat >= sg.LowerLat && lat <= sg.UpperLat
}

func (sg *SubGrid) interpolate(lon, lat float64) (dLat, dLon float64, err error) {
	if !sg.contains(lon, lat) {
		return 0, 0, ErrOutsideGrid
	}
	fc := (lon - sg.LowerLon) / sg.LonInc
	fr := (lat - sg.LowerLat) / sg.LatInc
	col := int(math.Floor(fc))
	row := int(math.Floor(fr))
	if col >= sg.Cols-1 {
		col = sg.Cols - 2
	}
	if row >= sg.Rows-1 {
		row = sg.Rows - 2
	}
	if col < 0 || row < 0 {
		return 0, 0, ErrOutsideGrid
	}
	tx := fc - float64(col)
	ty := fr - float64(row)

	at := func(r, c int) [2]float64 { return sg.Shifts[r*sg.Cols+c] }
	v00 := at(row, col)
	v10 := at(row, col+1)
	v01 := at(row+1, col)
	v11 := at(row+1, col+1)

	lerp := func(a, b, t float64) float64 { return a + (b-a)*t }
	lat0 := lerp(v00[0], v10[0], tx)
	lat1 := lerp(v01[0], v11[0], tx)
	lon0 := lerp(v00[1], v10[1], tx)
	lon1 := lerp(v01[1], v11[1], tx)
	dLat = lerp(lat0, lat1, ty)
	dLon = lerp(lon0, lon1, ty)
	return dLat, dLon, nil
}
