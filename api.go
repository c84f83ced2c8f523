// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"bytes"
	"io"

	"github.com/go-geodesy/projectron/grid"
)

// Parse resolves def against the DefaultEngine, caching by definition text.
func Parse(def string) (*Params, error) {
	return DefaultEngine.Parse(def)
}

// Transform converts pt from fromDef's CRS to toDef's CRS using the
// DefaultEngine, parsing and caching both definitions as needed. This is
// the package's one-shot convenience entry point; MakeConverter below
// amortizes the parse cost across many points.
func Transform(fromDef, toDef string, pt Point) (Point, error) {
	conv, err := MakeConverter(fromDef, toDef)
	if err != nil {
		return Point{}, err
	}
	return conv(pt)
}

// Converter transforms a single point; returned by MakeConverter so a
// caller doing many points pays the definition-parse cost once.
type Converter func(pt Point) (Point, error)

// MakeConverter parses fromDef/toDef once against the DefaultEngine and
// returns a reusable Converter closed over both bound *Params, matching
// proj4js's proj4(from, to) two-argument form.
func MakeConverter(fromDef, toDef string) (Converter, error) {
	return DefaultEngine.MakeConverter(fromDef, toDef)
}

// MakeConverter is the Engine-scoped counterpart of the package-level
// helper above, for callers managing their own registry instance instead
// of the shared DefaultEngine.
func (e *Engine) MakeConverter(fromDef, toDef string) (Converter, error) {
	from, err := e.Parse(fromDef)
	if err != nil {
		return nil, err
	}
	to, err := e.Parse(toDef)
	if err != nil {
		return nil, err
	}
	return func(pt Point) (Point, error) {
		return e.Transform(from, to, pt)
	}, nil
}

// TransformFlat transforms a flat [x0, y0, x1, y1, ...] slice in place,
// the layout proj4js's proj4.transform batch form and GIS pipelines
// moving large point sets both use to avoid one allocation per point.
func TransformFlat(fromDef, toDef string, coords []float64) error {
	conv, err := MakeConverter(fromDef, toDef)
	if err != nil {
		return err
	}
	for i := 0; i+1 < len(coords); i += 2 {
		out, err := conv(NewPoint2D(coords[i], coords[i+1]))
		if err != nil {
			return err
		}
		coords[i], coords[i+1] = out.X, out.Y
	}
	return nil
}

// LoadGrid registers an already-loaded NTv2 grid with the DefaultEngine
// under name, so a later +nadgrids=name (or +nadgrids=@name) definition
// can resolve it.
func LoadGrid(name string, g *grid.Grid) {
	DefaultEngine.LoadGrid(name, g)
}

// LoadNTv2Grid reads an NTv2 (.gsb) grid file from r and registers it with
// the DefaultEngine under name in one step.
func LoadNTv2Grid(name string, r io.Reader) error {
	g, err := grid.LoadNTv2(r)
	if err != nil {
		return &IOError{Reason: "loading nadgrids " + name, Err: err}
	}
	DefaultEngine.LoadGrid(name, g)
	return nil
}

// LoadGridFile reads a nadgrids file of either supported format and
// registers it with the DefaultEngine under name, auto-detecting NTv2
// binary versus GeoTIFF-packed (NTv2's NUM_OREC header field vs the TIFF
// "II*"/"MM*" magic bytes ntv2 files lack).
func LoadGridFile(name string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &IOError{Reason: "loading nadgrids " + name, Err: err}
	}
	var g *grid.Grid
	if len(data) >= 4 && (string(data[:2]) == "II" || string(data[:2]) == "MM") {
		g, err = grid.LoadGeoTIFF(bytes.NewReader(data))
	} else {
		g, err = grid.LoadNTv2(bytes.NewReader(data))
	}
	if err != nil {
		return &IOError{Reason: "loading nadgrids " + name, Err: err}
	}
	DefaultEngine.LoadGrid(name, g)
	return nil
}
