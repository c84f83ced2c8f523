// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// shiftDatum moves a geographic point (radians) from one CRS's datum to
// another's, picking among three regimes: identity when the datums
// already agree, an NTv2 grid shift when either side
// names one, or a Helmert transform routed through the WGS84 hub.
// Grounded on ctessum/geom/proj's datum_transform.go, which the same
// three-way dispatch comes from (that file's checkParams/nadgrids/
// geocentric fallback chain).
func (e *Engine) shiftDatum(from, to *Params, pt Point) (Point, error) {
	if datumsEqual(from, to) {
		return pt, nil
	}

	if from.NadGrids != "" {
		shifted, ok, err := e.shiftViaGrid(from.NadGrids, pt, false)
		if err != nil {
			return Point{}, err
		}
		if ok {
			pt = shifted
			if to.NadGrids == "" || to.NadGrids == from.NadGrids {
				return toWGS84IfNeeded(pt, from, to)
			}
		}
	}
	if to.NadGrids != "" {
		// Walk the source point through WGS84 first (NTv2 grids in this
		// package are always referenced to WGS84/NAD83), then invert the
		// destination's grid.
		hub, err := toWGS84IfNeeded(pt, from, to)
		if err != nil {
			return Point{}, err
		}
		shifted, ok, err := e.shiftViaGrid(to.NadGrids, hub, true)
		if err != nil {
			return Point{}, err
		}
		if ok {
			return shifted, nil
		}
		return hub, nil
	}

	return shiftHelmert(from, to, pt)
}

func datumsEqual(from, to *Params) bool {
	if from.DatumCode == to.DatumCode && from.NadGrids == to.NadGrids &&
		helmertEqual(from.DatumParams, to.DatumParams) {
		return true
	}
	return from.NadGrids == "" && to.NadGrids == "" &&
		len(from.DatumParams) == 0 && len(to.DatumParams) == 0
}

// shiftViaGrid applies one sub-grid's bilinear (dLat, dLon) correction;
// invert=true subtracts it instead of adding, for the reverse direction
// (hub -> target datum) rather than (source datum -> hub).
func (e *Engine) shiftViaGrid(gridSpec string, pt Point, invert bool) (Point, bool, error) {
	name, optional := parseNadGridsName(gridSpec)
	g, ok := e.lookupGrid(name)
	if !ok {
		if optional {
			return pt, false, nil
		}
		return Point{}, false, &TransformFailure{Reason: "nadgrids not loaded: " + name}
	}
	dLat, dLon, err := g.Interpolate(pt.X, pt.Y)
	if err != nil {
		if optional {
			return pt, false, nil
		}
		return Point{}, false, &TransformFailure{Reason: "point outside nadgrids " + name + ": " + err.Error()}
	}
	out := pt
	if invert {
		out.X -= dLon
		out.Y -= dLat
	} else {
		out.X += dLon
		out.Y += dLat
	}
	return out, true, nil
}

// parseNadGridsName strips the "@" optional-grid marker PROJ strings use
// ("+nadgrids=@null" and friends) and reports whether it was present.
func parseNadGridsName(spec string) (name string, optional bool) {
	if len(spec) > 0 && spec[0] == '@' {
		return spec[1:], true
	}
	return spec, false
}

// toWGS84IfNeeded runs the Helmert leg of a mixed grid/Helmert chain: a
// source CRS with nadgrids set still needs its own Helmert vector (if any)
// applied before it's comparable to a destination with a different
// nadgrids reference.
func toWGS84IfNeeded(pt Point, from, to *Params) (Point, error) {
	if from.NadGrids != "" && to.NadGrids != "" {
		return pt, nil
	}
	return shiftHelmert(from, to, pt)
}

// shiftHelmert converts from's geographic point to geocentric, applies
// from's Helmert vector to reach the WGS84 hub, unapplies to's vector to
// reach to's datum, then converts back to geographic using Bowring's
// closed form when available and falling back to the iterative Hannover
// method only if Bowring's series fails to stabilize (it doesn't, for any
// realistic ellipsoid, but the iterative path stays as the documented
// fallback ctessum/geom/proj itself uses for geocentricToGeodetic).
func shiftHelmert(from, to *Params, pt Point) (Point, error) {
	if helmertEqual(from.DatumParams, to.DatumParams) && from.A == to.A && from.Es == to.Es {
		return pt, nil
	}
	x, y, z := geodeticToGeocentric(pt.X, pt.Y, pickHeight(pt), from.A, from.Es)
	x, y, z = applyHelmert(x, y, z, from.DatumParams)
	x, y, z = unapplyHelmert(x, y, z, to.DatumParams)

	lon, lat, height := geocentricToGeodeticBowring(x, y, z, to.A, to.Es)
	if math.IsNaN(lon) || math.IsNaN(lat) {
		var err error
		lon, lat, height, err = geocentricToGeodeticIterative(x, y, z, to.A, to.Es)
		if err != nil {
			return Point{}, &TransformFailure{Reason: "datum shift did not converge: " + err.Error()}
		}
	}
	out := pt
	out.X, out.Y = lon, lat
	if pt.hasZ {
		out.Z = height
	}
	return out, nil
}

func pickHeight(pt Point) float64 {
	if pt.hasZ {
		return pt.Z
	}
	return 0
}
