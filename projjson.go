// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"encoding/json"
	"math"
	"strings"
)

// parsePROJJSON binds a PROJJSON object (OGC 19-078) to a *Params.
// PROJJSON and WKT2 describe the same CRS model with the same parameter
// names, so both funnel through applyNamedParameter below; this file is
// that name table's one home.
func parsePROJJSON(data []byte) (*Params, error) {
	var root map[string]interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, defErrf("malformed PROJJSON", err)
	}
	p := defaultParams()
	if err := projjsonBind(p, root); err != nil {
		return nil, err
	}
	if err := p.deriveEllipsoid(""); err != nil {
		return nil, err
	}
	if err := p.deriveDatum(); err != nil {
		return nil, err
	}
	if err := p.BindProjection(); err != nil {
		return nil, err
	}
	return p, nil
}

func projjsonBind(p *Params, obj map[string]interface{}) error {
	typ, _ := obj["type"].(string)
	switch typ {
	case "BoundCRS":
		if src, ok := obj["source_crs"].(map[string]interface{}); ok {
			if err := projjsonBind(p, src); err != nil {
				return err
			}
		}
		if xf, ok := obj["transformation"].(map[string]interface{}); ok {
			projjsonBindTransformation(p, xf)
		}
		return nil
	case "GeographicCRS", "GeodeticCRS":
		p.Title, _ = obj["name"].(string)
		p.ProjName = "longlat"
		if datum, ok := obj["datum"].(map[string]interface{}); ok {
			projjsonBindDatum(p, datum)
		}
		return nil
	case "ProjectedCRS":
		p.Title, _ = obj["name"].(string)
		if base, ok := obj["base_crs"].(map[string]interface{}); ok {
			if err := projjsonBind(p, base); err != nil {
				return err
			}
		}
		if conv, ok := obj["conversion"].(map[string]interface{}); ok {
			projjsonBindConversion(p, conv)
		}
		return nil
	}
	return defErr("unsupported PROJJSON type: " + typ)
}

func projjsonBindDatum(p *Params, datum map[string]interface{}) {
	name, _ := datum["name"].(string)
	p.DatumCode = strings.ToLower(name)
	wktDatumRename(p)
	if ell, ok := datum["ellipsoid"].(map[string]interface{}); ok {
		if a, ok := ell["semi_major_axis"].(float64); ok {
			p.A = a
		}
		if rf, ok := ell["inverse_flattening"].(float64); ok {
			p.Rf = rf
		}
		if b, ok := ell["semi_minor_axis"].(float64); ok {
			p.B = b
		}
	}
	if pm, ok := datum["prime_meridian"].(map[string]interface{}); ok {
		pmName, _ := pm["name"].(string)
		pmName = strings.ToLower(pmName)
		if pmName != "" && pmName != "greenwich" {
			if ref, ok := lookupPrimeMeridian(pmName); ok {
				p.FromGreenwich = parseDegreeString(ref.defn) * d2r
			} else if lon, ok := pm["longitude"].(float64); ok {
				p.FromGreenwich = lon * d2r
			}
		}
	}
}

func projjsonBindConversion(p *Params, conv map[string]interface{}) {
	if method, ok := conv["method"].(map[string]interface{}); ok {
		if name, ok := method["name"].(string); ok {
			p.ProjName = canonicalProjName(name)
			bindOmercVariant(p, name)
		}
	}
	params, _ := conv["parameters"].([]interface{})
	for _, raw := range params {
		param, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := param["name"].(string)
		val, ok := param["value"].(float64)
		if !ok {
			continue
		}
		applyNamedParameter(p, strings.ToLower(name), val, projjsonParamUnitFactor(param))
	}
}

// projjsonParamUnitFactor reads a PARAMETER object's own "unit" (OGC
// 19-078 allows either a bare unit-name string or a full unit object
// carrying "conversion_factor"), returning 0 when no per-parameter
// override is present so the caller falls back to the parameter's
// class default (degree for angles, metre for lengths).
func projjsonParamUnitFactor(param map[string]interface{}) float64 {
	switch u := param["unit"].(type) {
	case string:
		return namedUnitFactor(u)
	case map[string]interface{}:
		if f, ok := u["conversion_factor"].(float64); ok {
			return f
		}
		if name, ok := u["name"].(string); ok {
			return namedUnitFactor(name)
		}
	}
	return 0
}

// namedUnitFactor resolves the handful of unit names PROJJSON/WKT2
// parameter clauses carry without an explicit numeric conversion factor.
// "degree" is the special case §4.D calls out: its factor is
// radians-per-degree, used only here at parse time, never as a metric
// scale the way the other entries (and units.go's table) are used.
func namedUnitFactor(name string) float64 {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "degree", "degrees":
		return d2r
	case "grad", "gon":
		return math.Pi / 200
	case "radian":
		return 1
	case "metre", "meter":
		return 1
	default:
		if u, ok := lookupUnit(strings.ToLower(strings.TrimSpace(name))); ok {
			return u.toMeter
		}
	}
	return 0
}

func projjsonBindTransformation(p *Params, xf map[string]interface{}) {
	params, _ := xf["parameters"].([]interface{})
	var vec [7]float64
	for _, raw := range params {
		param, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := param["name"].(string)
		val, ok := param["value"].(float64)
		if !ok {
			continue
		}
		switch strings.ToLower(name) {
		case "x-axis translation":
			vec[0] = val
		case "y-axis translation":
			vec[1] = val
		case "z-axis translation":
			vec[2] = val
		case "x-axis rotation":
			vec[3] = val
		case "y-axis rotation":
			vec[4] = val
		case "z-axis rotation":
			vec[5] = val
		case "scale difference":
			vec[6] = val
		}
	}
	p.DatumParams = vec[:]
}

// applyNamedParameter maps a WKT2/PROJJSON human-readable parameter name
// (already lowercased) onto the matching Params field, sharing one table
// between both formats since ISO 19162 and OGC 19-078 use identical
// parameter vocabulary for the operations this catalogue implements.
//
// unitFactor is the parameter's own per-parameter unit conversion factor
// (from its ANGLEUNIT/LENGTHUNIT child in WKT2, or its "unit" in
// PROJJSON) when the definition overrides the class default; 0 means no
// override was present, so angular parameters fall back to degrees
// (d2r) and linear ones to metres (1), matching §4.D's "degree"
// special case and every other PARAMETER.value unit conversion.
func applyNamedParameter(p *Params, name string, val, unitFactor float64) {
	angular := func() float64 {
		if unitFactor != 0 {
			return unitFactor
		}
		return d2r
	}
	linear := func() float64 {
		if unitFactor != 0 {
			return unitFactor
		}
		return 1
	}
	switch name {
	case "latitude of natural origin", "latitude of origin", "latitude of projection centre",
		"latitude of false origin":
		p.Lat0 = val * angular()
	case "longitude of natural origin", "longitude of origin", "longitude of projection centre",
		"longitude of false origin":
		p.Long0 = val * angular()
		p.LongC = p.Long0
	case "latitude of 1st standard parallel", "standard parallel 1":
		p.Lat1 = val * angular()
	case "latitude of 2nd standard parallel", "standard parallel 2":
		p.Lat2 = val * angular()
	case "latitude of pseudo standard parallel", "latitude of standard parallel":
		p.LatTS = val * angular()
	case "false easting", "easting at false origin":
		p.X0 = val * linear()
	case "false northing", "northing at false origin":
		p.Y0 = val * linear()
	case "scale factor at natural origin", "scale factor on pseudo standard parallel",
		"scale factor on initial line":
		p.K0 = val
	case "azimuth of initial line":
		p.Alpha = val * angular()
	case "angle from rectified to skew grid":
		p.RectifiedGridAngle = val * angular()
	case "latitude of 1st point", "longitude of 1st point",
		"latitude of 2nd point", "longitude of 2nd point":
		// Two-point oblique Mercator form, not bound: the catalogue's omerc
		// takes the azimuth-at-center form only; see DESIGN.md.
	}
}
