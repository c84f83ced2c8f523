// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"strconv"
	"strings"
)

// parseProjString parses a PROJ string ("+proj=merc +lat_ts=0 ...") into a
// bound *Params, recognizing every key the projection catalogue and the
// datum/unit registries understand.
func parseProjString(def string) (*Params, error) {
	p := defaultParams()
	var ellpsName string
	var pmName string
	axisSet := false

	fields := strings.Fields(def)
	for _, f := range fields {
		f = strings.TrimPrefix(f, "+")
		if f == "" {
			continue
		}
		key, val := splitKeyVal(f)
		switch key {
		case "proj":
			p.ProjName = val
		case "lat_0":
			p.Lat0 = parseDegreeString(val) * d2r
		case "lat_1":
			p.Lat1 = parseDegreeString(val) * d2r
		case "lat_2":
			p.Lat2 = parseDegreeString(val) * d2r
		case "lat_ts":
			p.LatTS = parseDegreeString(val) * d2r
		case "lon_0", "long0":
			p.Long0 = parseDegreeString(val) * d2r
		case "lon_1":
			p.Long1 = parseDegreeString(val) * d2r
		case "lon_2":
			p.Long2 = parseDegreeString(val) * d2r
		case "lonc":
			p.LongC = parseDegreeString(val) * d2r
			p.Long0 = p.LongC
		case "alpha":
			p.Alpha = parseDegreeString(val) * d2r
		case "gamma":
			p.RectifiedGridAngle = parseDegreeString(val) * d2r
		case "x_0":
			p.X0 = parseFloatOr(val, 0)
		case "y_0":
			p.Y0 = parseFloatOr(val, 0)
		case "k_0", "k":
			p.K0 = parseFloatOr(val, 1)
		case "a":
			p.A = parseFloatOr(val, 0)
		case "b":
			p.B = parseFloatOr(val, 0)
		case "rf":
			p.Rf = parseFloatOr(val, 0)
		case "es":
			p.Es = parseFloatOr(val, 0)
		case "R":
			r := parseFloatOr(val, 0)
			p.A, p.B = r, r
		case "from_greenwich":
			p.FromGreenwich = parseDegreeString(val) * d2r
		case "ellps":
			ellpsName = val
		case "datum":
			p.DatumCode = val
		case "towgs84":
			params, err := parseFloatList(val)
			if err != nil {
				return nil, defErrf("bad towgs84 list", err)
			}
			p.DatumParams = params
		case "nadgrids":
			p.NadGrids = val
		case "units":
			p.Units = val
		case "to_meter":
			p.ToMeter = parseFloatOr(val, 1)
		case "pm":
			pmName = val
		case "axis":
			p.Axis = val
			axisSet = true
		case "zone":
			z, _ := strconv.Atoi(val)
			p.Zone = z
		case "south":
			p.South = true
		case "no_uoff", "no_off":
			p.NoUoff = true
		case "title":
			p.Title = val
		}
	}

	if p.ProjName == "" {
		return nil, defErr("PROJ string has no +proj key")
	}
	if err := p.deriveEllipsoid(ellpsName); err != nil {
		return nil, err
	}
	if err := p.deriveDatum(); err != nil {
		return nil, err
	}
	if err := resolveUnits(p); err != nil {
		return nil, err
	}
	if err := resolvePrimeMeridian(p, pmName); err != nil {
		return nil, err
	}
	if axisSet && !validAxis(p.Axis) {
		return nil, defErr("invalid +axis spec: " + p.Axis)
	}
	if err := p.BindProjection(); err != nil {
		return nil, err
	}
	return p, nil
}

func resolveUnits(p *Params) error {
	if p.Units == "" || p.Units == "m" {
		p.ToMeter = 1
		return nil
	}
	if p.Units == "degree" || p.Units == "degrees" || p.Units == "deg" {
		return nil
	}
	u, ok := lookupUnit(p.Units)
	if !ok {
		return defErrf("unknown units: "+p.Units, errInvalidParam)
	}
	p.ToMeter = u.toMeter
	return nil
}

func resolvePrimeMeridian(p *Params, pmName string) error {
	if pmName == "" {
		return nil
	}
	if pm, ok := lookupPrimeMeridian(pmName); ok {
		p.FromGreenwich = parseDegreeString(pm.defn) * d2r
		return nil
	}
	p.FromGreenwich = parseDegreeString(pmName) * d2r
	return nil
}

func parseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}
