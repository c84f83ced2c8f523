// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

// Unit conversion factors (to metres), keyed on the PROJ "units" short
// code, mirroring proj4js's pj_units.c. "degree" is deliberately absent
// here: it needs special handling (its factor is radians-per-degree, used
// only at I/O time for longlat CRSs, never as a metric scale), handled in
// proj_string_parser.go's resolveUnits instead of this table.

type unit struct {
	id       string
	toMeter  float64
	name     string
}

var unitsList = map[string]unit{
	"km":     {"km", 1000, "Kilometer"},
	"m":      {"m", 1.0, "Meter"},
	"dm":     {"dm", 0.1, "Decimeter"},
	"cm":     {"cm", 0.01, "Centimeter"},
	"mm":     {"mm", 0.001, "Millimeter"},
	"kmi":    {"kmi", 1852.0, "International Nautical Mile"},
	"in":     {"in", 0.0254, "International Inch"},
	"ft":     {"ft", 0.3048, "International Foot"},
	"yd":     {"yd", 0.9144, "International Yard"},
	"mi":     {"mi", 1609.344, "International Statute Mile"},
	"fath":   {"fath", 1.8288, "International Fathom"},
	"ch":     {"ch", 20.1168, "International Chain"},
	"link":   {"link", 0.201168, "International Link"},
	"us-in":  {"us-in", 0.0254000508, "U.S. Surveyor's Inch"},
	"us-ft":  {"us-ft", 0.304800609601219, "U.S. Surveyor's Foot"},
	"us-yd":  {"us-yd", 0.914401828803658, "U.S. Surveyor's Yard"},
	"us-ch":  {"us-ch", 20.11684023368047, "U.S. Surveyor's Chain"},
	"us-mi":  {"us-mi", 1609.347218694437, "U.S. Surveyor's Statute Mile"},
	"ind-yd": {"ind-yd", 0.91439523, "Indian Yard"},
	"ind-ft": {"ind-ft", 0.30479841, "Indian Foot"},
	"ind-ch": {"ind-ch", 20.11669506, "Indian Chain"},
}

func lookupUnit(name string) (unit, bool) {
	u, ok := unitsList[name]
	return u, ok
}
