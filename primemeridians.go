// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"strconv"
	"strings"
)

// Prime meridians, named -> a sexagesimal-or-decimal degree string in the
// same "12d27'8.4\"E" notation PROJ strings use, a subset of proj4js's
// pj_datums-adjacent prime meridian list.

type primeMeridian struct {
	id, defn string
}

var pmList = map[string]primeMeridian{
	"greenwich": {"greenwich", "0dE"},
	"lisbon":    {"lisbon", "9d07'54.862\"W"},
	"paris":     {"paris", "2d20'14.025\"E"},
	"bogota":    {"bogota", "74d04'51.3\"W"},
	"madrid":    {"madrid", "3d41'16.58\"W"},
	"rome":      {"rome", "12d27'8.4\"E"},
	"bern":      {"bern", "7d26'22.5\"E"},
	"jakarta":   {"jakarta", "106d48'27.79\"E"},
	"ferro":     {"ferro", "17d40'W"},
	"brussels":  {"brussels", "4d22'4.71\"E"},
	"stockholm": {"stockholm", "18d3'29.8\"E"},
	"athens":    {"athens", "23d42'58.815\"E"},
	"oslo":      {"oslo", "10d43'22.5\"E"},
}

func lookupPrimeMeridian(name string) (primeMeridian, bool) {
	pm, ok := pmList[name]
	return pm, ok
}

// parseDegreeString parses PROJ's "DdM'S\"H" degree-minute-second notation
// (any suffix may be omitted) into signed decimal degrees.
func parseDegreeString(ds string) float64 {
	var res float64
	idx := strings.Index(ds, "d")
	if idx >= 0 {
		f, _ := strconv.ParseFloat(ds[0:idx], 64)
		res += f
		ds = ds[idx+1:]
	} else {
		res, _ = strconv.ParseFloat(ds, 64)
	}
	idx = strings.Index(ds, "'")
	if idx >= 0 {
		f, _ := strconv.ParseFloat(ds[0:idx], 64)
		res += f / 60
		ds = ds[idx+1:]
	}
	idx = strings.Index(ds, "\"")
	if idx >= 0 {
		f, _ := strconv.ParseFloat(ds[0:idx], 64)
		res += f / 3600
		ds = ds[idx+1:]
	}
	if strings.HasSuffix(ds, "W") || strings.HasSuffix(ds, "S") {
		res *= -1
	}
	return res
}
