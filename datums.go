// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

// The datum registry: name -> (towgs84 or nadgrids spec, backing
// ellipsoid). Based on proj4js's pj_datums.c table and cross-checked
// against paulcager-osgridref's LatLon.datums table (ED50, ETRS89, NTF,
// TokyoJapan, WGS72 added from there, converted from that table's
// [tx,ty,tz,s,rx,ry,rz] order into PROJ's towgs84 dx,dy,dz,rx,ry,rz,s
// order).

type datumDef struct {
	id, definition, ellipse, comments string
}

var datumsList = map[string]datumDef{
	"WGS84": {"WGS84", "towgs84=0,0,0", "WGS84", ""},
	"GGRS87": {"GGRS87", "towgs84=-199.87,74.79,246.62", "GRS80",
		"Greek_Geodetic_Reference_System_1987"},
	"NAD83": {"NAD83", "towgs84=0,0,0", "GRS80",
		"North_American_Datum_1983"},
	"NAD27": {"NAD27", "nadgrids=@conus,@alaska,@ntv2_0.gsb,@ntv1_can.dat",
		"clrk66",
		"North_American_Datum_1927"},
	"potsdam": {"potsdam", "towgs84=598.1,73.7,418.2,0.202,0.045,-2.455,6.7",
		"bessel",
		"Potsdam Rauenberg 1950 DHDN"},
	"carthage": {"carthage", "towgs84=-263.0,6.0,431.0", "clrk80ign",
		"Carthage 1934 Tunisia"},
	"hermannskogel": {"hermannskogel", "towgs84=577.326,90.129,463.919,5.137,1.474,5.297,2.4232",
		"bessel",
		"Hermannskogel"},
	"ire65": {"ire65", "towgs84=482.530,-130.596,564.557,-1.042,-0.214,-0.631,8.15",
		"mod_airy", "Ireland 1965"},
	"nzgd49": {"nzgd49", "towgs84=59.47,-5.04,187.44,0.47,-0.1,1.024,-4.5993",
		"intl", "New Zealand Geodetic Datum 1949"},
	"OSGB36": {"OSGB36", "towgs84=446.448,-125.157,542.060,0.1502,0.2470,0.8421,-20.4894",
		"airy", "Airy 1830"},
	"ED50": {"ED50", "towgs84=89.5,93.8,123.1,0.0,0.0,0.156,-1.2",
		"intl", "European Datum 1950"},
	"ETRS89": {"ETRS89", "towgs84=0,0,0", "GRS80",
		"European Terrestrial Reference System 1989"},
	"NTF": {"NTF", "towgs84=168,60,-320", "clrk80ign", "Nouvelle Triangulation Francaise"},
	"TOKYO": {"TOKYO", "towgs84=148,-507,-685", "bessel", "Tokyo Japan"},
	"WGS72TRANSIT": {"WGS72TRANSIT", "towgs84=0,0,-4.5,0.0,0.0,0.554,-0.22",
		"WGS72", "WGS72 Transit Broadcast Ephemeris"},
	"rnb72": {"rnb72", "towgs84=106.869,-52.2978,103.724,-0.33657,0.456955,-1.84218,1",
		"intl", "Reseau National Belge 1972"},
	"none": {"none", "", "WGS84", "No datum adjustment (identity)"},
}

func lookupDatum(name string) (datumDef, bool) {
	d, ok := datumsList[name]
	return d, ok
}
