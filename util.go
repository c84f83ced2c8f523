// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"strconv"
	"strings"
)

func splitKeyVal(s string) (key, val string) {
	parts := strings.SplitN(s, "=", 2)
	key = parts[0]
	if len(parts) == 2 {
		val = parts[1]
	}
	return
}

func parseFloatOr(s string, def float64) float64 {
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// canonicalProjName maps WKT/PROJJSON method aliases onto the catalogue's
// PROJ short names (e.g. Lambert_Conformal_Conic_2SP -> lcc).
func canonicalProjName(name string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	switch key {
	case "longlat", "latlong", "latlon", "lonlat", "identity":
		return "longlat"
	case "merc", "mercator", "mercator_1sp", "mercator_2sp",
		"popular_visualisation_pseudo_mercator", "pseudo_mercator", "pseudo-mercator":
		return "merc"
	case "tmerc", "transverse_mercator":
		return "tmerc"
	case "utm":
		return "utm"
	case "lcc", "lambert_conformal_conic", "lambert_conformal_conic_1sp",
		"lambert_conformal_conic_2sp", "lambert_conformal_conic_2sp_belgium":
		return "lcc"
	case "aea", "albers", "albers_conic_equal_area", "albers_equal_area":
		return "aea"
	case "stere", "stereographic", "polar_stereographic",
		"polar_stereographic_variant_a", "polar_stereographic_variant_b",
		"oblique_stereographic":
		return "stere"
	case "omerc", "hotine_oblique_mercator", "hotine_oblique_mercator_azimuth_center",
		"hotine_oblique_mercator_two_point_natural_origin":
		return "omerc"
	case "eqdc", "equidistant_conic":
		return "eqdc"
	case "laea", "lambert_azimuthal_equal_area":
		return "laea"
	case "sinu", "sinusoidal":
		return "sinu"
	case "moll", "mollweide":
		return "moll"
	case "robin", "robinson":
		return "robin"
	case "vandg", "van_der_grinten", "vandergrinten":
		return "vandg"
	case "eqearth", "equal_earth":
		return "eqearth"
	case "mill", "miller", "miller_cylindrical":
		return "mill"
	case "ortho", "orthographic":
		return "ortho"
	case "gnom", "gnomonic":
		return "gnom"
	case "aeqd", "azimuthal_equidistant":
		return "aeqd"
	case "cea", "cylindrical_equal_area", "lambert_cylindrical_equal_area":
		return "cea"
	case "eqc", "equirectangular", "equidistant_cylindrical", "plate_carree":
		return "eqc"
	}
	return key
}

// bindOmercVariant reads a WKT2/PROJJSON method name to pick the Hotine
// Oblique Mercator variant: "..._Azimuth_Center" is the no-origin-offset
// form (PROJ's +no_uoff/+no_off), the plain "Hotine_Oblique_Mercator"
// name is the default offset-applied form. No-op for every other method.
func bindOmercVariant(p *Params, name string) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
	if strings.Contains(key, "azimuth_center") {
		p.NoUoff = true
	}
}
