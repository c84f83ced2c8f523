// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// Params is the neutral parameter record every CRS definition folds into,
// regardless of whether it arrived as a PROJ string, WKT1/WKT2 tree or
// PROJJSON object. Method-specific scratch state (mlfn coefficients,
// LAEA's qp/rq/dd, oblique-Mercator's rotation coefficients, etc.) is
// deliberately NOT a field here: each
// projection's own Go type owns its derived-parameter cell, computed once
// at init and never mutated again. Params itself becomes immutable the
// moment its projection is bound (see BindProjection): points never
// borrow from it, so concurrent Forward/Inverse calls sharing one *Params
// need no locking.
type Params struct {
	ProjName string
	Title    string

	// Ellipsoid.
	A, B, Rf     float64
	Es, E, Ep2   float64
	Sphere       bool

	// Datum.
	DatumCode   string
	DatumParams []float64 // len 0, 3 or 7
	NadGrids    string

	// Projection parameters, all angles in radians.
	Lat0, Lat1, Lat2, LatTS    float64
	Long0, Long1, Long2, LongC float64
	Alpha, RectifiedGridAngle  float64
	X0, Y0, K0                 float64

	// omerc only: true selects the Hotine_Oblique_Mercator_Azimuth_Center
	// variant (no origin-offset correction), set by +no_uoff/+no_off or an
	// azimuth-center method name; false is the default
	// Hotine_Oblique_Mercator variant.
	NoUoff bool

	// Unit.
	Units   string
	ToMeter float64

	// Prime meridian, radians east of Greenwich.
	FromGreenwich float64

	// Axis order, three letters from {e,w,n,s,u,d}; "enu" is the default.
	Axis string

	// UTM-only.
	Zone  int
	South bool

	// projection is bound once derived fields are computed; Forward/
	// Inverse route through it. Nil until BindProjection succeeds.
	projection Projection

	defText string
}

// defaultParams returns a record with every baseline default applied,
// ready for a parser to overwrite fields as it encounters them.
func defaultParams() *Params {
	return &Params{
		ProjName: "",
		K0:       1,
		Units:    "m",
		ToMeter:  1,
		Axis:     "enu",
		DatumCode: "WGS84",
	}
}

// deriveEllipsoid fills in B/Es/E/Ep2/Sphere from whichever of (a,b,rf) was
// supplied, resolving "ellps" against the registry first. It must run
// after all PROJ-string/WKT/PROJJSON keys touching the
// ellipsoid have already been applied to p.
func (p *Params) deriveEllipsoid(ellpsName string) error {
	if p.A == 0 {
		if ellpsName == "" {
			ellpsName = "WGS84"
		}
		e, ok := lookupEllipse(ellpsName)
		if !ok {
			return defErrf("ellipsoid undefined", errUnknownEllipse)
		}
		applyKeyVal(p, e.major)
		applyKeyVal(p, e.ell)
	}
	if p.A <= 0 {
		return defErr("ellipsoid undefined: a must be positive")
	}
	if p.B == 0 {
		if p.Rf != 0 {
			p.B = p.A * (1 - 1/p.Rf)
		} else if p.Es != 0 {
			p.B = p.A * math.Sqrt(1-p.Es)
		} else {
			p.B = p.A
		}
	}
	p.Es = 1 - (p.B*p.B)/(p.A*p.A)
	p.E = math.Sqrt(p.Es)
	p.Ep2 = (p.A*p.A - p.B*p.B) / (p.B * p.B)
	p.Sphere = p.A == p.B
	return nil
}

// applyKeyVal applies a single "key=value" PROJ-string fragment (as used
// by the ellipsoid/datum registries, which store their definitions in
// that same textual shape) directly onto p's ellipsoid fields.
func applyKeyVal(p *Params, kv string) {
	if kv == "" {
		return
	}
	key, val := splitKeyVal(kv)
	f := parseFloatOr(val, 0)
	switch key {
	case "a":
		p.A = f
	case "b":
		p.B = f
	case "rf":
		p.Rf = f
	case "es":
		p.Es = f
	}
}

// deriveDatum resolves the datum's Helmert vector or nadgrids spec and
// collapses the WGS84/NAD83-with-zero-shift case to "no shift required".
func (p *Params) deriveDatum() error {
	if p.DatumCode == "" {
		p.DatumCode = "WGS84"
	}
	if p.NadGrids != "" {
		// nadgrids takes precedence over any Helmert vector.
		return nil
	}
	if len(p.DatumParams) != 0 && len(p.DatumParams) != 3 && len(p.DatumParams) != 7 {
		return defErr("datum Helmert vector must have length 0, 3 or 7")
	}
	if p.DatumCode != "WGS84" && p.DatumCode != "NAD83" {
		return nil
	}
	if len(p.DatumParams) == 0 || allZero(p.DatumParams) {
		// WGS84/NAD83 with an all-zero shift is the identity transform.
		p.DatumParams = nil
	}
	return nil
}

func allZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

func validAxis(axis string) bool {
	if len(axis) != 3 {
		return false
	}
	const alphabet = "ewnsud"
	seenDir := map[byte]bool{}
	for i := 0; i < 3; i++ {
		c := axis[i]
		var ok bool
		for j := 0; j < len(alphabet); j++ {
			if alphabet[j] == c {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
		// e/w, n/s and u/d are paired opposites; a legal axis uses each
		// pair at most once.
		pair := axisPair(c)
		if seenDir[pair] {
			return false
		}
		seenDir[pair] = true
	}
	return true
}

func axisPair(c byte) byte {
	switch c {
	case 'e', 'w':
		return 'e'
	case 'n', 's':
		return 'n'
	case 'u', 'd':
		return 'u'
	}
	return 0
}

// BindProjection resolves p.ProjName against the catalogue, runs the
// projection's init hook, and stores the result so Forward/Inverse can
// route through it. Web Mercator forces Sphere=true after derived fields
// are computed but before init runs, so the Mercator init sees a
// spherical ellipsoid and uses the simpler formula.
func (p *Params) BindProjection() error {
	name := canonicalProjName(p.ProjName)
	if name == "" {
		return defErr("unsupported projection: " + p.ProjName)
	}
	if isWebMercatorTitle(p.Title) || name == "webmerc" {
		p.Sphere = true
		name = "merc"
	}
	factory, ok := projectionFactories[name]
	if !ok {
		return defErrf("unsupported projection: "+p.ProjName, errUnsupportedProj)
	}
	proj, err := factory(p)
	if err != nil {
		return err
	}
	p.projection = proj
	return nil
}

func isWebMercatorTitle(title string) bool {
	return containsFold(title, "3857") || containsFold(title, "Pseudo_Mercator") ||
		containsFold(title, "Pseudo-Mercator")
}

// Forward projects a geographic point (radians) to projected metres.
func (p *Params) Forward(pt Point) (Point, error) {
	if p.projection == nil {
		return Point{}, defErr("projection not bound")
	}
	return p.projection.Forward(pt)
}

// Inverse projects a projected point (metres) back to geographic radians.
func (p *Params) Inverse(pt Point) (Point, error) {
	if p.projection == nil {
		return Point{}, defErr("projection not bound")
	}
	return p.projection.Inverse(pt)
}

// IsLongLat reports whether this CRS's native representation is
// geographic (so the pipeline should scale by D2R/R2D instead of calling
// Forward/Inverse).
func (p *Params) IsLongLat() bool {
	name := canonicalProjName(p.ProjName)
	return name == "longlat"
}

// equalShortCircuit reports whether from and to are the same CRS closely
// enough that a transform between them is the identity, grounded on
// ctessum/geom/proj's NewTransform fast path (source.Equal(dest, 3)).
func equalShortCircuit(from, to *Params) bool {
	if from == to {
		return true
	}
	if from.defText != "" && from.defText == to.defText {
		return true
	}
	return canonicalProjName(from.ProjName) == canonicalProjName(to.ProjName) &&
		from.DatumCode == to.DatumCode &&
		nearlyEqual(from.A, to.A) && nearlyEqual(from.Es, to.Es) &&
		nearlyEqual(from.Long0, to.Long0) && nearlyEqual(from.Lat0, to.Lat0) &&
		nearlyEqual(from.X0, to.X0) && nearlyEqual(from.Y0, to.Y0) &&
		nearlyEqual(from.K0, to.K0) && from.Axis == to.Axis &&
		nearlyEqual(from.Lat1, to.Lat1) && nearlyEqual(from.Lat2, to.Lat2) &&
		nearlyEqual(from.LatTS, to.LatTS) && nearlyEqual(from.LongC, to.LongC) &&
		nearlyEqual(from.Alpha, to.Alpha) &&
		nearlyEqual(from.RectifiedGridAngle, to.RectifiedGridAngle) &&
		from.NoUoff == to.NoUoff && from.Sphere == to.Sphere &&
		nearlyEqual(from.ToMeter, to.ToMeter) &&
		helmertEqual(from.DatumParams, to.DatumParams) && from.NadGrids == to.NadGrids
}

func helmertEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !nearlyEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func nearlyEqual(a, b float64) bool {
	const ulpTolerance = 1e-9
	if a == b {
		return true
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	scale := math.Abs(a)
	if math.Abs(b) > scale {
		scale = math.Abs(b)
	}
	if scale == 0 {
		return d < ulpTolerance
	}
	return d/scale < ulpTolerance
}
