// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// The three conic projections share the same rho/theta structure: a cone
// is fit through one or two standard parallels, then every point's image
// is a (rho, theta) pair around the cone's apex. Lambert Conformal Conic
// forward and inverse, Snyder's Albers and Equidistant Conic formulas all
// reuse msfnz/tsfnz/qsfnz/mlfn from mathkernel.go.

// --- Lambert Conformal Conic ---

type lcc struct {
	p          *Params
	n, f, rho0 float64
}

func init() {
	registerProjection([]string{"lcc"}, func(p *Params) (Projection, error) {
		lat1, lat2 := p.Lat1, p.Lat2
		if lat2 == 0 {
			lat2 = lat1
		}
		if math.Abs(lat1+lat2) < epsln {
			return nil, defErr("lcc: standard parallels lat1/lat2 sum to zero (degenerate)")
		}
		sinphi, cosphi := math.Sin(lat1), math.Cos(lat1)
		ms1 := msfnz(p.E, sinphi, cosphi)
		ts1 := tsfnz(p.E, lat1, sinphi)

		var n float64
		if math.Abs(lat1-lat2) < epsln {
			n = sinphi
		} else {
			sinphi2, cosphi2 := math.Sin(lat2), math.Cos(lat2)
			ms2 := msfnz(p.E, sinphi2, cosphi2)
			ts2 := tsfnz(p.E, lat2, sinphi2)
			n = math.Log(ms1/ms2) / math.Log(ts1/ts2)
		}
		f := ms1 / (n * math.Pow(ts1, n))

		var rho0 float64
		if math.Abs(math.Abs(p.Lat0)-halfPi) < epsln {
			rho0 = 0
		} else {
			rho0 = p.A * f * math.Pow(tsfnz(p.E, p.Lat0, math.Sin(p.Lat0)), n)
		}
		return &lcc{p: p, n: n, f: f, rho0: rho0}, nil
	})
}

func (l *lcc) Forward(pt Point) (Point, error) {
	p := l.p
	lat := pt.Y
	if math.Abs(math.Abs(lat)-halfPi) > epsln {
		ts := tsfnz(p.E, lat, math.Sin(lat))
		rho := p.A * l.f * math.Pow(ts, l.n)
		theta := l.n * adjustLon(pt.X-p.Long0)
		x := p.X0 + p.K0*rho*math.Sin(theta)
		y := p.Y0 + p.K0*(l.rho0-rho*math.Cos(theta))
		return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}
	if lat*l.n <= 0 {
		return Point{}, failTransform("lcc: point projects to infinity")
	}
	return Point{X: p.X0, Y: p.Y0 + p.K0*l.rho0, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (l *lcc) Inverse(pt Point) (Point, error) {
	p := l.p
	xr := (pt.X - p.X0) / p.K0
	yr := l.rho0 - (pt.Y-p.Y0)/p.K0
	rho := math.Hypot(xr, yr)
	if l.n < 0 {
		rho, xr, yr = -rho, -xr, -yr
	}
	var lon, lat float64
	if rho != 0 {
		theta := math.Atan2(xr, yr)
		lon = adjustLon(theta/l.n + p.Long0)
		ts := math.Pow(rho/(p.A*l.f), 1/l.n)
		var err error
		lat, err = phi2z(p.E, ts)
		if err != nil {
			return Point{}, failTransform("lcc inverse: " + err.Error())
		}
	} else {
		lon = p.Long0
		lat = halfPi * sign(l.n)
	}
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

// --- Albers Equal-Area ---

type aea struct {
	p          *Params
	ns0, c, rh float64
}

func init() {
	registerProjection([]string{"aea"}, func(p *Params) (Projection, error) {
		lat1, lat2 := p.Lat1, p.Lat2
		if lat2 == 0 {
			lat2 = lat1
		}
		sin1, cos1 := math.Sin(lat1), math.Cos(lat1)
		m1 := msfnz(p.E, sin1, cos1)
		q1 := qsfnz(p.E, sin1)

		var ns0 float64
		if math.Abs(lat1-lat2) > epsln {
			sin2, cos2 := math.Sin(lat2), math.Cos(lat2)
			m2 := msfnz(p.E, sin2, cos2)
			q2 := qsfnz(p.E, sin2)
			ns0 = (m1*m1 - m2*m2) / (q2 - q1)
		} else {
			ns0 = sin1
		}
		c := m1*m1 + ns0*q1
		q0 := qsfnz(p.E, math.Sin(p.Lat0))
		rh := p.A * math.Sqrt(c-ns0*q0) / ns0
		return &aea{p: p, ns0: ns0, c: c, rh: rh}, nil
	})
}

func (al *aea) Forward(pt Point) (Point, error) {
	p := al.p
	q := qsfnz(p.E, math.Sin(pt.Y))
	arg := al.c - al.ns0*q
	if arg < 0 {
		return Point{}, failTransform("aea: point outside domain")
	}
	rho := p.A * math.Sqrt(arg) / al.ns0
	theta := al.ns0 * adjustLon(pt.X-p.Long0)
	x := p.X0 + p.K0*rho*math.Sin(theta)
	y := p.Y0 + p.K0*(al.rh-rho*math.Cos(theta))
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (al *aea) Inverse(pt Point) (Point, error) {
	p := al.p
	xr := (pt.X - p.X0) / p.K0
	yr := al.rh - (pt.Y-p.Y0)/p.K0
	rho := math.Hypot(xr, yr)
	if al.ns0 < 0 {
		rho, xr, yr = -rho, -xr, -yr
	}
	theta := 0.0
	if rho != 0 {
		theta = math.Atan2(xr, yr)
	}
	lon := adjustLon(p.Long0 + theta/al.ns0)
	q := (al.c - (rho*al.ns0/p.A)*(rho*al.ns0/p.A)) / al.ns0
	lat, err := phi1z(p.E, q)
	if err != nil {
		return Point{}, failTransform("aea inverse: " + err.Error())
	}
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

// phi1z inverts qsfnz by bounded Newton iteration, following Snyder's
// authalic-latitude recovery used by Albers Equal-Area.
func phi1z(e, q float64) (float64, error) {
	if math.Abs(math.Abs(q)-2) < epsln*10 {
		return halfPi * sign(q), nil
	}
	es := e * e
	phi := asinz(q / 2)
	if e < epsln {
		return phi, nil
	}
	for i := 0; i < 25; i++ {
		sinphi := math.Sin(phi)
		cosphi := math.Cos(phi)
		con := e * sinphi
		com := 1 - con*con
		dphi := 0.5 * com * com / cosphi * (q/(1-es) - sinphi/com + 0.5/e*math.Log((1-con)/(1+con)))
		phi += dphi
		if math.Abs(dphi) <= 1e-10 {
			return phi, nil
		}
	}
	return phi, errNoConvergence
}

// --- Equidistant Conic ---

type eqdc struct {
	p          *Params
	en         [5]float64
	ns, g, rh0 float64
}

func init() {
	registerProjection([]string{"eqdc"}, func(p *Params) (Projection, error) {
		en := enCoeffs(p.Es)
		ml0 := mlfn(en, p.Lat0, math.Sin(p.Lat0), math.Cos(p.Lat0))

		lat1, lat2 := p.Lat1, p.Lat2
		if lat2 == 0 {
			lat2 = lat1
		}
		var ns float64
		if math.Abs(lat1-lat2) < epsln {
			ns = math.Sin(lat1)
		} else {
			sin1, cos1 := math.Sin(lat1), math.Cos(lat1)
			m1 := msfnz(p.E, sin1, cos1)
			ml1 := mlfn(en, lat1, sin1, cos1)
			sin2, cos2 := math.Sin(lat2), math.Cos(lat2)
			m2 := msfnz(p.E, sin2, cos2)
			ml2 := mlfn(en, lat2, sin2, cos2)
			ns = (m1 - m2) / (ml2 - ml1)
		}
		sin1, cos1 := math.Sin(lat1), math.Cos(lat1)
		m1 := msfnz(p.E, sin1, cos1)
		ml1 := mlfn(en, lat1, sin1, cos1)
		g := m1/ns + ml1
		rh0 := p.A * (g - ml0)
		return &eqdc{p: p, en: en, ns: ns, g: g, rh0: rh0}, nil
	})
}

func (eq *eqdc) Forward(pt Point) (Point, error) {
	p := eq.p
	ml := mlfn(eq.en, pt.Y, math.Sin(pt.Y), math.Cos(pt.Y))
	rho := p.A * (eq.g - ml)
	theta := eq.ns * adjustLon(pt.X-p.Long0)
	x := p.X0 + p.K0*rho*math.Sin(theta)
	y := p.Y0 + p.K0*(eq.rh0-rho*math.Cos(theta))
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (eq *eqdc) Inverse(pt Point) (Point, error) {
	p := eq.p
	xr := (pt.X - p.X0) / p.K0
	yr := eq.rh0 - (pt.Y-p.Y0)/p.K0
	rho := math.Hypot(xr, yr)
	if eq.ns < 0 {
		rho, xr, yr = -rho, -xr, -yr
	}
	theta := 0.0
	if rho != 0 {
		theta = math.Atan2(xr, yr)
	}
	lon := adjustLon(theta/eq.ns + p.Long0)
	ml := eq.g - rho/p.A
	lat, err := invMlfn(ml, p.Es, eq.en)
	if err != nil {
		return Point{}, failTransform("eqdc inverse: " + err.Error())
	}
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}
