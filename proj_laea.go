// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// laea is Lambert Azimuthal Equal-Area, the reference-standard case for
// the authalic-latitude machinery (qsfnz/authset/authlat). Grounded on
// Snyder's general oblique/equatorial/polar formulation,
// which the pack's oahumap-proj operations file references by name.
type laeaMode int

const (
	laeaEquatorial laeaMode = iota
	laeaNorthPole
	laeaSouthPole
	laeaOblique
)

type laea struct {
	p                             *Params
	mode                          laeaMode
	qp, mmf                       float64
	apa                           [3]float64
	sinb1, cosb1, dd, xmf, ymf, rq float64
	sinph0, cosph0                float64
}

func init() {
	registerProjection([]string{"laea"}, func(p *Params) (Projection, error) {
		l := &laea{p: p}
		t := math.Abs(p.Lat0)
		switch {
		case math.Abs(t-halfPi) < epsln:
			if p.Lat0 < 0 {
				l.mode = laeaSouthPole
			} else {
				l.mode = laeaNorthPole
			}
		case t < epsln:
			l.mode = laeaEquatorial
		default:
			l.mode = laeaOblique
		}
		if !p.Sphere {
			l.qp = qsfnz(p.E, 1)
			l.mmf = 0.5 / (1 - p.Es)
			l.apa = authset(p.Es)
			switch l.mode {
			case laeaNorthPole, laeaSouthPole:
				l.dd = 1
			case laeaEquatorial:
				l.rq = math.Sqrt(0.5 * l.qp)
				l.dd = 1 / l.rq
				l.xmf = 1
				l.ymf = 0.5 * l.qp
			case laeaOblique:
				l.rq = math.Sqrt(0.5 * l.qp)
				sinphi := math.Sin(p.Lat0)
				l.sinb1 = qsfnz(p.E, sinphi) / l.qp
				l.cosb1 = math.Sqrt(1 - l.sinb1*l.sinb1)
				l.dd = math.Cos(p.Lat0) / (math.Sqrt(1-p.Es*sinphi*sinphi) * l.rq * l.cosb1)
				l.ymf = l.rq / l.dd
				l.xmf = l.rq * l.dd
			}
		} else if l.mode == laeaOblique {
			l.sinph0 = math.Sin(p.Lat0)
			l.cosph0 = math.Cos(p.Lat0)
		}
		return l, nil
	})
}

func (l *laea) Forward(pt Point) (Point, error) {
	p := l.p
	lam := adjustLon(pt.X - p.Long0)
	phi := pt.Y
	var x, y float64

	if p.Sphere {
		sinphi, cosphi := math.Sin(phi), math.Cos(phi)
		coslam := math.Cos(lam)
		switch l.mode {
		case laeaOblique, laeaEquatorial:
			var yy float64
			if l.mode == laeaEquatorial {
				yy = 1 + cosphi*coslam
			} else {
				yy = 1 + l.sinph0*sinphi + l.cosph0*cosphi*coslam
			}
			if yy <= epsln {
				return Point{}, failTransform("laea: antipodal point")
			}
			yy = math.Sqrt(2 / yy)
			x = yy * cosphi * math.Sin(lam)
			if l.mode == laeaEquatorial {
				y = yy * sinphi
			} else {
				y = yy * (l.cosph0*sinphi - l.sinph0*cosphi*coslam)
			}
		case laeaNorthPole, laeaSouthPole:
			if l.mode == laeaNorthPole {
				coslam = -coslam
			}
			if math.Abs(phi+p.Lat0) < epsln {
				return Point{}, failTransform("laea: point at antipodal pole")
			}
			yy := fortPi - phi*0.5
			if l.mode == laeaSouthPole {
				yy = 2 * math.Cos(yy)
			} else {
				yy = 2 * math.Sin(yy)
			}
			x = yy * math.Sin(lam)
			y = yy * coslam
		}
		return Point{X: p.X0 + p.A*x, Y: p.Y0 + p.A*y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}

	coslam, sinlam := math.Cos(lam), math.Sin(lam)
	sinphi := math.Sin(phi)
	q := qsfnz(p.E, sinphi)
	var sinb, cosb, b float64
	if l.mode == laeaOblique || l.mode == laeaEquatorial {
		sinb = q / l.qp
		cosb = math.Sqrt(1 - sinb*sinb)
	}
	switch l.mode {
	case laeaOblique:
		b = 1 + l.sinb1*sinb + l.cosb1*cosb*coslam
	case laeaEquatorial:
		b = 1 + cosb*coslam
	case laeaNorthPole:
		b = halfPi + phi
		q = l.qp - q
	case laeaSouthPole:
		b = phi - halfPi
		q = l.qp + q
	}
	switch l.mode {
	case laeaOblique, laeaEquatorial:
		if b <= epsln {
			return Point{}, failTransform("laea: antipodal point")
		}
		b = math.Sqrt(2 / b)
	case laeaNorthPole, laeaSouthPole:
		if q < 0 {
			q = 0
		}
		b = math.Sqrt(q)
	}
	switch l.mode {
	case laeaOblique:
		x = l.xmf * b * cosb * sinlam
		y = l.ymf * b * (l.cosb1*sinb - l.sinb1*cosb*coslam)
	case laeaEquatorial:
		x = l.xmf * b * cosb * sinlam
		y = l.ymf * b * sinb
	case laeaNorthPole:
		x = b * sinlam
		y = -b * coslam
	case laeaSouthPole:
		x = b * sinlam
		y = b * coslam
	}
	return Point{X: p.X0 + p.A*x, Y: p.Y0 + p.A*y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (l *laea) Inverse(pt Point) (Point, error) {
	p := l.p
	x := (pt.X - p.X0) / p.A
	y := (pt.Y - p.Y0) / p.A
	var lam, phi float64

	if p.Sphere {
		rh := math.Hypot(x, y)
		ce := 2 * math.Asin(0.5*rh)
		if rh < epsln {
			return Point{X: p.Long0, Y: p.Lat0, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
		}
		sinz, cosz := math.Sin(ce), math.Cos(ce)
		switch l.mode {
		case laeaEquatorial:
			phi = asinz(y * sinz / rh)
			x *= sinz
			y = cosz * rh
			lam = math.Atan2(x, y)
		case laeaOblique:
			phi = asinz(cosz*l.sinph0 + y*sinz*l.cosph0/rh)
			x *= sinz * l.cosph0
			y = (cosz - math.Sin(phi)*l.sinph0) * rh
			lam = math.Atan2(x, y)
		case laeaNorthPole:
			phi = halfPi - ce
			lam = math.Atan2(x, -y)
		case laeaSouthPole:
			phi = ce - halfPi
			lam = math.Atan2(x, y)
		}
		return Point{X: adjustLon(p.Long0 + lam), Y: phi, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}

	var ab, rho float64
	if l.mode == laeaOblique || l.mode == laeaEquatorial {
		x /= l.dd
		y *= l.dd
		rho = math.Hypot(x, y)
		if rho < epsln {
			return Point{X: p.Long0, Y: p.Lat0, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
		}
		sCe := 2 * math.Asin(0.5*rho/l.rq)
		cCe, sCe2 := math.Cos(sCe), math.Sin(sCe)
		x *= sCe2
		if l.mode == laeaOblique {
			ab = cCe*l.sinb1 + y*sCe2*l.cosb1/rho
			y = rho*l.cosb1*cCe - y*l.sinb1*sCe2
		} else {
			ab = y * sCe2 / rho
			y = rho * cCe
		}
	} else {
		if l.mode == laeaNorthPole {
			y = -y
		}
		q := x*x + y*y
		if q == 0 {
			return Point{X: p.Long0, Y: p.Lat0, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
		}
		ab = 1 - q/l.qp
		if l.mode == laeaSouthPole {
			ab = -ab
		}
	}
	lam = math.Atan2(x, y)
	phi = authlat(asinz(ab), l.apa)
	return Point{X: adjustLon(p.Long0 + lam), Y: phi, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}
