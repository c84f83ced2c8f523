// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// stere is the Stereographic family: polar, equatorial and oblique
// aspects share one conformal-latitude construction (ssfn below), grounded
// on the classic proj4js stere.js scratch cell names (X0/ms1/sinX0/cosX0/
// con/cons), which the catalogue's stated parameter set mirrors directly.
type stereMode int

const (
	stereOblEquat stereMode = iota
	sterePolar
)

type stere struct {
	p                        *Params
	mode                     stereMode
	con                      float64 // +1 north pole, -1 south pole
	cons                     float64
	k0                       float64
	sinlat0, coslat0         float64
	ms1, sinX0, cosX0        float64
}

func init() {
	registerProjection([]string{"stere"}, func(p *Params) (Projection, error) {
		s := &stere{p: p, k0: p.K0}
		s.sinlat0 = math.Sin(p.Lat0)
		s.coslat0 = math.Cos(p.Lat0)
		if math.Abs(s.coslat0) <= epsln {
			s.mode = sterePolar
			if p.Lat0 > 0 {
				s.con = 1
			} else {
				s.con = -1
			}
		} else {
			s.mode = stereOblEquat
		}

		if p.Sphere {
			if s.k0 == 1 && p.LatTS != 0 && s.mode == sterePolar {
				s.k0 = 0.5 * (1 + sign(p.Lat0)*math.Sin(p.LatTS))
			}
			return s, nil
		}

		s.cons = math.Sqrt(math.Pow(1+p.E, 1+p.E) * math.Pow(1-p.E, 1-p.E))
		if s.k0 == 1 && p.LatTS != 0 && s.mode == sterePolar {
			latts := p.LatTS
			s.k0 = 0.5 * s.cons * msfnz(p.E, math.Sin(latts), math.Cos(latts)) /
				tsfnz(p.E, s.con*latts, s.con*math.Sin(latts))
		}
		s.ms1 = msfnz(p.E, s.sinlat0, s.coslat0)
		x0 := 2*math.Atan(ssfn(p.Lat0, s.sinlat0, p.E)) - halfPi
		s.sinX0 = math.Sin(x0)
		s.cosX0 = math.Cos(x0)
		return s, nil
	})
}

// ssfn is the conformal-sphere latitude mapping used by the oblique/
// equatorial ellipsoidal stereographic projection.
func ssfn(phi, sinphi, e float64) float64 {
	sinphi *= e
	return math.Tan(0.5*(halfPi+phi)) * math.Pow((1-sinphi)/(1+sinphi), 0.5*e)
}

func (s *stere) Forward(pt Point) (Point, error) {
	p := s.p
	lon, lat := pt.X, pt.Y
	sinlat, coslat := math.Sin(lat), math.Cos(lat)
	dlon := adjustLon(lon - p.Long0)

	if math.Abs(math.Abs(lon-p.Long0)-math.Pi) <= epsln && math.Abs(lat+p.Lat0) <= epsln {
		return Point{}, failTransform("stere: antipodal point projects to infinity")
	}

	var x, y float64
	if p.Sphere {
		a := s.k0 * 2 / (1 + s.sinlat0*sinlat + s.coslat0*coslat*math.Cos(dlon))
		x = p.A*a*coslat*math.Sin(dlon) + p.X0
		y = p.A*a*(s.coslat0*sinlat-s.sinlat0*coslat*math.Cos(dlon)) + p.Y0
		return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}

	if s.mode == sterePolar {
		ts := tsfnz(p.E, lat*s.con, s.con*sinlat)
		rh := 2 * p.A * s.k0 * ts / s.cons
		x = p.X0 + rh*math.Sin(dlon)
		y = p.Y0 - s.con*rh*math.Cos(dlon)
		return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}

	xv := 2 * math.Atan(ssfn(lat, sinlat, p.E))
	sinX, cosX := math.Sin(xv-halfPi), math.Cos(xv-halfPi)
	a := 2 * p.A * s.k0 * s.ms1 / (s.cosX0 * (1 + s.sinX0*sinX + s.cosX0*cosX*math.Cos(dlon)))
	y = a*(s.cosX0*sinX-s.sinX0*cosX*math.Cos(dlon)) + p.Y0
	x = a*cosX*math.Sin(dlon) + p.X0
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (s *stere) Inverse(pt Point) (Point, error) {
	p := s.p
	x := pt.X - p.X0
	y := pt.Y - p.Y0
	rh := math.Hypot(x, y)

	if p.Sphere {
		if rh <= epsln {
			return Point{X: p.Long0, Y: p.Lat0, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
		}
		c := 2 * math.Atan(rh/(2*p.A*s.k0))
		sinc, cosc := math.Sin(c), math.Cos(c)
		lat := asinz(cosc*s.sinlat0 + y*sinc*s.coslat0/rh)
		var lon float64
		if math.Abs(s.coslat0) < epsln {
			if p.Lat0 > 0 {
				lon = adjustLon(p.Long0 + math.Atan2(x, -y))
			} else {
				lon = adjustLon(p.Long0 + math.Atan2(x, y))
			}
		} else {
			lon = adjustLon(p.Long0 + math.Atan2(x*sinc, rh*s.coslat0*cosc-y*s.sinlat0*sinc))
		}
		return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}

	if s.mode == sterePolar {
		if rh <= epsln {
			return Point{X: p.Long0, Y: p.Lat0, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
		}
		x *= s.con
		y *= s.con
		ts := rh * s.cons / (2 * p.A * s.k0)
		lat, err := phi2z(p.E, ts)
		if err != nil {
			return Point{}, failTransform("stere inverse: " + err.Error())
		}
		lat *= s.con
		lon := s.con * adjustLon(s.con*p.Long0+math.Atan2(x, -y))
		return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}

	if rh <= epsln {
		return Point{X: p.Long0, Y: p.Lat0, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}
	ce := 2 * math.Atan(rh*s.cosX0/(2*p.A*s.k0*s.ms1))
	sinCe, cosCe := math.Sin(ce), math.Cos(ce)
	chi := asinz(cosCe*s.sinX0 + y*sinCe*s.cosX0/rh)
	lon := adjustLon(p.Long0 + math.Atan2(x*sinCe, rh*s.cosX0*cosCe-y*s.sinX0*sinCe))
	lat := conformalToGeodeticLat(chi, p.Es)
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

// conformalToGeodeticLat inverts the conformal-latitude series used by
// ssfn, via the standard truncated correction (Snyder eq. 3-5).
func conformalToGeodeticLat(chi, es float64) float64 {
	e2 := es
	e4 := e2 * e2
	e6 := e4 * e2
	e8 := e6 * e2
	c2 := e2/2 + 5*e4/24 + e6/12 + 13*e8/360
	c4 := 7*e4/48 + 29*e6/240 + 811*e8/11520
	c6 := 7*e6/120 + 81*e8/1120
	c8 := 4279 * e8 / 161280
	return chi + c2*math.Sin(2*chi) + c4*math.Sin(4*chi) + c6*math.Sin(6*chi) + c8*math.Sin(8*chi)
}
