// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// The remaining azimuthal projections (Orthographic, Gnomonic, Azimuthal
// Equidistant) share stere's angular-distance construction but with
// a different radial scaling k(c); like proj4js's ortho.js/gnom.js/
// azimuthal.js, they evaluate the classic spherical formula directly
// against the ellipsoid's semi-major axis rather than carrying a separate
// ellipsoidal series, since none of PROJ's widely-used ports does either.
type azimuthalKind int

const (
	azimuthalOrtho azimuthalKind = iota
	azimuthalGnomonic
	azimuthalEquidistant
)

type azimuthal struct {
	p               *Params
	kind            azimuthalKind
	sinlat0, coslat0 float64
}

func init() {
	registerProjection([]string{"ortho"}, func(p *Params) (Projection, error) {
		return newAzimuthal(p, azimuthalOrtho), nil
	})
	registerProjection([]string{"gnom"}, func(p *Params) (Projection, error) {
		return newAzimuthal(p, azimuthalGnomonic), nil
	})
	registerProjection([]string{"aeqd"}, func(p *Params) (Projection, error) {
		return newAzimuthal(p, azimuthalEquidistant), nil
	})
}

func newAzimuthal(p *Params, kind azimuthalKind) *azimuthal {
	return &azimuthal{p: p, kind: kind, sinlat0: math.Sin(p.Lat0), coslat0: math.Cos(p.Lat0)}
}

func (az *azimuthal) Forward(pt Point) (Point, error) {
	p := az.p
	dlon := adjustLon(pt.X - p.Long0)
	sinlat, coslat := math.Sin(pt.Y), math.Cos(pt.Y)
	coslon := math.Cos(dlon)
	cosc := az.sinlat0*sinlat + az.coslat0*coslat*coslon

	var k float64
	switch az.kind {
	case azimuthalOrtho:
		if cosc < -epsln {
			return Point{}, failTransform("ortho: point on far hemisphere")
		}
		k = 1
	case azimuthalGnomonic:
		if cosc <= epsln {
			return Point{}, failTransform("gnom: point at or beyond the horizon")
		}
		k = 1 / cosc
	case azimuthalEquidistant:
		c := math.Acos(clamp(cosc, -1, 1))
		if c < epsln {
			k = 1
		} else {
			k = c / math.Sin(c)
		}
	}

	x := p.X0 + p.A*k*coslat*math.Sin(dlon)
	y := p.Y0 + p.A*k*(az.coslat0*sinlat-az.sinlat0*coslat*coslon)
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (az *azimuthal) Inverse(pt Point) (Point, error) {
	p := az.p
	x := pt.X - p.X0
	y := pt.Y - p.Y0
	rh := math.Hypot(x, y)
	if rh < epsln {
		return Point{X: p.Long0, Y: p.Lat0, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}

	var c float64
	switch az.kind {
	case azimuthalOrtho:
		if rh > p.A+epsln {
			return Point{}, failTransform("ortho inverse: point outside the visible disk")
		}
		c = asinz(rh / p.A)
	case azimuthalGnomonic:
		c = math.Atan(rh / p.A)
	case azimuthalEquidistant:
		c = rh / p.A
	}

	sinc, cosc := math.Sin(c), math.Cos(c)
	lat := asinz(cosc*az.sinlat0 + y*sinc*az.coslat0/rh)
	var lon float64
	if math.Abs(az.coslat0) < epsln {
		if p.Lat0 > 0 {
			lon = adjustLon(p.Long0 + math.Atan2(x, -y))
		} else {
			lon = adjustLon(p.Long0 + math.Atan2(x, y))
		}
	} else {
		lon = adjustLon(p.Long0 + math.Atan2(x*sinc, rh*az.coslat0*cosc-y*az.sinlat0*sinc))
	}
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
