// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// tmerc is the Transverse Mercator family, implemented with the classic
// 6th-order Snyder series via the shared en/mlfn meridional-arc kernel
// (mathkernel.go), matching PROJ's tmerc.c approximate algorithm. utm.go
// reduces to this same type with a zone-derived long0/k0/x0/y0.
type tmerc struct {
	p   *Params
	en  [5]float64
	ml0 float64
}

func init() {
	registerProjection([]string{"tmerc"}, func(p *Params) (Projection, error) {
		en := enCoeffs(p.Es)
		t := &tmerc{p: p, en: en}
		t.ml0 = mlfn(en, p.Lat0, math.Sin(p.Lat0), math.Cos(p.Lat0))
		return t, nil
	})
}

func (t *tmerc) Forward(pt Point) (Point, error) {
	p := t.p
	lon, lat := pt.X, pt.Y
	dlam := adjustLon(lon - p.Long0)

	if p.Sphere {
		b := math.Cos(lat) * math.Sin(dlam)
		if math.Abs(math.Abs(b)-1) <= epsln {
			return Point{}, failTransform("tmerc: point projects to infinity")
		}
		x := 0.5*p.A*p.K0*math.Log((1+b)/(1-b)) + p.X0
		y := p.A*p.K0*(math.Atan2(math.Tan(lat), math.Cos(dlam))-p.Lat0) + p.Y0
		return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}

	sinphi, cosphi := math.Sin(lat), math.Cos(lat)
	tval := sinphi / cosphi
	tsq := tval * tval
	al := cosphi * dlam
	als := al * al
	c := p.Ep2 * cosphi * cosphi
	n := p.A / math.Sqrt(1-p.Es*sinphi*sinphi)
	ml := mlfn(t.en, lat, sinphi, cosphi)

	x := p.X0 + p.K0*n*al*(1+als/6*(1-tsq+c+als/20*(5-18*tsq+tsq*tsq+72*c-58*p.Ep2)))
	y := p.Y0 + p.K0*(p.A*(ml-t.ml0)+n*tval*(als*(0.5+als/24*(5-tsq+9*c+4*c*c+als/30*(61-58*tsq+tsq*tsq+600*c-330*p.Ep2)))))
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (t *tmerc) Inverse(pt Point) (Point, error) {
	p := t.p

	if p.Sphere {
		xr := (pt.X - p.X0) / (p.A * p.K0)
		d := (pt.Y-p.Y0)/(p.A*p.K0) + p.Lat0
		lat := asinz(math.Sin(d) / cosh(xr))
		lon := adjustLon(p.Long0 + math.Atan2(sinh(xr), math.Cos(d)))
		return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}

	ml := t.ml0 + (pt.Y-p.Y0)/p.K0/p.A
	phi1, err := invMlfn(ml, p.Es, t.en)
	if err != nil {
		return Point{}, failTransform("tmerc inverse: " + err.Error())
	}
	if math.Abs(phi1) >= halfPi-epsln {
		lat := halfPi * sign(phi1)
		return Point{X: p.Long0, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}

	sinphi, cosphi := math.Sin(phi1), math.Cos(phi1)
	tanphi := sinphi / cosphi
	c := p.Ep2 * cosphi * cosphi
	tsq := tanphi * tanphi
	n := p.A / math.Sqrt(1-p.Es*sinphi*sinphi)
	r := n * (1 - p.Es) / (1 - p.Es*sinphi*sinphi)
	d := (pt.X - p.X0) / (n * p.K0)
	ds := d * d

	lat := phi1 - (n*tanphi/r)*(ds*(0.5-ds/24*(5+3*tsq+10*c-4*c*c-9*p.Ep2-ds/30*(61+90*tsq+298*c+45*tsq*tsq-252*p.Ep2-3*c*c))))
	lon := adjustLon(p.Long0 + d*(1-ds/6*(1+2*tsq+c-ds/20*(5-2*c+28*tsq-3*c*c+8*p.Ep2+24*tsq*tsq)))/cosphi)
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}
