// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// omerc is the Hotine Oblique Mercator, azimuth-at-center parameterization
// (+alpha, aka "Variant B"/rectified skew orthomorphic). Two named
// variants share this formula, distinguished by Params.NoUoff (set from
// +no_uoff/+no_off or a "..._Azimuth_Center" WKT2/PROJJSON method name):
// the default Hotine_Oblique_Mercator variant applies the uc origin
// offset, while Hotine_Oblique_Mercator_Azimuth_Center leaves it at zero
// so the projection center itself falls on the line u=0. The two-point
// form (+lon_1/+lat_1/+lon_2/+lat_2) is out of scope: see DESIGN.md for
// why only the azimuth form is wired.
type omerc struct {
	p                      *Params
	bl, al, el, gama, uc   float64
}

func init() {
	registerProjection([]string{"omerc"}, func(p *Params) (Projection, error) {
		if p.Alpha == 0 {
			return nil, defErr("omerc: azimuth (+alpha) is required")
		}
		o := &omerc{p: p}
		sinP0, cosP0 := math.Sin(p.Lat0), math.Cos(p.Lat0)
		con := 1 - p.Es*sinP0*sinP0
		com := math.Sqrt(1 - p.Es)
		o.bl = math.Sqrt(1 + p.Es*math.Pow(cosP0, 4)/(1-p.Es))
		o.al = p.A * o.bl * p.K0 * com / con

		var ts0, d float64
		if math.Abs(p.Lat0) < epsln {
			ts0, d, o.el = 1, 1, 1
		} else {
			ts0 = tsfnz(p.E, p.Lat0, sinP0)
			d = o.bl * com / (cosP0 * math.Sqrt(con))
			f := d
			if d*d-1 > 0 {
				root := math.Sqrt(d*d - 1)
				if p.Lat0 >= 0 {
					f = d + root
				} else {
					f = d - root
				}
			}
			o.el = f * math.Pow(ts0, o.bl)
		}

		o.gama = asinz(math.Sin(p.Alpha) / d)
		if math.Abs(p.Lat0) > epsln && !p.NoUoff {
			root := math.Sqrt(math.Max(d*d-1, 0))
			o.uc = (o.al / o.bl) * math.Atan2(root, math.Cos(p.Alpha)) * sign(p.Lat0)
		}
		return o, nil
	})
}

func (o *omerc) Forward(pt Point) (Point, error) {
	p := o.p
	dlon := adjustLon(pt.X - p.Long0)
	var us, vs float64
	if math.Abs(math.Abs(pt.Y)-halfPi) > epsln {
		sinphi := math.Sin(pt.Y)
		ts1 := tsfnz(p.E, pt.Y, sinphi)
		q := o.el / math.Pow(ts1, o.bl)
		s := 0.5 * (q - 1/q)
		t := 0.5 * (q + 1/q)
		v := math.Sin(o.bl * dlon)
		u := (s*math.Sin(o.gama) - v*math.Cos(o.gama)) / t
		if math.Abs(math.Abs(u)-1) < epsln {
			return Point{}, failTransform("omerc: point projects to infinity")
		}
		vs = o.al * math.Log((1-u)/(1+u)) / 2 / o.bl
		con := math.Cos(o.bl * dlon)
		if math.Abs(con) < 1e-7 {
			us = o.al * o.bl * dlon
		} else {
			us = o.al * math.Atan2(s*math.Cos(o.gama)+v*math.Sin(o.gama), con) / o.bl
		}
	} else {
		if pt.Y >= 0 {
			vs = o.al * math.Log(math.Tan(fortPi-0.5*o.gama))
		} else {
			vs = o.al * math.Log(math.Tan(fortPi+0.5*o.gama))
		}
		us = o.al * pt.Y / o.bl
	}
	us -= o.uc
	x := p.X0 + vs*math.Cos(p.Alpha) + us*math.Sin(p.Alpha)
	y := p.Y0 + us*math.Cos(p.Alpha) - vs*math.Sin(p.Alpha)
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (o *omerc) Inverse(pt Point) (Point, error) {
	p := o.p
	xr, yr := pt.X-p.X0, pt.Y-p.Y0
	vs := xr*math.Cos(p.Alpha) - yr*math.Sin(p.Alpha)
	us := yr*math.Cos(p.Alpha) + xr*math.Sin(p.Alpha) + o.uc

	qp := math.Exp(-o.bl * vs / o.al)
	sp := 0.5 * (qp - 1/qp)
	tp := 0.5 * (qp + 1/qp)
	vp := math.Sin(o.bl * us / o.al)
	up := (vp*math.Cos(o.gama) + sp*math.Sin(o.gama)) / tp

	if math.Abs(math.Abs(up)-1) < epsln {
		lat := halfPi * sign(up)
		return Point{X: p.Long0, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}
	ts := math.Pow(o.el/math.Sqrt((1+up)/(1-up)), 1/o.bl)
	lat, err := phi2z(p.E, ts)
	if err != nil {
		return Point{}, failTransform("omerc inverse: " + err.Error())
	}
	lon := adjustLon(p.Long0 - math.Atan2(sp*math.Cos(o.gama)-vp*math.Sin(o.gama), math.Cos(o.bl*us/o.al))/o.bl)
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}
