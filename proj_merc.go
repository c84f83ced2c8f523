// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// merc is the Mercator family: spherical for Web Mercator (forced by
// BindProjection when the CRS title names EPSG:3857/Pseudo-Mercator),
// ellipsoidal otherwise, taking k0/lat_ts into account the way proj4js's
// merc.js does.
type merc struct {
	p *Params
}

func init() {
	registerProjection([]string{"merc"}, func(p *Params) (Projection, error) {
		if math.Abs(p.Lat0) > epsln {
			return nil, defErr("merc: lat0 must be 0")
		}
		if p.LatTS != 0 {
			if p.Sphere {
				p.K0 = math.Cos(p.LatTS)
			} else {
				p.K0 = msfnz(p.E, math.Sin(p.LatTS), math.Cos(p.LatTS))
			}
		}
		return &merc{p: p}, nil
	})
}

func (m *merc) Forward(pt Point) (Point, error) {
	p := m.p
	lon, lat := pt.X, pt.Y
	if math.Abs(math.Abs(lat)-halfPi) <= epsln {
		return Point{}, failTransform("mercator: latitude at pole")
	}
	dlon := adjustLon(lon - p.Long0)
	var x, y float64
	if p.Sphere {
		x = p.X0 + p.A*p.K0*dlon
		y = p.Y0 + p.A*p.K0*math.Log(math.Tan(fortPi+0.5*lat))
	} else {
		ts := tsfnz(p.E, lat, math.Sin(lat))
		x = p.X0 + p.A*p.K0*dlon
		y = p.Y0 - p.A*p.K0*math.Log(ts)
	}
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (m *merc) Inverse(pt Point) (Point, error) {
	p := m.p
	x := (pt.X - p.X0) / (p.A * p.K0)
	var lat, lon float64
	lon = adjustLon(x + p.Long0)
	if p.Sphere {
		lat = halfPi - 2*math.Atan(math.Exp(-(pt.Y-p.Y0)/(p.A*p.K0)))
	} else {
		ts := math.Exp(-(pt.Y - p.Y0) / (p.A * p.K0))
		var err error
		lat, err = phi2z(p.E, ts)
		if err != nil {
			return Point{}, failTransform("mercator inverse: " + err.Error())
		}
	}
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}
