// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// utm reduces to tmerc with the zone-derived central meridian and the
// false easting/northing/scale factor fixed by the UTM convention:
// k0=0.9996, x0=500000, y0=0 (10000000 south of the equator).
func init() {
	registerProjection([]string{"utm"}, func(p *Params) (Projection, error) {
		zone := p.Zone
		if zone == 0 {
			zone = int(math.Floor((p.Long0*r2d+180)/6)) + 1
		}
		if zone < 1 || zone > 60 {
			return nil, defErr("utm: zone out of range")
		}
		p.Long0 = (float64(zone)-0.5)*6*d2r - math.Pi
		p.Lat0 = 0
		p.K0 = 0.9996
		p.X0 = 500000
		if p.South {
			p.Y0 = 10000000
		} else {
			p.Y0 = 0
		}

		en := enCoeffs(p.Es)
		t := &tmerc{p: p, en: en}
		t.ml0 = mlfn(en, p.Lat0, math.Sin(p.Lat0), math.Cos(p.Lat0))
		return t, nil
	})
}
