// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

// Transform converts a point defined in the from CRS to its equivalent in
// the to CRS: axis normalize, unit/prime-meridian adjust to geographic
// radians, datum shift, re-project, axis normalize back. Grounded on
// ctessum/geom/proj's Transform method, generalized here with a real
// axis-order permute/flip step rather than leaving it a no-op.
func (e *Engine) Transform(from, to *Params, pt Point) (Point, error) {
	if pt.IsNaN() {
		return pt, nil
	}
	if equalShortCircuit(from, to) {
		return pt, nil
	}

	work := pt
	work = adjustAxis(from, work, false)

	geo, err := toGeographic(from, work)
	if err != nil {
		return Point{}, err
	}
	geo.X += from.FromGreenwich

	shifted, err := e.shiftDatum(from, to, geo)
	if err != nil {
		return Point{}, err
	}

	shifted.X -= to.FromGreenwich
	out, err := fromGeographic(to, shifted)
	if err != nil {
		return Point{}, err
	}

	out = adjustAxis(to, out, true)
	if !pt.hasZ {
		out.Z = 0
	}
	out.hasZ = pt.hasZ
	return out, nil
}

// toGeographic inverts from's projection (or simply scales by its
// geographic unit, for a longlat CRS) to reach radians.
func toGeographic(p *Params, pt Point) (Point, error) {
	if p.IsLongLat() {
		out := pt
		out.X = pt.X * d2r
		out.Y = pt.Y * d2r
		return out, nil
	}
	scaled := pt
	scaled.X /= p.ToMeter
	scaled.Y /= p.ToMeter
	geo, err := p.Inverse(scaled)
	if err != nil {
		return Point{}, err
	}
	geo.Z, geo.M, geo.hasZ = pt.Z, pt.M, pt.hasZ
	return geo, nil
}

// fromGeographic projects a geographic radian point (or scales it, for a
// longlat destination) into to's native representation.
func fromGeographic(p *Params, pt Point) (Point, error) {
	if p.IsLongLat() {
		out := pt
		out.X = pt.X * r2d
		out.Y = pt.Y * r2d
		return out, nil
	}
	proj, err := p.Forward(pt)
	if err != nil {
		return Point{}, err
	}
	proj.X *= p.ToMeter
	proj.Y *= p.ToMeter
	proj.Z, proj.M, proj.hasZ = pt.Z, pt.M, pt.hasZ
	return proj, nil
}

// adjustAxis permutes and sign-flips a point's coordinates to or from a
// CRS's native axis order (for non-default +axis, e.g. "neu" for a
// north/east-ordered projected CRS). toNative=false reads out of the
// CRS's order into the pipeline's internal east/north/up convention;
// toNative=true writes back into it.
func adjustAxis(p *Params, pt Point, toNative bool) Point {
	if p.Axis == "" || p.Axis == "enu" {
		return pt
	}
	src := [3]float64{pt.X, pt.Y, pt.Z}
	var dst [3]float64
	for i := 0; i < 3; i++ {
		c := p.Axis[i]
		mag, sign := axisMagnitude(c), axisSign(c)
		if toNative {
			dst[i] = src[mag] * sign
		} else {
			dst[mag] = src[i] * sign
		}
	}
	out := pt
	out.X, out.Y, out.Z = dst[0], dst[1], dst[2]
	return out
}

func axisMagnitude(c byte) int {
	switch c {
	case 'e', 'w':
		return 0
	case 'n', 's':
		return 1
	default:
		return 2
	}
}

func axisSign(c byte) float64 {
	switch c {
	case 'w', 's', 'd':
		return -1
	default:
		return 1
	}
}
