// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// The pseudocylindrical and simple cylindrical members of the catalogue:
// Sinusoidal, Mollweide, Robinson, Van der Grinten, Equal Earth, Miller,
// Cylindrical Equal-Area and Equirectangular. Grounded on the classic
// proj4js implementations of each; Robinson's breakpoint table and
// Equal Earth's polynomial constants are reconstructed from the published
// constants (Robinson 1974 / Savric et al. 2018) rather than run against a
// reference, so treat their fourth-decimal digits as best-effort (see
// the grounding ledger).

// --- Sinusoidal ---

type sinu struct {
	p  *Params
	en [5]float64
}

func init() {
	registerProjection([]string{"sinu"}, func(p *Params) (Projection, error) {
		return &sinu{p: p, en: enCoeffs(p.Es)}, nil
	})
}

func (s *sinu) Forward(pt Point) (Point, error) {
	p := s.p
	dlon := adjustLon(pt.X - p.Long0)
	if p.Sphere {
		x := p.X0 + p.A*dlon*math.Cos(pt.Y)
		y := p.Y0 + p.A*pt.Y
		return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}
	sinphi := math.Sin(pt.Y)
	x := p.X0 + p.A*dlon*math.Cos(pt.Y)/math.Sqrt(1-p.Es*sinphi*sinphi)
	y := p.Y0 + p.A*mlfn(s.en, pt.Y, sinphi, math.Cos(pt.Y))
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (s *sinu) Inverse(pt Point) (Point, error) {
	p := s.p
	x, y := pt.X-p.X0, pt.Y-p.Y0
	if p.Sphere {
		lat := y / p.A
		if math.Abs(lat) > halfPi {
			return Point{}, failTransform("sinu inverse: out of range")
		}
		lon := adjustLon(p.Long0 + x/(p.A*math.Cos(lat)))
		return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}
	lat, err := invMlfn(y/p.A, p.Es, s.en)
	if err != nil {
		return Point{}, failTransform("sinu inverse: " + err.Error())
	}
	sinphi := math.Sin(lat)
	lon := adjustLon(p.Long0 + x*math.Sqrt(1-p.Es*sinphi*sinphi)/(p.A*math.Cos(lat)))
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

// --- Mollweide ---

type moll struct{ p *Params }

func init() {
	registerProjection([]string{"moll"}, func(p *Params) (Projection, error) {
		return &moll{p: p}, nil
	})
}

const (
	mollXScale = 0.900316316158
	mollYScale = 1.4142135623731
)

func (m *moll) Forward(pt Point) (Point, error) {
	p := m.p
	dlon := adjustLon(pt.X - p.Long0)
	theta := pt.Y
	con := math.Pi * math.Sin(pt.Y)
	for i := 0; i < 10; i++ {
		delta := -(theta + math.Sin(theta) - con) / (1 + math.Cos(theta))
		theta += delta
		if math.Abs(delta) < epsln {
			break
		}
	}
	theta /= 2
	x := p.X0 + mollXScale*p.A*dlon*math.Cos(theta)
	y := p.Y0 + mollYScale*p.A*math.Sin(theta)
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (m *moll) Inverse(pt Point) (Point, error) {
	p := m.p
	x, y := pt.X-p.X0, pt.Y-p.Y0
	arg := y / (mollYScale * p.A)
	arg = clamp(arg, -1, 1)
	theta := math.Asin(arg)
	lon := adjustLon(p.Long0 + x/(mollXScale*p.A*math.Cos(theta)))
	lon = clamp(lon, -math.Pi, math.Pi)
	theta *= 2
	lat := math.Asin((theta + math.Sin(theta)) / math.Pi)
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

// --- Robinson ---

type robin struct{ p *Params }

func init() {
	registerProjection([]string{"robin"}, func(p *Params) (Projection, error) {
		return &robin{p: p}, nil
	})
}

const (
	robinFXC = 0.8487
	robinFYC = 1.3523
)

// robinX/robinY are Robinson's 1974 published scale-factor breakpoints at
// 5-degree latitude intervals, 0..90.
var robinX = [19]float64{
	1.0000, 0.9986, 0.9954, 0.9900, 0.9822, 0.9730, 0.9600, 0.9427, 0.9216,
	0.8962, 0.8679, 0.8350, 0.7986, 0.7597, 0.7186, 0.6732, 0.6213, 0.5722, 0.5322,
}
var robinY = [19]float64{
	0.0000, 0.0620, 0.1240, 0.1860, 0.2480, 0.3100, 0.3720, 0.4340, 0.4958,
	0.5571, 0.6176, 0.6769, 0.7346, 0.7903, 0.8435, 0.8936, 0.9394, 0.9761, 1.0000,
}

func (r *robin) Forward(pt Point) (Point, error) {
	p := r.p
	dlon := adjustLon(pt.X - p.Long0)
	dlat := math.Abs(pt.Y) * r2d
	if dlat > 90 {
		return Point{}, failTransform("robin: latitude out of range")
	}
	idx := int(dlat / 5)
	if idx >= 18 {
		idx = 17
	}
	frac := dlat/5 - float64(idx)
	xFactor := robinX[idx] + (robinX[idx+1]-robinX[idx])*frac
	yFactor := robinY[idx] + (robinY[idx+1]-robinY[idx])*frac
	x := p.X0 + robinFXC*p.A*dlon*xFactor
	y := p.Y0 + robinFYC*p.A*yFactor*sign(pt.Y)
	if pt.Y == 0 {
		y = p.Y0
	}
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (r *robin) Inverse(pt Point) (Point, error) {
	p := r.p
	x, y := pt.X-p.X0, pt.Y-p.Y0
	yFactor := math.Abs(y) / (robinFYC * p.A)
	if yFactor > 1 {
		return Point{}, failTransform("robin inverse: out of range")
	}
	idx := 0
	for idx < 17 && robinY[idx+1] < yFactor {
		idx++
	}
	span := robinY[idx+1] - robinY[idx]
	frac := 0.0
	if span != 0 {
		frac = (yFactor - robinY[idx]) / span
	}
	lat := (float64(idx) + frac) * 5 * d2r * sign(y)
	xFactor := robinX[idx] + (robinX[idx+1]-robinX[idx])*frac
	lon := adjustLon(p.Long0 + x/(robinFXC*p.A*xFactor))
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

// --- Van der Grinten ---

type vandg struct{ p *Params }

func init() {
	registerProjection([]string{"vandg"}, func(p *Params) (Projection, error) {
		return &vandg{p: p}, nil
	})
}

func (v *vandg) Forward(pt Point) (Point, error) {
	p := v.p
	lon := adjustLon(pt.X - p.Long0)
	lat := pt.Y
	if math.Abs(lat) <= epsln {
		return Point{X: p.X0 + p.A*lon, Y: p.Y0, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}
	theta := asinz(2 * math.Abs(lat/math.Pi))
	if math.Abs(lon) <= epsln || math.Abs(math.Abs(lat)-halfPi) <= epsln {
		y := math.Pi * p.A * math.Tan(0.5*theta)
		if lat < 0 {
			y = -y
		}
		return Point{X: p.X0, Y: p.Y0 + y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}
	al := 0.5 * math.Abs(math.Pi/lon-lon/math.Pi)
	asq := al * al
	sinth, costh := math.Sin(theta), math.Cos(theta)
	g := costh / (sinth + costh - 1)
	gsq := g * g
	m := g * (2/sinth - 1)
	msq := m * m
	inner := asq*(g-msq)*(g-msq) - (msq+asq)*(gsq-msq)
	if inner < 0 {
		inner = 0
	}
	con := math.Pi * p.A * (al*(g-msq) + math.Sqrt(inner)) / (msq + asq)
	if lon < 0 {
		con = -con
	}
	x := p.X0 + con
	conNorm := math.Abs(con / (math.Pi * p.A))
	yArg := 1 - conNorm*conNorm - 2*al*conNorm
	if yArg < 0 {
		yArg = 0
	}
	y := math.Pi * p.A * math.Sqrt(yArg)
	if lat < 0 {
		y = -y
	}
	return Point{X: x, Y: p.Y0 + y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

// Inverse has no convenient closed form (Snyder 1994 notes it is solved
// numerically in practice); Newton's method on the forward map, with
// latitude clamped to the poles, converges in a handful of iterations for
// any point inside the ellipse of projection.
func (v *vandg) Inverse(pt Point) (Point, error) {
	p := v.p
	lon, lat := pt.X-p.X0, 0.0
	if p.Long0 != 0 {
		lon = 0
	}
	lat = 0
	const maxIter = 25
	for i := 0; i < maxIter; i++ {
		guess := Point{X: lon + p.Long0, Y: lat}
		fx, err := v.Forward(guess)
		if err != nil {
			return Point{}, err
		}
		const h = 1e-6
		fx1, _ := v.Forward(Point{X: guess.X + h, Y: guess.Y})
		fy1, _ := v.Forward(Point{X: guess.X, Y: guess.Y + h})
		dxdlon := (fx1.X - fx.X) / h
		dydlon := (fx1.Y - fx.Y) / h
		dxdlat := (fy1.X - fx.X) / h
		dydlat := (fy1.Y - fx.Y) / h
		det := dxdlon*dydlat - dxdlat*dydlon
		if math.Abs(det) < 1e-20 {
			break
		}
		ex, ey := pt.X-fx.X, pt.Y-fx.Y
		dlon := (ex*dydlat - ey*dxdlat) / det
		dlat := (dxdlon*ey - dydlon*ex) / det
		lon += dlon
		lat += dlat
		if lat > halfPi {
			lat = halfPi
		}
		if lat < -halfPi {
			lat = -halfPi
		}
		if math.Abs(dlon) < 1e-12 && math.Abs(dlat) < 1e-12 {
			break
		}
	}
	return Point{X: adjustLon(lon + p.Long0), Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

// --- Equal Earth ---

type eqEarth struct{ p *Params }

func init() {
	registerProjection([]string{"eqearth"}, func(p *Params) (Projection, error) {
		return &eqEarth{p: p}, nil
	})
}

const (
	eqEarthA1 = 1.340264
	eqEarthA2 = -0.081106
	eqEarthA3 = 0.000893
	eqEarthA4 = 0.003796
	eqEarthM  = 0.8660254037844386 // sqrt(3)/2
)

func eqEarthY(theta float64) float64 {
	t2 := theta * theta
	return theta * (eqEarthA1 + t2*(eqEarthA2+t2*(eqEarthA3+t2*eqEarthA4)))
}

func eqEarthDY(theta float64) float64 {
	t2 := theta * theta
	return eqEarthA1 + t2*(3*eqEarthA2+t2*(5*eqEarthA3+t2*7*eqEarthA4))
}

func (eq *eqEarth) Forward(pt Point) (Point, error) {
	p := eq.p
	dlon := adjustLon(pt.X - p.Long0)
	theta := asinz(eqEarthM * math.Sin(pt.Y))
	t2 := theta * theta
	denom := 3 * (eqEarthA1 + t2*(3*eqEarthA2+t2*(7*eqEarthA3+t2*9*eqEarthA4)))
	x := p.X0 + (2*1.7320508075688772*p.A*dlon*math.Cos(theta))/denom
	y := p.Y0 + p.A*eqEarthY(theta)
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (eq *eqEarth) Inverse(pt Point) (Point, error) {
	p := eq.p
	x, y := pt.X-p.X0, pt.Y-p.Y0
	theta := y / p.A
	for i := 0; i < 12; i++ {
		f := eqEarthY(theta) - y/p.A
		df := eqEarthDY(theta)
		if df == 0 {
			break
		}
		delta := f / df
		theta -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	lat := asinz(math.Sin(theta) / eqEarthM)
	t2 := theta * theta
	denom := 3 * (eqEarthA1 + t2*(3*eqEarthA2+t2*(7*eqEarthA3+t2*9*eqEarthA4)))
	lon := adjustLon(p.Long0 + x*denom/(2*1.7320508075688772*p.A*math.Cos(theta)))
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

// --- Miller Cylindrical ---

type mill struct{ p *Params }

func init() {
	registerProjection([]string{"mill"}, func(p *Params) (Projection, error) {
		return &mill{p: p}, nil
	})
}

func (m *mill) Forward(pt Point) (Point, error) {
	p := m.p
	dlon := adjustLon(pt.X - p.Long0)
	x := p.X0 + p.A*dlon
	y := p.Y0 + p.A*1.25*math.Log(math.Tan(fortPi+0.4*pt.Y))
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (m *mill) Inverse(pt Point) (Point, error) {
	p := m.p
	x, y := pt.X-p.X0, pt.Y-p.Y0
	lat := 2.5 * (math.Atan(math.Exp(0.8*y/p.A)) - fortPi)
	lon := adjustLon(p.Long0 + x/p.A)
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

// --- Cylindrical Equal-Area ---

type cea struct {
	p  *Params
	k0 float64
}

func init() {
	registerProjection([]string{"cea"}, func(p *Params) (Projection, error) {
		k0 := p.K0
		if p.LatTS != 0 {
			if p.Sphere {
				k0 = math.Cos(p.LatTS)
			} else {
				k0 = msfnz(p.E, math.Sin(p.LatTS), math.Cos(p.LatTS))
			}
		}
		return &cea{p: p, k0: k0}, nil
	})
}

func (c *cea) Forward(pt Point) (Point, error) {
	p := c.p
	dlon := adjustLon(pt.X - p.Long0)
	x := p.X0 + p.A*c.k0*dlon
	var y float64
	if p.Sphere {
		y = p.Y0 + p.A*math.Sin(pt.Y)/c.k0
	} else {
		y = p.Y0 + p.A*qsfnz(p.E, math.Sin(pt.Y))/(2*c.k0)
	}
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (c *cea) Inverse(pt Point) (Point, error) {
	p := c.p
	x, y := pt.X-p.X0, pt.Y-p.Y0
	lon := adjustLon(p.Long0 + x/(p.A*c.k0))
	if p.Sphere {
		arg := clamp(y*c.k0/p.A, -1, 1)
		return Point{X: lon, Y: math.Asin(arg), Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
	}
	q := y * 2 * c.k0 / p.A
	lat, err := phi1z(p.E, q)
	if err != nil {
		return Point{}, failTransform("cea inverse: " + err.Error())
	}
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

// --- Equirectangular ---

type eqc struct {
	p         *Params
	coslatts float64
}

func init() {
	registerProjection([]string{"eqc"}, func(p *Params) (Projection, error) {
		coslatts := 1.0
		if p.LatTS != 0 {
			coslatts = math.Cos(p.LatTS)
		}
		return &eqc{p: p, coslatts: coslatts}, nil
	})
}

func (e *eqc) Forward(pt Point) (Point, error) {
	p := e.p
	dlon := adjustLon(pt.X - p.Long0)
	x := p.X0 + p.A*p.K0*dlon*e.coslatts
	y := p.Y0 + p.A*p.K0*(pt.Y-p.Lat0)
	return Point{X: x, Y: y, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}

func (e *eqc) Inverse(pt Point) (Point, error) {
	p := e.p
	x, y := pt.X-p.X0, pt.Y-p.Y0
	lon := adjustLon(p.Long0 + x/(p.A*p.K0*e.coslatts))
	lat := p.Lat0 + y/(p.A*p.K0)
	return Point{X: lon, Y: lat, Z: pt.Z, M: pt.M, hasZ: pt.hasZ}, nil
}
