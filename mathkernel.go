// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// Shared ellipsoidal and series helpers reused by every projection in the
// catalogue. These are pure functions over doubles: no state, no
// allocation, safe to call concurrently from any number of goroutines.

const (
	sPi     float64 = 3.14159265359
	twoPi   float64 = math.Pi * 2
	halfPi  float64 = math.Pi / 2
	fortPi  float64 = math.Pi / 4
	d2r     float64 = math.Pi / 180
	r2d     float64 = 180 / math.Pi
	epsln   float64 = 1.0e-10
	secToRad float64 = 4.84813681109535993589914102357e-6
)

// adjustLon brings lam into (-pi, pi], matching proj4's adjlon: the extra
// epsilon above math.Pi keeps antimeridian points from flipping sign on FP
// drift (sPi is pi rounded to 11 digits, so sPi > math.Pi by a hair).
func adjustLon(lam float64) float64 {
	if math.Abs(lam) <= sPi {
		return lam
	}
	lam += math.Pi
	lam -= twoPi * math.Floor(lam/twoPi)
	lam -= math.Pi
	return lam
}

// adjustLat wraps phi by a full turn when it has drifted past a pole,
// matching proj4's adjlat.
func adjustLat(phi float64) float64 {
	if math.Abs(phi) < halfPi {
		return phi
	}
	return phi - sign(phi)*twoPi
}

func sign(x float64) float64 {
	if math.Signbit(x) {
		return -1
	}
	return 1
}

// asinz clamps x to [-1, 1] before calling math.Asin, guarding against
// values that drift a hair outside the domain from FP rounding.
func asinz(x float64) float64 {
	if math.Abs(x) > 1 {
		if x > 1 {
			x = 1
		} else {
			x = -1
		}
	}
	return math.Asin(x)
}

// msfnz is the ellipsoidal radius of the parallel scaled by cos(phi):
// msfnz(e, sinphi, cosphi) = cosphi / sqrt(1 - e^2 sin^2(phi)).
func msfnz(e, sinphi, cosphi float64) float64 {
	con := e * sinphi
	return cosphi / math.Sqrt(1-con*con)
}

// tsfnz is the conformal-latitude auxiliary used by Mercator/LCC/stere/etc.
func tsfnz(e, phi, sinphi float64) float64 {
	sinphi *= e
	con := 0.5 * e
	ts := math.Tan(0.5*(halfPi-phi)) / math.Pow((1-sinphi)/(1+sinphi), con)
	return ts
}

// phi2z solves tsfnz's inverse for latitude by bounded Newton iteration,
// returning a non-finite value and an error on non-convergence (15
// iterations, |delta phi| <= 1e-10).
func phi2z(e, ts float64) (float64, error) {
	eccnth := 0.5 * e
	phi := halfPi - 2*math.Atan(ts)
	for i := 0; i < 15; i++ {
		con := e * math.Sin(phi)
		dphi := halfPi - 2*math.Atan(ts*math.Pow((1-con)/(1+con), eccnth)) - phi
		phi += dphi
		if math.Abs(dphi) <= 0.0000000001 {
			return phi, nil
		}
	}
	return math.NaN(), errNoConvergence
}

// enCoeffs computes the 5-term meridional-distance series from es, used by
// mlfn/invMlfn.
func enCoeffs(es float64) [5]float64 {
	var en [5]float64
	en[0] = 1 - es*(1.0/4.0+es*(3.0/64.0+es*(5.0/256.0+es*175.0/16384.0)))
	en[1] = es * (3.0/4.0 - es*(3.0/64.0+es*(5.0/256.0+es*175.0/16384.0)))
	en[2] = es * es * (15.0/32.0 - es*(5.0/384.0+es*175.0/24576.0))
	en[3] = es * es * es * (35.0/96.0 - es*35.0/6144.0)
	en[4] = es * es * es * es * (315.0 / 1024.0)
	return en
}

// mlfn evaluates meridional distance (scaled by 1/a) at latitude phi using
// the series en, following the classic proj4 5-term expansion.
func mlfn(en [5]float64, phi, sphi, cphi float64) float64 {
	cphi *= sphi
	sphi *= sphi
	return en[0]*phi - cphi*(en[1]+sphi*(en[2]+sphi*(en[3]+sphi*en[4])))
}

// invMlfn inverts mlfn by bounded Newton iteration; returns the last
// estimate and a non-convergence error if it never settles.
func invMlfn(arg float64, es float64, en [5]float64) (float64, error) {
	const maxIter = 10
	k := 1 / (1 - es)
	phi := arg
	for i := maxIter; i > 0; i-- {
		sphi := math.Sin(phi)
		t := 1 - es*sphi*sphi
		t = (mlfn(en, phi, sphi, math.Cos(phi)) - arg) * (t * math.Sqrt(t)) * k
		phi -= t
		if math.Abs(t) < epsln {
			return phi, nil
		}
	}
	return phi, errNoConvergence
}

// qsfnz is the authalic-latitude auxiliary used by equal-area projections
// (Albers, LAEA).
func qsfnz(e, sinphi float64) float64 {
	if e >= 1.0e-7 {
		con := e * sinphi
		return (1 - e*e) * (sinphi/(1-con*con) - (0.5/e)*math.Log((1-con)/(1+con)))
	}
	return 2 * sinphi
}

// authset computes the authalic-latitude series coefficients from es, used
// by authlat (and, downstream, the LAEA "apa" scratch cell).
func authset(es float64) [3]float64 {
	var apa [3]float64
	t := es
	apa[0] = 0.3333333333333333 * t
	t *= es
	apa[0] += 0.17222222222222222 * t
	apa[1] = t * 0.06388888888888888
	t *= es
	apa[0] += 0.10257936507936508 * t
	apa[1] += t * 0.0664021164021164
	apa[2] = t * 0.016415012942191543
	return apa
}

// authlat converts a geodetic latitude's corresponding authalic-latitude
// beta back into a genuine authalic latitude via the apa series.
func authlat(beta float64, apa [3]float64) float64 {
	t := beta + beta
	return beta + apa[0]*math.Sin(t) + apa[1]*math.Sin(t+t) + apa[2]*math.Sin(t+t+t)
}

// Hyperbolic helpers; tmerc's spherical inverse uses sinh and cosh.
func sinh(x float64) float64 {
	return (math.Exp(x) - math.Exp(-x)) / 2
}

func cosh(x float64) float64 {
	return (math.Exp(x) + math.Exp(-x)) / 2
}

func tanh(x float64) float64 {
	return sinh(x) / cosh(x)
}

func asinhy(x float64) float64 {
	s := x
	if x < 0 {
		s = -1
	} else if x == 0 {
		return x
	} else {
		s = 1
	}
	return s * math.Log(math.Abs(x)+math.Sqrt(x*x+1))
}

func gatg(pp []float64, b float64) float64 {
	cos2b := 2 * math.Cos(2*b)
	i := len(pp) - 1
	h1 := pp[i]
	h2 := 0.0
	for i > 0 {
		i--
		h := -h2 + cos2b*h1 + pp[i]
		h2 = h1
		h1 = h
	}
	return b + h1*math.Sin(2*b)
}

func clens(pp []float64, argR float64) float64 {
	r := 2 * math.Cos(argR)
	i := len(pp) - 1
	hr1 := pp[i]
	hr := 0.0
	for i > 0 {
		i--
		hr2 := hr1
		hr1 = hr
		hr = -hr2 + r*hr1 + pp[i]
	}
	return math.Sin(argR) * hr
}
