// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustLon(t *testing.T) {
	assert.InDelta(t, 0.1, adjustLon(0.1), 1e-12)
	assert.InDelta(t, -math.Pi+0.1, adjustLon(math.Pi+0.1), 1e-9)
}

func TestAdjustLat(t *testing.T) {
	assert.InDelta(t, 0.2, adjustLat(0.2), 1e-12)
	assert.InDelta(t, halfPi+0.1-twoPi, adjustLat(halfPi+0.1), 1e-9)
	assert.InDelta(t, -halfPi-0.1+twoPi, adjustLat(-halfPi-0.1), 1e-9)
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, sign(4))
	assert.Equal(t, -1.0, sign(-4))
	assert.Equal(t, 1.0, sign(0))
}

func TestMlfnInvMlfnRoundTrip(t *testing.T) {
	es := 0.00669438002290
	en := enCoeffs(es)
	for _, phi := range []float64{-1.2, -0.5, 0, 0.3, 0.9, 1.3} {
		ml := mlfn(en, phi, math.Sin(phi), math.Cos(phi))
		got, err := invMlfn(ml, es, en)
		require.NoError(t, err)
		assert.InDelta(t, phi, got, 1e-9)
	}
}

func TestPhi2zRoundTrip(t *testing.T) {
	e := math.Sqrt(0.00669438002290)
	for _, phi := range []float64{-1.2, -0.5, 0.3, 0.9, 1.3} {
		ts := tsfnz(e, phi, math.Sin(phi))
		got, err := phi2z(e, ts)
		require.NoError(t, err)
		assert.InDelta(t, phi, got, 1e-9)
	}
}

func TestQsfnzSphereIdentity(t *testing.T) {
	// With e=0 qsfnz degenerates to 2*sinphi (Snyder eq. 3-12 at e=0).
	for _, phi := range []float64{-1, -0.2, 0.4, 1.1} {
		assert.InDelta(t, 2*math.Sin(phi), qsfnz(0, math.Sin(phi)), 1e-9)
	}
}

func TestAuthsetAuthlatRoundTrip(t *testing.T) {
	es := 0.00669438002290
	apa := authset(es)
	e := math.Sqrt(es)
	qp := qsfnz(e, 1)
	for _, phi := range []float64{-1.0, -0.3, 0.2, 0.8, 1.2} {
		beta := math.Asin(qsfnz(e, math.Sin(phi)) / qp)
		lat := authlat(beta, apa)
		assert.InDelta(t, phi, lat, 1e-9)
	}
}

func TestHyperbolicIdentities(t *testing.T) {
	for _, x := range []float64{-2, -0.5, 0, 0.5, 2} {
		assert.InDelta(t, cosh(x)*cosh(x)-sinh(x)*sinh(x), 1, 1e-9)
		assert.InDelta(t, tanh(x), sinh(x)/cosh(x), 1e-9)
	}
}
