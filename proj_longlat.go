// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "math"

// LongLat is the identity/geographic passthrough: forward and inverse
// are structural passes, since the transform pipeline already handles
// the D2R/R2D scaling for CRSes whose proj name is "longlat". Binding a
// Projection here keeps BindProjection total
// even for geographic CRSes that callers construct directly (e.g. via
// Parse("+proj=longlat ...")) without going through the pipeline.
type longLatProjection struct {
	p *Params
}

func init() {
	registerProjection([]string{"longlat"}, func(p *Params) (Projection, error) {
		return &longLatProjection{p: p}, nil
	})
}

func (ll *longLatProjection) Forward(pt Point) (Point, error) {
	if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
		return nanPoint(pt.Z, pt.M), nil
	}
	return pt, nil
}

func (ll *longLatProjection) Inverse(pt Point) (Point, error) {
	if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
		return nanPoint(pt.Z, pt.M), nil
	}
	return pt, nil
}
