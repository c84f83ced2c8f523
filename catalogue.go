// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

// Projection is the uniform contract every method in the catalogue
// exposes: init runs once at bind time, Forward/Inverse run per point. A
// transform may fail with a *TransformFailure distinct from completing
// with a finite result; it never panics and never mutates the caller's
// point on failure.
type Projection interface {
	Forward(pt Point) (Point, error)
	Inverse(pt Point) (Point, error)
}

// projectionFactory builds a bound Projection from a parameter record
// whose generic fields (Lat0, Long0, X0, Y0, K0, ellipsoid, ...) are
// already resolved; the factory computes the projection's own derived
// scratch cell and returns an error for any parameter combination the
// method cannot handle (e.g. lcc's two parallels summing to zero).
type projectionFactory func(p *Params) (Projection, error)

// projectionFactories is the process-wide catalogue, populated at
// package-init time the way ctessum/geom/proj's registerTrans builds its
// dispatch table, as an explicit map so BindProjection needs no type
// switch.
var projectionFactories = map[string]projectionFactory{}

func registerProjection(names []string, f projectionFactory) {
	for _, n := range names {
		projectionFactories[n] = f
	}
}
