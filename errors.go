// Copyright 2015 Sam L'ecuyer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package projectron

import "errors"

// Three error kinds, matching the three propagation paths a caller must
// distinguish: a bad definition never produces a usable *Params, a
// transform failure surfaces as a distinguished no-result Point, and an
// I/O error belongs to the collaborator layer (here: grid loading) and is
// never raised from the pure compute path.

// DefinitionError reports a problem found while parsing or binding a CRS
// definition: unknown projection, missing ellipsoid, malformed PROJ/WKT,
// bad axis string, or an unresolvable EPSG short-code.
type DefinitionError struct {
	Reason string
	Err    error
}

func (e *DefinitionError) Error() string {
	if e.Err != nil {
		return "projectron: definition error: " + e.Reason + ": " + e.Err.Error()
	}
	return "projectron: definition error: " + e.Reason
}

func (e *DefinitionError) Unwrap() error { return e.Err }

func defErr(reason string) error { return &DefinitionError{Reason: reason} }
func defErrf(reason string, err error) error { return &DefinitionError{Reason: reason, Err: err} }

// TransformFailure reports a per-point numerical failure: pole
// singularity, Newton non-convergence, or a point outside a grid's
// coverage. It is a distinct outcome from a NaN input, which propagates
// to a NaN output without ever becoming an error.
type TransformFailure struct {
	Reason string
}

func (e *TransformFailure) Error() string { return "projectron: transform failed: " + e.Reason }

func failTransform(reason string) error { return &TransformFailure{Reason: reason} }

// IOError reports a failure at the collaborator boundary: a malformed
// on-disk or downloaded grid file. It is never raised from Transform,
// MakeConverter or Parse's pure compute paths; only grid loading returns
// it.
type IOError struct {
	Reason string
	Err    error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return "projectron: I/O error: " + e.Reason + ": " + e.Err.Error()
	}
	return "projectron: I/O error: " + e.Reason
}

func (e *IOError) Unwrap() error { return e.Err }

var (
	errUnsupportedProj = errors.New("projectron: unsupported projection")
	errUnknownDatum    = errors.New("projectron: unknown datum")
	errUnknownEllipse  = errors.New("projectron: unknown ellipsoid")
	errInvalidParam    = errors.New("projectron: invalid parameter")
	errNoConvergence   = errors.New("projectron: no convergence")
)
