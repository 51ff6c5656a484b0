// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"github.com/tkeatkaew/parallel-swp-bem-project/catchment"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/pathmodel"
)

// FieldResult is what CalculateInsideCatchment returns: the field
// triple at P (zero if P lies outside every zone), plus NewZone — the
// index of the zone P falls in, or -1 when P is outside the catchment.
type FieldResult struct {
	Voltage float64
	Grad    geom.Point
	SecGrad geom.Tensor2
	NewZone int
}

// CalculateInsideCatchment finds which zone P falls in, resolves (or
// reuses) that zone's boundary vectors, and evaluates the field at P.
// A zone's bvv/bcv are solved by the first query that lands in it and
// kept on its Boundary.Bvv/Bcv; every later query in that zone reuses
// them, whichever zone the query before it visited. c.PreviousZone is
// set to the zone of each in-catchment query. A point outside every
// zone returns a zero result and leaves both untouched.
func CalculateInsideCatchment(c *catchment.Catchment, P geom.Point, fv *FieldVectors) FieldResult {
	thisZone := catchment.CheckEachZone(c, P)
	if thisZone < 0 {
		return FieldResult{NewZone: -1}
	}
	b := c.Zones[thisZone]
	result := evaluateInZone(b, P, fv, thisZone)
	c.PreviousZone = thisZone
	return result
}

// evaluateInZone scopes the internal reverse-orientation convention
// around the solve and field evaluation, as vcalc.1.c's
// calculate_in_same_zone/calculate_in_new_zone both do, then restores
// the zone's natural orientation before returning.
func evaluateInZone(b *pathmodel.Boundary, P geom.Point, fv *FieldVectors, zone int) FieldResult {
	b.ReverseZone()
	defer b.ReverseZone()
	bvv, bcv := MakeBoundaryVector(b)
	return FieldResult{
		Voltage: Voltage(b, bvv, bcv, P, fv),
		Grad:    Grad(b, bvv, bcv, P, fv),
		SecGrad: SecGrad(b, bvv, bcv, P, fv),
		NewZone: zone,
	}
}
