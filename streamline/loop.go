// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streamline

import (
	"math"

	"github.com/tkeatkaew/parallel-swp-bem-project/bem"
	"github.com/tkeatkaew/parallel-swp-bem-project/catchment"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
)

// maxHalvings bounds the boundary-crossing sub-step search: each
// halving roughly doubles the precision of the landing point, so 20
// halvings locate a crossing to about 1e-6 of the original step size.
const maxHalvings = 20

// Result is what Loop returns: the total arc length traversed and the
// field evaluation at the final point.
type Result struct {
	ArcLength float64
	Final     bem.FieldResult
}

// Loop traces a streamline from P for at most maxSteps iterations of
// size at most h, following direction through the potential field of
// c. If trace is non-nil, every visited point (including P) is
// appended to it. fv is scratch reused across every field evaluation.
//
// At each iteration the proposed displacement is tested against the
// catchment's zone membership; a step that would leave every zone is
// halved (up to maxHalvings times) so the accepted step lands just
// inside the boundary rather than jumping past it. The loop terminates
// when maxSteps is exhausted or a step still leaves every zone after
// the maximum number of halvings.
func Loop(P geom.Point, c *catchment.Catchment, direction Direction, maxSteps int, h float64, trace *[]geom.Point, fv *bem.FieldVectors) Result {
	arcLength := 0.0
	var last bem.FieldResult

	if trace != nil {
		*trace = append(*trace, P)
	}

	for n := 0; n < maxSteps; n++ {
		result := bem.CalculateInsideCatchment(c, P, fv)
		last = result
		if result.NewZone < 0 {
			break
		}

		dP := step(direction, result.Grad, result.SecGrad, h)
		if dP.X == 0 && dP.Y == 0 {
			break
		}

		candidate := geom.Point{X: P.X + dP.X, Y: P.Y + dP.Y}
		for i := 0; i < maxHalvings && catchment.CheckEachZone(c, candidate) < 0; i++ {
			dP.X, dP.Y = dP.X/2.0, dP.Y/2.0
			candidate = geom.Point{X: P.X + dP.X, Y: P.Y + dP.Y}
		}
		if catchment.CheckEachZone(c, candidate) < 0 {
			break
		}

		arcLength += math.Hypot(dP.X, dP.Y)
		P = candidate
		if trace != nil {
			*trace = append(*trace, P)
		}
	}

	return Result{ArcLength: arcLength, Final: last}
}
