// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package streamline

import (
	"math"

	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
)

// Direction selects which way the integrator follows the field.
type Direction int

const (
	Descend Direction = -1
	Ascend  Direction = 1
)

// step proposes a displacement of magnitude at most h from a point
// where the field evaluates to (gradV, secGrad): a first-order step of
// length h along ±∇V (sign per direction), corrected to second order
// by solving t·(∇V·u) + ½t²·(uᵀ∇²V·u) = 0 for the non-trivial root t
// along the unit ascent/descent ray u — the curvature-following
// adjustment spec §4.8 names without fixing its coefficients (see
// DESIGN.md's Open Question resolution). When no root lands in (0,h],
// the plain first-order step is used.
func step(direction Direction, gradV geom.Point, secGrad geom.Tensor2, h float64) geom.Point {
	norm := math.Hypot(gradV.X, gradV.Y)
	if norm < eps {
		return geom.Point{}
	}
	sign := float64(direction)
	u := geom.Point{X: sign * gradV.X / norm, Y: sign * gradV.Y / norm}

	gradDotU := gradV.X*u.X + gradV.Y*u.Y
	curvature := u.X*(secGrad.A00*u.X+secGrad.A01*u.Y) + u.Y*(secGrad.A10*u.X+secGrad.A11*u.Y)

	t := h
	for _, root := range Quadratic(0.5*curvature, gradDotU, 0) {
		if root > eps && root <= h {
			t = root
			break
		}
	}
	return geom.Point{X: t * u.X, Y: t * u.Y}
}
