// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kernel implements the closed-form segment integrals (V, W, J, K,
// L, M terms) of the 2-D Laplace single-layer potential and its normal
// derivative over a straight boundary segment, plus the polynomial-to-
// Chebyshev basis change applied uniformly to every term. Each term has
// an off-segment branch (general x != 0, using atan3 and log) and an
// on-segment branch (the x -> 0 limit, guarding the y == 0 endpoint
// singularity that the general form hits as 0*(-Inf)).
package kernel

import (
	"math"

	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
)

const twoPi = 2.0 * math.Pi

// VtermPoffS is the zeroth-moment (constant-density) potential integral
// of ln(r) over a segment spanning [y1,y2] on the local y-axis, seen
// from a field point at perpendicular offset x.
func VtermPoffS(x, y1, y2 float64) float64 {
	r1sq := x*x + y1*y1
	r2sq := x*x + y2*y2
	return (x*geom.Atan3(y2, y1, x) + 0.5*(y2*math.Log(r2sq)-y1*math.Log(r1sq)) - (y2 - y1)) / twoPi
}

// WtermPoffS is the first-moment (linear-density) potential integral.
func WtermPoffS(x, y1, y2 float64) float64 {
	r1sq := x*x + y1*y1
	r2sq := x*x + y2*y2
	return (0.25*(r2sq*math.Log(r2sq)-r1sq*math.Log(r1sq)) - 0.25*(y2*y2-y1*y1)) / twoPi
}

// JtermPoffS is the third-moment (cubic-density) current integral, the
// zeroth through third moments of x/(x^2+y^2) giving M,L,K,J respectively.
func JtermPoffS(x, y1, y2 float64) float64 {
	lnDiff := math.Log(x*x+y2*y2) - math.Log(x*x+y1*y1)
	return (x * ((y2*y2-y1*y1)/2.0 - (x*x/2.0)*lnDiff)) / twoPi
}

// KtermPoffS is the second-moment current integral.
func KtermPoffS(x, y1, y2 float64) float64 {
	return (x*(y2-y1) - x*x*geom.Atan3(y2, y1, x)) / twoPi
}

// LtermPoffS is the first-moment current integral.
func LtermPoffS(x, y1, y2 float64) float64 {
	lnDiff := math.Log(x*x+y2*y2) - math.Log(x*x+y1*y1)
	return (0.5 * x * lnDiff) / twoPi
}

// MtermPoffS is the zeroth-moment current integral: the fraction of a
// full turn subtended by the segment as seen from the field point.
func MtermPoffS(x, y1, y2 float64) float64 {
	return geom.Atan3(y2, y1, x) / twoPi
}

// yLogYsq returns y*log(y^2), continuously extended to 0 at y=0 (the
// naive expression hits 0*(-Inf) there).
func yLogYsq(y float64) float64 {
	if y == 0 {
		return 0
	}
	return y * math.Log(y*y)
}

// ySqLogYsq returns y^2*log(y^2), continuously extended to 0 at y=0.
func ySqLogYsq(y float64) float64 {
	if y == 0 {
		return 0
	}
	ysq := y * y
	return ysq * math.Log(ysq)
}

// VtermPonS is VtermPoffS at x=0, with the y=0 endpoint singularity
// removed by its continuous extension.
func VtermPonS(y1, y2 float64) float64 {
	return (0.5*(yLogYsq(y2)-yLogYsq(y1)) - (y2 - y1)) / twoPi
}

// WtermPonS is WtermPoffS at x=0.
func WtermPonS(y1, y2 float64) float64 {
	return (0.25*(ySqLogYsq(y2)-ySqLogYsq(y1)) - 0.25*(y2*y2-y1*y1)) / twoPi
}

// JtermPonS, KtermPonS, LtermPonS vanish at x=0: every off-segment term
// above carries at least one explicit factor of x.
func JtermPonS(y1, y2 float64) float64 { return 0 }
func KtermPonS(y1, y2 float64) float64 { return 0 }
func LtermPonS(y1, y2 float64) float64 { return 0 }

// MtermPonS is the self-segment jump: atan3 tends to +pi as x->0 from a
// field point strictly between y1<0<y2, giving the standard one-half
// jump of a smooth boundary point.
func MtermPonS(y1, y2 float64) float64 {
	return 0.5
}
