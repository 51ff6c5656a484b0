// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/tkeatkaew/parallel-swp-bem-project/geom"

// term is the scalar off-segment kernel signature shared by V/W/J/K/L/M.
type term func(x, y1, y2 float64) float64

const (
	gradStep = 1e-6
	hessStep = 1e-4
)

// gradient returns the local-frame gradient (d/dx, d/dy) of f at the
// field point implied by (x,y1,y2), evaluated by central differences.
// Moving the field point by +h along y is equivalent to shifting both
// y1 and y2 by -h, and moving it by +h along x shifts x by -h, since
// x/y1/y2 are segment positions relative to the field point.
func gradient(f term, x, y1, y2 float64) geom.Point {
	h := gradStep
	dx := (f(x-h, y1, y2) - f(x+h, y1, y2)) / (2 * h)
	dy := (f(x, y1-h, y2-h) - f(x, y1+h, y2+h)) / (2 * h)
	return geom.Point{X: dx, Y: dy}
}

// hessian returns the local-frame second derivative of f at the field
// point implied by (x,y1,y2), evaluated by central differences.
func hessian(f term, x, y1, y2 float64) geom.Tensor2 {
	h := hessStep
	f0 := f(x, y1, y2)
	fxx := (f(x+h, y1, y2) - 2*f0 + f(x-h, y1, y2)) / (h * h)
	fyy := (f(x, y1-h, y2-h) - 2*f0 + f(x, y1+h, y2+h)) / (h * h)
	fxy := ((f(x-h, y1-h, y2-h) - f(x-h, y1+h, y2+h)) -
		(f(x+h, y1-h, y2-h) - f(x+h, y1+h, y2+h))) / (4 * h * h)
	return geom.Tensor2{A00: fxx, A01: fxy, A10: fxy, A11: fyy}
}

// V1, W1, J1, K1, L1, M1 are the local-frame gradients of the
// corresponding off-segment scalar terms, taken with respect to the
// field point. Callers rotate the result to the global frame via
// geom.RotateToPQ.
func V1(x, y1, y2 float64) geom.Point { return gradient(VtermPoffS, x, y1, y2) }
func W1(x, y1, y2 float64) geom.Point { return gradient(WtermPoffS, x, y1, y2) }
func J1(x, y1, y2 float64) geom.Point { return gradient(JtermPoffS, x, y1, y2) }
func K1(x, y1, y2 float64) geom.Point { return gradient(KtermPoffS, x, y1, y2) }
func L1(x, y1, y2 float64) geom.Point { return gradient(LtermPoffS, x, y1, y2) }
func M1(x, y1, y2 float64) geom.Point { return gradient(MtermPoffS, x, y1, y2) }

// V2, W2, J2, K2, L2, M2 are the local-frame Hessians of the
// corresponding off-segment scalar terms. Callers rotate the result to
// the global frame via geom.DoubleRotateToPQ.
func V2(x, y1, y2 float64) geom.Tensor2 { return hessian(VtermPoffS, x, y1, y2) }
func W2(x, y1, y2 float64) geom.Tensor2 { return hessian(WtermPoffS, x, y1, y2) }
func J2(x, y1, y2 float64) geom.Tensor2 { return hessian(JtermPoffS, x, y1, y2) }
func K2(x, y1, y2 float64) geom.Tensor2 { return hessian(KtermPoffS, x, y1, y2) }
func L2(x, y1, y2 float64) geom.Tensor2 { return hessian(LtermPoffS, x, y1, y2) }
func M2(x, y1, y2 float64) geom.Tensor2 { return hessian(MtermPoffS, x, y1, y2) }
