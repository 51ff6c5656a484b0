// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import "github.com/tkeatkaew/parallel-swp-bem-project/geom"

// P2C2Basis maps a (V,W) polynomial-basis pair to Chebyshev basis.
func P2C2Basis(v, w float64) (a0, a1 float64) {
	return w, 4.0 * v
}

// P2C4Basis maps a (J,K,L,M) polynomial-basis quadruple to Chebyshev basis.
func P2C4Basis(j, k, l, m float64) (a0, a1, a2, a3 float64) {
	return m, 4.0 * l, 16.0*k - m, 64.0*j - 8.0*l
}

// P2C2Coeff maps a raw (value-difference, value-average) pair at a
// boundary node to Chebyshev coefficients for the boundary voltage
// vector — the inverse scaling of P2C2Basis (v/4 instead of 4*v), used
// when building bvv directly from node potentials rather than from a
// kernel evaluation.
func P2C2Coeff(v, w float64) (a0, a1 float64) {
	return w, v / 4.0
}

// P2C4Coeff is the analogous coefficient-space mapping for a 4-term
// current quantity.
func P2C4Coeff(j, k, l, m float64) (a0, a1, a2, a3 float64) {
	return m + k/16.0, l/4.0 + j/32.0, k / 16.0, j / 64.0
}

// P2C2BasisCo is the 2-vector-valued form of P2C2Basis.
func P2C2BasisCo(v, w geom.Point) (a0, a1 geom.Point) {
	return w, geom.Point{X: 4.0 * v.X, Y: 4.0 * v.Y}
}

// P2C4BasisCo is the 2-vector-valued form of P2C4Basis.
func P2C4BasisCo(j, k, l, m geom.Point) (a0, a1, a2, a3 geom.Point) {
	a0 = m
	a1 = geom.Point{X: 4.0 * l.X, Y: 4.0 * l.Y}
	a2 = geom.Point{X: 16.0*k.X - m.X, Y: 16.0*k.Y - m.Y}
	a3 = geom.Point{X: 64.0*j.X - 8.0*l.X, Y: 64.0*j.Y - 8.0*l.Y}
	return
}

// P2C2BasisTen is the 2-tensor-valued form of P2C2Basis.
func P2C2BasisTen(v, w geom.Tensor2) (a0, a1 geom.Tensor2) {
	a0 = w
	a1 = geom.Tensor2{A00: 4 * v.A00, A01: 4 * v.A01, A10: 4 * v.A10, A11: 4 * v.A11}
	return
}

// P2C4BasisTen is the 2-tensor-valued form of P2C4Basis.
func P2C4BasisTen(j, k, l, m geom.Tensor2) (a0, a1, a2, a3 geom.Tensor2) {
	a0 = m
	a1 = geom.Tensor2{A00: 4 * l.A00, A01: 4 * l.A01, A10: 4 * l.A10, A11: 4 * l.A11}
	a2 = geom.Tensor2{
		A00: 16*k.A00 - m.A00, A01: 16*k.A01 - m.A01,
		A10: 16*k.A10 - m.A10, A11: 16*k.A11 - m.A11,
	}
	a3 = geom.Tensor2{
		A00: 64*j.A00 - 8*l.A00, A01: 64*j.A01 - 8*l.A01,
		A10: 64*j.A10 - 8*l.A10, A11: 64*j.A11 - 8*l.A11,
	}
	return
}
