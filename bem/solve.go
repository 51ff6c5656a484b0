// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bem

import (
	"github.com/tkeatkaew/parallel-swp-bem-project/kernel"
	"github.com/tkeatkaew/parallel-swp-bem-project/mat"
	"github.com/tkeatkaew/parallel-swp-bem-project/pathmodel"
)

// MakeBoundaryVoltageVector builds bvv (length 2N): per segment, the
// Chebyshev-coefficient pair derived from the node-potential difference
// and average across the segment's two endpoints. Note this uses
// P2C2Coeff, not P2C2Basis — the coefficient-space scaling is the
// inverse of the one used when assembling A/B from kernel evaluations.
func MakeBoundaryVoltageVector(b *pathmodel.Boundary) []float64 {
	n := b.NumPoints()
	bvv := make([]float64, 2*n)
	offset := 0
	for _, path := range b.Components {
		for seg := 0; seg < path.NumPoints(); seg++ {
			v1, v2 := path.Value(seg), path.Value(seg+1)
			V, W := v2-v1, (v2+v1)/2.0
			V, W = kernel.P2C2Coeff(V, W)
			bvv[2*(offset+seg)] = V
			bvv[2*(offset+seg)+1] = W
		}
		offset += path.NumPoints()
	}
	return bvv
}

// MakeBoundaryVector returns the memoized (bvv, bcv) pair for b,
// solving and caching on first call. Subsequent calls with unchanged
// boundary geometry return the cached vectors without resolving.
func MakeBoundaryVector(b *pathmodel.Boundary) (bvv, bcv []float64) {
	if b.Bvv != nil && b.Bcv != nil {
		return b.Bvv, b.Bcv
	}
	bvv = MakeBoundaryVoltageVector(b)
	bcv = makeBoundaryCurrentVector(b, bvv)
	b.Bvv, b.Bcv = bvv, bcv
	return
}

func isFinite(b *pathmodel.Boundary) bool {
	for _, level := range b.Level {
		if level == pathmodel.Outer {
			return true
		}
	}
	return false
}

func makeBoundaryCurrentVector(b *pathmodel.Boundary, bvv []float64) []float64 {
	if isFinite(b) {
		return makeBCVUseKCL(b, bvv)
	}
	return makeBCVNoKCL(b, bvv)
}

// makeBCVNoKCL solves the unconstrained least-squares current vector:
// J = (BtB)^-1 * Bt * (DA*V), with A/D/B each (5N x 2N or 4N).
func makeBCVNoKCL(b *pathmodel.Boundary, bvv []float64) []float64 {
	n := b.NumPoints()

	A := mat.NewMatrix(5*n, 2*n)
	D := mat.NewMatrix(5*n, 2*n)
	DA := mat.NewMatrix(5*n, 2*n)
	V := mat.Attach(2*n, 1, append([]float64(nil), bvv...))
	DAV := mat.NewMatrix(5*n, 1)

	MakeVoltageGeometryMatrix(b, A)
	MakeDiagonalMatrix(b, D)
	mat.Add(D, A, DA)
	mat.Multiply(DA, V, DAV)

	B := mat.NewMatrix(5*n, 4*n)
	MakeCurrentGeometryMatrix(b, B)
	BT := mat.Transposed(B)

	BTB := mat.NewMatrix(4*n, 4*n)
	mat.Multiply(BT, B, BTB)
	mat.Invert(BTB)

	BTDAV := mat.NewMatrix(4*n, 1)
	mat.Multiply(BT, DAV, BTDAV)

	J := mat.NewMatrix(4*n, 1)
	mat.Multiply(BTB, BTDAV, J)
	return J.Value
}

// makeBCVUseKCL is the finite-zone variant: A, D, B carry one extra row
// (5N+1) holding the KCL constraint, with DA's contribution to that row
// zeroed (it is not a geometry equation) and B's row filled with the
// KCL coefficients instead.
func makeBCVUseKCL(b *pathmodel.Boundary, bvv []float64) []float64 {
	n := b.NumPoints()

	A := mat.NewMatrix(5*n+1, 2*n)
	D := mat.NewMatrix(5*n+1, 2*n)
	DA := mat.NewMatrix(5*n+1, 2*n)
	V := mat.Attach(2*n, 1, append([]float64(nil), bvv...))
	DAV := mat.NewMatrix(5*n+1, 1)

	MakeVoltageGeometryMatrix(b, A)
	mat.ZeroLastRow(A)
	MakeDiagonalMatrix(b, D)
	mat.ZeroLastRow(D)
	mat.Add(D, A, DA)
	mat.Multiply(DA, V, DAV)

	B := mat.NewMatrix(5*n+1, 4*n)
	MakeCurrentGeometryMatrix(b, B)
	KCL := mat.NewMatrix(1, 4*n)
	MakeKCLGeometryVector(b, KCL)
	mat.FillLastRow(B, KCL)
	BT := mat.Transposed(B)

	BTB := mat.NewMatrix(4*n, 4*n)
	mat.Multiply(BT, B, BTB)
	mat.Invert(BTB)

	BTDAV := mat.NewMatrix(4*n, 1)
	mat.Multiply(BT, DAV, BTDAV)

	J := mat.NewMatrix(4*n, 1)
	mat.Multiply(BTB, BTDAV, J)
	return J.Value
}
