// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bem implements the boundary-element assembly, least-squares
// solve and field evaluation at the heart of the catchment model: the
// voltage/current/diagonal geometry matrices (A, D, B), the KCL
// constraint row, the boundary voltage/current vectors (bvv/bcv) and
// the Voltage/Grad/SecGrad point evaluators built from them.
package bem

import (
	"math"

	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/kernel"
	"github.com/tkeatkaew/parallel-swp-bem-project/mat"
	"github.com/tkeatkaew/parallel-swp-bem-project/pathmodel"
)

// sampleFractions are the five along-segment parameter fractions each
// source segment is evaluated at per target segment, matching the
// original's five unrolled sample points Pa..Pe.
var sampleFractions = [5]float64{0.0, 0.2, 0.4, 0.6, 0.8}

func samplePoint(a, f geom.Point, frac float64) geom.Point {
	return geom.Point{X: a.X + (f.X-a.X)*frac, Y: a.Y + (f.Y-a.Y)*frac}
}

// onSegment reports whether sample s (index into sampleFractions) of
// source segment i lies on target segment j, given their residue class
// (segment_i - segment_j + N) mod N within one path (-1 when the two
// segments belong to different paths, where no sample is ever on).
func onSegment(residue, s int) bool {
	switch residue {
	case 0:
		return true
	case 1:
		return s == 0
	default:
		return false
	}
}

func residueClass(pathI, pathJ *pathmodel.Path, segI, segJ int) int {
	if pathI != pathJ {
		return -1
	}
	n := pathI.NumPoints()
	return ((segI-segJ)%n + n) % n
}

// MakeVoltageGeometryMatrix assembles A, shape ((5N+1) x 2N): the
// Chebyshev-basis V/W terms of every source segment sampled against
// every target segment of the zone.
func MakeVoltageGeometryMatrix(b *pathmodel.Boundary, vgm *mat.Matrix) {
	offsetJ := 0
	for _, pathJ := range b.Components {
		offsetI := 0
		for _, pathI := range b.Components {
			fillVoltageGeometryMatrix(offsetI, offsetJ, pathI, pathJ, vgm)
			offsetI += pathI.NumPoints()
		}
		offsetJ += pathJ.NumPoints()
	}
}

func fillVoltageGeometryMatrix(offsetI, offsetJ int, pathI, pathJ *pathmodel.Path, vgm *mat.Matrix) {
	offsetI *= 5
	offsetJ *= 2
	for segJ := 0; segJ < pathJ.NumPoints(); segJ++ {
		Qa, Qb := pathJ.XY(segJ), pathJ.XY(segJ+1)
		j := segJ * 2
		for segI := 0; segI < pathI.NumPoints(); segI++ {
			Pa, Pf := pathI.XY(segI), pathI.XY(segI+1)
			residue := residueClass(pathI, pathJ, segI, segJ)
			i := segI * 5
			for s, frac := range sampleFractions {
				P := samplePoint(Pa, Pf, frac)
				x, y1, y2 := geom.ConvertPQ(Qa, Qb, P)
				var v, w float64
				if onSegment(residue, s) {
					v, w = kernel.VtermPonS(y1, y2), kernel.WtermPonS(y1, y2)
				} else {
					v, w = kernel.VtermPoffS(x, y1, y2), kernel.WtermPoffS(x, y1, y2)
				}
				v, w = kernel.P2C2Basis(v, w)
				vgm.PutBlock(offsetI, offsetJ, i+s, j, v)
				vgm.PutBlock(offsetI, offsetJ, i+s, j+1, w)
			}
		}
	}
}

// MakeCurrentGeometryMatrix assembles B, shape ((5N+1) x 4N): the
// Chebyshev-basis J/K/L/M terms, same sampling scheme as A.
func MakeCurrentGeometryMatrix(b *pathmodel.Boundary, cgm *mat.Matrix) {
	offsetJ := 0
	for _, pathJ := range b.Components {
		offsetI := 0
		for _, pathI := range b.Components {
			fillCurrentGeometryMatrix(offsetI, offsetJ, pathI, pathJ, cgm)
			offsetI += pathI.NumPoints()
		}
		offsetJ += pathJ.NumPoints()
	}
}

func fillCurrentGeometryMatrix(offsetI, offsetJ int, pathI, pathJ *pathmodel.Path, cgm *mat.Matrix) {
	offsetI *= 5
	offsetJ *= 4
	for segJ := 0; segJ < pathJ.NumPoints(); segJ++ {
		Qa, Qb := pathJ.XY(segJ), pathJ.XY(segJ+1)
		j := segJ * 4
		for segI := 0; segI < pathI.NumPoints(); segI++ {
			Pa, Pf := pathI.XY(segI), pathI.XY(segI+1)
			residue := residueClass(pathI, pathJ, segI, segJ)
			i := segI * 5
			for s, frac := range sampleFractions {
				P := samplePoint(Pa, Pf, frac)
				x, y1, y2 := geom.ConvertPQ(Qa, Qb, P)
				var jj, k, l, m float64
				if onSegment(residue, s) {
					jj = kernel.JtermPonS(y1, y2)
					k = kernel.KtermPonS(y1, y2)
					l = kernel.LtermPonS(y1, y2)
					m = kernel.MtermPonS(y1, y2)
				} else {
					jj = kernel.JtermPoffS(x, y1, y2)
					k = kernel.KtermPoffS(x, y1, y2)
					l = kernel.LtermPoffS(x, y1, y2)
					m = kernel.MtermPoffS(x, y1, y2)
				}
				jj, k, l, m = kernel.P2C4Basis(jj, k, l, m)
				cgm.PutBlock(offsetI, offsetJ, i+s, j, jj)
				cgm.PutBlock(offsetI, offsetJ, i+s, j+1, k)
				cgm.PutBlock(offsetI, offsetJ, i+s, j+2, l)
				cgm.PutBlock(offsetI, offsetJ, i+s, j+3, m)
			}
		}
	}
}

// MakeDiagonalMatrix assembles D, same shape as A: nonzero only on a
// segment's own block (source segment == target segment, same path);
// every other entry, including cross-component blocks, is zero.
func MakeDiagonalMatrix(b *pathmodel.Boundary, dm *mat.Matrix) {
	zeroMatrix(dm)
	offsetJ := 0
	for _, pathJ := range b.Components {
		offsetI := 0
		for _, pathI := range b.Components {
			if pathI == pathJ {
				fillDiagonalMatrix(offsetI, offsetJ, pathI, dm)
			}
			offsetI += pathI.NumPoints()
		}
		offsetJ += pathJ.NumPoints()
	}
}

func zeroMatrix(m *mat.Matrix) {
	rows, cols := m.NumRows(), m.NumColumns()
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			m.Put(i, j, 0)
		}
	}
}

// fillDiagonalMatrix fills the self-segment stencil: a literal five-row
// block of (-0.5,-0.3,-0.1,0.1,0.3)*0.5 voltage-basis entries, except
// the first row where the interior angle at the segment's start node
// (syn, in turns) replaces the constant -0.5/+1.0 pair.
func fillDiagonalMatrix(offsetI, offsetJ int, path *pathmodel.Path, dm *mat.Matrix) {
	offsetI *= 5
	offsetJ *= 2
	n := path.NumPoints()
	for seg := 0; seg < n; seg++ {
		i, j := seg*5, seg*2
		prev, node, next := path.XY(seg-1), path.XY(seg), path.XY(seg+1)
		synY := (prev.Y-node.Y)*(next.X-node.X) - (next.Y-node.Y)*(prev.X-node.X)
		synX := (prev.X-node.X)*(next.X-node.X) + (next.Y-node.Y)*(prev.Y-node.Y)
		syn := math.Atan2(synY, synX) / (2.0 * math.Pi)
		if syn < 0.0 {
			syn += 1.0
		}
		stencil := [5][2]float64{
			{-0.5 * syn, syn},
			{-0.3 * 0.5, 0.5},
			{-0.1 * 0.5, 0.5},
			{0.1 * 0.5, 0.5},
			{0.3 * 0.5, 0.5},
		}
		for s := 0; s < 5; s++ {
			v, w := kernel.P2C2Basis(stencil[s][0], stencil[s][1])
			dm.PutBlock(offsetI, offsetJ, i+s, j, v)
			dm.PutBlock(offsetI, offsetJ, i+s, j+1, w)
		}
	}
}

// MakeKCLGeometryVector fills the single Kirchhoff current-law
// constraint row, one 4-wide block per segment, its literal polynomial
// form (0, (y2-y1)/12, 0, y2-y1) at the segment's midpoint.
func MakeKCLGeometryVector(b *pathmodel.Boundary, kcl *mat.Matrix) {
	offsetJ := 0
	for _, pathJ := range b.Components {
		fillKCLGeometryVector(offsetJ, pathJ, kcl)
		offsetJ += pathJ.NumPoints()
	}
}

func fillKCLGeometryVector(offsetJ int, path *pathmodel.Path, kcl *mat.Matrix) {
	offsetJ *= 4
	for seg := 0; seg < path.NumPoints(); seg++ {
		Qa, Qb := path.XY(seg), path.XY(seg+1)
		mid := geom.Point{X: (Qa.X + Qb.X) / 2.0, Y: (Qa.Y + Qb.Y) / 2.0}
		_, y1, y2 := geom.ConvertPQ(Qa, Qb, mid)
		j0, k0, l0, m0 := 0.0, (y2-y1)/12.0, 0.0, y2-y1
		j0, k0, l0, m0 = kernel.P2C4Basis(j0, k0, l0, m0)
		j := seg * 4
		kcl.PutBlock(0, offsetJ, 0, j, j0)
		kcl.PutBlock(0, offsetJ, 0, j+1, k0)
		kcl.PutBlock(0, offsetJ, 0, j+2, l0)
		kcl.PutBlock(0, offsetJ, 0, j+3, m0)
	}
}
