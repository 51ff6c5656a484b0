// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geom implements the planar geometry primitives shared by the
// boundary-element kernel: local segment frames, signed angles and the
// rotation of vector/tensor quantities between local and global frames.
package geom

import "math"

// Point is a pair of double-precision planar coordinates.
type Point struct {
	X, Y float64
}

// Tensor2 is a 2x2 matrix of doubles, used for second-derivative fields
// and tensor-valued geometry-vector terms.
type Tensor2 struct {
	A00, A01, A10, A11 float64
}

// ConvertPQ projects P into the local frame of segment QaQb: x is the
// signed perpendicular distance from the segment's line to P, and y1/y2
// are the along-segment positions of Qa and Qb relative to P, so the
// segment occupies [y1, y2] on the local y-axis.
func ConvertPQ(Qa, Qb, P Point) (x, y1, y2 float64) {
	yu := Qb.X - Qa.X
	yv := Qb.Y - Qa.Y
	d := math.Sqrt(yu*yu + yv*yv)
	yu /= d
	yv /= d
	xu := yv
	xv := -yu
	y1 = (Qa.X-P.X)*yu + (Qa.Y-P.Y)*yv
	y2 = (Qb.X-P.X)*yu + (Qb.Y-P.Y)*yv
	x = (Qa.X-P.X)*xu + (Qa.Y-P.Y)*xv
	return
}

// RotateToPQ rotates a local-frame vector (x, y) back to the global
// frame defined by segment QaQb.
func RotateToPQ(x, y float64, Qa, Qb Point) Point {
	yu := Qb.X - Qa.X
	yv := Qb.Y - Qa.Y
	d := math.Sqrt(yu*yu + yv*yv)
	yu /= d
	yv /= d
	xu := yv
	xv := -yu
	return Point{
		X: x*xu + y*yu,
		Y: x*xv + y*yv,
	}
}

// DoubleRotateToPQ rotates a local-frame 2-tensor back to the global
// frame defined by segment QaQb.
func DoubleRotateToPQ(t Tensor2, Qa, Qb Point) Tensor2 {
	yu := Qb.X - Qa.X
	yv := Qb.Y - Qa.Y
	d := math.Sqrt(yu*yu + yv*yv)
	yu /= d
	yv /= d
	// xu = yv, xv = -yu is rotated about 90 degrees
	alphasq := yv * yv
	alphabeta := -yu * yv
	betasq := yu * yu
	a, b, c, dd := t.A00, t.A01, t.A10, t.A11
	return Tensor2{
		A00: a*alphasq - (b+c)*alphabeta + dd*betasq,
		A01: b*alphasq + (a-dd)*alphabeta - c*betasq,
		A10: c*alphasq + (a-dd)*alphabeta - b*betasq,
		A11: dd*alphasq + (b+c)*alphabeta + a*betasq,
	}
}

// Atan3 computes atan(y2/x) - atan(y1/x) via a single atan2 call,
// avoiding the branch cut that a naive subtraction of two atan2 calls
// would cross.
func Atan3(y2, y1, x float64) float64 {
	return math.Atan2(x*(y2-y1), x*x+y1*y2)
}

// Atanv returns the signed planar angle /_Q1 P Q2 in (-pi, pi], computed
// via atan2(cross, dot) to avoid quadrant ambiguity.
func Atanv(Q1, Q2, P Point) float64 {
	x1 := Q1.X - P.X
	y1 := Q1.Y - P.Y
	x2 := Q2.X - P.X
	y2 := Q2.Y - P.Y
	return math.Atan2(x1*y2-y1*x2, x1*x2+y1*y2)
}
