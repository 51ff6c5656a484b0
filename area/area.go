// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package area implements the catchment-area integral: trapezoidal
// accumulation of streamline length weighted by the sine of the angle
// between the mouth section and the gradient at each mouth point.
package area

import (
	"math"

	"github.com/tkeatkaew/parallel-swp-bem-project/bem"
	"github.com/tkeatkaew/parallel-swp-bem-project/catchment"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/section"
	"github.com/tkeatkaew/parallel-swp-bem-project/streamline"
)

// CatchmentArea integrates the catchment area draining to mouth: for
// each of mouth.N equispaced points, a streamline is traced through c
// (direction/maxSteps/stepSize as streamline.Loop), and the area is
// accumulated as the trapezoidal sum of streamline-length * sin(theta),
// theta being the angle between the mouth direction and the local
// gradient.
//
// The caller passes exactly nStream trace buffers in traces. Mouth
// point 0 traces into slot 0; the remaining points share slots 1 to
// nStream-1 in consecutive runs spread evenly across the n mouth steps,
// each trace overwriting its slot, so a slot ends up holding the last
// trace of its run — the original's n_stream-bounded "streamline[k]"
// retention, to keep storage bounded regardless of mouth.N.
func CatchmentArea(c *catchment.Catchment, mouth *section.Section, direction streamline.Direction, maxSteps int, stepSize float64, nStream int, traces [][]geom.Point, fv *bem.FieldVectors) float64 {
	n := mouth.N - 1
	dx := (mouth.P2.X - mouth.P1.X) / float64(n)
	dy := (mouth.P2.Y - mouth.P1.Y) / float64(n)
	dw := mouth.Step

	slot := func(k int) *[]geom.Point {
		if k >= nStream {
			k = nStream - 1
		}
		traces[k] = traces[k][:0]
		return &traces[k]
	}

	P := mouth.XY(0)
	r := streamline.Loop(P, c, direction, maxSteps, stepSize, slot(0), fv)
	k := 1
	sTheta := func(gv geom.Point) float64 {
		cosq := (dx*gv.X + dy*gv.Y) / dw
		cosq = cosq * cosq / (gv.X*gv.X + gv.Y*gv.Y)
		if cosq > 1.0 {
			cosq = 1.0
		}
		return math.Sqrt(1.0 - cosq)
	}

	Lold, sOld := r.ArcLength, sTheta(r.Final.Grad)
	sum := 0.0
	for i := 1; i < mouth.N; i++ {
		P = mouth.XY(i)
		r = streamline.Loop(P, c, direction, maxSteps, stepSize, slot(k), fv)
		if i*(nStream-1) >= k*n {
			k++
		}
		Lnew, sNew := r.ArcLength, sTheta(r.Final.Grad)
		sum += Lold*sOld + Lnew*sNew
		Lold, sOld = Lnew, sNew
	}
	return sum * dw / 2.0
}
