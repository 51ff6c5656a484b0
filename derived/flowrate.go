// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package derived

import (
	"math"

	"github.com/tkeatkaew/parallel-swp-bem-project/bem"
	"github.com/tkeatkaew/parallel-swp-bem-project/catchment"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/section"
	"github.com/tkeatkaew/parallel-swp-bem-project/streamline"
)

// FlowRate integrates the mass flow rate through mouth: for each of
// mouth.N equispaced points, a streamline is traced through c and the
// local depth*current-density product is accumulated as the
// trapezoidal sum weighted by sin(theta) between the mouth direction
// and the local gradient — mouthflow.c's flow_rate, with the same
// bounded n_stream trace-slot retention area.CatchmentArea uses.
func FlowRate(c *catchment.Catchment, mouth *section.Section, direction streamline.Direction, maxSteps int, stepSize float64, nStream int, traces [][]geom.Point, fv *bem.FieldVectors) float64 {
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

	sTheta := func(gv geom.Point) float64 {
		cosq := (dx*gv.X + dy*gv.Y) / dw
		cosq = cosq * cosq / (gv.X*gv.X + gv.Y*gv.Y)
		if cosq > 1.0 {
			cosq = 1.0
		}
		return math.Sqrt(1.0 - cosq)
	}

	dQ := func(P geom.Point, r streamline.Result) float64 {
		d := Depth(P, r.ArcLength, r.Final.Grad)
		Q := CurrentDensity(P, r.Final.Grad)
		return d * Q
	}

	P := mouth.XY(0)
	r := streamline.Loop(P, c, direction, maxSteps, stepSize, slot(0), fv)
	k := 1
	dQOld, sOld := dQ(P, r), sTheta(r.Final.Grad)

	sum := 0.0
	for i := 1; i < mouth.N; i++ {
		P = mouth.XY(i)
		r = streamline.Loop(P, c, direction, maxSteps, stepSize, slot(k), fv)
		if i*(nStream-1) >= k*n {
			k++
		}
		dQNew, sNew := dQ(P, r), sTheta(r.Final.Grad)
		sum += dQOld*sOld + dQNew*sNew
		dQOld, sOld = dQNew, sNew
	}
	return sum * dw / 2.0
}
