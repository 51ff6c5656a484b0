// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package area

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/tkeatkaew/parallel-swp-bem-project/bem"
	"github.com/tkeatkaew/parallel-swp-bem-project/catchment"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/pathmodel"
	"github.com/tkeatkaew/parallel-swp-bem-project/section"
	"github.com/tkeatkaew/parallel-swp-bem-project/streamline"
)

func ascendingSquare() *catchment.Catchment {
	c := catchment.NewCatchment(1, 1)
	p := pathmodel.NewPath("square.loop", 4)
	corners := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	for i, q := range corners {
		p.SetXY(i, q)
		p.SetValue(i, float64(i))
	}
	b := pathmodel.NewBoundary(1)
	b.Components[0] = p
	c.AddZone(b)
	return c
}

func Test_catchmentAreaFiniteNonNegative01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("catchmentAreaFiniteNonNegative01. area over a small mouth is finite")

	c := ascendingSquare()
	fv := bem.NewFieldVectors(c.MaxPointsInAnyZone())
	mouth := section.NewSection(3, geom.Point{X: 0.2, Y: 0.5}, geom.Point{X: 0.8, Y: 0.5})

	nStream := 2
	traces := make([][]geom.Point, nStream)
	a := CatchmentArea(c, mouth, streamline.Ascend, 50, 0.05, nStream, traces, fv)

	if a != a { // NaN check
		tst.Fatalf("catchment area is NaN")
	}
	if a < 0 {
		tst.Fatalf("catchment area should not be negative, got %v", a)
	}
}
