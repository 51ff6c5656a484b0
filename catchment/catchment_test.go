// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catchment

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/pathmodel"
)

func unitSquareCCW(filename string) *pathmodel.Path {
	p := pathmodel.NewPath(filename, 4)
	corners := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	for i, c := range corners {
		p.SetXY(i, c)
		p.SetValue(i, c.X+c.Y)
	}
	return p
}

func Test_findOrientationCCW01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("findOrientationCCW01. unit square traversed CCW")

	p := unitSquareCCW("square.loop")
	chk.IntAssert(FindOrientation(p), 0)
}

func Test_findOrientationCW01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("findOrientationCW01. unit square traversed CW")

	p := pathmodel.NewPath("square_cw.loop", 4)
	corners := []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	for i, c := range corners {
		p.SetXY(i, c)
	}
	chk.IntAssert(FindOrientation(p), 1)
}

func Test_checkZoneInsideOutside01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("checkZoneInsideOutside01. point-in-zone membership exclusivity")

	square := unitSquareCCW("square.loop")
	b := pathmodel.NewBoundary(1)
	b.Components[0] = square
	MarkCurve(b)
	MarkPaths(b)

	if !CheckZone(b, geom.Point{X: 0.5, Y: 0.5}) {
		tst.Fatalf("center of unit square should be inside the zone")
	}
	if CheckZone(b, geom.Point{X: 2, Y: 2}) {
		tst.Fatalf("point far outside the unit square should not be inside the zone")
	}
}

func Test_markPathsAnnulus01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("markPathsAnnulus01. outer + inner (both stored CCW) hole classification")

	outer := pathmodel.NewPath("outer.loop", 4)
	outerCorners := []geom.Point{{X: -2, Y: -2}, {X: 2, Y: -2}, {X: 2, Y: 2}, {X: -2, Y: 2}}
	for i, c := range outerCorners {
		outer.SetXY(i, c)
	}
	inner := pathmodel.NewPath("inner.loop", 4)
	// CCW like the outer loop: a zone's loops share one sense (MarkCurve
	// rejects a mix); ReverseZone flips the hole when the zone is used.
	innerCorners := []geom.Point{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	for i, c := range innerCorners {
		inner.SetXY(i, c)
	}

	b := pathmodel.NewBoundary(2)
	b.Components[0] = outer
	b.Components[1] = inner
	MarkCurve(b)
	MarkPaths(b)

	chk.IntAssert(b.Level[0], pathmodel.Outer)
	chk.IntAssert(b.Level[1], pathmodel.Hole)

	if !CheckZone(b, geom.Point{X: 1.5, Y: 0}) {
		tst.Fatalf("point in the annulus should be inside the zone")
	}
	if CheckZone(b, geom.Point{X: 0, Y: 0}) {
		tst.Fatalf("point inside the hole should not be inside the zone")
	}
}
