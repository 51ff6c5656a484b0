// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathmodel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
)

func square(filename string) *Path {
	p := NewPath(filename, 4)
	corners := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	for i, c := range corners {
		p.SetXY(i, c)
		p.SetValue(i, c.X+c.Y)
	}
	return p
}

func Test_reverseRoundTrip01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reverseRoundTrip01. orientation stability under reverse/reverse")

	p := square("unit_square.loop")
	before := []geom.Point{p.XY(0), p.XY(1), p.XY(2), p.XY(3)}
	p.ReverseInPlace()
	p.ReverseInPlace()
	for i, want := range before {
		got := p.XY(i)
		if got != want {
			tst.Fatalf("node %d: got %+v want %+v", i, got, want)
		}
	}
}

func Test_reverseIndexing01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reverseIndexing01. index i maps to N-1-i under reverse")

	p := square("unit_square.loop")
	p.ReverseInPlace()
	chk.Scalar(tst, "xy(0).x", 1e-15, p.XY(0).X, 0) // node 3 has (0,1)... but reversed(0)=N-1-0=3
	chk.Scalar(tst, "xy(0).y", 1e-15, p.XY(0).Y, 1)
}

func Test_pool01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pool01. dedup by filename, bounded capacity")

	pool := NewPathPool(2)
	a := pool.Insert("a.loop", square("a.loop"))
	b := pool.Insert("a.loop", square("a.loop")) // re-insert: returns original
	if a != b {
		tst.Fatalf("expected re-insert under same filename to return the pooled instance")
	}
	pool.Insert("b.loop", square("b.loop"))
	chk.IntAssert(pool.Len(), 2)
}

func Test_zoneOrientationLevel01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zoneOrientationLevel01. ReverseZone flips only mismatched components")

	outer := square("outer.loop")
	hole := square("hole.loop")
	b := NewBoundary(2)
	b.Components[0] = outer
	b.Components[1] = hole
	b.Level[0] = Outer
	b.Level[1] = Hole
	b.Orientation = CCW // zoneType=0

	b.ReverseZone() // hole (level=1) flips since zoneType==0 && pathType==1
	if outer.Reversed() {
		tst.Fatalf("outer path should not flip for a CCW zone")
	}
	if !hole.Reversed() {
		tst.Fatalf("hole path should flip for a CCW zone")
	}
	b.ReverseZone() // restore
	if hole.Reversed() {
		tst.Fatalf("second ReverseZone call should restore original orientation")
	}
}
