// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package derived

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
)

func Test_velocityZeroGradientIsZero01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("velocityZeroGradientIsZero01. a flat field has no flow")

	v := Velocity(geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 0})
	chk.Scalar(tst, "v", 1e-15, v, 0.0)
}

func Test_velocityBoundedByConductivity01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("velocityBoundedByConductivity01. velocity never exceeds conductivity")

	P := geom.Point{X: 1, Y: 1}
	v := Velocity(P, geom.Point{X: 1e6, Y: 0})
	if v >= Conductivity(P) {
		tst.Fatalf("expected v < conductivity, got v=%v conductivity=%v", v, Conductivity(P))
	}
}

func Test_riskZeroWhenStalled01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("riskZeroWhenStalled01. a stalled streamline (v<=0) carries no risk")

	r := Risk(10.0, 0.0)
	chk.Scalar(tst, "risk", 1e-15, r, 0.0)
}

func Test_depthScalesWithArcLength01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("depthScalesWithArcLength01. doubling travel length doubles depth")

	P := geom.Point{X: 0, Y: 0}
	gradV := geom.Point{X: 1, Y: 0}
	d1 := Depth(P, 2.0, gradV)
	d2 := Depth(P, 4.0, gradV)
	chk.Scalar(tst, "d2/d1", 1e-9, d2/d1, 2.0)
}
