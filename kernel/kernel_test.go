// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_basisChange2_01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("basisChange2_01. (V,W) -> (W,4V)")

	a0, a1 := P2C2Basis(2.0, 3.0)
	chk.Scalar(tst, "a0", 1e-15, a0, 3.0)
	chk.Scalar(tst, "a1", 1e-15, a1, 8.0)
}

func Test_basisChange4_01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("basisChange4_01. (J,K,L,M) -> (M,4L,16K-M,64J-8L)")

	a0, a1, a2, a3 := P2C4Basis(1.0, 2.0, 3.0, 4.0)
	chk.Scalar(tst, "a0", 1e-15, a0, 4.0)
	chk.Scalar(tst, "a1", 1e-15, a1, 12.0)
	chk.Scalar(tst, "a2", 1e-15, a2, 28.0)
	chk.Scalar(tst, "a3", 1e-15, a3, 40.0)
}

func Test_onSegmentMatchesOffSegmentLimit01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("onSegmentMatchesOffSegmentLimit01. PonS agrees with PoffS as x->0")

	y1, y2 := -1.3, 2.1
	x := 1e-7

	chk.Scalar(tst, "V", 1e-4, VtermPoffS(x, y1, y2), VtermPonS(y1, y2))
	chk.Scalar(tst, "W", 1e-4, WtermPoffS(x, y1, y2), WtermPonS(y1, y2))
	chk.Scalar(tst, "M", 1e-4, MtermPoffS(x, y1, y2), MtermPonS(y1, y2))
}

func Test_symmetricSegmentVanishingKterm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("symmetricSegmentVanishingKterm01. K,L,J terms vanish at x=0")

	chk.Scalar(tst, "K", 1e-15, KtermPonS(-1.0, 1.0), 0.0)
	chk.Scalar(tst, "L", 1e-15, LtermPonS(-1.0, 1.0), 0.0)
	chk.Scalar(tst, "J", 1e-15, JtermPonS(-1.0, 1.0), 0.0)
}

func Test_gradientFiniteNonZero01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("gradientFiniteNonZero01. V1 off-segment gradient is finite")

	g := V1(0.5, -1.0, 1.0)
	if g.X != g.X || g.Y != g.Y { // NaN check
		tst.Fatalf("V1 produced NaN: %+v", g)
	}
}
