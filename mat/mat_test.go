// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_multiply01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("multiply01. 2x3 times 3x2")

	a := Attach(2, 3, []float64{1, 4, 2, 5, 3, 6}) // column-major: col0={1,4} col1={2,5} col2={3,6}
	b := Attach(3, 2, []float64{7, 9, 11, 8, 10, 12})
	x := NewMatrix(2, 2)
	Multiply(a, b, x)

	chk.Scalar(tst, "x[0][0]", 1e-15, x.Get(0, 0), 1*7+2*9+3*11)
	chk.Scalar(tst, "x[0][1]", 1e-15, x.Get(0, 1), 1*8+2*10+3*12)
	chk.Scalar(tst, "x[1][0]", 1e-15, x.Get(1, 0), 4*7+5*9+6*11)
	chk.Scalar(tst, "x[1][1]", 1e-15, x.Get(1, 1), 4*8+5*10+6*12)
}

func Test_transpose01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transpose01. reading through the transpose flag")

	a := Attach(2, 3, []float64{1, 4, 2, 5, 3, 6})
	a.Transpose = true
	chk.Scalar(tst, "aT[0][0]", 1e-15, a.Get(0, 0), 1)
	chk.Scalar(tst, "aT[0][1]", 1e-15, a.Get(0, 1), 4)
	chk.Scalar(tst, "aT[1][0]", 1e-15, a.Get(1, 0), 2)
	chk.IntAssert(a.NumRows(), 3)
	chk.IntAssert(a.NumColumns(), 2)
}

func Test_invert01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invert01. 2x2 diagonal matrix inverts to its reciprocal diagonal")

	a := Attach(2, 2, []float64{4, 0, 0, 4}) // diagonal(4,4), column-major
	Invert(a)
	chk.Scalar(tst, "a[0][0]", 1e-15, a.Get(0, 0), 0.25)
	chk.Scalar(tst, "a[1][1]", 1e-15, a.Get(1, 1), 0.25)
	chk.Scalar(tst, "a[0][1]", 1e-15, a.Get(0, 1), 0)
}

func Test_zeroFillLastRow01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zeroFillLastRow01. KCL row injection")

	a := Attach(2, 2, []float64{1, 2, 3, 4})
	ZeroLastRow(a)
	chk.Scalar(tst, "a[1][0]", 1e-15, a.Get(1, 0), 0)
	chk.Scalar(tst, "a[1][1]", 1e-15, a.Get(1, 1), 0)

	v := Attach(1, 2, []float64{9, 10})
	FillLastRow(a, v)
	chk.Scalar(tst, "a[1][0]", 1e-15, a.Get(1, 0), 9)
	chk.Scalar(tst, "a[1][1]", 1e-15, a.Get(1, 1), 10)
}

func Test_addAndTransposedView01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("addAndTransposedView01. DA=D+A, and a transposed view shares storage")

	d := Attach(2, 2, []float64{1, 2, 3, 4})
	a := Attach(2, 2, []float64{10, 20, 30, 40})
	da := NewMatrix(2, 2)
	Add(d, a, da)
	chk.Scalar(tst, "da[0][0]", 1e-15, da.Get(0, 0), 11)
	chk.Scalar(tst, "da[1][1]", 1e-15, da.Get(1, 1), 44)

	bt := Transposed(a)
	chk.Scalar(tst, "bt[0][1]", 1e-15, bt.Get(0, 1), a.Get(1, 0))
	a.Put(1, 0, 99) // mutating a through the original view is visible in bt
	chk.Scalar(tst, "bt[0][1] after mutate", 1e-15, bt.Get(0, 1), 99)
}

func Test_block01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("block01. block-addressed put/get over one arena")

	arena := make([]float64, 8)
	full := Attach(4, 2, arena)
	full.PutBlock(0, 0, 0, 0, 1)
	full.PutBlock(0, 0, 1, 0, 2)
	full.PutBlock(2, 0, 0, 0, 3)
	full.PutBlock(2, 0, 1, 0, 4)
	chk.Scalar(tst, "top[0][0]", 1e-15, full.GetBlock(0, 0, 0, 0), 1)
	chk.Scalar(tst, "bottom[0][0]", 1e-15, full.GetBlock(2, 0, 0, 0), 3)
}
