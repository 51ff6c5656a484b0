// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dsection evaluates the gradient of the scalar potential
// along a section, original_source's dsection.c. Output is "x y vx vy"
// quadruples, one per section point.
//
// Usage:
//
//	dsection <catchment-file> "<section-spec>" [out-file]
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tkeatkaew/parallel-swp-bem-project/bem"
	"github.com/tkeatkaew/parallel-swp-bem-project/cmdutil"
	"github.com/tkeatkaew/parallel-swp-bem-project/section"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()
	catchmentFile := io.ArgToString(0, "catchment.dat")
	sectionSpec := io.ArgToString(1, "")
	outFile := io.ArgToString(2, "out.dat")

	sec, err := section.ParseSection(sectionSpec)
	if err != nil {
		chk.Panic("%v", err)
	}
	c, fv, err := cmdutil.LoadCatchment(catchmentFile)
	if err != nil {
		chk.Panic("%v", err)
	}

	f, err := os.Create(outFile)
	if err != nil {
		chk.Panic("cannot open file %q for writing: %v", outFile, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for i := 0; i < sec.N; i++ {
		P := sec.XY(i)
		r := bem.CalculateInsideCatchment(c, P, fv)
		if _, err := fmt.Fprintf(w, "%.6f %.6f %.6f %.6f\n", P.X, P.Y, r.Grad.X, r.Grad.Y); err != nil {
			chk.Panic("failed to write data to output file %q: %v", outFile, err)
		}
	}
	if err := w.Flush(); err != nil {
		chk.Panic("failed to write data to output file %q: %v", outFile, err)
	}
	io.Pf("wrote %s\n", outFile)
}
