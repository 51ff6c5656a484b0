// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ssection traces a streamline from every point of a section,
// original_source's ssection.c, and writes the traces as "x y" loops
// separated by blank lines (spec Sec.6).
//
// Usage:
//
//	ssection <catchment-file> "<section-spec>" [step_size] [rm] [dr] [out-file]
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tkeatkaew/parallel-swp-bem-project/cmdutil"
	"github.com/tkeatkaew/parallel-swp-bem-project/fileio"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/section"
	"github.com/tkeatkaew/parallel-swp-bem-project/streamline"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()
	catchmentFile := io.ArgToString(0, "catchment.dat")
	sectionSpec := io.ArgToString(1, "")
	stepSize := io.ArgToFloat(2, 0.01)
	rm := io.ArgToFloat(3, 1000)
	dr := io.ArgToFloat(4, 1)
	outFile := io.ArgToString(5, "out.dat")
	direction := streamline.Ascend
	if dr < 0 {
		direction = streamline.Descend
	}
	maxSteps := int(rm)

	sec, err := section.ParseSection(sectionSpec)
	if err != nil {
		chk.Panic("%v", err)
	}
	c, fv, err := cmdutil.LoadCatchment(catchmentFile)
	if err != nil {
		chk.Panic("%v", err)
	}

	loops := make([][]geom.Point, sec.N)
	for i := 0; i < sec.N; i++ {
		trace := make([]geom.Point, 0, maxSteps+1)
		streamline.Loop(sec.XY(i), c, direction, maxSteps, stepSize, &trace, fv)
		loops[i] = trace
	}

	if err := fileio.WriteLoops(outFile, loops); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("wrote %s\n", outFile)
}
