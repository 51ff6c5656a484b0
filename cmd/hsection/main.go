// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hsection evaluates the scalar potential (head) along a
// section, original_source's hsection.c.
//
// Usage:
//
//	hsection <catchment-file> "<section-spec>" [out-file]
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tkeatkaew/parallel-swp-bem-project/bem"
	"github.com/tkeatkaew/parallel-swp-bem-project/cmdutil"
	"github.com/tkeatkaew/parallel-swp-bem-project/fileio"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
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

	points := make([]geom.Point, sec.N)
	values := make([]float64, sec.N)
	for i := 0; i < sec.N; i++ {
		P := sec.XY(i)
		r := bem.CalculateInsideCatchment(c, P, fv)
		points[i] = P
		values[i] = r.Voltage
	}

	if err := fileio.WriteXYV(outFile, points, values); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("wrote %s\n", outFile)
}
