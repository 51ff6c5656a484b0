// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rsection evaluates the scalar potential over a raster grid,
// original_source's rsection.c — the raster counterpart of hsection.
//
// Usage:
//
//	rsection <catchment-file> "<raster-spec>" [out-file]
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
	rasterSpec := io.ArgToString(1, "")
	outFile := io.ArgToString(2, "out.dat")

	raster, err := section.ParseRaster(rasterSpec)
	if err != nil {
		chk.Panic("%v", err)
	}
	c, fv, err := cmdutil.LoadCatchment(catchmentFile)
	if err != nil {
		chk.Panic("%v", err)
	}

	rows := make([][]geom.Point, raster.Ny)
	values := make([][]float64, raster.Ny)
	for j := 0; j < raster.Ny; j++ {
		row := make([]geom.Point, raster.Nx)
		vals := make([]float64, raster.Nx)
		for i := 0; i < raster.Nx; i++ {
			P := geom.Point{X: raster.X(i), Y: raster.Y(j)}
			r := bem.CalculateInsideCatchment(c, P, fv)
			row[i] = P
			vals[i] = r.Voltage
		}
		rows[j] = row
		values[j] = vals
	}

	if err := fileio.WriteRaster(outFile, rows, values); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("wrote %s\n", outFile)
}
