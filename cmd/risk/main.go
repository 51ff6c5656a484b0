// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command risk evaluates runoff risk (travel time to speed ratio) over
// a raster grid, original_source's risk.c. For each grid point a
// streamline is traced toward the outlet, the way height does; the
// arc length and arrival velocity feed derived.Risk.
//
// Usage:
//
//	risk <catchment-file> "<raster-spec>" [step_size] [rm] [dr] [out-file]
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tkeatkaew/parallel-swp-bem-project/cmdutil"
	"github.com/tkeatkaew/parallel-swp-bem-project/derived"
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
	args := cmdutil.ParseRasterArgs()

	raster, err := section.ParseRaster(args.RasterSpec)
	if err != nil {
		chk.Panic("%v", err)
	}
	c, fv, err := cmdutil.LoadCatchment(args.CatchmentFile)
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
			r := streamline.Loop(P, c, args.Direction, args.MaxSteps, args.StepSize, nil, fv)
			row[i] = P
			if r.Final.NewZone >= 0 {
				v := derived.Velocity(P, r.Final.Grad)
				vals[i] = derived.Risk(r.ArcLength, v)
			}
		}
		rows[j] = row
		values[j] = vals
	}

	if err := fileio.WriteRaster(args.OutFile, rows, values); err != nil {
		chk.Panic("%v", err)
	}
	io.Pf("wrote %s\n", args.OutFile)
}
