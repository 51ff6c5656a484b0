// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmdutil holds the setup shared by every cmd/ driver: loading
// a catchment through config+fileio, and sizing the FieldVectors
// scratch each driver threads through its streamline/field evaluations.
// Kept thin and separate from the core packages per spec Sec.1 - the
// CLI layer is a named external collaborator, not part of the core.
package cmdutil

import (
	"github.com/cpmech/gosl/io"
	"github.com/tkeatkaew/parallel-swp-bem-project/bem"
	"github.com/tkeatkaew/parallel-swp-bem-project/catchment"
	"github.com/tkeatkaew/parallel-swp-bem-project/config"
	"github.com/tkeatkaew/parallel-swp-bem-project/fileio"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/streamline"
)

// DefaultMaxPaths bounds the shared path pool when a driver has no
// reason to size it any tighter; large enough for every seed catchment
// named in spec Sec.8, small enough to fail fast on a runaway input
// file (spec Sec.7's "resource limits" error class). Per-catchment zone
// capacity is sized exactly to the zone-file list by fileio.LoadCatchment.
const DefaultMaxPaths = 512

// LoadCatchment resolves CATCHMENT, loads catchmentFile through it, and
// allocates a FieldVectors scratch sized to the loaded catchment's
// worst-case per-zone boundary-node count. This is the common prefix of
// every cmd/ main below: the only difference between drivers is what
// they do with the resulting (c, fv) pair.
func LoadCatchment(catchmentFile string) (*catchment.Catchment, *bem.FieldVectors, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	c, err := fileio.LoadCatchment(cfg, catchmentFile, DefaultMaxPaths)
	if err != nil {
		return nil, nil, err
	}
	fv := bem.NewFieldVectors(c.MaxPointsInAnyZone())
	return c, fv, nil
}

// MouthArgs is the common positional-argument shape of every
// mouth-integrating driver (mouthflow, flowrate): the catchment file
// and section spec string are followed by spec Sec.6's CLI surface
// (step_size, rm, dr), then an nStream trace-retention count. Any
// positional args after nStream (such as the inversion-method/
// multiply-method/block-size/DGEMM-backend selectors spec Sec.6 names)
// are not read: a single-backend implementation has nothing to select
// between.
type MouthArgs struct {
	CatchmentFile string
	SectionSpec   string
	StepSize      float64
	MaxSteps      int
	Direction     streamline.Direction
	NStream       int
}

// ParseMouthArgs reads os.Args (via gosl/io's ArgTo* helpers, the
// teacher's CLI-arg idiom — see tools/LocCmDriver.go, tools/GeostCalc.go)
// into a MouthArgs, applying a default for any argument missing at the
// tail.
func ParseMouthArgs() MouthArgs {
	catchmentFile := io.ArgToString(0, "catchment.dat")
	sectionSpec := io.ArgToString(1, "")
	stepSize := io.ArgToFloat(2, 0.01)
	rm := io.ArgToFloat(3, 1000)
	dr := io.ArgToFloat(4, 1)
	nStream := io.ArgToInt(5, 5)
	direction := streamline.Ascend
	if dr < 0 {
		direction = streamline.Descend
	}
	return MouthArgs{
		CatchmentFile: catchmentFile,
		SectionSpec:   sectionSpec,
		StepSize:      stepSize,
		MaxSteps:      int(rm),
		Direction:     direction,
		NStream:       nStream,
	}
}

// TraceBuffers allocates the n bounded trace slots area.CatchmentArea /
// derived.FlowRate expect, each empty but capacity-hinted to maxSteps+1
// points (the worst case: a streamline that runs its full step budget).
func TraceBuffers(n, maxSteps int) [][]geom.Point {
	traces := make([][]geom.Point, n)
	for i := range traces {
		traces[i] = make([]geom.Point, 0, maxSteps+1)
	}
	return traces
}

// RasterArgs is the positional-argument shape of the raster drivers
// (speed, height, risk): catchment file and raster spec, followed by
// the same step_size/rm/dr triple the mouth drivers take and an output
// file name. speed ignores StepSize/MaxSteps/Direction (Velocity is a
// pointwise function of the field, no streamline needed); height and
// risk use them to trace a descending streamline from each grid point
// to the point where Depth/Risk is evaluated.
type RasterArgs struct {
	CatchmentFile string
	RasterSpec    string
	StepSize      float64
	MaxSteps      int
	Direction     streamline.Direction
	OutFile       string
}

// ParseRasterArgs reads os.Args the same way ParseMouthArgs does.
func ParseRasterArgs() RasterArgs {
	catchmentFile := io.ArgToString(0, "catchment.dat")
	rasterSpec := io.ArgToString(1, "")
	stepSize := io.ArgToFloat(2, 0.01)
	rm := io.ArgToFloat(3, 1000)
	dr := io.ArgToFloat(4, -1)
	outFile := io.ArgToString(5, "out.dat")
	direction := streamline.Ascend
	if dr < 0 {
		direction = streamline.Descend
	}
	return RasterArgs{
		CatchmentFile: catchmentFile,
		RasterSpec:    rasterSpec,
		StepSize:      stepSize,
		MaxSteps:      int(rm),
		Direction:     direction,
		OutFile:       outFile,
	}
}
