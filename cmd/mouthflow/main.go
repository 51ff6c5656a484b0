// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mouthflow computes the catchment area draining to a mouth
// section, spec Sec.4.9 / original_source's area.c.
//
// Usage:
//
//	mouthflow <catchment-file> "<section-spec>" [step_size] [rm] [dr] [n_stream]
//
// step_size/rm/dr follow spec Sec.6's CLI surface (step size, max
// steps, direction sign), followed by n_stream. Positional args after
// n_stream (such as inversion-method, multiply-method, block size or
// DGEMM-backend selectors) are not read: this driver has a single
// backend.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tkeatkaew/parallel-swp-bem-project/area"
	"github.com/tkeatkaew/parallel-swp-bem-project/cmdutil"
	"github.com/tkeatkaew/parallel-swp-bem-project/section"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()
	args := cmdutil.ParseMouthArgs()

	mouth, err := section.ParseSection(args.SectionSpec)
	if err != nil {
		chk.Panic("%v", err)
	}
	c, fv, err := cmdutil.LoadCatchment(args.CatchmentFile)
	if err != nil {
		chk.Panic("%v", err)
	}

	traces := cmdutil.TraceBuffers(args.NStream, args.MaxSteps)
	a := area.CatchmentArea(c, mouth, args.Direction, args.MaxSteps, args.StepSize, args.NStream, traces, fv)
	io.Pf("catchment area = %v\n", a)
}
