// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command flowrate computes the mass flow rate through a mouth
// section, spec Sec.5 supplemented feature / original_source's
// mouthflow.c:flow_rate.
//
// Usage:
//
//	flowrate <catchment-file> "<section-spec>" [step_size] [rm] [dr] [n_stream]
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tkeatkaew/parallel-swp-bem-project/cmdutil"
	"github.com/tkeatkaew/parallel-swp-bem-project/derived"
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
	q := derived.FlowRate(c, mouth, args.Direction, args.MaxSteps, args.StepSize, args.NStream, traces, fv)
	io.Pf("flow rate = %v\n", q)
}
