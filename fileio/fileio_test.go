// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/tkeatkaew/parallel-swp-bem-project/config"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
)

func writeTestFile(tst *testing.T, dir, name, content string) {
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		tst.Fatalf("cannot write fixture %q: %v", name, err)
	}
}

func Test_loadCatchmentFromFixture01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loadCatchmentFromFixture01. one zone, one closed square path")

	dir := tst.TempDir()
	cfg := &config.Config{CatchmentDir: dir}

	writeTestFile(tst, dir, "square.path", "# boundary of a unit square\n0.0 0.0 0.0\n1.0 0.0 1.0\n1.0 1.0 2.0\n0.0 1.0 3.0\n")
	writeTestFile(tst, dir, "square.loop", "square.path\n")
	writeTestFile(tst, dir, "square.catchment", "square.loop\n")

	c, err := LoadCatchment(cfg, "square.catchment", 4)
	if err != nil {
		tst.Fatalf("LoadCatchment failed: %v", err)
	}
	chk.IntAssert(len(c.Zones), 1)
	chk.IntAssert(c.Zones[0].NumPoints(), 4)
	chk.IntAssert(c.Pool.Len(), 1)
}

func Test_loadPathRejectsShortLine01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loadPathRejectsShortLine01. a line missing the value column is an error")

	dir := tst.TempDir()
	cfg := &config.Config{CatchmentDir: dir}

	writeTestFile(tst, dir, "bad.path", "0.0 0.0\n")

	if _, err := LoadPath(cfg, "bad.path"); err == nil {
		tst.Fatalf("expected an error for a short data line, got none")
	}
}

func Test_writeXYVRoundTrip01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("writeXYVRoundTrip01. WriteXYV output reads back non-empty")

	dir := tst.TempDir()
	out := filepath.Join(dir, "field.out")

	points := []geom.Point{{X: 0.0, Y: 0.0}, {X: 1.0, Y: 1.0}}
	values := []float64{1.0, 2.0}
	if err := WriteXYV(out, points, values); err != nil {
		tst.Fatalf("WriteXYV failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		tst.Fatalf("cannot read back output: %v", err)
	}
	if len(data) == 0 {
		tst.Fatalf("expected non-empty output file")
	}
}
