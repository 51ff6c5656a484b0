// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_loadMissingEnvIsError01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loadMissingEnvIsError01. CATCHMENT unset is an error, not a panic")

	os.Unsetenv("CATCHMENT")
	if _, err := Load(); err == nil {
		tst.Fatalf("expected an error when CATCHMENT is unset, got none")
	}
}

func Test_loadResolvesSetEnv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("loadResolvesSetEnv01. CATCHMENT set is carried through verbatim")

	os.Setenv("CATCHMENT", "/tmp/catchment-data")
	defer os.Unsetenv("CATCHMENT")

	cfg, err := Load()
	if err != nil {
		tst.Fatalf("Load failed: %v", err)
	}
	if cfg.CatchmentDir != "/tmp/catchment-data" {
		tst.Fatalf("expected CatchmentDir to be /tmp/catchment-data, got %q", cfg.CatchmentDir)
	}
}
