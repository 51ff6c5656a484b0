// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package config resolves the process-wide settings every catchment-
// file load depends on, following the teacher's convention of a
// single loader (inp.ReadSim) rather than scattering os.Getenv calls
// through the codebase.
package config

import (
	"os"

	"github.com/cpmech/gosl/chk"
)

// Config is the resolved process configuration.
type Config struct {
	// CatchmentDir is the directory every relative path/boundary/
	// catchment file name in fileio is resolved against.
	CatchmentDir string
}

// Load resolves Config from the environment, failing if CATCHMENT is
// unset — file.c's catchment_path.
func Load() (*Config, error) {
	dir := os.Getenv("CATCHMENT")
	if dir == "" {
		return nil, chk.Err("cannot find environment variable: CATCHMENT")
	}
	return &Config{CatchmentDir: dir}, nil
}
