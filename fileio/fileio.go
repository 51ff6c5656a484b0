// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fileio implements the plain-text catchment/zone/loop file
// format: comment-skipping line reading, CATCHMENT-relative path
// resolution, the path/boundary/catchment loaders, and the x-y-v
// text writers the section/raster drivers emit.
package fileio

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/tkeatkaew/parallel-swp-bem-project/catchment"
	"github.com/tkeatkaew/parallel-swp-bem-project/config"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/pathmodel"
)

// resolve joins name onto cfg.CatchmentDir when usePath is true,
// mirroring file.c's open_file(use_path,...).
func resolve(cfg *config.Config, usePath bool, name string) (string, error) {
	if !usePath {
		return name, nil
	}
	if cfg == nil {
		return "", chk.Err("fileio: a *config.Config is required to resolve %q against CATCHMENT", name)
	}
	return filepath.Join(cfg.CatchmentDir, name), nil
}

// ReadLines reads every non-comment line (lines whose first byte is
// not '#') from name, in file order, skipping comment lines — the
// get_next_line/get_next_line_verbose comment-skip semantics.
func ReadLines(cfg *config.Config, usePath bool, name string) ([]string, error) {
	full, err := resolve(cfg, usePath, name)
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadFile(full)
	if err != nil {
		return nil, chk.Err("cannot open file %q: %v", full, err)
	}
	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, chk.Err("error reading file %q: %v", full, err)
	}
	return lines, nil
}

// CountLines returns the number of non-comment lines in name —
// count_lines.
func CountLines(cfg *config.Config, usePath bool, name string) (int, error) {
	lines, err := ReadLines(cfg, usePath, name)
	if err != nil {
		return 0, err
	}
	return len(lines), nil
}

// LoadPath reads name as a 3-column "x y value" file, one boundary
// node per non-comment line — path.c's get_path, sized by path_length.
func LoadPath(cfg *config.Config, name string) (*pathmodel.Path, error) {
	lines, err := ReadLines(cfg, true, name)
	if err != nil {
		return nil, err
	}
	n := len(lines)
	p := pathmodel.NewPath(name, n)
	dataMissing := false
	for i, line := range lines {
		var x, y, v float64
		if _, err := fmt.Sscanf(line, "%f %f %f", &x, &y, &v); err != nil {
			dataMissing = true
			continue
		}
		p.SetXY(i, geom.Point{X: x, Y: y})
		p.SetValue(i, v)
	}
	if dataMissing {
		return nil, chk.Err("fewer than 3 data values/line in file %q", name)
	}
	return p, nil
}

// pooledPath returns the path named name from pool, loading and
// inserting it on first use — path_list.c's search_path_list plus
// load_path_list.
func pooledPath(cfg *config.Config, pool *pathmodel.PathPool, name string) (*pathmodel.Path, error) {
	if p, ok := pool.Get(name); ok {
		return p, nil
	}
	p, err := LoadPath(cfg, name)
	if err != nil {
		return nil, err
	}
	return pool.Insert(name, p), nil
}

// LoadBoundary reads name as a list of path-file names (one non-
// comment line per component), resolving each through pool —
// boundary.c's boundary_loops plus catchment.c's per-zone loop body.
func LoadBoundary(cfg *config.Config, name string, pool *pathmodel.PathPool) (*pathmodel.Boundary, error) {
	lines, err := ReadLines(cfg, true, name)
	if err != nil {
		return nil, err
	}
	b := pathmodel.NewBoundary(len(lines))
	for i, pathName := range lines {
		p, err := pooledPath(cfg, pool, pathName)
		if err != nil {
			return nil, err
		}
		b.Components[i] = p
	}
	return b, nil
}

// LoadCatchment reads name as a list of boundary-file names (one
// zone per non-comment line) and builds a Catchment bounded at
// maxPaths distinct pooled paths — catchment.c's get_catchment.
func LoadCatchment(cfg *config.Config, name string, maxPaths int) (*catchment.Catchment, error) {
	zoneFiles, err := ReadLines(cfg, true, name)
	if err != nil {
		return nil, err
	}
	c := catchment.NewCatchment(len(zoneFiles), maxPaths)
	for _, zoneFile := range zoneFiles {
		b, err := LoadBoundary(cfg, zoneFile, c.Pool)
		if err != nil {
			return nil, err
		}
		c.AddZone(b)
	}
	return c, nil
}

// WriteXYV writes one "x y v" triple per line to name (not CATCHMENT-
// relative — an output file, unlike the input loaders above),
// matching show_path's plain-text dump of a path's geometry/values.
func WriteXYV(name string, points []geom.Point, values []float64) error {
	f, err := os.Create(name)
	if err != nil {
		return chk.Err("cannot open file %q for writing: %v", name, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for i, p := range points {
		if _, err := fmt.Fprintf(w, "%.6f %.6f %.6f\n", p.X, p.Y, values[i]); err != nil {
			return chk.Err("failed to write data to output file %q: %v", name, err)
		}
	}
	return w.Flush()
}

// WriteStreamline writes one "x y" pair per line to name, the
// streamline-trace text output named in spec §6.
func WriteStreamline(name string, trace []geom.Point) error {
	f, err := os.Create(name)
	if err != nil {
		return chk.Err("cannot open file %q for writing: %v", name, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, p := range trace {
		if _, err := fmt.Fprintf(w, "%.6f %.6f\n", p.X, p.Y); err != nil {
			return chk.Err("failed to write data to output file %q: %v", name, err)
		}
	}
	return w.Flush()
}

// WriteLoops writes a sequence of loops (e.g. several streamline
// traces, or a catchment's boundary components) as "x y" pairs, one
// blank line between consecutive loops — spec §6's "loops are
// separated by blank lines" convention for streamline/boundary output.
func WriteLoops(name string, loops [][]geom.Point) error {
	f, err := os.Create(name)
	if err != nil {
		return chk.Err("cannot open file %q for writing: %v", name, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for i, loop := range loops {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return chk.Err("failed to write data to output file %q: %v", name, err)
			}
		}
		for _, p := range loop {
			if _, err := fmt.Fprintf(w, "%.6f %.6f\n", p.X, p.Y); err != nil {
				return chk.Err("failed to write data to output file %q: %v", name, err)
			}
		}
	}
	return w.Flush()
}

// WriteRaster writes an (Nx x Ny) grid of "x y v" triples to name, one
// row per line group and a blank line between rows — spec §6's
// "raster output is x y v triples grouped into rows".
func WriteRaster(name string, rows [][]geom.Point, values [][]float64) error {
	f, err := os.Create(name)
	if err != nil {
		return chk.Err("cannot open file %q for writing: %v", name, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for j, row := range rows {
		if j > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return chk.Err("failed to write data to output file %q: %v", name, err)
			}
		}
		for i, p := range row {
			if _, err := fmt.Fprintf(w, "%.6f %.6f %.6f\n", p.X, p.Y, values[j][i]); err != nil {
				return chk.Err("failed to write data to output file %q: %v", name, err)
			}
		}
	}
	return w.Flush()
}
