// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package section implements the Section and Raster sampling grammars
// (`P(i1) = (x1,y1)  P(i2) = (x2,y2)` and its 2-D raster counterpart)
// used to specify a mouth cross-section or a scan grid for the
// area/field drivers.
package section

import (
	"fmt"
	"math"

	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
)

// Section is an equispaced line of N points from P1 to P2; Step is the
// physical spacing between consecutive points.
type Section struct {
	N        int
	P1, P2   geom.Point
	Step     float64
}

// ParseSection parses a "P(i1) = (x1,y1) P(i2) = (x2,y2)" spec string,
// deriving N = i2-i1+1 and Step from the endpoint separation.
func ParseSection(spec string) (*Section, error) {
	var i1, i2 int
	var x1, y1, x2, y2 float64
	_, err := fmt.Sscanf(spec, "P(%d) = (%f,%f) P(%d) = (%f,%f)", &i1, &x1, &y1, &i2, &x2, &y2)
	if err != nil {
		return nil, fmt.Errorf("section: cannot parse %q: %w", spec, err)
	}
	if i2 <= i1 {
		return nil, fmt.Errorf("section: %q has non-increasing index range", spec)
	}
	return NewSection(i2-i1+1, geom.Point{X: x1, Y: y1}, geom.Point{X: x2, Y: y2}), nil
}

// NewSection builds a section of n equispaced points from p1 to p2.
func NewSection(n int, p1, p2 geom.Point) *Section {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	return &Section{N: n, P1: p1, P2: p2, Step: math.Hypot(dx, dy) / float64(n-1)}
}

// XY returns the i-th sample point (0<=i<N), exact at the endpoints
// and linearly interpolated between.
func (s *Section) XY(i int) geom.Point {
	if i == 0 {
		return s.P1
	}
	if i == s.N-1 {
		return s.P2
	}
	n1 := float64(s.N - 1)
	wA, wB := float64(s.N-1-i)/n1, float64(i)/n1
	return geom.Point{X: s.P1.X*wA + s.P2.X*wB, Y: s.P1.Y*wA + s.P2.Y*wB}
}

// Raster is an (Nx x Ny) bilinear sample grid over the rectangle from
// P1 to P2.
type Raster struct {
	Nx, Ny int
	P1, P2 geom.Point
}

// ParseRaster parses a "P(i1,j1) = (x1,y1) P(i2,j2) = (x2,y2)" spec
// string, deriving Nx = i2-i1+1 and Ny = j2-j1+1.
func ParseRaster(spec string) (*Raster, error) {
	var i1, j1, i2, j2 int
	var x1, y1, x2, y2 float64
	_, err := fmt.Sscanf(spec, "P(%d, %d) = (%f, %f) P(%d, %d) = (%f, %f)", &i1, &j1, &x1, &y1, &i2, &j2, &x2, &y2)
	if err != nil {
		return nil, fmt.Errorf("section: cannot parse raster %q: %w", spec, err)
	}
	if i2 <= i1 || j2 <= j1 {
		return nil, fmt.Errorf("section: %q has non-increasing index range", spec)
	}
	return &Raster{Nx: i2 - i1 + 1, Ny: j2 - j1 + 1, P1: geom.Point{X: x1, Y: y1}, P2: geom.Point{X: x2, Y: y2}}, nil
}

// X returns the i-th (0<=i<Nx) column coordinate, exact at the edges.
func (r *Raster) X(i int) float64 {
	if i == 0 {
		return r.P1.X
	}
	if i == r.Nx-1 {
		return r.P2.X
	}
	n1 := float64(r.Nx - 1)
	return (r.P1.X*float64(r.Nx-1-i) + r.P2.X*float64(i)) / n1
}

// Y returns the j-th (0<=j<Ny) row coordinate, exact at the edges.
func (r *Raster) Y(j int) float64 {
	if j == 0 {
		return r.P1.Y
	}
	if j == r.Ny-1 {
		return r.P2.Y
	}
	n1 := float64(r.Ny - 1)
	return (r.P1.Y*float64(r.Ny-1-j) + r.P2.Y*float64(j)) / n1
}
