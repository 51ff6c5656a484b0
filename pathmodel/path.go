// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package pathmodel implements the oriented-polyline and nested-zone
// types the catchment topology and BEM assembly are built on: Path (an
// immutable node sequence with a lazy reverse flag), PathPool (a
// bounded, filename-keyed, insertion-ordered set of shared paths) and
// Boundary (a zone: an ordered set of closed paths plus orientation and
// per-component level).
package pathmodel

import "github.com/tkeatkaew/parallel-swp-bem-project/geom"

// Path is an ordered sequence of N points and N scalar node values
// (the potential at each node), plus two orientation flags: Reverse (a
// lazy flip of traversal direction) and Close (every loop in this
// system is implicitly closed, so Close is always true once loaded).
// Paths are immutable after Load; Reverse permits a zero-copy
// orientation flip. Indexing is modulo N; when reversed, index i reads
// node N-1-i.
type Path struct {
	Filename string
	xy       []geom.Point
	value    []float64
	reverse  bool
	close    bool
}

// NewPath allocates a path with n nodes, identified by filename (two
// paths loaded from the same filename share one Path instance via the
// owning PathPool).
func NewPath(filename string, n int) *Path {
	return &Path{
		Filename: filename,
		xy:       make([]geom.Point, n),
		value:    make([]float64, n),
		close:    true,
	}
}

// NumPoints returns the number of boundary nodes (and segments, since
// every path is implicitly closed).
func (p *Path) NumPoints() int {
	return len(p.xy)
}

// Reversed reports whether the path is currently traversed in reverse.
func (p *Path) Reversed() bool {
	return p.reverse
}

// ReverseInPlace toggles the lazy reverse flag.
func (p *Path) ReverseInPlace() {
	p.reverse = !p.reverse
}

func (p *Path) index(i int) int {
	n := len(p.xy)
	i = ((i % n) + n) % n
	if p.reverse {
		return n - 1 - i
	}
	return i
}

// XY returns the (x,y) coordinate of node i, honoring Reverse and
// wrapping modulo NumPoints.
func (p *Path) XY(i int) geom.Point {
	return p.xy[p.index(i)]
}

// Value returns the potential at node i, honoring Reverse and wrapping
// modulo NumPoints.
func (p *Path) Value(i int) float64 {
	return p.value[p.index(i)]
}

// SetXY writes node i's coordinate. Only used while loading.
func (p *Path) SetXY(i int, xy geom.Point) {
	p.xy[p.index(i)] = xy
}

// SetValue writes node i's potential. Only used while loading.
func (p *Path) SetValue(i int, v float64) {
	p.value[p.index(i)] = v
}

// ScaleValues multiplies every node's potential by s; used to check the
// field-linearity property (doubling node potentials doubles the
// field) without mutating the underlying geometry.
func (p *Path) ScaleValues(s float64) {
	for i := range p.value {
		p.value[i] *= s
	}
}
