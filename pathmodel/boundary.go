// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pathmodel

// Orientation enumerates the canonical sense in which a zone's boundary
// lies to the left of a traversal.
type Orientation int

const (
	CCW Orientation = 0
	CW  Orientation = 1
)

// Level flags a boundary component: Outer separates the zone from
// infinity, Hole is enclosed by the zone.
const (
	Outer = 0
	Hole  = 1
)

// Boundary is a zone: a set of closed paths forming the boundary of one
// region between contour levels.
type Boundary struct {
	Orientation Orientation
	Components  []*Path
	Level       []int // per-component: Outer(0) or Hole(1)

	// Bvv/Bcv are the memoized boundary voltage/current vectors
	// (Chebyshev-basis coefficients), lengths 2*NumPoints and
	// 4*NumPoints respectively. nil until the first solve.
	Bvv, Bcv []float64
}

// NewBoundary allocates a zone with n (as yet unset) components.
func NewBoundary(n int) *Boundary {
	return &Boundary{
		Components: make([]*Path, n),
		Level:      make([]int, n),
	}
}

// NumPoints returns the total boundary-node count N, the sum of
// NumPoints across every component.
func (b *Boundary) NumPoints() int {
	n := 0
	for _, p := range b.Components {
		if p != nil {
			n += p.NumPoints()
		}
	}
	return n
}

// ReverseAllPaths toggles the reverse flag on every component,
// regardless of level — used by CountPaths while testing a clockwise
// zone's enclosure relationships.
func (b *Boundary) ReverseAllPaths() {
	for _, p := range b.Components {
		p.ReverseInPlace()
	}
}

// ReverseZone toggles the reverse flag on exactly the components whose
// level disagrees with the zone's own orientation — the scoped
// "internal convention" flip the boundary solver and CheckZone both
// require before touching path geometry, undone by calling ReverseZone
// a second time.
func (b *Boundary) ReverseZone() {
	zoneType := int(b.Orientation)
	for i, p := range b.Components {
		pathType := b.Level[i]
		if (zoneType == 0 && pathType == 1) || (zoneType == 1 && pathType == 0) {
			p.ReverseInPlace()
		}
	}
}

// InvalidateSolve clears the memoized boundary vectors, forcing the
// next CalculateInsideCatchment on this zone to resolve.
func (b *Boundary) InvalidateSolve() {
	b.Bvv = nil
	b.Bcv = nil
}
