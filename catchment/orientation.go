// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catchment

import (
	"github.com/cpmech/gosl/chk"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/pathmodel"
)

// MarkCurve sets b.Orientation to the common CCW/CW sense of every
// component path; a mix of senses is a topology error.
func MarkCurve(b *pathmodel.Boundary) {
	clockwise := 0
	for _, p := range b.Components {
		clockwise += FindOrientation(p)
	}
	switch clockwise {
	case len(b.Components):
		b.Orientation = pathmodel.CW
	case 0:
		b.Orientation = pathmodel.CCW
	default:
		chk.Panic("zone has mixed clockwise and anti-clockwise paths")
	}
}

// FindOrientation returns 0 (CCW) or 1 (CW): a point strictly outside
// the path's bounding box is constructed and tested via DistanceToPath;
// if that exterior point is excluded, the path is CCW, otherwise CW.
func FindOrientation(p *pathmodel.Path) int {
	min, max := FindLimits(p)
	exterior := geom.Point{
		X: (3.0*min.X - max.X) / 2.0,
		Y: (3.0*min.Y - max.Y) / 2.0,
	}
	inside, _, _ := DistanceToPath(exterior, p)
	if !inside {
		return 0 // excluded: path is normal (anti-clockwise)
	}
	return 1 // included: path must be reversed (clockwise)
}

// FindLimits returns the axis-aligned bounding box of p.
func FindLimits(p *pathmodel.Path) (min, max geom.Point) {
	first := p.XY(0)
	min, max = first, first
	n := p.NumPoints()
	for i := 1; i < n; i++ {
		q := p.XY(i)
		if q.X < min.X {
			min.X = q.X
		} else if q.X > max.X {
			max.X = q.X
		}
		if q.Y < min.Y {
			min.Y = q.Y
		} else if q.Y > max.Y {
			max.Y = q.Y
		}
	}
	return
}

// MarkPaths assigns b.Level[i] for every component: the sole path
// enclosed by zero others is Outer (0); all remaining components are
// Hole (1). More than one outer path, or an outer+hole count that
// doesn't cover every component, is a topology error.
func MarkPaths(b *pathmodel.Boundary) {
	for i := range b.Level {
		b.Level[i] = pathmodel.Hole // assume all paths are inside (hole) until proven outer
	}
	outerIdx, outside, inside := CountPaths(b)
	switch {
	case outside == 1:
		b.Level[outerIdx] = pathmodel.Outer
	case outside > 1:
		chk.Panic("error :- more than 1 paths outside zone")
	}
	if outside+inside != len(b.Components) {
		chk.Panic("error :- outside + inside paths for zone not same as total")
	}
}

// CountPaths counts, for each component, how many of the zone's other
// components it encloses (tested on each other component's first node):
// a component enclosing all the others is the unique outer path (index
// returned as outerIdx, outside=1); a component enclosing none is a
// hole. More than one outer path is a topology error.
func CountPaths(b *pathmodel.Boundary) (outerIdx, outside, inside int) {
	n := len(b.Components)
	outerIdx = -1

	if n == 1 {
		if b.Orientation == pathmodel.CCW {
			outside, outerIdx = 1, 0
		} else {
			inside = 1
		}
		return
	}

	if b.Orientation == pathmodel.CW {
		b.ReverseAllPaths()
	}
	for j, thisPath := range b.Components {
		enclosed := 0
		for i, other := range b.Components {
			if i == j {
				continue
			}
			p := other.XY(0)
			if in, _, _ := DistanceToPath(p, thisPath); in {
				enclosed++
			}
		}
		if enclosed == 0 {
			inside++
		}
		if enclosed == n-1 {
			outside++
			outerIdx = j
		}
	}
	if b.Orientation == pathmodel.CW {
		b.ReverseAllPaths()
	}

	if outside > 1 {
		chk.Panic("error :- found more than 1 path outside zone")
	}
	return
}
