// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package catchment implements the topology layer: a catchment is an
// ordered collection of zones sharing a path pool, plus the
// point-in-zone query and the orientation-marking algorithms that
// classify a zone's components as outer/hole and determine a path's
// natural CCW/CW sense.
package catchment

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
	"github.com/tkeatkaew/parallel-swp-bem-project/pathmodel"
)

// Catchment is an ordered array of zones bounded by MaxZones, a shared
// PathPool bounded by MaxPaths, and PreviousZone — the index of the
// zone the latest in-catchment field query fell in (-1 means none yet).
// The solved Bvv/Bcv themselves are memoized on each zone's Boundary;
// PreviousZone only records the zone. It is written by every query and
// is not safe for concurrent field queries.
type Catchment struct {
	MaxZones     int
	Zones        []*pathmodel.Boundary
	Pool         *pathmodel.PathPool
	PreviousZone int
}

// NewCatchment allocates an empty catchment bounded at maxZones zones
// and maxPaths distinct pooled paths.
func NewCatchment(maxZones, maxPaths int) *Catchment {
	return &Catchment{
		MaxZones:     maxZones,
		Zones:        make([]*pathmodel.Boundary, 0, maxZones),
		Pool:         pathmodel.NewPathPool(maxPaths),
		PreviousZone: -1,
	}
}

// AddZone appends a zone, marking its curve orientation and per-
// component level as it goes (mirroring catchment.c's get_catchment,
// which calls mark_curve then mark_paths immediately after a zone's
// loops are attached).
func (c *Catchment) AddZone(b *pathmodel.Boundary) {
	if len(c.Zones) >= c.MaxZones {
		chk.Panic("error :- only %d zones reserved for catchment, but trying to load more than %d", c.MaxZones, c.MaxZones)
	}
	MarkCurve(b)
	MarkPaths(b)
	c.Zones = append(c.Zones, b)
}

// MaxPointsInAnyZone returns the worst-case per-zone boundary-node
// count N, used to size the catchment's shared bem.FieldVectors scratch.
func (c *Catchment) MaxPointsInAnyZone() int {
	max := 0
	for _, z := range c.Zones {
		if n := z.NumPoints(); n > max {
			max = n
		}
	}
	return max
}

// CheckEachZone scans the catchment in order and returns the index of
// the first zone whose CheckZone(P) succeeds, or -1 if P lies outside
// every zone.
func CheckEachZone(c *Catchment, P geom.Point) int {
	for k, b := range c.Zones {
		if CheckZone(b, P) {
			return k
		}
	}
	return -1
}

// CheckZone reports whether P lies inside every component of the zone
// (after temporarily reverse-orienting the zone to the internal
// convention, then restoring it).
func CheckZone(b *pathmodel.Boundary, P geom.Point) bool {
	b.ReverseZone()
	defer b.ReverseZone()
	for _, p := range b.Components {
		inside, _, _ := DistanceToPath(P, p)
		if !inside {
			return false
		}
	}
	return true
}

// DistanceToPath returns whether P lies inside this_path, the position s
// of P's projection along the winning segment (-0.5 at its start, +0.5
// at its end), and the winning segment index. Among the segments whose
// span contains P's projection, the one nearest P wins if it is nearer
// than the nearest node, and the sign of P's perpendicular offset from
// it decides; otherwise the two segments meeting at the nearest node
// decide together (s is then -0.5 and the index is that node's).
func DistanceToPath(P geom.Point, path *pathmodel.Path) (inside bool, s float64, segment int) {
	n := path.NumPoints()

	Qa := path.XY(0)
	dmin := (Qa.X-P.X)*(Qa.X-P.X) + (Qa.Y-P.Y)*(Qa.Y-P.Y)
	imin := 0
	for i := 1; i < n; i++ {
		Qi := path.XY(i)
		dsq := (Qi.X-P.X)*(Qi.X-P.X) + (Qi.Y-P.Y)*(Qi.Y-P.Y)
		if dsq < dmin {
			dmin = dsq
			imin = i
		}
	}
	dmin = math.Sqrt(dmin)
	s = -0.5
	segment = imin

	foundCrossing := false
	for i := 0; i < n; i++ {
		a := path.XY(i)
		b := path.XY(i + 1)
		x, y1, y2 := geom.ConvertPQ(a, b, P)
		if y1 <= 0.0 && y2 >= 0.0 {
			ax := math.Abs(x)
			if ax < dmin {
				foundCrossing = true
				dmin = ax
				imin = i
			}
		}
	}

	var PminusQdotN float64
	if !foundCrossing {
		a := path.XY(imin + n - 1)
		b := path.XY(imin)
		x, _, _ := geom.ConvertPQ(a, b, P)
		PminusQdotN = -x
		a2 := path.XY(imin)
		b2 := path.XY(imin + 1)
		x2, _, _ := geom.ConvertPQ(a2, b2, P)
		PminusQdotN -= x2
	} else {
		a := path.XY(imin)
		b := path.XY(imin + 1)
		x, y1, y2 := geom.ConvertPQ(a, b, P)
		PminusQdotN = -x
		s = -(y1 + y2) / 2.0 / (y2 - y1)
		segment = imin
	}
	inside = PminusQdotN < 0.0
	return
}
