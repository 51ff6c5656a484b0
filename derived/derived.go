// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package derived implements the catchment's downstream physical
// quantities as pure functions of the field triple (V, grad V, sec
// grad V) that bem.CalculateInsideCatchment produces: flow velocity,
// current density, ponding depth and travel-time risk.
package derived

import (
	"math"

	"github.com/tkeatkaew/parallel-swp-bem-project/geom"
)

// waterDensity is rho, the density of water at 25 degrees Celsius.
const waterDensity = 997.0

// Conductivity is the hydraulic conductivity at P. The original's
// impedance.c (a spatially-varying conductivity model) did not survive
// in the retrieved source pack, so this is a unit constant — the same
// simplification spec §5 names explicitly for current density.
func Conductivity(P geom.Point) float64 {
	return 1.0
}

// Rainfall is the rainfall intensity at P. The original's rain.c did
// not survive in the retrieved source pack; as with Conductivity, this
// is a unit constant standing in for a spatially-varying model.
func Rainfall(P geom.Point) float64 {
	return 1.0
}

// Velocity is the flow speed at P given the local gradient gradV:
// Conductivity(P) * sqrt(|gradV|^2 / (1+|gradV|^2)), the bounded (never
// exceeds Conductivity(P)) Darcy-like speed law flow.c uses.
func Velocity(P geom.Point, gradV geom.Point) float64 {
	gradSq := gradV.X*gradV.X + gradV.Y*gradV.Y
	return Conductivity(P) * math.Sqrt(gradSq/(1.0+gradSq))
}

// CurrentDensity is the mass flux at P: density * Velocity(P,gradV).
func CurrentDensity(P geom.Point, gradV geom.Point) float64 {
	return waterDensity * Velocity(P, gradV)
}

// Depth is the accumulated ponding depth at the end of an
// arcLength-long streamline arriving at P with local gradient gradV:
// Rainfall(P)*arcLength/v, or zero when the flow has stalled (v<=0).
func Depth(P geom.Point, arcLength float64, gradV geom.Point) float64 {
	v := Velocity(P, gradV)
	if v <= 0.0 {
		return 0.0
	}
	return Rainfall(P) * arcLength / v
}

// Risk is the travel-time-to-speed ratio arcLength/v for a streamline
// of length arcLength ending at a point with speed v, or zero when the
// flow has stalled (v<=0) — risk.c's arrival-risk heuristic.
func Risk(arcLength, v float64) float64 {
	if v <= 0.0 {
		return 0.0
	}
	return arcLength / v
}
