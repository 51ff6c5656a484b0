// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package streamline implements the bounded gradient follower that
// traces a curve through the potential field, plus the Quadratic
// real-root helper its second-order step correction is built on.
package streamline

import "math"

const eps = 1e-12

// Quadratic returns the real roots of a*x^2+b*x+c=0.
func Quadratic(a, b, c float64) []float64 {
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}
