// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"
)

func TestConvertPQAxisAligned(t *testing.T) {
	Qa := Point{0, 0}
	Qb := Point{1, 0}
	P := Point{0.5, 0.5}
	x, y1, y2 := ConvertPQ(Qa, Qb, P)
	if math.Abs(x-(-0.5)) > 1e-12 {
		t.Fatalf("x: got %v want -0.5", x)
	}
	if math.Abs(y1-(-0.5)) > 1e-12 {
		t.Fatalf("y1: got %v want -0.5", y1)
	}
	if math.Abs(y2-0.5) > 1e-12 {
		t.Fatalf("y2: got %v want 0.5", y2)
	}
}

func TestRotateRoundTrip(t *testing.T) {
	Qa := Point{1, 1}
	Qb := Point{4, 5}
	P := Point{2, 7}
	x, y1, _ := ConvertPQ(Qa, Qb, P)
	R := RotateToPQ(x, y1, Qa, Qb)
	// RotateToPQ(x,y) should map the local offset Qa-P back to itself.
	want := Point{Qa.X - P.X, Qa.Y - P.Y}
	if math.Abs(R.X-want.X) > 1e-9 || math.Abs(R.Y-want.Y) > 1e-9 {
		t.Fatalf("rotate round trip: got %+v want %+v", R, want)
	}
}

func TestAtan3ZeroOffset(t *testing.T) {
	// At x=0 with y1<0<y2 the field point lies on the segment and the
	// subtended angle is the full half turn, pi.
	if got := Atan3(1, -1, 0); math.Abs(got-math.Pi) > 1e-12 {
		t.Fatalf("Atan3 on-segment should be pi at x=0: got %v", got)
	}
}

func TestAtanvRightAngle(t *testing.T) {
	P := Point{0, 0}
	Q1 := Point{1, 0}
	Q2 := Point{0, 1}
	got := Atanv(Q1, Q2, P)
	want := math.Pi / 2
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("Atanv: got %v want %v", got, want)
	}
}

func TestDoubleRotateIdentityOnAlignedSegment(t *testing.T) {
	// Segment along the global y-axis: the local y-axis is the segment
	// direction (0,1) and the local x-axis is (yv,-yu) = (1,0), so the
	// local frame == global frame and DoubleRotateToPQ must be the
	// identity map.
	Qa := Point{0, 0}
	Qb := Point{0, 1}
	tn := Tensor2{A00: 1, A01: 2, A10: 3, A11: 4}
	got := DoubleRotateToPQ(tn, Qa, Qb)
	if math.Abs(got.A00-tn.A00) > 1e-12 || math.Abs(got.A01-tn.A01) > 1e-12 ||
		math.Abs(got.A10-tn.A10) > 1e-12 || math.Abs(got.A11-tn.A11) > 1e-12 {
		t.Fatalf("double rotate identity: got %+v want %+v", got, tn)
	}
}
