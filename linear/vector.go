// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements 4-lane float32 math for 3D graphics.
//
// Every operation works on fixed [4]float32 lanes. On amd64 hosts
// with AVX, in builds with GOEXPERIMENT=simd, the lane-wise
// arithmetic runs on packed 128-bit instructions; elsewhere it runs
// as portable scalar code. Both produce the same bits (see Packed).
// Results are written through
// the receiver, and a receiver may alias any of the vector inputs
// of the same call: inputs are read in full before the receiver
// is written.
//
// Geometric preconditions (non-zero lengths, rigid matrices) are
// not checked. Violating them yields Inf/NaN or silently wrong
// values rather than an error.
package linear

import (
	"github.com/chewxy/math32"
)

// V4 is a 4-component vector of float32.
// The lanes are x, y, z and w, where w is the homogeneous
// coordinate (1 for points, 0 for directions).
type V4 [4]float32

// Add sets v to contain l + r.
func (v *V4) Add(l, r *V4) { *v = add4(l, r) }

// Sub sets v to contain l - r.
func (v *V4) Sub(l, r *V4) { *v = sub4(l, r) }

// Scale sets v to contain s ⋅ w.
// s is applied to all lanes, w included.
func (v *V4) Scale(s float32, w *V4) { *v = scale4(s, w) }

// Div sets v to contain w / s.
// Division by zero follows IEEE 754.
func (v *V4) Div(w *V4, s float32) { *v = div4(w, s) }

// Dot returns v ⋅ w over all four lanes.
// Callers wanting a 3D dot product must zero the w lane.
func (v *V4) Dot(w *V4) float32 { return hsum(mul4(v, w)) }

// Len returns the length of v.
func (v *V4) Len() float32 { return math32.Sqrt(v.Dot(v)) }

// Norm sets v to contain w normalized.
// It uses the RSqrt estimate, so the length of the result
// is only within RSqrtErr of 1.
// A zero-length w produces Inf/NaN lanes.
func (v *V4) Norm(w *V4) {
	*v = scale4(RSqrt(hsum(mul4(w, w))), w)
}

// Cross sets v to contain l × r.
// Only the x, y and z lanes are used. The w lane of v
// is not modified.
func (v *V4) Cross(l, r *V4) {
	a, b := *l, *r
	v[0] = a[1]*b[2] - a[2]*b[1]
	v[1] = a[2]*b[0] - a[0]*b[2]
	v[2] = a[0]*b[1] - a[1]*b[0]
}

// Mul sets v to contain the product of m and w.
// Each lane is the dot product of w with the
// corresponding lane group of m, that is,
//
//	v[i] = m[i] ⋅ w
//
// The four dot products are computed before v is
// written, so v may alias w. v must not alias m.
func (v *V4) Mul(m *M4, w *V4) {
	var u V4
	for i := range u {
		u[i] = hsum(mul4(&m[i], w))
	}
	*v = u
}
