// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// Q is a quaternion of float32.
// The w lane of V must be zero.
type Q struct {
	V V4
	R float32
}

// Mul sets q to contain the Hamilton product l ⋅ r.
// Rotating by q is the same as rotating by l and then
// by r (see M4.RotateQ).
func (q *Q) Mul(l, r *Q) {
	a, b := *l, *r
	var c V4
	c.Cross(&a.V, &b.V)
	q.V = V4{
		a.R*b.V[0] + b.R*a.V[0] + c[0],
		a.R*b.V[1] + b.R*a.V[1] + c[1],
		a.R*b.V[2] + b.R*a.V[2] + c[2],
	}
	q.R = a.R*b.R - a.V.Dot(&b.V)
}

// Rotate sets q to contain a rotation of angle radians
// about axis. axis need not be of unit length, but it
// must not be zero. Its w lane is ignored.
func (q *Q) Rotate(angle float32, axis *V4) {
	n := V4{axis[0], axis[1], axis[2]}
	s := math32.Sin(angle*0.5) / n.Len()
	q.V.Scale(s, &n)
	q.R = math32.Cos(angle * 0.5)
}
