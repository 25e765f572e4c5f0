// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"github.com/chewxy/math32"
)

// M4 is a 4x4 matrix of float32.
//
// Matrices are written (see Set) with one basis vector per
// row and the translation in the last row, and vectors are
// multiplied on the left. M4 stores the written rows
// transposed, so that m[i] holds the i-th component of every
// written row and V4.Mul reduces to four lane-wise dot
// products:
//
//	| a1 a2 a3 a4 |      m[0] = [a1 b1 c1 d1]
//	| b1 b2 b3 b4 |  ->  m[1] = [a2 b2 c2 d2]
//	| c1 c2 c3 c4 |      m[2] = [a3 b3 c3 d3]
//	| d1 d2 d3 d4 |      m[3] = [a4 b4 c4 d4]
type M4 [4]V4

// Set sets the elements of m from its written rows.
func (m *M4) Set(
	a1, a2, a3, a4,
	b1, b2, b3, b4,
	c1, c2, c3, c4,
	d1, d2, d3, d4 float32) {

	m[0] = V4{a1, b1, c1, d1}
	m[1] = V4{a2, b2, c2, d2}
	m[2] = V4{a3, b3, c3, d3}
	m[3] = V4{a4, b4, c4, d4}
}

// Row returns the i-th written row of m.
func (m *M4) Row(i int) V4 { return V4{m[0][i], m[1][i], m[2][i], m[3][i]} }

// I makes m an identity matrix.
func (m *M4) I() { m.Scale(1, 1, 1) }

// Mul sets m to contain the composition of l and r.
// Transforming a vector by m is the same as transforming
// it by l and then by r.
func (m *M4) Mul(l, r *M4) {
	var p M4
	for i := range p {
		for j := range p {
			for k := range p {
				p[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = p
}

// Transpose sets m to contain the transpose of n.
// After the call, m[i] holds the i-th written row of n.
func (m *M4) Transpose(n *M4) {
	var t M4
	for i := range t {
		t[i] = n.Row(i)
	}
	*m = t
}

// RotateX sets m to contain a rotation of angle
// radians about the x axis.
func (m *M4) RotateX(angle float32) {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m.Set(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1)
}

// RotateY sets m to contain a rotation of angle
// radians about the y axis.
func (m *M4) RotateY(angle float32) {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m.Set(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1)
}

// RotateZ sets m to contain a rotation of angle
// radians about the z axis.
func (m *M4) RotateZ(angle float32) {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m.Set(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1)
}

// RotateQ sets m to contain the rotation described by
// the unit quaternion q.
// It agrees with RotateX, RotateY and RotateZ when q
// is a rotation about one of the coordinate axes.
func (m *M4) RotateQ(q *Q) {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.R
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	xw, yw, zw := x*w, y*w, z*w
	m.Set(
		1-2*(yy+zz), 2*(xy-zw), 2*(xz+yw), 0,
		2*(xy+zw), 1-2*(xx+zz), 2*(yz-xw), 0,
		2*(xz-yw), 2*(yz+xw), 1-2*(xx+yy), 0,
		0, 0, 0, 1)
}

// Rotate sets m to contain a rotation of angle radians
// about axis. The w lane of axis is ignored.
func (m *M4) Rotate(angle float32, axis *V4) {
	var q Q
	q.Rotate(angle, axis)
	m.RotateQ(&q)
}

// Translate sets m to contain a translation.
// Only vectors whose w lane is non-zero are affected.
func (m *M4) Translate(x, y, z float32) {
	m.Set(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1)
}

// Scale sets m to contain a scale.
func (m *M4) Scale(x, y, z float32) {
	m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1)
}

// Perspective sets m to contain a perspective projection.
// Once the result of V4.Mul is divided by its w lane,
// depth znear maps to 0 and depth zfar maps to 1.
func (m *M4) Perspective(yfov, aspect, znear, zfar float32) {
	f := 1 / math32.Tan(yfov*0.5)
	q := zfar / (zfar - znear)
	m.Set(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, q, 1,
		0, 0, -znear*q, 0)
}

// QuickInvert sets m to contain the inverse of n,
// provided that n is a rigid transform.
// The upper 3x3 block of n must be orthonormal. This is
// not checked: a matrix with scale or shear produces a
// result that is not its inverse.
func (m *M4) QuickInvert(n *M4) {
	// The written basis rows of n, as stored in t[0:3],
	// are the stored rows of the inverse.
	var t M4
	t.Transpose(n)
	d := t[3]
	d[3] = 0
	for i := range 3 {
		t[i][3] = 0
		t[i][3] = -d.Dot(&t[i])
	}
	t[3] = V4{3: 1}
	*m = t
}

// PointAt sets m to contain a transform that places an
// object at target, facing away from eye.
// The basis rows are right, up and forward, in that
// order, and the last row holds target.
// up need not be orthogonal to the viewing direction,
// but it must not be parallel to it.
func (m *M4) PointAt(eye, target, up *V4) {
	var f, u, r, a V4
	f.Sub(target, eye)
	f.Norm(&f)
	a.Scale(up.Dot(&f), &f)
	u.Sub(up, &a)
	u.Norm(&u)
	r.Cross(&u, &f)
	m.Set(
		r[0], r[1], r[2], 0,
		u[0], u[1], u[2], 0,
		f[0], f[1], f[2], 0,
		target[0], target[1], target[2], 1)
}
