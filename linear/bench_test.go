// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"testing"

	"github.com/chewxy/math32"
)

func BenchmarkDot(b *testing.B) {
	v := V4{-2, 3, 9, 1}
	w := V4{6, -3, 7, 0}
	var d, e float32
	b.Run("V4.Dot", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			d = v.Dot(&w)
		}
	})
	b.Run("V4.bDotValue", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			e = v.bDotValue(w)
		}
	})
	b.Log(d, e)
}

// v and w passed on the stack.
// Lanes are added in sequence.
func (v V4) bDotValue(w V4) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

func BenchmarkCross(b *testing.B) {
	l := V4{1, 0, 0}
	r := V4{0, 1, 0}
	var v, u V4
	b.Run("V4.Cross", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Cross(&l, &r)
		}
	})
	b.Run("bCrossValue", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			u = bCrossValue(l, r)
		}
	})
	b.Log(v, u)
}

// l, r and v passed on the stack.
func bCrossValue(l, r V4) (v V4) {
	v[0] = l[1]*r[2] - l[2]*r[1]
	v[1] = l[2]*r[0] - l[0]*r[2]
	v[2] = l[0]*r[1] - l[1]*r[0]
	return
}

func BenchmarkNorm(b *testing.B) {
	w := V4{-2, 3, 9, 1}
	var v, u V4
	b.Run("V4.Norm", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Norm(&w)
		}
	})
	b.Run("bNormExact", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			u = bNormExact(w)
		}
	})
	b.Log(v, u)
}

// Divides by the exact length.
func bNormExact(w V4) (v V4) {
	l := math32.Sqrt(w[0]*w[0] + w[1]*w[1] + w[2]*w[2] + w[3]*w[3])
	for i := range v {
		v[i] = w[i] / l
	}
	return
}

func BenchmarkMul(b *testing.B) {
	var m, n, p M4
	m.RotateY(0.5)
	n.Translate(1, 2, 3)
	v := V4{1, 2, 3, 1}
	b.Run("V4.Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Mul(&m, &v)
		}
	})
	b.Run("M4.Mul", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p.Mul(&m, &n)
		}
	})
	b.Run("M4.QuickInvert", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p.QuickInvert(&m)
		}
	})
	b.Log(v, p)
}

func BenchmarkPointAt(b *testing.B) {
	eye := V4{0, 1, -5, 1}
	target := V4{0, 0, 0, 1}
	up := V4{0, 1, 0, 0}
	var m M4
	for i := 0; i < b.N; i++ {
		m.PointAt(&eye, &target, &up)
	}
	b.Log(m)
}
