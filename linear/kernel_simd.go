// Copyright 2022 Gustavo C. Viegas. All rights reserved.

//go:build amd64 && goexperiment.simd

package linear

import (
	"simd/archsimd"

	"github.com/Diamboy211/bad-vector-library/internal/lanes"
)

// 128-bit archsimd operations are VEX encoded,
// so AVX is required.
var packed = lanes.Detect() == lanes.AVX && archsimd.X86.AVX()

func load(v *V4) archsimd.Float32x4 { return archsimd.LoadFloat32x4Slice(v[:]) }

func splat(s float32) archsimd.Float32x4 {
	b := [4]float32{s, s, s, s}
	return archsimd.LoadFloat32x4Slice(b[:])
}

func store(x archsimd.Float32x4) (v V4) {
	x.StoreSlice(v[:])
	return
}

func add4(l, r *V4) V4 {
	if !packed {
		return add4Scalar(l, r)
	}
	return store(load(l).Add(load(r)))
}

func sub4(l, r *V4) V4 {
	if !packed {
		return sub4Scalar(l, r)
	}
	return store(load(l).Sub(load(r)))
}

func scale4(s float32, w *V4) V4 {
	if !packed {
		return scale4Scalar(s, w)
	}
	return store(load(w).Mul(splat(s)))
}

func div4(w *V4, s float32) V4 {
	if !packed {
		return div4Scalar(w, s)
	}
	return store(load(w).Div(splat(s)))
}

// mul4 multiplies lane-wise. The reduction that
// follows it (hsum) stays scalar so that the
// pairing is the same on every path.
func mul4(l, r *V4) V4 {
	if !packed {
		return mul4Scalar(l, r)
	}
	return store(load(l).Mul(load(r)))
}
