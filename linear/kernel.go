// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

// Packed reports whether the lane-wise arithmetic of the
// kernel runs on packed SIMD instructions.
// The result does not change during execution.
func Packed() bool { return packed }

// The *Scalar functions are the portable kernel.
// Products and sums are converted to float32 so the
// compiler never fuses them, which keeps the results
// identical to the packed kernel.

func add4Scalar(l, r *V4) (v V4) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
	return
}

func sub4Scalar(l, r *V4) (v V4) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
	return
}

func scale4Scalar(s float32, w *V4) (v V4) {
	for i := range v {
		v[i] = w[i] * s
	}
	return
}

func div4Scalar(w *V4, s float32) (v V4) {
	for i := range v {
		v[i] = w[i] / s
	}
	return
}

func mul4Scalar(l, r *V4) (p V4) {
	for i := range p {
		p[i] = float32(l[i] * r[i])
	}
	return
}

// hsum returns the sum of all lanes of p, added in
// horizontal pairs: (p0 + p1) + (p2 + p3).
func hsum(p V4) float32 {
	lo := float32(p[0] + p[1])
	hi := float32(p[2] + p[3])
	return lo + hi
}
