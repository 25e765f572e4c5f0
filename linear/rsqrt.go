// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"math"

	"github.com/chewxy/math32"
)

// RSqrtErr is the maximum relative error of RSqrt
// for positive, normal inputs.
const RSqrtErr = 1.76e-3

// RSqrt returns an estimate of 1/√x.
//
// The estimate trades precision for speed in the same way
// a hardware reciprocal square root instruction does: an
// initial guess is derived from the bit pattern of x and
// refined by a single Newton-Raphson step. The relative
// error never exceeds RSqrtErr for positive normal x.
//
// RSqrt(0) is +Inf and RSqrt(+Inf) is 0. Negative and NaN
// inputs produce NaN.
func RSqrt(x float32) float32 {
	switch {
	case x == 0:
		return math32.Inf(1)
	case x < 0 || math32.IsNaN(x):
		return math32.NaN()
	case math32.IsInf(x, 1):
		return 0
	}
	y := math.Float32frombits(0x5f3759df - math.Float32bits(x)>>1)
	return y * (1.5 - 0.5*x*y*y)
}
