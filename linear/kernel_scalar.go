// Copyright 2022 Gustavo C. Viegas. All rights reserved.

//go:build !amd64 || !goexperiment.simd

package linear

const packed = false

func add4(l, r *V4) V4 { return add4Scalar(l, r) }

func sub4(l, r *V4) V4 { return sub4Scalar(l, r) }

func scale4(s float32, w *V4) V4 { return scale4Scalar(s, w) }

func div4(w *V4, s float32) V4 { return div4Scalar(w, s) }

func mul4(l, r *V4) V4 { return mul4Scalar(l, r) }
