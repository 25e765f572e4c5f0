// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Diamboy211/bad-vector-library/linear"
)

// Tolerances.
const (
	normTol    = 2e-3
	invTol     = 1e-4
	rotTol     = 2e-6
	composeTol = 1e-5
	fwdTol     = 2e-3
	maxLanes   = 1e3
	maxOffset  = 10
)

// A check runs n samples and returns the largest
// error observed.
type check struct {
	name string
	fn   func(rnd *rand.Rand, n int) (float32, error)
}

var checks = [...]check{
	{"normalize", checkNorm},
	{"quick-invert", checkQuickInvert},
	{"rotate", checkRotate},
	{"translate", checkTranslate},
	{"point-at", checkPointAt},
}

// runChecks runs every check and writes one line per
// check to w. It returns the errors of all failed
// checks joined.
func runChecks(w io.Writer, rnd *rand.Rand, n int) error {
	var errs []error
	for _, c := range checks {
		worst, err := c.fn(rnd, n)
		status := "ok"
		if err != nil {
			status = "FAIL"
			errs = append(errs, err)
		}
		fmt.Fprintf(w, "%-12s worst error %.3e  %s\n", c.name, worst, status)
	}
	return errors.Join(errs...)
}

// A tally records the worst error over the samples of
// a check and the first sample whose error exceeds tol.
// NaN errors always fail.
type tally struct {
	what  string
	tol   float32
	worst float32
	err   error
}

func (t *tally) add(i int, e float32) {
	if math32.IsNaN(e) || e > t.tol {
		if t.err == nil {
			t.err = fmt.Errorf("%s: sample %d: error %g exceeds %g", t.what, i, e, t.tol)
		}
		if math32.IsNaN(e) {
			e = math32.Inf(1)
		}
	}
	t.worst = max(t.worst, e)
}

func (t *tally) result() (float32, error) { return t.worst, t.err }

func randV(rnd *rand.Rand, s float32) (v linear.V4) {
	for i := range v {
		v[i] = (rnd.Float32()*2 - 1) * s
	}
	return
}

func checkNorm(rnd *rand.Rand, n int) (float32, error) {
	t := tally{what: "normalize", tol: normTol}
	for i := 0; i < n; i++ {
		v := randV(rnd, maxLanes)
		v.Norm(&v)
		t.add(i, math32.Abs(v.Len()-1))
	}
	return t.result()
}

func checkQuickInvert(rnd *rand.Rand, n int) (float32, error) {
	t := tally{what: "quick-invert: m ⋅ m⁻¹ vs identity", tol: invTol}
	var id linear.M4
	id.I()
	for i := 0; i < n; i++ {
		var x, y, tr, m, inv, p linear.M4
		x.RotateX(rnd.Float32() * 2 * math32.Pi)
		y.Rotate(rnd.Float32()*2*math32.Pi, &linear.V4{rnd.Float32() + 0.1, rnd.Float32(), rnd.Float32()})
		o := randV(rnd, maxOffset)
		tr.Translate(o[0], o[1], o[2])
		m.Mul(&x, &y)
		m.Mul(&m, &tr)
		inv.QuickInvert(&m)
		p.Mul(&m, &inv)
		t.add(i, maxDiff(&p, &id))
	}
	return t.result()
}

// checkRotate verifies the sign convention of the
// axis rotations, that Rotate agrees with them and
// that quaternion products compose rotations.
func checkRotate(rnd *rand.Rand, n int) (float32, error) {
	var m linear.M4
	var v linear.V4
	quarter := tally{what: "rotate: quarter turn", tol: rotTol}
	for i, x := range [...]struct {
		rot     func(*linear.M4, float32)
		in, out linear.V4
	}{
		{(*linear.M4).RotateX, linear.V4{0, 1, 0, 1}, linear.V4{0, 0, -1, 1}},
		{(*linear.M4).RotateY, linear.V4{0, 0, 1, 1}, linear.V4{-1, 0, 0, 1}},
		{(*linear.M4).RotateZ, linear.V4{1, 0, 0, 1}, linear.V4{0, -1, 0, 1}},
	} {
		x.rot(&m, math32.Pi/2)
		v.Mul(&m, &x.in)
		quarter.add(i, diffV(&v, &x.out))
	}
	if quarter.err != nil {
		return quarter.result()
	}

	t := tally{what: "rotate: axis-angle vs axis rotation", tol: rotTol}
	c := tally{what: "rotate: quaternion product vs matrix product", tol: composeTol}
	axes := [...]linear.V4{{1}, {0, 1}, {0, 0, 1}}
	rots := [...]func(*linear.M4, float32){(*linear.M4).RotateX, (*linear.M4).RotateY, (*linear.M4).RotateZ}
	var r, l linear.M4
	var p, q linear.Q
	for i := 0; i < n; i++ {
		a := (rnd.Float32()*2 - 1) * math32.Pi
		k := i % len(axes)
		rots[k](&m, a)
		r.Rotate(a, &axes[k])
		t.add(i, maxDiff(&m, &r))

		b := (rnd.Float32()*2 - 1) * math32.Pi
		p.Rotate(a, &axes[k])
		q.Rotate(b, &axes[(k+1)%len(axes)])
		l.RotateQ(&q)
		m.Mul(&r, &l)
		p.Mul(&p, &q)
		r.RotateQ(&p)
		c.add(i, maxDiff(&m, &r))
	}
	return max(quarter.worst, t.worst, c.worst), errors.Join(t.err, c.err)
}

// checkTranslate verifies that points move and
// directions do not. Both must be exact.
func checkTranslate(rnd *rand.Rand, n int) (float32, error) {
	t := tally{what: "translate"}
	var m linear.M4
	for i := 0; i < n; i++ {
		o := randV(rnd, maxOffset)
		m.Translate(o[0], o[1], o[2])
		d := randV(rnd, maxOffset)
		d[3] = 0
		var u linear.V4
		u.Mul(&m, &d)
		e := diffV(&u, &d)
		p := linear.V4{3: 1}
		u.Mul(&m, &p)
		o[3] = 1
		t.add(i, max(e, diffV(&u, &o)))
	}
	return t.result()
}

func checkPointAt(rnd *rand.Rand, n int) (float32, error) {
	t := tally{what: "point-at: forward vs target - eye", tol: fwdTol}
	up := linear.V4{0, 1, 0, 0}
	var m linear.M4
	for i := 0; i < n; i++ {
		eye := randV(rnd, maxOffset)
		target := randV(rnd, maxOffset)
		eye[3], target[3] = 1, 1
		var dir linear.V4
		dir.Sub(&target, &eye)
		l := dir.Len()
		if l < 1 || math32.Abs(dir[1]/l) > 0.9 {
			continue
		}
		m.PointAt(&eye, &target, &up)
		f := m.Row(2)
		t.add(i, math32.Abs(f.Dot(&dir)/l-1))
	}
	return t.result()
}

func maxDiff(m, n *linear.M4) (worst float32) {
	for i := range m {
		worst = max(worst, diffV(&m[i], &n[i]))
	}
	return
}

func diffV(v, w *linear.V4) (worst float32) {
	for i := range v {
		worst = max(worst, math32.Abs(v[i]-w[i]))
	}
	return
}
