// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package main

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/chewxy/math32"

	"github.com/Diamboy211/bad-vector-library/linear"
)

func newRand() *rand.Rand { return rand.New(rand.NewPCG(1, ^uint64(1))) }

func TestRunChecks(t *testing.T) {
	var buf bytes.Buffer
	if err := runChecks(&buf, newRand(), 512); err != nil {
		t.Fatalf("runChecks:\n%v\n%s", err, buf.String())
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(checks) {
		t.Fatalf("runChecks: output lines\nhave %d\nwant %d", len(lines), len(checks))
	}
	for i, c := range checks {
		if !strings.HasPrefix(lines[i], c.name+" ") {
			t.Fatalf("runChecks: line %d\nhave %q\nwant prefix %q", i, lines[i], c.name)
		}
		if !strings.HasSuffix(lines[i], " ok") {
			t.Fatalf("runChecks: line %d\nhave %q\nwant suffix %q", i, lines[i], "ok")
		}
	}
}

func TestChecks(t *testing.T) {
	for _, c := range checks {
		worst, err := c.fn(newRand(), 256)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if worst < 0 || math32.IsNaN(worst) {
			t.Fatalf("%s: worst error\nhave %v\nwant >= 0", c.name, worst)
		}
	}
	if worst, _ := checkTranslate(newRand(), 256); worst != 0 {
		t.Fatalf("translate: worst error\nhave %v\nwant 0", worst)
	}
}

func TestTally(t *testing.T) {
	x := tally{what: "test", tol: 1}
	for i, e := range [...]float32{0.5, 3, 0.25, 7, 2} {
		x.add(i, e)
	}
	worst, err := x.result()
	if worst != 7 {
		t.Fatalf("tally.worst\nhave %v\nwant 7", worst)
	}
	if err == nil || !strings.Contains(err.Error(), "sample 1:") {
		t.Fatalf("tally.err\nhave %v\nwant first failure at sample 1", err)
	}

	// A failing sample must not hide later ones,
	// and a zero tolerance fails on any error.
	x = tally{what: "exact"}
	x.add(0, 0)
	x.add(1, 0.125)
	x.add(2, 0)
	x.add(3, 0.5)
	if worst, err := x.result(); worst != 0.5 || err == nil || !strings.Contains(err.Error(), "sample 1:") {
		t.Fatalf("tally (exact)\nhave %v, %v\nwant 0.5, failure at sample 1", worst, err)
	}

	x = tally{what: "nan", tol: 1}
	x.add(0, math32.NaN())
	if worst, err := x.result(); !math32.IsInf(worst, 1) || err == nil {
		t.Fatalf("tally (NaN)\nhave %v, %v\nwant +Inf, failure", worst, err)
	}
}

func TestDiff(t *testing.T) {
	v := linear.V4{1, 2, 3, 4}
	w := linear.V4{1, 2.5, 3, 2}
	if e := diffV(&v, &w); e != 2 {
		t.Fatalf("diffV\nhave %v\nwant 2", e)
	}
	var m, n linear.M4
	m.I()
	n.Translate(0, 0, -3)
	if e := maxDiff(&m, &n); e != 3 {
		t.Fatalf("maxDiff\nhave %v\nwant 3", e)
	}
}
