// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package lanes identifies the class of 4-wide float32
// instructions that the host provides.
//
// Package linear runs its lane-wise arithmetic on packed
// instructions only when the class is AVX and the build
// has GOEXPERIMENT=simd on amd64. On every other class it
// runs portable scalar code. The results are the same.
package lanes

import (
	"os"
	"strconv"
	"sync"
)

// NoSIMD is the environment variable that, when set to a
// true value, forces Detect to report Generic.
const NoSIMD = "LINEAR_NO_SIMD"

// Class is a class of 4-lane float32 instructions.
type Class int

// Classes.
const (
	Generic Class = iota
	SSE2
	SSE3
	AVX
	ASIMD
)

var names = [...]string{
	Generic: "generic",
	SSE2:    "sse2",
	SSE3:    "sse3",
	AVX:     "avx",
	ASIMD:   "asimd",
}

// String implements fmt.Stringer.
func (c Class) String() string {
	if c < 0 || int(c) >= len(names) {
		return "Class(" + strconv.Itoa(int(c)) + ")"
	}
	return names[c]
}

// Width returns the register width used for one vector,
// in bytes. Every class holds four float32 lanes.
func (c Class) Width() int { return 16 }

// HAdd returns whether the class provides a horizontal
// pairwise add instruction.
func (c Class) HAdd() bool { return c >= SSE3 && c <= ASIMD }

// Feature is a named CPU feature flag.
type Feature struct {
	Name string
	Has  bool
}

var detected = sync.OnceValue(func() Class { return detect(os.Getenv) })

// Detect returns the class of the host.
// The result is computed once.
func Detect() Class { return detected() }

// Features returns the raw CPU flags that Detect inspects.
func Features() []Feature { return hostFeatures() }

func detect(getenv func(string) string) Class {
	if off, err := strconv.ParseBool(getenv(NoSIMD)); err == nil && off {
		return Generic
	}
	return classOf(hostFeatures())
}

// classOf picks the best class whose flag is set.
func classOf(f []Feature) Class {
	c := Generic
	for _, x := range f {
		if !x.Has {
			continue
		}
		var y Class
		switch x.Name {
		case "sse2":
			y = SSE2
		case "sse3":
			y = SSE3
		case "avx":
			y = AVX
		case "asimd":
			y = ASIMD
		default:
			continue
		}
		if y > c {
			c = y
		}
	}
	return c
}
