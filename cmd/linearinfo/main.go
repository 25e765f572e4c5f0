// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Command linearinfo prints the lane class detected for the
// host, whether package linear runs packed or scalar code, and
// checks the numeric contracts of package linear
// against a set of pseudo-random samples.
//
// Usage:
//
//	linearinfo [-n samples] [-seed seed]
//
// It exits with status 1 if any check fails.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"

	"github.com/Diamboy211/bad-vector-library/internal/lanes"
	"github.com/Diamboy211/bad-vector-library/linear"
)

var (
	nsample = flag.Int("n", 4096, "number of samples per check")
	seed    = flag.Uint64("seed", 1, "seed for the sample generator")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("linearinfo: ")
	flag.Parse()
	if *nsample < 1 {
		log.Fatalf("invalid number of samples: %d", *nsample)
	}

	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Println()

	c := lanes.Detect()
	fmt.Printf("Host lane class: %s\n", c)
	fmt.Printf("Host register width: %d bytes\n", c.Width())
	fmt.Printf("Host horizontal add: %v\n", c.HAdd())
	for _, f := range lanes.Features() {
		fmt.Printf("  %-8s %v\n", f.Name+":", f.Has)
	}
	kernel := "scalar"
	if linear.Packed() {
		kernel = "packed (128-bit)"
	}
	fmt.Printf("Kernel: %s\n", kernel)
	fmt.Println()

	rnd := rand.New(rand.NewPCG(*seed, ^*seed))
	if err := runChecks(os.Stdout, rnd, *nsample); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
