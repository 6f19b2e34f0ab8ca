//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/cascade"
	"github.com/markkurossi/cascade/key"
	"github.com/markkurossi/cascade/prng"
	"github.com/markkurossi/cascade/shuffle"
	"github.com/markkurossi/text/superscript"
)

func main() {
	size := flag.Int("size", 32, "key size in bits")
	seed := flag.Int64("seed", 0, "random seed (0 uses system entropy)")
	passes := flag.Int("passes", 4, "number of shuffle passes")
	flips := flag.Int("flips", 2, "bit errors in the noisy key")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	if *size <= 0 {
		log.Fatalf("invalid key size %d", *size)
	}
	if *flips > *size {
		log.Fatalf("%d bit errors do not fit in %d bits", *flips, *size)
	}

	rnd := prng.NewRandomSource()
	if *seed != 0 {
		rnd = prng.NewSource(*seed)
		shuffle.SetSeed(*seed)
	}

	k, err := key.NewRandom(*size, rnd)
	if err != nil {
		log.Fatal(err)
	}
	noisy, err := k.NoisyClone(*flips, rnd)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("key:   %s\n", k)
	fmt.Printf("noisy: %s\n", noisy)

	diff, err := k.Difference(noisy)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("errors: %d\n", diff)
	if *fVerbose {
		if err := cascade.DiffReport(os.Stdout, k, noisy); err != nil {
			log.Fatal(err)
		}
	}

	var last *shuffle.Shuffle
	for i := 1; i <= *passes; i++ {
		s, err := shuffle.New(noisy, shuffle.Random)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("pass%s: %s\n", superscript.Itoa(i), s)
		if *fVerbose {
			cascade.Report(os.Stdout, s)
		}
		last = s
	}
	if last == nil {
		return
	}

	// Fix the noisy key through the last view.
	for pos := 0; pos < *size; pos++ {
		kb, err := k.Bit(pos)
		if err != nil {
			log.Fatal(err)
		}
		nb, err := noisy.Bit(pos)
		if err != nil {
			log.Fatal(err)
		}
		if kb == nb {
			continue
		}
		vpos, err := last.ShuffleIndex(pos)
		if err != nil {
			log.Fatal(err)
		}
		if err := last.FlipBit(vpos); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("fixed key position %d through view position %d\n",
			pos, vpos)
	}

	diff, err = k.Difference(noisy)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("errors after fix: %d\n", diff)
}
