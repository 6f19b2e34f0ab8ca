//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package shuffle implements reordered views of binary keys for
// Cascade-style error reconciliation.
//
// After the quantum phase of a QKD protocol such as BB84, the two
// parties hold nearly identical keys. Reconciliation protocols of
// the Cascade family compare block parities over several passes, and
// each pass must see the key bits in a new order so that the
// remaining errors land in different blocks. The Shuffle type
// provides that order as a view: it never copies or moves the key
// bits, it only keeps a bijective mapping between shuffle positions
// and key positions. Reads and writes through the view reach the
// underlying key at the mapped position, so a bit corrected through
// one view is corrected for every view of the same key.
//
// A shuffle is created with one of two policies. Identity maps every
// position to itself. Random draws a uniformly distributed
// permutation with the Fisher-Yates algorithm; every permutation of
// the key positions is equally likely. The permutation comes from a
// package random source that feeds nothing else, and SetSeed makes
// the sequence of constructions reproducible for experiments:
//
//	k, err := key.Parse("1011")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	shuffle.SetSeed(42)
//	s, err := shuffle.New(k, shuffle.Random)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Printf("bits:    %s\n", s)
//	fmt.Printf("mapping: %s\n", s.MappingString())
//
// Alternatively NewWithRandom takes an explicit random source, for
// callers that manage determinism themselves or construct shuffles
// from several goroutines with one source each.
//
// All operations are synchronous in-memory computations. The package
// does no internal locking around key access: a key shared between
// views or with the driving protocol must be serialized externally
// when written concurrently.
package shuffle
