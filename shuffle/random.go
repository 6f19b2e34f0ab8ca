//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package shuffle

import (
	"sync"

	"github.com/markkurossi/cascade/prng"
)

// The package random source is isolated: it feeds only the random
// permutations of this package and nothing else. It starts seeded
// from system entropy; SetSeed makes later shuffle constructions
// reproducible.
var (
	randomMutex  sync.Mutex
	randomSource = prng.NewRandomSource()
)

// SetSeed replaces the package random source with a deterministic
// one. After a SetSeed call the sequence of random shuffles is fully
// determined by seed: seeding again with the same value replays the
// same constructions. Shuffles created earlier are not affected.
func SetSeed(seed int64) {
	randomMutex.Lock()
	defer randomMutex.Unlock()
	randomSource = prng.NewSource(seed)
}

// Reseed replaces the package random source with a fresh one keyed
// from system entropy, ending any determinism set up with SetSeed.
func Reseed() {
	randomMutex.Lock()
	defer randomMutex.Unlock()
	randomSource = prng.NewRandomSource()
}
