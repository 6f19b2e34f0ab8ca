//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package shuffle

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/cascade/prng"
)

var (
	// ErrNilKey is returned when a shuffle is created without a key.
	ErrNilKey = errors.New("shuffle: nil key")

	// ErrInvalidPolicy is returned when a shuffle is created with an
	// unknown policy.
	ErrInvalidPolicy = errors.New("shuffle: invalid policy")

	// ErrNilRandom is returned when a shuffle is created without a
	// random source.
	ErrNilRandom = errors.New("shuffle: nil random source")

	// ErrIndexOutOfRange is returned when a shuffle position is
	// outside the shuffled key.
	ErrIndexOutOfRange = errors.New("shuffle: index out of range")
)

// Policy selects how a new shuffle orders the key bits.
type Policy int

// Shuffle policies.
const (
	// Identity keeps the key bits in their original order.
	Identity Policy = iota

	// Random orders the key bits by a uniformly random permutation.
	Random
)

func (p Policy) String() string {
	switch p {
	case Identity:
		return "identity"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Key is the bit-addressable key a shuffle reorders. The key
// validates bit positions and values itself: positions must be in
// [0, Size()) and bit values 0 or 1.
type Key interface {
	Size() int
	Bit(index int) (int, error)
	SetBit(index, bit int) error
	FlipBit(index int) error
}

// Shuffle is a reordered view of a key. It never copies or moves the
// key bits; it keeps a bijective mapping between shuffle positions
// and key positions and routes all bit access through the mapping.
// The mapping is fixed for the lifetime of the shuffle. Several
// shuffles can view the same key independently.
type Shuffle struct {
	key       Key
	toKey     []int
	toShuffle []int
}

// New creates a shuffle of key according to policy. Random
// permutations are drawn from the package random source.
func New(key Key, policy Policy) (*Shuffle, error) {
	randomMutex.Lock()
	defer randomMutex.Unlock()
	return NewWithRandom(key, policy, randomSource)
}

// NewWithRandom creates a shuffle of key according to policy,
// drawing random permutations from rnd. The caller keeps control of
// determinism: two equal-size shuffles created from equally-seeded
// sources have the same mapping.
func NewWithRandom(key Key, policy Policy, rnd io.Reader) (*Shuffle, error) {
	if key == nil {
		return nil, ErrNilKey
	}
	if rnd == nil {
		return nil, ErrNilRandom
	}
	size := key.Size()
	if size < 0 {
		return nil, fmt.Errorf("shuffle: key reports size %d", size)
	}
	toKey := make([]int, size)
	for i := range toKey {
		toKey[i] = i
	}
	switch policy {
	case Identity:

	case Random:
		err := prng.Shuffle(rnd, size, func(i, j int) {
			toKey[i], toKey[j] = toKey[j], toKey[i]
		})
		if err != nil {
			return nil, fmt.Errorf("shuffle: permutation: %w", err)
		}

	default:
		return nil, ErrInvalidPolicy
	}
	toShuffle := make([]int, size)
	for i, k := range toKey {
		toShuffle[k] = i
	}
	return &Shuffle{
		key:       key,
		toKey:     toKey,
		toShuffle: toShuffle,
	}, nil
}

// Size returns the number of bits in the shuffled key.
func (s *Shuffle) Size() int {
	return len(s.toKey)
}

// Bit returns the key bit value at the given shuffle position.
func (s *Shuffle) Bit(index int) (int, error) {
	if index < 0 || index >= len(s.toKey) {
		return 0, ErrIndexOutOfRange
	}
	return s.key.Bit(s.toKey[index])
}

// SetBit sets the key bit at the given shuffle position to bit,
// which must be 0 or 1.
func (s *Shuffle) SetBit(index, bit int) error {
	if index < 0 || index >= len(s.toKey) {
		return ErrIndexOutOfRange
	}
	return s.key.SetBit(s.toKey[index], bit)
}

// FlipBit inverts the key bit at the given shuffle position.
func (s *Shuffle) FlipBit(index int) error {
	if index < 0 || index >= len(s.toKey) {
		return ErrIndexOutOfRange
	}
	return s.key.FlipBit(s.toKey[index])
}

// KeyIndex returns the key position that the given shuffle position
// maps to.
func (s *Shuffle) KeyIndex(index int) (int, error) {
	if index < 0 || index >= len(s.toKey) {
		return 0, ErrIndexOutOfRange
	}
	return s.toKey[index], nil
}

// ShuffleIndex returns the shuffle position that maps to the given
// key position.
func (s *Shuffle) ShuffleIndex(keyIndex int) (int, error) {
	if keyIndex < 0 || keyIndex >= len(s.toShuffle) {
		return 0, ErrIndexOutOfRange
	}
	return s.toShuffle[keyIndex], nil
}

// String returns the key bit values in shuffle-position order,
// position 0 first.
func (s *Shuffle) String() string {
	var sb strings.Builder
	for _, k := range s.toKey {
		bit, err := s.key.Bit(k)
		if err != nil {
			sb.WriteByte('?')
			continue
		}
		sb.WriteByte('0' + byte(bit))
	}
	return sb.String()
}

// MappingString returns the full mapping with bit values, one
// shuffle->key=bit entry per position, space-separated, in
// shuffle-position order.
func (s *Shuffle) MappingString() string {
	var sb strings.Builder
	for i, k := range s.toKey {
		if i > 0 {
			sb.WriteByte(' ')
		}
		bit, err := s.key.Bit(k)
		if err != nil {
			fmt.Fprintf(&sb, "%d->%d=?", i, k)
			continue
		}
		fmt.Fprintf(&sb, "%d->%d=%d", i, k, bit)
	}
	return sb.String()
}
