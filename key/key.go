//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package key implements fixed-size binary keys with bit-level
// addressing.
package key

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/markkurossi/cascade/prng"
)

var (
	// ErrInvalidSize is returned when a key is created with a
	// negative size.
	ErrInvalidSize = errors.New("key: invalid size")

	// ErrInvalidBit is returned when a bit value is not 0 or 1.
	ErrInvalidBit = errors.New("key: invalid bit value")

	// ErrIndexOutOfRange is returned when a bit position is outside
	// the key.
	ErrIndexOutOfRange = errors.New("key: index out of range")

	// ErrNilKey is returned when an operation needs a key that was
	// not given.
	ErrNilKey = errors.New("key: nil key")

	// ErrNilRandom is returned when a randomized operation is called
	// without a random source.
	ErrNilRandom = errors.New("key: nil random source")

	// ErrSizeMismatch is returned when an operation combines keys of
	// different sizes.
	ErrSizeMismatch = errors.New("key: size mismatch")
)

// Key is a fixed-size sequence of bits. The size is set at creation
// and never changes. Bits are addressed by zero-based position. A
// Key does no internal locking; concurrent writers must coordinate
// access externally.
type Key struct {
	bits *big.Int
	size int
}

// New creates an all-zero key of size bits.
func New(size int) (*Key, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	return &Key{
		bits: new(big.Int),
		size: size,
	}, nil
}

// NewRandom creates a key of size bits drawn uniformly from rnd.
func NewRandom(size int, rnd io.Reader) (*Key, error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	if rnd == nil {
		return nil, ErrNilRandom
	}
	buf := make([]byte, (size+7)/8)
	if _, err := io.ReadFull(rnd, buf); err != nil {
		return nil, fmt.Errorf("key: random bits: %w", err)
	}
	key := &Key{
		bits: new(big.Int),
		size: size,
	}
	for i := 0; i < size; i++ {
		key.bits.SetBit(key.bits, i, uint(buf[i/8]>>(i%8))&1)
	}
	return key, nil
}

// Parse creates a key from a string of '0' and '1' characters. The
// first character becomes bit position 0.
func Parse(s string) (*Key, error) {
	key := &Key{
		bits: new(big.Int),
		size: len(s),
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			key.bits.SetBit(key.bits, i, 1)
		default:
			return nil, fmt.Errorf("%w: %q at position %d",
				ErrInvalidBit, s[i], i)
		}
	}
	return key, nil
}

// Size returns the number of bits in the key.
func (k *Key) Size() int {
	return k.size
}

// Bit returns the bit value at the given position.
func (k *Key) Bit(index int) (int, error) {
	if index < 0 || index >= k.size {
		return 0, ErrIndexOutOfRange
	}
	return int(k.bits.Bit(index)), nil
}

// SetBit sets the bit at the given position to bit, which must be 0
// or 1.
func (k *Key) SetBit(index, bit int) error {
	if index < 0 || index >= k.size {
		return ErrIndexOutOfRange
	}
	if bit != 0 && bit != 1 {
		return ErrInvalidBit
	}
	k.bits.SetBit(k.bits, index, uint(bit))
	return nil
}

// FlipBit inverts the bit at the given position.
func (k *Key) FlipBit(index int) error {
	if index < 0 || index >= k.size {
		return ErrIndexOutOfRange
	}
	k.bits.SetBit(k.bits, index, k.bits.Bit(index)^1)
	return nil
}

// Equal reports whether k and other have the same size and bits.
func (k *Key) Equal(other *Key) bool {
	if other == nil {
		return false
	}
	return k.size == other.size && k.bits.Cmp(other.bits) == 0
}

// Clone returns an independent copy of the key.
func (k *Key) Clone() *Key {
	return &Key{
		bits: new(big.Int).Set(k.bits),
		size: k.size,
	}
}

// NoisyClone returns a copy of the key with exactly flips distinct
// bit positions inverted, chosen uniformly from rnd.
func (k *Key) NoisyClone(flips int, rnd io.Reader) (*Key, error) {
	if flips < 0 || flips > k.size {
		return nil, fmt.Errorf("key: %d flips for a %d-bit key",
			flips, k.size)
	}
	if rnd == nil {
		return nil, ErrNilRandom
	}
	positions, err := prng.Perm(rnd, k.size)
	if err != nil {
		return nil, fmt.Errorf("key: flip positions: %w", err)
	}
	clone := k.Clone()
	for _, pos := range positions[:flips] {
		clone.bits.SetBit(clone.bits, pos, clone.bits.Bit(pos)^1)
	}
	return clone, nil
}

// Difference returns the number of bit positions at which k and
// other differ. The keys must have the same size.
func (k *Key) Difference(other *Key) (int, error) {
	if other == nil {
		return 0, ErrNilKey
	}
	if k.size != other.size {
		return 0, ErrSizeMismatch
	}
	xor := new(big.Int).Xor(k.bits, other.bits)
	var count int
	for i := 0; i < k.size; i++ {
		count += int(xor.Bit(i))
	}
	return count, nil
}

// String returns the bit values in position order, position 0 first.
func (k *Key) String() string {
	var sb strings.Builder
	for i := 0; i < k.size; i++ {
		sb.WriteByte('0' + byte(k.bits.Bit(i)))
	}
	return sb.String()
}
