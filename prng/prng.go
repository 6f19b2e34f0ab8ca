//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package prng implements seedable and system-entropy random sources
// and uniform draws on top of them.
package prng

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

var (
	// ErrInvalidBound is returned when a draw is requested from an
	// empty or negative range.
	ErrInvalidBound = errors.New("prng: non-positive bound")
)

// Source is a deterministic random source built from a ChaCha20
// keystream. It implements io.Reader and its reads never fail. A
// Source is not safe for concurrent use.
type Source struct {
	cipher *chacha20.Cipher
}

// NewSource creates a source whose output is fully determined by
// seed: two sources with the same seed produce the same stream.
func NewSource(seed int64) *Source {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(seed))
	key := blake2b.Sum256(buf[:])
	return newSource(key[:])
}

// NewRandomSource creates a source keyed from system entropy.
func NewRandomSource() *Source {
	var key [chacha20.KeySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		panic(err)
	}
	return newSource(key[:])
}

func newSource(key []byte) *Source {
	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	return &Source{
		cipher: cipher,
	}
}

// Read fills p with the next bytes of the keystream. It always
// returns len(p), nil.
func (s *Source) Read(p []byte) (int, error) {
	// Stream XOR of zeros gives the keystream directly.
	for i := range p {
		p[i] = 0
	}
	s.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Uint64 draws 8 bytes from r as a big-endian integer.
func Uint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// Intn draws a uniformly distributed integer from [0, n). Draws
// falling into the incomplete final multiple of n are rejected so
// the reduction is unbiased.
func Intn(r io.Reader, n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	max := ^uint64(0)
	m := max % uint64(n)
	for {
		v, err := Uint64(r)
		if err != nil {
			return 0, err
		}
		if v < max-m {
			return int(v % uint64(n)), nil
		}
	}
}

// Shuffle permutes n elements with the Fisher-Yates algorithm,
// calling swap for each exchange. Every permutation is equally
// likely when r is uniform.
func Shuffle(r io.Reader, n int, swap func(i, j int)) error {
	for i := n - 1; i > 0; i-- {
		j, err := Intn(r, i+1)
		if err != nil {
			return err
		}
		swap(i, j)
	}
	return nil
}

// Perm returns a uniformly distributed permutation of [0, n).
func Perm(r io.Reader, n int) ([]int, error) {
	if n < 0 {
		return nil, ErrInvalidBound
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	err := Shuffle(r, n, func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}
