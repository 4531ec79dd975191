// Package digest implements a self-contained streaming SHA-256 accumulator.
//
// It exists so checksums never depend on spawning an external binary. The
// accumulator is an explicit value with Write/Sum operations, which keeps it
// trivially testable against the published reference vectors.
package digest

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

// Size is the length of a SHA-256 digest in bytes.
const Size = 32

// blockSize is the SHA-256 message block length in bytes.
const blockSize = 64

// initState holds the standard SHA-256 initial hash values.
//
//nolint:gochecknoglobals // Fixed algorithm constants
var initState = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// roundConstants holds the 64 fixed SHA-256 round constants.
//
//nolint:gochecknoglobals // Fixed algorithm constants
var roundConstants = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Sha256 accumulates bytes and produces their SHA-256 digest.
//
// The zero value is not usable; create one with New. Write may be called any
// number of times with arbitrary chunk boundaries. After Sum the accumulator
// must not be reused.
type Sha256 struct {
	state    [8]uint32
	buffer   [blockSize]byte
	buffered int
	bitCount uint64
}

// New returns a fresh accumulator in the standard initial state.
func New() *Sha256 {
	return &Sha256{state: initState}
}

// Write feeds p into the accumulator. It never fails; the error return
// satisfies io.Writer so files can be streamed in with io.Copy.
func (s *Sha256) Write(p []byte) (int, error) {
	total := len(p)
	s.bitCount += uint64(total) * 8

	for len(p) > 0 {
		n := copy(s.buffer[s.buffered:], p)
		s.buffered += n
		p = p[n:]

		if s.buffered == blockSize {
			s.compress(s.buffer[:])
			s.buffered = 0
		}
	}

	return total, nil
}

// Sum pads and compresses the final block and returns the 32-byte digest.
func (s *Sha256) Sum() [Size]byte {
	s.buffer[s.buffered] = 0x80
	s.buffered++

	// The 64-bit length needs 8 bytes; compress an extra block if the
	// marker left no room for it.
	if s.buffered > blockSize-8 {
		for s.buffered < blockSize {
			s.buffer[s.buffered] = 0
			s.buffered++
		}

		s.compress(s.buffer[:])
		s.buffered = 0
	}

	for s.buffered < blockSize-8 {
		s.buffer[s.buffered] = 0
		s.buffered++
	}

	binary.BigEndian.PutUint64(s.buffer[blockSize-8:], s.bitCount)
	s.compress(s.buffer[:])

	var out [Size]byte
	for i, word := range s.state {
		binary.BigEndian.PutUint32(out[i*4:], word)
	}

	return out
}

// SumHex returns the digest as 64 lowercase hex characters.
func (s *Sha256) SumHex() string {
	sum := s.Sum()

	return hex.EncodeToString(sum[:])
}

// compress runs the 64-round SHA-256 compression function over one block.
func (s *Sha256) compress(block []byte) {
	var w [64]uint32

	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}

	for i := 16; i < 64; i++ {
		s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
		s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, c, d := s.state[0], s.state[1], s.state[2], s.state[3]
	e, f, g, h := s.state[4], s.state[5], s.state[6], s.state[7]

	for i := 0; i < 64; i++ {
		sum1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
		ch := (e & f) ^ (^e & g)
		temp1 := h + sum1 + ch + roundConstants[i] + w[i]
		sum0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
		maj := (a & b) ^ (a & c) ^ (b & c)
		temp2 := sum0 + maj

		h = g
		g = f
		f = e
		e = d + temp1
		d = c
		c = b
		b = a
		a = temp1 + temp2
	}

	s.state[0] += a
	s.state[1] += b
	s.state[2] += c
	s.state[3] += d
	s.state[4] += e
	s.state[5] += f
	s.state[6] += g
	s.state[7] += h
}
