// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package bitscan provides constant-time bit-scan primitives backed by a
// compiled-in De Bruijn magic constant and lookup table, as produced by the
// debruijn package and the debruijn-gen tool.
//
// An isolated single bit multiplied by the magic constant places a unique
// 6-bit pattern in the top bits of the product; the table maps that pattern
// back to the bit's position. One multiply, one shift, one load.
package bitscan

import (
	"math"
	"math/bits"
)

// DeBruijn64 is the compiled-in magic constant, sequence 50,000,000 of the
// canonical enumeration.
const DeBruijn64 = 0x037E84A99DAE458F

// NoBit is returned by Forward and Reverse for a zero input, which has no set
// bit to report. It is out of the valid index range [0,63] by one.
const NoBit = 64

// deBruijn64Table maps (bit<<i * DeBruijn64) >> 58 back to i.
var deBruijn64Table = [64]uint8{
	0, 1, 17, 2, 18, 50, 3, 57,
	47, 19, 22, 51, 29, 4, 33, 58,
	15, 48, 20, 27, 25, 23, 52, 41,
	54, 30, 38, 5, 43, 34, 59, 8,
	63, 16, 49, 56, 46, 21, 28, 32,
	14, 26, 24, 40, 53, 37, 42, 7,
	62, 55, 45, 31, 13, 39, 36, 6,
	61, 44, 12, 35, 60, 11, 10, 9,
}

// Forward returns the index of the lowest set bit of x, or NoBit for x == 0.
func Forward(x uint64) uint8 {
	if x == 0 {
		return NoBit
	}
	// x & -x isolates the lowest set bit.
	return deBruijn64Table[(x&-x)*DeBruijn64>>58]
}

// Reverse returns the index of the highest set bit of x, or NoBit for x == 0.
func Reverse(x uint64) uint8 {
	if x == 0 {
		return NoBit
	}
	// Smear the highest bit into all lower positions, then keep only it.
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	x |= x >> 32
	x &^= x >> 1
	return deBruijn64Table[x*DeBruijn64>>58]
}

// The implementations below exist for cross-validation and benchmarking of
// the magic variants; they are not meant to be fast, except for the
// bits-intrinsic ones.

// ForwardLoop is a reference bit scan testing each bit from position 0 up.
func ForwardLoop(x uint64) uint8 {
	if x == 0 {
		return NoBit
	}
	i := uint8(0)
	for x&1 == 0 {
		x >>= 1
		i++
	}
	return i
}

// ReverseLoop is a reference bit scan testing each bit from position 63 down.
func ReverseLoop(x uint64) uint8 {
	if x == 0 {
		return NoBit
	}
	i := uint8(63)
	for x&(1<<63) == 0 {
		x <<= 1
		i--
	}
	return i
}

// ForwardCount computes the forward scan as the trailing zero count.
func ForwardCount(x uint64) uint8 {
	if x == 0 {
		return NoBit
	}
	return uint8(bits.TrailingZeros64(x))
}

// ReverseCount computes the reverse scan as 63 minus the leading zero count.
func ReverseCount(x uint64) uint8 {
	if x == 0 {
		return NoBit
	}
	return uint8(63 - bits.LeadingZeros64(x))
}

// ReverseLog estimates the reverse scan as floor(log2(x)). The float64
// conversion rounds 64-bit inputs, so results near the top of a bit position
// can be off by one; the benchmark harness counts such disagreements instead
// of hiding them.
func ReverseLog(x uint64) uint8 {
	if x == 0 {
		return NoBit
	}
	return uint8(math.Log2(float64(x)))
}
