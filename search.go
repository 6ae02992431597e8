// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package debruijn enumerates binary De Bruijn sequences of order 6 and
// derives the perfect-hash multiplication constants and lookup tables used
// for constant-time bit scans.
//
// A binary De Bruijn sequence of order 6 is a cyclic 64-bit word in which
// every 6-bit window occurs exactly once. The package walks the De Bruijn
// graph (vertices are windows, appending a bit moves vertex v to 2v+b mod 64)
// by depth-first backtracking and reports sequences in a fixed canonical
// order, so "the N-th sequence" is a stable, reproducible artifact.
package debruijn

import (
	"context"
	"errors"
	"fmt"
)

const (
	// Order is the De Bruijn order this package is specialized to.
	Order = 6

	// windowCount is the number of vertices of the De Bruijn graph, one per
	// 6-bit window.
	windowCount = 1 << Order

	// searchDepth is the number of free bit choices per sequence. Canonical
	// sequences start with the all-zero window, which fixes the first 6 bits
	// of the 64-bit cycle.
	searchDepth = 64 - Order

	// zeroEdgeLimit bounds the number of zero bits in a sequence. A 64-bit
	// De Bruijn cycle contains exactly 32 zeros, so any path emitting more
	// can be abandoned.
	zeroEdgeLimit = 32

	// SequenceCount is the total number of sequences the canonical
	// enumeration yields: all 2^26 binary De Bruijn sequences of order 6.
	SequenceCount uint64 = 1 << 26
)

// ErrNotFound is reported when a requested ordinal does not correspond to any
// sequence in the canonical enumeration.
var ErrNotFound = errors.New("no matching de Bruijn sequence")

// Sequence is a binary De Bruijn sequence of order 6, packed MSB-first into a
// 64-bit word. Canonical sequences have their six most significant bits zero.
type Sequence uint64

func (s Sequence) String() string {
	return fmt.Sprintf("%#016x", uint64(s))
}

// lockSet tracks which graph vertices lie on the current search path. It is
// owned by a single traversal; locking and unlocking are strictly symmetric
// around each explored subtree.
type lockSet uint64

func (l lockSet) has(vertex int) bool {
	return l&(1<<vertex) != 0
}

func (l *lockSet) lock(vertex int) {
	*l |= 1 << vertex
}

func (l *lockSet) unlock(vertex int) {
	*l &^= 1 << vertex
}

// cancelCheckInterval is the number of completed sequences between context
// checks during an enumeration.
const cancelCheckInterval = 1 << 16

// searcher holds the state of one traversal of the De Bruijn graph. A
// searcher must not be shared; every top-level call constructs its own.
type searcher struct {
	ctx   context.Context
	visit func(ordinal uint64, seq Sequence) bool
	locks lockSet
	found uint64
	err   error
}

// Search returns the ordinal-th sequence (1-indexed) of the canonical
// enumeration. Ordinals outside [1, SequenceCount] yield ErrNotFound. The
// context is checked periodically; cancellation aborts the traversal and
// returns the context's error.
func Search(ctx context.Context, ordinal uint64) (Sequence, error) {
	if ordinal < 1 || ordinal > SequenceCount {
		return 0, fmt.Errorf("ordinal %d out of range [1, %d]: %w", ordinal, SequenceCount, ErrNotFound)
	}
	var result Sequence
	matched := false
	_, err := Enumerate(ctx, func(n uint64, seq Sequence) bool {
		if n == ordinal {
			result = seq
			matched = true
			return true
		}
		return false
	})
	if err != nil {
		return 0, err
	}
	if !matched {
		return 0, ErrNotFound
	}
	return result, nil
}

// Enumerate walks the complete canonical enumeration, invoking visit with a
// 1-indexed ordinal for every sequence found. Returning true from visit stops
// the traversal. Enumerate reports the number of sequences visited; the only
// error condition is context cancellation.
//
// The enumeration order is part of this package's contract: from every vertex
// the zero edge is explored before the one edge, vertex 32 is excluded up
// front, and the forced detour through vertex 63 is taken as a single step
// (see walk). Changing any of these would renumber every sequence.
func Enumerate(ctx context.Context, visit func(ordinal uint64, seq Sequence) bool) (uint64, error) {
	s := &searcher{ctx: ctx, visit: visit}

	// Vertex 32 (100000) can only be followed by the all-zero window or by
	// 000001, both of which restart the leading zero run. In a canonical
	// sequence it is therefore always the wrap-around window that closes the
	// cycle, never one of the 58 searched steps, and locking it up front
	// prunes every branch that would misplace it.
	s.locks.lock(32)

	// The six leading zero bits are part of every canonical sequence, so the
	// zero-edge budget starts at 6.
	s.walk(0, searchDepth, 0, Order)
	return s.found, s.err
}

// walk explores the subtree rooted at vertex with the given number of bit
// choices remaining. It reports true when the traversal should unwind
// immediately, either because visit stopped it or the context was cancelled;
// every pending frame propagates that signal without further exploration.
//
// On every other exit path the lock set is restored to its value on entry.
func (s *searcher) walk(seq uint64, depth, vertex, zeros int) bool {
	if s.locks.has(vertex) || zeros > zeroEdgeLimit {
		return false
	}
	if depth == 0 {
		s.found++
		if s.found%cancelCheckInterval == 0 {
			if err := s.ctx.Err(); err != nil {
				s.err = err
				return true
			}
		}
		return s.visit(s.found, Sequence(seq))
	}
	s.locks.lock(vertex)
	var stop bool
	if vertex == 31 && depth > 2 {
		// Vertex 63 (111111) has no usable predecessor other than 31: its
		// only other incoming edge is its own self-loop. Any completable
		// path through 31 is forced to append 1 and then 0, landing on 62,
		// so both steps are taken at once.
		stop = s.walk(seq|1<<(depth-1), depth-2, 62, zeros+1)
	} else {
		stop = s.walk(seq, depth-1, (2*vertex)%windowCount, zeros+1) ||
			s.walk(seq|1<<(depth-1), depth-1, (2*vertex+1)%windowCount, zeros)
	}
	s.locks.unlock(vertex)
	return stop
}
