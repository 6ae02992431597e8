// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package debruijn

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// firstSequences is the canonical prefix of the enumeration. The first entry
// is the classic trailing-zeros constant used by math/bits and many runtimes.
var firstSequences = []Sequence{
	0x0218a392cd3d5dbf,
	0x0218a392cd3dbabf,
	0x0218a392cd3f576f,
	0x0218a392cd3f6eaf,
	0x0218a392cd5d3dbf,
	0x0218a392cd5d3f6f,
	0x0218a392cd5dbd3f,
	0x0218a392cd5dbf4f,
}

func TestSearch_FirstOrdinalIsTheClassicConstant(t *testing.T) {
	seq, err := Search(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, Sequence(0x0218a392cd3d5dbf), seq)
}

func TestSearch_IsDeterministic(t *testing.T) {
	first, err := Search(context.Background(), 12345)
	require.NoError(t, err)
	second, err := Search(context.Background(), 12345)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSearch_OrdinalOutOfRangeIsNotFound(t *testing.T) {
	for _, ordinal := range []uint64{0, SequenceCount + 1, 1 << 62} {
		_, err := Search(context.Background(), ordinal)
		require.ErrorIs(t, err, ErrNotFound, "ordinal %d", ordinal)
	}
}

func TestSearch_CancelledContextAbortsTraversal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Search(ctx, SequenceCount)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEnumerate_YieldsCanonicalPrefix(t *testing.T) {
	var got []Sequence
	count, err := Enumerate(context.Background(), func(ordinal uint64, seq Sequence) bool {
		got = append(got, seq)
		return ordinal >= uint64(len(firstSequences))
	})
	require.NoError(t, err)
	require.Equal(t, uint64(len(firstSequences)), count)
	require.Equal(t, firstSequences, got)
}

func TestEnumerate_SequencesAreValidDeBruijn(t *testing.T) {
	const prefix = 1000
	count, err := Enumerate(context.Background(), func(ordinal uint64, seq Sequence) bool {
		var seen [windowCount]bool
		for i := 0; i < windowCount; i++ {
			window := (uint64(seq) << i) >> (64 - Order)
			require.False(t, seen[window], "sequence %v repeats window %#02x", seq, window)
			seen[window] = true
		}
		return ordinal >= prefix
	})
	require.NoError(t, err)
	require.Equal(t, uint64(prefix), count)
}

func TestEnumerate_OrdinalsAreContiguousFromOne(t *testing.T) {
	next := uint64(1)
	_, err := Enumerate(context.Background(), func(ordinal uint64, seq Sequence) bool {
		require.Equal(t, next, ordinal)
		next++
		return ordinal >= 100
	})
	require.NoError(t, err)
}

func TestEnumerate_StopIsImmediate(t *testing.T) {
	count, err := Enumerate(context.Background(), func(ordinal uint64, seq Sequence) bool {
		return ordinal >= 5
	})
	require.NoError(t, err)
	require.Equal(t, uint64(5), count)
}

func TestEnumerate_CancelledContextIsDetectedPeriodically(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	count, err := Enumerate(ctx, func(ordinal uint64, seq Sequence) bool {
		return false
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, uint64(cancelCheckInterval), count)
}

func TestEnumerate_FullRunYieldsAllSequences(t *testing.T) {
	if testing.Short() {
		t.Skip("full enumeration visits all 2^26 sequences")
	}
	var last Sequence
	count, err := Enumerate(context.Background(), func(ordinal uint64, seq Sequence) bool {
		last = seq
		return false
	})
	require.NoError(t, err)
	require.Equal(t, SequenceCount, count)
	require.Equal(t, Sequence(0x03f79d71b4cb0a89), last)
}

func TestSearch_ShippedOrdinal(t *testing.T) {
	if testing.Short() {
		t.Skip("searching ordinal 50,000,000 enumerates most of the space")
	}
	seq, err := Search(context.Background(), 50_000_000)
	require.NoError(t, err)
	require.Equal(t, Sequence(0x037e84a99dae458f), seq)
}

func TestSequence_StringIsZeroPaddedHex(t *testing.T) {
	require.Equal(t, "0x0218a392cd3d5dbf", Sequence(0x0218a392cd3d5dbf).String())
	require.Equal(t, "0x0000000000000000", Sequence(0).String())
}

func TestLockSet_LockUnlockRoundTrip(t *testing.T) {
	var locks lockSet
	for vertex := 0; vertex < windowCount; vertex++ {
		require.False(t, locks.has(vertex))
		locks.lock(vertex)
		require.True(t, locks.has(vertex))
	}
	for vertex := 0; vertex < windowCount; vertex++ {
		locks.unlock(vertex)
		require.False(t, locks.has(vertex))
	}
	require.Equal(t, lockSet(0), locks)
}

func TestWalk_RestoresLocksOnEveryExit(t *testing.T) {
	tests := map[string]func(ordinal uint64, seq Sequence) bool{
		"stopped": func(ordinal uint64, seq Sequence) bool { return ordinal >= 3 },
		"limited": func(ordinal uint64, seq Sequence) bool { return ordinal >= 1000 },
	}
	for name, visit := range tests {
		t.Run(name, func(t *testing.T) {
			s := &searcher{ctx: context.Background(), visit: visit}
			s.locks.lock(32)
			before := s.locks
			s.walk(0, searchDepth, 0, Order)
			require.Equal(t, before, s.locks)
		})
	}
}
