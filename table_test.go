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

func TestTable_RecoversShiftDistances(t *testing.T) {
	for _, seq := range firstSequences {
		table := seq.Table()
		for i := 0; i < windowCount; i++ {
			require.Equal(t, uint8(i), table[(uint64(seq)<<i)>>(64-Order)])
		}
	}
}

func TestTable_IsBijectiveForEnumeratedSequences(t *testing.T) {
	_, err := Enumerate(context.Background(), func(ordinal uint64, seq Sequence) bool {
		table := seq.Table()
		var seen [windowCount]bool
		for _, entry := range table {
			require.False(t, seen[entry], "sequence %v maps two windows to %d", seq, entry)
			seen[entry] = true
		}
		return ordinal >= 100
	})
	require.NoError(t, err)
}

func TestTable_FirstSequenceMatchesKnownTrailingZerosTable(t *testing.T) {
	// The trailing-zeros lookup table that ships with this constant in the
	// Go runtime and countless other bit-twiddling codebases.
	want := Table{
		0, 1, 2, 7, 3, 13, 8, 19,
		4, 25, 14, 28, 9, 34, 20, 40,
		5, 17, 26, 38, 15, 46, 29, 48,
		10, 31, 35, 54, 21, 50, 41, 57,
		63, 6, 12, 18, 24, 27, 33, 39,
		16, 37, 45, 47, 30, 53, 49, 56,
		62, 11, 23, 32, 36, 44, 52, 55,
		61, 22, 43, 51, 60, 42, 59, 58,
	}
	require.Equal(t, want, Sequence(0x0218a392cd3d5dbf).Table())
}
