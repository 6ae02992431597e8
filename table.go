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

// Table is the perfect-hash lookup table of a De Bruijn sequence. It maps the
// top 6 bits of seq<<i back to the shift distance i, which is exactly the bit
// position recovered by a magic bit scan.
type Table [windowCount]uint8

// Table derives the lookup table of the sequence: for every bit position i,
// table[(seq<<i)>>58] == i. The result is a bijection on [0,63] if and only
// if s is a valid De Bruijn sequence; sequences produced by Search and
// Enumerate always are, anything else is out of contract.
func (s Sequence) Table() Table {
	var table Table
	for i := 0; i < windowCount; i++ {
		table[(uint64(s)<<i)>>(64-Order)] = uint8(i)
	}
	return table
}
