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
	"fmt"
	"io"
)

// WriteDefinitions renders the sequence as ready-to-paste Go source: the
// magic constant, its lookup table, and bit-scan functions built on them.
// The table is printed in index order, eight entries per line.
func WriteDefinitions(out io.Writer, seq Sequence) error {
	table := seq.Table()

	if _, err := fmt.Fprintf(out, "const deBruijn64 = %s\n\nvar deBruijn64Table = [64]uint8{\n", seq); err != nil {
		return err
	}
	for row := 0; row < 8; row++ {
		entries := table[row*8 : row*8+8]
		line := "\t"
		for _, e := range entries {
			line += fmt.Sprintf("%2d, ", e)
		}
		if _, err := fmt.Fprintln(out, line[:len(line)-1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(out, "}\n\n"+
		"// BitScanForward returns the index of the lowest set bit of x, x != 0.\n"+
		"func BitScanForward(x uint64) uint8 {\n"+
		"\treturn deBruijn64Table[(x&-x)*deBruijn64>>58]\n"+
		"}\n\n"+
		"// BitScanReverse returns the index of the highest set bit of x, x != 0.\n"+
		"func BitScanReverse(x uint64) uint8 {\n"+
		"\tx |= x >> 1\n"+
		"\tx |= x >> 2\n"+
		"\tx |= x >> 4\n"+
		"\tx |= x >> 8\n"+
		"\tx |= x >> 16\n"+
		"\tx |= x >> 32\n"+
		"\tx &^= x >> 1\n"+
		"\treturn deBruijn64Table[x*deBruijn64>>58]\n"+
		"}\n")
	return err
}
