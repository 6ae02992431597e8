// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBenchmark_ReportsTimingsAndAgreement(t *testing.T) {
	out, err := runApp("benchmark", "--samples", "1000")
	require.NoError(t, err)
	for _, method := range []string{"magic multiply", "linear scan", "leading-zero count", "log2 estimate"} {
		require.Contains(t, out, method)
	}
	// The exact implementations must agree with the reference on every value;
	// only the log2 estimate may fall short.
	for _, method := range []string{"magic multiply", "linear scan", "leading-zero count"} {
		require.Contains(t, out, fmt.Sprintf("%-20s agrees on 1000 of 1000 values", method))
	}
}

func TestBenchmark_ZeroSamplesAreRejected(t *testing.T) {
	_, err := runApp("benchmark", "--samples", "0")
	require.ErrorContains(t, err, "samples must be positive")
}
