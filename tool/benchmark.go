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
	"math/rand/v2"
	"time"

	"github.com/0xsoniclabs/debruijn/bitscan"
	"github.com/0xsoniclabs/debruijn/common/diagnostics"
	"github.com/urfave/cli/v2"
)

var samplesFlag = cli.Uint64Flag{
	Name:  "samples",
	Usage: "number of random values each implementation is scanned on",
	Value: 10_000_000,
}

var Benchmark = cli.Command{
	Action: diagnostics.WithProfiling(doBenchmark, &cpuProfileFlag, &traceFlag),
	Name:   "benchmark",
	Usage:  "time the bit-scan implementations against each other and cross-validate their results",
	Flags: []cli.Flag{
		&samplesFlag,
		&cpuProfileFlag,
		&traceFlag,
	},
}

// scanMethod names one reverse bit-scan implementation under test.
type scanMethod struct {
	name string
	scan func(uint64) uint8
}

func doBenchmark(context *cli.Context) error {
	samples := context.Uint64(samplesFlag.Name)
	if samples == 0 {
		return fmt.Errorf("samples must be positive")
	}

	values := make([]uint64, samples)
	for i := range values {
		for values[i] == 0 {
			values[i] = rand.Uint64()
		}
	}

	methods := []scanMethod{
		{"magic multiply", bitscan.Reverse},
		{"linear scan", bitscan.ReverseLoop},
		{"leading-zero count", bitscan.ReverseCount},
		{"log2 estimate", bitscan.ReverseLog},
	}

	// Timed runs first; the sink keeps the loops from being optimized away.
	var sink uint64
	for _, method := range methods {
		start := time.Now()
		for _, v := range values {
			sink += uint64(method.scan(v))
		}
		elapsed := time.Since(start)
		fmt.Fprintf(context.App.Writer, "%-20s %12v  %6.2f ns/op\n",
			method.name, elapsed.Round(time.Millisecond), float64(elapsed.Nanoseconds())/float64(samples))
	}

	// Cross-validation against the linear scan reference.
	agreements := make([]uint64, len(methods))
	for _, v := range values {
		want := bitscan.ReverseLoop(v)
		for i, method := range methods {
			if method.scan(v) == want {
				agreements[i]++
			}
		}
	}
	for i, method := range methods {
		fmt.Fprintf(context.App.Writer, "%-20s agrees on %d of %d values\n", method.name, agreements[i], samples)
	}

	_ = sink
	return nil
}
