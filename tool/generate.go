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
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/0xsoniclabs/debruijn"
	"github.com/0xsoniclabs/debruijn/common/diagnostics"
	"github.com/0xsoniclabs/debruijn/common/interrupt"
	"github.com/urfave/cli/v2"
)

var Generate = cli.Command{
	Action:    diagnostics.WithProfiling(doGenerate, &cpuProfileFlag, &traceFlag),
	Name:      "generate",
	Usage:     "find the N-th De Bruijn sequence and print its magic constant, lookup table and bit-scan code",
	ArgsUsage: "<ordinal>",
	Description: fmt.Sprintf(
		"The ordinal selects a sequence of the canonical enumeration; the valid range is [1, %d].",
		debruijn.SequenceCount),
	Flags: []cli.Flag{
		&cpuProfileFlag,
		&traceFlag,
	},
}

func doGenerate(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing ordinal parameter, expected one argument in [1, %d]", debruijn.SequenceCount)
	}
	ordinal, err := strconv.ParseUint(context.Args().Get(0), 10, 64)
	if err != nil {
		return fmt.Errorf("ordinal must be a decimal integer: %v", err)
	}

	ctx := interrupt.CancelOnInterrupt(context.Context)
	start := time.Now()
	seq, err := debruijn.Search(ctx, ordinal)
	elapsed := time.Since(start).Round(time.Millisecond)

	if errors.Is(err, debruijn.ErrNotFound) {
		fmt.Fprintf(context.App.Writer, "no sequence found for ordinal %d after %v; the canonical enumeration has %d sequences\n",
			ordinal, elapsed, debruijn.SequenceCount)
		return nil
	}
	if err != nil {
		return fmt.Errorf("search aborted after %v: %w", elapsed, err)
	}

	if err := debruijn.WriteDefinitions(context.App.Writer, seq); err != nil {
		return err
	}
	fmt.Fprintf(context.App.Writer, "\nfound sequence %d of %d in %v\n", ordinal, debruijn.SequenceCount, elapsed)
	return nil
}
