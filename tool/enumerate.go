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
	"context"
	"fmt"
	"io"
	"time"

	"github.com/0xsoniclabs/debruijn"
	"github.com/0xsoniclabs/debruijn/catalog"
	"github.com/0xsoniclabs/debruijn/common/diagnostics"
	"github.com/0xsoniclabs/debruijn/common/interrupt"
	"github.com/urfave/cli/v2"
)

var (
	limitFlag = cli.Uint64Flag{
		Name:  "limit",
		Usage: "stop after this many sequences, 0 runs the full enumeration",
		Value: 0,
	}
	catalogFlag = cli.StringFlag{
		Name:  "catalog",
		Usage: "directory of a LevelDB catalog to record every sequence in, disabled if empty",
		Value: "",
	}
)

var Enumerate = cli.Command{
	Action: diagnostics.WithProfiling(doEnumerate, &cpuProfileFlag, &traceFlag),
	Name:   "enumerate",
	Usage:  "walk the canonical enumeration, count the sequences and optionally persist them",
	Flags: []cli.Flag{
		&limitFlag,
		&catalogFlag,
		&cpuProfileFlag,
		&traceFlag,
	},
}

func doEnumerate(cliCtx *cli.Context) error {
	var store catalog.Store
	if dir := cliCtx.String(catalogFlag.Name); dir != "" {
		opened, err := catalog.Open(dir)
		if err != nil {
			return err
		}
		defer func() {
			if err := opened.Close(); err != nil {
				fmt.Fprintf(cliCtx.App.ErrWriter, "failed to close catalog: %v\n", err)
			}
		}()
		store = opened
	}

	ctx := interrupt.CancelOnInterrupt(cliCtx.Context)
	start := time.Now()
	count, err := enumerateInto(ctx, store, cliCtx.Uint64(limitFlag.Name), cliCtx.App.Writer)
	elapsed := time.Since(start).Round(time.Millisecond)

	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintf(cliCtx.App.Writer, "interrupted after %d sequences in %v\n", count, elapsed)
			return nil
		}
		return fmt.Errorf("enumeration failed after %d sequences: %w", count, err)
	}

	fmt.Fprintf(cliCtx.App.Writer, "enumerated %d sequences in %v\n", count, elapsed)
	return nil
}

// progressInterval is the ordinal stride between progress reports.
const progressInterval = 1 << 22

// enumerateInto walks the canonical enumeration up to limit sequences
// (0 means all), recording each one in store if it is non-nil and writing
// periodic progress to out. It reports the number of sequences visited.
func enumerateInto(ctx context.Context, store catalog.Store, limit uint64, out io.Writer) (uint64, error) {
	start := time.Now()
	var storeErr error
	count, err := debruijn.Enumerate(ctx, func(ordinal uint64, seq debruijn.Sequence) bool {
		if store != nil {
			if storeErr = store.Put(ordinal, seq); storeErr != nil {
				return true
			}
		}
		if ordinal%progressInterval == 0 {
			rate := float64(ordinal) / time.Since(start).Seconds()
			fmt.Fprintf(out, "enumerated %d sequences, %.0f sequences/s\n", ordinal, rate)
		}
		return limit > 0 && ordinal >= limit
	})
	if storeErr != nil {
		return count, storeErr
	}
	if err != nil {
		return count, err
	}
	if store != nil {
		return count, store.Flush()
	}
	return count, nil
}
