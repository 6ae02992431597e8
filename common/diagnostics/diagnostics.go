// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package diagnostics adds optional CPU profiling and execution tracing to
// CLI commands. The sequence search is a single CPU-bound recursion, so a
// profile of a slow run is the primary observability artifact of this tool.
package diagnostics

import (
	"fmt"
	"os"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/urfave/cli/v2"
)

// WithProfiling wraps a command action so that, when the given flags are
// set, the action runs under a CPU profile and/or an execution trace written
// to the named files.
func WithProfiling(action cli.ActionFunc, cpuProfileFlag, traceFlag *cli.StringFlag) cli.ActionFunc {
	return func(context *cli.Context) error {
		if name := strings.TrimSpace(context.String(cpuProfileFlag.Name)); name != "" {
			stop, err := startCpuProfile(name)
			if err != nil {
				return err
			}
			defer stop()
		}

		if name := strings.TrimSpace(context.String(traceFlag.Name)); name != "" {
			stop, err := startTrace(name)
			if err != nil {
				return err
			}
			defer stop()
		}

		return action(context)
	}
}

func startCpuProfile(filename string) (stop func(), err error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		file.Close()
	}, nil
}

func startTrace(filename string) (stop func(), err error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to start trace: %w", err)
	}
	return func() {
		trace.Stop()
		file.Close()
	}, nil
}
