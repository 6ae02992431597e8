// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package interrupt ties process termination signals to context
// cancellation, so long-running enumerations can stop cleanly and still
// report what they found.
package interrupt

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// CancelOnInterrupt returns a child context that is cancelled when the
// process receives SIGINT or SIGTERM. A second signal is not intercepted;
// it terminates the process with the default behavior.
func CancelOnInterrupt(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx
}
