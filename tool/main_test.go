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
	"strings"

	"github.com/urfave/cli/v2"
)

// runApp runs the tool in-process with the given command line and captures
// everything it prints.
func runApp(args ...string) (string, error) {
	var out strings.Builder
	app := &cli.App{
		Name:      "debruijn-gen",
		Writer:    &out,
		ErrWriter: &out,
		Commands: []*cli.Command{
			&Generate,
			&Enumerate,
			&Benchmark,
		},
	}
	err := app.Run(append([]string{"debruijn-gen"}, args...))
	return out.String(), err
}
