// SPDX-License-Identifier: MIT

// Command bracketodds computes exact odds of pairings in a constrained draw.
package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/bracketodds/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("bracketodds failed")
		os.Exit(cli.GetExitCode(err))
	}
}
