// SPDX-License-Identifier: MIT

// Package cli implements the bracketodds command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bracketodds/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbosity int
	Format    string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the bracketodds CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bracketodds",
		Short: "Exact odds of pairings in a constrained draw",
		Long: `bracketodds enumerates and counts the brackets of a pairing draw
under exclusion rules, and reports the exact odds of given pairings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			logging.SetupLogger(cmd.ErrOrStderr(), opts.Verbosity)

			return nil
		},
	}

	cmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewQueryCommand(opts))
	cmd.AddCommand(NewBracketsCommand(opts))
	cmd.AddCommand(NewCountCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
