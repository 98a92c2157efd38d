// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bracketodds/count"
)

// CountReport is the output of the count command.
type CountReport struct {
	Entrants  int    `json:"entrants"`
	Forbidden int    `json:"forbidden"`
	Brackets  string `json:"brackets"`
}

// String renders "brackets(n) = total", noting forbidden pairs if any.
func (r CountReport) String() string {
	if r.Forbidden > 0 {
		return fmt.Sprintf("brackets(%d, %d forbidden) = %s", r.Entrants, r.Forbidden, r.Brackets)
	}

	return fmt.Sprintf("brackets(%d) = %s", r.Entrants, r.Brackets)
}

// NewCountCommand creates the count command.
func NewCountCommand(rootOpts *RootOptions) *cobra.Command {
	var forbidden int

	cmd := &cobra.Command{
		Use:   "count <entrants>",
		Short: "Count the brackets of an unconstrained pool",
		Long: `Print the number of brackets of n entrants, (n-1)!!.
With --forbidden r, count the brackets of an even pool avoiding r
pairwise-disjoint forbidden pairs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(rootOpts, forbidden, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&forbidden, "forbidden", 0, "number of disjoint forbidden pairs")

	return cmd
}

func runCount(opts *RootOptions, forbidden int, arg string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return formatter.Failure(NewExitError(ExitCommandError,
			fmt.Sprintf("invalid entrant count %q", arg)))
	}

	report := CountReport{Entrants: n, Forbidden: forbidden}
	switch {
	case forbidden == 0:
		report.Brackets = count.Brackets(n).String()
	case forbidden < 0 || 2*forbidden > n || n%2 != 0:
		return formatter.Failure(NewExitError(ExitCommandError,
			fmt.Sprintf("%d disjoint forbidden pairs need an even pool of at least %d entrants", forbidden, 2*forbidden)))
	default:
		report.Brackets = count.DisjointAvoiding(n, forbidden).String()
	}

	return formatter.Success(report)
}
