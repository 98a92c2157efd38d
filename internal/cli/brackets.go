// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bracketodds/entrant"
	"github.com/katalvlaran/bracketodds/enumerate"
	"github.com/katalvlaran/bracketodds/internal/logging"
)

// BracketEntry is one listed bracket.
type BracketEntry struct {
	Pairings [][2]string `json:"pairings"`
	Match    bool        `json:"match"`

	text string
}

// BracketsReport is the output of the brackets command.
type BracketsReport struct {
	Name     string         `json:"name"`
	Brackets []BracketEntry `json:"brackets"`
}

// String lists one bracket per line, marking matches with "<-".
func (r BracketsReport) String() string {
	lines := make([]string, len(r.Brackets))
	for i, b := range r.Brackets {
		lines[i] = b.text
		if b.Match {
			lines[i] += " <-"
		}
	}

	return strings.Join(lines, "\n")
}

// NewBracketsCommand creates the brackets command.
func NewBracketsCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "brackets <scenario-file>",
		Short: "List the valid brackets of a scenario",
		Long: `List every valid bracket of a scenario's pool in enumeration order.
Brackets containing the scenario's events are marked with "<-".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrackets(rootOpts, limit, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many brackets (0 lists all)")

	return cmd
}

func runBrackets(opts *RootOptions, limit int, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	logger := logging.GetLogger("brackets")

	sc, err := loadScenario(path, nil)
	if err != nil {
		return formatter.Failure(err)
	}
	rules, err := sc.RuleSet()
	if err != nil {
		return formatter.Failure(WrapExitError(ExitCommandError, "invalid scenario", err))
	}
	events, err := sc.EventPairings()
	if err != nil {
		return formatter.Failure(WrapExitError(ExitCommandError, "invalid scenario", err))
	}
	pool := sc.Pool()
	if err := entrant.ValidatePool(pool); err != nil {
		return formatter.Failure(WrapExitError(ExitCommandError, "invalid scenario", err))
	}

	match := entrant.Bracket.ContainsAll
	if sc.Any {
		match = entrant.Bracket.ContainsAny
	}

	report := BracketsReport{Name: sc.Name, Brackets: []BracketEntry{}}
	err = enumerate.Walk(pool, rules, func(b entrant.Bracket) error {
		entry := BracketEntry{
			Pairings: make([][2]string, len(b)),
			Match:    len(events) > 0 && match(b, events),
			text:     b.String(),
		}
		for i, p := range b {
			entry.Pairings[i] = [2]string{p.A.String(), p.B.String()}
		}
		report.Brackets = append(report.Brackets, entry)
		return nil
	}, enumerate.WithContext(cmd.Context()), enumerate.WithLimit(limit))
	if err != nil {
		return formatter.Failure(WrapExitError(ExitFailure, "enumerate", err))
	}
	logger.Debug().Int("brackets", len(report.Brackets)).Msg("listed")

	return formatter.Success(report)
}
