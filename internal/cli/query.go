// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bracketodds/internal/config"
	"github.com/katalvlaran/bracketodds/internal/logging"
	"github.com/katalvlaran/bracketodds/odds"
)

// QueryFlags override scenario settings.
type QueryFlags struct {
	Strategy string
	Any      bool
}

// QueryReport is the output of the query command.
type QueryReport struct {
	Name        string  `json:"name"`
	Satisfying  string  `json:"satisfying"`
	Total       string  `json:"total"`
	Ratio       string  `json:"ratio,omitempty"`
	Probability float64 `json:"probability"`
	Mode        string  `json:"mode"`
	Strategy    string  `json:"strategy"`
}

// String renders "name: satisfying/total".
func (r QueryReport) String() string {
	return fmt.Sprintf("%s: %s/%s", r.Name, r.Satisfying, r.Total)
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &QueryFlags{}

	cmd := &cobra.Command{
		Use:   "query <scenario-file>",
		Short: "Compute the odds of a scenario's events",
		Long: `Load a TOML or YAML scenario and print how many valid brackets
contain its events out of how many valid brackets exist.

Impossible events (overlapping, unknown or self pairings) report 0/0.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, flags, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&flags.Strategy, "strategy", "", "override strategy (auto|brute-force|closed-form)")
	cmd.Flags().BoolVar(&flags.Any, "any", false, "count brackets containing any event instead of all")

	return cmd
}

// loadScenario reads path and applies flag overrides.
func loadScenario(path string, flags *QueryFlags) (*config.Scenario, error) {
	sc, err := config.Load(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load scenario", err)
	}
	if flags != nil {
		if flags.Strategy != "" {
			sc.Strategy = flags.Strategy
		}
		if flags.Any {
			sc.Any = true
		}
	}

	return sc, nil
}

func runQuery(opts *RootOptions, flags *QueryFlags, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	logger := logging.GetLogger("query")
	done := logging.LogOperationStart(logger, "query")
	defer done()

	sc, err := loadScenario(path, flags)
	if err != nil {
		return formatter.Failure(err)
	}
	qopts, err := sc.QueryOptions()
	if err != nil {
		return formatter.Failure(WrapExitError(ExitCommandError, "invalid scenario", err))
	}
	qopts = append(qopts, odds.WithContext(cmd.Context()), odds.WithLogger(logging.GetLogger("odds")))

	res, err := odds.Query(sc.Pool(), qopts...)
	if err != nil {
		return formatter.Failure(WrapExitError(ExitFailure, "query", err))
	}

	strategy, _ := odds.ParseStrategy(sc.Strategy)
	mode := odds.All
	if sc.Any {
		mode = odds.Any
	}
	report := QueryReport{
		Name:        sc.Name,
		Satisfying:  res.Satisfying.String(),
		Total:       res.Total.String(),
		Probability: res.Float64(),
		Mode:        mode.String(),
		Strategy:    strategy.String(),
	}
	if q := res.Ratio(); q != nil {
		report.Ratio = q.RatString()
	}
	logger.Info().Str("scenario", sc.Name).Str("result", res.String()).Msg("query answered")

	return formatter.Success(report)
}
