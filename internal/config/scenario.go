// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/bracketodds/entrant"
	"github.com/katalvlaran/bracketodds/odds"
	"github.com/katalvlaran/bracketodds/rule"
)

// Rule kinds accepted in scenario files.
const (
	KindDistinctCategory = "distinct-category"
	KindForbidden        = "forbidden"
)

var (
	// ErrUnknownRuleKind indicates a rule entry with an unsupported kind.
	ErrUnknownRuleKind = errors.New("config: unknown rule kind")

	// ErrBadPair indicates a pair that does not name exactly two entrants.
	ErrBadPair = errors.New("config: pair must name two entrants")
)

// Scenario is one query file.
type Scenario struct {
	Name          string         `koanf:"name"`
	Entrants      []EntrantEntry `koanf:"entrants"`
	Rules         []RuleEntry    `koanf:"rules"`
	Events        [][]string     `koanf:"events"`
	Any           bool           `koanf:"any"`
	Strategy      string         `koanf:"strategy"`
	MaxBruteForce int            `koanf:"max_brute_force"`
}

// EntrantEntry is one pool member.
type EntrantEntry struct {
	ID       string `koanf:"id"`
	Category string `koanf:"category"`
}

// RuleEntry is one rule: a kind and, for forbidden pairs, the two IDs.
type RuleEntry struct {
	Kind string   `koanf:"kind"`
	Pair []string `koanf:"pair"`
}

// Pool returns the entrants in file order.
func (s *Scenario) Pool() []entrant.Entrant {
	out := make([]entrant.Entrant, len(s.Entrants))
	for i, e := range s.Entrants {
		out[i] = entrant.New(e.ID, e.Category)
	}

	return out
}

// lookup resolves an ID against the pool; unknown IDs keep an empty
// category so the query reports them as impossible.
func (s *Scenario) lookup(id string) entrant.Entrant {
	for _, e := range s.Entrants {
		if e.ID == id {
			return entrant.New(e.ID, e.Category)
		}
	}

	return entrant.New(id, "")
}

func (s *Scenario) pair(ids []string) (entrant.Pairing, error) {
	if len(ids) != 2 {
		return entrant.Pairing{}, fmt.Errorf("%w: %v", ErrBadPair, ids)
	}

	return entrant.Pair(s.lookup(ids[0]), s.lookup(ids[1])), nil
}

// RuleSet converts the rule entries.
func (s *Scenario) RuleSet() (rule.Set, error) {
	set := make(rule.Set, 0, len(s.Rules))
	for i, r := range s.Rules {
		switch strings.ToLower(strings.TrimSpace(r.Kind)) {
		case KindDistinctCategory:
			set = append(set, rule.DistinctCategory{})
		case KindForbidden:
			p, err := s.pair(r.Pair)
			if err != nil {
				return nil, fmt.Errorf("rule %d: %w", i, err)
			}
			set = append(set, rule.Forbid(p.A, p.B))
		default:
			return nil, fmt.Errorf("rule %d: %w: %q", i, ErrUnknownRuleKind, r.Kind)
		}
	}

	return set, nil
}

// EventPairings converts the events.
func (s *Scenario) EventPairings() ([]entrant.Pairing, error) {
	out := make([]entrant.Pairing, 0, len(s.Events))
	for i, ids := range s.Events {
		p, err := s.pair(ids)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		out = append(out, p)
	}

	return out, nil
}

// QueryOptions translates the scenario into odds options.
func (s *Scenario) QueryOptions() ([]odds.Option, error) {
	rules, err := s.RuleSet()
	if err != nil {
		return nil, err
	}
	events, err := s.EventPairings()
	if err != nil {
		return nil, err
	}
	strategy, err := odds.ParseStrategy(s.Strategy)
	if err != nil {
		return nil, err
	}

	opts := []odds.Option{
		odds.WithRules(rules...),
		odds.WithEvents(events...),
		odds.WithStrategy(strategy),
		odds.WithMaxBruteForce(s.MaxBruteForce),
	}
	if s.Any {
		opts = append(opts, odds.WithAny())
	}

	return opts, nil
}
