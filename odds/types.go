// SPDX-License-Identifier: MIT
// Package odds defines query options, strategies, the Result type and
// sentinel errors.

package odds

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/bracketodds/entrant"
	"github.com/katalvlaran/bracketodds/rule"
)

var (
	// ErrPoolTooLarge indicates an enumeration refused by WithMaxBruteForce.
	ErrPoolTooLarge = errors.New("odds: pool too large to enumerate")

	// ErrUnknownStrategy indicates an unparsable strategy name.
	ErrUnknownStrategy = errors.New("odds: unknown strategy")

	// ErrEmptySpace indicates a Space without any valid bracket.
	ErrEmptySpace = errors.New("odds: no valid bracket")
)

// Mode selects how several events combine.
type Mode int

const (
	// All requires every event to occur in the bracket.
	All Mode = iota
	// Any requires at least one event to occur in the bracket.
	Any
)

// String returns "all" or "any".
func (m Mode) String() string {
	if m == Any {
		return "any"
	}

	return "all"
}

// Strategy selects how a query is computed.
type Strategy int

const (
	// Auto uses ClosedForm when it needs no enumeration, BruteForce otherwise.
	Auto Strategy = iota
	// BruteForce enumerates every bracket once.
	BruteForce
	// ClosedForm counts the reduced pool; falls back to BruteForce for Any
	// semantics and odd pools.
	ClosedForm
)

var strategyNames = map[Strategy]string{
	Auto:       "auto",
	BruteForce: "brute-force",
	ClosedForm: "closed-form",
}

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}

	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps "auto", "brute-force" and "closed-form" (case
// insensitive; "" means auto) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Auto, nil
	}
	for s, sn := range strategyNames {
		if sn == n {
			return s, nil
		}
	}

	return Auto, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Option configures a query.
type Option func(*Options)

// Options holds query parameters. Build it with DefaultOptions and Option
// functions rather than directly.
type Options struct {
	// Ctx cancels enumerations; defaults to context.Background().
	Ctx context.Context

	// Rules every pairing must satisfy; empty allows everything.
	Rules rule.Set

	// Events to look for; empty means "every bracket" under All and
	// "no bracket" under Any.
	Events []entrant.Pairing

	// Mode combines the events; default All.
	Mode Mode

	// Strategy picks the computation path; default Auto.
	Strategy Strategy

	// MaxBruteForce, if positive, refuses to enumerate pools larger than it.
	MaxBruteForce int

	// Logger receives debug traces of the chosen path; defaults to Nop.
	Logger zerolog.Logger
}

// DefaultOptions returns background context, no rules, no events, All,
// Auto, no enumeration guard and a disabled logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Mode:     All,
		Strategy: Auto,
		Logger:   zerolog.Nop(),
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRules appends rules to the active set.
func WithRules(rules ...rule.Rule) Option {
	return func(o *Options) {
		o.Rules = o.Rules.With(rules...)
	}
}

// WithEvents appends target events.
func WithEvents(events ...entrant.Pairing) Option {
	return func(o *Options) {
		o.Events = append(o.Events, events...)
	}
}

// WithMode sets how events combine.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithAny is shorthand for WithMode(Any).
func WithAny() Option {
	return WithMode(Any)
}

// WithStrategy selects the computation path.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMaxBruteForce refuses to enumerate pools with more than n entrants;
// n <= 0 disables the guard.
func WithMaxBruteForce(n int) Option {
	return func(o *Options) {
		o.MaxBruteForce = n
	}
}

// WithLogger installs a zerolog logger for debug traces.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
