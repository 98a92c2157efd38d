// SPDX-License-Identifier: MIT

package odds

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/bracketodds/count"
	"github.com/katalvlaran/bracketodds/entrant"
	"github.com/katalvlaran/bracketodds/enumerate"
)

// Query computes how many valid brackets of pool contain the configured
// events, out of how many valid brackets exist.
//
// Implementation:
//   - Stage 1: validate the pool; under All, events that cannot be forced
//     together short-circuit to 0/0.
//   - Stage 2: resolve the strategy (see package doc).
//   - Stage 3: count by closed form or by a single enumeration.
//
// Errors:
//   - entrant.ErrEmptyID, entrant.ErrDuplicateEntrant for an invalid pool.
//   - ErrPoolTooLarge when an enumeration exceeds WithMaxBruteForce.
//   - context errors from WithContext.
//
// Determinism: repeated calls with the same inputs return equal Results.
func Query(pool []entrant.Entrant, opts ...Option) (Result, error) {
	o := applyOptions(opts)
	if err := entrant.ValidatePool(pool); err != nil {
		return Result{}, fmt.Errorf("odds: %w", err)
	}

	log := o.Logger.With().
		Int("entrants", len(pool)).
		Int("rules", len(o.Rules)).
		Int("events", len(o.Events)).
		Str("mode", o.Mode.String()).
		Logger()

	// Only forced (all) events must co-occur; under Any they may overlap,
	// and an event no bracket can hold simply never matches.
	if o.Mode == All {
		if err := entrant.ValidateEvents(pool, o.Events); err != nil {
			log.Debug().Err(err).Msg("impossible query")
			return impossible(), nil
		}
	}

	strategy := resolve(pool, o)
	log.Debug().
		Str("requested", o.Strategy.String()).
		Str("strategy", strategy.String()).
		Msg("strategy resolved")

	var (
		res Result
		err error
	)
	if strategy == ClosedForm {
		res, err = closedForm(pool, o, log)
	} else {
		res, err = bruteForce(pool, o)
	}
	if err != nil {
		return Result{}, err
	}
	log.Debug().Str("result", res.String()).Msg("query done")

	return res, nil
}

// resolve maps the requested strategy onto the one that applies.
func resolve(pool []entrant.Entrant, o Options) Strategy {
	closedOK := o.Mode == All && len(pool)%2 == 0
	switch o.Strategy {
	case BruteForce:
		return BruteForce
	case ClosedForm:
		if closedOK {
			return ClosedForm
		}

		return BruteForce
	default:
		if closedOK && o.Rules.Introspectable() {
			return ClosedForm
		}

		return BruteForce
	}
}

// bruteForce tallies one enumeration of pool.
func bruteForce(pool []entrant.Entrant, o Options) (Result, error) {
	if err := guard(pool, o); err != nil {
		return Result{}, err
	}

	match := entrant.Bracket.ContainsAll
	if o.Mode == Any {
		match = entrant.Bracket.ContainsAny
	}

	var total, satisfying int64
	err := enumerate.Walk(pool, o.Rules, func(b entrant.Bracket) error {
		total++
		if match(b, o.Events) {
			satisfying++
		}
		return nil
	}, enumerate.WithContext(o.Ctx))
	if err != nil {
		return Result{}, fmt.Errorf("odds: brute force: %w", err)
	}

	return NewResult(satisfying, total), nil
}

// closedForm counts the full and the reduced pool. Events are valid and
// the pool is even.
func closedForm(pool []entrant.Entrant, o Options, log zerolog.Logger) (Result, error) {
	c, err := count.New(pool, o.Rules)
	if err == nil {
		log.Debug().Int("conflicts", c.Conflicts().EdgeCount()).Msg("counting in closed form")

		var total, satisfying *big.Int
		if total, err = c.Total(); err == nil {
			satisfying, err = c.Satisfying(o.Events)
		}
		if err == nil {
			return Result{Satisfying: satisfying, Total: total}, nil
		}
	}
	if !errors.Is(err, count.ErrNoClosedForm) {
		return Result{}, fmt.Errorf("odds: closed form: %w", err)
	}

	log.Debug().Err(err).Msg("counting reduced pool by enumeration")

	return reducedEnumeration(pool, o)
}

// reducedEnumeration counts brackets of the reduced pool by enumeration,
// for rules the counter cannot see into.
func reducedEnumeration(pool []entrant.Entrant, o Options) (Result, error) {
	if err := guard(pool, o); err != nil {
		return Result{}, err
	}

	total, err := enumerate.Count(pool, o.Rules, enumerate.WithContext(o.Ctx))
	if err != nil {
		return Result{}, fmt.Errorf("odds: total: %w", err)
	}

	for _, ev := range o.Events {
		if !o.Rules.Allows(ev.A, ev.B) {
			return NewResult(0, int64(total)), nil
		}
	}

	reduced := entrant.Without(pool, entrant.EventMembers(o.Events))
	satisfying, err := enumerate.Count(reduced, o.Rules, enumerate.WithContext(o.Ctx))
	if err != nil {
		return Result{}, fmt.Errorf("odds: reduced pool: %w", err)
	}

	return NewResult(int64(satisfying), int64(total)), nil
}

func guard(pool []entrant.Entrant, o Options) error {
	if o.MaxBruteForce > 0 && len(pool) > o.MaxBruteForce {
		return fmt.Errorf("%w: %d entrants, limit %d", ErrPoolTooLarge, len(pool), o.MaxBruteForce)
	}

	return nil
}
