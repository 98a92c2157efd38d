// SPDX-License-Identifier: MIT

package odds

import (
	"errors"
	"fmt"
	"iter"
	"math/big"

	"github.com/katalvlaran/bracketodds/count"
	"github.com/katalvlaran/bracketodds/entrant"
	"github.com/katalvlaran/bracketodds/enumerate"
	"github.com/katalvlaran/bracketodds/rule"
)

// Space is the finite set of valid brackets of a pool, every bracket
// equally likely. It is the bridge to a caller's discrete random variable:
// outcomes are brackets, weights are uniform.
type Space struct {
	pool  []entrant.Entrant
	rules rule.Set
}

// NewSpace validates pool and binds it to rules. pool is copied.
func NewSpace(pool []entrant.Entrant, rules rule.Set) (*Space, error) {
	if err := entrant.ValidatePool(pool); err != nil {
		return nil, fmt.Errorf("odds: %w", err)
	}

	return &Space{pool: append([]entrant.Entrant(nil), pool...), rules: rules}, nil
}

// Size returns the number of outcomes, in closed form when the rules allow
// it and by enumeration otherwise.
func (s *Space) Size() (*big.Int, error) {
	c, err := count.New(s.pool, s.rules)
	if err == nil {
		var n *big.Int
		if n, err = c.Total(); err == nil {
			return n, nil
		}
	}
	if !errors.Is(err, count.ErrNoClosedForm) {
		return nil, fmt.Errorf("odds: size: %w", err)
	}

	n, err := enumerate.Count(s.pool, s.rules)
	if err != nil {
		return nil, fmt.Errorf("odds: size: %w", err)
	}

	return big.NewInt(int64(n)), nil
}

// Outcomes returns the brackets of the space as a fresh lazy sequence.
func (s *Space) Outcomes() iter.Seq[entrant.Bracket] {
	return enumerate.All(s.pool, s.rules)
}

// Odds returns the probability that a uniformly drawn bracket satisfies
// the predicates, combined by mode (no predicates: 1 under All, 0 under Any).
//
// Errors: ErrEmptySpace when the space has no bracket.
func (s *Space) Odds(mode Mode, preds ...func(entrant.Bracket) bool) (*big.Rat, error) {
	var hits, total int64
	for b := range s.Outcomes() {
		total++
		if holds(mode, b, preds) {
			hits++
		}
	}
	if total == 0 {
		return nil, ErrEmptySpace
	}

	return big.NewRat(hits, total), nil
}

func holds(mode Mode, b entrant.Bracket, preds []func(entrant.Bracket) bool) bool {
	if mode == Any {
		for _, p := range preds {
			if p(b) {
				return true
			}
		}

		return false
	}
	for _, p := range preds {
		if !p(b) {
			return false
		}
	}

	return true
}

// Sample draws one bracket uniformly at random. See SampleN.
func (s *Space) Sample(seed int64) (entrant.Bracket, error) {
	out, err := s.SampleN(seed, 1)
	if err != nil {
		return nil, err
	}

	return out[0], nil
}

// SampleN draws min(k, Size) distinct brackets uniformly at random, by
// reservoir sampling over one enumeration. seed 0 uses a fixed default;
// equal seeds give equal samples.
//
// Errors: ErrEmptySpace when the space has no bracket or k <= 0.
func (s *Space) SampleN(seed int64, k int) ([]entrant.Bracket, error) {
	if k <= 0 {
		return nil, ErrEmptySpace
	}

	res := newReservoir(seed, k)
	for b := range s.Outcomes() {
		res.offer(b)
	}
	if len(res.kept) == 0 {
		return nil, ErrEmptySpace
	}

	return res.kept, nil
}
