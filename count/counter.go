// SPDX-License-Identifier: MIT

package count

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/bracketodds/core"
	"github.com/katalvlaran/bracketodds/entrant"
	"github.com/katalvlaran/bracketodds/rule"
)

// Counter answers closed-form bracket counts for one pool and rule set.
// It is immutable after New and safe for concurrent use.
type Counter struct {
	pool      []entrant.Entrant
	conflicts *core.Graph
}

// New builds a Counter for pool under rules.
//
// Errors:
//   - entrant.ErrEmptyID / entrant.ErrDuplicateEntrant for an invalid pool.
//   - ErrUnsupportedRule when some rule is not a rule.Forbidder.
//   - ErrOddPool when the pool is odd and rules forbid any pairing in it.
func New(pool []entrant.Entrant, rules rule.Set) (*Counter, error) {
	if err := entrant.ValidatePool(pool); err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	g, ok, err := rules.Conflicts(pool)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}
	if !ok {
		return nil, ErrUnsupportedRule
	}
	if len(pool)%2 == 1 && g.EdgeCount() > 0 {
		return nil, ErrOddPool
	}

	return &Counter{pool: append([]entrant.Entrant(nil), pool...), conflicts: g}, nil
}

// Conflicts returns a copy of the conflict graph.
func (c *Counter) Conflicts() *core.Graph { return c.conflicts.Clone() }

// Total returns the number of valid brackets of the pool.
func (c *Counter) Total() (*big.Int, error) {
	return Avoiding(len(c.pool), c.conflicts)
}

// Satisfying returns the number of valid brackets containing every event.
// No events means every valid bracket.
//
// Implementation:
//   - Stage 1: validate the events (disjoint, known, non-self, non-bye).
//   - Stage 2: an event that is itself forbidden admits no bracket.
//   - Stage 3: drop the event members and count the reduced pool against
//     the conflict graph induced on it.
//
// Errors:
//   - ErrImpossible (joined with the entrant validation error).
//   - ErrOddPool for events over an odd pool.
func (c *Counter) Satisfying(events []entrant.Pairing) (*big.Int, error) {
	if len(events) == 0 {
		return c.Total()
	}
	if err := entrant.ValidateEvents(c.pool, events); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImpossible, err)
	}
	if len(c.pool)%2 == 1 {
		return nil, ErrOddPool
	}
	for _, ev := range events {
		if c.conflicts.HasEdge(ev.A.ID, ev.B.ID) {
			return new(big.Int), nil
		}
	}

	drop := entrant.EventMembers(events)
	keep := make(map[string]bool, len(c.pool))
	for _, e := range c.pool {
		if !drop[e.ID] {
			keep[e.ID] = true
		}
	}

	return Avoiding(len(keep), core.InducedSubgraph(c.conflicts, keep))
}
