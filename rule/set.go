// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"

	"github.com/katalvlaran/bracketodds/core"
	"github.com/katalvlaran/bracketodds/entrant"
)

// Set is a conjunction of rules. The zero value allows every pairing.
type Set []Rule

// Allows reports whether every rule allows a with b in both argument orders.
// Complexity: O(len(s)) rule calls, two per rule.
func (s Set) Allows(a, b entrant.Entrant) bool {
	for _, r := range s {
		if !r.Allows(a, b) || !r.Allows(b, a) {
			return false
		}
	}

	return true
}

// With returns a new Set holding s followed by more. s is not modified.
func (s Set) With(more ...Rule) Set {
	out := make(Set, 0, len(s)+len(more))
	out = append(out, s...)

	return append(out, more...)
}

// Introspectable reports whether every rule of s is a Forbidder.
func (s Set) Introspectable() bool {
	for _, r := range s {
		if _, ok := r.(Forbidder); !ok {
			return false
		}
	}

	return true
}

// Conflicts builds the conflict graph of s over pool: one vertex per pool
// member and one edge per forbidden pairing. ok is false, with a nil graph,
// when some rule is not a Forbidder.
//
// Complexity: O(n + Σ forbidden pairs).
func (s Set) Conflicts(pool []entrant.Entrant) (g *core.Graph, ok bool, err error) {
	if !s.Introspectable() {
		return nil, false, nil
	}

	g = core.NewGraph()
	for _, e := range pool {
		if err = g.AddVertex(e.ID); err != nil {
			return nil, true, fmt.Errorf("rule: conflicts: %w", err)
		}
	}
	for i, r := range s {
		if err = r.(Forbidder).Forbid(pool, g); err != nil {
			return nil, true, fmt.Errorf("rule: conflicts: rule %d: %w", i, err)
		}
	}

	return g, true, nil
}
