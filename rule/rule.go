// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"

	"github.com/katalvlaran/bracketodds/core"
	"github.com/katalvlaran/bracketodds/entrant"
)

// Rule is a pairwise predicate: Allows reports whether a may be paired with b.
// Implementations must be pure; the engine never mutates entrants or rules.
type Rule interface {
	Allows(a, b entrant.Entrant) bool
}

// Forbidder is a Rule whose forbidden pairings can be listed explicitly.
type Forbidder interface {
	Rule

	// Forbid adds every pairing of pool this rule rejects as an edge of g.
	Forbid(pool []entrant.Entrant, g *core.Graph) error
}

// Func adapts an ordinary function to Rule.
type Func func(a, b entrant.Entrant) bool

// Allows calls f(a, b).
func (f Func) Allows(a, b entrant.Entrant) bool { return f(a, b) }

// ForbiddenPair rejects the unordered pairing of the entrants with IDs A and B.
type ForbiddenPair struct {
	A string
	B string
}

// Forbid returns the rule rejecting the pairing of a and b.
func Forbid(a, b entrant.Entrant) ForbiddenPair {
	return ForbiddenPair{A: a.ID, B: b.ID}
}

// Allows reports false only for {A,B}, in either order.
func (r ForbiddenPair) Allows(a, b entrant.Entrant) bool {
	return !((a.ID == r.A && b.ID == r.B) || (a.ID == r.B && b.ID == r.A))
}

// Forbid adds the edge {A,B} when both IDs belong to pool. A pair naming
// itself forbids nothing, matching Allows.
func (r ForbiddenPair) Forbid(pool []entrant.Entrant, g *core.Graph) error {
	if r.A == r.B {
		return nil
	}
	var hasA, hasB bool
	for _, e := range pool {
		hasA = hasA || e.ID == r.A
		hasB = hasB || e.ID == r.B
	}
	if !hasA || !hasB {
		return nil
	}
	if err := g.AddEdge(r.A, r.B); err != nil {
		return fmt.Errorf("rule: forbid %s/%s: %w", r.A, r.B, err)
	}

	return nil
}

// String renders "forbid A-B".
func (r ForbiddenPair) String() string { return "forbid " + r.A + "-" + r.B }

// DistinctCategory rejects pairings of two entrants sharing a Category
// (for example, no two teams of the same region).
type DistinctCategory struct{}

// Allows reports whether a and b belong to different categories.
func (DistinctCategory) Allows(a, b entrant.Entrant) bool {
	return a.Category != b.Category
}

// Forbid adds one clique per category holding two or more pool members.
// Categories are processed in first-appearance order.
func (DistinctCategory) Forbid(pool []entrant.Entrant, g *core.Graph) error {
	groups := make(map[string][]string)
	var order []string
	for _, e := range pool {
		if _, ok := groups[e.Category]; !ok {
			order = append(order, e.Category)
		}
		groups[e.Category] = append(groups[e.Category], e.ID)
	}
	for _, cat := range order {
		if len(groups[cat]) < 2 {
			continue
		}
		if err := g.AddClique(groups[cat]); err != nil {
			return fmt.Errorf("rule: distinct category %q: %w", cat, err)
		}
	}

	return nil
}

// String renders "distinct-category".
func (DistinctCategory) String() string { return "distinct-category" }
