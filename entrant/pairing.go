// SPDX-License-Identifier: MIT

package entrant

import "strings"

// Equal reports whether p and o pair the same two entrants, in either order.
func (p Pairing) Equal(o Pairing) bool {
	return (p.A.Same(o.A) && p.B.Same(o.B)) || (p.A.Same(o.B) && p.B.Same(o.A))
}

// Has reports whether e takes part in p.
func (p Pairing) Has(e Entrant) bool {
	return p.A.Same(e) || p.B.Same(e)
}

// IsBye reports whether one side of p is the Bye sentinel.
func (p Pairing) IsBye() bool {
	return p.A.IsBye() || p.B.IsBye()
}

// Canonical returns p with its sides ordered by ID; Bye always goes last.
func (p Pairing) Canonical() Pairing {
	if p.A.IsBye() || (!p.B.IsBye() && p.B.ID < p.A.ID) {
		return Pairing{A: p.B, B: p.A}
	}

	return p
}

// String renders "A vs B".
func (p Pairing) String() string {
	return p.A.String() + " vs " + p.B.String()
}

// Contains reports whether the bracket holds event, ignoring side order.
// Complexity: O(len(b)).
func (b Bracket) Contains(event Pairing) bool {
	for _, p := range b {
		if p.Equal(event) {
			return true
		}
	}

	return false
}

// ContainsAll reports whether every event occurs in b. True for no events.
func (b Bracket) ContainsAll(events []Pairing) bool {
	for _, ev := range events {
		if !b.Contains(ev) {
			return false
		}
	}

	return true
}

// ContainsAny reports whether at least one event occurs in b. False for no events.
func (b Bracket) ContainsAny(events []Pairing) bool {
	for _, ev := range events {
		if b.Contains(ev) {
			return true
		}
	}

	return false
}

// Normalize returns a canonical copy of b: every pairing in Canonical form,
// pairings sorted by their first and then second ID. b is not modified.
// Complexity: O(p log p).
func (b Bracket) Normalize() Bracket {
	out := make(Bracket, len(b))
	for i, p := range b {
		out[i] = p.Canonical()
	}
	sortPairings(out)

	return out
}

// Key returns a string identity of the normalized bracket, suitable as a map key.
func (b Bracket) Key() string {
	n := b.Normalize()
	var sb strings.Builder
	for i, p := range n {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(p.A.ID)
		sb.WriteByte('+')
		sb.WriteString(p.B.ID)
	}

	return sb.String()
}

// String renders "[A vs B, C vs D]".
func (b Bracket) String() string {
	parts := make([]string, len(b))
	for i, p := range b {
		parts[i] = p.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
