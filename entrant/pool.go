// SPDX-License-Identifier: MIT

package entrant

import (
	"fmt"
	"slices"
)

// ValidatePool checks that every entrant has a non-empty, unique ID.
//
// Errors:
//   - ErrEmptyID if an entrant has ID "".
//   - ErrDuplicateEntrant if an ID appears twice.
//
// Complexity: O(n) time and memory.
func ValidatePool(pool []Entrant) error {
	seen := make(map[string]struct{}, len(pool))
	for i, e := range pool {
		if e.IsBye() {
			return fmt.Errorf("entrant: pool[%d]: %w", i, ErrEmptyID)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("entrant: %q: %w", e.ID, ErrDuplicateEntrant)
		}
		seen[e.ID] = struct{}{}
	}

	return nil
}

// ValidateEvents checks that events can be forced together inside pool:
// no event touches Bye, pairs an entrant with itself, references an ID
// missing from pool, or shares an entrant with another event.
//
// Complexity: O(n + k) for n pool members and k events.
func ValidateEvents(pool []Entrant, events []Pairing) error {
	ids := make(map[string]struct{}, len(pool))
	for _, e := range pool {
		ids[e.ID] = struct{}{}
	}

	used := make(map[string]struct{}, 2*len(events))
	for i, ev := range events {
		if ev.IsBye() {
			return fmt.Errorf("entrant: event %d: %w", i, ErrByeEvent)
		}
		if ev.A.Same(ev.B) {
			return fmt.Errorf("entrant: event %d (%s): %w", i, ev, ErrSelfPairing)
		}
		for _, side := range [2]Entrant{ev.A, ev.B} {
			if _, ok := ids[side.ID]; !ok {
				return fmt.Errorf("entrant: event %d: %q: %w", i, side.ID, ErrUnknownEntrant)
			}
			if _, dup := used[side.ID]; dup {
				return fmt.Errorf("entrant: event %d: %q: %w", i, side.ID, ErrOverlappingEvents)
			}
			used[side.ID] = struct{}{}
		}
	}

	return nil
}

// Without returns a new pool holding the members of pool whose IDs are not
// in drop, preserving order. pool is never modified.
func Without(pool []Entrant, drop map[string]bool) []Entrant {
	out := make([]Entrant, 0, len(pool))
	for _, e := range pool {
		if !drop[e.ID] {
			out = append(out, e)
		}
	}

	return out
}

// EventMembers returns the set of entrant IDs touched by events.
func EventMembers(events []Pairing) map[string]bool {
	out := make(map[string]bool, 2*len(events))
	for _, ev := range events {
		out[ev.A.ID] = true
		out[ev.B.ID] = true
	}

	return out
}

// IDs returns the IDs of pool in order.
func IDs(pool []Entrant) []string {
	out := make([]string, len(pool))
	for i, e := range pool {
		out[i] = e.ID
	}

	return out
}

// sortPairings orders canonical pairings by (A.ID, B.ID); Bye sorts last.
func sortPairings(ps []Pairing) {
	slices.SortFunc(ps, func(x, y Pairing) int {
		if c := compareIDs(x.A, y.A); c != 0 {
			return c
		}

		return compareIDs(x.B, y.B)
	})
}

func compareIDs(a, b Entrant) int {
	switch {
	case a.ID == b.ID:
		return 0
	case a.IsBye():
		return 1
	case b.IsBye():
		return -1
	case a.ID < b.ID:
		return -1
	default:
		return 1
	}
}
