// SPDX-License-Identifier: MIT
//
// Package entrant defines the value types every bracket computation is built
// from: Entrant, Pairing and Bracket.
//
// What:
//
//   - Entrant: an immutable participant identified by ID and tagged with a
//     Category (a region, a seed pot, a league…) that rules may inspect.
//   - Pairing: one unordered match between two entrants, or between an
//     entrant and the Bye sentinel when a pool step is odd-sized.
//   - Bracket: an ordered sequence of pairings that partitions a pool.
//     Order reflects construction; use Normalize for a canonical form.
//   - Event: a Pairing whose presence inside a Bracket is queried.
//
// Pool helpers:
//
//   - ValidatePool   rejects empty and duplicate IDs
//   - ValidateEvents checks that forced events are disjoint, known, non-self
//   - Without        returns a fresh pool with the given IDs removed
//
// Errors:
//
//   - ErrEmptyID            entrant ID is the empty string (reserved for Bye)
//   - ErrDuplicateEntrant   two entrants share one ID
//   - ErrUnknownEntrant     an event references an entrant outside the pool
//   - ErrSelfPairing        an event pairs an entrant with itself
//   - ErrOverlappingEvents  two events share an entrant
//   - ErrByeEvent           an event references the Bye sentinel
//
// Complexity:
//
//   - ValidatePool, ValidateEvents, Without: O(n + k) time, O(n) memory.
//   - Bracket.Contains: O(len(bracket)).
//   - Bracket.Normalize: O(p log p) for p pairings.
package entrant
