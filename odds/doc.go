// Package odds is the entry point for bracket odds queries: given a pool of
// entrants, a rule.Set and target events, it returns how many valid brackets
// contain the events and how many valid brackets exist.
//
// Strategies:
//
//   - BruteForce: one enumeration of the pool; every bracket increments the
//     total and, when the events hold (all or any of them), the satisfying
//     count.
//   - ClosedForm: all-events semantics over an even pool. The events are
//     validated and removed from the pool; the satisfying count is the
//     number of brackets of the reduced pool and the total the number of
//     brackets of the full pool, both by count.Counter when the rules are
//     forbidden-pair rules and by the enumerator otherwise.
//   - Auto (default): ClosedForm whenever it needs no enumeration at all,
//     BruteForce otherwise.
//
// Any-event semantics and odd pools always use BruteForce.
//
// Under All, impossible queries (overlapping, unknown, self or bye events)
// return the zero-over-zero Result, never an error. Check Result.Impossible
// before reading the ratio as a probability. Under Any, events may share
// entrants; each bracket counts once if it holds at least one of them, and
// an event no bracket can hold never matches.
//
// Space exposes the brackets of a pool as a finite set of equally likely
// outcomes: its size, the odds of predicates over it, and uniform samples.
//
// Errors:
//
//   - entrant.ErrEmptyID, entrant.ErrDuplicateEntrant  invalid pool
//   - ErrPoolTooLarge        enumeration refused by WithMaxBruteForce
//   - ErrEmptySpace          sampling or odds over a space with no brackets
//   - context errors         WithContext canceled during enumeration
package odds
