// Package enumerate generates every valid bracket of an entrant pool: all
// partitions of the pool into pairings such that each pairing satisfies a
// rule.Set.
//
// What:
//
//   - Walk: recursive backtracking with a visitor callback. The visitor may
//     return ErrStop to end the walk early without error.
//   - Iterator: the same traversal driven by an explicit work stack; each
//     Next() resumes where the previous bracket was produced.
//   - All: an iter.Seq over Iterator for range-over-func loops; breaking out
//     of the loop abandons the traversal.
//   - Count: the number of brackets (the brute-force total).
//
// Algorithm:
//
//	The first entrant of the remaining pool is the pivot. Each later entrant
//	is tried as its partner, in pool order; when the rules allow the pairing
//	the traversal recurses on a fresh copy of the pool without both. An empty
//	pool completes a bracket; a single leftover entrant is paired with
//	entrant.Bye; a pool of two completes only if the rules allow the pair.
//
//	For n entrants and no rules this yields (n-1)!! brackets, for even and
//	odd n alike: the pivot is never the one left with the bye.
//
// Determinism:
//
//	Walk, Iterator and All produce the same brackets in the same order.
//	Callers should rely on the set of brackets, not the order.
//
// Complexity:
//
//   - Time: O((n-1)!! · n) without rules; rules prune the tree.
//   - Memory: O(n²) for the pool copies along one root-to-leaf path.
//
// Errors:
//
//   - context errors when WithContext is canceled
//   - any error returned by the Walk visitor, wrapped
package enumerate
