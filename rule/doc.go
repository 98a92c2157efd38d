// SPDX-License-Identifier: MIT
//
// Package rule defines pairwise exclusion rules over entrants and their
// conjunction, Set.
//
// A Rule answers one question: may these two entrants be paired? A bracket
// is valid only if every rule of the active Set allows every pairing built
// during its construction. Pairings against the Bye sentinel are never
// checked.
//
// Variants:
//
//   - Func             opaque predicate; the exact counter cannot see inside
//   - ForbiddenPair    forbids one specific unordered pair of IDs
//   - DistinctCategory forbids pairing two entrants of the same Category
//
// ForbiddenPair and DistinctCategory implement Forbidder: given a pool they
// list their forbidden pairings as edges of a core.Graph, which lets the
// exact counter apply inclusion–exclusion instead of enumerating.
//
// Symmetry:
//
//	Rules are expected to be symmetric. Set.Allows evaluates both argument
//	orders and allows a pairing only if both hold, so an asymmetric Func
//	behaves as its symmetric intersection regardless of pool order.
package rule
