// Package bracketodds computes exact odds of specific pairings inside a
// pairing draw of entrants under pairwise exclusion rules.
//
// What it answers:
//
//	"Eight teams are drawn into four matches, teams from the same region
//	 may not meet. What are the odds that T1 draws G2?"  →  6/24
//
// Under the hood, everything is organized under a few subpackages:
//
//	entrant/     Entrant, Pairing, Bracket, the bye sentinel, pool validation
//	rule/        pairwise exclusion rules (opaque predicates, forbidden pairs,
//	             distinct categories) and their conflict graphs
//	core/        thread-safe undirected graph backing the conflict graphs
//	enumerate/   lazy enumeration of every valid bracket (visitor, iterator,
//	             iter.Seq)
//	count/       double factorials and inclusion–exclusion over matchings of
//	             the conflict graph, cross-checked against the enumerator
//	odds/        odds queries (brute force or closed form) and brackets as a
//	             uniform outcome space
//
// Quick ASCII example of a conflict graph (edges are forbidden pairings):
//
//	    T1───GEN      G2───FNC      BLG    FLY
//	    │ ╲ ╱ │
//	    │  ╳  │
//	    │ ╱ ╲ │
//	    HLE───DK
//
// Counts are exact big integers; a draw of 40 entrants already has
// 39!! = 319830986772877770815625 brackets.
//
// The bracketodds command (cmd/bracketodds) runs the same queries from TOML
// or YAML scenario files:
//
//	go install github.com/katalvlaran/bracketodds/cmd/bracketodds@latest
//	bracketodds query worlds.toml
package bracketodds
