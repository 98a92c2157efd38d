// Package count computes bracket counts in closed form, without enumerating.
//
// Formulas (n entrants, exact integers via math/big):
//
//   - Brackets(n) = (n-1)!!. For even n this is the number of perfect
//     matchings; for odd n the bye is folded into the same product, which
//     equals the enumerator's tally because its pivot never takes the bye
//     (1, 2, 8, 48 for n = 1, 3, 5, 7).
//   - Forcing k disjoint pairings of an even pool leaves (n-2k-1)!!.
//   - r pairwise-disjoint forbidden pairs (DisjointAvoiding):
//     Σ_{i=0..r} (-1)^i · C(r,i) · (n-2i-1)!!
//   - Arbitrary forbidden pairs (Avoiding): C(r,i) becomes m_i(G), the number
//     of i-edge matchings of the conflict graph G, because only pairwise
//     disjoint forbidden pairs can be forced together:
//     Σ_i (-1)^i · m_i(G) · (n-2i-1)!!
//
// Counter binds a pool and a rule.Set and answers Total and Satisfying.
// It only accepts rule sets whose rules are all rule.Forbidder; anything
// else reports ErrUnsupportedRule so callers can fall back to the
// enumerator. Forbidden pairs over an odd pool report ErrOddPool: with a
// bye, the brackets containing a given pair are not (n-3)!! in number.
// Every such error wraps ErrNoClosedForm.
//
// Complexity:
//
//   - DoubleFactorial, Brackets: O(n) big multiplications.
//   - MatchingNumbers: exponential in the size of the largest connected
//     component of the conflict graph in the worst case, memoized on vertex
//     subsets; components of tens of entrants are instant, at most 64 are
//     accepted (ErrTooManyConflicts).
package count
