// SPDX-License-Identifier: MIT

package count

import (
	"math/big"

	"github.com/katalvlaran/bracketodds/core"
)

// DoubleFactorial returns n!! = n·(n-2)·(n-4)···, ending at 1 or 2.
// By convention 0!! = (-1)!! = 1; any n <= 0 yields 1.
// Complexity: O(n) multiplications.
func DoubleFactorial(n int) *big.Int {
	out := big.NewInt(1)
	for k := n; k > 1; k -= 2 {
		out.Mul(out, big.NewInt(int64(k)))
	}

	return out
}

// Brackets returns the number of unconstrained brackets of n entrants, (n-1)!!.
func Brackets(n int) *big.Int {
	return DoubleFactorial(n - 1)
}

// Binomial returns C(n, k); 0 when k < 0 or k > n.
func Binomial(n, k int) *big.Int {
	if k < 0 || n < 0 || k > n {
		return new(big.Int)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}

// DisjointAvoiding returns the number of brackets of an even pool of n
// entrants avoiding r pairwise-disjoint forbidden pairs:
//
//	Σ_{i=0..r} (-1)^i · C(r,i) · (n-2i-1)!!
//
// The caller guarantees the pairs are disjoint and lie inside the pool
// (so 2r <= n).
func DisjointAvoiding(n, r int) *big.Int {
	terms := make([]*big.Int, r+1)
	for i := 0; i <= r; i++ {
		terms[i] = Binomial(r, i)
	}

	return alternatingSum(n, terms)
}

// Avoiding returns the number of brackets of an n-entrant pool that avoid
// every edge of conflicts, whose vertices must be pool members.
//
// Errors:
//   - ErrOddPool when n is odd and conflicts has edges.
//   - ErrTooManyConflicts from MatchingNumbers.
func Avoiding(n int, conflicts *core.Graph) (*big.Int, error) {
	edges := 0
	if conflicts != nil {
		edges = conflicts.EdgeCount()
	}
	if edges == 0 {
		return Brackets(n), nil
	}
	if n%2 == 1 {
		return nil, ErrOddPool
	}
	if disjoint(conflicts) {
		return DisjointAvoiding(n, edges), nil
	}

	m, err := MatchingNumbers(conflicts)
	if err != nil {
		return nil, err
	}

	return alternatingSum(n, m), nil
}

// alternatingSum evaluates Σ_i (-1)^i · terms[i] · (n-2i-1)!!.
func alternatingSum(n int, terms []*big.Int) *big.Int {
	sum := new(big.Int)
	term := new(big.Int)
	for i, t := range terms {
		if 2*i > n {
			break
		}
		term.Mul(t, Brackets(n-2*i))
		if i%2 == 0 {
			sum.Add(sum, term)
		} else {
			sum.Sub(sum, term)
		}
	}

	return sum
}

// disjoint reports whether no two edges of g share a vertex.
func disjoint(g *core.Graph) bool {
	for _, id := range g.Vertices() {
		if deg, _ := g.Degree(id); deg > 1 {
			return false
		}
	}

	return true
}
