// SPDX-License-Identifier: MIT

package count

import (
	"math/big"
	"math/bits"

	"github.com/katalvlaran/bracketodds/core"
)

// MatchingNumbers returns m where m[i] is the number of i-edge matchings of
// g (sets of i pairwise-disjoint edges); m[0] == 1. len(m)-1 is the size of
// a maximum matching.
//
// Implementation:
//   - Stage 1: split g into connected components; the matching polynomial
//     of g is the product of theirs.
//   - Stage 2: per component, index its vertices as bits and expand on the
//     lowest vertex v of the remaining set S:
//     M(S) = M(S∖v) + x · Σ_{u ∈ N(v)∩S} M(S∖{v,u}),
//     memoized on S.
//
// Errors: ErrTooManyConflicts when a component has more than 64 vertices.
func MatchingNumbers(g *core.Graph) ([]*big.Int, error) {
	out := []*big.Int{big.NewInt(1)}
	if g == nil || g.EdgeCount() == 0 {
		return out, nil
	}

	for _, comp := range core.Components(g) {
		if len(comp) < 2 {
			continue
		}
		if len(comp) > maxConflictVertices {
			return nil, ErrTooManyConflicts
		}
		out = mulPoly(out, componentMatchings(g, comp))
	}

	return out, nil
}

// componentMatchings returns the matching polynomial of the connected
// component comp of g, len(comp) <= 64.
func componentMatchings(g *core.Graph, comp []string) []*big.Int {
	index := make(map[string]uint, len(comp))
	for i, id := range comp {
		index[id] = uint(i)
	}
	nbr := make([]uint64, len(comp))
	for i, id := range comp {
		nbs, _ := g.NeighborIDs(id)
		for _, nb := range nbs {
			nbr[i] |= 1 << index[nb]
		}
	}

	var full uint64
	if len(comp) == 64 {
		full = ^uint64(0)
	} else {
		full = (uint64(1) << uint(len(comp))) - 1
	}

	mc := &matchCounter{nbr: nbr, memo: make(map[uint64][]*big.Int)}

	return mc.count(full)
}

// mulPoly returns the product of two coefficient slices.
func mulPoly(a, b []*big.Int) []*big.Int {
	out := make([]*big.Int, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	var term big.Int
	for i, x := range a {
		for j, y := range b {
			out[i+j].Add(out[i+j], term.Mul(x, y))
		}
	}

	return out
}

// matchCounter memoizes matching polynomials per vertex subset.
// Cached slices are shared and never mutated.
type matchCounter struct {
	nbr  []uint64
	memo map[uint64][]*big.Int
}

func (mc *matchCounter) count(set uint64) []*big.Int {
	if set == 0 {
		return []*big.Int{big.NewInt(1)}
	}
	if got, ok := mc.memo[set]; ok {
		return got
	}

	v := uint(bits.TrailingZeros64(set))
	rest := set &^ (1 << v)
	out := clonePoly(mc.count(rest))

	for cand := mc.nbr[v] & rest; cand != 0; cand &= cand - 1 {
		u := uint(bits.TrailingZeros64(cand))
		sub := mc.count(rest &^ (1 << u))
		for len(out) < len(sub)+1 {
			out = append(out, new(big.Int))
		}
		for i, c := range sub {
			out[i+1].Add(out[i+1], c)
		}
	}
	mc.memo[set] = out

	return out
}

func clonePoly(p []*big.Int) []*big.Int {
	out := make([]*big.Int, len(p))
	for i, c := range p {
		out[i] = new(big.Int).Set(c)
	}

	return out
}
