package count_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bracketodds/core"
	"github.com/katalvlaran/bracketodds/count"
	"github.com/katalvlaran/bracketodds/entrant"
	"github.com/katalvlaran/bracketodds/enumerate"
	"github.com/katalvlaran/bracketodds/rule"
)

var (
	t1  = entrant.New("T1", "LCK")
	gen = entrant.New("GEN", "LCK")
	hle = entrant.New("HLE", "LCK")
	dk  = entrant.New("DK", "LCK")
	g2  = entrant.New("G2", "LEC")
	fnc = entrant.New("FNC", "LEC")
	blg = entrant.New("BLG", "LPL")
	fly = entrant.New("FLY", "LCS")

	worlds = []entrant.Entrant{t1, gen, hle, dk, g2, fnc, blg, fly}

	sameRegion = rule.Set{
		rule.Forbid(t1, gen), rule.Forbid(t1, hle), rule.Forbid(t1, dk),
		rule.Forbid(gen, hle), rule.Forbid(gen, dk), rule.Forbid(hle, dk),
		rule.Forbid(fnc, g2),
	}
)

func pool(n int) []entrant.Entrant {
	out := make([]entrant.Entrant, n)
	for i := range out {
		out[i] = entrant.New(fmt.Sprintf("E%d", i), "")
	}

	return out
}

func ints(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}

	return out
}

func TestDoubleFactorial(t *testing.T) {
	want := map[int]int64{-1: 1, 0: 1, 1: 1, 2: 2, 3: 3, 4: 8, 5: 15, 6: 48, 7: 105, 9: 945}
	for n, w := range want {
		assert.Equal(t, 0, count.DoubleFactorial(n).Cmp(big.NewInt(w)), "n=%d", n)
	}

	// 39!! exceeds uint64.
	big39, ok := new(big.Int).SetString("319830986772877770815625", 10)
	require.True(t, ok)
	assert.Equal(t, 0, count.DoubleFactorial(39).Cmp(big39))
}

func TestBrackets_MatchesEnumeratorBothParities(t *testing.T) {
	// Odd n folds the bye into (n-1)!!: 1, 2, 8, 48 for n = 1, 3, 5, 7.
	for n := 0; n <= 9; n++ {
		got, err := enumerate.Count(pool(n), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(got), count.Brackets(n).Int64(), "n=%d", n)
	}
}

func TestBinomial(t *testing.T) {
	assert.Equal(t, int64(10), count.Binomial(5, 2).Int64())
	assert.Equal(t, int64(1), count.Binomial(7, 0).Int64())
	assert.Zero(t, count.Binomial(3, 4).Sign())
	assert.Zero(t, count.Binomial(3, -1).Sign())
}

func TestMatchingNumbers(t *testing.T) {
	k4 := core.NewGraph()
	require.NoError(t, k4.AddClique([]string{"A", "B", "C", "D"}))
	m, err := count.MatchingNumbers(k4)
	require.NoError(t, err)
	assert.Equal(t, ints(1, 6, 3), m)

	path := core.NewGraph()
	require.NoError(t, path.AddEdge("A", "B"))
	require.NoError(t, path.AddEdge("B", "C"))
	require.NoError(t, path.AddEdge("C", "D"))
	m, err = count.MatchingNumbers(path)
	require.NoError(t, err)
	assert.Equal(t, ints(1, 3, 1), m)

	m, err = count.MatchingNumbers(core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, ints(1), m)

	g, _, err := sameRegion.Conflicts(worlds)
	require.NoError(t, err)
	m, err = count.MatchingNumbers(g)
	require.NoError(t, err)
	assert.Equal(t, ints(1, 7, 9, 3), m)
}

func TestMatchingNumbers_DisjointEdgesAreBinomial(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i)))
	}
	m, err := count.MatchingNumbers(g)
	require.NoError(t, err)
	require.Len(t, m, 6)
	for i := range m {
		assert.Equal(t, 0, m[i].Cmp(count.Binomial(5, i)), "i=%d", i)
	}
}

func TestMatchingNumbers_ComponentsMultiply(t *testing.T) {
	// 40 disjoint edges: 80 conflict vertices, every component of size 2.
	g := core.NewGraph()
	for i := 0; i < 40; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i)))
	}
	m, err := count.MatchingNumbers(g)
	require.NoError(t, err)
	require.Len(t, m, 41)
	assert.Equal(t, 0, m[20].Cmp(count.Binomial(40, 20)))

	// Two disjoint triangles: (1 + 3x)^2.
	tri := core.NewGraph()
	require.NoError(t, tri.AddClique([]string{"A", "B", "C"}))
	require.NoError(t, tri.AddClique([]string{"D", "E", "F"}))
	m, err = count.MatchingNumbers(tri)
	require.NoError(t, err)
	assert.Equal(t, ints(1, 6, 9), m)
}

func TestMatchingNumbers_TooMany(t *testing.T) {
	// A star on 65 vertices is one component.
	g := core.NewGraph()
	for i := 0; i < 64; i++ {
		require.NoError(t, g.AddEdge("hub", fmt.Sprintf("leaf%d", i)))
	}
	_, err := count.MatchingNumbers(g)
	assert.ErrorIs(t, err, count.ErrTooManyConflicts)
	assert.ErrorIs(t, err, count.ErrNoClosedForm)
}

func TestDisjointAvoiding(t *testing.T) {
	assert.Equal(t, int64(90), count.DisjointAvoiding(8, 1).Int64())
	// 105 - 2·15 + 3 = 78
	assert.Equal(t, int64(78), count.DisjointAvoiding(8, 2).Int64())
	assert.Equal(t, int64(105), count.DisjointAvoiding(8, 0).Int64())
}

func TestAvoiding_OddPool(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("E0", "E1"))
	_, err := count.Avoiding(3, g)
	assert.ErrorIs(t, err, count.ErrOddPool)

	n, err := count.Avoiding(5, core.NewGraph())
	require.NoError(t, err)
	assert.Equal(t, int64(8), n.Int64())
}

func TestCounter_Fixtures(t *testing.T) {
	cases := []struct {
		name       string
		pool       []entrant.Entrant
		rules      rule.Set
		events     []entrant.Pairing
		satisfying int64
		total      int64
	}{
		{"no rules", worlds, nil, []entrant.Pairing{entrant.Pair(t1, g2)}, 15, 105},
		{"distinct", worlds, rule.Set{rule.DistinctCategory{}}, []entrant.Pairing{entrant.Pair(t1, g2)}, 6, 24},
		{"explicit pairs", worlds, sameRegion, []entrant.Pairing{entrant.Pair(t1, g2)}, 6, 24},
		{"forbidden event", worlds, rule.Set{rule.Forbid(t1, g2)}, []entrant.Pairing{entrant.Pair(g2, t1)}, 0, 90},
		{"two events", worlds, rule.Set{rule.Forbid(t1, g2)}, []entrant.Pairing{entrant.Pair(t1, gen), entrant.Pair(hle, g2)}, 3, 90},
		{"no events", worlds, rule.Set{rule.DistinctCategory{}}, nil, 24, 24},
		{"distinct regions 10", []entrant.Entrant{gen, dk, g2, fnc, blg, fly}, rule.Set{rule.DistinctCategory{}}, nil, 10, 10},
		{"distinct regions 6", []entrant.Entrant{gen, hle, dk, fnc, blg, fly}, rule.Set{rule.DistinctCategory{}}, nil, 6, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := count.New(tc.pool, tc.rules)
			require.NoError(t, err)

			total, err := c.Total()
			require.NoError(t, err)
			assert.Equal(t, tc.total, total.Int64())

			sat, err := c.Satisfying(tc.events)
			require.NoError(t, err)
			assert.Equal(t, tc.satisfying, sat.Int64())
		})
	}
}

func TestCounter_ConflictsIsACopy(t *testing.T) {
	c, err := count.New(worlds, sameRegion)
	require.NoError(t, err)

	g := c.Conflicts()
	assert.Equal(t, 7, g.EdgeCount())
	require.NoError(t, g.AddEdge("BLG", "FLY"))
	assert.Equal(t, 7, c.Conflicts().EdgeCount())

	total, err := c.Total()
	require.NoError(t, err)
	assert.Equal(t, int64(24), total.Int64())
}

func TestCounter_Errors(t *testing.T) {
	opaque := rule.Set{rule.Func(func(a, b entrant.Entrant) bool { return true })}
	_, err := count.New(worlds, opaque)
	assert.ErrorIs(t, err, count.ErrUnsupportedRule)
	assert.ErrorIs(t, err, count.ErrNoClosedForm)

	odd := []entrant.Entrant{t1, gen, g2}
	_, err = count.New(odd, rule.Set{rule.DistinctCategory{}})
	assert.ErrorIs(t, err, count.ErrOddPool)

	c, err := count.New(odd, nil)
	require.NoError(t, err)
	total, err := c.Total()
	require.NoError(t, err)
	assert.Equal(t, int64(2), total.Int64())
	_, err = c.Satisfying([]entrant.Pairing{entrant.Pair(t1, gen)})
	assert.ErrorIs(t, err, count.ErrOddPool)

	_, err = count.New([]entrant.Entrant{t1, t1}, nil)
	assert.ErrorIs(t, err, entrant.ErrDuplicateEntrant)

	c, err = count.New(worlds, nil)
	require.NoError(t, err)
	_, err = c.Satisfying([]entrant.Pairing{entrant.Pair(t1, gen), entrant.Pair(gen, hle)})
	assert.ErrorIs(t, err, count.ErrImpossible)
	assert.ErrorIs(t, err, entrant.ErrOverlappingEvents)
	_, err = c.Satisfying([]entrant.Pairing{entrant.Pair(t1, entrant.New("ZZ", ""))})
	assert.ErrorIs(t, err, entrant.ErrUnknownEntrant)
}

// randomForbidden draws a random forbidden-pair rule set over p.
func randomForbidden(rng *rand.Rand, p []entrant.Entrant, density float64) rule.Set {
	var s rule.Set
	for i := 0; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			if rng.Float64() < density {
				s = append(s, rule.Forbid(p[i], p[j]))
			}
		}
	}

	return s
}

func TestCounter_AgreesWithEnumerator(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 60; trial++ {
		n := 2 * (1 + rng.Intn(4)) // 2,4,6,8
		p := pool(n)
		rules := randomForbidden(rng, p, 0.35)

		c, err := count.New(p, rules)
		require.NoError(t, err)
		total, err := c.Total()
		require.NoError(t, err)

		brute, err := enumerate.Count(p, rules)
		require.NoError(t, err)
		require.Equal(t, int64(brute), total.Int64(), "trial %d n=%d rules=%v", trial, n, rules)

		// Force the first pairing of the pool and compare with a brute-force tally.
		ev := []entrant.Pairing{entrant.Pair(p[0], p[n-1])}
		sat, err := c.Satisfying(ev)
		require.NoError(t, err)
		hits := 0
		for b := range enumerate.All(p, rules) {
			if b.ContainsAll(ev) {
				hits++
			}
		}
		require.Equal(t, int64(hits), sat.Int64(), "trial %d", trial)
	}
}

func TestCounter_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	p := pool(8)
	var rules rule.Set
	prev := count.Brackets(8)
	for step := 0; step < 10; step++ {
		rules = rules.With(randomForbidden(rng, p, 0.1)...)
		c, err := count.New(p, rules)
		require.NoError(t, err)
		total, err := c.Total()
		require.NoError(t, err)
		assert.LessOrEqual(t, total.Cmp(prev), 0, "adding rules must not increase the total")
		prev = total
	}

	c, err := count.New(p, nil)
	require.NoError(t, err)
	one, err := c.Satisfying([]entrant.Pairing{entrant.Pair(p[0], p[1])})
	require.NoError(t, err)
	two, err := c.Satisfying([]entrant.Pairing{entrant.Pair(p[0], p[1]), entrant.Pair(p[2], p[3])})
	require.NoError(t, err)
	assert.Equal(t, int64(15), one.Int64())
	assert.Equal(t, int64(3), two.Int64())
}
