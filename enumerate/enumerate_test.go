package enumerate_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bracketodds/entrant"
	"github.com/katalvlaran/bracketodds/enumerate"
	"github.com/katalvlaran/bracketodds/rule"
)

// pool builds n entrants "E0".."E{n-1}", all in category "c".
func pool(n int) []entrant.Entrant {
	out := make([]entrant.Entrant, n)
	for i := range out {
		out[i] = entrant.New(fmt.Sprintf("E%d", i), "c")
	}

	return out
}

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
)

func collectWalk(t *testing.T, p []entrant.Entrant, rules rule.Set) []entrant.Bracket {
	t.Helper()
	var out []entrant.Bracket
	err := enumerate.Walk(p, rules, func(b entrant.Bracket) error {
		out = append(out, b)
		return nil
	})
	require.NoError(t, err)

	return out
}

func collectIterator(p []entrant.Entrant, rules rule.Set) []entrant.Bracket {
	var out []entrant.Bracket
	it := enumerate.NewIterator(p, rules)
	for b, ok := it.Next(); ok; b, ok = it.Next() {
		out = append(out, b)
	}

	return out
}

func TestCount_Unconstrained(t *testing.T) {
	// (n-1)!! for even and odd n.
	want := []int{1, 1, 1, 2, 3, 8, 15, 48, 105}
	for n, w := range want {
		got, err := enumerate.Count(pool(n), nil)
		require.NoError(t, err)
		assert.Equal(t, w, got, "n=%d", n)
	}
}

func TestWalk_EveryBracketPartitionsThePool(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8} {
		p := pool(n)
		seen := make(map[string]bool)
		for _, b := range collectWalk(t, p, nil) {
			used := make(map[string]int)
			byes := 0
			for _, pr := range b {
				used[pr.A.ID]++
				if pr.B.IsBye() {
					byes++
					continue
				}
				used[pr.B.ID]++
			}
			assert.Len(t, used, n, "n=%d bracket=%s", n, b)
			for id, c := range used {
				assert.Equal(t, 1, c, "entrant %s appears %d times", id, c)
			}
			assert.Equal(t, n%2, byes)

			key := b.Key()
			assert.False(t, seen[key], "duplicate bracket %s", b)
			seen[key] = true
		}
	}
}

func TestWalk_OrderFollowsPool(t *testing.T) {
	p := pool(4)
	got := collectWalk(t, p, nil)
	want := []string{
		"[E0 vs E1, E2 vs E3]",
		"[E0 vs E2, E1 vs E3]",
		"[E0 vs E3, E1 vs E2]",
	}
	require.Len(t, got, 3)
	for i := range want {
		assert.Equal(t, want[i], got[i].String())
	}
}

func TestWalk_OddPoolByes(t *testing.T) {
	got := collectWalk(t, pool(3), nil)
	require.Len(t, got, 2)
	assert.Equal(t, "[E0 vs E1, E2 vs BYE]", got[0].String())
	assert.Equal(t, "[E0 vs E2, E1 vs BYE]", got[1].String())

	single := collectWalk(t, pool(1), nil)
	assert.Equal(t, []entrant.Bracket{{entrant.Pair(pool(1)[0], entrant.Bye)}}, single)

	empty := collectWalk(t, nil, nil)
	assert.Equal(t, []entrant.Bracket{{}}, empty)
}

func TestIterator_MatchesWalk(t *testing.T) {
	cases := []struct {
		name  string
		pool  []entrant.Entrant
		rules rule.Set
	}{
		{"empty", nil, nil},
		{"single", pool(1), nil},
		{"pair", pool(2), nil},
		{"seven", pool(7), nil},
		{"eight", pool(8), nil},
		{"worlds-distinct", worlds, rule.Set{rule.DistinctCategory{}}},
		{"worlds-forbid", worlds, rule.Set{rule.Forbid(t1, g2)}},
		{"blocked-pair", pool(2), rule.Set{rule.Forbid(pool(2)[0], pool(2)[1])}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			walked := collectWalk(t, tc.pool, tc.rules)
			assert.Equal(t, walked, collectIterator(tc.pool, tc.rules))

			var ranged []entrant.Bracket
			for b := range enumerate.All(tc.pool, tc.rules) {
				ranged = append(ranged, b)
			}
			assert.Equal(t, walked, ranged)
		})
	}
}

func TestCount_Rules(t *testing.T) {
	distinct := rule.Set{rule.DistinctCategory{}}
	n, err := enumerate.Count(worlds, distinct)
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	explicit := rule.Set{
		rule.Forbid(t1, gen), rule.Forbid(t1, hle), rule.Forbid(t1, dk),
		rule.Forbid(gen, hle), rule.Forbid(gen, dk), rule.Forbid(hle, dk),
		rule.Forbid(fnc, g2),
	}
	n, err = enumerate.Count(worlds, explicit)
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	n, err = enumerate.Count(worlds, rule.Set{rule.Forbid(t1, g2)})
	require.NoError(t, err)
	assert.Equal(t, 90, n)
}

func TestCount_AllFirstStepsBlocked(t *testing.T) {
	// Everyone shares a category: no pairing is allowed at all.
	n, err := enumerate.Count(pool(4), rule.Set{rule.DistinctCategory{}})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWalk_Stop(t *testing.T) {
	calls := 0
	err := enumerate.Walk(pool(8), nil, func(entrant.Bracket) error {
		calls++
		if calls == 5 {
			return enumerate.ErrStop
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 5, calls)
}

func TestWalk_VisitorError(t *testing.T) {
	boom := errors.New("boom")
	err := enumerate.Walk(pool(4), nil, func(entrant.Bracket) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestLimit(t *testing.T) {
	n, err := enumerate.Count(pool(8), nil, enumerate.WithLimit(10))
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	it := enumerate.NewIterator(pool(8), nil, enumerate.WithLimit(2))
	_, ok := it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := enumerate.Count(pool(6), nil, enumerate.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	it := enumerate.NewIterator(pool(6), nil, enumerate.WithContext(ctx))
	_, ok := it.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, it.Err(), context.Canceled)
}

func TestAll_BreakStopsEarly(t *testing.T) {
	taken := 0
	for range enumerate.All(pool(16), nil) {
		taken++
		if taken == 3 {
			break
		}
	}
	assert.Equal(t, 3, taken)
}

func TestAll_FreshTraversalPerRange(t *testing.T) {
	seq := enumerate.All(pool(4), nil)
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	assert.Equal(t, 3, first)
	assert.Equal(t, 3, second)
}

func TestIterator_BracketsAreIndependent(t *testing.T) {
	it := enumerate.NewIterator(pool(4), nil)
	a, _ := it.Next()
	before := a.String()
	_, _ = it.Next()
	assert.Equal(t, before, a.String(), "later steps must not rewrite earlier brackets")
}
