// SPDX-License-Identifier: MIT

package enumerate

import (
	"iter"

	"github.com/katalvlaran/bracketodds/entrant"
	"github.com/katalvlaran/bracketodds/rule"
)

// frame is one level of the work stack: a pool of two or more entrants and
// the index of the next partner to try for its pivot pool[0].
type frame struct {
	pool []entrant.Entrant
	next int
}

// Iterator lazily yields brackets. Frame k of the stack owns partial[k],
// the pairing chosen at depth k; resuming truncates partial to the frame
// depth before trying the next partner.
//
// An Iterator is single-use and not safe for concurrent use; create a new
// one for a fresh traversal.
type Iterator struct {
	pool    []entrant.Entrant
	rules   rule.Set
	opts    Options
	stack   []frame
	partial entrant.Bracket
	started bool
	done    bool
	yielded int
	err     error
}

// NewIterator prepares a traversal of pool under rules. No work is done
// until the first Next call. pool is copied.
func NewIterator(pool []entrant.Entrant, rules rule.Set, opts ...Option) *Iterator {
	return &Iterator{
		pool:  append([]entrant.Entrant(nil), pool...),
		rules: rules,
		opts:  applyOptions(opts),
	}
}

// Next returns the next bracket, or false when the traversal is exhausted,
// the limit is reached or the context is canceled (see Err).
func (it *Iterator) Next() (entrant.Bracket, bool) {
	if it.done {
		return nil, false
	}
	if it.opts.Limit > 0 && it.yielded >= it.opts.Limit {
		it.done = true
		return nil, false
	}
	if !it.started {
		it.started = true
		switch len(it.pool) {
		case 0:
			return it.finish(entrant.Bracket{})
		case 1:
			return it.finish(entrant.Bracket{entrant.Pair(it.pool[0], entrant.Bye)})
		}
		it.stack = append(it.stack, frame{pool: it.pool, next: 1})
	}

	for len(it.stack) > 0 {
		if err := it.opts.Ctx.Err(); err != nil {
			it.err = err
			it.done = true
			return nil, false
		}

		depth := len(it.stack) - 1
		top := &it.stack[depth]
		it.partial = it.partial[:depth]
		if top.next >= len(top.pool) {
			it.stack = it.stack[:depth]
			continue
		}

		i := top.next
		top.next++
		pivot, partner := top.pool[0], top.pool[i]
		if !it.rules.Allows(pivot, partner) {
			continue
		}
		it.partial = append(it.partial, entrant.Pair(pivot, partner))

		rest := remaining(top.pool, i)
		switch len(rest) {
		case 0:
			return it.yield(it.snapshot())
		case 1:
			return it.yield(append(it.snapshot(), entrant.Pair(rest[0], entrant.Bye)))
		default:
			it.stack = append(it.stack, frame{pool: rest, next: 1})
		}
	}

	it.done = true

	return nil, false
}

// Err returns the context error that stopped the iterator, if any.
func (it *Iterator) Err() error { return it.err }

func (it *Iterator) snapshot() entrant.Bracket {
	out := make(entrant.Bracket, len(it.partial), len(it.partial)+1)
	copy(out, it.partial)

	return out
}

func (it *Iterator) yield(b entrant.Bracket) (entrant.Bracket, bool) {
	it.yielded++

	return b, true
}

// finish yields the only bracket of a trivial pool.
func (it *Iterator) finish(b entrant.Bracket) (entrant.Bracket, bool) {
	it.done = true

	return it.yield(b)
}

// All returns a single-pass sequence over the brackets of pool under rules.
// Each range over the returned sequence starts a fresh traversal.
func All(pool []entrant.Entrant, rules rule.Set, opts ...Option) iter.Seq[entrant.Bracket] {
	return func(yield func(entrant.Bracket) bool) {
		it := NewIterator(pool, rules, opts...)
		for {
			b, ok := it.Next()
			if !ok || !yield(b) {
				return
			}
		}
	}
}
