// SPDX-License-Identifier: MIT

package enumerate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bracketodds/entrant"
	"github.com/katalvlaran/bracketodds/rule"
)

// Visitor receives each bracket. The bracket is a fresh slice owned by the
// visitor. Returning ErrStop ends the walk cleanly; any other error aborts
// it and is returned by Walk.
type Visitor func(entrant.Bracket) error

// walker carries the state of one Walk call.
type walker struct {
	rules   rule.Set
	opts    Options
	visit   Visitor
	partial entrant.Bracket
	yielded int
}

// errLimit is the internal signal for Options.Limit.
var errLimit = errors.New("enumerate: limit reached")

// Walk calls visit for every bracket of pool under rules, in enumeration order.
//
// Returns nil when the traversal completes, the visitor returns ErrStop or
// the limit is reached; the context error when canceled; otherwise the
// visitor's error wrapped.
func Walk(pool []entrant.Entrant, rules rule.Set, visit Visitor, opts ...Option) error {
	w := &walker{
		rules:   rules,
		opts:    applyOptions(opts),
		visit:   visit,
		partial: make(entrant.Bracket, 0, (len(pool)+1)/2),
	}

	err := w.descend(pool)
	if errors.Is(err, ErrStop) || errors.Is(err, errLimit) {
		return nil
	}

	return err
}

// descend enumerates pool, prefixed by w.partial.
func (w *walker) descend(pool []entrant.Entrant) error {
	switch len(pool) {
	case 0:
		return w.emit()
	case 1:
		w.partial = append(w.partial, entrant.Pair(pool[0], entrant.Bye))
		err := w.emit()
		w.partial = w.partial[:len(w.partial)-1]

		return err
	}

	pivot := pool[0]
	for i := 1; i < len(pool); i++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		if !w.rules.Allows(pivot, pool[i]) {
			continue
		}

		w.partial = append(w.partial, entrant.Pair(pivot, pool[i]))
		err := w.descend(remaining(pool, i))
		w.partial = w.partial[:len(w.partial)-1]
		if err != nil {
			return err
		}
	}

	return nil
}

// emit hands a copy of the completed bracket to the visitor.
func (w *walker) emit() error {
	out := make(entrant.Bracket, len(w.partial))
	copy(out, w.partial)

	if err := w.visit(out); err != nil {
		if errors.Is(err, ErrStop) {
			return err
		}

		return fmt.Errorf("enumerate: visitor: %w", err)
	}
	w.yielded++
	if w.opts.Limit > 0 && w.yielded >= w.opts.Limit {
		return errLimit
	}

	return nil
}

// remaining returns a fresh pool without pool[0] and pool[i].
func remaining(pool []entrant.Entrant, i int) []entrant.Entrant {
	out := make([]entrant.Entrant, 0, len(pool)-2)
	out = append(out, pool[1:i]...)

	return append(out, pool[i+1:]...)
}

// Count returns the number of brackets of pool under rules.
// It honors WithContext; WithLimit caps the count.
func Count(pool []entrant.Entrant, rules rule.Set, opts ...Option) (int, error) {
	n := 0
	err := Walk(pool, rules, func(entrant.Bracket) error {
		n++
		return nil
	}, opts...)

	return n, err
}
