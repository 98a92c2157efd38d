// SPDX-License-Identifier: MIT
// Package entrant declares Entrant, Pairing, Bracket and the sentinel errors
// shared by pool and event validation.

package entrant

import "errors"

var (
	// ErrEmptyID indicates an entrant with an empty ID inside a pool.
	ErrEmptyID = errors.New("entrant: ID is empty")

	// ErrDuplicateEntrant indicates two pool members with the same ID.
	ErrDuplicateEntrant = errors.New("entrant: duplicate entrant")

	// ErrUnknownEntrant indicates an event member that is not in the pool.
	ErrUnknownEntrant = errors.New("entrant: unknown entrant")

	// ErrSelfPairing indicates an event pairing an entrant with itself.
	ErrSelfPairing = errors.New("entrant: entrant paired with itself")

	// ErrOverlappingEvents indicates two events sharing an entrant.
	ErrOverlappingEvents = errors.New("entrant: events are not disjoint")

	// ErrByeEvent indicates an event that references the Bye sentinel.
	ErrByeEvent = errors.New("entrant: bye cannot be forced")
)

// Entrant is a participant to be paired.
//
// Two entrants with the same ID denote the same logical participant;
// Category is read by rules only and never mutated by the engine.
type Entrant struct {
	// ID uniquely identifies the entrant inside a pool. Must be non-empty.
	ID string

	// Category is an optional tag (region, pot…) consumed by rules.
	Category string
}

// Bye is the sentinel opponent of the entrant left over in an odd pool.
var Bye = Entrant{}

// New returns an Entrant with the given id and category.
func New(id, category string) Entrant {
	return Entrant{ID: id, Category: category}
}

// IsBye reports whether e is the Bye sentinel.
func (e Entrant) IsBye() bool { return e.ID == "" }

// Same reports whether e and o denote the same logical entrant.
func (e Entrant) Same(o Entrant) bool { return e.ID == o.ID }

// String returns the entrant ID, or "BYE" for the sentinel.
func (e Entrant) String() string {
	if e.IsBye() {
		return "BYE"
	}

	return e.ID
}

// Pairing is one unordered match. B is Bye when A sat out an odd step.
type Pairing struct {
	A Entrant
	B Entrant
}

// Pair is shorthand for Pairing{A: a, B: b}.
func Pair(a, b Entrant) Pairing {
	return Pairing{A: a, B: b}
}

// Bracket is an ordered sequence of pairings partitioning a pool.
// Order reflects the enumeration that produced it.
type Bracket []Pairing
