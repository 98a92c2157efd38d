// SPDX-License-Identifier: MIT

package count

import (
	"errors"
	"fmt"
)

var (
	// ErrNoClosedForm is wrapped by every error meaning "use the enumerator".
	ErrNoClosedForm = errors.New("count: no closed form")

	// ErrUnsupportedRule indicates a rule that cannot list its forbidden pairs.
	ErrUnsupportedRule = fmt.Errorf("%w: rule is not a forbidden-pair rule", ErrNoClosedForm)

	// ErrOddPool indicates forbidden pairs or forced events over an odd pool.
	ErrOddPool = fmt.Errorf("%w: odd pool with constraints", ErrNoClosedForm)

	// ErrTooManyConflicts indicates a conflict graph component with more
	// than maxConflictVertices vertices.
	ErrTooManyConflicts = fmt.Errorf("%w: conflict graph too large", ErrNoClosedForm)

	// ErrImpossible indicates forced events that cannot co-occur in any
	// bracket of the pool (overlapping, unknown, self or bye events).
	ErrImpossible = errors.New("count: impossible events")
)

// maxConflictVertices bounds the bitmask used by MatchingNumbers.
const maxConflictVertices = 64
