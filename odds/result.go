// SPDX-License-Identifier: MIT

package odds

import (
	"math/big"
)

// Result is the answer to a query: Satisfying brackets out of Total valid
// brackets, Satisfying <= Total. A nil field reads as zero.
type Result struct {
	Satisfying *big.Int
	Total      *big.Int
}

// NewResult builds a Result from machine integers.
func NewResult(satisfying, total int64) Result {
	return Result{Satisfying: big.NewInt(satisfying), Total: big.NewInt(total)}
}

// impossible is the zero-over-zero result.
func impossible() Result { return NewResult(0, 0) }

func orZero(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}

	return x
}

// Impossible reports the degenerate 0/0 result: the query named impossible
// events or no bracket satisfies the rules.
func (r Result) Impossible() bool {
	return orZero(r.Total).Sign() == 0
}

// Ratio returns Satisfying/Total in lowest terms, or nil when Impossible.
func (r Result) Ratio() *big.Rat {
	if r.Impossible() {
		return nil
	}

	return new(big.Rat).SetFrac(orZero(r.Satisfying), orZero(r.Total))
}

// Float64 returns the ratio as a float, 0 when Impossible.
func (r Result) Float64() float64 {
	q := r.Ratio()
	if q == nil {
		return 0
	}
	f, _ := q.Float64()

	return f
}

// Equal reports whether both counts match.
func (r Result) Equal(o Result) bool {
	return orZero(r.Satisfying).Cmp(orZero(o.Satisfying)) == 0 &&
		orZero(r.Total).Cmp(orZero(o.Total)) == 0
}

// String renders "satisfying/total" without reducing the fraction.
func (r Result) String() string {
	return orZero(r.Satisfying).String() + "/" + orZero(r.Total).String()
}
