package service

import (
	"sort"

	"github.com/radityo/payoff-engine/internal/domain"
)

// workingDebt is the engine's mutable per-debt state. inputIndex is the
// position in the normalized input and doubles as the final tie-break.
type workingDebt struct {
	inputIndex     int
	id             string
	name           string
	apr            float64
	minimumPayment float64
	balance        float64
}

// lessFunc orders two working debts for extra-payment priority.
type lessFunc func(a, b *workingDebt) bool

// snowballLess prefers the smallest current balance; ties go to the lower
// APR, then to input order.
func snowballLess(a, b *workingDebt) bool {
	if a.balance != b.balance {
		return a.balance < b.balance
	}
	if a.apr != b.apr {
		return a.apr < b.apr
	}
	return a.inputIndex < b.inputIndex
}

// avalancheLess prefers the highest APR; ties go to the smaller current
// balance, then to input order.
func avalancheLess(a, b *workingDebt) bool {
	if a.apr != b.apr {
		return a.apr > b.apr
	}
	if a.balance != b.balance {
		return a.balance < b.balance
	}
	return a.inputIndex < b.inputIndex
}

// orderingFor returns the comparator for a strategy. Adding a strategy means
// adding a comparator here, not touching the month loop.
func orderingFor(strategy domain.Strategy) lessFunc {
	if strategy == domain.StrategyAvalanche {
		return avalancheLess
	}
	return snowballLess
}

// activeInOrder returns the debts with positive balance sorted by the given
// comparator. The input slice is left untouched.
func activeInOrder(debts []*workingDebt, less lessFunc) []*workingDebt {
	active := make([]*workingDebt, 0, len(debts))
	for _, d := range debts {
		if d.balance > 0 {
			active = append(active, d)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return less(active[i], active[j])
	})
	return active
}
