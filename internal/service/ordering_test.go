package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radityo/payoff-engine/internal/domain"
)

func wd(idx int, name string, balance, apr float64) *workingDebt {
	return &workingDebt{inputIndex: idx, id: name, name: name, balance: balance, apr: apr}
}

func orderedNames(debts []*workingDebt, strategy domain.Strategy) []string {
	ordered := activeInOrder(debts, orderingFor(strategy))
	names := make([]string, 0, len(ordered))
	for _, d := range ordered {
		names = append(names, d.name)
	}
	return names
}

func TestOrdering_Snowball(t *testing.T) {
	tests := []struct {
		name     string
		debts    []*workingDebt
		expected []string
	}{
		{
			name: "smallest balance first",
			debts: []*workingDebt{
				wd(0, "big", 5000, 5),
				wd(1, "small", 300, 3),
				wd(2, "mid", 1200, 22),
			},
			expected: []string{"small", "mid", "big"},
		},
		{
			name: "balance tie breaks on lower apr",
			debts: []*workingDebt{
				wd(0, "high-apr", 1000, 20),
				wd(1, "low-apr", 1000, 5),
			},
			expected: []string{"low-apr", "high-apr"},
		},
		{
			name: "full tie keeps input order",
			debts: []*workingDebt{
				wd(0, "first", 1000, 10),
				wd(1, "second", 1000, 10),
				wd(2, "third", 1000, 10),
			},
			expected: []string{"first", "second", "third"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, orderedNames(tt.debts, domain.StrategySnowball))
		})
	}
}

func TestOrdering_Avalanche(t *testing.T) {
	tests := []struct {
		name     string
		debts    []*workingDebt
		expected []string
	}{
		{
			name: "highest apr first",
			debts: []*workingDebt{
				wd(0, "cheap", 500, 4),
				wd(1, "pricey", 9000, 29),
				wd(2, "mid", 1500, 12),
			},
			expected: []string{"pricey", "mid", "cheap"},
		},
		{
			name: "apr tie breaks on smaller balance",
			debts: []*workingDebt{
				wd(0, "large", 4000, 15),
				wd(1, "small", 900, 15),
			},
			expected: []string{"small", "large"},
		},
		{
			name: "full tie keeps input order",
			debts: []*workingDebt{
				wd(0, "first", 1000, 10),
				wd(1, "second", 1000, 10),
			},
			expected: []string{"first", "second"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, orderedNames(tt.debts, domain.StrategyAvalanche))
		})
	}
}

func TestOrdering_ExcludesPaidOffDebts(t *testing.T) {
	debts := []*workingDebt{
		wd(0, "paid", 0, 25),
		wd(1, "open", 800, 10),
	}

	ordered := activeInOrder(debts, orderingFor(domain.StrategyAvalanche))

	require.Len(t, ordered, 1)
	assert.Equal(t, "open", ordered[0].name)
}

func TestOrdering_DoesNotMutateInput(t *testing.T) {
	debts := []*workingDebt{
		wd(0, "b", 2000, 5),
		wd(1, "a", 100, 30),
	}

	_ = activeInOrder(debts, orderingFor(domain.StrategySnowball))

	assert.Equal(t, "b", debts[0].name)
	assert.Equal(t, "a", debts[1].name)
}
