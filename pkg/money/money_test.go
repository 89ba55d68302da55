package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampToZero(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "positive value rounds to 2 decimals",
			input:    10.345,
			expected: 10.35,
		},
		{
			name:     "round half away from zero",
			input:    2.005,
			expected: 2.01,
		},
		{
			name:     "negative value clamps to zero",
			input:    -3.50,
			expected: 0,
		},
		{
			name:     "tiny positive residue collapses to zero",
			input:    0.004999,
			expected: 0,
		},
		{
			name:     "tiny negative residue collapses to zero",
			input:    -0.004999,
			expected: 0,
		},
		{
			name:     "half a cent survives rounding",
			input:    0.005,
			expected: 0.01,
		},
		{
			name:     "exact zero",
			input:    0,
			expected: 0,
		},
		{
			name:     "large balance unchanged",
			input:    123456.78,
			expected: 123456.78,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampToZero(tt.input))
		})
	}
}

func TestRound(t *testing.T) {
	// Round keeps sign; only ClampToZero forces non-negative output.
	assert.Equal(t, -3.5, Round(-3.499999))
	assert.Equal(t, 0.01, Round(0.005))
	assert.Equal(t, 10.0, Round(9.999999999999998))
}

func TestAddSub(t *testing.T) {
	assert.Equal(t, 30.0, Add(10.0, 20.0))
	assert.Equal(t, 0.3, Add(0.1, 0.2))
	assert.Equal(t, 5.0, Sub(15.0, 10.0))
	assert.Equal(t, 0.0, Sub(10.0, 15.0))
}

func TestIsPaidOff(t *testing.T) {
	assert.True(t, IsPaidOff(0))
	assert.True(t, IsPaidOff(0.01))
	assert.True(t, IsPaidOff(-0.5))
	assert.False(t, IsPaidOff(0.011))
	assert.False(t, IsPaidOff(1))
}
