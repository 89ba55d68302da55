package money

import (
	"github.com/shopspring/decimal"
)

// Epsilon below which a rounded money value is treated as exactly zero.
const zeroEpsilon = 0.005

// PayoffTolerance is the balance below which a debt counts as paid off.
const PayoffTolerance = 0.01

// Round rounds to 2 decimal places, half away from zero.
func Round(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return f
}

// ClampToZero rounds to 2 decimal places and clamps the result to be
// non-negative. Values within half a cent of zero collapse to exactly 0 so
// residue from float arithmetic never leaks into emitted fields.
func ClampToZero(x float64) float64 {
	if x < zeroEpsilon && x > -zeroEpsilon {
		return 0
	}
	r := Round(x)
	if r < 0 {
		return 0
	}
	return r
}

// Add returns a + b clamped for emission.
func Add(a, b float64) float64 {
	return ClampToZero(a + b)
}

// Sub returns a - b clamped for emission.
func Sub(a, b float64) float64 {
	return ClampToZero(a - b)
}

// IsPaidOff reports whether a working balance is within the payoff tolerance.
func IsPaidOff(balance float64) bool {
	return balance <= PayoffTolerance
}
