// Package money does currency arithmetic in integer minor units.
// Amounts cross the API and the database as float64 with two decimals
// and are converted to cents before any arithmetic.
package money

import "math"

const centsPerUnit = 100

// Cents converts an amount to integer minor units, rounding half away from zero.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * centsPerUnit))
}

// FromCents converts minor units back to an amount.
func FromCents(cents int64) float64 {
	return float64(cents) / centsPerUnit
}

// Round rounds an amount to two decimals.
func Round(amount float64) float64 {
	return FromCents(Cents(amount))
}

// Multiply returns amount × times.
func Multiply(amount float64, times int) float64 {
	return FromCents(Cents(amount) * int64(times))
}

// Sum adds every amount.
func Sum(amounts ...float64) float64 {
	var total int64
	for _, amount := range amounts {
		total += Cents(amount)
	}

	return FromCents(total)
}
